package entity

type Skill struct {
	ID        int64   `json:"id"`
	PersonID  int64   `json:"person_id"`
	SkillName *string `json:"skill_name"`
	Level     *string `json:"level"` // free-form, e.g. "Beginner", "Advanced"
}
