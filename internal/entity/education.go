package entity

type Education struct {
	ID           int64   `json:"id"`
	PersonID     int64   `json:"person_id"`
	Institution  *string `json:"institution"`
	Degree       *string `json:"degree"`
	FieldOfStudy *string `json:"field_of_study"`
	StartDate    Date    `json:"start_date"`
	EndDate      Date    `json:"end_date"`
}
