package entity

type Experience struct {
	ID          int64   `json:"id"`
	PersonID    int64   `json:"person_id"`
	JobTitle    *string `json:"job_title"`
	Company     *string `json:"company"`
	StartDate   Date    `json:"start_date"`
	EndDate     Date    `json:"end_date"` // null while the job is ongoing
	Description *string `json:"description"`
}
