package repository

import (
	"context"

	"resume-service/internal/database"
	"resume-service/internal/entity"
)

const (
	experienceColumns         = `id, person_id, job_title, company, start_date, end_date, description`
	insertExperience          = `INSERT INTO experience (person_id, job_title, company, start_date, end_date, description) VALUES (?, ?, ?, ?, ?, ?)`
	updateExperience          = `UPDATE experience SET job_title = ?, company = ?, start_date = ?, end_date = ?, description = ? WHERE id = ?`
	selectExperienceByID      = `SELECT ` + experienceColumns + ` FROM experience WHERE id = ?`
	selectExperiencesByPerson = `SELECT ` + experienceColumns + ` FROM experience WHERE person_id = ? ORDER BY start_date DESC, id`
	deleteExperience          = `DELETE FROM experience WHERE id = ?`
)

type ExperienceRepository struct {
	db *database.DB
}

func NewExperienceRepository(db *database.DB) *ExperienceRepository {
	return &ExperienceRepository{db}
}

func scanExperience(row rowScanner) (*entity.Experience, error) {
	e := &entity.Experience{}
	err := row.Scan(&e.ID, &e.PersonID, &e.JobTitle, &e.Company, &e.StartDate, &e.EndDate, &e.Description)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *ExperienceRepository) CreateExperience(ctx context.Context, e *entity.Experience) (*entity.Experience, error) {
	return insertRow(ctx, r.db, insertExperience, experienceColumns, selectExperienceByID, scanExperience,
		e.PersonID, e.JobTitle, e.Company, e.StartDate, e.EndDate, e.Description)
}

// GetExperiencesByPerson returns the person's jobs, most recent start first.
func (r *ExperienceRepository) GetExperiencesByPerson(ctx context.Context, personID int64) ([]entity.Experience, error) {
	return listRows(ctx, r.db, selectExperiencesByPerson, scanExperience, personID)
}

func (r *ExperienceRepository) GetExperienceByID(ctx context.Context, id int64) (*entity.Experience, error) {
	return getRow(ctx, r.db, selectExperienceByID, scanExperience, id)
}

func (r *ExperienceRepository) UpdateExperience(ctx context.Context, e *entity.Experience) (*entity.Experience, error) {
	return updateRow(ctx, r.db, updateExperience, experienceColumns, selectExperienceByID, scanExperience, e.ID,
		e.JobTitle, e.Company, e.StartDate, e.EndDate, e.Description)
}

func (r *ExperienceRepository) DeleteExperience(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, deleteExperience, id)
}
