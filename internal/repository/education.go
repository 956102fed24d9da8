package repository

import (
	"context"

	"resume-service/internal/database"
	"resume-service/internal/entity"
)

const (
	educationColumns         = `id, person_id, institution, degree, field_of_study, start_date, end_date`
	insertEducation          = `INSERT INTO education (person_id, institution, degree, field_of_study, start_date, end_date) VALUES (?, ?, ?, ?, ?, ?)`
	updateEducation          = `UPDATE education SET institution = ?, degree = ?, field_of_study = ?, start_date = ?, end_date = ? WHERE id = ?`
	selectEducationByID      = `SELECT ` + educationColumns + ` FROM education WHERE id = ?`
	selectEducationsByPerson = `SELECT ` + educationColumns + ` FROM education WHERE person_id = ? ORDER BY end_date DESC, id`
	deleteEducation          = `DELETE FROM education WHERE id = ?`
)

type EducationRepository struct {
	db *database.DB
}

func NewEducationRepository(db *database.DB) *EducationRepository {
	return &EducationRepository{db}
}

func scanEducation(row rowScanner) (*entity.Education, error) {
	e := &entity.Education{}
	err := row.Scan(&e.ID, &e.PersonID, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EducationRepository) CreateEducation(ctx context.Context, e *entity.Education) (*entity.Education, error) {
	return insertRow(ctx, r.db, insertEducation, educationColumns, selectEducationByID, scanEducation,
		e.PersonID, e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate)
}

// GetEducationsByPerson returns the person's education, latest end date first.
func (r *EducationRepository) GetEducationsByPerson(ctx context.Context, personID int64) ([]entity.Education, error) {
	return listRows(ctx, r.db, selectEducationsByPerson, scanEducation, personID)
}

func (r *EducationRepository) GetEducationByID(ctx context.Context, id int64) (*entity.Education, error) {
	return getRow(ctx, r.db, selectEducationByID, scanEducation, id)
}

func (r *EducationRepository) UpdateEducation(ctx context.Context, e *entity.Education) (*entity.Education, error) {
	return updateRow(ctx, r.db, updateEducation, educationColumns, selectEducationByID, scanEducation, e.ID,
		e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate)
}

func (r *EducationRepository) DeleteEducation(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, deleteEducation, id)
}
