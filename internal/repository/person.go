package repository

import (
	"context"

	"resume-service/internal/database"
	"resume-service/internal/entity"
)

const (
	personColumns    = `id, name, email, phone, linkedin_url, github_url, summary`
	insertPerson     = `INSERT INTO person (name, email, phone, linkedin_url, github_url, summary) VALUES (?, ?, ?, ?, ?, ?)`
	updatePerson     = `UPDATE person SET name = ?, email = ?, phone = ?, linkedin_url = ?, github_url = ?, summary = ? WHERE id = ?`
	selectPersonByID = `SELECT ` + personColumns + ` FROM person WHERE id = ?`
	selectPersons    = `SELECT ` + personColumns + ` FROM person ORDER BY name, id`
	deletePerson     = `DELETE FROM person WHERE id = ?`
	countPersons     = `SELECT COUNT(*) FROM person`
)

type PersonRepository struct {
	db *database.DB
}

func NewPersonRepository(db *database.DB) *PersonRepository {
	return &PersonRepository{db}
}

func scanPerson(row rowScanner) (*entity.Person, error) {
	p := &entity.Person{}
	err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.LinkedinURL, &p.GithubURL, &p.Summary)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PersonRepository) CreatePerson(ctx context.Context, p *entity.Person) (*entity.Person, error) {
	return insertRow(ctx, r.db, insertPerson, personColumns, selectPersonByID, scanPerson,
		p.Name, p.Email, p.Phone, p.LinkedinURL, p.GithubURL, p.Summary)
}

// GetPersons returns every person ordered by name.
func (r *PersonRepository) GetPersons(ctx context.Context) ([]entity.Person, error) {
	return listRows(ctx, r.db, selectPersons, scanPerson)
}

func (r *PersonRepository) GetPersonByID(ctx context.Context, id int64) (*entity.Person, error) {
	return getRow(ctx, r.db, selectPersonByID, scanPerson, id)
}

// UpdatePerson replaces every column of the person identified by p.ID.
func (r *PersonRepository) UpdatePerson(ctx context.Context, p *entity.Person) (*entity.Person, error) {
	return updateRow(ctx, r.db, updatePerson, personColumns, selectPersonByID, scanPerson, p.ID,
		p.Name, p.Email, p.Phone, p.LinkedinURL, p.GithubURL, p.Summary)
}

// DeletePerson removes the person; the store cascades to experience,
// education and skill rows.
func (r *PersonRepository) DeletePerson(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, deletePerson, id)
}

func (r *PersonRepository) CountPersons(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countPersons).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
