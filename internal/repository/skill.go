package repository

import (
	"context"

	"resume-service/internal/database"
	"resume-service/internal/entity"
)

const (
	skillColumns         = `id, person_id, skill_name, level`
	insertSkill          = `INSERT INTO skill (person_id, skill_name, level) VALUES (?, ?, ?)`
	updateSkill          = `UPDATE skill SET skill_name = ?, level = ? WHERE id = ?`
	selectSkillByID      = `SELECT ` + skillColumns + ` FROM skill WHERE id = ?`
	selectSkillsByPerson = `SELECT ` + skillColumns + ` FROM skill WHERE person_id = ? ORDER BY skill_name, id`
	deleteSkill          = `DELETE FROM skill WHERE id = ?`
)

type SkillRepository struct {
	db *database.DB
}

func NewSkillRepository(db *database.DB) *SkillRepository {
	return &SkillRepository{db}
}

func scanSkill(row rowScanner) (*entity.Skill, error) {
	s := &entity.Skill{}
	if err := row.Scan(&s.ID, &s.PersonID, &s.SkillName, &s.Level); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SkillRepository) CreateSkill(ctx context.Context, s *entity.Skill) (*entity.Skill, error) {
	return insertRow(ctx, r.db, insertSkill, skillColumns, selectSkillByID, scanSkill,
		s.PersonID, s.SkillName, s.Level)
}

// GetSkillsByPerson returns the person's skills sorted by name.
func (r *SkillRepository) GetSkillsByPerson(ctx context.Context, personID int64) ([]entity.Skill, error) {
	return listRows(ctx, r.db, selectSkillsByPerson, scanSkill, personID)
}

func (r *SkillRepository) GetSkillByID(ctx context.Context, id int64) (*entity.Skill, error) {
	return getRow(ctx, r.db, selectSkillByID, scanSkill, id)
}

func (r *SkillRepository) UpdateSkill(ctx context.Context, s *entity.Skill) (*entity.Skill, error) {
	return updateRow(ctx, r.db, updateSkill, skillColumns, selectSkillByID, scanSkill, s.ID,
		s.SkillName, s.Level)
}

func (r *SkillRepository) DeleteSkill(ctx context.Context, id int64) error {
	return deleteRow(ctx, r.db, deleteSkill, id)
}
