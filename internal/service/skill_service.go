package service

import (
	"context"

	"resume-service/internal/entity"
	"resume-service/internal/events"
)

type SkillStore interface {
	CreateSkill(ctx context.Context, s *entity.Skill) (*entity.Skill, error)
	GetSkillsByPerson(ctx context.Context, personID int64) ([]entity.Skill, error)
	UpdateSkill(ctx context.Context, s *entity.Skill) (*entity.Skill, error)
	DeleteSkill(ctx context.Context, id int64) error
}

type SkillService struct {
	repo      SkillStore
	publisher events.Publisher
}

func NewSkillService(repo SkillStore, publisher events.Publisher) *SkillService {
	return &SkillService{repo: repo, publisher: publisher}
}

func (s *SkillService) CreateSkill(ctx context.Context, sk *entity.Skill) (*entity.Skill, error) {
	created, err := s.repo.CreateSkill(ctx, sk)
	if err != nil {
		logFailure(err, "Error creating skill for person %d", sk.PersonID)
		return nil, err
	}
	publish(ctx, s.publisher, events.Event{Resource: "skill", Action: events.Created, ID: created.ID, Payload: created})
	return created, nil
}

func (s *SkillService) GetSkillsByPerson(ctx context.Context, personID int64) ([]entity.Skill, error) {
	items, err := s.repo.GetSkillsByPerson(ctx, personID)
	if err != nil {
		logFailure(err, "Error listing skills for person %d", personID)
		return nil, err
	}
	return items, nil
}

func (s *SkillService) UpdateSkill(ctx context.Context, sk *entity.Skill) (*entity.Skill, error) {
	updated, err := s.repo.UpdateSkill(ctx, sk)
	if err != nil {
		logFailure(err, "Error updating skill %d", sk.ID)
		return nil, err
	}
	publish(ctx, s.publisher, events.Event{Resource: "skill", Action: events.Updated, ID: updated.ID, Payload: updated})
	return updated, nil
}

func (s *SkillService) DeleteSkill(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSkill(ctx, id); err != nil {
		logFailure(err, "Error deleting skill %d", id)
		return err
	}
	publish(ctx, s.publisher, events.Event{Resource: "skill", Action: events.Deleted, ID: id})
	return nil
}
