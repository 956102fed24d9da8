package service

import (
	"context"

	"resume-service/internal/entity"
	"resume-service/internal/events"
)

type ExperienceStore interface {
	CreateExperience(ctx context.Context, e *entity.Experience) (*entity.Experience, error)
	GetExperiencesByPerson(ctx context.Context, personID int64) ([]entity.Experience, error)
	UpdateExperience(ctx context.Context, e *entity.Experience) (*entity.Experience, error)
	DeleteExperience(ctx context.Context, id int64) error
}

type ExperienceService struct {
	repo      ExperienceStore
	publisher events.Publisher
}

func NewExperienceService(repo ExperienceStore, publisher events.Publisher) *ExperienceService {
	return &ExperienceService{repo: repo, publisher: publisher}
}

func (s *ExperienceService) CreateExperience(ctx context.Context, e *entity.Experience) (*entity.Experience, error) {
	created, err := s.repo.CreateExperience(ctx, e)
	if err != nil {
		logFailure(err, "Error creating experience for person %d", e.PersonID)
		return nil, err
	}
	publish(ctx, s.publisher, events.Event{Resource: "experience", Action: events.Created, ID: created.ID, Payload: created})
	return created, nil
}

func (s *ExperienceService) GetExperiencesByPerson(ctx context.Context, personID int64) ([]entity.Experience, error) {
	items, err := s.repo.GetExperiencesByPerson(ctx, personID)
	if err != nil {
		logFailure(err, "Error listing experiences for person %d", personID)
		return nil, err
	}
	return items, nil
}

func (s *ExperienceService) UpdateExperience(ctx context.Context, e *entity.Experience) (*entity.Experience, error) {
	updated, err := s.repo.UpdateExperience(ctx, e)
	if err != nil {
		logFailure(err, "Error updating experience %d", e.ID)
		return nil, err
	}
	publish(ctx, s.publisher, events.Event{Resource: "experience", Action: events.Updated, ID: updated.ID, Payload: updated})
	return updated, nil
}

func (s *ExperienceService) DeleteExperience(ctx context.Context, id int64) error {
	if err := s.repo.DeleteExperience(ctx, id); err != nil {
		logFailure(err, "Error deleting experience %d", id)
		return err
	}
	publish(ctx, s.publisher, events.Event{Resource: "experience", Action: events.Deleted, ID: id})
	return nil
}
