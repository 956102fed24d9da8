package service

import (
	"context"

	"resume-service/internal/entity"
	"resume-service/internal/events"
)

type EducationStore interface {
	CreateEducation(ctx context.Context, e *entity.Education) (*entity.Education, error)
	GetEducationsByPerson(ctx context.Context, personID int64) ([]entity.Education, error)
	UpdateEducation(ctx context.Context, e *entity.Education) (*entity.Education, error)
	DeleteEducation(ctx context.Context, id int64) error
}

type EducationService struct {
	repo      EducationStore
	publisher events.Publisher
}

func NewEducationService(repo EducationStore, publisher events.Publisher) *EducationService {
	return &EducationService{repo: repo, publisher: publisher}
}

func (s *EducationService) CreateEducation(ctx context.Context, e *entity.Education) (*entity.Education, error) {
	created, err := s.repo.CreateEducation(ctx, e)
	if err != nil {
		logFailure(err, "Error creating education for person %d", e.PersonID)
		return nil, err
	}
	publish(ctx, s.publisher, events.Event{Resource: "education", Action: events.Created, ID: created.ID, Payload: created})
	return created, nil
}

func (s *EducationService) GetEducationsByPerson(ctx context.Context, personID int64) ([]entity.Education, error) {
	items, err := s.repo.GetEducationsByPerson(ctx, personID)
	if err != nil {
		logFailure(err, "Error listing educations for person %d", personID)
		return nil, err
	}
	return items, nil
}

func (s *EducationService) UpdateEducation(ctx context.Context, e *entity.Education) (*entity.Education, error) {
	updated, err := s.repo.UpdateEducation(ctx, e)
	if err != nil {
		logFailure(err, "Error updating education %d", e.ID)
		return nil, err
	}
	publish(ctx, s.publisher, events.Event{Resource: "education", Action: events.Updated, ID: updated.ID, Payload: updated})
	return updated, nil
}

func (s *EducationService) DeleteEducation(ctx context.Context, id int64) error {
	if err := s.repo.DeleteEducation(ctx, id); err != nil {
		logFailure(err, "Error deleting education %d", id)
		return err
	}
	publish(ctx, s.publisher, events.Event{Resource: "education", Action: events.Deleted, ID: id})
	return nil
}
