package service

import (
	"context"

	"resume-service/internal/entity"
	"resume-service/internal/events"
)

type PersonStore interface {
	CreatePerson(ctx context.Context, p *entity.Person) (*entity.Person, error)
	GetPersons(ctx context.Context) ([]entity.Person, error)
	GetPersonByID(ctx context.Context, id int64) (*entity.Person, error)
	UpdatePerson(ctx context.Context, p *entity.Person) (*entity.Person, error)
	DeletePerson(ctx context.Context, id int64) error
	CountPersons(ctx context.Context) (int, error)
}

// PersonService provides person-related operations.
type PersonService struct {
	repo      PersonStore
	publisher events.Publisher
}

// NewPersonService creates a new instance of PersonService.
func NewPersonService(repo PersonStore, publisher events.Publisher) *PersonService {
	return &PersonService{repo: repo, publisher: publisher}
}

// CreatePerson creates a new person.
func (s *PersonService) CreatePerson(ctx context.Context, p *entity.Person) (*entity.Person, error) {
	created, err := s.repo.CreatePerson(ctx, p)
	if err != nil {
		logFailure(err, "Error creating person")
		return nil, err
	}
	publish(ctx, s.publisher, events.Event{Resource: "person", Action: events.Created, ID: created.ID, Payload: created})
	return created, nil
}

// GetPersons lists every person ordered by name.
func (s *PersonService) GetPersons(ctx context.Context) ([]entity.Person, error) {
	persons, err := s.repo.GetPersons(ctx)
	if err != nil {
		logFailure(err, "Error listing persons")
		return nil, err
	}
	return persons, nil
}

// GetPersonByID retrieves a person by ID.
func (s *PersonService) GetPersonByID(ctx context.Context, id int64) (*entity.Person, error) {
	p, err := s.repo.GetPersonByID(ctx, id)
	if err != nil {
		logFailure(err, "Error getting person by ID %d", id)
		return nil, err
	}
	return p, nil
}

// UpdatePerson replaces all fields of an existing person.
func (s *PersonService) UpdatePerson(ctx context.Context, p *entity.Person) (*entity.Person, error) {
	updated, err := s.repo.UpdatePerson(ctx, p)
	if err != nil {
		logFailure(err, "Error updating person %d", p.ID)
		return nil, err
	}
	publish(ctx, s.publisher, events.Event{Resource: "person", Action: events.Updated, ID: updated.ID, Payload: updated})
	return updated, nil
}

// DeletePerson deletes a person together with its resume entries.
func (s *PersonService) DeletePerson(ctx context.Context, id int64) error {
	if err := s.repo.DeletePerson(ctx, id); err != nil {
		logFailure(err, "Error deleting person %d", id)
		return err
	}
	publish(ctx, s.publisher, events.Event{Resource: "person", Action: events.Deleted, ID: id})
	return nil
}
