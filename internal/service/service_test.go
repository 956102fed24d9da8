package service

import (
	"context"
	"errors"
	"testing"

	"resume-service/internal/entity"
	"resume-service/internal/events"
	"resume-service/internal/repository"
	"resume-service/internal/testutil"
)

type recordingPublisher struct {
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.events = append(p.events, event)
	return p.err
}

func TestWritesPublishEvents(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	pub := &recordingPublisher{}
	persons := NewPersonService(repository.NewPersonRepository(db), pub)
	skills := NewSkillService(repository.NewSkillRepository(db), pub)

	p, err := persons.CreatePerson(ctx, &entity.Person{Name: testutil.Str("Ada"), Email: testutil.Str("ada@example.com")})
	if err != nil {
		t.Fatalf("create person: %v", err)
	}
	sk, err := skills.CreateSkill(ctx, &entity.Skill{PersonID: p.ID, SkillName: testutil.Str("Go")})
	if err != nil {
		t.Fatalf("create skill: %v", err)
	}
	if _, err := skills.UpdateSkill(ctx, &entity.Skill{ID: sk.ID, SkillName: testutil.Str("Go"), Level: testutil.Str("Expert")}); err != nil {
		t.Fatalf("update skill: %v", err)
	}
	if err := persons.DeletePerson(ctx, p.ID); err != nil {
		t.Fatalf("delete person: %v", err)
	}

	var keys []string
	for _, e := range pub.events {
		keys = append(keys, e.Key())
	}
	want := []string{
		events.Event{Resource: "person", Action: events.Created, ID: p.ID}.Key(),
		events.Event{Resource: "skill", Action: events.Created, ID: sk.ID}.Key(),
		events.Event{Resource: "skill", Action: events.Updated, ID: sk.ID}.Key(),
		events.Event{Resource: "person", Action: events.Deleted, ID: p.ID}.Key(),
	}
	if len(keys) != len(want) {
		t.Fatalf("events: got=%v want=%v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("event %d: got=%q want=%q", i, keys[i], want[i])
		}
	}
}

func TestFailedWritesPublishNothing(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	pub := &recordingPublisher{}
	persons := NewPersonService(repository.NewPersonRepository(db), pub)
	experiences := NewExperienceService(repository.NewExperienceRepository(db), pub)

	if err := persons.DeletePerson(ctx, 77); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing: got=%v want=%v", err, ErrNotFound)
	}
	if _, err := experiences.CreateExperience(ctx, &entity.Experience{PersonID: 77, JobTitle: testutil.Str("Dev"), Company: testutil.Str("Acme")}); err == nil {
		t.Fatalf("expected foreign key violation")
	}
	if len(pub.events) != 0 {
		t.Fatalf("unexpected events: %+v", pub.events)
	}
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	pub := &recordingPublisher{err: errors.New("broker down")}
	persons := NewPersonService(repository.NewPersonRepository(db), pub)
	educations := NewEducationService(repository.NewEducationRepository(db), pub)

	p, err := persons.CreatePerson(ctx, &entity.Person{Name: testutil.Str("Ada"), Email: testutil.Str("ada@example.com")})
	if err != nil {
		t.Fatalf("create should succeed despite broker failure: %v", err)
	}
	if _, err := educations.CreateEducation(ctx, &entity.Education{PersonID: p.ID, Institution: testutil.Str("MIT"), Degree: testutil.Str("BSc")}); err != nil {
		t.Fatalf("create education: %v", err)
	}
	if len(pub.events) != 2 {
		t.Fatalf("publish attempts: got=%d want=2", len(pub.events))
	}
}

func TestNilPublisher(t *testing.T) {
	db := testutil.DB(t)
	persons := NewPersonService(repository.NewPersonRepository(db), nil)
	if _, err := persons.CreatePerson(context.Background(), &entity.Person{Name: testutil.Str("Ada"), Email: testutil.Str("ada@example.com")}); err != nil {
		t.Fatalf("create: %v", err)
	}
}
