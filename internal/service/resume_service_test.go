package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"resume-service/internal/entity"
	"resume-service/internal/repository"
	"resume-service/internal/testutil"
)

type fakeResumeStore struct {
	person      *entity.Person
	personErr   error
	experiences []entity.Experience
	educations  []entity.Education
	skills      []entity.Skill
	listErr     error
	before      func(ctx context.Context) error
}

func (f *fakeResumeStore) hook(ctx context.Context) error {
	if f.before == nil {
		return nil
	}
	return f.before(ctx)
}

func (f *fakeResumeStore) GetPersonByID(ctx context.Context, _ int64) (*entity.Person, error) {
	if err := f.hook(ctx); err != nil {
		return nil, err
	}
	return f.person, f.personErr
}

func (f *fakeResumeStore) GetExperiencesByPerson(ctx context.Context, _ int64) ([]entity.Experience, error) {
	if err := f.hook(ctx); err != nil {
		return nil, err
	}
	return f.experiences, f.listErr
}

func (f *fakeResumeStore) GetEducationsByPerson(ctx context.Context, _ int64) ([]entity.Education, error) {
	if err := f.hook(ctx); err != nil {
		return nil, err
	}
	return f.educations, nil
}

func (f *fakeResumeStore) GetSkillsByPerson(ctx context.Context, _ int64) ([]entity.Skill, error) {
	if err := f.hook(ctx); err != nil {
		return nil, err
	}
	return f.skills, nil
}

func newFakeResumeService(f *fakeResumeStore) *ResumeService {
	return NewResumeService(f, f, f, f)
}

func TestGetFullResumeEmptyCollections(t *testing.T) {
	f := &fakeResumeStore{person: &entity.Person{ID: 1, Name: testutil.Str("Ada")}}
	resume, err := newFakeResumeService(f).GetFullResume(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resume.ID != 1 || *resume.Name != "Ada" {
		t.Fatalf("unexpected person: %+v", resume.Person)
	}
	if resume.Experiences == nil || resume.Educations == nil || resume.Skills == nil {
		t.Fatalf("collections must never be nil: %+v", resume)
	}
}

func TestGetFullResumePersonMissingWins(t *testing.T) {
	f := &fakeResumeStore{
		personErr: repository.ErrNotFound,
		listErr:   errors.New("connection reset"),
	}
	_, err := newFakeResumeService(f).GetFullResume(context.Background(), 9)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got=%v want=%v", err, ErrNotFound)
	}
}

func TestGetFullResumeFailsWhole(t *testing.T) {
	boom := errors.New("connection reset")
	f := &fakeResumeStore{
		person:  &entity.Person{ID: 1},
		listErr: boom,
	}
	resume, err := newFakeResumeService(f).GetFullResume(context.Background(), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("got=%v want=%v", err, boom)
	}
	if resume != nil {
		t.Fatalf("no partial resume expected: %+v", resume)
	}
}

func TestGetFullResumeReadsConcurrently(t *testing.T) {
	var arrived sync.WaitGroup
	arrived.Add(4)
	all := make(chan struct{})
	go func() {
		arrived.Wait()
		close(all)
	}()

	f := &fakeResumeStore{
		person: &entity.Person{ID: 1},
		before: func(ctx context.Context) error {
			arrived.Done()
			select {
			case <-all:
				return nil
			case <-time.After(2 * time.Second):
				return errors.New("reads were not issued concurrently")
			}
		},
	}
	if _, err := newFakeResumeService(f).GetFullResume(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetFullResumeFromStore(t *testing.T) {
	ctx := context.Background()
	db := testutil.DB(t)
	persons := repository.NewPersonRepository(db)
	experiences := repository.NewExperienceRepository(db)
	educations := repository.NewEducationRepository(db)
	skills := repository.NewSkillRepository(db)

	b := NewBootstrapper(db, persons, experiences, educations, skills, nil, true)
	if err := b.Run(ctx); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	all, err := persons.GetPersons(ctx)
	if err != nil || len(all) == 0 {
		t.Fatalf("list persons: %v (%d)", err, len(all))
	}

	resume, err := NewResumeService(persons, experiences, educations, skills).GetFullResume(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("full resume: %v", err)
	}
	if len(resume.Experiences) != 1 || len(resume.Educations) != 1 || len(resume.Skills) != 3 {
		t.Fatalf("unexpected shape: %d/%d/%d", len(resume.Experiences), len(resume.Educations), len(resume.Skills))
	}
	for i := 1; i < len(resume.Skills); i++ {
		if *resume.Skills[i-1].SkillName > *resume.Skills[i].SkillName {
			t.Fatalf("skills not ordered by name: %v", resume.Skills)
		}
	}

	if _, err := NewResumeService(persons, experiences, educations, skills).GetFullResume(ctx, 4242); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing person: got=%v want=%v", err, ErrNotFound)
	}
}
