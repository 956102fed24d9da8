package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"resume-service/internal/entity"
	"resume-service/internal/repository"
	"resume-service/internal/testutil"
)

type fakeLocker struct {
	acquired bool
	err      error
	released []string
}

func (l *fakeLocker) Acquire(context.Context, string, time.Duration) (bool, error) {
	return l.acquired, l.err
}

func (l *fakeLocker) Release(_ context.Context, key string) error {
	l.released = append(l.released, key)
	return nil
}

type failingCounter struct {
	*repository.PersonRepository
}

func (failingCounter) CountPersons(context.Context) (int, error) {
	return 0, errors.New("count failed")
}

type storeRepos struct {
	persons     *repository.PersonRepository
	experiences *repository.ExperienceRepository
	educations  *repository.EducationRepository
	skills      *repository.SkillRepository
}

func newStoreRepos(t *testing.T) (storeRepos, func(locker Locker) *Bootstrapper) {
	t.Helper()
	db := testutil.DB(t)
	r := storeRepos{
		persons:     repository.NewPersonRepository(db),
		experiences: repository.NewExperienceRepository(db),
		educations:  repository.NewEducationRepository(db),
		skills:      repository.NewSkillRepository(db),
	}
	return r, func(locker Locker) *Bootstrapper {
		return NewBootstrapper(db, r.persons, r.experiences, r.educations, r.skills, locker, true)
	}
}

func TestBootstrapRunTwice(t *testing.T) {
	ctx := context.Background()
	r, newBootstrapper := newStoreRepos(t)

	for i := 0; i < 2; i++ {
		if err := newBootstrapper(nil).Run(ctx); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	persons, err := r.persons.GetPersons(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(persons) != 2 {
		t.Fatalf("person count: got=%d want=2", len(persons))
	}
	for _, p := range persons {
		exps, _ := r.experiences.GetExperiencesByPerson(ctx, p.ID)
		edus, _ := r.educations.GetEducationsByPerson(ctx, p.ID)
		sks, _ := r.skills.GetSkillsByPerson(ctx, p.ID)
		if len(exps) != 1 || len(edus) != 1 || len(sks) != 3 {
			t.Fatalf("%s: got=%d/%d/%d want=1/1/3", *p.Name, len(exps), len(edus), len(sks))
		}
	}
}

func TestBootstrapSkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	r, newBootstrapper := newStoreRepos(t)
	b := newBootstrapper(nil)
	if err := b.migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := r.persons.CreatePerson(ctx, &entity.Person{Name: testutil.Str("Existing"), Email: testutil.Str("existing@example.com")}); err != nil {
		t.Fatalf("create: %v", err)
	}

	result, err := b.Seed(ctx)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if result != SeedSkipped {
		t.Fatalf("seed result: got=%v want=%v", result, SeedSkipped)
	}
	count, _ := r.persons.CountPersons(ctx)
	if count != 1 {
		t.Fatalf("person count: got=%d want=1", count)
	}
}

func TestBootstrapSchemaFailureIsFatal(t *testing.T) {
	boom := errors.New("permission denied")
	b := &Bootstrapper{
		migrate: func(context.Context) error { return boom },
		seed:    true,
	}
	if err := b.Run(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("got=%v want=%v", err, boom)
	}
}

func TestBootstrapSeedFailureIsLogged(t *testing.T) {
	r, _ := newStoreRepos(t)
	b := &Bootstrapper{
		migrate:     func(context.Context) error { return nil },
		persons:     failingCounter{r.persons},
		experiences: r.experiences,
		educations:  r.educations,
		skills:      r.skills,
		seed:        true,
	}
	if err := b.Run(context.Background()); err != nil {
		t.Fatalf("seed failure must not stop startup: %v", err)
	}
	if _, err := b.Seed(context.Background()); err == nil {
		t.Fatalf("expected Seed to report the count failure")
	}
}

func TestBootstrapSeedDisabled(t *testing.T) {
	ctx := context.Background()
	r, newBootstrapper := newStoreRepos(t)
	b := newBootstrapper(nil)
	b.seed = false
	if err := b.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	count, err := r.persons.CountPersons(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("person count: got=%d want=0", count)
	}
}

func TestBootstrapLock(t *testing.T) {
	ctx := context.Background()
	r, newBootstrapper := newStoreRepos(t)

	busy := &fakeLocker{acquired: false}
	if err := newBootstrapper(busy).Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	if result, err := newBootstrapper(busy).Seed(ctx); err != nil || result != SeedLocked {
		t.Fatalf("seed with busy lock: result=%v err=%v", result, err)
	}
	if count, _ := r.persons.CountPersons(ctx); count != 0 {
		t.Fatalf("seeded without the lock: count=%d", count)
	}
	if len(busy.released) != 0 {
		t.Fatalf("released a lock it never held")
	}

	free := &fakeLocker{acquired: true}
	result, err := newBootstrapper(free).Seed(ctx)
	if err != nil || result != SeedInserted {
		t.Fatalf("seed with lock: result=%v err=%v", result, err)
	}
	if len(free.released) != 1 || free.released[0] != seedLockKey {
		t.Fatalf("lock not released: %v", free.released)
	}

	broken := &fakeLocker{err: errors.New("redis unavailable")}
	if _, err := newBootstrapper(broken).Seed(ctx); err == nil {
		t.Fatalf("expected lock error")
	}
}

func TestBootstrapBusyLockLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	orig := logger
	logger = zerolog.New(&buf)
	t.Cleanup(func() { logger = orig })

	_, newBootstrapper := newStoreRepos(t)
	if err := newBootstrapper(&fakeLocker{acquired: false}).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Another instance is seeding") {
		t.Fatalf("missing lock message in log: %s", out)
	}
	if strings.Contains(out, "already has data") {
		t.Fatalf("busy lock reported as existing data: %s", out)
	}
}
