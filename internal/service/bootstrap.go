package service

import (
	"context"
	"fmt"
	"time"

	"resume-service/internal/database"
	"resume-service/internal/entity"
	"resume-service/migrations"
)

const (
	seedLockKey = "resume-service:seed-lock"
	seedLockTTL = time.Minute
)

// SeedResult tells what Seed did.
type SeedResult int

const (
	SeedInserted SeedResult = iota + 1
	SeedSkipped             // the store already had persons
	SeedLocked              // another instance holds the seed lock
)

// Locker serializes seeding between processes that share one store.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Bootstrapper prepares the store before the server accepts requests.
type Bootstrapper struct {
	migrate     func(ctx context.Context) error
	persons     PersonStore
	experiences ExperienceStore
	educations  EducationStore
	skills      SkillStore
	locker      Locker
	seed        bool
}

// NewBootstrapper wires schema creation against db and seeding through the
// repositories. locker may be nil.
func NewBootstrapper(db *database.DB, persons PersonStore, experiences ExperienceStore, educations EducationStore, skills SkillStore, locker Locker, seed bool) *Bootstrapper {
	return &Bootstrapper{
		migrate: func(ctx context.Context) error {
			return migrations.AutoMigrate(ctx, db)
		},
		persons:     persons,
		experiences: experiences,
		educations:  educations,
		skills:      skills,
		locker:      locker,
		seed:        seed,
	}
}

// Run creates the schema and then seeds an empty store. Only a schema failure
// is returned; seeding problems are logged so the service can still start.
func (b *Bootstrapper) Run(ctx context.Context) error {
	if err := b.migrate(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	logger.Info().Msg("Tables verified/created")

	if !b.seed {
		return nil
	}
	result, err := b.Seed(ctx)
	switch {
	case err != nil:
		logger.Error().Err(err).Msg("Error seeding database")
	case result == SeedInserted:
		logger.Info().Msg("Empty database, sample resumes inserted")
	case result == SeedSkipped:
		logger.Info().Msg("Database already has data, seed skipped")
	case result == SeedLocked:
		logger.Info().Msg("Another instance is seeding, skipping")
	}
	return nil
}

// Seed inserts the sample resumes if and only if the person table is empty.
func (b *Bootstrapper) Seed(ctx context.Context) (SeedResult, error) {
	if b.locker != nil {
		acquired, err := b.locker.Acquire(ctx, seedLockKey, seedLockTTL)
		if err != nil {
			return 0, fmt.Errorf("acquire seed lock: %w", err)
		}
		if !acquired {
			return SeedLocked, nil
		}
		defer func() {
			if err := b.locker.Release(ctx, seedLockKey); err != nil {
				logger.Warn().Err(err).Msg("Error releasing seed lock")
			}
		}()
	}

	count, err := b.persons.CountPersons(ctx)
	if err != nil {
		return 0, fmt.Errorf("count persons: %w", err)
	}
	if count > 0 {
		return SeedSkipped, nil
	}

	for _, resume := range SampleResumes() {
		if err := b.insertResume(ctx, resume); err != nil {
			return 0, err
		}
	}
	return SeedInserted, nil
}

func (b *Bootstrapper) insertResume(ctx context.Context, resume entity.Resume) error {
	person, err := b.persons.CreatePerson(ctx, &resume.Person)
	if err != nil {
		return fmt.Errorf("seed person %s: %w", deref(resume.Email), err)
	}
	for _, e := range resume.Experiences {
		e.PersonID = person.ID
		if _, err := b.experiences.CreateExperience(ctx, &e); err != nil {
			return fmt.Errorf("seed experience: %w", err)
		}
	}
	for _, e := range resume.Educations {
		e.PersonID = person.ID
		if _, err := b.educations.CreateEducation(ctx, &e); err != nil {
			return fmt.Errorf("seed education: %w", err)
		}
	}
	for _, s := range resume.Skills {
		s.PersonID = person.ID
		if _, err := b.skills.CreateSkill(ctx, &s); err != nil {
			return fmt.Errorf("seed skill: %w", err)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
