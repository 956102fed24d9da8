package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"resume-service/internal/entity"
)

type PersonReader interface {
	GetPersonByID(ctx context.Context, id int64) (*entity.Person, error)
}

type ExperienceLister interface {
	GetExperiencesByPerson(ctx context.Context, personID int64) ([]entity.Experience, error)
}

type EducationLister interface {
	GetEducationsByPerson(ctx context.Context, personID int64) ([]entity.Education, error)
}

type SkillLister interface {
	GetSkillsByPerson(ctx context.Context, personID int64) ([]entity.Skill, error)
}

// ResumeService assembles a person's full resume.
type ResumeService struct {
	persons     PersonReader
	experiences ExperienceLister
	educations  EducationLister
	skills      SkillLister
}

func NewResumeService(persons PersonReader, experiences ExperienceLister, educations EducationLister, skills SkillLister) *ResumeService {
	return &ResumeService{
		persons:     persons,
		experiences: experiences,
		educations:  educations,
		skills:      skills,
	}
}

// GetFullResume reads the person and its three collections concurrently.
// A missing person yields ErrNotFound whatever the other reads returned; any
// other failure aborts the whole resume.
func (s *ResumeService) GetFullResume(ctx context.Context, personID int64) (*entity.Resume, error) {
	var (
		person        *entity.Person
		personMissing bool
		experiences   []entity.Experience
		educations    []entity.Education
		skills        []entity.Skill
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.persons.GetPersonByID(gctx, personID)
		if errors.Is(err, ErrNotFound) {
			personMissing = true
			return nil
		}
		person = p
		return err
	})
	g.Go(func() error {
		var err error
		experiences, err = s.experiences.GetExperiencesByPerson(gctx, personID)
		return err
	})
	g.Go(func() error {
		var err error
		educations, err = s.educations.GetEducationsByPerson(gctx, personID)
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = s.skills.GetSkillsByPerson(gctx, personID)
		return err
	})

	err := g.Wait()
	if personMissing {
		logger.Debug().Msgf("Resume for person %d not found", personID)
		return nil, ErrNotFound
	}
	if err != nil {
		logFailure(err, "Error assembling resume for person %d", personID)
		return nil, err
	}

	resume := &entity.Resume{
		Person:      *person,
		Experiences: experiences,
		Educations:  educations,
		Skills:      skills,
	}
	if resume.Experiences == nil {
		resume.Experiences = []entity.Experience{}
	}
	if resume.Educations == nil {
		resume.Educations = []entity.Education{}
	}
	if resume.Skills == nil {
		resume.Skills = []entity.Skill{}
	}
	return resume, nil
}
