package service

import (
	"time"

	"resume-service/internal/entity"
)

func ptr(s string) *string { return &s }

// SampleResumes are the two resumes inserted into an empty store.
func SampleResumes() []entity.Resume {
	return []entity.Resume{
		{
			Person: entity.Person{
				Name:        ptr("João Silva"),
				Email:       ptr("joao.silva@email.com"),
				Phone:       ptr("+55 (11) 98765-4321"),
				LinkedinURL: ptr("https://linkedin.com/in/joaosilva"),
				GithubURL:   ptr("https://github.com/joaosilva"),
				Summary:     ptr("Senior software developer with 8 years of experience in Node.js and React."),
			},
			Experiences: []entity.Experience{{
				JobTitle:    ptr("Senior Software Engineer"),
				Company:     ptr("Tech Solutions"),
				StartDate:   entity.NewDate(2020, time.January, 15),
				Description: ptr("Team leadership and RESTful API development."),
			}},
			Educations: []entity.Education{{
				Institution:  ptr("Universidade de São Paulo (USP)"),
				Degree:       ptr("Bachelor's degree"),
				FieldOfStudy: ptr("Computer Science"),
				StartDate:    entity.NewDate(2012, time.February, 1),
				EndDate:      entity.NewDate(2016, time.December, 15),
			}},
			Skills: []entity.Skill{
				{SkillName: ptr("Node.js"), Level: ptr("Advanced")},
				{SkillName: ptr("React"), Level: ptr("Advanced")},
				{SkillName: ptr("PostgreSQL"), Level: ptr("Intermediate")},
			},
		},
		{
			Person: entity.Person{
				Name:        ptr("Maria Oliveira"),
				Email:       ptr("maria.oliveira@email.com"),
				Phone:       ptr("+55 (21) 91234-5678"),
				LinkedinURL: ptr("https://linkedin.com/in/mariaoliveira"),
				GithubURL:   ptr("https://github.com/mariaoliveira"),
				Summary:     ptr("UX/UI designer focused on mobile and web applications. Passionate about building intuitive interfaces."),
			},
			Experiences: []entity.Experience{{
				JobTitle:    ptr("UX/UI Designer"),
				Company:     ptr("DesignCo"),
				StartDate:   entity.NewDate(2019, time.March, 1),
				EndDate:     entity.NewDate(2022, time.May, 30),
				Description: ptr("User research, prototyping and usability testing."),
			}},
			Educations: []entity.Education{{
				Institution:  ptr("Universidade Federal do Rio de Janeiro (UFRJ)"),
				Degree:       ptr("Bachelor's degree"),
				FieldOfStudy: ptr("Graphic Design"),
				StartDate:    entity.NewDate(2015, time.March, 1),
				EndDate:      entity.NewDate(2019, time.January, 20),
			}},
			Skills: []entity.Skill{
				{SkillName: ptr("Figma"), Level: ptr("Advanced")},
				{SkillName: ptr("Adobe XD"), Level: ptr("Advanced")},
				{SkillName: ptr("HTML/CSS"), Level: ptr("Intermediate")},
			},
		},
	}
}
