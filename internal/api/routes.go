package api

import "github.com/labstack/echo/v4"

type Handlers struct {
	Person     *PersonHandler
	Experience *ExperienceHandler
	Education  *EducationHandler
	Skill      *SkillHandler
}

// RegisterRoutes mounts the resume API on e under prefix (empty for root).
// The person id is always bound as :id, including on nested collections.
func RegisterRoutes(e *echo.Echo, prefix string, h Handlers) {
	e.GET("/", Health)
	e.GET("/health", Health)

	g := e.Group(prefix)
	if prefix != "" {
		g.GET("", Health)
	}

	g.POST("/person", h.Person.CreatePerson)
	g.GET("/person", h.Person.GetPersons)
	g.GET("/person/:id", h.Person.GetPersonByID)
	g.PUT("/person/:id", h.Person.UpdatePerson)
	g.DELETE("/person/:id", h.Person.DeletePerson)
	g.GET("/person/:id/full", h.Person.GetFullResume)

	g.POST("/person/:id/experience", h.Experience.CreateExperience)
	g.GET("/person/:id/experience", h.Experience.GetExperiences)
	g.PUT("/experience/:id", h.Experience.UpdateExperience)
	g.DELETE("/experience/:id", h.Experience.DeleteExperience)

	g.POST("/person/:id/education", h.Education.CreateEducation)
	g.GET("/person/:id/education", h.Education.GetEducations)
	g.PUT("/education/:id", h.Education.UpdateEducation)
	g.DELETE("/education/:id", h.Education.DeleteEducation)

	g.POST("/person/:id/skill", h.Skill.CreateSkill)
	g.GET("/person/:id/skill", h.Skill.GetSkills)
	g.PUT("/skill/:id", h.Skill.UpdateSkill)
	g.DELETE("/skill/:id", h.Skill.DeleteSkill)
}
