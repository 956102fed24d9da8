package api

import (
	"github.com/labstack/echo/v4"

	"resume-service/internal/entity"
	"resume-service/internal/service"
)

type SkillHandler struct {
	skillService *service.SkillService
}

func NewSkillHandler(skillService *service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// CreateSkill --> POST /person/:id/skill
func (h *SkillHandler) CreateSkill(c echo.Context) error {
	personID, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	skill := entity.Skill{}
	if err := c.Bind(&skill); err != nil {
		return invalidPayload(c, err)
	}
	skill.PersonID = personID

	created, err := h.skillService.CreateSkill(c.Request().Context(), &skill)
	if err != nil {
		return failure(c, err, "Skill")
	}
	return c.JSON(201, created)
}

// GetSkills --> GET /person/:id/skill
func (h *SkillHandler) GetSkills(c echo.Context) error {
	personID, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	skills, err := h.skillService.GetSkillsByPerson(c.Request().Context(), personID)
	if err != nil {
		return failure(c, err, "Skill")
	}
	return c.JSON(200, skills)
}

// UpdateSkill --> PUT /skill/:id
func (h *SkillHandler) UpdateSkill(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	skill := entity.Skill{}
	if err := c.Bind(&skill); err != nil {
		return invalidPayload(c, err)
	}
	skill.ID = id

	updated, err := h.skillService.UpdateSkill(c.Request().Context(), &skill)
	if err != nil {
		return failure(c, err, "Skill")
	}
	return c.JSON(200, updated)
}

// DeleteSkill --> DELETE /skill/:id
func (h *SkillHandler) DeleteSkill(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	if err := h.skillService.DeleteSkill(c.Request().Context(), id); err != nil {
		return failure(c, err, "Skill")
	}
	return deleted(c, "Skill")
}
