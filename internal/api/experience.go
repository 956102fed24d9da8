package api

import (
	"github.com/labstack/echo/v4"

	"resume-service/internal/entity"
	"resume-service/internal/service"
)

type ExperienceHandler struct {
	experienceService *service.ExperienceService
}

func NewExperienceHandler(experienceService *service.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{experienceService: experienceService}
}

// CreateExperience --> POST /person/:id/experience
func (h *ExperienceHandler) CreateExperience(c echo.Context) error {
	personID, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	experience := entity.Experience{}
	if err := c.Bind(&experience); err != nil {
		return invalidPayload(c, err)
	}
	experience.PersonID = personID

	created, err := h.experienceService.CreateExperience(c.Request().Context(), &experience)
	if err != nil {
		return failure(c, err, "Experience")
	}
	return c.JSON(201, created)
}

// GetExperiences --> GET /person/:id/experience
func (h *ExperienceHandler) GetExperiences(c echo.Context) error {
	personID, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	experiences, err := h.experienceService.GetExperiencesByPerson(c.Request().Context(), personID)
	if err != nil {
		return failure(c, err, "Experience")
	}
	return c.JSON(200, experiences)
}

// UpdateExperience --> PUT /experience/:id
func (h *ExperienceHandler) UpdateExperience(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	experience := entity.Experience{}
	if err := c.Bind(&experience); err != nil {
		return invalidPayload(c, err)
	}
	experience.ID = id

	updated, err := h.experienceService.UpdateExperience(c.Request().Context(), &experience)
	if err != nil {
		return failure(c, err, "Experience")
	}
	return c.JSON(200, updated)
}

// DeleteExperience --> DELETE /experience/:id
func (h *ExperienceHandler) DeleteExperience(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	if err := h.experienceService.DeleteExperience(c.Request().Context(), id); err != nil {
		return failure(c, err, "Experience")
	}
	return deleted(c, "Experience")
}
