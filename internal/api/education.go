package api

import (
	"github.com/labstack/echo/v4"

	"resume-service/internal/entity"
	"resume-service/internal/service"
)

type EducationHandler struct {
	educationService *service.EducationService
}

func NewEducationHandler(educationService *service.EducationService) *EducationHandler {
	return &EducationHandler{educationService: educationService}
}

// CreateEducation --> POST /person/:id/education
func (h *EducationHandler) CreateEducation(c echo.Context) error {
	personID, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	education := entity.Education{}
	if err := c.Bind(&education); err != nil {
		return invalidPayload(c, err)
	}
	education.PersonID = personID

	created, err := h.educationService.CreateEducation(c.Request().Context(), &education)
	if err != nil {
		return failure(c, err, "Education")
	}
	return c.JSON(201, created)
}

// GetEducations --> GET /person/:id/education
func (h *EducationHandler) GetEducations(c echo.Context) error {
	personID, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	educations, err := h.educationService.GetEducationsByPerson(c.Request().Context(), personID)
	if err != nil {
		return failure(c, err, "Education")
	}
	return c.JSON(200, educations)
}

// UpdateEducation --> PUT /education/:id
func (h *EducationHandler) UpdateEducation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	education := entity.Education{}
	if err := c.Bind(&education); err != nil {
		return invalidPayload(c, err)
	}
	education.ID = id

	updated, err := h.educationService.UpdateEducation(c.Request().Context(), &education)
	if err != nil {
		return failure(c, err, "Education")
	}
	return c.JSON(200, updated)
}

// DeleteEducation --> DELETE /education/:id
func (h *EducationHandler) DeleteEducation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	if err := h.educationService.DeleteEducation(c.Request().Context(), id); err != nil {
		return failure(c, err, "Education")
	}
	return deleted(c, "Education")
}
