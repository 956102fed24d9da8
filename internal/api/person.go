package api

import (
	"github.com/labstack/echo/v4"

	"resume-service/internal/entity"
	"resume-service/internal/service"
)

type PersonHandler struct {
	personService *service.PersonService
	resumeService *service.ResumeService
}

// NewPersonHandler creates a new instance of PersonHandler
func NewPersonHandler(personService *service.PersonService, resumeService *service.ResumeService) *PersonHandler {
	return &PersonHandler{personService: personService, resumeService: resumeService}
}

// CreatePerson creates a new person --> POST /person
func (h *PersonHandler) CreatePerson(c echo.Context) error {
	person := entity.Person{}
	if err := c.Bind(&person); err != nil {
		return invalidPayload(c, err)
	}

	created, err := h.personService.CreatePerson(c.Request().Context(), &person)
	if err != nil {
		return failure(c, err, "Person")
	}
	return c.JSON(201, created)
}

// GetPersons lists persons ordered by name --> GET /person
func (h *PersonHandler) GetPersons(c echo.Context) error {
	persons, err := h.personService.GetPersons(c.Request().Context())
	if err != nil {
		return failure(c, err, "Person")
	}
	return c.JSON(200, persons)
}

// GetPersonByID retrieves a person by ID --> GET /person/:id
func (h *PersonHandler) GetPersonByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	person, err := h.personService.GetPersonByID(c.Request().Context(), id)
	if err != nil {
		return failure(c, err, "Person")
	}
	return c.JSON(200, person)
}

// UpdatePerson replaces a person --> PUT /person/:id
func (h *PersonHandler) UpdatePerson(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	person := entity.Person{}
	if err := c.Bind(&person); err != nil {
		return invalidPayload(c, err)
	}
	person.ID = id

	updated, err := h.personService.UpdatePerson(c.Request().Context(), &person)
	if err != nil {
		return failure(c, err, "Person")
	}
	return c.JSON(200, updated)
}

// DeletePerson deletes a person and its resume entries --> DELETE /person/:id
func (h *PersonHandler) DeletePerson(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	if err := h.personService.DeletePerson(c.Request().Context(), id); err != nil {
		return failure(c, err, "Person")
	}
	return deleted(c, "Person")
}

// GetFullResume returns the person with experiences, educations and skills --> GET /person/:id/full
func (h *PersonHandler) GetFullResume(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return invalidID(c, err)
	}
	resume, err := h.resumeService.GetFullResume(c.Request().Context(), id)
	if err != nil {
		return failure(c, err, "Person")
	}
	return c.JSON(200, resume)
}
