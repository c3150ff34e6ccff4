package handler

import (
	"net/http"

	"portfolio/internal/delivery/api/response"
	"portfolio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler administers hero, projects and skills.
type ContentHandler struct {
	uc usecase.ContentUsecase
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// GetHero returns the hero section, or null when none was saved yet.
func (h *ContentHandler) GetHero(c echo.Context) error {
	hero, err := h.uc.GetHero(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hero)
}

// SaveHero updates the hero section or creates it.
func (h *ContentHandler) SaveHero(c echo.Context) error {
	var input usecase.HeroInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hero input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	hero, err := h.uc.SaveHero(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, hero)
}

func (h *ContentHandler) ListProjects(c echo.Context) error {
	projects, err := h.uc.ListProjects(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects)
}

func (h *ContentHandler) GetProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project id")
	}

	project, err := h.uc.GetProject(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project)
}

func (h *ContentHandler) CreateProject(c echo.Context) error {
	var input usecase.ProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.uc.CreateProject(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, project)
}

func (h *ContentHandler) UpdateProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project id")
	}

	var input usecase.ProjectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid project input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	project, err := h.uc.UpdateProject(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project)
}

func (h *ContentHandler) DeleteProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid project id")
	}

	if err := h.uc.DeleteProject(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Project deleted"})
}

func (h *ContentHandler) ListSkills(c echo.Context) error {
	skills, err := h.uc.ListSkills(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, skills)
}

func (h *ContentHandler) CreateSkill(c echo.Context) error {
	var input usecase.SkillInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid skill input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	skill, err := h.uc.CreateSkill(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, skill)
}

func (h *ContentHandler) DeleteSkill(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid skill id")
	}

	if err := h.uc.DeleteSkill(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Skill deleted"})
}
