package handler

import (
	"net/http"

	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CSRFHandler hands out anti-forgery tokens to the contact form.
type CSRFHandler struct {
	csrf service.CSRFService
}

// NewCSRFHandler is the constructor for CSRFHandler, injected by Fx.
func NewCSRFHandler(csrf service.CSRFService) *CSRFHandler {
	return &CSRFHandler{csrf: csrf}
}

// IssueToken returns a fresh token. The response must never be cached.
func (h *CSRFHandler) IssueToken(c echo.Context) error {
	token, err := h.csrf.Issue()
	if err != nil {
		return errors.Wrap(domainerrors.ErrUnexpected, err.Error())
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store, no-cache, must-revalidate")

	return c.JSON(http.StatusOK, map[string]string{"csrfToken": token})
}
