package handler

import (
	"io"
	"net/http"
	"strconv"

	"portfolio/internal/delivery/api/response"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/usecase"
	"portfolio/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const contactThanks = "Thank you for your message! I will get back to you soon."

// ContactHandler serves the public contact form and the admin inbox.
type ContactHandler struct {
	uc usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Submit passes the raw body to the submission gate; decoding happens there
// so that throttled clients are refused before their payload is looked at.
func (h *ContactHandler) Submit(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}

		return domainerrors.ErrInvalidJSON
	}

	result, err := h.uc.Submit(c.Request().Context(), util.ClientIP(c.Request().Header), body)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

	return c.JSON(http.StatusCreated, map[string]any{
		"message": contactThanks,
		"success": true,
	})
}

// MethodNotAllowed answers GET on the contact endpoint.
func (h *ContactHandler) MethodNotAllowed(c echo.Context) error {
	return response.MethodNotAllowed(c)
}

// ListMessages returns the inbox, newest first.
func (h *ContactHandler) ListMessages(c echo.Context) error {
	messages, err := h.uc.ListMessages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages)
}

// DeleteMessage soft-deletes one message.
func (h *ContactHandler) DeleteMessage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid message id")
	}

	if err := h.uc.DeleteMessage(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Message deleted"})
}
