package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"portfolio/internal/domain/entity"
	domainerrors "portfolio/internal/domain/errors"
	mockSvc "portfolio/internal/mocks/service"
	mockUC "portfolio/internal/mocks/usecase"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSafeCallback(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "", want: "/admin"},
		{raw: "/admin/projects", want: "/admin/projects"},
		{raw: "/admin/projects?tab=video", want: "/admin/projects?tab=video"},
		{raw: "/admin/login", want: "/admin"},
		{raw: "https://evil.example/admin", want: "/admin"},
		{raw: "//evil.example/admin", want: "/admin"},
		{raw: "/\\evil.example", want: "/admin"},
		{raw: "/api/contact", want: "/admin"},
		{raw: "/administrator", want: "/admin"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, safeCallback(tt.raw))
		})
	}
}

func newLoginContext(body, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set("X-Forwarded-For", "198.51.100.20")
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success keeps callback", func(t *testing.T) {
		auth := mockUC.NewMockAuthUsecase(t)
		sessions := mockSvc.NewMockSessionManager(t)
		h := NewAuthHandler(auth, sessions, nil)

		session := &entity.Session{Fingerprint: "fp"}
		auth.EXPECT().
			Login(mock.Anything, "198.51.100.20", &usecase.LoginInput{Username: "admin", Password: "pw"}).
			Return(session, nil)
		sessions.EXPECT().Issue(mock.Anything, mock.Anything, session).Return(nil)

		form := url.Values{"username": {"admin"}, "password": {"pw"}, "callbackUrl": {"/admin/skills"}}
		c, rec := newLoginContext(form.Encode(), echo.MIMEApplicationForm)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/skills", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("form failure returns to login page", func(t *testing.T) {
		auth := mockUC.NewMockAuthUsecase(t)
		h := NewAuthHandler(auth, mockSvc.NewMockSessionManager(t), nil)
		auth.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		form := url.Values{"username": {"admin"}, "password": {"nope"}, "callbackUrl": {"/admin/hero"}}
		c, rec := newLoginContext(form.Encode(), echo.MIMEApplicationForm)

		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin/login?callbackUrl=%2Fadmin%2Fhero&error=CredentialsSignin", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("malformed json fails like bad credentials", func(t *testing.T) {
		auth := mockUC.NewMockAuthUsecase(t)
		h := NewAuthHandler(auth, mockSvc.NewMockSessionManager(t), nil)
		auth.EXPECT().Login(mock.Anything, mock.Anything, &usecase.LoginInput{}).Return(nil, domainerrors.ErrInvalidCredentials)

		c, _ := newLoginContext(`{"username":`, echo.MIMEApplicationJSON)

		err := h.Login(c)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("throttled", func(t *testing.T) {
		auth := mockUC.NewMockAuthUsecase(t)
		h := NewAuthHandler(auth, mockSvc.NewMockSessionManager(t), nil)
		auth.EXPECT().Login(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewRateLimitError(domainerrors.ErrTooManyLoginAttempts, 60))

		form := url.Values{"username": {"admin"}, "password": {"pw"}}
		c, _ := newLoginContext(form.Encode(), echo.MIMEApplicationForm)

		var rateErr *domainerrors.RateLimitError
		assert.True(t, errors.As(h.Login(c), &rateErr))
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	sessions := mockSvc.NewMockSessionManager(t)
	h := NewAuthHandler(mockUC.NewMockAuthUsecase(t), sessions, nil)
	sessions.EXPECT().Revoke(mock.Anything, mock.Anything).Return(nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/admin/logout", nil), rec)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))
}
