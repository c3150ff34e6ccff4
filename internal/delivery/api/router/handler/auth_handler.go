package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	deliverycontext "portfolio/internal/delivery/context"
	domainerrors "portfolio/internal/domain/errors"
	"portfolio/internal/domain/service"
	"portfolio/internal/usecase"
	"portfolio/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// loginFailedCode is appended to the login page URL after a rejected form post.
const loginFailedCode = "CredentialsSignin"

var loginPage = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Admin login</title></head>
<body>
<form method="post" action="/admin/login">
{{if .Failed}}<p role="alert">Invalid credentials</p>{{end}}
<input type="hidden" name="callbackUrl" value="{{.CallbackURL}}">
<label>Username <input name="username" autocomplete="username" required></label>
<label>Password <input name="password" type="password" autocomplete="current-password" required></label>
<button type="submit">Sign in</button>
</form>
</body>
</html>
`))

// AuthHandler serves the admin login and logout endpoints.
type AuthHandler struct {
	auth     usecase.AuthUsecase
	sessions service.SessionManager
	logger   *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(auth usecase.AuthUsecase, sessions service.SessionManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		sessions: sessions,
		logger:   logger,
	}
}

// LoginPage renders the sign-in form.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	var page strings.Builder
	err := loginPage.Execute(&page, map[string]any{
		"Failed":      c.QueryParam("error") != "",
		"CallbackURL": safeCallback(c.QueryParam("callbackUrl")),
	})
	if err != nil {
		return errors.Wrap(err, "render login page")
	}

	return c.HTML(http.StatusOK, page.String())
}

// Login accepts the form or a JSON body. A body that cannot be decoded is
// treated as empty credentials so it fails like any other bad login.
func (h *AuthHandler) Login(c echo.Context) error {
	input := &usecase.LoginInput{}
	if err := c.Bind(input); err != nil {
		input = &usecase.LoginInput{}
	}

	callback := safeCallback(c.QueryParam("callbackUrl"))
	if form := c.FormValue("callbackUrl"); form != "" {
		callback = safeCallback(form)
	}

	session, err := h.auth.Login(c.Request().Context(), util.ClientIP(c.Request().Header), input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) && !isJSONRequest(c) {
			return c.Redirect(http.StatusSeeOther, loginURL(callback, true))
		}

		return errors.WithStack(err)
	}

	if err := h.sessions.Issue(c.Response(), c.Request(), session); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Failed to issue session cookie", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrUnexpected, err.Error())
	}

	return c.Redirect(http.StatusSeeOther, callback)
}

// Logout clears the session cookie and returns to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessions.Revoke(c.Response(), c.Request()); err != nil {
		return errors.Wrap(err, "revoke session")
	}

	return c.Redirect(http.StatusSeeOther, usecase.LoginPath)
}

// safeCallback keeps post-login redirects inside the admin area.
func safeCallback(raw string) string {
	target, err := url.Parse(raw)
	if err != nil || raw == "" || target.IsAbs() || target.Host != "" || strings.Contains(raw, "\\") {
		return usecase.AdminPath
	}

	path := target.Path
	if path != usecase.AdminPath && !strings.HasPrefix(path, usecase.AdminPath+"/") {
		return usecase.AdminPath
	}
	if path == usecase.LoginPath || strings.HasPrefix(path, usecase.LoginPath+"/") {
		return usecase.AdminPath
	}

	return target.RequestURI()
}

func loginURL(callback string, failed bool) string {
	query := url.Values{}
	if callback != usecase.AdminPath {
		query.Set("callbackUrl", callback)
	}
	if failed {
		query.Set("error", loginFailedCode)
	}

	if len(query) == 0 {
		return usecase.LoginPath
	}

	return usecase.LoginPath + "?" + query.Encode()
}

func isJSONRequest(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}
