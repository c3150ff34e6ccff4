package middleware

import (
	"strconv"

	"portfolio/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	defaultHSTSMaxAge        = 63072000
	defaultPermissionsPolicy = "camera=(), microphone=(), geolocation=(), interest-cohort=()"
)

// SecurityHeadersMiddleware sets the browser hardening headers on every response.
type SecurityHeadersMiddleware struct {
	secure            echo.MiddlewareFunc
	hsts              string
	permissionsPolicy string
}

// NewSecurityHeadersMiddleware builds the header set from configuration.
func NewSecurityHeadersMiddleware(cfg *config.Config) *SecurityHeadersMiddleware {
	headers := cfg.SecurityHeaders
	if headers == nil {
		headers = &config.SecurityHeadersConfig{}
	}

	hstsMaxAge := headers.HSTSMaxAge
	if hstsMaxAge <= 0 {
		hstsMaxAge = defaultHSTSMaxAge
	}

	permissionsPolicy := headers.PermissionsPolicy
	if permissionsPolicy == "" {
		permissionsPolicy = defaultPermissionsPolicy
	}

	return &SecurityHeadersMiddleware{
		secure: echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
			XSSProtection:         "1; mode=block",
			ContentTypeNosniff:    "nosniff",
			XFrameOptions:         "SAMEORIGIN",
			ContentSecurityPolicy: headers.ContentSecurityPolicy,
			ReferrerPolicy:        "strict-origin-when-cross-origin",
		}),
		hsts:              "max-age=" + strconv.Itoa(hstsMaxAge) + "; includeSubDomains; preload",
		permissionsPolicy: permissionsPolicy,
	}
}

// Handle applies the headers before the handler runs.
func (m *SecurityHeadersMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return m.secure(func(c echo.Context) error {
		header := c.Response().Header()
		header.Set("X-DNS-Prefetch-Control", "on")
		header.Set("Permissions-Policy", m.permissionsPolicy)
		// Sent unconditionally: TLS terminates at the proxy in front of the app.
		header.Set(echo.HeaderStrictTransportSecurity, m.hsts)

		return next(c)
	})
}
