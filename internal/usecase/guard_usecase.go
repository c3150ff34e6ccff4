package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

const (
	// AdminPath is the root of the guarded namespace.
	AdminPath = "/admin"
	// LoginPath is the only unguarded page under AdminPath.
	LoginPath = "/admin/login"
)

// Decision is the outcome of a route authorization check.
type Decision struct {
	Allow      bool
	RedirectTo string // Login path to send the client to when Allow is false.
}

// RouteGuard decides per request whether a path may be served.
type RouteGuard interface {
	// IsProtected reports whether path lies in the admin namespace.
	IsProtected(path string) bool

	// Authorize evaluates path against the request session, which may be nil.
	Authorize(ctx context.Context, path string, session *entity.Session) Decision
}
