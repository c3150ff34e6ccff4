package impl

import (
	"context"
	"strings"

	"portfolio/internal/domain/entity"
	"portfolio/internal/usecase"
)

type routeGuard struct {
	auth usecase.AuthUsecase
}

// NewRouteGuard is the constructor for the route guard.
func NewRouteGuard(auth usecase.AuthUsecase) usecase.RouteGuard {
	return &routeGuard{auth: auth}
}

func (g *routeGuard) IsProtected(path string) bool {
	if path != usecase.AdminPath && !strings.HasPrefix(path, usecase.AdminPath+"/") {
		return false
	}

	return path != usecase.LoginPath && !strings.HasPrefix(path, usecase.LoginPath+"/")
}

// Authorize is evaluated on every request; nothing about the decision is cached.
func (g *routeGuard) Authorize(ctx context.Context, path string, session *entity.Session) usecase.Decision {
	if !g.IsProtected(path) {
		return usecase.Decision{Allow: true}
	}

	if g.auth.ValidateSession(ctx, session) {
		return usecase.Decision{Allow: true}
	}

	return usecase.Decision{RedirectTo: usecase.LoginPath}
}
