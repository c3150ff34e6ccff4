// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portfolio/internal/delivery/api/middleware"
	"portfolio/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CSRFHandler     *handler.CSRFHandler
	ContactHandler  *handler.ContactHandler
	AuthHandler     *handler.AuthHandler
	AdminHandler    *handler.AdminHandler
	ContentHandler  *handler.ContentHandler
	SiteHandler     *handler.SiteHandler
	GuardMiddleware *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	csrfHandler     *handler.CSRFHandler
	contactHandler  *handler.ContactHandler
	authHandler     *handler.AuthHandler
	adminHandler    *handler.AdminHandler
	contentHandler  *handler.ContentHandler
	siteHandler     *handler.SiteHandler
	guardMiddleware *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		csrfHandler:     params.CSRFHandler,
		contactHandler:  params.ContactHandler,
		authHandler:     params.AuthHandler,
		adminHandler:    params.AdminHandler,
		contentHandler:  params.ContentHandler,
		siteHandler:     params.SiteHandler,
		guardMiddleware: params.GuardMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public API
	publicGroup := e.Group("/api")
	{
		publicGroup.GET("/csrf", r.csrfHandler.IssueToken)
		publicGroup.POST("/contact", r.contactHandler.Submit)
		publicGroup.GET("/contact", r.contactHandler.MethodNotAllowed)
		publicGroup.GET("/github", r.siteHandler.GitHubRepos)
		publicGroup.GET("/portfolio", r.siteHandler.Portfolio)
	}

	// Everything under /admin passes the guard; it lets the login page through.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.guardMiddleware.Protect)
	{
		adminGroup.GET("", r.adminHandler.Dashboard)
		adminGroup.GET("/login", r.authHandler.LoginPage)
		adminGroup.POST("/login", r.authHandler.Login)
		adminGroup.POST("/logout", r.authHandler.Logout)
	}

	adminAPI := adminGroup.Group("/api")
	{
		adminAPI.GET("/messages", r.contactHandler.ListMessages)
		adminAPI.DELETE("/messages/:id", r.contactHandler.DeleteMessage)

		adminAPI.GET("/hero", r.contentHandler.GetHero)
		adminAPI.PUT("/hero", r.contentHandler.SaveHero)

		adminAPI.GET("/projects", r.contentHandler.ListProjects)
		adminAPI.POST("/projects", r.contentHandler.CreateProject)
		adminAPI.GET("/projects/:id", r.contentHandler.GetProject)
		adminAPI.PUT("/projects/:id", r.contentHandler.UpdateProject)
		adminAPI.DELETE("/projects/:id", r.contentHandler.DeleteProject)

		adminAPI.GET("/skills", r.contentHandler.ListSkills)
		adminAPI.POST("/skills", r.contentHandler.CreateSkill)
		adminAPI.DELETE("/skills/:id", r.contentHandler.DeleteSkill)

		adminAPI.PUT("/settings/credentials", r.adminHandler.UpdateCredentials)
	}
}
