package handler

import (
	"net/http"
	"strconv"

	"portfolio/config"
	"portfolio/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SiteHandler serves the public read endpoints of the landing page.
type SiteHandler struct {
	portfolio usecase.PortfolioUsecase
	github    usecase.GitHubUsecase
	cacheTTL  int
}

// NewSiteHandler is the constructor for SiteHandler, injected by Fx.
func NewSiteHandler(portfolio usecase.PortfolioUsecase, github usecase.GitHubUsecase, cfg *config.Config) *SiteHandler {
	return &SiteHandler{
		portfolio: portfolio,
		github:    github,
		cacheTTL:  int(cfg.GitHub.CacheTTL.Seconds()),
	}
}

// Portfolio returns hero, projects and skills, with defaults for empty parts.
func (h *SiteHandler) Portfolio(c echo.Context) error {
	return c.JSON(http.StatusOK, h.portfolio.GetPortfolio(c.Request().Context()))
}

// GitHubRepos always answers 200; degraded answers carry an error field
// and are not cacheable.
func (h *SiteHandler) GitHubRepos(c echo.Context) error {
	repos := h.github.ListRepos(c.Request().Context())

	cacheControl := "no-store"
	if repos.Cacheable() {
		cacheControl = "public, max-age=" + strconv.Itoa(h.cacheTTL)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, cacheControl)

	return c.JSON(http.StatusOK, repos)
}
