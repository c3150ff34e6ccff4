package usecase

import (
	"context"

	"portfolio/internal/domain/entity"
)

// Dashboard summarises the admin area.
type Dashboard struct {
	Projects       int64                       `json:"projects"`
	Skills         int64                       `json:"skills"`
	Messages       int64                       `json:"messages"`
	RecentMessages []*entity.ContactSubmission `json:"recentMessages"`
}

// Portfolio is the public read model of the landing page.
type Portfolio struct {
	Hero     *entity.HeroSection `json:"hero"`
	Projects []*entity.Project   `json:"projects"`
	Skills   []*entity.Skill     `json:"skills"`
	// SkillGroups buckets Skills by the showcase categories video, photo and web.
	SkillGroups map[string][]*entity.Skill `json:"skillGroups"`
	Fallback    bool                       `json:"fallback"` // True when any part is default content.
}

// PortfolioUsecase serves read-only views over the stored content.
type PortfolioUsecase interface {
	// GetPortfolio never fails: empty or unreachable storage yields defaults.
	GetPortfolio(ctx context.Context) *Portfolio

	// GetDashboard returns counts and the five most recent messages.
	GetDashboard(ctx context.Context) (*Dashboard, error)
}
