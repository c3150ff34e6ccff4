package usecase

import "context"

// SeedResult reports which content sections were populated.
type SeedResult struct {
	Hero     bool
	Skills   int
	Projects int
}

// SeedUsecase fills empty content tables with starter content.
type SeedUsecase interface {
	// Seed only touches sections that are still empty.
	Seed(ctx context.Context) (*SeedResult, error)
}
