package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
)

type RestaurantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
	// TopByVotes returns restaurants matching the name filter ordered by
	// their vote count inside the window, highest first.
	TopByVotes(ctx context.Context, window domain.DayWindow, search string, limit, offset int) ([]domain.RestaurantVoteCount, error)
	Count(ctx context.Context, search string) (int, error)
}

type TopRestaurantsInput struct {
	Page   int
	Limit  int
	Search string
}

type RankingService interface {
	TopRestaurants(ctx context.Context, input TopRestaurantsInput) (*domain.TopRestaurantsPage, error)
}
