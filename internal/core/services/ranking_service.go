package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

const defaultPageSize = 10

type rankingService struct {
	restaurantRepo ports.RestaurantRepository
}

func NewRankingService(restaurantRepo ports.RestaurantRepository) ports.RankingService {
	return &rankingService{
		restaurantRepo: restaurantRepo,
	}
}

// TopRestaurants recomputes today's leaderboard on every call. Vote counts
// only consider the current day window; totalItems counts every restaurant
// matching the filter, voted for today or not.
func (s *rankingService) TopRestaurants(ctx context.Context, input ports.TopRestaurantsInput) (*domain.TopRestaurantsPage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	offset := (page - 1) * limit

	window := domain.DayWindowAt(time.Now())

	data, err := s.restaurantRepo.TopByVotes(ctx, window, input.Search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to rank restaurants: %w", err)
	}

	total, err := s.restaurantRepo.Count(ctx, input.Search)
	if err != nil {
		return nil, fmt.Errorf("failed to count restaurants: %w", err)
	}

	if data == nil {
		data = []domain.RestaurantVoteCount{}
	}

	return &domain.TopRestaurantsPage{
		Data: data,
		Meta: domain.PageMeta{
			CurrentPage:  page,
			ItemsPerPage: limit,
			TotalItems:   total,
			TotalPages:   (total + limit - 1) / limit,
		},
	}, nil
}
