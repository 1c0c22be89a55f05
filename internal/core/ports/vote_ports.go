package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
)

type VoteRepository interface {
	Save(ctx context.Context, vote *domain.Vote) error
	HasVotedForFood(ctx context.Context, userID, foodID uuid.UUID, window domain.DayWindow) (bool, error)
	CountInWindow(ctx context.Context, window domain.DayWindow) (int64, error)
}

type CastVoteInput struct {
	UserID       uuid.UUID
	FoodID       uuid.UUID
	RestaurantID uuid.UUID
}

type VoteService interface {
	CastVote(ctx context.Context, input CastVoteInput) (*domain.Vote, error)
}
