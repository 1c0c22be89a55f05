package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

type voteService struct {
	foodRepo       ports.FoodRepository
	voteRepo       ports.VoteRepository
	userRepo       ports.UserRepository
	restaurantRepo ports.RestaurantRepository
	emailService   ports.EmailService
}

func NewVoteService(
	foodRepo ports.FoodRepository,
	voteRepo ports.VoteRepository,
	userRepo ports.UserRepository,
	restaurantRepo ports.RestaurantRepository,
	emailService ports.EmailService,
) ports.VoteService {
	return &voteService{
		foodRepo:       foodRepo,
		voteRepo:       voteRepo,
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		emailService:   emailService,
	}
}

// CastVote validates and records a vote for a food item. A user may vote
// for the same food at most once per calendar day; the pre-check below
// handles the common case, but the unique index on votes is what actually
// decides races, so a constraint violation from Save surfaces as
// ErrDuplicateVote as well.
func (s *voteService) CastVote(ctx context.Context, input ports.CastVoteInput) (*domain.Vote, error) {
	food, err := s.foodRepo.GetByID(ctx, input.FoodID)
	if err != nil {
		return nil, err
	}
	if food == nil || food.RestaurantID != input.RestaurantID {
		return nil, domain.ErrFoodNotFound
	}

	window := domain.DayWindowAt(time.Now())

	voted, err := s.voteRepo.HasVotedForFood(ctx, input.UserID, input.FoodID, window)
	if err != nil {
		return nil, err
	}
	if voted {
		return nil, domain.ErrDuplicateVote
	}

	vote := &domain.Vote{
		ID:           uuid.New(),
		UserID:       input.UserID,
		FoodID:       input.FoodID,
		RestaurantID: food.RestaurantID,
		CreatedAt:    time.Now(),
	}

	if err := s.voteRepo.Save(ctx, vote); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID.String())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, food.RestaurantID)
	if err != nil {
		return nil, err
	}

	vote.User = user
	vote.Food = food
	vote.Restaurant = restaurant

	// The vote is committed at this point. A failed enqueue must not turn
	// a recorded vote into an error response, so it is only logged; the
	// queue owns retries once the job is in.
	if err := s.emailService.SendVoteConfirmation(ctx, user.Email, restaurant.Name, food.Name); err != nil {
		log.Printf("failed to enqueue vote confirmation for %s: %v", user.Email, err)
	}

	return vote, nil
}
