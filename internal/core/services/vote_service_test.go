package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFoodRepo struct {
	foods map[uuid.UUID]*domain.Food
}

func (r *fakeFoodRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Food, error) {
	return r.foods[id], nil
}

type fakeVoteRepo struct {
	votes   []*domain.Vote
	saveErr error
}

func (r *fakeVoteRepo) Save(_ context.Context, vote *domain.Vote) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.votes = append(r.votes, vote)
	return nil
}

func (r *fakeVoteRepo) HasVotedForFood(_ context.Context, userID, foodID uuid.UUID, window domain.DayWindow) (bool, error) {
	for _, v := range r.votes {
		if v.UserID == userID && v.FoodID == foodID && window.Contains(v.CreatedAt) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeVoteRepo) CountInWindow(_ context.Context, window domain.DayWindow) (int64, error) {
	var count int64
	for _, v := range r.votes {
		if window.Contains(v.CreatedAt) {
			count++
		}
	}
	return count, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	r.users[user.ID.String()] = user
	return nil
}

type fakeRestaurantRepo struct {
	restaurants map[uuid.UUID]*domain.Restaurant
}

func (r *fakeRestaurantRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	return r.restaurants[id], nil
}

func (r *fakeRestaurantRepo) TopByVotes(_ context.Context, _ domain.DayWindow, _ string, _, _ int) ([]domain.RestaurantVoteCount, error) {
	return nil, nil
}

func (r *fakeRestaurantRepo) Count(_ context.Context, _ string) (int, error) {
	return len(r.restaurants), nil
}

type fakeEmailService struct {
	sendErr error
	sent    []domain.VoteConfirmationPayload
}

func (s *fakeEmailService) SendVoteConfirmation(_ context.Context, email, restaurantName, foodName string) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, domain.VoteConfirmationPayload{
		Email:          email,
		RestaurantName: restaurantName,
		FoodName:       foodName,
	})
	return nil
}

type voteFixture struct {
	service      ports.VoteService
	voteRepo     *fakeVoteRepo
	emailService *fakeEmailService
	user         *domain.User
	restaurant   *domain.Restaurant
	food         *domain.Food
}

func newVoteFixture() *voteFixture {
	user := &domain.User{ID: uuid.New(), Email: "voter@example.com"}
	restaurant := &domain.Restaurant{ID: uuid.New(), Name: "Star Kabab", Address: "23/B Gulshan Avenue, Dhaka"}
	food := &domain.Food{ID: uuid.New(), Name: "Chicken Kabab", RestaurantID: restaurant.ID}

	voteRepo := &fakeVoteRepo{}
	emailService := &fakeEmailService{}

	service := NewVoteService(
		&fakeFoodRepo{foods: map[uuid.UUID]*domain.Food{food.ID: food}},
		voteRepo,
		&fakeUserRepo{users: map[string]*domain.User{user.ID.String(): user}},
		&fakeRestaurantRepo{restaurants: map[uuid.UUID]*domain.Restaurant{restaurant.ID: restaurant}},
		emailService,
	)

	return &voteFixture{
		service:      service,
		voteRepo:     voteRepo,
		emailService: emailService,
		user:         user,
		restaurant:   restaurant,
		food:         food,
	}
}

func TestCastVote(t *testing.T) {
	f := newVoteFixture()

	vote, err := f.service.CastVote(context.Background(), ports.CastVoteInput{
		UserID:       f.user.ID,
		FoodID:       f.food.ID,
		RestaurantID: f.restaurant.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, f.user.ID, vote.UserID)
	assert.Equal(t, f.food.ID, vote.FoodID)
	assert.Equal(t, f.restaurant.ID, vote.RestaurantID)
	require.NotNil(t, vote.User)
	require.NotNil(t, vote.Food)
	require.NotNil(t, vote.Restaurant)
	assert.Equal(t, f.user.Email, vote.User.Email)

	require.Len(t, f.voteRepo.votes, 1)
	require.Len(t, f.emailService.sent, 1)
	assert.Equal(t, domain.VoteConfirmationPayload{
		Email:          f.user.Email,
		RestaurantName: f.restaurant.Name,
		FoodName:       f.food.Name,
	}, f.emailService.sent[0])
}

func TestCastVoteUnknownFood(t *testing.T) {
	f := newVoteFixture()

	_, err := f.service.CastVote(context.Background(), ports.CastVoteInput{
		UserID:       f.user.ID,
		FoodID:       uuid.New(),
		RestaurantID: f.restaurant.ID,
	})

	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	assert.Empty(t, f.voteRepo.votes)
}

func TestCastVoteWrongRestaurant(t *testing.T) {
	f := newVoteFixture()

	_, err := f.service.CastVote(context.Background(), ports.CastVoteInput{
		UserID:       f.user.ID,
		FoodID:       f.food.ID,
		RestaurantID: uuid.New(),
	})

	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	assert.Empty(t, f.voteRepo.votes, "no vote may be created for a food under the wrong restaurant")
}

func TestCastVoteTwiceSameDay(t *testing.T) {
	f := newVoteFixture()
	input := ports.CastVoteInput{
		UserID:       f.user.ID,
		FoodID:       f.food.ID,
		RestaurantID: f.restaurant.ID,
	}

	_, err := f.service.CastVote(context.Background(), input)
	require.NoError(t, err)

	_, err = f.service.CastVote(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrDuplicateVote)
	assert.Len(t, f.voteRepo.votes, 1, "exactly one vote persisted")
	assert.Len(t, f.emailService.sent, 1, "only the first vote is confirmed")
}

func TestCastVoteNewDayResetsScope(t *testing.T) {
	f := newVoteFixture()

	// yesterday's vote must not block today's
	f.voteRepo.votes = append(f.voteRepo.votes, &domain.Vote{
		ID:           uuid.New(),
		UserID:       f.user.ID,
		FoodID:       f.food.ID,
		RestaurantID: f.restaurant.ID,
		CreatedAt:    time.Now().AddDate(0, 0, -1),
	})

	_, err := f.service.CastVote(context.Background(), ports.CastVoteInput{
		UserID:       f.user.ID,
		FoodID:       f.food.ID,
		RestaurantID: f.restaurant.ID,
	})

	require.NoError(t, err)
	assert.Len(t, f.voteRepo.votes, 2)
}

func TestCastVoteLostInsertRace(t *testing.T) {
	// the pre-check passes but the store rejects the insert because a
	// concurrent duplicate won; must come back as a duplicate, not a
	// storage error
	f := newVoteFixture()
	f.voteRepo.saveErr = domain.ErrDuplicateVote

	_, err := f.service.CastVote(context.Background(), ports.CastVoteInput{
		UserID:       f.user.ID,
		FoodID:       f.food.ID,
		RestaurantID: f.restaurant.ID,
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateVote)
	assert.Empty(t, f.emailService.sent, "no confirmation for a rejected vote")
}

func TestCastVoteSucceedsWhenEnqueueFails(t *testing.T) {
	f := newVoteFixture()
	f.emailService.sendErr = errors.New("queue unavailable")

	vote, err := f.service.CastVote(context.Background(), ports.CastVoteInput{
		UserID:       f.user.ID,
		FoodID:       f.food.ID,
		RestaurantID: f.restaurant.ID,
	})

	require.NoError(t, err, "notification failure must not fail the vote")
	assert.NotNil(t, vote)
	assert.Len(t, f.voteRepo.votes, 1)
}
