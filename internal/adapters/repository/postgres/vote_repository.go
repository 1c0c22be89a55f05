package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

const uniqueViolation = "23505"

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Save inserts the vote. The unique index on (user_id, food_id, vote_day)
// is the source of truth for the one-vote-per-day rule; when a concurrent
// duplicate wins the race, the constraint violation comes back as
// domain.ErrDuplicateVote rather than a storage error.
func (r *voteRepository) Save(ctx context.Context, vote *domain.Vote) error {
	query := `
		INSERT INTO votes (id, user_id, food_id, restaurant_id, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.ExecContext(ctx, query, vote.ID, vote.UserID, vote.FoodID, vote.RestaurantID, vote.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrDuplicateVote
		}
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

func (r *voteRepository) HasVotedForFood(ctx context.Context, userID, foodID uuid.UUID, window domain.DayWindow) (bool, error) {
	query := `
		SELECT 1 FROM votes
		WHERE user_id = $1 AND food_id = $2 AND created_at >= $3 AND created_at < $4
		LIMIT 1
	`
	var exists int
	err := r.db.QueryRowContext(ctx, query, userID, foodID, window.Start, window.End).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return true, nil
}

func (r *voteRepository) CountInWindow(ctx context.Context, window domain.DayWindow) (int64, error) {
	query := `SELECT COUNT(*) FROM votes WHERE created_at >= $1 AND created_at < $2`
	var count int64
	if err := r.db.QueryRowContext(ctx, query, window.Start, window.End).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}
