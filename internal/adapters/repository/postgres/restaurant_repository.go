package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

type restaurantRepository struct {
	db *sql.DB
}

func NewRestaurantRepository(db *sql.DB) ports.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

func (r *restaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	query := `SELECT id, name, address, created_at FROM restaurants WHERE id = $1`
	restaurant := &domain.Restaurant{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&restaurant.ID, &restaurant.Name, &restaurant.Address, &restaurant.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return restaurant, nil
}

// TopByVotes ranks restaurants by vote count inside the window. Restaurants
// without votes today still appear with a count of zero. Ties are broken by
// restaurant id so repeated calls paginate the same order.
func (r *restaurantRepository) TopByVotes(ctx context.Context, window domain.DayWindow, search string, limit, offset int) ([]domain.RestaurantVoteCount, error) {
	query := `
		SELECT r.id, r.name, r.address, COUNT(v.id) AS vote_count
		FROM restaurants r
		LEFT JOIN votes v ON v.restaurant_id = r.id AND v.created_at >= $1 AND v.created_at < $2
		WHERE $3 = '' OR r.name ILIKE '%' || $3 || '%'
		GROUP BY r.id
		ORDER BY vote_count DESC, r.id ASC
		LIMIT $4 OFFSET $5
	`
	rows, err := r.db.QueryContext(ctx, query, window.Start, window.End, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to rank restaurants: %w", err)
	}
	defer rows.Close()

	var ranking []domain.RestaurantVoteCount
	for rows.Next() {
		var row domain.RestaurantVoteCount
		if err := rows.Scan(&row.ID, &row.Name, &row.Address, &row.VoteCount); err != nil {
			return nil, fmt.Errorf("failed to scan ranking row: %w", err)
		}
		ranking = append(ranking, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ranking rows: %w", err)
	}
	return ranking, nil
}

func (r *restaurantRepository) Count(ctx context.Context, search string) (int, error) {
	query := `SELECT COUNT(*) FROM restaurants WHERE $1 = '' OR name ILIKE '%' || $1 || '%'`
	var count int
	if err := r.db.QueryRowContext(ctx, query, search).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count restaurants: %w", err)
	}
	return count, nil
}
