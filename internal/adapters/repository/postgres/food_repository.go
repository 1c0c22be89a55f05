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

type foodRepository struct {
	db *sql.DB
}

func NewFoodRepository(db *sql.DB) ports.FoodRepository {
	return &foodRepository{
		db: db,
	}
}

func (r *foodRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Food, error) {
	query := `SELECT id, name, price, restaurant_id, created_at FROM foods WHERE id = $1`
	food := &domain.Food{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&food.ID, &food.Name, &food.Price, &food.RestaurantID, &food.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get food: %w", err)
	}
	return food, nil
}
