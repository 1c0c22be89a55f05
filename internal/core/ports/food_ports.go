package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
)

type FoodRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Food, error)
}
