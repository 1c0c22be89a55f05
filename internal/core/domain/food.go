package domain

import (
	"time"

	"github.com/google/uuid"
)

// Food belongs to exactly one restaurant. The relationship is immutable
// once created; the voting flow only ever reads it.
type Food struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	CreatedAt    time.Time `json:"createdAt"`
}
