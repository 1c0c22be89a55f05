package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vote records one user's endorsement of one food item on one calendar day.
// RestaurantID is denormalized from the food so the ranking query never has
// to join through foods. Votes are never mutated after creation.
type Vote struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	FoodID       uuid.UUID `json:"foodId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	CreatedAt    time.Time `json:"createdAt"`

	User       *User       `json:"user,omitempty"`
	Food       *Food       `json:"food,omitempty"`
	Restaurant *Restaurant `json:"restaurant,omitempty"`
}
