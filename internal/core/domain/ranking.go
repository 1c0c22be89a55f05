package domain

import "github.com/google/uuid"

// RestaurantVoteCount is one leaderboard row: a restaurant and its vote
// count within the requested day window.
type RestaurantVoteCount struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	VoteCount int64     `json:"voteCount"`
}

type PageMeta struct {
	CurrentPage  int `json:"currentPage"`
	ItemsPerPage int `json:"itemsPerPage"`
	TotalItems   int `json:"totalItems"`
	TotalPages   int `json:"totalPages"`
}

type TopRestaurantsPage struct {
	Data []RestaurantVoteCount `json:"data"`
	Meta PageMeta              `json:"meta"`
}
