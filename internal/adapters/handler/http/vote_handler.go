package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

type VoteHandler struct {
	voteService    ports.VoteService
	rankingService ports.RankingService
}

func NewVoteHandler(voteService ports.VoteService, rankingService ports.RankingService) *VoteHandler {
	return &VoteHandler{
		voteService:    voteService,
		rankingService: rankingService,
	}
}

type castVoteRequest struct {
	FoodID       uuid.UUID `json:"foodId"`
	RestaurantID uuid.UUID `json:"restaurantId"`
}

// CastVote godoc
// @Summary      Casts the authenticated user's daily vote for a food item
// @Description  One vote per user per food per calendar day. Returns the created vote with user, food and restaurant attached.
// @Tags         votes
// @Accept       json
// @Success      201
// @Failure      400
// @Failure      404
// @Failure      409
// @Router       /votes [post]
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.FoodID == uuid.Nil || req.RestaurantID == uuid.Nil {
		http.Error(w, "foodId and restaurantId are required", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value(UserIDKey).(uuid.UUID)
	if !ok {
		http.Error(w, "Unauthorized: missing user context", http.StatusUnauthorized)
		return
	}

	input := ports.CastVoteInput{
		UserID:       userID,
		FoodID:       req.FoodID,
		RestaurantID: req.RestaurantID,
	}

	vote, err := h.voteService.CastVote(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrDuplicateVote) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(vote); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// TopRestaurants godoc
// @Summary      Lists restaurants ranked by today's vote count
// @Tags         votes
// @Param        page    query  int     false  "page number, starting at 1"
// @Param        limit   query  int     false  "page size, default 10"
// @Param        search  query  string  false  "case-insensitive name filter"
// @Success      200
// @Router       /votes/top-restaurants [get]
func (h *VoteHandler) TopRestaurants(w http.ResponseWriter, r *http.Request) {
	input := ports.TopRestaurantsInput{
		Search: r.URL.Query().Get("search"),
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		input.Page = page
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		input.Limit = limit
	}

	page, err := h.rankingService.TopRestaurants(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(page); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
