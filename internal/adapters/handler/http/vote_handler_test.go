package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVoteService struct {
	vote *domain.Vote
	err  error
}

func (s *stubVoteService) CastVote(_ context.Context, input ports.CastVoteInput) (*domain.Vote, error) {
	if s.err != nil {
		return nil, s.err
	}
	v := *s.vote
	v.UserID = input.UserID
	v.FoodID = input.FoodID
	return &v, nil
}

type stubRankingService struct {
	page *domain.TopRestaurantsPage
	got  ports.TopRestaurantsInput
}

func (s *stubRankingService) TopRestaurants(_ context.Context, input ports.TopRestaurantsInput) (*domain.TopRestaurantsPage, error) {
	s.got = input
	return s.page, nil
}

func castVoteRequestBody(t *testing.T) *bytes.Reader {
	t.Helper()
	body, err := json.Marshal(map[string]string{
		"foodId":       uuid.NewString(),
		"restaurantId": uuid.NewString(),
	})
	require.NoError(t, err)
	return bytes.NewReader(body)
}

func authenticated(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), UserIDKey, userID))
}

func TestCastVoteHandlerCreated(t *testing.T) {
	h := NewVoteHandler(&stubVoteService{vote: &domain.Vote{ID: uuid.New()}}, &stubRankingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/votes", castVoteRequestBody(t))
	req = authenticated(req, uuid.New())
	rec := httptest.NewRecorder()

	h.CastVote(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var vote domain.Vote
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&vote))
	assert.NotEqual(t, uuid.Nil, vote.ID)
}

func TestCastVoteHandlerStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"food not found", domain.ErrFoodNotFound, http.StatusNotFound},
		{"duplicate vote", domain.ErrDuplicateVote, http.StatusConflict},
		{"storage failure", fmt.Errorf("failed to save vote: connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewVoteHandler(&stubVoteService{err: tc.err}, &stubRankingService{})

			req := httptest.NewRequest(http.MethodPost, "/api/votes", castVoteRequestBody(t))
			req = authenticated(req, uuid.New())
			rec := httptest.NewRecorder()

			h.CastVote(rec, req)

			assert.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestCastVoteHandlerRejectsBadInput(t *testing.T) {
	h := NewVoteHandler(&stubVoteService{}, &stubRankingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/votes", bytes.NewReader([]byte(`{"foodId":"not-a-uuid"}`)))
	req = authenticated(req, uuid.New())
	rec := httptest.NewRecorder()
	h.CastVote(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/votes", bytes.NewReader([]byte(`{}`)))
	req = authenticated(req, uuid.New())
	rec = httptest.NewRecorder()
	h.CastVote(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCastVoteHandlerRequiresUserContext(t *testing.T) {
	h := NewVoteHandler(&stubVoteService{vote: &domain.Vote{}}, &stubRankingService{})

	req := httptest.NewRequest(http.MethodPost, "/api/votes", castVoteRequestBody(t))
	rec := httptest.NewRecorder()

	h.CastVote(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTopRestaurantsHandlerParsesQuery(t *testing.T) {
	ranking := &stubRankingService{page: &domain.TopRestaurantsPage{
		Data: []domain.RestaurantVoteCount{},
		Meta: domain.PageMeta{CurrentPage: 2, ItemsPerPage: 5},
	}}
	h := NewVoteHandler(&stubVoteService{}, ranking)

	req := httptest.NewRequest(http.MethodGet, "/api/votes/top-restaurants?page=2&limit=5&search=kabab", nil)
	rec := httptest.NewRecorder()

	h.TopRestaurants(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ports.TopRestaurantsInput{Page: 2, Limit: 5, Search: "kabab"}, ranking.got)
}

func TestTopRestaurantsHandlerRejectsBadQuery(t *testing.T) {
	h := NewVoteHandler(&stubVoteService{}, &stubRankingService{})

	for _, target := range []string{
		"/api/votes/top-restaurants?page=0",
		"/api/votes/top-restaurants?page=abc",
		"/api/votes/top-restaurants?limit=-1",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		h.TopRestaurants(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}
