package services

import (
	"context"
	"time"

	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

type emailService struct {
	queue ports.EmailQueue
}

func NewEmailService(queue ports.EmailQueue) ports.EmailService {
	return &emailService{
		queue: queue,
	}
}

// SendVoteConfirmation enqueues a confirmation mail for a recorded vote.
// Delivery is the queue's problem: up to 3 attempts with exponential
// backoff starting at one second.
func (s *emailService) SendVoteConfirmation(ctx context.Context, email, restaurantName, foodName string) error {
	payload := domain.VoteConfirmationPayload{
		Email:          email,
		RestaurantName: restaurantName,
		FoodName:       foodName,
	}

	return s.queue.Enqueue(ctx, domain.JobVoteConfirmation, payload, ports.EnqueueOptions{
		Attempts: 3,
		Backoff:  time.Second,
	})
}
