package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
)

type EnqueueOptions struct {
	Attempts int
	Backoff  time.Duration
}

// EmailQueue is the write side of the mail queue, the only part the voting
// path ever touches.
type EmailQueue interface {
	Enqueue(ctx context.Context, jobName string, payload any, opts EnqueueOptions) error
}

// EmailJobStore is the worker side: claiming due jobs and recording outcomes.
type EmailJobStore interface {
	ClaimDue(ctx context.Context, limit int) ([]domain.EmailJob, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	// MarkFailed reschedules the job with backoff, or marks it failed for
	// good once attempts are exhausted.
	MarkFailed(ctx context.Context, id uuid.UUID, attemptErr string) error
}

type EmailService interface {
	SendVoteConfirmation(ctx context.Context, email, restaurantName, foodName string) error
}
