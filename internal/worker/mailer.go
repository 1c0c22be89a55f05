package worker

import (
	"context"
	"log"
	"time"

	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

const (
	BatchSize        = 50
	IntervalDuration = 2 * time.Second
)

// Sender delivers one claimed job. Errors cause the job to be rescheduled
// by the store until its attempts run out.
type Sender interface {
	Send(job domain.EmailJob) error
}

// Mailer drains the email_jobs queue: claim a due batch, deliver each job,
// record the outcome. Failed deliveries are pushed back with backoff by the
// store, so a single bad address never blocks the batch.
type Mailer struct {
	store  ports.EmailJobStore
	sender Sender
}

func NewMailer(store ports.EmailJobStore, sender Sender) *Mailer {
	return &Mailer{
		store:  store,
		sender: sender,
	}
}

// Run polls until ctx is cancelled.
func (m *Mailer) Run(ctx context.Context) {
	log.Printf("Starting email worker (Batch: %d, Interval: %v)", BatchSize, IntervalDuration)

	ticker := time.NewTicker(IntervalDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Email worker stopping...")
			return
		case <-ticker.C:
			if err := m.ProcessBatch(ctx); err != nil {
				log.Printf("email batch failed: %v", err)
			}
		}
	}
}

func (m *Mailer) ProcessBatch(ctx context.Context) error {
	jobs, err := m.store.ClaimDue(ctx, BatchSize)
	if err != nil {
		return err
	}

	for _, job := range jobs {
		if err := m.sender.Send(job); err != nil {
			log.Printf("failed to deliver job %s (attempt %d/%d): %v", job.ID, job.Attempts+1, job.MaxAttempts, err)
			if markErr := m.store.MarkFailed(ctx, job.ID, err.Error()); markErr != nil {
				return markErr
			}
			continue
		}

		if err := m.store.MarkSent(ctx, job.ID); err != nil {
			return err
		}
	}

	return nil
}
