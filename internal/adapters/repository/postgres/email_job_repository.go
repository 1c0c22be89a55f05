package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/lunchvote/api/internal/core/domain"
	"github.com/lunchvote/api/internal/core/ports"
)

// EmailJobRepository backs the mail queue with an email_jobs table. It
// serves both sides of the queue: Enqueue for the voting path and the
// claim/ack methods for the worker.
type EmailJobRepository struct {
	db *sql.DB
}

func NewEmailJobRepository(db *sql.DB) *EmailJobRepository {
	return &EmailJobRepository{db: db}
}

func (r *EmailJobRepository) Enqueue(ctx context.Context, jobName string, payload any, opts ports.EnqueueOptions) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal job payload: %w", err)
	}

	query := `
		INSERT INTO email_jobs (id, job_name, payload, max_attempts, backoff_base_ms, next_attempt_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err = r.db.ExecContext(ctx, query, uuid.New(), jobName, body, opts.Attempts, opts.Backoff.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to enqueue email job: %w", err)
	}
	return nil
}

// ClaimDue picks up to limit pending jobs whose next attempt is due.
// SKIP LOCKED keeps concurrent workers from grabbing the same rows.
func (r *EmailJobRepository) ClaimDue(ctx context.Context, limit int) ([]domain.EmailJob, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		SELECT id, job_name, payload, attempts, max_attempts, next_attempt_at, status, COALESCE(last_error, ''), created_at
		FROM email_jobs
		WHERE status = 'pending' AND next_attempt_at <= NOW()
		ORDER BY next_attempt_at ASC
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`
	rows, err := tx.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim email jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.EmailJob
	for rows.Next() {
		var job domain.EmailJob
		if err := rows.Scan(
			&job.ID, &job.JobName, &job.Payload, &job.Attempts, &job.MaxAttempts,
			&job.NextAttemptAt, &job.Status, &job.LastError, &job.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan email job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating email jobs: %w", err)
	}

	// Push next_attempt_at forward while the jobs are in flight so another
	// worker cycle does not re-claim them before this one reports back.
	stmt, err := tx.PrepareContext(ctx, `UPDATE email_jobs SET next_attempt_at = NOW() + interval '1 minute' WHERE id = $1`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare claim statement: %w", err)
	}
	defer stmt.Close()

	for _, job := range jobs {
		if _, err := stmt.ExecContext(ctx, job.ID); err != nil {
			return nil, fmt.Errorf("failed to mark job claimed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return jobs, nil
}

func (r *EmailJobRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE email_jobs SET status = 'sent' WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark job sent: %w", err)
	}
	return nil
}

// MarkFailed records a failed attempt. The job is rescheduled with
// exponential backoff (base * 2^attempts) until max_attempts is reached,
// then parked as failed.
func (r *EmailJobRepository) MarkFailed(ctx context.Context, id uuid.UUID, attemptErr string) error {
	query := `
		UPDATE email_jobs
		SET attempts = attempts + 1,
		    last_error = $2,
		    status = CASE WHEN attempts + 1 >= max_attempts THEN 'failed' ELSE 'pending' END,
		    next_attempt_at = NOW() + (backoff_base_ms * POWER(2, attempts) * interval '1 millisecond')
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id, attemptErr); err != nil {
		return fmt.Errorf("failed to mark job failed: %w", err)
	}
	return nil
}
