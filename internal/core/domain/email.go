package domain

import (
	"time"

	"github.com/google/uuid"
)

const JobVoteConfirmation = "vote-confirmation"

type EmailJobStatus string

const (
	EmailJobPending EmailJobStatus = "pending"
	EmailJobSent    EmailJobStatus = "sent"
	EmailJobFailed  EmailJobStatus = "failed"
)

// EmailJob is one durable entry in the outgoing mail queue. Delivery is
// at-least-once: the worker may re-claim a job after a crash mid-send.
type EmailJob struct {
	ID            uuid.UUID
	JobName       string
	Payload       []byte
	Attempts      int
	MaxAttempts   int
	NextAttemptAt time.Time
	Status        EmailJobStatus
	LastError     string
	CreatedAt     time.Time
}

// VoteConfirmationPayload is the JSON body of a vote-confirmation job.
type VoteConfirmationPayload struct {
	Email          string `json:"email"`
	RestaurantName string `json:"restaurantName"`
	FoodName       string `json:"foodName"`
}
