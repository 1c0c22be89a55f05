package mail

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/lunchvote/api/internal/core/domain"
	"gopkg.in/gomail.v2"
)

// SMTPSender renders queued email jobs and delivers them over SMTP.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSenderFromEnv() *SMTPSender {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	return &SMTPSender{
		dialer: gomail.NewDialer(
			os.Getenv("SMTP_HOST"),
			port,
			os.Getenv("SMTP_USER"),
			os.Getenv("SMTP_PASS"),
		),
		from: os.Getenv("SMTP_FROM"),
	}
}

func (s *SMTPSender) Send(job domain.EmailJob) error {
	switch job.JobName {
	case domain.JobVoteConfirmation:
		return s.sendVoteConfirmation(job)
	default:
		return fmt.Errorf("unknown email job %q", job.JobName)
	}
}

func (s *SMTPSender) sendVoteConfirmation(job domain.EmailJob) error {
	var payload domain.VoteConfirmationPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal vote confirmation payload: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", payload.Email)
	m.SetHeader("Subject", "Vote Confirmation")
	m.SetBody("text/html", fmt.Sprintf(`
		<h1>Vote Confirmation</h1>
		<p>Thank you for your vote!</p>
		<p>You voted for %s from %s.</p>
		<p>Have a great meal!</p>
	`, payload.FoodName, payload.RestaurantName))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", payload.Email, err)
	}
	return nil
}
