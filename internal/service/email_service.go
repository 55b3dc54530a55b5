package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// EmailService sends transactional emails.
type EmailService interface {
	SendJudgeInvite(ctx context.Context, toEmail, name, username, password string) error
}

// NoopEmailService is used when email delivery is disabled.
type NoopEmailService struct{}

func (s *NoopEmailService) SendJudgeInvite(ctx context.Context, toEmail, name, username, password string) error {
	log.Printf("[EmailService] noop judge invite to=%s", toEmail)
	return nil
}

// ResendEmailService sends emails via the Resend REST API.
type ResendEmailService struct {
	from   string
	client *resend.Client
}

// NewResendEmailService creates a Resend-backed email service
func NewResendEmailService(apiKey, from string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendEmailService{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

// SendJudgeInvite mails a judge their panel credentials.
func (s *ResendEmailService) SendJudgeInvite(ctx context.Context, toEmail, name, username, password string) error {
	if toEmail == "" || password == "" {
		return fmt.Errorf("toEmail and password are required")
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: "MCAS 2025 judging panel access",
		Text: fmt.Sprintf(
			"Hi %s,\n\nYou have been added as a judge for MCAS 2025.\n\nUsername: %s\nPassword: %s\n\nPlease change the password after your first login.",
			name, username, password),
		Html: fmt.Sprintf(
			"<p>Hi %s,</p><p>You have been added as a judge for MCAS 2025.</p><p>Username: <strong>%s</strong><br>Password: <strong>%s</strong></p><p>Please change the password after your first login.</p>",
			name, username, password),
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		_, err := s.client.Emails.SendWithContext(ctx, params)
		if err == nil {
			return nil
		}
		lastErr = err

		if wait, ok := resendRetryDelay(err, attempt); ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
				continue
			}
		}

		return fmt.Errorf("resend send failed: %w", err)
	}

	return fmt.Errorf("resend send failed after retries: %w", lastErr)
}

func resendRetryDelay(err error, attempt int) (time.Duration, bool) {
	var rateLimitErr *resend.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if seconds, convErr := strconv.Atoi(strings.TrimSpace(rateLimitErr.RetryAfter)); convErr == nil && seconds > 0 {
			if seconds > 30 {
				seconds = 30
			}
			return time.Duration(seconds) * time.Second, true
		}
		return time.Duration(attempt+1) * time.Second, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "temporar") {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	return 0, false
}
