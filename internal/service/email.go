package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"clubcourt-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// NewEmailService sends via SendGrid. With an empty API key it degrades to
// logging the mail instead, which keeps local development keyless.
func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{apiKey: apiKey, fromEmail: fromEmail, fromName: fromName}
}

func (s *sendGridEmailService) send(ctx context.Context, toEmail, toName, subject, plainText, htmlContent string) error {
	if s.apiKey == "" {
		logger.InfoContext(ctx, "email suppressed, no sendgrid api key", "to", toEmail, "subject", subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendBookingConfirmation(ctx context.Context, toEmail, toName, courtName string, start, end time.Time) error {
	subject := "Booking confirmed"
	body := fmt.Sprintf("Hi %s,\n\nYour booking of %s from %s to %s is confirmed.\n",
		toName, courtName, start.Format("Mon Jan 2 15:04"), end.Format("15:04"))
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your booking of <b>%s</b> from %s to %s is confirmed.</p>",
		toName, courtName, start.Format("Mon Jan 2 15:04"), end.Format("15:04"))
	return s.send(ctx, toEmail, toName, subject, body, html)
}

func (s *sendGridEmailService) SendBookingReminder(ctx context.Context, toEmail, toName, courtName string, start time.Time) error {
	subject := "Upcoming booking reminder"
	body := fmt.Sprintf("Hi %s,\n\nReminder: you have %s booked at %s.\n",
		toName, courtName, start.Format("Mon Jan 2 15:04"))
	html := fmt.Sprintf("<p>Hi %s,</p><p>Reminder: you have <b>%s</b> booked at %s.</p>",
		toName, courtName, start.Format("Mon Jan 2 15:04"))
	return s.send(ctx, toEmail, toName, subject, body, html)
}

func (s *sendGridEmailService) SendDepositResult(ctx context.Context, toEmail, toName string, amountCents int64, approved bool, reason string) error {
	if approved {
		subject := "Deposit approved"
		body := fmt.Sprintf("Hi %s,\n\nYour deposit of %s was approved and added to your wallet.\n", toName, formatCents(amountCents))
		html := fmt.Sprintf("<p>Hi %s,</p><p>Your deposit of <b>%s</b> was approved and added to your wallet.</p>", toName, formatCents(amountCents))
		return s.send(ctx, toEmail, toName, subject, body, html)
	}
	subject := "Deposit rejected"
	body := fmt.Sprintf("Hi %s,\n\nYour deposit of %s was rejected: %s\n", toName, formatCents(amountCents), reason)
	html := fmt.Sprintf("<p>Hi %s,</p><p>Your deposit of <b>%s</b> was rejected: %s</p>", toName, formatCents(amountCents), reason)
	return s.send(ctx, toEmail, toName, subject, body, html)
}
