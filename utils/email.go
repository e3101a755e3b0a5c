// utils/email.go
package utils

import (
	"fmt"
	"os"

	"github.com/keighl/postmark"

	"github.com/momenul162/Food-pagol-server/models"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes a new EmailService instance. Returns nil when
// no API token is configured; callers must treat a nil service as disabled.
func NewEmailService(apiToken, sender string) *EmailService {
	if apiToken == "" {
		return nil
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendPaymentConfirmationEmail sends a payment confirmation to the customer
func (es *EmailService) SendPaymentConfirmationEmail(toEmail string, payment models.Payment) error {
	subject := "Payment Confirmation"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>Thank you for your order! Your payment (transaction: %s) of <strong>$%.2f</strong> for %d item(s) has been received.<br><br>Track your order at http://localhost:%s/payments?email=%s<br><br>Thank you for ordering with Food Pagol!",
		payment.TransactionID,
		payment.Price,
		payment.Quantity,
		os.Getenv("PORT"),
		toEmail,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
