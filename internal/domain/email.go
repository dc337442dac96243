package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// IntakeNotification describes one new submission for the notify email.
type IntakeNotification struct {
	Kind      string // "vehicle registration", "vendor registration", "sponsorship inquiry", "contact message"
	From      string
	Email     string
	Summary   string
}

// NotificationService sends a heads-up to the site inbox when an intake
// record arrives. Sending is best-effort; a failure never fails the
// submission itself.
type NotificationService interface {
	NotifyIntake(ctx context.Context, n *IntakeNotification)
}
