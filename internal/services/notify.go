package services

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"mainstreet/internal/domain"
)

type notificationService struct {
	mailer domain.Mailer
	inbox  string
	logger *slog.Logger
}

// NewNotificationService returns a NotificationService that emails the site
// inbox. An empty inbox address turns notifications off.
func NewNotificationService(mailer domain.Mailer, inbox string, logger *slog.Logger) domain.NotificationService {
	return &notificationService{mailer: mailer, inbox: inbox, logger: logger}
}

func (s *notificationService) NotifyIntake(ctx context.Context, n *domain.IntakeNotification) {
	if s.inbox == "" {
		return
	}
	subject := fmt.Sprintf("New %s from %s", n.Kind, n.From)
	text := fmt.Sprintf("New %s.\n\nFrom: %s <%s>\n%s\n", n.Kind, n.From, n.Email, n.Summary)
	htmlBody := fmt.Sprintf("<p>New %s.</p><p>From: %s &lt;%s&gt;</p><p>%s</p>",
		html.EscapeString(n.Kind), html.EscapeString(n.From), html.EscapeString(n.Email), html.EscapeString(n.Summary))
	if err := s.mailer.Send(s.inbox, subject, htmlBody, text); err != nil {
		s.logger.Warn("intake notification failed", "kind", n.Kind, "error", err)
	}
}
