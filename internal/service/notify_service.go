package service

import (
	"context"
	"fmt"

	"github.com/foxuse/showcase/internal/email"
	"github.com/foxuse/showcase/internal/logger"
	"github.com/foxuse/showcase/internal/repository"
)

// Notifier broadcasts an announcement to every subscriber with a single
// relay send, all recipients blind-copied.
type Notifier struct {
	subscribers repository.SubscriberStore
	sender      email.Sender
	appName     string
	log         *logger.Logger
}

// NewNotifier creates a new Notifier
func NewNotifier(subscribers repository.SubscriberStore, sender email.Sender, appName string, log *logger.Logger) *Notifier {
	return &Notifier{
		subscribers: subscribers,
		sender:      sender,
		appName:     appName,
		log:         log.WithComponent("notifier"),
	}
}

// Broadcast sends subject/message (plus an optional call-to-action
// link) to every subscriber and returns how many were notified. With
// zero subscribers it returns 0 without contacting the relay. The
// relay is invoked exactly once per broadcast; a relay error fails the
// whole request with no partial-success accounting.
func (n *Notifier) Broadcast(ctx context.Context, subject, message, link string) (int, error) {
	subscribers, err := n.subscribers.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load subscribers: %w", err)
	}

	emails := make([]string, 0, len(subscribers))
	for _, s := range subscribers {
		emails = append(emails, s.Email)
	}

	if len(emails) == 0 {
		n.log.Info().Msg("broadcast skipped, no subscribers")
		return 0, nil
	}

	msg := email.Message{
		Bcc:      emails,
		Subject:  subject,
		HTMLBody: email.BroadcastHTML(n.appName, message, link),
		TextBody: email.BroadcastText(n.appName, message, link),
	}

	if err := n.sender.Send(ctx, msg); err != nil {
		return 0, fmt.Errorf("failed to send notification: %w", err)
	}

	n.log.Info().Int("recipients", len(emails)).Str("subject", subject).Msg("broadcast sent")
	return len(emails), nil
}
