package email

import (
	"context"
	"errors"
)

// Sender is the interface that all mail relay providers must implement.
// This abstraction allows swapping providers without changing the
// notification logic, and lets tests substitute a recording fake.
type Sender interface {
	// Send issues a single send request to the relay.
	Send(ctx context.Context, msg Message) error
}

// Message represents one email send request. Recipients go in Bcc so
// they are not exposed to one another.
type Message struct {
	Bcc      []string // blind recipient list
	Subject  string   // email subject
	HTMLBody string   // HTML email body
	TextBody string   // plain-text fallback body
}

// Unconfigured is the Sender wired when no relay credentials are set.
// Every send fails, which surfaces as a broadcast error to the admin.
type Unconfigured struct{}

// Send always fails
func (Unconfigured) Send(ctx context.Context, msg Message) error {
	return errors.New("mail relay is not configured")
}
