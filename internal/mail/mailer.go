// Package mail is the outbound mail dispatcher: one templated message out,
// success or failure back. No retries, no queuing, no delivery confirmation
// beyond the SMTP transport acknowledgment.
package mail

import "context"

// Message is a single email to be sent.
type Message struct {
	To       string // recipient email address
	Subject  string // email subject
	HTMLBody string // HTML email body
	TextBody string // plain-text fallback body
}

// Dispatcher sends one message per call. Implementations must honor ctx for
// timeout and cancellation.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}
