package enquiry

import (
	"context"
	"sync"

	"github.com/akeren/enquiry-portal/internal/mail"
)

// recordingDispatcher captures dispatched messages for assertions.
type recordingDispatcher struct {
	mu       sync.Mutex
	messages []mail.Message
	err      error
}

func (d *recordingDispatcher) Send(_ context.Context, msg mail.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.err != nil {
		return d.err
	}

	d.messages = append(d.messages, msg)
	return nil
}

func (d *recordingDispatcher) sent() []mail.Message {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]mail.Message, len(d.messages))
	copy(out, d.messages)
	return out
}
