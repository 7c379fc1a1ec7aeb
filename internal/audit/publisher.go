package audit

import (
	"context"

	"bookswap/pkg/requestcontext"
)

// Publisher forwards events to the worker inbox. Emit blocks when the inbox
// is full so the trail stays complete under load.
type Publisher struct {
	inbox chan<- Event
}

func NewPublisher(inbox chan<- Event) *Publisher {
	return &Publisher{inbox: inbox}
}

func (p *Publisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.Subject == "" {
		event.Subject = requestcontext.Subject(ctx)
	}
	select {
	case p.inbox <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
