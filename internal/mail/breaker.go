package mail

import (
	"context"

	"github.com/akeren/enquiry-portal/pkg/circuitbreaker"
)

// BreakerDispatcher guards an upstream dispatcher with a circuit breaker so a
// misbehaving SMTP relay sheds load fast instead of stalling every request.
// It never retries a delivery.
type BreakerDispatcher struct {
	upstream Dispatcher
	breaker  circuitbreaker.CircuitBreaker
}

func NewBreakerDispatcher(upstream Dispatcher, breaker circuitbreaker.CircuitBreaker) *BreakerDispatcher {
	if breaker == nil {
		breaker = circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig())
	}

	return &BreakerDispatcher{
		upstream: upstream,
		breaker:  breaker,
	}
}

func (d *BreakerDispatcher) Send(ctx context.Context, msg Message) error {
	return d.breaker.Call(func() error {
		return d.upstream.Send(ctx, msg)
	})
}
