package taskFeed

import (
	"context"
	"fmt"
	"sync"

	"github.com/Layr-Labs/image-verification-operator/pkg/types"
)

// ITaskSubscription is a single, non-restartable stream of task events.
// Err receives at most one value, after which no more events are delivered.
type ITaskSubscription interface {
	Events() <-chan *types.TaskEvent
	Err() <-chan error
	Unsubscribe()
}

// ITaskFeed produces task subscriptions. Each call to Subscribe starts a new
// session; feeds keep their own cursor so a resubscribe picks up where the
// previous session left off.
type ITaskFeed interface {
	Subscribe(ctx context.Context) (ITaskSubscription, error)
}

// Subscription is the channel pair shared by feed implementations.
type Subscription struct {
	ctx    context.Context
	cancel context.CancelFunc
	events chan *types.TaskEvent
	errs   chan error

	failOnce sync.Once
	stopOnce sync.Once
}

// NewSubscription returns a subscription and the context its producer should run under.
// The context is cancelled by Unsubscribe or by the parent.
func NewSubscription(parent context.Context, bufferSize int) *Subscription {
	ctx, cancel := context.WithCancel(parent)
	return &Subscription{
		ctx:    ctx,
		cancel: cancel,
		events: make(chan *types.TaskEvent, bufferSize),
		errs:   make(chan error, 1),
	}
}

func (s *Subscription) Context() context.Context {
	return s.ctx
}

func (s *Subscription) Events() <-chan *types.TaskEvent {
	return s.events
}

func (s *Subscription) Err() <-chan error {
	return s.errs
}

func (s *Subscription) Unsubscribe() {
	s.stopOnce.Do(s.cancel)
}

// Send delivers an event, blocking until it is consumed or the subscription ends.
func (s *Subscription) Send(ev *types.TaskEvent) bool {
	select {
	case <-s.ctx.Done():
		return false
	default:
	}
	select {
	case s.events <- ev:
		return true
	case <-s.ctx.Done():
		return false
	}
}

// Fail ends the subscription with an error wrapping ErrFeedDisconnect.
func (s *Subscription) Fail(err error) {
	s.failOnce.Do(func() {
		s.errs <- fmt.Errorf("%w: %w", types.ErrFeedDisconnect, err)
	})
	s.Unsubscribe()
}
