package taskWatcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/metrics"
	"github.com/Layr-Labs/image-verification-operator/pkg/retry"
	"github.com/Layr-Labs/image-verification-operator/pkg/taskFeed"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ITaskHandler interface {
	HandleTask(ctx context.Context, ev *types.TaskEvent) error
}

type TaskWatcherConfig struct {
	// MaxInFlight caps concurrently running handlers, 0 means unbounded
	MaxInFlight int
	// Resubscribe controls the wait between subscription attempts; MaxAttempts is ignored
	Resubscribe *retry.RetryConfig
}

func DefaultResubscribeConfig() *retry.RetryConfig {
	return &retry.RetryConfig{
		InitialDelay:      500 * time.Millisecond,
		MaxDelay:          30 * time.Second,
		BackoffMultiplier: 2,
	}
}

// TaskWatcher receives task events from a feed and hands each one to the
// handler on its own goroutine. Feed disconnects are retried indefinitely.
type TaskWatcher struct {
	feed    taskFeed.ITaskFeed
	handler ITaskHandler
	config  *TaskWatcherConfig
	metrics *metrics.Metrics
	logger  *zap.Logger

	sem           chan struct{}
	wg            sync.WaitGroup
	runMu         sync.Mutex
	runDone       chan struct{}
	handlerCtx    context.Context
	handlerCancel context.CancelFunc
}

func NewTaskWatcher(
	feed taskFeed.ITaskFeed,
	handler ITaskHandler,
	config *TaskWatcherConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) *TaskWatcher {
	if config.Resubscribe == nil {
		config.Resubscribe = DefaultResubscribeConfig()
	}
	var sem chan struct{}
	if config.MaxInFlight > 0 {
		sem = make(chan struct{}, config.MaxInFlight)
	}
	// handlers outlive the receive loop so shutdown can drain them
	handlerCtx, handlerCancel := context.WithCancel(context.Background())
	return &TaskWatcher{
		feed:          feed,
		handler:       handler,
		config:        config,
		metrics:       m,
		logger:        logger,
		sem:           sem,
		handlerCtx:    handlerCtx,
		handlerCancel: handlerCancel,
	}
}

// Run receives events until ctx is cancelled. It returns only after the receive
// loop has stopped; in-flight handlers keep running until Wait.
func (tw *TaskWatcher) Run(ctx context.Context) error {
	runDone := make(chan struct{})
	tw.runMu.Lock()
	tw.runDone = runDone
	tw.runMu.Unlock()
	defer close(runDone)

	sugar := tw.logger.Sugar()
	backoff := retry.NewBackoff(tw.config.Resubscribe)

	for {
		if ctx.Err() != nil {
			sugar.Infow("Task watcher stopped")
			return nil
		}

		sessionId := uuid.New().String()
		sub, err := tw.feed.Subscribe(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			delay := backoff.Next()
			tw.metrics.FeedDisconnected()
			sugar.Errorw("Failed to subscribe to task feed",
				zap.String("sessionId", sessionId),
				zap.Duration("retryIn", delay),
				zap.Error(err),
			)
			if retry.Sleep(ctx, delay) != nil {
				return nil
			}
			continue
		}

		sugar.Infow("Subscribed to task feed", zap.String("sessionId", sessionId))
		err = tw.consume(ctx, sub, sessionId, backoff)
		sub.Unsubscribe()
		if ctx.Err() != nil {
			sugar.Infow("Task watcher stopped", zap.String("sessionId", sessionId))
			return nil
		}

		delay := backoff.Next()
		tw.metrics.FeedDisconnected()
		sugar.Warnw("Task feed disconnected, resubscribing",
			zap.String("sessionId", sessionId),
			zap.Duration("retryIn", delay),
			zap.Error(err),
		)
		if retry.Sleep(ctx, delay) != nil {
			return nil
		}
	}
}

func (tw *TaskWatcher) consume(ctx context.Context, sub taskFeed.ITaskSubscription, sessionId string, backoff *retry.Backoff) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return err
		case ev, ok := <-sub.Events():
			if !ok {
				return fmt.Errorf("%w: event stream closed", types.ErrFeedDisconnect)
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if ev == nil {
				continue
			}
			backoff.Reset()
			tw.metrics.TaskDetected()
			tw.logger.Sugar().Infow("Received new task",
				zap.String("sessionId", sessionId),
				zap.Uint32("taskIndex", ev.TaskIndex),
				zap.Uint64("blockNumber", ev.BlockNumber),
				zap.String("transactionHash", ev.TransactionHash.String()),
			)
			tw.dispatch(ev)
		}
	}
}

func (tw *TaskWatcher) dispatch(ev *types.TaskEvent) {
	tw.wg.Add(1)
	go func() {
		defer tw.wg.Done()
		if tw.sem != nil {
			select {
			case tw.sem <- struct{}{}:
			case <-tw.handlerCtx.Done():
				return
			}
			defer func() { <-tw.sem }()
		}

		if err := tw.handler.HandleTask(tw.handlerCtx, ev); err != nil {
			tw.logger.Sugar().Warnw("Task handler returned an error",
				zap.Uint32("taskIndex", ev.TaskIndex),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until the receive loop has exited and in-flight handlers finish.
// After grace it cancels the handlers and waits for them to unwind. It reports
// whether they drained within grace. Call it after Run's context is cancelled.
func (tw *TaskWatcher) Wait(grace time.Duration) bool {
	timer := time.NewTimer(grace)
	defer timer.Stop()

	tw.runMu.Lock()
	runDone := tw.runDone
	tw.runMu.Unlock()
	if runDone != nil {
		// no dispatch can race wg.Wait once the receive loop is gone
		<-runDone
	}

	done := make(chan struct{})
	go func() {
		tw.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		tw.handlerCancel()
		return true
	case <-timer.C:
		tw.logger.Sugar().Warnw("Grace period elapsed, cancelling in-flight tasks", zap.Duration("grace", grace))
		tw.handlerCancel()
		<-done
		return false
	}
}
