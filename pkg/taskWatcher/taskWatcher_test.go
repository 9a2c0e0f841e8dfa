package taskWatcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/retry"
	"github.com/Layr-Labs/image-verification-operator/pkg/taskFeed"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// scriptedFeed hands out subscriptions driven by the test.
type scriptedFeed struct {
	mu            sync.Mutex
	subscriptions []*taskFeed.Subscription
	subscribeErrs []error
	created       chan *taskFeed.Subscription
}

func newScriptedFeed() *scriptedFeed {
	return &scriptedFeed{created: make(chan *taskFeed.Subscription, 16)}
}

func (f *scriptedFeed) Subscribe(ctx context.Context) (taskFeed.ITaskSubscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.subscribeErrs) > 0 {
		err := f.subscribeErrs[0]
		f.subscribeErrs = f.subscribeErrs[1:]
		return nil, err
	}
	sub := taskFeed.NewSubscription(ctx, 0)
	f.subscriptions = append(f.subscriptions, sub)
	f.created <- sub
	return sub, nil
}

func (f *scriptedFeed) next(t *testing.T) *taskFeed.Subscription {
	t.Helper()
	select {
	case sub := <-f.created:
		return sub
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a subscription")
		return nil
	}
}

type recordingHandler struct {
	mu       sync.Mutex
	handled  []uint32
	block    chan struct{}
	running  atomic.Int32
	maxSeen  atomic.Int32
	finished chan uint32
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{finished: make(chan uint32, 256)}
}

func (h *recordingHandler) HandleTask(ctx context.Context, ev *types.TaskEvent) error {
	n := h.running.Add(1)
	defer h.running.Add(-1)
	for {
		seen := h.maxSeen.Load()
		if n <= seen || h.maxSeen.CompareAndSwap(seen, n) {
			break
		}
	}

	if h.block != nil {
		select {
		case <-h.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	h.mu.Lock()
	h.handled = append(h.handled, ev.TaskIndex)
	h.mu.Unlock()
	h.finished <- ev.TaskIndex
	return nil
}

func (h *recordingHandler) waitFor(t *testing.T, n int) []uint32 {
	t.Helper()
	got := make([]uint32, 0, n)
	for len(got) < n {
		select {
		case idx := <-h.finished:
			got = append(got, idx)
		case <-time.After(2 * time.Second):
			t.Fatalf("handled %d of %d tasks", len(got), n)
		}
	}
	return got
}

func fastResubscribe() *retry.RetryConfig {
	return &retry.RetryConfig{
		InitialDelay:      time.Millisecond,
		MaxDelay:          5 * time.Millisecond,
		BackoffMultiplier: 2,
	}
}

func startWatcher(t *testing.T, feed *scriptedFeed, handler ITaskHandler, cfg *TaskWatcherConfig) (*TaskWatcher, context.CancelFunc, chan error) {
	if cfg.Resubscribe == nil {
		cfg.Resubscribe = fastResubscribe()
	}
	watcher := NewTaskWatcher(feed, handler, cfg, nil, zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watcher.Run(ctx) }()
	return watcher, cancel, done
}

func Test_TaskWatcher(t *testing.T) {
	t.Run("Should dispatch every event", func(t *testing.T) {
		feed := newScriptedFeed()
		handler := newRecordingHandler()
		watcher, cancel, done := startWatcher(t, feed, handler, &TaskWatcherConfig{})

		sub := feed.next(t)
		for i := uint32(0); i < 10; i++ {
			require.True(t, sub.Send(&types.TaskEvent{TaskIndex: i, Task: &types.Task{}}))
		}
		assert.ElementsMatch(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, handler.waitFor(t, 10))

		cancel()
		require.NoError(t, <-done)
		assert.True(t, watcher.Wait(time.Second))
	})
	t.Run("Should keep receiving while handlers are slow", func(t *testing.T) {
		feed := newScriptedFeed()
		handler := newRecordingHandler()
		handler.block = make(chan struct{})
		watcher, cancel, done := startWatcher(t, feed, handler, &TaskWatcherConfig{})

		sub := feed.next(t)
		for i := uint32(0); i < 5; i++ {
			require.True(t, sub.Send(&types.TaskEvent{TaskIndex: i, Task: &types.Task{}}))
		}
		assert.Eventually(t, func() bool { return handler.running.Load() == 5 }, 2*time.Second, 5*time.Millisecond)

		close(handler.block)
		handler.waitFor(t, 5)
		cancel()
		<-done
		assert.True(t, watcher.Wait(time.Second))
	})
	t.Run("Should resubscribe after a feed disconnect", func(t *testing.T) {
		feed := newScriptedFeed()
		handler := newRecordingHandler()
		_, cancel, done := startWatcher(t, feed, handler, &TaskWatcherConfig{})
		defer func() {
			cancel()
			<-done
		}()

		first := feed.next(t)
		require.True(t, first.Send(&types.TaskEvent{TaskIndex: 1, Task: &types.Task{}}))
		first.Fail(errors.New("websocket closed"))

		second := feed.next(t)
		require.True(t, second.Send(&types.TaskEvent{TaskIndex: 2, Task: &types.Task{}}))
		assert.ElementsMatch(t, []uint32{1, 2}, handler.waitFor(t, 2))
	})
	t.Run("Should retry failed subscribe calls", func(t *testing.T) {
		feed := newScriptedFeed()
		feed.subscribeErrs = []error{errors.New("dial tcp: connection refused"), errors.New("dial tcp: connection refused")}
		handler := newRecordingHandler()
		_, cancel, done := startWatcher(t, feed, handler, &TaskWatcherConfig{})
		defer func() {
			cancel()
			<-done
		}()

		sub := feed.next(t)
		require.True(t, sub.Send(&types.TaskEvent{TaskIndex: 3, Task: &types.Task{}}))
		assert.Equal(t, []uint32{3}, handler.waitFor(t, 1))
	})
	t.Run("Should cap concurrently running handlers", func(t *testing.T) {
		feed := newScriptedFeed()
		handler := newRecordingHandler()
		handler.block = make(chan struct{})
		watcher, cancel, done := startWatcher(t, feed, handler, &TaskWatcherConfig{MaxInFlight: 2})

		sub := feed.next(t)
		for i := uint32(0); i < 6; i++ {
			require.True(t, sub.Send(&types.TaskEvent{TaskIndex: i, Task: &types.Task{}}))
		}
		assert.Eventually(t, func() bool { return handler.running.Load() == 2 }, 2*time.Second, 5*time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, int32(2), handler.running.Load())

		close(handler.block)
		handler.waitFor(t, 6)
		assert.Equal(t, int32(2), handler.maxSeen.Load())
		cancel()
		<-done
		assert.True(t, watcher.Wait(time.Second))
	})
	t.Run("Should cancel handlers still running after the grace period", func(t *testing.T) {
		feed := newScriptedFeed()
		handler := newRecordingHandler()
		handler.block = make(chan struct{})
		watcher, cancel, done := startWatcher(t, feed, handler, &TaskWatcherConfig{})

		sub := feed.next(t)
		require.True(t, sub.Send(&types.TaskEvent{TaskIndex: 1, Task: &types.Task{}}))
		assert.Eventually(t, func() bool { return handler.running.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

		cancel()
		<-done
		assert.False(t, watcher.Wait(20*time.Millisecond))
		assert.Equal(t, int32(0), handler.running.Load())
	})
}

// floodFeed keeps its event buffer full until unsubscribed.
type floodFeed struct {
	closeFirst atomic.Bool
	subscribes atomic.Int32
}

type floodSubscription struct {
	events chan *types.TaskEvent
	errs   chan error
	stop   chan struct{}
	once   sync.Once
}

func (s *floodSubscription) Events() <-chan *types.TaskEvent { return s.events }
func (s *floodSubscription) Err() <-chan error               { return s.errs }
func (s *floodSubscription) Unsubscribe()                    { s.once.Do(func() { close(s.stop) }) }

func (f *floodFeed) Subscribe(ctx context.Context) (taskFeed.ITaskSubscription, error) {
	sub := &floodSubscription{
		events: make(chan *types.TaskEvent, 64),
		errs:   make(chan error),
		stop:   make(chan struct{}),
	}
	if f.subscribes.Add(1) == 1 && f.closeFirst.Load() {
		close(sub.events)
		return sub, nil
	}
	go func() {
		for i := uint32(0); ; i++ {
			select {
			case sub.events <- &types.TaskEvent{TaskIndex: i, Task: &types.Task{}}:
			case <-sub.stop:
				return
			}
		}
	}()
	return sub, nil
}

type lateStartHandler struct {
	drained atomic.Bool
	calls   atomic.Int32
	late    atomic.Int32
}

func (h *lateStartHandler) HandleTask(ctx context.Context, ev *types.TaskEvent) error {
	if h.drained.Load() {
		h.late.Add(1)
	}
	h.calls.Add(1)
	return nil
}

func Test_TaskWatcherShutdown(t *testing.T) {
	t.Run("Should not start handlers after Wait returns", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			handler := &lateStartHandler{}
			watcher := NewTaskWatcher(&floodFeed{}, handler, &TaskWatcherConfig{Resubscribe: fastResubscribe()}, nil, zaptest.NewLogger(t))
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- watcher.Run(ctx) }()

			assert.Eventually(t, func() bool { return handler.calls.Load() > 10 }, 2*time.Second, time.Millisecond)
			cancel()
			watcher.Wait(50 * time.Millisecond)
			handler.drained.Store(true)

			select {
			case err := <-done:
				require.NoError(t, err)
			case <-time.After(time.Second):
				t.Fatal("receive loop still running after Wait")
			}
			time.Sleep(5 * time.Millisecond)
			assert.Equal(t, int32(0), handler.late.Load())
		}
	})
	t.Run("Should resubscribe when the event stream closes", func(t *testing.T) {
		feed := &floodFeed{}
		feed.closeFirst.Store(true)
		handler := &lateStartHandler{}
		watcher := NewTaskWatcher(feed, handler, &TaskWatcherConfig{Resubscribe: fastResubscribe()}, nil, zaptest.NewLogger(t))
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- watcher.Run(ctx) }()

		assert.Eventually(t, func() bool { return handler.calls.Load() > 0 }, 2*time.Second, time.Millisecond)
		assert.Equal(t, int32(2), feed.subscribes.Load())

		cancel()
		require.NoError(t, <-done)
		assert.True(t, watcher.Wait(time.Second))
	})
}
