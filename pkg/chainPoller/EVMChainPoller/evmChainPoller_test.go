package EVMChainPoller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/config"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type queryRange struct {
	from, to uint64
}

type fakeTaskLogSource struct {
	mu      sync.Mutex
	head    uint64
	events  []*types.TaskEvent
	queries []queryRange
	failGet error
}

func (f *fakeTaskLogSource) CurrentHeight(ctx context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.head, nil
}

func (f *fakeTaskLogSource) GetNewTasks(ctx context.Context, fromBlock, toBlock uint64) ([]*types.TaskEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, queryRange{fromBlock, toBlock})
	if f.failGet != nil {
		err := f.failGet
		f.failGet = nil
		return nil, err
	}
	out := make([]*types.TaskEvent, 0)
	for _, ev := range f.events {
		if ev.BlockNumber >= fromBlock && ev.BlockNumber <= toBlock {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeTaskLogSource) setHead(head uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.head = head
}

func (f *fakeTaskLogSource) addEvent(taskIndex uint32, block uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, &types.TaskEvent{
		TaskIndex:   taskIndex,
		BlockNumber: block,
		Task:        &types.Task{TaskCreatedBlock: uint32(block)},
	})
}

func (f *fakeTaskLogSource) getQueries() []queryRange {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]queryRange(nil), f.queries...)
}

func newTestPoller(t *testing.T, source *fakeTaskLogSource, mutate func(cfg *EVMChainPollerConfig)) *EVMChainPoller {
	cfg := NewEVMChainPollerDefaultConfig(config.ChainId_EthereumAnvil)
	cfg.PollingInterval = 5 * time.Millisecond
	if mutate != nil {
		mutate(cfg)
	}
	return NewEVMChainPoller(source, cfg, zaptest.NewLogger(t))
}

func receive(t *testing.T, ch <-chan *types.TaskEvent) *types.TaskEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for task event")
		return nil
	}
}

func Test_EVMChainPoller(t *testing.T) {
	t.Run("Should only deliver tasks created after subscribe", func(t *testing.T) {
		source := &fakeTaskLogSource{head: 10}
		source.addEvent(1, 10)
		poller := newTestPoller(t, source, nil)

		sub, err := poller.Subscribe(context.Background())
		require.NoError(t, err)
		defer sub.Unsubscribe()
		assert.Equal(t, uint64(11), poller.Cursor())

		source.addEvent(2, 12)
		source.setHead(12)

		ev := receive(t, sub.Events())
		assert.Equal(t, uint32(2), ev.TaskIndex)
	})
	t.Run("Should replay from the configured start block", func(t *testing.T) {
		source := &fakeTaskLogSource{head: 10}
		source.addEvent(1, 3)
		source.addEvent(2, 7)
		start := uint64(1)
		poller := newTestPoller(t, source, func(cfg *EVMChainPollerConfig) { cfg.StartBlock = &start })

		sub, err := poller.Subscribe(context.Background())
		require.NoError(t, err)
		defer sub.Unsubscribe()

		assert.Equal(t, uint32(1), receive(t, sub.Events()).TaskIndex)
		assert.Equal(t, uint32(2), receive(t, sub.Events()).TaskIndex)
	})
	t.Run("Should split catch-up into bounded ranges", func(t *testing.T) {
		source := &fakeTaskLogSource{head: 25}
		source.addEvent(1, 24)
		start := uint64(0)
		poller := newTestPoller(t, source, func(cfg *EVMChainPollerConfig) {
			cfg.StartBlock = &start
			cfg.MaxBlockRange = 10
		})

		sub, err := poller.Subscribe(context.Background())
		require.NoError(t, err)
		defer sub.Unsubscribe()

		assert.Equal(t, uint32(1), receive(t, sub.Events()).TaskIndex)
		queries := source.getQueries()
		require.GreaterOrEqual(t, len(queries), 3)
		assert.Equal(t, queryRange{0, 9}, queries[0])
		assert.Equal(t, queryRange{10, 19}, queries[1])
		assert.Equal(t, queryRange{20, 25}, queries[2])
	})
	t.Run("Should hold back unconfirmed blocks", func(t *testing.T) {
		source := &fakeTaskLogSource{head: 10}
		poller := newTestPoller(t, source, func(cfg *EVMChainPollerConfig) { cfg.BlockConfirmations = 2 })

		sub, err := poller.Subscribe(context.Background())
		require.NoError(t, err)
		defer sub.Unsubscribe()
		assert.Equal(t, uint64(9), poller.Cursor())

		source.addEvent(5, 11)
		source.addEvent(6, 12)
		source.setHead(13)
		assert.Equal(t, uint32(5), receive(t, sub.Events()).TaskIndex)
		for _, q := range source.getQueries() {
			assert.LessOrEqual(t, q.to, uint64(11))
		}
		select {
		case ev := <-sub.Events():
			t.Fatalf("unexpected unconfirmed task %d", ev.TaskIndex)
		case <-time.After(50 * time.Millisecond):
		}
	})
	t.Run("Should fail the subscription and resume from the cursor", func(t *testing.T) {
		source := &fakeTaskLogSource{head: 10}
		poller := newTestPoller(t, source, nil)

		sub, err := poller.Subscribe(context.Background())
		require.NoError(t, err)

		source.mu.Lock()
		source.failGet = errors.New("connection refused")
		source.mu.Unlock()
		source.addEvent(7, 11)
		source.setHead(11)

		select {
		case err := <-sub.Err():
			assert.ErrorIs(t, err, types.ErrFeedDisconnect)
		case <-time.After(2 * time.Second):
			t.Fatal("expected the subscription to fail")
		}
		assert.Equal(t, uint64(11), poller.Cursor())

		resub, err := poller.Subscribe(context.Background())
		require.NoError(t, err)
		defer resub.Unsubscribe()
		assert.Equal(t, uint32(7), receive(t, resub.Events()).TaskIndex)
	})
}
