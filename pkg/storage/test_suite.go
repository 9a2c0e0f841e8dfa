package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSuite defines a test suite that all storage implementations must pass
type TestSuite struct {
	NewStore func() (ProcessedTaskStore, error)
}

// Run executes all storage interface compliance tests
func (s *TestSuite) Run(t *testing.T) {
	t.Run("ProcessedTasks", s.testProcessedTasks)
	t.Run("Lifecycle", s.testLifecycle)
	t.Run("ConcurrentAccess", s.testConcurrentAccess)
}

func (s *TestSuite) testProcessedTasks(t *testing.T) {
	store, err := s.NewStore()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	processed, err := store.IsTaskProcessed(ctx, 7)
	require.NoError(t, err)
	assert.False(t, processed)

	require.NoError(t, store.MarkTaskProcessed(ctx, 7))

	processed, err = store.IsTaskProcessed(ctx, 7)
	require.NoError(t, err)
	assert.True(t, processed)

	// marking twice is not an error
	require.NoError(t, store.MarkTaskProcessed(ctx, 7))

	processed, err = store.IsTaskProcessed(ctx, 8)
	require.NoError(t, err)
	assert.False(t, processed)

	require.NoError(t, store.MarkTaskProcessed(ctx, 0))
	processed, err = store.IsTaskProcessed(ctx, 0)
	require.NoError(t, err)
	assert.True(t, processed)
}

func (s *TestSuite) testLifecycle(t *testing.T) {
	store, err := s.NewStore()
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.MarkTaskProcessed(ctx, 1))

	require.NoError(t, store.Close())
	// closing twice is a no-op
	require.NoError(t, store.Close())

	err = store.MarkTaskProcessed(ctx, 2)
	assert.ErrorIs(t, err, ErrStoreClosed)

	_, err = store.IsTaskProcessed(ctx, 1)
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func (s *TestSuite) testConcurrentAccess(t *testing.T) {
	store, err := s.NewStore()
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	errs := make(chan error, 100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(idx uint32) {
			defer wg.Done()
			if err := store.MarkTaskProcessed(ctx, idx); err != nil {
				errs <- err
			}
		}(uint32(i))
		go func(idx uint32) {
			defer wg.Done()
			if _, err := store.IsTaskProcessed(ctx, idx); err != nil {
				errs <- err
			}
		}(uint32(i))
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent access failed: %v", err)
	}

	for i := 0; i < 50; i++ {
		processed, err := store.IsTaskProcessed(ctx, uint32(i))
		require.NoError(t, err)
		assert.True(t, processed, "task %d should be processed", i)
	}
}
