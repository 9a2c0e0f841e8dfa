package badger

import (
	"context"
	"testing"

	"github.com/Layr-Labs/image-verification-operator/pkg/operatorNode/operatorNodeConfig"
	"github.com/Layr-Labs/image-verification-operator/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerProcessedTaskStore(t *testing.T) {
	suite := &storage.TestSuite{
		NewStore: func() (storage.ProcessedTaskStore, error) {
			return NewBadgerProcessedTaskStore(&operatorNodeConfig.BadgerConfig{
				Dir: t.TempDir(),
			})
		},
	}
	suite.Run(t)
}

func TestBadgerProcessedTaskStore_InMemory(t *testing.T) {
	suite := &storage.TestSuite{
		NewStore: func() (storage.ProcessedTaskStore, error) {
			return NewBadgerProcessedTaskStore(&operatorNodeConfig.BadgerConfig{
				InMemory: true,
			})
		},
	}
	suite.Run(t)
}

func TestBadgerProcessedTaskStore_Persistence(t *testing.T) {
	cfg := &operatorNodeConfig.BadgerConfig{
		Dir: t.TempDir(),
	}
	ctx := context.Background()

	{
		store, err := NewBadgerProcessedTaskStore(cfg)
		require.NoError(t, err)
		require.NoError(t, store.MarkTaskProcessed(ctx, 12))
		require.NoError(t, store.Close())
	}

	{
		store, err := NewBadgerProcessedTaskStore(cfg)
		require.NoError(t, err)
		defer store.Close()

		processed, err := store.IsTaskProcessed(ctx, 12)
		require.NoError(t, err)
		assert.True(t, processed)

		processed, err = store.IsTaskProcessed(ctx, 13)
		require.NoError(t, err)
		assert.False(t, processed)
	}
}

func TestBadgerProcessedTaskStore_NilConfig(t *testing.T) {
	_, err := NewBadgerProcessedTaskStore(nil)
	assert.Error(t, err)
}
