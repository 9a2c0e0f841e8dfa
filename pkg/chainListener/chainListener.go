package chainListener

import (
	"context"

	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/event"
)

// ITaskEventSource is the part of the registry a subscription feed needs: a live
// NewTaskCreated stream plus log queries to backfill across reconnects.
type ITaskEventSource interface {
	CurrentHeight(ctx context.Context) (uint64, error)

	GetNewTasks(ctx context.Context, fromBlock, toBlock uint64) ([]*types.TaskEvent, error)

	WatchNewTasks(ctx context.Context, sink chan<- *types.TaskEvent, startBlock *uint64) (event.Subscription, error)
}
