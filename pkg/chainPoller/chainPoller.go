package chainPoller

import (
	"context"

	"github.com/Layr-Labs/image-verification-operator/pkg/types"
)

// ITaskLogSource is the part of the registry a polling feed needs.
type ITaskLogSource interface {
	CurrentHeight(ctx context.Context) (uint64, error)

	GetNewTasks(ctx context.Context, fromBlock, toBlock uint64) ([]*types.TaskEvent, error)
}
