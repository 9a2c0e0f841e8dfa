package storage

import (
	"context"
	"time"
)

// ProcessedTaskStore records which task indexes this operator has already attested to.
type ProcessedTaskStore interface {
	MarkTaskProcessed(ctx context.Context, taskIndex uint32) error
	IsTaskProcessed(ctx context.Context, taskIndex uint32) (bool, error)

	Close() error
}

// ProcessedTask represents a task that has been processed
type ProcessedTask struct {
	TaskIndex   uint32    `json:"taskIndex"`
	ProcessedAt time.Time `json:"processedAt"`
}
