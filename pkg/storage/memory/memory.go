package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/storage"
)

// InMemoryProcessedTaskStore implements ProcessedTaskStore with a map. Contents are
// lost on restart.
type InMemoryProcessedTaskStore struct {
	mu             sync.RWMutex
	closed         bool
	processedTasks map[uint32]*storage.ProcessedTask
}

func NewInMemoryProcessedTaskStore() *InMemoryProcessedTaskStore {
	return &InMemoryProcessedTaskStore{
		processedTasks: make(map[uint32]*storage.ProcessedTask),
	}
}

// MarkTaskProcessed marks a task as processed
func (s *InMemoryProcessedTaskStore) MarkTaskProcessed(ctx context.Context, taskIndex uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStoreClosed
	}

	s.processedTasks[taskIndex] = &storage.ProcessedTask{
		TaskIndex:   taskIndex,
		ProcessedAt: time.Now(),
	}
	return nil
}

// IsTaskProcessed checks if a task has been processed
func (s *InMemoryProcessedTaskStore) IsTaskProcessed(ctx context.Context, taskIndex uint32) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, storage.ErrStoreClosed
	}

	_, exists := s.processedTasks[taskIndex]
	return exists, nil
}

// Close closes the store
func (s *InMemoryProcessedTaskStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	s.processedTasks = nil
	return nil
}
