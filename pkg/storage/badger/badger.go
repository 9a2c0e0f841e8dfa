package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/operatorNode/operatorNodeConfig"
	"github.com/Layr-Labs/image-verification-operator/pkg/storage"
	badgerv4 "github.com/dgraph-io/badger/v4"
)

const prefixProcessed = "processed:%d"

// BadgerProcessedTaskStore implements ProcessedTaskStore using BadgerDB so the
// processed set survives restarts.
type BadgerProcessedTaskStore struct {
	db       *badgerv4.DB
	mu       sync.RWMutex
	closed   bool
	closeCh  chan struct{}
	gcTicker *time.Ticker
}

func NewBadgerProcessedTaskStore(cfg *operatorNodeConfig.BadgerConfig) (*BadgerProcessedTaskStore, error) {
	if cfg == nil {
		return nil, errors.New("badger config is nil")
	}

	opts := badgerv4.DefaultOptions(cfg.Dir)
	opts.Logger = nil // Disable BadgerDB's default logging

	if cfg.InMemory {
		opts = opts.WithInMemory(true).WithDir("").WithValueDir("")
	}
	if cfg.ValueLogFileSize > 0 {
		opts.ValueLogFileSize = cfg.ValueLogFileSize
	}
	if cfg.NumVersionsToKeep > 0 {
		opts.NumVersionsToKeep = cfg.NumVersionsToKeep
	}

	db, err := badgerv4.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	s := &BadgerProcessedTaskStore{
		db:      db,
		closeCh: make(chan struct{}),
	}

	s.gcTicker = time.NewTicker(5 * time.Minute)
	go s.runGC(cfg.InMemory)

	return s, nil
}

// runGC runs periodic value log garbage collection
func (s *BadgerProcessedTaskStore) runGC(inMemory bool) {
	for {
		select {
		case <-s.gcTicker.C:
			if inMemory {
				continue
			}
			s.mu.RLock()
			if s.closed {
				s.mu.RUnlock()
				return
			}
			_ = s.db.RunValueLogGC(0.5)
			s.mu.RUnlock()
		case <-s.closeCh:
			return
		}
	}
}

// MarkTaskProcessed marks a task as processed
func (s *BadgerProcessedTaskStore) MarkTaskProcessed(ctx context.Context, taskIndex uint32) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return storage.ErrStoreClosed
	}

	key := fmt.Sprintf(prefixProcessed, taskIndex)
	value, err := json.Marshal(&storage.ProcessedTask{
		TaskIndex:   taskIndex,
		ProcessedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal processed task: %w", err)
	}

	err = s.db.Update(func(txn *badgerv4.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to mark task as processed: %w", err)
	}
	return nil
}

// IsTaskProcessed checks if a task has been processed
func (s *BadgerProcessedTaskStore) IsTaskProcessed(ctx context.Context, taskIndex uint32) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false, storage.ErrStoreClosed
	}

	key := fmt.Sprintf(prefixProcessed, taskIndex)
	err := s.db.View(func(txn *badgerv4.Txn) error {
		_, err := txn.Get([]byte(key))
		return err
	})
	if err != nil {
		if errors.Is(err, badgerv4.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check if task is processed: %w", err)
	}
	return true, nil
}

// Close shuts down the store
func (s *BadgerProcessedTaskStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	close(s.closeCh)
	s.gcTicker.Stop()

	return s.db.Close()
}
