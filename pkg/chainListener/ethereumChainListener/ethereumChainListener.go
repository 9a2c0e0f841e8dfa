package ethereumChainListener

import (
	"context"
	"errors"
	"sync"

	"github.com/Layr-Labs/image-verification-operator/pkg/chainListener"
	"github.com/Layr-Labs/image-verification-operator/pkg/config"
	"github.com/Layr-Labs/image-verification-operator/pkg/taskFeed"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"go.uber.org/zap"
)

var errSubscriptionClosed = errors.New("log subscription closed")

type EthereumChainListenerConfig struct {
	ChainId config.ChainId
	// StartBlock backfills from this block on the first subscribe
	StartBlock *uint64
	// MaxBlockRange caps the span of a single backfill query
	MaxBlockRange uint64
	BufferSize    int
}

// EthereumChainListener is a task feed over eth_subscribe. After a reconnect it
// backfills from the last delivered block so tasks emitted while disconnected
// are not lost; repeats are filtered downstream.
type EthereumChainListener struct {
	source chainListener.ITaskEventSource
	config *EthereumChainListenerConfig
	logger *zap.Logger

	mu sync.Mutex
	// resumeBlock is the block to backfill from, nil until something was seen
	resumeBlock *uint64
	active      *taskFeed.Subscription
}

func NewEthereumChainListener(
	source chainListener.ITaskEventSource,
	cfg *EthereumChainListenerConfig,
	logger *zap.Logger,
) *EthereumChainListener {
	if cfg.MaxBlockRange == 0 {
		cfg.MaxBlockRange = 1000
	}
	ecl := &EthereumChainListener{
		source: source,
		config: cfg,
		logger: logger,
	}
	if cfg.StartBlock != nil {
		start := *cfg.StartBlock
		ecl.resumeBlock = &start
	}
	return ecl
}

func (ecl *EthereumChainListener) Subscribe(ctx context.Context) (taskFeed.ITaskSubscription, error) {
	ecl.mu.Lock()
	if ecl.active != nil {
		ecl.active.Unsubscribe()
	}
	var resumeFrom *uint64
	if ecl.resumeBlock != nil {
		b := *ecl.resumeBlock
		resumeFrom = &b
	}
	sub := taskFeed.NewSubscription(ctx, ecl.config.BufferSize)
	ecl.active = sub
	ecl.mu.Unlock()

	sink := make(chan *types.TaskEvent, 64)
	// subscribe before backfilling so nothing lands between the two
	ethSub, err := ecl.source.WatchNewTasks(sub.Context(), sink, nil)
	if err != nil {
		sub.Unsubscribe()
		return nil, err
	}

	if resumeFrom == nil {
		if head, err := ecl.source.CurrentHeight(sub.Context()); err != nil {
			ecl.logger.Sugar().Warnw("Failed to read head for resume point", zap.Error(err))
		} else {
			ecl.markSeen(head)
		}
	}

	ecl.logger.Sugar().Infow("Subscribed to NewTaskCreated events",
		zap.Uint("chainId", uint(ecl.config.ChainId)),
		zap.Bool("backfill", resumeFrom != nil),
	)

	go ecl.forward(sub, ethSub.Err(), ethSub.Unsubscribe, sink, resumeFrom)
	return sub, nil
}

func (ecl *EthereumChainListener) forward(
	sub *taskFeed.Subscription,
	subErr <-chan error,
	unsubscribe func(),
	sink <-chan *types.TaskEvent,
	resumeFrom *uint64,
) {
	ctx := sub.Context()
	defer unsubscribe()

	if resumeFrom != nil {
		if err := ecl.backfill(sub, *resumeFrom); err != nil {
			if ctx.Err() == nil {
				ecl.logger.Sugar().Errorw("Failed to backfill tasks", zap.Error(err))
				sub.Fail(err)
			}
			return
		}
	}

	for {
		select {
		case <-ctx.Done():
			ecl.logger.Sugar().Infow("Ethereum chain listener context cancelled, exiting")
			return
		case err, ok := <-subErr:
			if ctx.Err() != nil {
				return
			}
			if !ok || err == nil {
				err = errSubscriptionClosed
			}
			ecl.logger.Sugar().Errorw("Log subscription terminated", zap.Error(err))
			sub.Fail(err)
			return
		case ev := <-sink:
			if !sub.Send(ev) {
				return
			}
			ecl.markSeen(ev.BlockNumber)
			ecl.logger.Sugar().Debugw("Enqueued task for processing",
				zap.Uint32("taskIndex", ev.TaskIndex),
				zap.Uint64("blockNumber", ev.BlockNumber),
				zap.String("transactionHash", ev.TransactionHash.String()),
			)
		}
	}
}

func (ecl *EthereumChainListener) backfill(sub *taskFeed.Subscription, fromBlock uint64) error {
	ctx := sub.Context()
	head, err := ecl.source.CurrentHeight(ctx)
	if err != nil {
		return err
	}
	for from := fromBlock; from <= head; from += ecl.config.MaxBlockRange {
		to := from + ecl.config.MaxBlockRange - 1
		if to > head {
			to = head
		}
		events, err := ecl.source.GetNewTasks(ctx, from, to)
		if err != nil {
			return err
		}
		for _, ev := range events {
			if !sub.Send(ev) {
				return ctx.Err()
			}
			ecl.markSeen(ev.BlockNumber)
		}
		ecl.markSeen(to)
	}
	ecl.logger.Sugar().Infow("Backfilled tasks",
		zap.Uint64("fromBlock", fromBlock),
		zap.Uint64("toBlock", head),
	)
	return nil
}

// markSeen moves the resume point forward. The block itself is kept inclusive
// because other logs from it may still be in flight.
func (ecl *EthereumChainListener) markSeen(block uint64) {
	ecl.mu.Lock()
	defer ecl.mu.Unlock()
	if ecl.resumeBlock == nil || block > *ecl.resumeBlock {
		b := block
		ecl.resumeBlock = &b
	}
}

// ResumeBlock returns the block a reconnect will backfill from, if any.
func (ecl *EthereumChainListener) ResumeBlock() (uint64, bool) {
	ecl.mu.Lock()
	defer ecl.mu.Unlock()
	if ecl.resumeBlock == nil {
		return 0, false
	}
	return *ecl.resumeBlock, true
}
