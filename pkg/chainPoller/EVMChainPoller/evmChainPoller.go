package EVMChainPoller

import (
	"context"
	"sync"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/chainPoller"
	"github.com/Layr-Labs/image-verification-operator/pkg/config"
	"github.com/Layr-Labs/image-verification-operator/pkg/taskFeed"
	"go.uber.org/zap"
)

type EVMChainPollerConfig struct {
	ChainId         config.ChainId
	PollingInterval time.Duration
	// MaxBlockRange caps the span of a single GetNewTasks query
	MaxBlockRange uint64
	// BlockConfirmations keeps the cursor this many blocks behind head
	BlockConfirmations uint64
	// StartBlock replays from this block on the first subscribe instead of head+1
	StartBlock *uint64
	BufferSize int
}

func NewEVMChainPollerDefaultConfig(chainId config.ChainId) *EVMChainPollerConfig {
	return &EVMChainPollerConfig{
		ChainId:         chainId,
		PollingInterval: 2 * time.Second,
		MaxBlockRange:   1000,
	}
}

// EVMChainPoller is a task feed over eth_getLogs. The block cursor lives on the
// poller, not the subscription, so resubscribing resumes without gaps.
type EVMChainPoller struct {
	source chainPoller.ITaskLogSource
	config *EVMChainPollerConfig
	logger *zap.Logger

	mu sync.Mutex
	// nextBlock is the first block not yet fully delivered
	nextBlock   uint64
	initialized bool
	active      *taskFeed.Subscription
}

func NewEVMChainPoller(
	source chainPoller.ITaskLogSource,
	cfg *EVMChainPollerConfig,
	logger *zap.Logger,
) *EVMChainPoller {
	if cfg.MaxBlockRange == 0 {
		cfg.MaxBlockRange = 1000
	}
	if cfg.PollingInterval <= 0 {
		cfg.PollingInterval = 2 * time.Second
	}
	return &EVMChainPoller{
		source: source,
		config: cfg,
		logger: logger,
	}
}

func (ecp *EVMChainPoller) Subscribe(ctx context.Context) (taskFeed.ITaskSubscription, error) {
	ecp.mu.Lock()
	defer ecp.mu.Unlock()

	if ecp.active != nil {
		ecp.active.Unsubscribe()
	}
	if !ecp.initialized {
		if err := ecp.initializeCursor(ctx); err != nil {
			return nil, err
		}
	}

	sub := taskFeed.NewSubscription(ctx, ecp.config.BufferSize)
	ecp.active = sub

	ecp.logger.Sugar().Infow("Starting EVM chain poller",
		zap.Uint("chainId", uint(ecp.config.ChainId)),
		zap.Uint64("fromBlock", ecp.nextBlock),
		zap.Duration("pollingInterval", ecp.config.PollingInterval),
	)
	go ecp.pollForTasks(sub)
	return sub, nil
}

// Cursor returns the next block the poller will query.
func (ecp *EVMChainPoller) Cursor() uint64 {
	ecp.mu.Lock()
	defer ecp.mu.Unlock()
	return ecp.nextBlock
}

func (ecp *EVMChainPoller) initializeCursor(ctx context.Context) error {
	if ecp.config.StartBlock != nil {
		ecp.nextBlock = *ecp.config.StartBlock
		ecp.initialized = true
		return nil
	}
	head, err := ecp.source.CurrentHeight(ctx)
	if err != nil {
		return err
	}
	ecp.nextBlock = ecp.confirmedHeight(head) + 1
	ecp.initialized = true
	return nil
}

func (ecp *EVMChainPoller) confirmedHeight(head uint64) uint64 {
	if head < ecp.config.BlockConfirmations {
		return 0
	}
	return head - ecp.config.BlockConfirmations
}

func (ecp *EVMChainPoller) pollForTasks(sub *taskFeed.Subscription) {
	ctx := sub.Context()
	ticker := time.NewTicker(ecp.config.PollingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			ecp.logger.Sugar().Infow("EVM chain poller context cancelled, exiting poll loop")
			return
		case <-ticker.C:
			if err := ecp.processNextRange(ctx, sub); err != nil {
				if ctx.Err() != nil {
					return
				}
				ecp.logger.Sugar().Errorw("Failed to poll for new tasks", zap.Error(err))
				sub.Fail(err)
				return
			}
		}
	}
}

func (ecp *EVMChainPoller) processNextRange(ctx context.Context, sub *taskFeed.Subscription) error {
	head, err := ecp.source.CurrentHeight(ctx)
	if err != nil {
		return err
	}
	confirmed := ecp.confirmedHeight(head)

	ecp.mu.Lock()
	fromBlock := ecp.nextBlock
	ecp.mu.Unlock()

	// nothing new, or the node is lagging behind what we've already seen
	if confirmed < fromBlock {
		return nil
	}
	toBlock := confirmed
	if toBlock-fromBlock+1 > ecp.config.MaxBlockRange {
		toBlock = fromBlock + ecp.config.MaxBlockRange - 1
	}

	events, err := ecp.source.GetNewTasks(ctx, fromBlock, toBlock)
	if err != nil {
		return err
	}
	if len(events) > 0 {
		ecp.logger.Sugar().Infow("Found new tasks",
			zap.Uint64("fromBlock", fromBlock),
			zap.Uint64("toBlock", toBlock),
			zap.Int("taskCount", len(events)),
		)
	}

	for _, ev := range events {
		if !sub.Send(ev) {
			// redeliver from the interrupted block next session; duplicates are filtered downstream
			ecp.advance(ev.BlockNumber)
			return nil
		}
		ecp.logger.Sugar().Debugw("Enqueued task for processing",
			zap.Uint32("taskIndex", ev.TaskIndex),
			zap.Uint64("blockNumber", ev.BlockNumber),
			zap.String("transactionHash", ev.TransactionHash.String()),
		)
	}
	ecp.advance(toBlock + 1)
	return nil
}

func (ecp *EVMChainPoller) advance(next uint64) {
	ecp.mu.Lock()
	defer ecp.mu.Unlock()
	if next > ecp.nextBlock {
		ecp.nextBlock = next
	}
}
