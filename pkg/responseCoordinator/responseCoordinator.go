package responseCoordinator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/contractCaller"
	"github.com/Layr-Labs/image-verification-operator/pkg/digest"
	"github.com/Layr-Labs/image-verification-operator/pkg/metrics"
	"github.com/Layr-Labs/image-verification-operator/pkg/retry"
	"github.com/Layr-Labs/image-verification-operator/pkg/signer"
	"github.com/Layr-Labs/image-verification-operator/pkg/storage"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	ErrTaskHashMismatch = errors.New("task does not match the registry record")
	ErrInvalidTaskEvent = errors.New("task event has no task")

	ErrReferenceBlockOverflow = errors.New("reference block out of range")
)

// ITaskRegistry is the slice of the registry the coordinator talks to.
type ITaskRegistry interface {
	RespondToTask(ctx context.Context, task *types.Task, taskIndex uint32, attestation []byte) (*ethereumTypes.Receipt, error)

	HasResponded(ctx context.Context, operator common.Address, taskIndex uint32) (bool, error)

	GetTaskHash(ctx context.Context, taskIndex uint32) ([32]byte, error)
}

type ResponseCoordinatorConfig struct {
	Retry *retry.RetryConfig
	// SubmissionsPerSecond paces respondToTask calls across all tasks, 0 disables pacing
	SubmissionsPerSecond float64
	Burst                int
	// VerifyTaskHash compares the delivered task against allTaskHashes before signing
	VerifyTaskHash bool
}

// ResponseCoordinator attests to each task at most once: it claims the task index,
// signs the task digest and submits the response, retrying transient failures.
type ResponseCoordinator struct {
	registry ITaskRegistry
	ledger   contractCaller.ILedger
	signer   signer.Signer
	store    storage.ProcessedTaskStore
	limiter  *rate.Limiter
	config   *ResponseCoordinatorConfig
	metrics  *metrics.Metrics
	logger   *zap.Logger

	mu sync.Mutex
	// inFlight maps claimed task indexes to whether a duplicate arrived during the attempt
	inFlight map[uint32]bool
}

func NewResponseCoordinator(
	registry ITaskRegistry,
	ledger contractCaller.ILedger,
	s signer.Signer,
	store storage.ProcessedTaskStore,
	config *ResponseCoordinatorConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ResponseCoordinator {
	if config.Retry == nil {
		config.Retry = retry.DefaultRetryConfig()
	}
	var limiter *rate.Limiter
	if config.SubmissionsPerSecond > 0 {
		burst := config.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(config.SubmissionsPerSecond), burst)
	}
	return &ResponseCoordinator{
		registry: registry,
		ledger:   ledger,
		signer:   s,
		store:    store,
		limiter:  limiter,
		config:   config,
		metrics:  m,
		logger:   logger,
		inFlight: make(map[uint32]bool),
	}
}

// HandleTask attests to a single task. Duplicate and concurrent deliveries of the
// same task index result in a single submission. A nil return means the task is
// attested or was skipped as already handled; a dropped task returns a
// *types.PermanentTaskError.
func (rc *ResponseCoordinator) HandleTask(ctx context.Context, ev *types.TaskEvent) error {
	if ev == nil || ev.Task == nil {
		return ErrInvalidTaskEvent
	}
	start := time.Now()
	sugar := rc.logger.Sugar()

	claimed, err := rc.claim(ctx, ev.TaskIndex)
	if err != nil {
		return err
	}
	if !claimed {
		rc.metrics.TaskSkipped("duplicate")
		sugar.Debugw("Task already processed or in flight, skipping", zap.Uint32("taskIndex", ev.TaskIndex))
		return nil
	}

	err = rc.attest(ctx, ev, start)
	redelivered := rc.release(ev.TaskIndex)
	// a duplicate skipped during an exhausted attempt gets its own run
	if redelivered && ctx.Err() == nil && errors.Is(err, types.ErrRetriesExhausted) {
		sugar.Infow("Task was redelivered while its attempt was failing, handling again", zap.Uint32("taskIndex", ev.TaskIndex))
		return rc.HandleTask(ctx, ev)
	}
	return err
}

func (rc *ResponseCoordinator) attest(ctx context.Context, ev *types.TaskEvent, start time.Time) error {
	sugar := rc.logger.Sugar()
	rc.metrics.TaskStarted()
	defer rc.metrics.TaskFinished()

	sugar.Infow("Handling task",
		zap.Uint32("taskIndex", ev.TaskIndex),
		zap.Uint64("blockNumber", ev.BlockNumber),
		zap.String("imageHash", hexutil.Encode(ev.Task.ImageHash[:])),
	)

	responded, err := rc.registry.HasResponded(ctx, rc.signer.Address(), ev.TaskIndex)
	if err != nil {
		sugar.Warnw("Failed to check for an existing response, continuing",
			zap.Uint32("taskIndex", ev.TaskIndex),
			zap.Error(err),
		)
	} else if responded {
		rc.markProcessed(ctx, ev.TaskIndex)
		rc.metrics.TaskSkipped("already_responded")
		sugar.Infow("Operator already responded to task", zap.Uint32("taskIndex", ev.TaskIndex))
		return nil
	}

	if rc.config.VerifyTaskHash {
		if err := rc.verifyTaskHash(ctx, ev); err != nil {
			return rc.drop(ev.TaskIndex, "task_mismatch", err)
		}
	}

	taskDigest := digest.TaskDigest(ev.Task)
	signature, err := rc.signer.SignDigest(taskDigest)
	if err != nil {
		return rc.drop(ev.TaskIndex, "signing_failed", err)
	}
	sugar.Debugw("Signed task digest",
		zap.Uint32("taskIndex", ev.TaskIndex),
		zap.String("digest", hexutil.Encode(taskDigest[:])),
	)

	var receipt *ethereumTypes.Receipt
	err = retry.Do(ctx, rc.config.Retry,
		func(attempt int) error {
			r, err := rc.submit(ctx, ev, signature)
			if err != nil {
				return err
			}
			receipt = r
			return nil
		},
		func(err error) bool {
			return ctx.Err() == nil && types.IsTransient(err)
		},
		func(attempt int, delay time.Duration, err error) {
			rc.metrics.SubmissionRetried()
			sugar.Warnw("Task response failed, retrying",
				zap.Uint32("taskIndex", ev.TaskIndex),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(err),
			)
		},
	)
	if err != nil {
		if ctx.Err() != nil {
			sugar.Warnw("Task handling cancelled", zap.Uint32("taskIndex", ev.TaskIndex), zap.Error(err))
			return fmt.Errorf("task %d: %w", ev.TaskIndex, ctx.Err())
		}
		reason := "permanent"
		if errors.Is(err, types.ErrRetriesExhausted) {
			reason = "retries_exhausted"
		}
		return rc.drop(ev.TaskIndex, reason, err)
	}

	rc.markProcessed(ctx, ev.TaskIndex)
	rc.metrics.TaskAttested(time.Since(start))
	sugar.Infow("Task response confirmed",
		zap.Uint32("taskIndex", ev.TaskIndex),
		zap.String("txHash", receipt.TxHash.String()),
		zap.Uint64("blockNumber", receipt.BlockNumber.Uint64()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// submit performs a single respondToTask attempt. The reference block is read
// per attempt so a retried submission does not reference a stale height.
func (rc *ResponseCoordinator) submit(ctx context.Context, ev *types.TaskEvent, signature []byte) (*ethereumTypes.Receipt, error) {
	height, err := rc.ledger.CurrentHeight(ctx)
	if err != nil {
		return nil, contractCaller.ClassifyError(fmt.Errorf("failed to get current height: %w", err))
	}
	referenceBlock, err := ReferenceBlock(height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrPermanentTask, err)
	}
	attestation, err := digest.EncodeAttestation(&types.Attestation{
		Operators:      []common.Address{rc.signer.Address()},
		Signatures:     [][]byte{signature},
		ReferenceBlock: referenceBlock,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrPermanentTask, err)
	}

	if rc.limiter != nil {
		if err := rc.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	receipt, err := rc.registry.RespondToTask(ctx, ev.Task, ev.TaskIndex, attestation)
	if err != nil {
		return nil, contractCaller.ClassifyError(err)
	}
	return receipt, nil
}

func (rc *ResponseCoordinator) verifyTaskHash(ctx context.Context, ev *types.TaskEvent) error {
	expected, err := digest.TaskRecordHash(ev.Task)
	if err != nil {
		return err
	}
	onChain, err := rc.registry.GetTaskHash(ctx, ev.TaskIndex)
	if err != nil {
		rc.logger.Sugar().Warnw("Failed to read task hash, continuing without verification",
			zap.Uint32("taskIndex", ev.TaskIndex),
			zap.Error(err),
		)
		return nil
	}
	if onChain != expected {
		return fmt.Errorf("%w: registry has %s, delivered task hashes to %s",
			ErrTaskHashMismatch, hexutil.Encode(onChain[:]), hexutil.Encode(expected[:]))
	}
	return nil
}

func (rc *ResponseCoordinator) drop(taskIndex uint32, reason string, err error) error {
	rc.metrics.TaskDropped(reason)
	rc.logger.Sugar().Errorw("Dropping task",
		zap.Uint32("taskIndex", taskIndex),
		zap.String("reason", reason),
		zap.Error(err),
	)
	return types.NewPermanentTaskError(taskIndex, err)
}

// claim reserves taskIndex for this caller. It returns false when the task is
// already in flight or recorded as processed.
func (rc *ResponseCoordinator) claim(ctx context.Context, taskIndex uint32) (bool, error) {
	rc.mu.Lock()
	if _, ok := rc.inFlight[taskIndex]; ok {
		rc.inFlight[taskIndex] = true
		rc.mu.Unlock()
		return false, nil
	}
	rc.inFlight[taskIndex] = false
	rc.mu.Unlock()

	processed, err := rc.store.IsTaskProcessed(ctx, taskIndex)
	if err != nil {
		if errors.Is(err, storage.ErrStoreClosed) {
			rc.release(taskIndex)
			return false, err
		}
		rc.logger.Sugar().Warnw("Failed to read processed task store, treating task as new",
			zap.Uint32("taskIndex", taskIndex),
			zap.Error(err),
		)
		return true, nil
	}
	if processed {
		rc.release(taskIndex)
		return false, nil
	}
	return true, nil
}

// release drops the claim and reports whether the task was delivered again meanwhile.
func (rc *ResponseCoordinator) release(taskIndex uint32) bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	redelivered := rc.inFlight[taskIndex]
	delete(rc.inFlight, taskIndex)
	return redelivered
}

func (rc *ResponseCoordinator) markProcessed(ctx context.Context, taskIndex uint32) {
	// the response is already on chain, so a cancelled ctx must not lose the record
	if err := rc.store.MarkTaskProcessed(context.WithoutCancel(ctx), taskIndex); err != nil {
		rc.logger.Sugar().Errorw("Failed to record processed task",
			zap.Uint32("taskIndex", taskIndex),
			zap.Error(err),
		)
	}
}

// InFlight returns the number of tasks currently claimed.
func (rc *ResponseCoordinator) InFlight() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.inFlight)
}

// ReferenceBlock is the block an attestation refers to: one below the current
// height, clamped at genesis. Heights that do not fit the registry's uint32 are rejected.
func ReferenceBlock(height uint64) (uint32, error) {
	if height == 0 {
		return 0, nil
	}
	if height-1 > math.MaxUint32 {
		return 0, fmt.Errorf("%w: reference block %d overflows uint32", ErrReferenceBlockOverflow, height-1)
	}
	return uint32(height - 1), nil
}
