package responseCoordinator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/digest"
	"github.com/Layr-Labs/image-verification-operator/pkg/metrics"
	"github.com/Layr-Labs/image-verification-operator/pkg/retry"
	"github.com/Layr-Labs/image-verification-operator/pkg/signer"
	"github.com/Layr-Labs/image-verification-operator/pkg/signer/inMemorySigner"
	"github.com/Layr-Labs/image-verification-operator/pkg/storage/memory"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const operatorPrivateKey = "0x7c852118294e51e653712a81e05800f419141751be58f605c371e15141b007a6"

type submission struct {
	taskIndex   uint32
	attestation []byte
}

type fakeRegistry struct {
	mu          sync.Mutex
	submissions []submission
	// respondErrs is consumed one per RespondToTask call before succeeding
	respondErrs  []error
	respondDelay time.Duration
	responded    map[uint32]bool
	hasRespErr   error
	taskHashes   map[uint32][32]byte
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		responded:  make(map[uint32]bool),
		taskHashes: make(map[uint32][32]byte),
	}
}

func (f *fakeRegistry) RespondToTask(ctx context.Context, task *types.Task, taskIndex uint32, attestation []byte) (*ethereumTypes.Receipt, error) {
	if f.respondDelay > 0 {
		time.Sleep(f.respondDelay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submissions = append(f.submissions, submission{taskIndex: taskIndex, attestation: attestation})
	if len(f.respondErrs) > 0 {
		err := f.respondErrs[0]
		f.respondErrs = f.respondErrs[1:]
		return nil, err
	}
	f.responded[taskIndex] = true
	return &ethereumTypes.Receipt{
		Status:      ethereumTypes.ReceiptStatusSuccessful,
		TxHash:      common.BigToHash(big.NewInt(int64(taskIndex) + 1)),
		BlockNumber: big.NewInt(1000),
	}, nil
}

func (f *fakeRegistry) HasResponded(ctx context.Context, operator common.Address, taskIndex uint32) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hasRespErr != nil {
		return false, f.hasRespErr
	}
	return f.responded[taskIndex], nil
}

func (f *fakeRegistry) GetTaskHash(ctx context.Context, taskIndex uint32) ([32]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.taskHashes[taskIndex], nil
}

func (f *fakeRegistry) submissionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submissions)
}

type fakeLedger struct {
	height uint64
}

func (f *fakeLedger) CurrentHeight(ctx context.Context) (uint64, error) {
	return f.height, nil
}

func (f *fakeLedger) ChainId(ctx context.Context) (*big.Int, error) {
	return big.NewInt(31337), nil
}

type testHarness struct {
	coordinator *ResponseCoordinator
	registry    *fakeRegistry
	ledger      *fakeLedger
	store       *memory.InMemoryProcessedTaskStore
	signer      signer.Signer
	metrics     *metrics.Metrics
}

func newHarness(t *testing.T, mutate func(cfg *ResponseCoordinatorConfig)) *testHarness {
	s, err := inMemorySigner.NewInMemorySignerFromHex(operatorPrivateKey)
	require.NoError(t, err)

	cfg := &ResponseCoordinatorConfig{
		Retry: &retry.RetryConfig{
			MaxAttempts:       3,
			InitialDelay:      time.Millisecond,
			MaxDelay:          5 * time.Millisecond,
			BackoffMultiplier: 2,
		},
	}
	if mutate != nil {
		mutate(cfg)
	}

	h := &testHarness{
		registry: newFakeRegistry(),
		ledger:   &fakeLedger{height: 1000},
		store:    memory.NewInMemoryProcessedTaskStore(),
		signer:   s,
		metrics:  metrics.NewMetrics(),
	}
	h.coordinator = NewResponseCoordinator(h.registry, h.ledger, s, h.store, cfg, h.metrics, zaptest.NewLogger(t))
	return h
}

func newTaskEvent(taskIndex uint32) *types.TaskEvent {
	task := &types.Task{
		ImageHash:        crypto.Keccak256Hash([]byte(fmt.Sprintf("image-%d", taskIndex))),
		MetadataHash:     crypto.Keccak256Hash([]byte(fmt.Sprintf("metadata-%d", taskIndex))),
		TaskCreatedBlock: 1000,
		DeviceSignature:  []byte{0xde, 0xad, 0xbe, 0xef},
	}
	return &types.TaskEvent{TaskIndex: taskIndex, Task: task, BlockNumber: 1000}
}

func transientErr(msg string) error {
	return fmt.Errorf("%w: %s", types.ErrTransientLedger, msg)
}

func Test_HandleTask(t *testing.T) {
	t.Run("Should submit a verifiable attestation", func(t *testing.T) {
		h := newHarness(t, nil)
		ev := newTaskEvent(7)

		require.NoError(t, h.coordinator.HandleTask(context.Background(), ev))
		require.Equal(t, 1, h.registry.submissionCount())

		sub := h.registry.submissions[0]
		assert.Equal(t, uint32(7), sub.taskIndex)

		att, err := digest.DecodeAttestation(sub.attestation)
		require.NoError(t, err)
		assert.Equal(t, []common.Address{h.signer.Address()}, att.Operators)
		assert.Equal(t, uint32(999), att.ReferenceBlock)
		require.Len(t, att.Signatures, 1)

		recovered, err := signer.RecoverDigestSigner(digest.TaskDigest(ev.Task), att.Signatures[0])
		require.NoError(t, err)
		assert.Equal(t, h.signer.Address(), recovered)

		processed, err := h.store.IsTaskProcessed(context.Background(), 7)
		require.NoError(t, err)
		assert.True(t, processed)
		assert.Equal(t, float64(1), counterValue(t, h.metrics, "image_verification_operator_tasks_attested_total"))
	})
	t.Run("Should clamp the reference block at genesis", func(t *testing.T) {
		h := newHarness(t, nil)
		h.ledger.height = 0

		require.NoError(t, h.coordinator.HandleTask(context.Background(), newTaskEvent(1)))
		att, err := digest.DecodeAttestation(h.registry.submissions[0].attestation)
		require.NoError(t, err)
		assert.Equal(t, uint32(0), att.ReferenceBlock)
	})
	t.Run("Should submit once for sequential duplicates", func(t *testing.T) {
		h := newHarness(t, nil)
		ev := newTaskEvent(3)

		for i := 0; i < 5; i++ {
			require.NoError(t, h.coordinator.HandleTask(context.Background(), ev))
		}
		assert.Equal(t, 1, h.registry.submissionCount())
		assert.Equal(t, float64(4), counterValue(t, h.metrics, "image_verification_operator_tasks_skipped_total"))
	})
	t.Run("Should submit once for concurrent duplicates", func(t *testing.T) {
		h := newHarness(t, nil)
		h.registry.respondDelay = 20 * time.Millisecond
		ev := newTaskEvent(4)

		var wg sync.WaitGroup
		for i := 0; i < 25; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, h.coordinator.HandleTask(context.Background(), ev))
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, h.registry.submissionCount())
		assert.Equal(t, 0, h.coordinator.InFlight())
	})
	t.Run("Should submit each of 100 concurrent tasks", func(t *testing.T) {
		h := newHarness(t, nil)

		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func(idx uint32) {
				defer wg.Done()
				assert.NoError(t, h.coordinator.HandleTask(context.Background(), newTaskEvent(idx)))
			}(uint32(i))
		}
		wg.Wait()

		require.Equal(t, 100, h.registry.submissionCount())
		seen := make(map[uint32]bool)
		for _, sub := range h.registry.submissions {
			seen[sub.taskIndex] = true
		}
		assert.Len(t, seen, 100)
	})
	t.Run("Should succeed after transient failures within the attempt budget", func(t *testing.T) {
		h := newHarness(t, nil)
		h.registry.respondErrs = []error{
			transientErr("connection reset"),
			errors.New("i/o timeout"),
		}

		require.NoError(t, h.coordinator.HandleTask(context.Background(), newTaskEvent(9)))
		assert.Equal(t, 3, h.registry.submissionCount())
		assert.Equal(t, float64(2), counterValue(t, h.metrics, "image_verification_operator_submission_retries_total"))
	})
	t.Run("Should drop after exactly MaxAttempts transient failures", func(t *testing.T) {
		h := newHarness(t, nil)
		for i := 0; i < 10; i++ {
			h.registry.respondErrs = append(h.registry.respondErrs, transientErr("503 service unavailable"))
		}

		err := h.coordinator.HandleTask(context.Background(), newTaskEvent(11))
		require.Error(t, err)
		assert.Equal(t, 3, h.registry.submissionCount())

		var permanentErr *types.PermanentTaskError
		require.ErrorAs(t, err, &permanentErr)
		assert.Equal(t, uint32(11), permanentErr.TaskIndex)
		assert.ErrorIs(t, err, types.ErrPermanentTask)
		assert.ErrorIs(t, err, types.ErrRetriesExhausted)

		processed, err := h.store.IsTaskProcessed(context.Background(), 11)
		require.NoError(t, err)
		assert.False(t, processed)
		assert.Equal(t, 0, h.coordinator.InFlight())
		assert.Equal(t, float64(1), counterValue(t, h.metrics, "image_verification_operator_tasks_dropped_total"))
	})
	t.Run("Should not retry a reverted submission", func(t *testing.T) {
		h := newHarness(t, nil)
		h.registry.respondErrs = []error{errors.New("execution reverted: Operator has already responded to the task")}

		err := h.coordinator.HandleTask(context.Background(), newTaskEvent(12))
		require.Error(t, err)
		assert.Equal(t, 1, h.registry.submissionCount())
		assert.True(t, types.IsPermanent(err))
		assert.NotErrorIs(t, err, types.ErrRetriesExhausted)
	})
	t.Run("Should allow a redelivered task after a dropped attempt", func(t *testing.T) {
		h := newHarness(t, nil)
		h.registry.respondErrs = []error{errors.New("execution reverted")}
		ev := newTaskEvent(13)

		require.Error(t, h.coordinator.HandleTask(context.Background(), ev))
		require.NoError(t, h.coordinator.HandleTask(context.Background(), ev))
		assert.Equal(t, 2, h.registry.submissionCount())
	})
	t.Run("Should skip tasks the registry already holds a response for", func(t *testing.T) {
		h := newHarness(t, nil)
		h.registry.responded[21] = true

		require.NoError(t, h.coordinator.HandleTask(context.Background(), newTaskEvent(21)))
		assert.Equal(t, 0, h.registry.submissionCount())

		processed, err := h.store.IsTaskProcessed(context.Background(), 21)
		require.NoError(t, err)
		assert.True(t, processed)
	})
	t.Run("Should submit when the response check fails", func(t *testing.T) {
		h := newHarness(t, nil)
		h.registry.hasRespErr = errors.New("connection refused")

		require.NoError(t, h.coordinator.HandleTask(context.Background(), newTaskEvent(22)))
		assert.Equal(t, 1, h.registry.submissionCount())
	})
	t.Run("Should skip tasks recorded as processed", func(t *testing.T) {
		h := newHarness(t, nil)
		require.NoError(t, h.store.MarkTaskProcessed(context.Background(), 30))

		require.NoError(t, h.coordinator.HandleTask(context.Background(), newTaskEvent(30)))
		assert.Equal(t, 0, h.registry.submissionCount())
	})
	t.Run("Should drop tasks that do not match the registry record", func(t *testing.T) {
		h := newHarness(t, func(cfg *ResponseCoordinatorConfig) { cfg.VerifyTaskHash = true })
		h.registry.taskHashes[40] = crypto.Keccak256Hash([]byte("something else"))

		err := h.coordinator.HandleTask(context.Background(), newTaskEvent(40))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTaskHashMismatch)
		assert.True(t, types.IsPermanent(err))
		assert.Equal(t, 0, h.registry.submissionCount())
	})
	t.Run("Should submit tasks that match the registry record", func(t *testing.T) {
		h := newHarness(t, func(cfg *ResponseCoordinatorConfig) { cfg.VerifyTaskHash = true })
		ev := newTaskEvent(41)
		recordHash, err := digest.TaskRecordHash(ev.Task)
		require.NoError(t, err)
		h.registry.taskHashes[41] = recordHash

		require.NoError(t, h.coordinator.HandleTask(context.Background(), ev))
		assert.Equal(t, 1, h.registry.submissionCount())
	})
	t.Run("Should stop retrying when the context is cancelled", func(t *testing.T) {
		h := newHarness(t, func(cfg *ResponseCoordinatorConfig) {
			cfg.Retry = &retry.RetryConfig{
				MaxAttempts:       5,
				InitialDelay:      time.Hour,
				MaxDelay:          time.Hour,
				BackoffMultiplier: 1,
			}
		})
		h.registry.respondErrs = []error{transientErr("timeout")}

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- h.coordinator.HandleTask(ctx, newTaskEvent(50)) }()
		time.Sleep(20 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			require.Error(t, err)
			assert.ErrorIs(t, err, context.Canceled)
			assert.False(t, types.IsPermanent(err))
		case <-time.After(2 * time.Second):
			t.Fatal("HandleTask did not return after cancellation")
		}
		assert.Equal(t, 0, h.coordinator.InFlight())
	})
	t.Run("Should reject events without a task", func(t *testing.T) {
		h := newHarness(t, nil)
		assert.ErrorIs(t, h.coordinator.HandleTask(context.Background(), &types.TaskEvent{TaskIndex: 1}), ErrInvalidTaskEvent)
	})
}

func Test_SubmissionRateLimit(t *testing.T) {
	h := newHarness(t, func(cfg *ResponseCoordinatorConfig) {
		cfg.SubmissionsPerSecond = 20
		cfg.Burst = 1
	})

	start := time.Now()
	for i := 0; i < 4; i++ {
		require.NoError(t, h.coordinator.HandleTask(context.Background(), newTaskEvent(uint32(i))))
	}
	// first token is free, the next three wait ~50ms each
	assert.GreaterOrEqual(t, time.Since(start), 120*time.Millisecond)
}

func Test_ReferenceBlock(t *testing.T) {
	tests := []struct {
		height   uint64
		expected uint32
	}{
		{0, 0},
		{1, 0},
		{1000, 999},
		{math.MaxUint32 + 1, math.MaxUint32},
	}
	for _, tt := range tests {
		block, err := ReferenceBlock(tt.height)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, block)
	}

	_, err := ReferenceBlock(math.MaxUint32 + 2)
	assert.ErrorIs(t, err, ErrReferenceBlockOverflow)
}

func Test_HandleTask_ReferenceBlockOverflow(t *testing.T) {
	h := newHarness(t, nil)
	h.ledger.height = math.MaxUint32 + 2

	err := h.coordinator.HandleTask(context.Background(), newTaskEvent(4))
	require.Error(t, err)
	assert.True(t, types.IsPermanent(err))
	assert.ErrorIs(t, err, ErrReferenceBlockOverflow)
	assert.Equal(t, 0, h.registry.submissionCount())
	assert.Equal(t, 0, h.coordinator.InFlight())
}

func Test_HandleTask_RedeliveredDuringFailingAttempt(t *testing.T) {
	h := newHarness(t, nil)
	h.registry.respondDelay = 20 * time.Millisecond
	h.registry.respondErrs = []error{
		errors.New("read tcp: connection reset by peer"),
		errors.New("read tcp: connection reset by peer"),
		errors.New("read tcp: connection reset by peer"),
	}

	first := make(chan error, 1)
	go func() { first <- h.coordinator.HandleTask(context.Background(), newTaskEvent(9)) }()

	require.Eventually(t, func() bool { return h.coordinator.InFlight() == 1 }, time.Second, time.Millisecond)
	require.NoError(t, h.coordinator.HandleTask(context.Background(), newTaskEvent(9)))

	require.NoError(t, <-first)
	assert.Equal(t, 4, h.registry.submissionCount())
	processed, err := h.store.IsTaskProcessed(context.Background(), 9)
	require.NoError(t, err)
	assert.True(t, processed)
	assert.Equal(t, 0, h.coordinator.InFlight())
}

func Test_HandleTask_ExhaustedWithoutRedelivery(t *testing.T) {
	h := newHarness(t, nil)
	h.registry.respondErrs = []error{
		errors.New("read tcp: connection reset by peer"),
		errors.New("read tcp: connection reset by peer"),
		errors.New("read tcp: connection reset by peer"),
	}

	err := h.coordinator.HandleTask(context.Background(), newTaskEvent(10))
	assert.ErrorIs(t, err, types.ErrRetriesExhausted)
	assert.Equal(t, 3, h.registry.submissionCount())
}

func counterValue(t *testing.T, m *metrics.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	total := 0.0
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}
