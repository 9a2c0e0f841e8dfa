package operator

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/signer"
	"github.com/Layr-Labs/image-verification-operator/pkg/signer/inMemorySigner"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const operatorPrivateKey = "0x5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a"

var serviceManagerAddress = common.HexToAddress("0x3000000000000000000000000000000000000003")

func receipt() *ethereumTypes.Receipt {
	return &ethereumTypes.Receipt{
		Status:      ethereumTypes.ReceiptStatusSuccessful,
		TxHash:      common.HexToHash("0xabc"),
		BlockNumber: big.NewInt(1),
	}
}

// fakeAuthority models the delegation manager and AVS directory.
type fakeAuthority struct {
	mu              sync.Mutex
	operators       map[common.Address]bool
	registerCalls   int
	registerErr     error
	registerApplies bool
	isOperatorErrs  []error
	digestRequests  []digestRequest
}

type digestRequest struct {
	operator common.Address
	avs      common.Address
	salt     [32]byte
	expiry   *big.Int
}

func newFakeAuthority() *fakeAuthority {
	return &fakeAuthority{operators: make(map[common.Address]bool)}
}

func (f *fakeAuthority) IsOperator(ctx context.Context, operator common.Address) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.isOperatorErrs) > 0 {
		err := f.isOperatorErrs[0]
		f.isOperatorErrs = f.isOperatorErrs[1:]
		if err != nil {
			return false, err
		}
	}
	return f.operators[operator], nil
}

func (f *fakeAuthority) RegisterAsOperator(ctx context.Context, operator common.Address, metadataUri string) (*ethereumTypes.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerCalls++
	if f.registerErr != nil {
		if f.registerApplies {
			f.operators[operator] = true
		}
		return nil, f.registerErr
	}
	f.operators[operator] = true
	return receipt(), nil
}

func (f *fakeAuthority) CalculateRegistrationDigestHash(ctx context.Context, operator common.Address, avs common.Address, salt [32]byte, expiry *big.Int) ([32]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.digestRequests = append(f.digestRequests, digestRequest{operator, avs, salt, expiry})
	return crypto.Keccak256Hash(operator.Bytes(), avs.Bytes(), salt[:], common.LeftPadBytes(expiry.Bytes(), 32)), nil
}

// fakeRegistry models the stake registry side of the service manager.
type fakeRegistry struct {
	mu            sync.Mutex
	registered    map[common.Address]bool
	registerCalls int
	registerErr   error
	checkErr      error
	credentials   []*types.RegistrationCredential
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{registered: make(map[common.Address]bool)}
}

func (f *fakeRegistry) RegistryAddress() common.Address { return serviceManagerAddress }

func (f *fakeRegistry) IsOperatorRegistered(ctx context.Context, operator common.Address) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.checkErr != nil {
		return false, f.checkErr
	}
	return f.registered[operator], nil
}

func (f *fakeRegistry) RegisterOperatorWithSignature(ctx context.Context, credential *types.RegistrationCredential, signingKey common.Address) (*ethereumTypes.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerCalls++
	f.credentials = append(f.credentials, credential)
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered[signingKey] = true
	return receipt(), nil
}

func (f *fakeRegistry) RespondToTask(ctx context.Context, task *types.Task, taskIndex uint32, attestation []byte) (*ethereumTypes.Receipt, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRegistry) HasResponded(ctx context.Context, operator common.Address, taskIndex uint32) (bool, error) {
	return false, nil
}

func (f *fakeRegistry) GetTaskHash(ctx context.Context, taskIndex uint32) ([32]byte, error) {
	return [32]byte{}, nil
}

func (f *fakeRegistry) LatestTaskNum(ctx context.Context) (uint32, error) {
	return 0, nil
}

func (f *fakeRegistry) GetNewTasks(ctx context.Context, fromBlock, toBlock uint64) ([]*types.TaskEvent, error) {
	return nil, nil
}

func (f *fakeRegistry) WatchNewTasks(ctx context.Context, sink chan<- *types.TaskEvent, startBlock *uint64) (event.Subscription, error) {
	return nil, errors.New("not implemented")
}

type testHarness struct {
	manager   *AuthorizationManager
	authority *fakeAuthority
	registry  *fakeRegistry
	signer    signer.Signer
}

func newHarness(t *testing.T, fallback bool) *testHarness {
	s, err := inMemorySigner.NewInMemorySignerFromHex(operatorPrivateKey)
	require.NoError(t, err)

	h := &testHarness{
		authority: newFakeAuthority(),
		registry:  newFakeRegistry(),
		signer:    s,
	}
	h.manager = NewAuthorizationManager(h.authority, h.registry, s, &RegistrationConfig{
		MetadataUri:          "https://example.com/operator.json",
		FallbackOnCheckError: fallback,
	}, nil, zaptest.NewLogger(t))
	h.manager.now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	h.manager.saltSource = bytes.NewReader(bytes.Repeat([]byte{0x42}, 32*4))
	return h
}

func Test_EnsureRegistered(t *testing.T) {
	t.Run("Should register an unregistered operator with both contracts", func(t *testing.T) {
		h := newHarness(t, true)

		identity, err := h.manager.EnsureRegistered(context.Background())
		require.NoError(t, err)
		assert.Equal(t, h.signer.Address(), identity.Address)
		assert.True(t, identity.IsDelegationOperator)
		assert.True(t, identity.IsAvsOperator)
		assert.Equal(t, AvsRegistered, h.manager.State())
		assert.Equal(t, 1, h.authority.registerCalls)
		assert.Equal(t, 1, h.registry.registerCalls)
	})
	t.Run("Should send no transactions when already registered", func(t *testing.T) {
		h := newHarness(t, true)
		h.authority.operators[h.signer.Address()] = true
		h.registry.registered[h.signer.Address()] = true

		identity, err := h.manager.EnsureRegistered(context.Background())
		require.NoError(t, err)
		assert.True(t, identity.IsAvsOperator)
		assert.Equal(t, AvsRegistered, h.manager.State())
		assert.Equal(t, 0, h.authority.registerCalls)
		assert.Equal(t, 0, h.registry.registerCalls)
	})
	t.Run("Should be idempotent across runs", func(t *testing.T) {
		h := newHarness(t, true)

		_, err := h.manager.EnsureRegistered(context.Background())
		require.NoError(t, err)
		_, err = h.manager.EnsureRegistered(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, h.authority.registerCalls)
		assert.Equal(t, 1, h.registry.registerCalls)
	})
	t.Run("Should produce a credential that recovers to the operator", func(t *testing.T) {
		h := newHarness(t, true)

		_, err := h.manager.EnsureRegistered(context.Background())
		require.NoError(t, err)
		require.Len(t, h.registry.credentials, 1)
		require.Len(t, h.authority.digestRequests, 1)

		credential := h.registry.credentials[0]
		req := h.authority.digestRequests[0]
		assert.Equal(t, h.signer.Address(), req.operator)
		assert.Equal(t, serviceManagerAddress, req.avs)
		assert.Equal(t, req.salt, credential.Salt)
		assert.Equal(t, [32]byte(bytes.Repeat([]byte{0x42}, 32)), credential.Salt)
		assert.Equal(t, big.NewInt(1_700_000_000+3600), credential.Expiry)

		digestHash, err := h.authority.CalculateRegistrationDigestHash(context.Background(), req.operator, req.avs, req.salt, req.expiry)
		require.NoError(t, err)
		recovered, err := signer.RecoverDigestSigner(digestHash, credential.Signature)
		require.NoError(t, err)
		assert.Equal(t, h.signer.Address(), recovered)
	})
	t.Run("Should proceed when registerAsOperator fails but the operator is registered", func(t *testing.T) {
		h := newHarness(t, true)
		h.authority.registerErr = errors.New("replacement transaction underpriced")
		h.authority.registerApplies = true

		_, err := h.manager.EnsureRegistered(context.Background())
		require.NoError(t, err)
		assert.Equal(t, AvsRegistered, h.manager.State())
	})
	t.Run("Should fail when registerAsOperator fails and the operator is not registered", func(t *testing.T) {
		h := newHarness(t, true)
		h.authority.registerErr = errors.New("execution reverted")

		identity, err := h.manager.EnsureRegistered(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrRegistrationFailed)
		assert.False(t, identity.IsDelegationOperator)
		assert.Equal(t, Unregistered, h.manager.State())
		assert.Equal(t, 0, h.registry.registerCalls)
	})
	t.Run("Should fail without retrying when the stake registry rejects", func(t *testing.T) {
		h := newHarness(t, true)
		h.registry.registerErr = errors.New("execution reverted: InvalidSignature")

		identity, err := h.manager.EnsureRegistered(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrRegistrationFailed)
		assert.True(t, identity.IsDelegationOperator)
		assert.False(t, identity.IsAvsOperator)
		assert.Equal(t, DelegationRegistered, h.manager.State())
		assert.Equal(t, 1, h.registry.registerCalls)
	})
	t.Run("Should fall through to registration when checks fail", func(t *testing.T) {
		h := newHarness(t, true)
		h.authority.isOperatorErrs = []error{errors.New("connection refused")}
		h.registry.checkErr = errors.New("connection refused")

		_, err := h.manager.EnsureRegistered(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, h.authority.registerCalls)
		assert.Equal(t, 1, h.registry.registerCalls)
	})
	t.Run("Should abort on check failure when fallback is disabled", func(t *testing.T) {
		h := newHarness(t, false)
		h.authority.isOperatorErrs = []error{errors.New("connection refused")}

		_, err := h.manager.EnsureRegistered(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrRegistrationFailed)
		assert.Equal(t, 0, h.authority.registerCalls)
	})
	t.Run("Should abort on stake registry check failure when fallback is disabled", func(t *testing.T) {
		h := newHarness(t, false)
		h.registry.checkErr = errors.New("connection refused")

		_, err := h.manager.EnsureRegistered(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrRegistrationFailed)
		assert.Equal(t, 1, h.authority.registerCalls)
		assert.Equal(t, 0, h.registry.registerCalls)
	})
}

func Test_RegistrationStateString(t *testing.T) {
	assert.Equal(t, "unregistered", Unregistered.String())
	assert.Equal(t, "avs_registered", AvsRegistered.String())
	assert.Equal(t, "unknown(9)", RegistrationState(9).String())
}
