package operator

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/contractCaller"
	"github.com/Layr-Labs/image-verification-operator/pkg/metrics"
	"github.com/Layr-Labs/image-verification-operator/pkg/signer"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

type RegistrationState int

const (
	Unregistered RegistrationState = iota
	DelegationPending
	DelegationRegistered
	AvsPending
	AvsRegistered
)

func (s RegistrationState) String() string {
	switch s {
	case Unregistered:
		return "unregistered"
	case DelegationPending:
		return "delegation_pending"
	case DelegationRegistered:
		return "delegation_registered"
	case AvsPending:
		return "avs_pending"
	case AvsRegistered:
		return "avs_registered"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

const DefaultRegistrationExpiry = time.Hour

type RegistrationConfig struct {
	MetadataUri string

	// FallbackOnCheckError treats a failed "already registered" query as "not registered"
	// and attempts registration anyway. When false a failed query aborts registration.
	FallbackOnCheckError bool

	// RegistrationExpiry bounds how long the stake registry signature stays valid.
	RegistrationExpiry time.Duration
}

// AuthorizationManager drives the operator through delegation and AVS registration.
// Running it against an already registered operator sends no transactions.
type AuthorizationManager struct {
	authority contractCaller.IAuthority
	registry  contractCaller.IRegistry
	signer    signer.Signer
	config    *RegistrationConfig
	metrics   *metrics.Metrics
	logger    *zap.Logger

	mu    sync.Mutex
	state RegistrationState

	now        func() time.Time
	saltSource io.Reader
}

func NewAuthorizationManager(
	authority contractCaller.IAuthority,
	registry contractCaller.IRegistry,
	s signer.Signer,
	config *RegistrationConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) *AuthorizationManager {
	if config.RegistrationExpiry == 0 {
		config.RegistrationExpiry = DefaultRegistrationExpiry
	}
	return &AuthorizationManager{
		authority:  authority,
		registry:   registry,
		signer:     s,
		config:     config,
		metrics:    m,
		logger:     logger,
		state:      Unregistered,
		now:        time.Now,
		saltSource: rand.Reader,
	}
}

func (am *AuthorizationManager) State() RegistrationState {
	am.mu.Lock()
	defer am.mu.Unlock()
	return am.state
}

func (am *AuthorizationManager) transition(to RegistrationState) {
	am.mu.Lock()
	from := am.state
	am.state = to
	am.mu.Unlock()

	am.metrics.SetRegistrationState(int(to))
	am.logger.Sugar().Infow("Operator registration state changed",
		zap.String("operator", am.signer.Address().String()),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
	)
}

// EnsureRegistered registers the operator with the delegation manager and the stake
// registry as needed. It returns once the operator is registered with both.
func (am *AuthorizationManager) EnsureRegistered(ctx context.Context) (*types.OperatorIdentity, error) {
	identity := &types.OperatorIdentity{
		Address: am.signer.Address(),
	}

	if err := am.ensureDelegationRegistration(ctx); err != nil {
		return identity, err
	}
	identity.IsDelegationOperator = true

	if err := am.ensureAvsRegistration(ctx); err != nil {
		return identity, err
	}
	identity.IsAvsOperator = true

	return identity, nil
}

func (am *AuthorizationManager) ensureDelegationRegistration(ctx context.Context) error {
	operatorAddress := am.signer.Address()

	exists, err := am.authority.IsOperator(ctx, operatorAddress)
	if err != nil {
		if !am.config.FallbackOnCheckError {
			return fmt.Errorf("%w: failed to check delegation registration: %w", types.ErrRegistrationFailed, err)
		}
		am.logger.Sugar().Warnw("Failed to check delegation registration, attempting registration",
			zap.String("operator", operatorAddress.String()),
			zap.Error(err),
		)
		exists = false
	}
	if exists {
		am.logger.Sugar().Infow("Operator already registered with the delegation manager",
			zap.String("operator", operatorAddress.String()),
		)
		am.transition(DelegationRegistered)
		return nil
	}

	am.transition(DelegationPending)
	receipt, err := am.authority.RegisterAsOperator(ctx, operatorAddress, am.config.MetadataUri)
	if err != nil {
		am.logger.Sugar().Warnw("registerAsOperator failed, checking whether the operator is registered anyway",
			zap.String("operator", operatorAddress.String()),
			zap.Error(err),
		)
		registered, checkErr := am.authority.IsOperator(ctx, operatorAddress)
		if checkErr == nil && registered {
			am.transition(DelegationRegistered)
			return nil
		}
		am.transition(Unregistered)
		return fmt.Errorf("%w: registerAsOperator: %w", types.ErrRegistrationFailed, err)
	}

	am.logger.Sugar().Infow("Operator registered with the delegation manager",
		zap.String("operator", operatorAddress.String()),
		zap.String("txHash", receipt.TxHash.String()),
	)
	am.transition(DelegationRegistered)
	return nil
}

func (am *AuthorizationManager) ensureAvsRegistration(ctx context.Context) error {
	operatorAddress := am.signer.Address()

	registered, err := am.registry.IsOperatorRegistered(ctx, operatorAddress)
	if err != nil {
		if !am.config.FallbackOnCheckError {
			return fmt.Errorf("%w: failed to check stake registry registration: %w", types.ErrRegistrationFailed, err)
		}
		am.logger.Sugar().Warnw("Failed to check stake registry registration, attempting registration",
			zap.String("operator", operatorAddress.String()),
			zap.Error(err),
		)
		registered = false
	}
	if registered {
		am.logger.Sugar().Infow("Operator already registered with the AVS",
			zap.String("operator", operatorAddress.String()),
		)
		am.transition(AvsRegistered)
		return nil
	}

	am.transition(AvsPending)
	credential, err := am.buildRegistrationCredential(ctx)
	if err != nil {
		am.transition(DelegationRegistered)
		return fmt.Errorf("%w: %w", types.ErrRegistrationFailed, err)
	}

	am.logger.Sugar().Infow("Registering operator with the AVS",
		zap.String("operator", operatorAddress.String()),
		zap.String("avs", am.registry.RegistryAddress().String()),
		zap.String("salt", hexutil.Encode(credential.Salt[:])),
		zap.String("expiry", credential.Expiry.String()),
	)
	receipt, err := am.registry.RegisterOperatorWithSignature(ctx, credential, operatorAddress)
	if err != nil {
		am.transition(DelegationRegistered)
		return fmt.Errorf("%w: registerOperatorWithSignature: %w", types.ErrRegistrationFailed, err)
	}

	am.logger.Sugar().Infow("Operator registered with the AVS",
		zap.String("operator", operatorAddress.String()),
		zap.String("txHash", receipt.TxHash.String()),
	)
	am.transition(AvsRegistered)
	return nil
}

// buildRegistrationCredential fetches the registration digest from the AVS directory for a
// fresh salt and signs it.
func (am *AuthorizationManager) buildRegistrationCredential(ctx context.Context) (*types.RegistrationCredential, error) {
	operatorAddress := am.signer.Address()

	var salt [32]byte
	if _, err := io.ReadFull(am.saltSource, salt[:]); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	expiry := big.NewInt(am.now().Add(am.config.RegistrationExpiry).Unix())

	digestHash, err := am.authority.CalculateRegistrationDigestHash(ctx, operatorAddress, am.registry.RegistryAddress(), salt, expiry)
	if err != nil {
		return nil, fmt.Errorf("failed to get registration digest: %w", err)
	}
	am.logger.Sugar().Debugw("Operator registration digest",
		zap.String("digest", hexutil.Encode(digestHash[:])),
	)

	signature, err := am.signer.SignDigest(digestHash)
	if err != nil {
		return nil, fmt.Errorf("failed to sign registration digest: %w", err)
	}

	recovered, err := signer.RecoverDigestSigner(digestHash, signature)
	if err != nil {
		return nil, fmt.Errorf("failed to verify registration signature: %w", err)
	}
	if recovered != operatorAddress {
		return nil, fmt.Errorf("registration signature recovers to %s, expected %s", recovered.String(), operatorAddress.String())
	}

	return &types.RegistrationCredential{
		Signature: signature,
		Salt:      salt,
		Expiry:    expiry,
	}, nil
}
