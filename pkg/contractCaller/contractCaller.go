package contractCaller

import (
	"context"
	"math/big"

	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
)

// ILedger is the chain itself: block height and chain identity.
type ILedger interface {
	CurrentHeight(ctx context.Context) (uint64, error)

	ChainId(ctx context.Context) (*big.Int, error)
}

// IRegistry is the ImageVerificationServiceManager together with its ECDSAStakeRegistry.
type IRegistry interface {
	// RegistryAddress is the service manager address, used as the avs in registration digests.
	RegistryAddress() common.Address

	RespondToTask(ctx context.Context, task *types.Task, taskIndex uint32, attestation []byte) (*ethereumTypes.Receipt, error)

	// HasResponded reports whether the registry already holds a response from operator for taskIndex.
	HasResponded(ctx context.Context, operator common.Address, taskIndex uint32) (bool, error)

	GetTaskHash(ctx context.Context, taskIndex uint32) ([32]byte, error)

	LatestTaskNum(ctx context.Context) (uint32, error)

	IsOperatorRegistered(ctx context.Context, operator common.Address) (bool, error)

	RegisterOperatorWithSignature(ctx context.Context, credential *types.RegistrationCredential, signingKey common.Address) (*ethereumTypes.Receipt, error)

	// GetNewTasks returns NewTaskCreated events in [fromBlock, toBlock].
	GetNewTasks(ctx context.Context, fromBlock, toBlock uint64) ([]*types.TaskEvent, error)

	// WatchNewTasks streams NewTaskCreated events to sink until the subscription is closed.
	WatchNewTasks(ctx context.Context, sink chan<- *types.TaskEvent, startBlock *uint64) (event.Subscription, error)
}

// IAuthority is the EigenLayer delegation side: DelegationManager and AVSDirectory.
type IAuthority interface {
	IsOperator(ctx context.Context, operator common.Address) (bool, error)

	RegisterAsOperator(ctx context.Context, operator common.Address, metadataUri string) (*ethereumTypes.Receipt, error)

	CalculateRegistrationDigestHash(ctx context.Context, operator common.Address, avs common.Address, salt [32]byte, expiry *big.Int) ([32]byte, error)
}

type IContractCaller interface {
	ILedger
	IRegistry
	IAuthority
}
