package caller

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Layr-Labs/image-verification-operator/pkg/config"
	"github.com/Layr-Labs/image-verification-operator/pkg/contractCaller"
	"github.com/Layr-Labs/image-verification-operator/pkg/core-bindings/IAVSDirectory"
	"github.com/Layr-Labs/image-verification-operator/pkg/core-bindings/IDelegationManager"
	"github.com/Layr-Labs/image-verification-operator/pkg/middleware-bindings/ECDSAStakeRegistry"
	"github.com/Layr-Labs/image-verification-operator/pkg/middleware-bindings/ImageVerificationServiceManager"
	"github.com/Layr-Labs/image-verification-operator/pkg/transactionSigner"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethereumTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"go.uber.org/zap"
)

// EthClient is the subset of ethclient.Client the caller reads through.
type EthClient interface {
	bind.ContractBackend
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

type ContractCaller struct {
	serviceManager    *ImageVerificationServiceManager.ImageVerificationServiceManager
	stakeRegistry     *ECDSAStakeRegistry.ECDSAStakeRegistry
	delegationManager *IDelegationManager.IDelegationManager
	avsDirectory      *IAVSDirectory.IAVSDirectory
	ethclient         EthClient
	addresses         *config.DeploymentAddresses
	signer            transactionSigner.ITransactionSigner
	logger            *zap.Logger
}

var _ contractCaller.IContractCaller = (*ContractCaller)(nil)

func NewContractCaller(
	ethclient EthClient,
	signer transactionSigner.ITransactionSigner,
	addresses *config.DeploymentAddresses,
	logger *zap.Logger,
) (*ContractCaller, error) {
	logger.Sugar().Debugw("Creating contract caller",
		zap.String("serviceManager", addresses.ImageVerificationServiceManager.String()),
		zap.String("stakeRegistry", addresses.StakeRegistry.String()),
		zap.String("delegationManager", addresses.DelegationManager.String()),
		zap.String("avsDirectory", addresses.AvsDirectory.String()),
	)
	if err := addresses.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrConfig, err)
	}

	serviceManager, err := ImageVerificationServiceManager.NewImageVerificationServiceManager(addresses.ImageVerificationServiceManager, ethclient)
	if err != nil {
		return nil, fmt.Errorf("failed to create ImageVerificationServiceManager: %w", err)
	}

	stakeRegistry, err := ECDSAStakeRegistry.NewECDSAStakeRegistry(addresses.StakeRegistry, ethclient)
	if err != nil {
		return nil, fmt.Errorf("failed to create ECDSAStakeRegistry: %w", err)
	}

	delegationManager, err := IDelegationManager.NewIDelegationManager(addresses.DelegationManager, ethclient)
	if err != nil {
		return nil, fmt.Errorf("failed to create DelegationManager: %w", err)
	}

	avsDirectory, err := IAVSDirectory.NewIAVSDirectory(addresses.AvsDirectory, ethclient)
	if err != nil {
		return nil, fmt.Errorf("failed to create AVSDirectory: %w", err)
	}

	return &ContractCaller{
		serviceManager:    serviceManager,
		stakeRegistry:     stakeRegistry,
		delegationManager: delegationManager,
		avsDirectory:      avsDirectory,
		ethclient:         ethclient,
		addresses:         addresses,
		signer:            signer,
		logger:            logger,
	}, nil
}

func (cc *ContractCaller) CurrentHeight(ctx context.Context) (uint64, error) {
	height, err := cc.ethclient.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get block number: %w", err)
	}
	return height, nil
}

func (cc *ContractCaller) ChainId(ctx context.Context) (*big.Int, error) {
	chainId, err := cc.ethclient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainId, nil
}

func (cc *ContractCaller) RegistryAddress() common.Address {
	return cc.addresses.ImageVerificationServiceManager
}

// ValidateDeployment checks that the service manager points at the configured stake
// registry and AVS directory. Getters the deployment does not expose are skipped.
func (cc *ContractCaller) ValidateDeployment(ctx context.Context) error {
	opts := &bind.CallOpts{Context: ctx}

	stakeRegistry, err := cc.serviceManager.StakeRegistry(opts)
	if err != nil {
		cc.logger.Sugar().Warnw("Unable to read stake registry from service manager", zap.Error(err))
	} else if stakeRegistry != cc.addresses.StakeRegistry {
		return fmt.Errorf("%w: service manager uses stake registry %s, configured %s",
			types.ErrConfig, stakeRegistry.String(), cc.addresses.StakeRegistry.String())
	}

	avsDirectory, err := cc.serviceManager.AvsDirectory(opts)
	if err != nil {
		cc.logger.Sugar().Warnw("Unable to read AVS directory from service manager", zap.Error(err))
	} else if avsDirectory != cc.addresses.AvsDirectory {
		return fmt.Errorf("%w: service manager uses AVS directory %s, configured %s",
			types.ErrConfig, avsDirectory.String(), cc.addresses.AvsDirectory.String())
	}
	return nil
}

func (cc *ContractCaller) RespondToTask(ctx context.Context, task *types.Task, taskIndex uint32, attestation []byte) (*ethereumTypes.Receipt, error) {
	noSendTxOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction options: %w", err)
	}

	tx, err := cc.serviceManager.RespondToTask(noSendTxOpts, taskToBinding(task), taskIndex, attestation)
	if err != nil {
		return nil, contractCaller.ClassifyError(fmt.Errorf("failed to create respondToTask transaction: %w", err))
	}

	receipt, err := cc.signAndSendTransaction(ctx, tx, "RespondToTask")
	if err != nil {
		return nil, contractCaller.ClassifyError(err)
	}
	return receipt, nil
}

func (cc *ContractCaller) HasResponded(ctx context.Context, operator common.Address, taskIndex uint32) (bool, error) {
	response, err := cc.serviceManager.AllTaskResponses(&bind.CallOpts{Context: ctx}, operator, taskIndex)
	if err != nil {
		return false, contractCaller.ClassifyError(fmt.Errorf("failed to get task response: %w", err))
	}
	return len(response) > 0, nil
}

func (cc *ContractCaller) GetTaskHash(ctx context.Context, taskIndex uint32) ([32]byte, error) {
	hash, err := cc.serviceManager.AllTaskHashes(&bind.CallOpts{Context: ctx}, taskIndex)
	if err != nil {
		return [32]byte{}, contractCaller.ClassifyError(fmt.Errorf("failed to get task hash: %w", err))
	}
	return hash, nil
}

func (cc *ContractCaller) LatestTaskNum(ctx context.Context) (uint32, error) {
	num, err := cc.serviceManager.LatestTaskNum(&bind.CallOpts{Context: ctx})
	if err != nil {
		return 0, contractCaller.ClassifyError(fmt.Errorf("failed to get latest task number: %w", err))
	}
	return num, nil
}

func (cc *ContractCaller) IsOperatorRegistered(ctx context.Context, operator common.Address) (bool, error) {
	registered, err := cc.stakeRegistry.OperatorRegistered(&bind.CallOpts{Context: ctx}, operator)
	if err != nil {
		return false, fmt.Errorf("failed to check stake registry registration: %w", err)
	}
	return registered, nil
}

func (cc *ContractCaller) RegisterOperatorWithSignature(
	ctx context.Context,
	credential *types.RegistrationCredential,
	signingKey common.Address,
) (*ethereumTypes.Receipt, error) {
	noSendTxOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction options: %w", err)
	}

	tx, err := cc.stakeRegistry.RegisterOperatorWithSignature(noSendTxOpts, ECDSAStakeRegistry.ISignatureUtilsSignatureWithSaltAndExpiry{
		Signature: credential.Signature,
		Salt:      credential.Salt,
		Expiry:    credential.Expiry,
	}, signingKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create registerOperatorWithSignature transaction: %w", err)
	}

	return cc.signAndSendTransaction(ctx, tx, "RegisterOperatorWithSignature")
}

func (cc *ContractCaller) GetNewTasks(ctx context.Context, fromBlock, toBlock uint64) ([]*types.TaskEvent, error) {
	iter, err := cc.serviceManager.FilterNewTaskCreated(&bind.FilterOpts{
		Start:   fromBlock,
		End:     &toBlock,
		Context: ctx,
	}, nil)
	if err != nil {
		return nil, contractCaller.ClassifyError(fmt.Errorf("failed to filter NewTaskCreated logs: %w", err))
	}
	defer iter.Close()

	events := make([]*types.TaskEvent, 0)
	for iter.Next() {
		events = append(events, taskEventFromBinding(iter.Event))
	}
	if err := iter.Error(); err != nil {
		return nil, contractCaller.ClassifyError(fmt.Errorf("failed to iterate NewTaskCreated logs: %w", err))
	}
	return events, nil
}

func (cc *ContractCaller) WatchNewTasks(ctx context.Context, sink chan<- *types.TaskEvent, startBlock *uint64) (event.Subscription, error) {
	logs := make(chan *ImageVerificationServiceManager.ImageVerificationServiceManagerNewTaskCreated)
	sub, err := cc.serviceManager.WatchNewTaskCreated(&bind.WatchOpts{
		Start:   startBlock,
		Context: ctx,
	}, logs, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to NewTaskCreated: %w", err)
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		defer sub.Unsubscribe()
		for {
			select {
			case log := <-logs:
				select {
				case sink <- taskEventFromBinding(log):
				case err := <-sub.Err():
					return err
				case <-quit:
					return nil
				}
			case err := <-sub.Err():
				return err
			case <-quit:
				return nil
			}
		}
	}), nil
}

func (cc *ContractCaller) IsOperator(ctx context.Context, operator common.Address) (bool, error) {
	exists, err := cc.delegationManager.IsOperator(&bind.CallOpts{Context: ctx}, operator)
	if err != nil {
		return false, fmt.Errorf("failed to check if operator exists: %w", err)
	}
	return exists, nil
}

func (cc *ContractCaller) RegisterAsOperator(ctx context.Context, operator common.Address, metadataUri string) (*ethereumTypes.Receipt, error) {
	noSendTxOpts, err := cc.buildTransactionOpts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction options: %w", err)
	}

	tx, err := cc.delegationManager.RegisterAsOperator(noSendTxOpts, IDelegationManager.IDelegationManagerOperatorDetails{
		DeprecatedEarningsReceiver: operator,
		DelegationApprover:         common.Address{},
		StakerOptOutWindowBlocks:   0,
	}, metadataUri)
	if err != nil {
		return nil, fmt.Errorf("failed to create registerAsOperator transaction: %w", err)
	}

	return cc.signAndSendTransaction(ctx, tx, "RegisterAsOperator")
}

func (cc *ContractCaller) CalculateRegistrationDigestHash(
	ctx context.Context,
	operator common.Address,
	avs common.Address,
	salt [32]byte,
	expiry *big.Int,
) ([32]byte, error) {
	digest, err := cc.avsDirectory.CalculateOperatorAVSRegistrationDigestHash(&bind.CallOpts{Context: ctx}, operator, avs, salt, expiry)
	if err != nil {
		return [32]byte{}, fmt.Errorf("failed to calculate registration digest: %w", err)
	}
	return digest, nil
}

func (cc *ContractCaller) buildTransactionOpts(ctx context.Context) (*bind.TransactOpts, error) {
	return cc.signer.GetTransactOpts(ctx)
}

func (cc *ContractCaller) signAndSendTransaction(ctx context.Context, tx *ethereumTypes.Transaction, tag string) (*ethereumTypes.Receipt, error) {
	cc.logger.Sugar().Debugw("Sending transaction",
		zap.String("tag", tag),
		zap.String("to", tx.To().String()),
	)
	receipt, err := cc.signer.SignAndSendTransaction(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s transaction: %w", tag, err)
	}
	return receipt, nil
}

func taskToBinding(task *types.Task) ImageVerificationServiceManager.IImageVerificationServiceManagerTask {
	return ImageVerificationServiceManager.IImageVerificationServiceManagerTask{
		ImageHash:        task.ImageHash,
		MetadataHash:     task.MetadataHash,
		TaskCreatedBlock: task.TaskCreatedBlock,
		DeviceSignature:  task.DeviceSignature,
	}
}

func taskEventFromBinding(ev *ImageVerificationServiceManager.ImageVerificationServiceManagerNewTaskCreated) *types.TaskEvent {
	return &types.TaskEvent{
		TaskIndex: ev.TaskIndex,
		Task: &types.Task{
			ImageHash:        ev.Task.ImageHash,
			MetadataHash:     ev.Task.MetadataHash,
			TaskCreatedBlock: ev.Task.TaskCreatedBlock,
			DeviceSignature:  ev.Task.DeviceSignature,
		},
		BlockNumber:     ev.Raw.BlockNumber,
		TransactionHash: ev.Raw.TxHash,
	}
}
