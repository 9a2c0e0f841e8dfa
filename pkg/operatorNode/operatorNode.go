package operatorNode

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/chainListener/ethereumChainListener"
	"github.com/Layr-Labs/image-verification-operator/pkg/chainPoller/EVMChainPoller"
	"github.com/Layr-Labs/image-verification-operator/pkg/config"
	"github.com/Layr-Labs/image-verification-operator/pkg/contractCaller"
	"github.com/Layr-Labs/image-verification-operator/pkg/contractCaller/caller"
	"github.com/Layr-Labs/image-verification-operator/pkg/metrics"
	"github.com/Layr-Labs/image-verification-operator/pkg/operator"
	"github.com/Layr-Labs/image-verification-operator/pkg/operatorNode/operatorNodeConfig"
	"github.com/Layr-Labs/image-verification-operator/pkg/responseCoordinator"
	"github.com/Layr-Labs/image-verification-operator/pkg/retry"
	"github.com/Layr-Labs/image-verification-operator/pkg/signer"
	"github.com/Layr-Labs/image-verification-operator/pkg/signer/signerUtils"
	"github.com/Layr-Labs/image-verification-operator/pkg/storage"
	"github.com/Layr-Labs/image-verification-operator/pkg/storage/badger"
	"github.com/Layr-Labs/image-verification-operator/pkg/storage/memory"
	"github.com/Layr-Labs/image-verification-operator/pkg/taskFeed"
	"github.com/Layr-Labs/image-verification-operator/pkg/taskWatcher"
	"github.com/Layr-Labs/image-verification-operator/pkg/transactionSigner"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// ITaskSource is everything a feed needs from the registry.
type ITaskSource interface {
	contractCaller.ILedger
	contractCaller.IRegistry
}

// Components are the externally constructed pieces the node runs on.
type Components struct {
	Caller contractCaller.IContractCaller
	Signer signer.Signer
	Store  storage.ProcessedTaskStore
	// Feed is optional; when nil it is built from the feed config over Caller
	Feed taskFeed.ITaskFeed
}

type OperatorNode struct {
	config  *operatorNodeConfig.OperatorNodeConfig
	logger  *zap.Logger
	metrics *metrics.Metrics

	store         storage.ProcessedTaskStore
	authorization *operator.AuthorizationManager
	coordinator   *responseCoordinator.ResponseCoordinator
	watcher       *taskWatcher.TaskWatcher
	metricsServer *metrics.Server

	closeClient func()
}

func NewOperatorNode(config *operatorNodeConfig.OperatorNodeConfig, logger *zap.Logger) *OperatorNode {
	return &OperatorNode{
		config:  config,
		logger:  logger,
		metrics: metrics.NewMetrics(),
	}
}

// Initialize dials the ledger, loads the operator key and builds every component.
func (n *OperatorNode) Initialize(ctx context.Context) error {
	sugar := n.logger.Sugar()

	addresses, err := n.config.ResolveDeploymentAddresses()
	if err != nil {
		return fmt.Errorf("%w: failed to load deployment addresses: %w", types.ErrConfig, err)
	}

	operatorSigner, err := signerUtils.ParseSignerFromOperatorConfig(n.config.Operator, n.logger)
	if err != nil {
		return fmt.Errorf("failed to load operator signer: %w", err)
	}

	sugar.Infow("Connecting to ledger",
		zap.String("rpcUrl", n.config.Chain.RpcUrl),
		zap.Uint("chainId", uint(n.config.Chain.ChainId)),
	)
	client, err := ethclient.DialContext(ctx, n.config.Chain.RpcUrl)
	if err != nil {
		return fmt.Errorf("%w: failed to connect to %s: %w", types.ErrConfig, n.config.Chain.RpcUrl, err)
	}
	n.closeClient = client.Close

	if err := checkChainId(ctx, client, n.config.Chain.ChainId); err != nil {
		return err
	}

	txSigner, err := transactionSigner.NewPrivateKeySignerFromBackend(ctx, operatorSigner.PrivateKeyHex(), client, n.logger)
	if err != nil {
		return fmt.Errorf("failed to create transaction signer: %w", err)
	}

	cc, err := caller.NewContractCaller(client, txSigner, addresses, n.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize contract caller: %w", err)
	}
	if err := cc.ValidateDeployment(ctx); err != nil {
		return err
	}

	store, err := NewProcessedTaskStore(n.config.Storage, n.logger)
	if err != nil {
		return err
	}

	return n.Wire(&Components{
		Caller: cc,
		Signer: operatorSigner,
		Store:  store,
	})
}

// Wire assembles the registration, response and watch pipeline from components.
func (n *OperatorNode) Wire(c *Components) error {
	if c.Caller == nil || c.Signer == nil || c.Store == nil {
		return fmt.Errorf("%w: caller, signer and store are required", types.ErrConfig)
	}
	cfg := n.config
	n.store = c.Store

	n.authorization = operator.NewAuthorizationManager(c.Caller, c.Caller, c.Signer, &operator.RegistrationConfig{
		MetadataUri:          cfg.Operator.MetadataUri,
		FallbackOnCheckError: *cfg.FallbackOnCheckError,
		RegistrationExpiry:   cfg.RegistrationExpiry(),
	}, n.metrics, n.logger)

	n.coordinator = responseCoordinator.NewResponseCoordinator(c.Caller, c.Caller, c.Signer, c.Store, &responseCoordinator.ResponseCoordinatorConfig{
		Retry:                retryConfigFrom(cfg.Retry),
		SubmissionsPerSecond: cfg.RateLimit.SubmissionsPerSecond,
		Burst:                cfg.RateLimit.Burst,
		VerifyTaskHash:       cfg.VerifyTaskHash,
	}, n.metrics, n.logger)

	feed := c.Feed
	if feed == nil {
		feed = NewTaskFeed(cfg, c.Caller, n.logger)
	}

	resubscribe := taskWatcher.DefaultResubscribeConfig()
	resubscribe.MaxDelay = cfg.Feed.ResubscribeMaxDelay()
	n.watcher = taskWatcher.NewTaskWatcher(feed, n.coordinator, &taskWatcher.TaskWatcherConfig{
		MaxInFlight: cfg.MaxInFlightTasks,
		Resubscribe: resubscribe,
	}, n.metrics, n.logger)

	if cfg.MetricsPort > 0 {
		n.metricsServer = metrics.NewServer(n.metrics, cfg.MetricsPort, n.logger)
	}
	return nil
}

// Run registers the operator and then watches for tasks until ctx is cancelled.
func (n *OperatorNode) Run(ctx context.Context) error {
	if n.watcher == nil {
		return fmt.Errorf("operator node is not initialized")
	}
	if n.metricsServer != nil {
		n.metricsServer.Start(ctx)
	}

	identity, err := n.authorization.EnsureRegistered(ctx)
	if err != nil {
		return fmt.Errorf("failed to register operator: %w", err)
	}
	n.logger.Sugar().Infow("Operator registered, watching for tasks",
		zap.String("operator", identity.Address.String()),
		zap.Bool("delegationOperator", identity.IsDelegationOperator),
		zap.Bool("avsOperator", identity.IsAvsOperator),
	)

	return n.watcher.Run(ctx)
}

// Shutdown drains in-flight tasks for up to the grace period and releases resources.
// Call it after the context passed to Run has been cancelled.
func (n *OperatorNode) Shutdown() {
	sugar := n.logger.Sugar()
	if n.watcher != nil {
		if drained := n.watcher.Wait(n.config.ShutdownGracePeriod()); !drained {
			sugar.Warnw("In-flight tasks were cancelled at shutdown")
		}
	}
	if n.store != nil {
		if err := n.store.Close(); err != nil {
			sugar.Errorw("Failed to close processed task store", zap.Error(err))
		}
	}
	if n.closeClient != nil {
		n.closeClient()
	}
}

func (n *OperatorNode) Metrics() *metrics.Metrics {
	return n.metrics
}

func (n *OperatorNode) RegistrationState() operator.RegistrationState {
	if n.authorization == nil {
		return operator.Unregistered
	}
	return n.authorization.State()
}

// NewTaskFeed picks the subscription or polling feed for the configured endpoint.
func NewTaskFeed(cfg *operatorNodeConfig.OperatorNodeConfig, source ITaskSource, logger *zap.Logger) taskFeed.ITaskFeed {
	if ResolveFeedMode(cfg) == operatorNodeConfig.FeedModeSubscribe {
		logger.Sugar().Infow("Using websocket subscription task feed")
		return ethereumChainListener.NewEthereumChainListener(source, &ethereumChainListener.EthereumChainListenerConfig{
			ChainId:       cfg.Chain.ChainId,
			StartBlock:    cfg.Feed.StartBlock,
			MaxBlockRange: cfg.Feed.MaxBlockRange,
		}, logger)
	}
	logger.Sugar().Infow("Using polling task feed", zap.Duration("pollInterval", cfg.Feed.PollInterval()))
	return EVMChainPoller.NewEVMChainPoller(source, &EVMChainPoller.EVMChainPollerConfig{
		ChainId:            cfg.Chain.ChainId,
		PollingInterval:    cfg.Feed.PollInterval(),
		MaxBlockRange:      cfg.Feed.MaxBlockRange,
		BlockConfirmations: cfg.Feed.BlockConfirmations,
		StartBlock:         cfg.Feed.StartBlock,
	}, logger)
}

func ResolveFeedMode(cfg *operatorNodeConfig.OperatorNodeConfig) operatorNodeConfig.FeedMode {
	switch cfg.Feed.Mode {
	case operatorNodeConfig.FeedModeSubscribe, operatorNodeConfig.FeedModePoll:
		return cfg.Feed.Mode
	}
	if cfg.Chain.IsWebsocket() {
		return operatorNodeConfig.FeedModeSubscribe
	}
	return operatorNodeConfig.FeedModePoll
}

// NewProcessedTaskStore opens the configured processed task backend.
func NewProcessedTaskStore(cfg *operatorNodeConfig.StorageConfig, logger *zap.Logger) (storage.ProcessedTaskStore, error) {
	if cfg == nil || cfg.Type == "" || cfg.Type == "memory" {
		logger.Sugar().Infow("Using in-memory processed task store")
		return memory.NewInMemoryProcessedTaskStore(), nil
	}
	switch cfg.Type {
	case "badger":
		logger.Sugar().Infow("Using BadgerDB processed task store", zap.String("dir", cfg.BadgerConfig.Dir))
		store, err := badger.NewBadgerProcessedTaskStore(cfg.BadgerConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create badger store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: unknown storage type: %s", types.ErrConfig, cfg.Type)
	}
}

type chainIdReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

func checkChainId(ctx context.Context, client chainIdReader, expected config.ChainId) error {
	actual, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read chain id: %w", err)
	}
	if !actual.IsUint64() || actual.Uint64() != uint64(expected) {
		return fmt.Errorf("%w: rpc reports chain id %s, configured %d", types.ErrConfig, actual.String(), expected)
	}
	return nil
}

func retryConfigFrom(rc *operatorNodeConfig.RetryConfig) *retry.RetryConfig {
	if rc == nil {
		return retry.DefaultRetryConfig()
	}
	return &retry.RetryConfig{
		MaxAttempts:       rc.MaxAttempts,
		InitialDelay:      time.Duration(rc.InitialDelayMs) * time.Millisecond,
		MaxDelay:          time.Duration(rc.MaxDelayMs) * time.Millisecond,
		BackoffMultiplier: rc.BackoffMultiplier,
	}
}
