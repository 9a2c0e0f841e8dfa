package operatorNodeConfig

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/config"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"
)

const (
	EnvPrefix = "OPERATOR"

	Debug          = "debug"
	ConfigFile     = "config"
	RpcUrl         = "rpc-url"
	ChainIdFlag    = "chain-id"
	DeploymentsDir = "deployments-dir"
	MetricsPort    = "metrics-port"

	// PrivateKey is read from the environment only (OPERATOR_PRIVATE_KEY)
	PrivateKey = "private-key"
)

const (
	DefaultPollIntervalMs             = 2000
	DefaultMaxBlockRange              = 1000
	DefaultMaxAttempts                = 5
	DefaultInitialDelayMs             = 500
	DefaultMaxDelayMs                 = 30000
	DefaultBackoffMultiplier          = 2.0
	DefaultShutdownGracePeriodSeconds = 30
	DefaultRegistrationExpirySeconds  = 3600
	DefaultResubscribeMaxDelayMs      = 30000
)

// FeedMode selects how new tasks are observed.
type FeedMode string

const (
	// FeedModeAuto subscribes over websocket endpoints and polls otherwise
	FeedModeAuto      FeedMode = "auto"
	FeedModeSubscribe FeedMode = "subscribe"
	FeedModePoll      FeedMode = "poll"
)

type Chain struct {
	RpcUrl  string         `json:"rpcUrl" yaml:"rpcUrl"`
	ChainId config.ChainId `json:"chainId" yaml:"chainId"`
}

func (c *Chain) Validate() error {
	var allErrors field.ErrorList
	if c.RpcUrl == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("rpcUrl"), "rpcUrl is required"))
	}
	if c.ChainId == 0 {
		allErrors = append(allErrors, field.Required(field.NewPath("chainId"), "chainId is required"))
	} else if !config.IsSupportedChainId(c.ChainId) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("chainId"), c.ChainId, "unsupported chainId"))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// IsWebsocket reports whether the endpoint supports log subscriptions.
func (c *Chain) IsWebsocket() bool {
	url := strings.ToLower(c.RpcUrl)
	return strings.HasPrefix(url, "ws://") || strings.HasPrefix(url, "wss://")
}

type FeedConfig struct {
	Mode FeedMode `json:"mode" yaml:"mode"`
	// PollIntervalMs is how often the polling feed asks for new blocks
	PollIntervalMs int `json:"pollIntervalMs,omitempty" yaml:"pollIntervalMs,omitempty"`
	// MaxBlockRange caps the span of a single log query
	MaxBlockRange uint64 `json:"maxBlockRange,omitempty" yaml:"maxBlockRange,omitempty"`
	// BlockConfirmations holds the polling cursor this many blocks behind head
	BlockConfirmations uint64 `json:"blockConfirmations,omitempty" yaml:"blockConfirmations,omitempty"`
	// StartBlock replays tasks from this block on first subscribe
	StartBlock *uint64 `json:"startBlock,omitempty" yaml:"startBlock,omitempty"`
	// ResubscribeMaxDelayMs bounds the backoff between resubscription attempts
	ResubscribeMaxDelayMs int `json:"resubscribeMaxDelayMs,omitempty" yaml:"resubscribeMaxDelayMs,omitempty"`
}

func (fc *FeedConfig) Validate() error {
	var allErrors field.ErrorList
	if fc.Mode == "" {
		fc.Mode = FeedModeAuto
	} else if !slices.Contains([]FeedMode{FeedModeAuto, FeedModeSubscribe, FeedModePoll}, fc.Mode) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("mode"), fc.Mode, "mode must be one of [auto, subscribe, poll]"))
	}
	if fc.PollIntervalMs < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("pollIntervalMs"), fc.PollIntervalMs, "pollIntervalMs must not be negative"))
	} else if fc.PollIntervalMs == 0 {
		fc.PollIntervalMs = DefaultPollIntervalMs
	}
	if fc.MaxBlockRange == 0 {
		fc.MaxBlockRange = DefaultMaxBlockRange
	}
	if fc.ResubscribeMaxDelayMs <= 0 {
		fc.ResubscribeMaxDelayMs = DefaultResubscribeMaxDelayMs
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

func (fc *FeedConfig) PollInterval() time.Duration {
	return time.Duration(fc.PollIntervalMs) * time.Millisecond
}

func (fc *FeedConfig) ResubscribeMaxDelay() time.Duration {
	return time.Duration(fc.ResubscribeMaxDelayMs) * time.Millisecond
}

// RetryConfig bounds resubmission of a single task response.
type RetryConfig struct {
	// MaxAttempts is the total number of submissions, including the first
	MaxAttempts       int     `json:"maxAttempts" yaml:"maxAttempts"`
	InitialDelayMs    int     `json:"initialDelayMs" yaml:"initialDelayMs"`
	MaxDelayMs        int     `json:"maxDelayMs" yaml:"maxDelayMs"`
	BackoffMultiplier float64 `json:"backoffMultiplier" yaml:"backoffMultiplier"`
}

func (rc *RetryConfig) Validate() error {
	var allErrors field.ErrorList
	if rc.MaxAttempts < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("maxAttempts"), rc.MaxAttempts, "maxAttempts must not be negative"))
	} else if rc.MaxAttempts == 0 {
		rc.MaxAttempts = DefaultMaxAttempts
	}
	if rc.InitialDelayMs <= 0 {
		rc.InitialDelayMs = DefaultInitialDelayMs
	}
	if rc.MaxDelayMs <= 0 {
		rc.MaxDelayMs = DefaultMaxDelayMs
	}
	if rc.MaxDelayMs < rc.InitialDelayMs {
		allErrors = append(allErrors, field.Invalid(field.NewPath("maxDelayMs"), rc.MaxDelayMs, "maxDelayMs must be at least initialDelayMs"))
	}
	if rc.BackoffMultiplier == 0 {
		rc.BackoffMultiplier = DefaultBackoffMultiplier
	} else if rc.BackoffMultiplier < 1 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("backoffMultiplier"), rc.BackoffMultiplier, "backoffMultiplier must be >= 1"))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// RateLimitConfig paces respondToTask submissions. Zero disables pacing.
type RateLimitConfig struct {
	SubmissionsPerSecond float64 `json:"submissionsPerSecond,omitempty" yaml:"submissionsPerSecond,omitempty"`
	Burst                int     `json:"burst,omitempty" yaml:"burst,omitempty"`
}

func (rl *RateLimitConfig) Validate() error {
	var allErrors field.ErrorList
	if rl.SubmissionsPerSecond < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("submissionsPerSecond"), rl.SubmissionsPerSecond, "submissionsPerSecond must not be negative"))
	}
	if rl.SubmissionsPerSecond > 0 && rl.Burst <= 0 {
		rl.Burst = 1
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// StorageConfig contains configuration for the processed task store
type StorageConfig struct {
	Type         string        `json:"type" yaml:"type"` // "memory" or "badger"
	BadgerConfig *BadgerConfig `json:"badger,omitempty" yaml:"badger,omitempty"`
}

// BadgerConfig contains configuration for BadgerDB storage
type BadgerConfig struct {
	// Directory where BadgerDB will store its data
	Dir string `json:"dir" yaml:"dir"`
	// InMemory runs BadgerDB in memory-only mode (for testing)
	InMemory bool `json:"inMemory,omitempty" yaml:"inMemory,omitempty"`
	// ValueLogFileSize sets the maximum size of a single value log file
	ValueLogFileSize int64 `json:"valueLogFileSize,omitempty" yaml:"valueLogFileSize,omitempty"`
	// NumVersionsToKeep sets how many versions to keep for each key
	NumVersionsToKeep int `json:"numVersionsToKeep,omitempty" yaml:"numVersionsToKeep,omitempty"`
}

func (sc *StorageConfig) Validate() error {
	var allErrors field.ErrorList

	if sc.Type == "" {
		sc.Type = "memory"
	}

	if sc.Type != "memory" && sc.Type != "badger" {
		allErrors = append(allErrors, field.Invalid(field.NewPath("type"), sc.Type, "type must be 'memory' or 'badger'"))
	}

	if sc.Type == "badger" {
		if sc.BadgerConfig == nil {
			allErrors = append(allErrors, field.Required(field.NewPath("badger"), "badger configuration is required when type is 'badger'"))
		} else if sc.BadgerConfig.Dir == "" && !sc.BadgerConfig.InMemory {
			allErrors = append(allErrors, field.Required(field.NewPath("badger.dir"), "badger directory is required"))
		}
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// ContractAddresses overrides the deployment bundle when set.
type ContractAddresses struct {
	DelegationManager               string `json:"delegationManager" yaml:"delegationManager"`
	AvsDirectory                    string `json:"avsDirectory" yaml:"avsDirectory"`
	ImageVerificationServiceManager string `json:"imageVerificationServiceManager" yaml:"imageVerificationServiceManager"`
	StakeRegistry                   string `json:"stakeRegistry" yaml:"stakeRegistry"`
}

func (ca *ContractAddresses) Validate() error {
	var allErrors field.ErrorList
	check := func(name, value string) {
		if value == "" {
			allErrors = append(allErrors, field.Required(field.NewPath(name), name+" is required"))
		} else if !common.IsHexAddress(value) {
			allErrors = append(allErrors, field.Invalid(field.NewPath(name), value, "must be a hex address"))
		}
	}
	check("delegationManager", ca.DelegationManager)
	check("avsDirectory", ca.AvsDirectory)
	check("imageVerificationServiceManager", ca.ImageVerificationServiceManager)
	check("stakeRegistry", ca.StakeRegistry)
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

func (ca *ContractAddresses) ToDeploymentAddresses() *config.DeploymentAddresses {
	return &config.DeploymentAddresses{
		DelegationManager:               common.HexToAddress(ca.DelegationManager),
		AvsDirectory:                    common.HexToAddress(ca.AvsDirectory),
		ImageVerificationServiceManager: common.HexToAddress(ca.ImageVerificationServiceManager),
		StakeRegistry:                   common.HexToAddress(ca.StakeRegistry),
	}
}

type OperatorNodeConfig struct {
	Debug       bool
	MetricsPort int                    `json:"metricsPort,omitempty" yaml:"metricsPort,omitempty"`
	Operator    *config.OperatorConfig `json:"operator" yaml:"operator"`
	Chain       *Chain                 `json:"chain" yaml:"chain"`

	// DeploymentsDir holds core/<chainId>.json and image-verification/<chainId>.json
	DeploymentsDir string             `json:"deploymentsDir,omitempty" yaml:"deploymentsDir,omitempty"`
	Contracts      *ContractAddresses `json:"contracts,omitempty" yaml:"contracts,omitempty"`

	Feed      *FeedConfig      `json:"feed,omitempty" yaml:"feed,omitempty"`
	Retry     *RetryConfig     `json:"retry,omitempty" yaml:"retry,omitempty"`
	RateLimit *RateLimitConfig `json:"rateLimit,omitempty" yaml:"rateLimit,omitempty"`
	Storage   *StorageConfig   `json:"storage,omitempty" yaml:"storage,omitempty"`

	// MaxInFlightTasks caps concurrently handled tasks, 0 means unbounded
	MaxInFlightTasks           int `json:"maxInFlightTasks,omitempty" yaml:"maxInFlightTasks,omitempty"`
	ShutdownGracePeriodSeconds int `json:"shutdownGracePeriodSeconds,omitempty" yaml:"shutdownGracePeriodSeconds,omitempty"`
	RegistrationExpirySeconds  int `json:"registrationExpirySeconds,omitempty" yaml:"registrationExpirySeconds,omitempty"`

	// FallbackOnCheckError treats a failed registration check as "not registered"
	FallbackOnCheckError *bool `json:"fallbackOnCheckError,omitempty" yaml:"fallbackOnCheckError,omitempty"`
	// VerifyTaskHash compares delivered tasks against allTaskHashes before signing
	VerifyTaskHash bool `json:"verifyTaskHash,omitempty" yaml:"verifyTaskHash,omitempty"`
}

func (oc *OperatorNodeConfig) Validate() error {
	var allErrors field.ErrorList
	if oc.Operator == nil {
		allErrors = append(allErrors, field.Required(field.NewPath("operator"), "operator is required"))
	} else if err := oc.Operator.Validate(); err != nil {
		allErrors = append(allErrors, field.Invalid(field.NewPath("operator"), oc.Operator, err.Error()))
	}

	if oc.Chain == nil {
		allErrors = append(allErrors, field.Required(field.NewPath("chain"), "chain is required"))
	} else if err := oc.Chain.Validate(); err != nil {
		allErrors = append(allErrors, field.Invalid(field.NewPath("chain"), oc.Chain, err.Error()))
	}

	if oc.Contracts != nil {
		if err := oc.Contracts.Validate(); err != nil {
			allErrors = append(allErrors, field.Invalid(field.NewPath("contracts"), oc.Contracts, err.Error()))
		}
	} else if oc.DeploymentsDir == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("deploymentsDir"), "deploymentsDir or contracts is required"))
	}

	if oc.Feed == nil {
		oc.Feed = &FeedConfig{}
	}
	if err := oc.Feed.Validate(); err != nil {
		allErrors = append(allErrors, field.Invalid(field.NewPath("feed"), oc.Feed, err.Error()))
	}
	if oc.Feed.Mode == FeedModeSubscribe && oc.Chain != nil && !oc.Chain.IsWebsocket() {
		allErrors = append(allErrors, field.Invalid(field.NewPath("feed.mode"), oc.Feed.Mode, "subscribe mode requires a ws:// or wss:// rpcUrl"))
	}

	if oc.Retry == nil {
		oc.Retry = &RetryConfig{}
	}
	if err := oc.Retry.Validate(); err != nil {
		allErrors = append(allErrors, field.Invalid(field.NewPath("retry"), oc.Retry, err.Error()))
	}

	if oc.RateLimit == nil {
		oc.RateLimit = &RateLimitConfig{}
	}
	if err := oc.RateLimit.Validate(); err != nil {
		allErrors = append(allErrors, field.Invalid(field.NewPath("rateLimit"), oc.RateLimit, err.Error()))
	}

	if oc.Storage == nil {
		oc.Storage = &StorageConfig{}
	}
	if err := oc.Storage.Validate(); err != nil {
		allErrors = append(allErrors, field.Invalid(field.NewPath("storage"), oc.Storage, err.Error()))
	}

	if oc.MaxInFlightTasks < 0 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("maxInFlightTasks"), oc.MaxInFlightTasks, "maxInFlightTasks must not be negative"))
	}
	if oc.MetricsPort < 0 || oc.MetricsPort > 65535 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("metricsPort"), oc.MetricsPort, "metricsPort must be a valid port"))
	}
	if oc.ShutdownGracePeriodSeconds <= 0 {
		oc.ShutdownGracePeriodSeconds = DefaultShutdownGracePeriodSeconds
	}
	if oc.RegistrationExpirySeconds <= 0 {
		oc.RegistrationExpirySeconds = DefaultRegistrationExpirySeconds
	}
	if oc.FallbackOnCheckError == nil {
		fallback := true
		oc.FallbackOnCheckError = &fallback
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// ResolveDeploymentAddresses returns the contracts override or the bundle for the configured chain.
func (oc *OperatorNodeConfig) ResolveDeploymentAddresses() (*config.DeploymentAddresses, error) {
	if oc.Contracts != nil {
		return oc.Contracts.ToDeploymentAddresses(), nil
	}
	return config.LoadDeploymentAddresses(oc.DeploymentsDir, oc.Chain.ChainId)
}

func (oc *OperatorNodeConfig) ShutdownGracePeriod() time.Duration {
	return time.Duration(oc.ShutdownGracePeriodSeconds) * time.Second
}

func (oc *OperatorNodeConfig) RegistrationExpiry() time.Duration {
	return time.Duration(oc.RegistrationExpirySeconds) * time.Second
}

// NewOperatorNodeConfig reads the flag-backed fields from viper.
func NewOperatorNodeConfig() *OperatorNodeConfig {
	return &OperatorNodeConfig{
		Debug:          viper.GetBool(config.NormalizeFlagName(Debug)),
		MetricsPort:    viper.GetInt(config.NormalizeFlagName(MetricsPort)),
		DeploymentsDir: viper.GetString(config.NormalizeFlagName(DeploymentsDir)),
	}
}

// ApplyFlagOverrides lets explicitly set flags and env vars win over the config file.
func (oc *OperatorNodeConfig) ApplyFlagOverrides() {
	if viper.IsSet(config.NormalizeFlagName(Debug)) {
		oc.Debug = viper.GetBool(config.NormalizeFlagName(Debug))
	}
	if viper.IsSet(config.NormalizeFlagName(MetricsPort)) {
		oc.MetricsPort = viper.GetInt(config.NormalizeFlagName(MetricsPort))
	}
	if dir := viper.GetString(config.NormalizeFlagName(DeploymentsDir)); dir != "" {
		oc.DeploymentsDir = dir
	}
	if key := viper.GetString(config.NormalizeFlagName(PrivateKey)); key != "" {
		if oc.Operator == nil {
			oc.Operator = &config.OperatorConfig{}
		}
		oc.Operator.SigningKey = &config.ECDSAKeyConfig{PrivateKey: key}
	}
	rpcUrl := viper.GetString(config.NormalizeFlagName(RpcUrl))
	chainId := viper.GetUint(config.NormalizeFlagName(ChainIdFlag))
	if rpcUrl != "" || chainId != 0 {
		if oc.Chain == nil {
			oc.Chain = &Chain{}
		}
		if rpcUrl != "" {
			oc.Chain.RpcUrl = rpcUrl
		}
		if chainId != 0 {
			oc.Chain.ChainId = config.ChainId(chainId)
		}
	}
}

func NewOperatorNodeConfigFromYamlBytes(data []byte) (*OperatorNodeConfig, error) {
	var oc *OperatorNodeConfig
	if err := yaml.Unmarshal(data, &oc); err != nil {
		return nil, err
	}
	return oc, nil
}

func NewOperatorNodeConfigFromJsonBytes(data []byte) (*OperatorNodeConfig, error) {
	var oc *OperatorNodeConfig
	if err := json.Unmarshal(data, &oc); err != nil {
		return nil, err
	}
	return oc, nil
}
