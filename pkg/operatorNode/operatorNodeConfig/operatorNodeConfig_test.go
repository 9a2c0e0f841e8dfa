package operatorNodeConfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Layr-Labs/image-verification-operator/pkg/config"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OperatorNodeConfig(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		t.Run("Should parse a valid yaml config", func(t *testing.T) {
			oc, err := NewOperatorNodeConfigFromYamlBytes([]byte(yamlValid))
			require.NoError(t, err)
			require.NotNil(t, oc)

			assert.Equal(t, "0x90F79bf6EB2c4f870365E785982E1f101E93b906", oc.Operator.Address)
			assert.Equal(t, "https://example.com/operator.json", oc.Operator.MetadataUri)
			assert.Equal(t, "/keys/operator.json", oc.Operator.SigningKey.KeystoreFile)
			assert.Equal(t, "wss://holesky.example.com", oc.Chain.RpcUrl)
			assert.Equal(t, config.ChainId_EthereumHolesky, oc.Chain.ChainId)
			assert.Equal(t, FeedModeSubscribe, oc.Feed.Mode)
			assert.Equal(t, 3, oc.Retry.MaxAttempts)
			assert.Equal(t, "badger", oc.Storage.Type)
			assert.Equal(t, "/data/processed", oc.Storage.BadgerConfig.Dir)
			require.NotNil(t, oc.FallbackOnCheckError)
			assert.False(t, *oc.FallbackOnCheckError)

			require.NoError(t, oc.Validate())
		})
		t.Run("Should fail to parse an invalid yaml config", func(t *testing.T) {
			_, err := NewOperatorNodeConfigFromYamlBytes([]byte(yamlInvalid))
			assert.Error(t, err)
		})
	})
	t.Run("JSON", func(t *testing.T) {
		t.Run("Should parse a valid json config", func(t *testing.T) {
			oc, err := NewOperatorNodeConfigFromJsonBytes([]byte(jsonValid))
			require.NoError(t, err)
			assert.Equal(t, "http://localhost:8545", oc.Chain.RpcUrl)
			assert.Equal(t, config.ChainId_EthereumAnvil, oc.Chain.ChainId)
			require.NotNil(t, oc.Contracts)

			require.NoError(t, oc.Validate())
			addresses, err := oc.ResolveDeploymentAddresses()
			require.NoError(t, err)
			assert.Equal(t, common.HexToAddress("0x4000000000000000000000000000000000000004"), addresses.StakeRegistry)
		})
	})
}

func Test_OperatorNodeConfigDefaults(t *testing.T) {
	oc, err := NewOperatorNodeConfigFromJsonBytes([]byte(jsonValid))
	require.NoError(t, err)
	require.NoError(t, oc.Validate())

	assert.Equal(t, FeedModeAuto, oc.Feed.Mode)
	assert.Equal(t, DefaultPollIntervalMs, oc.Feed.PollIntervalMs)
	assert.Equal(t, uint64(DefaultMaxBlockRange), oc.Feed.MaxBlockRange)
	assert.Equal(t, DefaultMaxAttempts, oc.Retry.MaxAttempts)
	assert.Equal(t, DefaultBackoffMultiplier, oc.Retry.BackoffMultiplier)
	assert.Equal(t, "memory", oc.Storage.Type)
	assert.Equal(t, DefaultShutdownGracePeriodSeconds, oc.ShutdownGracePeriodSeconds)
	require.NotNil(t, oc.FallbackOnCheckError)
	assert.True(t, *oc.FallbackOnCheckError)
}

func Test_OperatorNodeConfigValidation(t *testing.T) {
	base := func() *OperatorNodeConfig {
		oc, err := NewOperatorNodeConfigFromJsonBytes([]byte(jsonValid))
		require.NoError(t, err)
		return oc
	}

	tests := []struct {
		name   string
		mutate func(oc *OperatorNodeConfig)
	}{
		{"missing operator", func(oc *OperatorNodeConfig) { oc.Operator = nil }},
		{"missing signing key", func(oc *OperatorNodeConfig) { oc.Operator.SigningKey = nil }},
		{"missing chain", func(oc *OperatorNodeConfig) { oc.Chain = nil }},
		{"unsupported chain", func(oc *OperatorNodeConfig) { oc.Chain.ChainId = 42 }},
		{"missing contracts and deployments", func(oc *OperatorNodeConfig) { oc.Contracts = nil }},
		{"bad contract address", func(oc *OperatorNodeConfig) { oc.Contracts.StakeRegistry = "nope" }},
		{"unknown feed mode", func(oc *OperatorNodeConfig) { oc.Feed = &FeedConfig{Mode: "carrier-pigeon"} }},
		{"subscribe over http", func(oc *OperatorNodeConfig) { oc.Feed = &FeedConfig{Mode: FeedModeSubscribe} }},
		{"unknown storage", func(oc *OperatorNodeConfig) { oc.Storage = &StorageConfig{Type: "postgres"} }},
		{"badger without dir", func(oc *OperatorNodeConfig) { oc.Storage = &StorageConfig{Type: "badger", BadgerConfig: &BadgerConfig{}} }},
		{"shrinking backoff", func(oc *OperatorNodeConfig) { oc.Retry = &RetryConfig{BackoffMultiplier: 0.5} }},
		{"negative in flight", func(oc *OperatorNodeConfig) { oc.MaxInFlightTasks = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oc := base()
			tt.mutate(oc)
			assert.Error(t, oc.Validate())
		})
	}
}

func Test_ResolveDeploymentAddressesFromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "core"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "image-verification"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core", "31337.json"), []byte(`{
		"addresses": {
			"delegation": "0x1000000000000000000000000000000000000001",
			"avsDirectory": "0x2000000000000000000000000000000000000002"
		}
	}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "image-verification", "31337.json"), []byte(`{
		"addresses": {
			"imageVerificationServiceManager": "0x3000000000000000000000000000000000000003",
			"stakeRegistry": "0x4000000000000000000000000000000000000004"
		}
	}`), 0o644))

	oc := &OperatorNodeConfig{
		DeploymentsDir: dir,
		Chain:          &Chain{RpcUrl: "http://localhost:8545", ChainId: config.ChainId_EthereumAnvil},
	}
	addresses, err := oc.ResolveDeploymentAddresses()
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x1000000000000000000000000000000000000001"), addresses.DelegationManager)
	assert.Equal(t, common.HexToAddress("0x3000000000000000000000000000000000000003"), addresses.ImageVerificationServiceManager)

	oc.Chain.ChainId = config.ChainId_EthereumSepolia
	_, err = oc.ResolveDeploymentAddresses()
	assert.Error(t, err)
}

func Test_ChainIsWebsocket(t *testing.T) {
	assert.True(t, (&Chain{RpcUrl: "ws://localhost:8546"}).IsWebsocket())
	assert.True(t, (&Chain{RpcUrl: "WSS://node.example.com"}).IsWebsocket())
	assert.False(t, (&Chain{RpcUrl: "https://node.example.com"}).IsWebsocket())
}

const yamlValid = `
operator:
  address: "0x90F79bf6EB2c4f870365E785982E1f101E93b906"
  metadataUri: "https://example.com/operator.json"
  signingKey:
    keystoreFile: "/keys/operator.json"
    password: "hunter2"
chain:
  rpcUrl: "wss://holesky.example.com"
  chainId: 17000
deploymentsDir: "/deployments"
feed:
  mode: subscribe
retry:
  maxAttempts: 3
  initialDelayMs: 100
  maxDelayMs: 1000
  backoffMultiplier: 2
storage:
  type: badger
  badger:
    dir: /data/processed
fallbackOnCheckError: false
`

const yamlInvalid = `
operator:
  address: "0x90F79bf6EB2c4f870365E785982E1f101E93b906"
  signingKey: [ this is not a map
chain:
  rpcUrl:
`

const jsonValid = `{
	"operator": {
		"address": "0x90F79bf6EB2c4f870365E785982E1f101E93b906",
		"signingKey": {
			"privateKey": "0x7c852118294e51e653712a81e05800f419141751be58f605c371e15141b007a6"
		}
	},
	"chain": {
		"rpcUrl": "http://localhost:8545",
		"chainId": 31337
	},
	"contracts": {
		"delegationManager": "0x1000000000000000000000000000000000000001",
		"avsDirectory": "0x2000000000000000000000000000000000000002",
		"imageVerificationServiceManager": "0x3000000000000000000000000000000000000003",
		"stakeRegistry": "0x4000000000000000000000000000000000000004"
	}
}`

func Test_ApplyFlagOverrides(t *testing.T) {
	t.Setenv("OPERATOR_RPC_URL", "wss://override.example.com")
	t.Setenv("OPERATOR_PRIVATE_KEY", "0x5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a")
	viper.Reset()
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()
	defer viper.Reset()

	oc, err := NewOperatorNodeConfigFromYamlBytes([]byte(yamlValid))
	require.NoError(t, err)
	oc.ApplyFlagOverrides()

	assert.Equal(t, "wss://override.example.com", oc.Chain.RpcUrl)
	assert.Equal(t, config.ChainId_EthereumHolesky, oc.Chain.ChainId)
	assert.Equal(t, "0x5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a", oc.Operator.SigningKey.PrivateKey)
	assert.Empty(t, oc.Operator.SigningKey.KeystoreFile)
	assert.Equal(t, "/deployments", oc.DeploymentsDir)
}
