package signerUtils

import (
	"errors"
	"testing"

	"github.com/Layr-Labs/image-verification-operator/pkg/config"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const (
	testPrivateKey = "0x5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a"
	testAddress    = "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC"
)

func Test_ParseSignerFromOperatorConfig(t *testing.T) {
	l := zaptest.NewLogger(t)

	t.Run("loads a hex key", func(t *testing.T) {
		s, err := ParseSignerFromOperatorConfig(&config.OperatorConfig{
			SigningKey: &config.ECDSAKeyConfig{PrivateKey: testPrivateKey},
		}, l)
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress(testAddress), s.Address())
	})
	t.Run("accepts a matching configured address", func(t *testing.T) {
		_, err := ParseSignerFromOperatorConfig(&config.OperatorConfig{
			Address:    testAddress,
			SigningKey: &config.ECDSAKeyConfig{PrivateKey: testPrivateKey},
		}, l)
		require.NoError(t, err)
	})
	t.Run("rejects a mismatched configured address", func(t *testing.T) {
		_, err := ParseSignerFromOperatorConfig(&config.OperatorConfig{
			Address:    "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
			SigningKey: &config.ECDSAKeyConfig{PrivateKey: testPrivateKey},
		}, l)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrConfig))
	})
	t.Run("missing key is unavailable", func(t *testing.T) {
		_, err := ParseSignerFromOperatorConfig(&config.OperatorConfig{}, l)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrKeyUnavailable))
	})
}
