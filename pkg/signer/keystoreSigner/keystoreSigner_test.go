package keystoreSigner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeKeystore(t *testing.T, password string) (string, *keystore.Key) {
	privateKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	key := &keystore.Key{
		Id:         uuid.New(),
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		PrivateKey: privateKey,
	}
	keyJson, err := keystore.EncryptKey(key, password, keystore.LightScryptN, keystore.LightScryptP)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "operator.json")
	require.NoError(t, os.WriteFile(path, keyJson, 0600))
	return path, key
}

func Test_KeystoreSigner(t *testing.T) {
	path, key := writeKeystore(t, "hunter2")

	t.Run("decrypts with the right password", func(t *testing.T) {
		s, err := NewKeystoreSigner(path, "hunter2")
		require.NoError(t, err)
		assert.Equal(t, key.Address, s.Address())
	})
	t.Run("wrong password is key unavailable", func(t *testing.T) {
		_, err := NewKeystoreSigner(path, "wrong")
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrKeyUnavailable))
	})
	t.Run("missing file is key unavailable", func(t *testing.T) {
		_, err := NewKeystoreSigner(filepath.Join(t.TempDir(), "missing.json"), "hunter2")
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrKeyUnavailable))
	})
}
