package keystoreSigner

import (
	"fmt"
	"os"

	"github.com/Layr-Labs/image-verification-operator/pkg/signer/inMemorySigner"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/accounts/keystore"
)

// NewKeystoreSigner decrypts a V3 JSON keystore file into an in-memory signer.
func NewKeystoreSigner(keystorePath string, password string) (*inMemorySigner.InMemorySigner, error) {
	keyJson, err := os.ReadFile(keystorePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read keystore '%s': %v", types.ErrKeyUnavailable, keystorePath, err)
	}
	return NewKeystoreSignerFromJson(keyJson, password)
}

func NewKeystoreSignerFromJson(keyJson []byte, password string) (*inMemorySigner.InMemorySigner, error) {
	key, err := keystore.DecryptKey(keyJson, password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt keystore: %v", types.ErrKeyUnavailable, err)
	}
	return inMemorySigner.NewInMemorySigner(key.PrivateKey), nil
}
