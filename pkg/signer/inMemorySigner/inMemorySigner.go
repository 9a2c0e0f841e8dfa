package inMemorySigner

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/Layr-Labs/image-verification-operator/pkg/signer"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type InMemorySigner struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

func NewInMemorySigner(privateKey *ecdsa.PrivateKey) *InMemorySigner {
	return &InMemorySigner{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
	}
}

func NewInMemorySignerFromHex(privateKeyHex string) (*InMemorySigner, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse private key: %v", types.ErrKeyUnavailable, err)
	}
	return NewInMemorySigner(privateKey), nil
}

func (ims *InMemorySigner) SignDigest(digest [32]byte) ([]byte, error) {
	if ims.privateKey == nil {
		return nil, types.ErrKeyUnavailable
	}
	sig, err := crypto.Sign(signer.PersonalMessageHash(digest), ims.privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign digest: %w", err)
	}
	return signer.ToRecoverableSignature(sig), nil
}

func (ims *InMemorySigner) Address() common.Address {
	return ims.address
}

// PrivateKeyHex exposes the key for the transaction signer, which signs with the same identity.
func (ims *InMemorySigner) PrivateKeyHex() string {
	return common.Bytes2Hex(crypto.FromECDSA(ims.privateKey))
}
