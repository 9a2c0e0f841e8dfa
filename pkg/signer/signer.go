package signer

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	SignatureLength = crypto.SignatureLength

	// recoveryIdOffset is added to the recovery id so signatures use the 27/28 convention
	recoveryIdOffset = 27
)

// Signer produces EIP-191 personal-message signatures over 32 byte digests.
type Signer interface {
	SignDigest(digest [32]byte) ([]byte, error)
	Address() common.Address
}

// PersonalMessageHash returns keccak256("\x19Ethereum Signed Message:\n32" || digest).
func PersonalMessageHash(digest [32]byte) []byte {
	return accounts.TextHash(digest[:])
}

// RecoverDigestSigner returns the address that produced sig over digest.
func RecoverDigestSigner(digest [32]byte, sig []byte) (common.Address, error) {
	if len(sig) != SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length: expected %d, got %d", SignatureLength, len(sig))
	}
	normalized := make([]byte, SignatureLength)
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= recoveryIdOffset {
		normalized[crypto.RecoveryIDOffset] -= recoveryIdOffset
	}

	pubKey, err := crypto.SigToPub(PersonalMessageHash(digest), normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to recover public key: %w", err)
	}
	return crypto.PubkeyToAddress(*pubKey), nil
}

// ToRecoverableSignature shifts the recovery id of a raw secp256k1 signature to 27/28.
func ToRecoverableSignature(raw []byte) []byte {
	out := make([]byte, len(raw))
	copy(out, raw)
	out[crypto.RecoveryIDOffset] += recoveryIdOffset
	return out
}
