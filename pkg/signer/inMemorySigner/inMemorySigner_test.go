package inMemorySigner

import (
	"errors"
	"testing"

	"github.com/Layr-Labs/image-verification-operator/pkg/signer"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anvil account #3
const testPrivateKey = "0x7c852118294e51e653712a81e05800f419141751be58f605c371e15141b007a6"
const testAddress = "0x90F79bf6EB2c4f870365E785982E1f101E93b906"

func Test_InMemorySigner(t *testing.T) {
	s, err := NewInMemorySignerFromHex(testPrivateKey)
	require.NoError(t, err)

	t.Run("derives the operator address", func(t *testing.T) {
		assert.Equal(t, common.HexToAddress(testAddress), s.Address())
	})

	t.Run("sign then recover yields the signer address", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			digest := crypto.Keccak256Hash([]byte{byte(i)})
			sig, err := s.SignDigest(digest)
			require.NoError(t, err)
			require.Len(t, sig, signer.SignatureLength)

			v := sig[crypto.RecoveryIDOffset]
			assert.True(t, v == 27 || v == 28, "unexpected v %d", v)

			recovered, err := signer.RecoverDigestSigner(digest, sig)
			require.NoError(t, err)
			assert.Equal(t, s.Address(), recovered)
		}
	})

	t.Run("signatures are deterministic", func(t *testing.T) {
		digest := crypto.Keccak256Hash([]byte("task"))
		first, err := s.SignDigest(digest)
		require.NoError(t, err)
		second, err := s.SignDigest(digest)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("signs the personal message hash, not the raw digest", func(t *testing.T) {
		digest := crypto.Keccak256Hash([]byte("task"))
		sig, err := s.SignDigest(digest)
		require.NoError(t, err)

		raw := make([]byte, len(sig))
		copy(raw, sig)
		raw[crypto.RecoveryIDOffset] -= 27
		pub, err := crypto.SigToPub(digest[:], raw)
		if err == nil {
			assert.NotEqual(t, s.Address(), crypto.PubkeyToAddress(*pub))
		}
	})

	t.Run("a different digest does not recover the signer", func(t *testing.T) {
		sig, err := s.SignDigest(crypto.Keccak256Hash([]byte("a")))
		require.NoError(t, err)
		recovered, err := signer.RecoverDigestSigner(crypto.Keccak256Hash([]byte("b")), sig)
		require.NoError(t, err)
		assert.NotEqual(t, s.Address(), recovered)
	})
}

func Test_NewInMemorySignerFromHex(t *testing.T) {
	t.Run("accepts keys without 0x prefix", func(t *testing.T) {
		s, err := NewInMemorySignerFromHex(testPrivateKey[2:])
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress(testAddress), s.Address())
	})
	t.Run("invalid keys are unavailable", func(t *testing.T) {
		_, err := NewInMemorySignerFromHex("not-a-key")
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrKeyUnavailable))
	})
	t.Run("round trips the private key hex", func(t *testing.T) {
		s, err := NewInMemorySignerFromHex(testPrivateKey)
		require.NoError(t, err)
		assert.Equal(t, testPrivateKey[2:], s.PrivateKeyHex())
	})
}

func Test_RecoverDigestSigner_InvalidLength(t *testing.T) {
	_, err := signer.RecoverDigestSigner([32]byte{}, make([]byte, 64))
	assert.Error(t, err)
}
