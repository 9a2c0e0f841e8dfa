package signerUtils

import (
	"fmt"
	"strings"

	cryptoLibsEcdsa "github.com/Layr-Labs/crypto-libs/pkg/ecdsa"
	"github.com/Layr-Labs/image-verification-operator/pkg/config"
	"github.com/Layr-Labs/image-verification-operator/pkg/signer/inMemorySigner"
	"github.com/Layr-Labs/image-verification-operator/pkg/signer/keystoreSigner"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// ParseSignerFromOperatorConfig loads the operator key from either a raw hex
// key or a keystore file and checks it against the configured address.
func ParseSignerFromOperatorConfig(opConfig *config.OperatorConfig, l *zap.Logger) (*inMemorySigner.InMemorySigner, error) {
	if opConfig == nil || opConfig.SigningKey == nil {
		return nil, fmt.Errorf("%w: no signing key configured", types.ErrKeyUnavailable)
	}

	var s *inMemorySigner.InMemorySigner
	var err error
	if opConfig.SigningKey.KeystoreFile != "" {
		l.Sugar().Infow("Loading operator key from keystore", zap.String("keystoreFile", opConfig.SigningKey.KeystoreFile))
		s, err = keystoreSigner.NewKeystoreSigner(opConfig.SigningKey.KeystoreFile, opConfig.SigningKey.Password)
	} else {
		s, err = inMemorySigner.NewInMemorySignerFromHex(opConfig.SigningKey.PrivateKey)
	}
	if err != nil {
		return nil, err
	}

	if err := crossCheckAddress(s); err != nil {
		return nil, err
	}

	if opConfig.Address != "" && common.HexToAddress(opConfig.Address) != s.Address() {
		return nil, fmt.Errorf("%w: signing key address %s does not match configured operator address %s",
			types.ErrConfig, s.Address().String(), opConfig.Address)
	}
	l.Sugar().Infow("Loaded operator signing key", zap.String("operatorAddress", s.Address().String()))
	return s, nil
}

// crossCheckAddress derives the address a second time with crypto-libs so a
// malformed key cannot silently produce a different identity.
func crossCheckAddress(s *inMemorySigner.InMemorySigner) error {
	pk, err := cryptoLibsEcdsa.NewPrivateKeyFromHexString("0x" + s.PrivateKeyHex())
	if err != nil {
		return fmt.Errorf("%w: failed to parse private key: %v", types.ErrKeyUnavailable, err)
	}
	derived, err := pk.DeriveAddress()
	if err != nil {
		return fmt.Errorf("%w: failed to derive address: %v", types.ErrKeyUnavailable, err)
	}
	if !strings.EqualFold(derived.String(), s.Address().String()) {
		return fmt.Errorf("%w: derived address mismatch %s != %s", types.ErrKeyUnavailable, derived.String(), s.Address().String())
	}
	return nil
}
