package transactionSigner

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// PrivateKeySigner implements ITransactionSigner using a private key
type PrivateKeySigner struct {
	*SigningContext
	privateKey  *ecdsa.PrivateKey
	fromAddress common.Address

	// sendLock serializes nonce assignment so concurrent submissions don't collide
	sendLock sync.Mutex
}

// NewPrivateKeySigner creates a new private key signer
func NewPrivateKeySigner(privateKeyHex string, signingContext *SigningContext) (*PrivateKeySigner, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &PrivateKeySigner{
		SigningContext: signingContext,
		privateKey:     privateKey,
		fromAddress:    crypto.PubkeyToAddress(privateKey.PublicKey),
	}, nil
}

// NewPrivateKeySignerFromBackend builds the signing context for the backend and the signer in one step.
func NewPrivateKeySignerFromBackend(ctx context.Context, privateKeyHex string, ethClient EthBackend, logger *zap.Logger) (*PrivateKeySigner, error) {
	signingContext, err := NewSigningContext(ctx, ethClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create signing context: %w", err)
	}
	return NewPrivateKeySigner(privateKeyHex, signingContext)
}

// GetTransactOpts returns transaction options for creating unsigned transactions
func (pks *PrivateKeySigner) GetTransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(pks.privateKey, pks.SigningContext.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.NoSend = true
	opts.Context = ctx
	return opts, nil
}

// SignAndSendTransaction re-signs the unsent transaction with fresh gas values and
// the current pending nonce, sends it and waits for a successful receipt.
func (pks *PrivateKeySigner) SignAndSendTransaction(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if tx.To() == nil {
		return nil, fmt.Errorf("contract creation transactions are not supported")
	}
	sent, err := pks.send(ctx, tx, "SignAndSendTransaction")
	if err != nil {
		return nil, err
	}
	return pks.ensureTransactionEvaled(ctx, sent, "SignAndSendTransaction")
}

func (pks *PrivateKeySigner) send(ctx context.Context, tx *types.Transaction, tag string) (*types.Transaction, error) {
	estimate, err := pks.estimateGas(ctx, pks.fromAddress, tx)
	if err != nil {
		return nil, err
	}

	pks.sendLock.Lock()
	defer pks.sendLock.Unlock()

	nonce, err := pks.ethClient.PendingNonceAt(ctx, pks.fromAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending nonce: %w", err)
	}

	opts, err := bind.NewKeyedTransactorWithChainID(pks.privateKey, pks.SigningContext.chainID)
	if err != nil {
		return nil, fmt.Errorf("cannot create transactOpts: %w", err)
	}
	opts.Context = ctx
	opts.Nonce = new(big.Int).SetUint64(nonce)
	opts.Value = tx.Value()
	opts.GasTipCap = estimate.GasTipCap
	opts.GasFeeCap = estimate.GasFeeCap
	opts.GasLimit = estimate.GasLimit

	contract := bind.NewBoundContract(*tx.To(), abi.ABI{}, pks.ethClient, pks.ethClient, pks.ethClient)

	pks.logger.Sugar().Infow("sending transaction",
		zap.String("tag", tag),
		zap.Uint64("nonce", nonce),
		zap.String("gasTipCap", estimate.GasTipCap.String()),
		zap.String("gasFeeCap", estimate.GasFeeCap.String()),
		zap.Uint64("gasLimit", estimate.GasLimit),
	)

	sent, err := contract.RawTransact(opts, tx.Data())
	if err != nil {
		return nil, fmt.Errorf("failed to send txn (%s): %w", tag, err)
	}
	pks.logger.Sugar().Infow("sent transaction",
		zap.String("tag", tag),
		zap.String("txHash", sent.Hash().Hex()),
	)
	return sent, nil
}

// GetFromAddress returns the address that will be used for signing
func (pks *PrivateKeySigner) GetFromAddress() common.Address {
	return pks.fromAddress
}

// EstimateGasPriceAndLimit estimates gas price and limit for a transaction
func (pks *PrivateKeySigner) EstimateGasPriceAndLimit(ctx context.Context, tx *types.Transaction) (*GasEstimate, error) {
	return pks.estimateGas(ctx, pks.fromAddress, tx)
}
