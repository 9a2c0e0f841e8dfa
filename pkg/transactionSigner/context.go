package transactionSigner

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// FallbackGasTipCap is used when the backend does not support eth_maxPriorityFeePerGas.
var FallbackGasTipCap = big.NewInt(15000000000)

// EthBackend is the subset of ethclient.Client the signer needs.
type EthBackend interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

// SigningContext provides common functionality for transaction signing
type SigningContext struct {
	ethClient EthBackend
	logger    *zap.Logger
	chainID   *big.Int
}

// NewSigningContext creates a new signing context
func NewSigningContext(ctx context.Context, ethClient EthBackend, logger *zap.Logger) (*SigningContext, error) {
	chainID, err := ethClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}

	return &SigningContext{
		ethClient: ethClient,
		logger:    logger,
		chainID:   chainID,
	}, nil
}

func (sc *SigningContext) ChainID() *big.Int {
	return new(big.Int).Set(sc.chainID)
}

// estimateGas suggests EIP-1559 fee caps and a buffered gas limit for sending tx from the given address.
func (sc *SigningContext) estimateGas(ctx context.Context, from common.Address, tx *types.Transaction) (*GasEstimate, error) {
	gasTipCap, err := sc.ethClient.SuggestGasTipCap(ctx)
	if err != nil {
		sc.logger.Sugar().Debugw("cannot get gasTipCap, using fallback",
			zap.Error(err),
		)
		gasTipCap = FallbackGasTipCap
	}

	header, err := sc.ethClient.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}
	baseFee := header.BaseFee
	if baseFee == nil {
		baseFee = big.NewInt(0)
	}
	// basefee * 3/2
	overestimatedBasefee := new(big.Int).Div(new(big.Int).Mul(baseFee, big.NewInt(3)), big.NewInt(2))
	gasFeeCap := new(big.Int).Add(overestimatedBasefee, gasTipCap)

	// RawTransact's own estimate fails semi-regularly with out of gas, so estimate
	// here and add a buffer.
	gasLimit, err := sc.ethClient.EstimateGas(ctx, ethereum.CallMsg{
		From:      from,
		To:        tx.To(),
		GasTipCap: gasTipCap,
		GasFeeCap: gasFeeCap,
		Value:     tx.Value(),
		Data:      tx.Data(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	return &GasEstimate{
		GasTipCap: gasTipCap,
		GasFeeCap: gasFeeCap,
		GasLimit:  addGasBuffer(gasLimit),
	}, nil
}

// ensureTransactionEvaled waits for transaction to be mined and checks status
func (sc *SigningContext) ensureTransactionEvaled(ctx context.Context, tx *types.Transaction, tag string) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, sc.ethClient, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for transaction (%s) to mine: %w", tag, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		sc.logger.Sugar().Errorw("transaction failed",
			zap.String("tag", tag),
			zap.String("txHash", receipt.TxHash.Hex()),
			zap.Uint64("blockNumber", receipt.BlockNumber.Uint64()),
		)
		return receipt, fmt.Errorf("%w: %s (%s)", ErrTransactionFailed, tag, receipt.TxHash.Hex())
	}
	sc.logger.Sugar().Infow("transaction succeeded",
		zap.String("tag", tag),
		zap.String("txHash", receipt.TxHash.Hex()),
	)
	return receipt, nil
}

// addGasBuffer adds a buffer to the gas limit
func addGasBuffer(gasLimit uint64) uint64 {
	return 6 * gasLimit / 5 // add 20% buffer to gas limit
}
