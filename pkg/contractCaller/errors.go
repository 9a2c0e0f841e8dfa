package contractCaller

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/Layr-Labs/image-verification-operator/pkg/transactionSigner"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/core/txpool"
	"github.com/ethereum/go-ethereum/rpc"
)

// messages the registry contracts and nodes use for failures that will never succeed on retry
var permanentMessages = []string{
	"execution reverted",
	"invalid signature",
	"operator has already responded",
	"already responded",
	"task mismatch",
	"supplied task does not match",
	"insufficient funds",
	"intrinsic gas too low",
}

// ClassifyError tags a raw client error with either types.ErrPermanentTask or
// types.ErrTransientLedger. Errors already carrying a classification are
// returned unchanged. Unrecognized errors are treated as transient.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	if types.IsPermanent(err) || types.IsTransient(err) {
		return err
	}
	if isPermanent(err) {
		return fmt.Errorf("%w: %w", types.ErrPermanentTask, err)
	}
	return fmt.Errorf("%w: %w", types.ErrTransientLedger, err)
}

func isPermanent(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, transactionSigner.ErrTransactionFailed) {
		return true
	}
	if errors.Is(err, core.ErrInsufficientFunds) || errors.Is(err, core.ErrIntrinsicGas) {
		return true
	}
	if errors.Is(err, core.ErrNonceTooLow) || errors.Is(err, txpool.ErrReplaceUnderpriced) || errors.Is(err, txpool.ErrAlreadyKnown) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return false
	}

	// reverts surfaced by the node carry revert data
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) && dataErr.ErrorData() != nil {
		return true
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) && (httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= http.StatusInternalServerError) {
		return false
	}

	// anything without a permanent marker, timeouts and rate limits included, is retried
	msg := strings.ToLower(err.Error())
	for _, m := range permanentMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}
