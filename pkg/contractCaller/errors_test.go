package contractCaller

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Layr-Labs/image-verification-operator/pkg/transactionSigner"
	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/core"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
)

type revertError struct{}

func (revertError) Error() string          { return "execution reverted" }
func (revertError) ErrorCode() int         { return 3 }
func (revertError) ErrorData() interface{} { return "0x08c379a0" }

func Test_ClassifyError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		permanent bool
	}{
		{"failed receipt", fmt.Errorf("respond: %w", transactionSigner.ErrTransactionFailed), true},
		{"revert with data", revertError{}, true},
		{"revert message", errors.New("execution reverted: Operator has already responded to the task"), true},
		{"invalid signature", errors.New("execution reverted: Invalid signature"), true},
		{"insufficient funds", fmt.Errorf("send: %w", core.ErrInsufficientFunds), true},
		{"timeout", errors.New("Post \"http://localhost:8545\": i/o timeout"), false},
		{"deadline", context.DeadlineExceeded, false},
		{"connection refused", errors.New("dial tcp 127.0.0.1:8545: connect: connection refused"), false},
		{"nonce race", fmt.Errorf("send: %w", core.ErrNonceTooLow), false},
		{"rate limited", errors.New("429 Too Many Requests"), false},
		{"unknown", errors.New("something odd happened"), false},
		{"revert reason with a status code", errors.New("execution reverted: image 0x503429 rejected"), true},
		{"revert reason mentioning eof", errors.New("execution reverted: unexpected EOF in device signature"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(tt.err)
			assert.True(t, errors.Is(classified, tt.err))
			assert.Equal(t, tt.permanent, types.IsPermanent(classified))
			assert.Equal(t, !tt.permanent, types.IsTransient(classified))
		})
	}
}

func Test_ClassifyError_PreservesExistingClassification(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))

	permanent := types.NewPermanentTaskError(7, errors.New("timeout"))
	assert.Same(t, permanent, ClassifyError(permanent))

	transient := fmt.Errorf("%w: execution reverted", types.ErrTransientLedger)
	assert.Equal(t, transient, ClassifyError(transient))
}

func Test_ClassifyError_HTTPStatus(t *testing.T) {
	tests := []struct {
		name      string
		err       rpc.HTTPError
		permanent bool
	}{
		{"unavailable with revert body", rpc.HTTPError{StatusCode: 503, Status: "503 Service Unavailable", Body: []byte("execution reverted")}, false},
		{"rate limited", rpc.HTTPError{StatusCode: 429, Status: "429 Too Many Requests"}, false},
		{"bad request with revert body", rpc.HTTPError{StatusCode: 400, Status: "400 Bad Request", Body: []byte("execution reverted")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(fmt.Errorf("respondToTask: %w", tt.err))
			var httpErr rpc.HTTPError
			assert.True(t, errors.As(classified, &httpErr))
			assert.Equal(t, tt.permanent, types.IsPermanent(classified))
		})
	}
}
