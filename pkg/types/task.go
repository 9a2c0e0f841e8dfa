package types

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Task mirrors the registry's on-chain Task struct. Field order and widths are
// part of the signing digest and must not change.
type Task struct {
	ImageHash        [32]byte
	MetadataHash     [32]byte
	TaskCreatedBlock uint32
	DeviceSignature  []byte
}

func (t *Task) Clone() *Task {
	sig := make([]byte, len(t.DeviceSignature))
	copy(sig, t.DeviceSignature)
	return &Task{
		ImageHash:        t.ImageHash,
		MetadataHash:     t.MetadataHash,
		TaskCreatedBlock: t.TaskCreatedBlock,
		DeviceSignature:  sig,
	}
}

// TaskEvent is a single NewTaskCreated delivery from the registry.
type TaskEvent struct {
	TaskIndex       uint32
	Task            *Task
	BlockNumber     uint64
	TransactionHash common.Hash
}

func (te *TaskEvent) String() string {
	return fmt.Sprintf("task(%d) image=%s metadata=%s createdAt=%d",
		te.TaskIndex,
		hexutil.Encode(te.Task.ImageHash[:]),
		hexutil.Encode(te.Task.MetadataHash[:]),
		te.Task.TaskCreatedBlock,
	)
}

// Attestation is the decoded form of the signature blob passed to respondToTask.
type Attestation struct {
	Operators      []common.Address
	Signatures     [][]byte
	ReferenceBlock uint32
}

// RegistrationCredential is the time-boxed signature submitted to the stake registry.
type RegistrationCredential struct {
	Signature []byte
	Salt      [32]byte
	Expiry    *big.Int
}

type OperatorIdentity struct {
	Address              common.Address
	IsDelegationOperator bool
	IsAvsOperator        bool
}
