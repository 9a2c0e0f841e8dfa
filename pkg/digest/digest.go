// Package digest holds the canonical byte encodings shared with the
// ImageVerificationServiceManager contract.
package digest

import (
	"encoding/binary"
	"fmt"

	"github.com/Layr-Labs/image-verification-operator/pkg/types"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	hashLength          = 32
	taskCreatedBlockLen = 4

	// packedTaskHeaderLength is imageHash(32) || metadataHash(32) || taskCreatedBlock(4)
	packedTaskHeaderLength = 2*hashLength + taskCreatedBlockLen
)

var (
	attestationArguments abi.Arguments
	taskRecordArguments  abi.Arguments
)

func init() {
	addressSliceType, err := abi.NewType("address[]", "", nil)
	if err != nil {
		panic(err)
	}
	bytesSliceType, err := abi.NewType("bytes[]", "", nil)
	if err != nil {
		panic(err)
	}
	uint32Type, err := abi.NewType("uint32", "", nil)
	if err != nil {
		panic(err)
	}
	attestationArguments = abi.Arguments{
		{Name: "operators", Type: addressSliceType},
		{Name: "signatures", Type: bytesSliceType},
		{Name: "referenceBlock", Type: uint32Type},
	}

	taskTupleType, err := abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "imageHash", Type: "bytes32"},
		{Name: "metadataHash", Type: "bytes32"},
		{Name: "taskCreatedBlock", Type: "uint32"},
		{Name: "deviceSignature", Type: "bytes"},
	})
	if err != nil {
		panic(err)
	}
	taskRecordArguments = abi.Arguments{{Name: "task", Type: taskTupleType}}
}

// EncodeTaskPayload returns abi.encodePacked(bytes32, bytes32, uint32, bytes).
func EncodeTaskPayload(task *types.Task) []byte {
	out := make([]byte, 0, packedTaskHeaderLength+len(task.DeviceSignature))
	out = append(out, task.ImageHash[:]...)
	out = append(out, task.MetadataHash[:]...)
	out = binary.BigEndian.AppendUint32(out, task.TaskCreatedBlock)
	out = append(out, task.DeviceSignature...)
	return out
}

// DecodeTaskPayload reverses EncodeTaskPayload. The device signature is the
// trailing, unprefixed remainder.
func DecodeTaskPayload(payload []byte) (*types.Task, error) {
	if len(payload) < packedTaskHeaderLength {
		return nil, fmt.Errorf("task payload too short: expected at least %d bytes, got %d", packedTaskHeaderLength, len(payload))
	}
	task := &types.Task{}
	copy(task.ImageHash[:], payload[0:hashLength])
	copy(task.MetadataHash[:], payload[hashLength:2*hashLength])
	task.TaskCreatedBlock = binary.BigEndian.Uint32(payload[2*hashLength : packedTaskHeaderLength])
	task.DeviceSignature = make([]byte, len(payload)-packedTaskHeaderLength)
	copy(task.DeviceSignature, payload[packedTaskHeaderLength:])
	return task, nil
}

// TaskDigest is the message operators sign for a task.
func TaskDigest(task *types.Task) [32]byte {
	return crypto.Keccak256Hash(EncodeTaskPayload(task))
}

// TaskRecordHash is keccak256(abi.encode(task)), the value the registry keeps per task index.
func TaskRecordHash(task *types.Task) ([32]byte, error) {
	encoded, err := taskRecordArguments.Pack(struct {
		ImageHash        [32]byte
		MetadataHash     [32]byte
		TaskCreatedBlock uint32
		DeviceSignature  []byte
	}{
		ImageHash:        task.ImageHash,
		MetadataHash:     task.MetadataHash,
		TaskCreatedBlock: task.TaskCreatedBlock,
		DeviceSignature:  task.DeviceSignature,
	})
	if err != nil {
		return [32]byte{}, fmt.Errorf("failed to abi encode task: %w", err)
	}
	return crypto.Keccak256Hash(encoded), nil
}

// EncodeAttestation returns abi.encode(address[], bytes[], uint32).
func EncodeAttestation(att *types.Attestation) ([]byte, error) {
	if len(att.Operators) != len(att.Signatures) {
		return nil, fmt.Errorf("operators and signatures length mismatch: %d != %d", len(att.Operators), len(att.Signatures))
	}
	encoded, err := attestationArguments.Pack(att.Operators, att.Signatures, att.ReferenceBlock)
	if err != nil {
		return nil, fmt.Errorf("failed to abi encode attestation: %w", err)
	}
	return encoded, nil
}

func DecodeAttestation(data []byte) (*types.Attestation, error) {
	values, err := attestationArguments.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("failed to abi decode attestation: %w", err)
	}
	if len(values) != 3 {
		return nil, fmt.Errorf("unexpected attestation field count %d", len(values))
	}
	operators, ok := values[0].([]common.Address)
	if !ok {
		return nil, fmt.Errorf("failed to parse attestation operators")
	}
	signatures, ok := values[1].([][]byte)
	if !ok {
		return nil, fmt.Errorf("failed to parse attestation signatures")
	}
	referenceBlock, ok := values[2].(uint32)
	if !ok {
		return nil, fmt.Errorf("failed to parse attestation reference block")
	}
	return &types.Attestation{
		Operators:      operators,
		Signatures:     signatures,
		ReferenceBlock: referenceBlock,
	}, nil
}
