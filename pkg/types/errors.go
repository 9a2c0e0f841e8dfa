package types

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is returned for missing or invalid endpoint, key or deployment data
	ErrConfig = errors.New("invalid configuration")

	// ErrRegistrationFailed is returned when the authority or registry rejected registration
	ErrRegistrationFailed = errors.New("operator registration failed")

	// ErrKeyUnavailable is returned when the signing key cannot be loaded
	ErrKeyUnavailable = errors.New("signing key unavailable")

	// ErrTransientLedger marks failures worth retrying: timeouts, dropped connections, nonce races
	ErrTransientLedger = errors.New("transient ledger error")

	// ErrPermanentTask marks failures that will not succeed on retry
	ErrPermanentTask = errors.New("permanent task error")

	// ErrFeedDisconnect is reported when a task subscription terminates
	ErrFeedDisconnect = errors.New("task feed disconnected")

	// ErrRetriesExhausted is returned once the attempt budget for a task is spent
	ErrRetriesExhausted = errors.New("retries exhausted")
)

// PermanentTaskError is the terminal outcome for a dropped task.
type PermanentTaskError struct {
	TaskIndex uint32
	Err       error
}

func NewPermanentTaskError(taskIndex uint32, err error) *PermanentTaskError {
	return &PermanentTaskError{TaskIndex: taskIndex, Err: err}
}

func (e *PermanentTaskError) Error() string {
	return fmt.Sprintf("task %d dropped: %v", e.TaskIndex, e.Err)
}

func (e *PermanentTaskError) Unwrap() []error {
	return []error{ErrPermanentTask, e.Err}
}

func IsTransient(err error) bool {
	return err != nil && errors.Is(err, ErrTransientLedger)
}

func IsPermanent(err error) bool {
	return err != nil && errors.Is(err, ErrPermanentTask)
}
