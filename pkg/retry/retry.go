package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/Layr-Labs/image-verification-operator/pkg/types"
)

// RetryConfig contains configuration for bounded retries
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, including the first
	MaxAttempts int
	// InitialDelay is the delay before the second attempt
	InitialDelay time.Duration
	// MaxDelay caps any single delay
	MaxDelay time.Duration
	// BackoffMultiplier is the multiplier for exponential backoff
	BackoffMultiplier float64
}

// DefaultRetryConfig returns a default retry configuration
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:       5,
		InitialDelay:      500 * time.Millisecond,
		MaxDelay:          30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// Delay returns the wait before the given retry, where retry 1 follows the first failure.
func (rc *RetryConfig) Delay(retry int) time.Duration {
	if retry < 1 {
		return 0
	}
	delay := rc.InitialDelay
	for i := 1; i < retry; i++ {
		delay = time.Duration(float64(delay) * rc.BackoffMultiplier)
		if delay >= rc.MaxDelay {
			return rc.MaxDelay
		}
	}
	if delay > rc.MaxDelay {
		return rc.MaxDelay
	}
	return delay
}

// Backoff yields successive delays for open-ended loops such as resubscription.
type Backoff struct {
	config *RetryConfig
	retry  int
}

func NewBackoff(config *RetryConfig) *Backoff {
	return &Backoff{config: config}
}

func (b *Backoff) Next() time.Duration {
	b.retry++
	return b.config.Delay(b.retry)
}

func (b *Backoff) Reset() {
	b.retry = 0
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Do runs fn until it succeeds, returns a non-retryable error, or the attempt
// budget is spent. onRetry, if set, is called before each wait.
func Do(
	ctx context.Context,
	config *RetryConfig,
	fn func(attempt int) error,
	isRetryable func(err error) bool,
	onRetry func(attempt int, delay time.Duration, err error),
) error {
	if config == nil {
		config = DefaultRetryConfig()
	}
	maxAttempts := config.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn(attempt)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		if attempt == maxAttempts {
			break
		}
		delay := config.Delay(attempt)
		if onRetry != nil {
			onRetry(attempt, delay, err)
		}
		if sleepErr := Sleep(ctx, delay); sleepErr != nil {
			return fmt.Errorf("retry aborted after %d attempts: %w", attempt, err)
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", types.ErrRetriesExhausted, maxAttempts, err)
}
