package retry

import (
	"time"

	"github.com/cuemby/cephkey/pkg/log"
)

const (
	// DefaultAttempts is the total call budget, including the final
	// unguarded attempt.
	DefaultAttempts = 20

	// DefaultDelay is the fixed wait between attempts.
	DefaultDelay = time.Second
)

// Policy retries a fallible operation a bounded number of times with
// a fixed delay. No backoff, no jitter: this is for transient
// external-command flakiness, not load shedding.
type Policy struct {
	// Attempts is the total call budget. The last call is unguarded:
	// its error propagates to the caller.
	Attempts int

	// Delay is the blocking wait between attempts.
	Delay time.Duration

	// Retryable decides whether an error is worth another attempt.
	// A nil predicate never retries.
	Retryable func(error) bool
}

// Default returns the standard policy: 20 attempts, 1s apart.
func Default(retryable func(error) bool) Policy {
	return Policy{
		Attempts:  DefaultAttempts,
		Delay:     DefaultDelay,
		Retryable: retryable,
	}
}

// Do invokes op until it succeeds, fails with a non-retryable error,
// or the attempt budget runs out. After the budget is spent one final
// unguarded call is made and its error, if any, returned.
func (p Policy) Do(op func() error) error {
	logger := log.WithComponent("retry")

	tries := p.Attempts
	for tries > 1 {
		logger.Debug().Int("attempts_left", tries).Msg("invoking operation")
		err := op()
		if err == nil {
			return nil
		}
		if p.Retryable == nil || !p.Retryable(err) {
			return err
		}
		time.Sleep(p.Delay)
		tries--
	}

	logger.Debug().Int("retries", p.Attempts-1).Msg("operation still failing after retries, final attempt")
	return op()
}
