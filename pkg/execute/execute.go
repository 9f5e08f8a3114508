package execute

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/cuemby/cephkey/pkg/log"
	"github.com/cuemby/cephkey/pkg/types"
)

// Options control a single execution.
type Options struct {
	// Stdin, when non-nil, is supplied to the process as binary input.
	Stdin []byte

	// FailOnNonzero converts a nonzero exit code into an *ExitError
	// instead of a normal result.
	FailOnNonzero bool
}

// Executor runs one command synchronously and captures its outcome.
// The engine never interprets output content; that is the caller's
// job.
type Executor interface {
	Execute(ctx context.Context, cmd types.Command, opts Options) (types.ExecutionResult, error)
}

// LaunchError reports that the process could not be started at all
// (missing binary, empty command). This is the retryable failure
// kind; a process that ran and exited nonzero is not a LaunchError.
type LaunchError struct {
	Cmd types.Command
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %q: %v", e.Cmd.String(), e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ExitError reports a nonzero exit when Options.FailOnNonzero is set.
// It carries the full result so callers can still surface stderr.
type ExitError struct {
	Result types.ExecutionResult
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with rc %d: %s",
		e.Result.Cmd.String(), e.Result.RC, e.Result.Stderr)
}

// IsTransient reports whether err is the kind of failure worth
// retrying: the process never ran. Nonzero exits are authoritative
// answers from the external tool and are never transient.
func IsTransient(err error) bool {
	var launch *LaunchError
	return errors.As(err, &launch)
}

// Runner is the os/exec-backed Executor.
type Runner struct {
	logger zerolog.Logger
}

// NewRunner creates a Runner logging under the execute component.
func NewRunner() *Runner {
	return &Runner{logger: log.WithComponent("execute")}
}

// Execute runs cmd synchronously, capturing exit code and both output
// streams. A nonzero exit is a normal result unless FailOnNonzero is
// set.
func (r *Runner) Execute(ctx context.Context, cmd types.Command, opts Options) (types.ExecutionResult, error) {
	result := types.ExecutionResult{Cmd: cmd.Clone()}

	if len(cmd) == 0 {
		return result, &LaunchError{Cmd: cmd, Err: errors.New("empty command")}
	}

	c := exec.CommandContext(ctx, cmd[0], cmd[1:]...)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if opts.Stdin != nil {
		c.Stdin = bytes.NewReader(opts.Stdin)
	}

	r.logger.Debug().Str("cmd", cmd.String()).Msg("executing command")

	err := c.Run()

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Process never ran: missing or empty binary, bad context.
			return result, &LaunchError{Cmd: cmd, Err: err}
		}
		result.RC = exitErr.ExitCode()
		if opts.FailOnNonzero {
			return result, &ExitError{Result: result}
		}
		return result, nil
	}

	result.RC = 0
	return result, nil
}
