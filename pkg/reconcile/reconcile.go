package reconcile

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cuemby/cephkey/pkg/cephcmd"
	"github.com/cuemby/cephkey/pkg/execute"
	"github.com/cuemby/cephkey/pkg/log"
	"github.com/cuemby/cephkey/pkg/retry"
	"github.com/cuemby/cephkey/pkg/types"
)

// Snapshot is a point-in-time read of the config-key store: option
// name to stored value. No caching, no write-through.
type Snapshot map[string]string

// Lookup returns the stored value for option and whether the option
// exists. An empty stored value is distinct from an absent option.
func (s Snapshot) Lookup(option string) (string, bool) {
	value, ok := s[option]
	return value, ok
}

// DumpError is the fatal failure reading current state: the dump
// command itself exited nonzero. The run aborts with the captured
// stderr; no partial reconciliation is attempted.
type DumpError struct {
	Stderr string
}

func (e *DumpError) Error() string {
	return "Can't get current configuration via `ceph config-key dump`.Error:\n" + e.Stderr
}

// Reconciler drives one read-then-decide-then-write cycle against the
// config-key store. It owns no state across runs; every call builds
// its own commands and snapshot.
type Reconciler struct {
	exec   execute.Executor
	policy retry.Policy
	logger zerolog.Logger
}

// New creates a Reconciler executing through exec with the default
// retry policy for transient launch failures.
func New(exec execute.Executor) *Reconciler {
	return &Reconciler{
		exec:   exec,
		policy: retry.Default(execute.IsTransient),
		logger: log.WithComponent("reconcile"),
	}
}

// WithPolicy overrides the retry policy. Mainly for tests.
func (r *Reconciler) WithPolicy(p retry.Policy) *Reconciler {
	r.policy = p
	return r
}

// run executes one built command through the retry policy. Only
// launch-level failures are retried; a nonzero exit comes back as a
// normal result.
func (r *Reconciler) run(ctx context.Context, cmd types.Command) (types.ExecutionResult, error) {
	var res types.ExecutionResult
	err := r.policy.Do(func() error {
		var execErr error
		res, execErr = r.exec.Execute(ctx, cmd, execute.Options{})
		return execErr
	})
	return res, err
}

// dump reads the entire config-key store as a structured document.
// A nonzero return code is fatal for the run.
func (r *Reconciler) dump(ctx context.Context, dctx types.DeploymentContext) (types.ExecutionResult, Snapshot, error) {
	cmd := append(cephcmd.ShellCmd(dctx), "ceph", "config-key", "dump", "--format", "json")

	res, err := r.run(ctx, cmd)
	if err != nil {
		return res, nil, err
	}
	if res.RC != 0 {
		return res, nil, &DumpError{Stderr: res.Stderr}
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(strings.TrimSpace(res.Stdout)), &snap); err != nil {
		return res, nil, fmt.Errorf("failed to parse config-key dump: %w", err)
	}

	res.Stdout = strings.TrimSpace(res.Stdout)
	return res, snap, nil
}

// Set reconciles option to value: reads current state, skips the
// write when the desired value already holds, mutates otherwise.
//
// The comparison lower-cases the desired value only; the stored value
// is compared as-is, and option names are always exact-match. Callers
// depend on this asymmetry; do not normalize both sides.
func (r *Reconciler) Set(ctx context.Context, dctx types.DeploymentContext, option, value string) (types.Outcome, error) {
	res, snap, err := r.dump(ctx, dctx)
	if err != nil {
		return types.Outcome{}, err
	}

	current, ok := snap.Lookup(option)
	if ok && strings.ToLower(value) == current {
		r.logger.Debug().Str("option", option).Msg("desired value already set")
		return types.Outcome{
			Cmd:     res.Cmd,
			RC:      res.RC,
			Stdout:  fmt.Sprintf("option=%s value=%s already set. Skipping.", option, value),
			Stderr:  res.Stderr,
			Changed: false,
		}, nil
	}

	setCmd := append(cephcmd.ShellCmd(dctx), "ceph", "config-key", "set", option, value)
	setRes, err := r.run(ctx, setCmd)
	if err != nil {
		return types.Outcome{}, err
	}

	r.logger.Debug().Str("option", option).Int("rc", setRes.RC).Msg("issued config-key set")
	return types.Outcome{
		Cmd:     setRes.Cmd,
		RC:      setRes.RC,
		Stdout:  strings.TrimSpace(setRes.Stdout),
		Stderr:  setRes.Stderr,
		Changed: true,
	}, nil
}

// Get reads the current value of option. Never mutates. An absent
// option is not an error: stdout is empty and stderr names the
// option, with the dump's return code retained.
func (r *Reconciler) Get(ctx context.Context, dctx types.DeploymentContext, option string) (types.Outcome, error) {
	res, snap, err := r.dump(ctx, dctx)
	if err != nil {
		return types.Outcome{}, err
	}

	current, ok := snap.Lookup(option)
	if !ok {
		return types.Outcome{
			Cmd:     res.Cmd,
			RC:      res.RC,
			Stdout:  "",
			Stderr:  fmt.Sprintf("No value found for option=%s", option),
			Changed: false,
		}, nil
	}

	return types.Outcome{
		Cmd:     res.Cmd,
		RC:      res.RC,
		Stdout:  current,
		Stderr:  res.Stderr,
		Changed: false,
	}, nil
}
