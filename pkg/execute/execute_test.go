package execute

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/cephkey/pkg/log"
	"github.com/cuemby/cephkey/pkg/types"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel, JSONOutput: true, Output: io.Discard})
	os.Exit(m.Run())
}

func TestExecute_CapturesStdout(t *testing.T) {
	r := NewRunner()

	res, err := r.Execute(context.Background(),
		types.Command{"sh", "-c", "printf hello"}, Options{})

	require.NoError(t, err)
	assert.Equal(t, 0, res.RC)
	assert.Equal(t, "hello", res.Stdout)
	assert.Empty(t, res.Stderr)
}

func TestExecute_NonzeroExitIsAResult(t *testing.T) {
	r := NewRunner()

	res, err := r.Execute(context.Background(),
		types.Command{"sh", "-c", "echo oops >&2; exit 3"}, Options{})

	require.NoError(t, err)
	assert.Equal(t, 3, res.RC)
	assert.Contains(t, res.Stderr, "oops")
}

func TestExecute_FailOnNonzero(t *testing.T) {
	r := NewRunner()

	_, err := r.Execute(context.Background(),
		types.Command{"sh", "-c", "exit 2"}, Options{FailOnNonzero: true})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Result.RC)
	assert.False(t, IsTransient(err))
}

func TestExecute_StdinPassedThrough(t *testing.T) {
	r := NewRunner()

	res, err := r.Execute(context.Background(),
		types.Command{"sh", "-c", "cat"}, Options{Stdin: []byte("ping")})

	require.NoError(t, err)
	assert.Equal(t, "ping", res.Stdout)
}

func TestExecute_MissingBinaryIsLaunchError(t *testing.T) {
	r := NewRunner()

	_, err := r.Execute(context.Background(),
		types.Command{"cephkey-no-such-binary-for-sure"}, Options{})

	var launch *LaunchError
	require.ErrorAs(t, err, &launch)
	assert.True(t, IsTransient(err))
}

func TestExecute_EmptyCommandIsLaunchError(t *testing.T) {
	r := NewRunner()

	_, err := r.Execute(context.Background(), types.Command{}, Options{})

	var launch *LaunchError
	require.ErrorAs(t, err, &launch)
	assert.True(t, IsTransient(err))
}

func TestExecute_EmptyBinaryTokenIsLaunchError(t *testing.T) {
	// The shape an unresolved container engine takes: a command whose
	// first token is the empty string.
	r := NewRunner()

	_, err := r.Execute(context.Background(),
		types.Command{"", "run", "--rm"}, Options{})

	var launch *LaunchError
	require.ErrorAs(t, err, &launch)
}

func TestExecute_ResultKeepsOriginalCommand(t *testing.T) {
	r := NewRunner()
	cmd := types.Command{"sh", "-c", "true"}

	res, err := r.Execute(context.Background(), cmd, Options{})

	require.NoError(t, err)
	assert.Equal(t, cmd, res.Cmd)
}

func TestIsTransient_PlainErrorIsNot(t *testing.T) {
	assert.False(t, IsTransient(errors.New("boom")))
	assert.False(t, IsTransient(nil))
}
