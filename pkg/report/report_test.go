package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/cephkey/pkg/types"
)

func TestNew_TrimsTrailingCRLFOnly(t *testing.T) {
	start := time.Now()
	rep := New("run-1", types.Command{"ceph"}, start, start,
		0, "  value\r\n\n", "warn\n", false, nil)

	assert.Equal(t, "  value", rep.Stdout)
	assert.Equal(t, "warn", rep.Stderr)
}

func TestNew_KeepsInteriorNewlines(t *testing.T) {
	start := time.Now()
	rep := New("run-1", nil, start, start, 0, "a\nb\n", "", false, nil)

	assert.Equal(t, "a\nb", rep.Stdout)
}

func TestNew_Delta(t *testing.T) {
	start := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	end := start.Add(1500 * time.Millisecond)

	rep := New("run-1", nil, start, end, 0, "", "", true, nil)

	assert.Equal(t, "1.5s", rep.Delta)
	assert.Equal(t, start, rep.Start)
	assert.Equal(t, end, rep.End)
	assert.True(t, rep.Changed)
}

func TestEmit_JSONShape(t *testing.T) {
	start := time.Now()
	rep := New("run-1", types.Command{"cephadm", "shell"}, start, start,
		3, "out", "err", true, nil)

	var buf bytes.Buffer
	require.NoError(t, Emit(&buf, rep))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "run-1", decoded["run_id"])
	assert.Equal(t, []any{"cephadm", "shell"}, decoded["cmd"])
	assert.Equal(t, float64(3), decoded["rc"])
	assert.Equal(t, "out", decoded["stdout"])
	assert.Equal(t, "err", decoded["stderr"])
	assert.Equal(t, true, decoded["changed"])
	// Reserved for callers; always present, null when unused.
	assert.Contains(t, decoded, "diff")
	assert.Nil(t, decoded["diff"])
}

func TestEmitFailure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EmitFailure(&buf, "run-1", "Can't get current configuration"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "run-1", decoded["run_id"])
	assert.Equal(t, "Can't get current configuration", decoded["msg"])
	assert.Equal(t, float64(1), decoded["rc"])
	assert.Equal(t, true, decoded["failed"])
}
