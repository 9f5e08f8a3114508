package report

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cuemby/cephkey/pkg/types"
)

// New assembles the terminal RunReport for a run. Stdout and stderr
// are trimmed of trailing CR/LF; everything else is recorded as-is.
func New(runID string, cmd types.Command, start, end time.Time, rc int, stdout, stderr string, changed bool, diff map[string]string) types.RunReport {
	return types.RunReport{
		RunID:   runID,
		Cmd:     cmd,
		Start:   start,
		End:     end,
		Delta:   end.Sub(start).String(),
		RC:      rc,
		Stdout:  strings.TrimRight(stdout, "\r\n"),
		Stderr:  strings.TrimRight(stderr, "\r\n"),
		Changed: changed,
		Diff:    diff,
	}
}

// Emit writes the report as a single JSON document.
func Emit(w io.Writer, rep types.RunReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// Exit emits the report to stdout and terminates the run. Terminal
// action: control never returns to the pipeline.
func Exit(rep types.RunReport) {
	_ = Emit(os.Stdout, rep)
	os.Exit(0)
}

// Failure is the terminal record for a fatal run.
type Failure struct {
	RunID  string `json:"run_id,omitempty"`
	Msg    string `json:"msg"`
	RC     int    `json:"rc"`
	Failed bool   `json:"failed"`
}

// EmitFailure writes a fatal failure record as JSON.
func EmitFailure(w io.Writer, runID, msg string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Failure{RunID: runID, Msg: msg, RC: 1, Failed: true})
}

// Fatal emits a failure record to stdout and terminates the run with
// exit code 1.
func Fatal(runID, msg string) {
	_ = EmitFailure(os.Stdout, runID, msg)
	os.Exit(1)
}
