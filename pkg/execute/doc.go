/*
Package execute runs built commands as external processes and
captures their outcome.

The engine is deliberately dumb: it spawns one process synchronously,
captures exit code, stdout, and stderr, and hands the result back
untouched. Deciding what output means is the reconciler's job.

Failures split into two kinds. A LaunchError means the process never
ran (missing binary, empty command) and is the retryable kind, see
IsTransient. A nonzero exit code is an answer, not an error: it comes
back as a normal ExecutionResult unless the caller opted into
FailOnNonzero.
*/
package execute
