/*
Package report assembles and emits the terminal run record.

Every run ends here, success or failure: a single JSON document on
stdout carrying the exact command tokens issued, timestamps, elapsed
delta, return code, trimmed output streams, and the changed flag.
Exit and Fatal terminate the process; they never return control to
the pipeline.
*/
package report
