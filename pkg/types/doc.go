/*
Package types defines the data model shared across cephkey: command
token sequences, the deployment context resolved at startup, raw
execution results, reconciliation outcomes, and the terminal run
report.

All values here are plain data. A Command is built fresh for every
execution and never mutated; the DeploymentContext is assembled once
in the entry point and passed down read-only, so nothing in the
pipeline reads the environment after startup.
*/
package types
