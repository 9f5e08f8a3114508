/*
Package reconcile implements the read-compare-write cycle over the
cluster's config-key store.

A run is a strict sequence: dump current state, decide, optionally
mutate, report. The decision is always based on a state observed
strictly before any mutation; there is no parallelism between phases.
A failed dump aborts the run before any mutating command is even
built.

Set is idempotent: when the desired value already holds, no write is
issued and the outcome says so with changed=false. Get never mutates;
a missing option reports an explanatory stderr message, not an error.
*/
package reconcile
