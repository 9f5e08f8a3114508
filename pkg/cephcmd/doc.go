/*
Package cephcmd builds the external command lines cephkey executes.

Two command families are covered. Generate produces direct ceph
invocations with identity, credential, and cluster flags, optionally
wrapped in a container-run prefix when the deployment context carries
a container image. BaseCmd, ShellCmd, and OrchCmd layer the cephadm
prefix used by higher-level operations; config-key reads and writes
go through ShellCmd.

All builders are pure functions of the DeploymentContext: same inputs,
same token sequence, no I/O and no environment reads. The container
engine binary is taken from the context unvalidated; an empty value
surfaces as a launch failure in the execution engine, not here.
*/
package cephcmd
