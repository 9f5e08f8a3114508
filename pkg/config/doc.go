/*
Package config resolves the deployment context cephkey runs under.

Three layers merge into one DeploymentContext, built exactly once in
the entry point: an optional YAML config file with per-host defaults,
the CEPH_CONTAINER_IMAGE / CEPH_CONTAINER_BINARY environment
variables, and CLI flags. Flags win over environment, environment
over file, file over built-in defaults.

A set container image switches every built command into containerized
mode. The engine binary is not validated here; an unresolved engine
surfaces later as a process launch failure.
*/
package config
