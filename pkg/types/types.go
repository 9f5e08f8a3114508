package types

import (
	"strings"
	"time"
)

// Command is an ordered token sequence for one external process
// invocation: argv[0] plus arguments. Built fresh per execution and
// never mutated afterwards.
type Command []string

// Clone returns an independent copy of the command tokens.
func (c Command) Clone() Command {
	if c == nil {
		return nil
	}
	out := make(Command, len(c))
	copy(out, c)
	return out
}

// String renders the command the way it would appear on a shell line.
func (c Command) String() string {
	return strings.Join(c, " ")
}

// DefaultCluster and DefaultUser are the identity values assumed when
// the caller supplies none, matching the cluster CLI's own defaults.
const (
	DefaultCluster = "ceph"
	DefaultUser    = "client.admin"
)

// DeploymentContext carries everything the command builders need to
// target a cluster under a given deployment topology. It is assembled
// once at process start (config file, environment, flags) and treated
// as read-only from then on.
type DeploymentContext struct {
	// ClusterName names the cluster, default "ceph".
	ClusterName string

	// UserID is the client identity, default "client.admin".
	UserID string

	// Keyring is the credential path. Empty means derive
	// /etc/ceph/<cluster>.<user>.keyring at build time.
	Keyring string

	// FSID optionally pins cephadm shell invocations to one cluster.
	FSID string

	// Image is the container image passed to cephadm via --image.
	Image string

	// Docker forces cephadm to use the docker engine.
	Docker bool

	// ContainerImage, when non-empty, wraps every built ceph command
	// in a container-run invocation (CEPH_CONTAINER_IMAGE).
	ContainerImage string

	// ContainerBinary is the container engine executable
	// (CEPH_CONTAINER_BINARY). Not validated here; an empty value
	// surfaces downstream as a process launch failure.
	ContainerBinary string
}

// Containerized reports whether built commands run through a
// container engine rather than natively.
func (d DeploymentContext) Containerized() bool {
	return d.ContainerImage != ""
}

// KeyringPath resolves the credential path, deriving the conventional
// location from cluster and user when no override is set.
func (d DeploymentContext) KeyringPath() string {
	if d.Keyring != "" {
		return d.Keyring
	}
	return "/etc/ceph/" + d.ClusterName + "." + d.UserID + ".keyring"
}

// ExecutionResult captures one finished process invocation. Produced
// once per execution; immutable.
type ExecutionResult struct {
	Cmd    Command
	RC     int
	Stdout string
	Stderr string
}

// Outcome is the reconciler's verdict for a single run: whether a
// mutation happened and the output of whichever command is
// authoritative for the run (the dump for no-ops and reads, the set
// call for mutations).
type Outcome struct {
	Cmd     Command
	RC      int
	Stdout  string
	Stderr  string
	Changed bool
}

// RunReport is the terminal artifact handed back to the caller. All
// fields are final; stdout and stderr are trimmed of trailing CR/LF.
type RunReport struct {
	RunID   string            `json:"run_id"`
	Cmd     Command           `json:"cmd"`
	Start   time.Time         `json:"start"`
	End     time.Time         `json:"end"`
	Delta   string            `json:"delta"`
	RC      int               `json:"rc"`
	Stdout  string            `json:"stdout"`
	Stderr  string            `json:"stderr"`
	Changed bool              `json:"changed"`
	Diff    map[string]string `json:"diff"`
}
