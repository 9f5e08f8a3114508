package cephcmd

import (
	"github.com/cuemby/cephkey/pkg/types"
)

// GenerateOptions selects what a generated ceph invocation runs:
// the entrypoint binary, an optional subcommand token block, and
// optional trailing arguments. Zero values mean "omit".
type GenerateOptions struct {
	// Entrypoint is the binary to invoke, default "ceph".
	Entrypoint string

	// SubCommand tokens follow the identity/credential flags.
	SubCommand []string

	// Args follow the subcommand.
	Args []string

	// Interactive asks the container adapter for an interactive run.
	// Only meaningful in containerized mode.
	Interactive bool
}

// Generate builds a complete ceph command line for the given
// deployment context: container-run prefix (when containerized),
// identity and credential flags, then subcommand and args.
//
// Pure and deterministic; performs no I/O and never reads the
// environment.
func Generate(ctx types.DeploymentContext, opts GenerateOptions) types.Command {
	entrypoint := opts.Entrypoint
	if entrypoint == "" {
		entrypoint = "ceph"
	}

	cmd := preGenerate(ctx, entrypoint, opts.Interactive)

	cmd = append(cmd, "-n", ctx.UserID, "-k", ctx.KeyringPath(), "--cluster", ctx.ClusterName)

	if len(opts.SubCommand) > 0 {
		cmd = append(cmd, opts.SubCommand...)
	}
	if len(opts.Args) > 0 {
		cmd = append(cmd, opts.Args...)
	}

	return cmd
}

// preGenerate builds the invocation prefix: the bare binary when
// running natively, or the container-run wrapping when the context
// carries a container image.
func preGenerate(ctx types.DeploymentContext, binary string, interactive bool) types.Command {
	if ctx.Containerized() {
		return containerWrap(ctx, binary, interactive)
	}
	return types.Command{binary}
}

// containerWrap builds the container CLI invocation running binary
// inside the context's container image. The engine binary comes from
// the context as-is; an empty value is passed through and fails at
// launch time rather than here.
func containerWrap(ctx types.DeploymentContext, binary string, interactive bool) types.Command {
	cmd := types.Command{ctx.ContainerBinary, "run"}

	if interactive {
		cmd = append(cmd, "--interactive")
	}

	cmd = append(cmd,
		"--rm",
		"--net=host",
		"-v", "/etc/ceph:/etc/ceph:z",
		"-v", "/var/lib/ceph/:/var/lib/ceph/:z",
		"-v", "/var/log/ceph/:/var/log/ceph/:z",
		"--entrypoint="+binary,
		ctx.ContainerImage,
	)

	return cmd
}

// BaseCmd builds the cephadm invocation prefix, carrying the engine
// and image selection flags when set.
func BaseCmd(ctx types.DeploymentContext) types.Command {
	cmd := types.Command{"cephadm"}

	if ctx.Docker {
		cmd = append(cmd, "--docker")
	}
	if ctx.Image != "" {
		cmd = append(cmd, "--image", ctx.Image)
	}

	return cmd
}

// ShellCmd layers "shell" onto BaseCmd, pinning the target cluster
// when an fsid is set. Config-key operations build on this prefix.
func ShellCmd(ctx types.DeploymentContext) types.Command {
	cmd := BaseCmd(ctx)

	cmd = append(cmd, "shell")

	if ctx.FSID != "" {
		cmd = append(cmd, "--fsid", ctx.FSID)
	}

	return cmd
}

// OrchCmd layers the orchestrator CLI onto ShellCmd.
func OrchCmd(ctx types.DeploymentContext) types.Command {
	cmd := ShellCmd(ctx)
	cmd = append(cmd, "ceph", "orch")

	return cmd
}
