package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cuemby/cephkey/pkg/config"
	"github.com/cuemby/cephkey/pkg/execute"
	"github.com/cuemby/cephkey/pkg/log"
	"github.com/cuemby/cephkey/pkg/reconcile"
	"github.com/cuemby/cephkey/pkg/report"
	"github.com/cuemby/cephkey/pkg/types"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cephkey",
	Short: "cephkey - idempotent Ceph config-key reconciliation",
	Long: `cephkey reconciles a single option in a Ceph cluster's config-key
store: it reads the current value through the external cluster CLI,
decides whether a mutation is needed, issues the set command only when
it is, and emits a structured JSON run report on stdout.

Runs natively or through a container engine (CEPH_CONTAINER_IMAGE /
CEPH_CONTAINER_BINARY), and through cephadm shell when an fsid or
image is given.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"cephkey version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	pf := rootCmd.PersistentFlags()
	pf.String("config", config.DefaultPath, "Config file path")
	pf.String("cluster", "", `Cluster name (default "ceph")`)
	pf.String("user", "", `Client identity (default "client.admin")`)
	pf.String("keyring", "", "Keyring path (default derived from cluster and user)")
	pf.String("fsid", "", "FSID of the cluster for cephadm shell")
	pf.String("image", "", "Container image passed to cephadm via --image")
	pf.Bool("docker", false, "Force cephadm to use the docker engine")
	pf.Bool("check", false, "Dry run: report changed=false without executing anything")
	pf.String("log-level", "info", "Log level (debug|info|warn|error)")
	pf.Bool("log-json", false, "JSON log output")

	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <option> <value>",
	Short: "Set a config-key option if its current value differs",
	Long: `Set a config-key option to the given value.

The current store is dumped first; when the desired value already
holds, no mutating command is issued and the report says changed=false.

Examples:
  # Allow pool deletion
  cephkey set mon_allow_pool_delete true

  # Against a containerized cluster
  CEPH_CONTAINER_IMAGE=quay.io/ceph/ceph:v18 CEPH_CONTAINER_BINARY=podman \
    cephkey set mon_allow_pool_delete true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		option, value := args[0], args[1]
		return runPipeline(cmd, func(ctx context.Context, rec *reconcile.Reconciler, dctx types.DeploymentContext) (types.Outcome, error) {
			return rec.Set(ctx, dctx, option, value)
		})
	},
}

var getCmd = &cobra.Command{
	Use:   "get <option>",
	Short: "Read the current value of a config-key option",
	Long: `Read a config-key option. Never mutates the store.

A missing option is not an error: stdout in the report is empty and
stderr names the option.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		option := args[0]
		return runPipeline(cmd, func(ctx context.Context, rec *reconcile.Reconciler, dctx types.DeploymentContext) (types.Outcome, error) {
			return rec.Get(ctx, dctx, option)
		})
	},
}

// runPipeline drives one full reconciliation run and terminates the
// process through the reporter.
func runPipeline(cmd *cobra.Command, op func(context.Context, *reconcile.Reconciler, types.DeploymentContext) (types.Outcome, error)) error {
	runID := uuid.NewString()
	logger := log.WithRunID(runID)

	if check, _ := cmd.Flags().GetBool("check"); check {
		logger.Debug().Msg("check mode, skipping pipeline")
		report.Exit(types.RunReport{RunID: runID, Cmd: types.Command{}})
		return nil
	}

	dctx, err := buildContext(cmd)
	if err != nil {
		return err
	}
	if dctx.Containerized() && dctx.ContainerBinary == "" {
		logger.Warn().Msg("containerized mode with no container engine binary set; command launch will fail")
	}

	startd := time.Now()
	rec := reconcile.New(execute.NewRunner())

	outcome, err := op(context.Background(), rec, dctx)
	if err != nil {
		logger.Error().Err(err).Msg("run failed")
		report.Fatal(runID, err.Error())
		return nil
	}

	report.Exit(report.New(runID, outcome.Cmd, startd, time.Now(),
		outcome.RC, outcome.Stdout, outcome.Stderr, outcome.Changed, nil))
	return nil
}

// buildContext assembles the DeploymentContext once: config file,
// environment, then flags. Nothing downstream reads the environment.
func buildContext(cmd *cobra.Command) (types.DeploymentContext, error) {
	path, _ := cmd.Flags().GetString("config")

	f, err := config.Load(path)
	if err != nil {
		return types.DeploymentContext{}, err
	}

	cluster, _ := cmd.Flags().GetString("cluster")
	user, _ := cmd.Flags().GetString("user")
	keyring, _ := cmd.Flags().GetString("keyring")
	fsid, _ := cmd.Flags().GetString("fsid")
	image, _ := cmd.Flags().GetString("image")
	docker, _ := cmd.Flags().GetBool("docker")

	return config.BuildContext(f, config.ReadEnv(), config.Overrides{
		Cluster: cluster,
		User:    user,
		Keyring: keyring,
		FSID:    fsid,
		Image:   image,
		Docker:  docker,
	}), nil
}

func initLogging(cmd *cobra.Command) {
	level, _ := cmd.Flags().GetString("log-level")
	jsonOut, _ := cmd.Flags().GetBool("log-json")

	log.Init(log.Config{
		Level:      log.Level(level),
		JSONOutput: jsonOut,
	})
}
