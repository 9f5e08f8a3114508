package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cuemby/cephkey/pkg/types"
)

// DefaultPath is where cephkey looks for its config file when no
// --config flag is given. A missing file is not an error.
const DefaultPath = "/etc/cephkey/config.yaml"

// Environment variable names for the containerized deployment
// topology.
const (
	EnvContainerImage  = "CEPH_CONTAINER_IMAGE"
	EnvContainerBinary = "CEPH_CONTAINER_BINARY"
)

// File is the on-disk configuration: stable per-host defaults for
// cluster identity and the container engine.
type File struct {
	Cluster         string `yaml:"cluster"`
	User            string `yaml:"user"`
	Keyring         string `yaml:"keyring"`
	ContainerBinary string `yaml:"container_binary"`
	ContainerImage  string `yaml:"container_image"`
}

// Load reads a config file. A missing file yields a zero File so the
// defaults apply; any other read or parse failure is an error.
func Load(path string) (File, error) {
	var f File

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return f, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return f, nil
}

// Env holds the environment-provided deployment settings. Read once
// at process start via ReadEnv; nothing else in the pipeline touches
// the environment.
type Env struct {
	ContainerImage  string
	ContainerBinary string
}

// ReadEnv captures the container topology settings from the process
// environment.
func ReadEnv() Env {
	return Env{
		ContainerImage:  os.Getenv(EnvContainerImage),
		ContainerBinary: os.Getenv(EnvContainerBinary),
	}
}

// Overrides are the per-invocation CLI flag values.
type Overrides struct {
	Cluster string
	User    string
	Keyring string
	FSID    string
	Image   string
	Docker  bool
}

// BuildContext merges file, environment, and flag layers into the
// process-wide DeploymentContext. Precedence: flags over environment
// over config file over built-in defaults.
func BuildContext(f File, env Env, o Overrides) types.DeploymentContext {
	ctx := types.DeploymentContext{
		ClusterName:     types.DefaultCluster,
		UserID:          types.DefaultUser,
		Keyring:         f.Keyring,
		FSID:            o.FSID,
		Image:           o.Image,
		Docker:          o.Docker,
		ContainerImage:  f.ContainerImage,
		ContainerBinary: f.ContainerBinary,
	}

	if f.Cluster != "" {
		ctx.ClusterName = f.Cluster
	}
	if f.User != "" {
		ctx.UserID = f.User
	}

	if env.ContainerImage != "" {
		ctx.ContainerImage = env.ContainerImage
	}
	if env.ContainerBinary != "" {
		ctx.ContainerBinary = env.ContainerBinary
	}

	if o.Cluster != "" {
		ctx.ClusterName = o.Cluster
	}
	if o.User != "" {
		ctx.UserID = o.User
	}
	if o.Keyring != "" {
		ctx.Keyring = o.Keyring
	}

	return ctx
}
