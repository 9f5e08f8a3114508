package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Clone(t *testing.T) {
	orig := Command{"ceph", "config-key", "dump"}
	clone := orig.Clone()

	clone[0] = "mutated"

	assert.Equal(t, "ceph", orig[0])
	assert.Nil(t, Command(nil).Clone())
}

func TestCommand_String(t *testing.T) {
	assert.Equal(t, "ceph config-key dump", Command{"ceph", "config-key", "dump"}.String())
}

func TestDeploymentContext_KeyringPath(t *testing.T) {
	ctx := DeploymentContext{ClusterName: "ceph", UserID: "client.admin"}
	assert.Equal(t, "/etc/ceph/ceph.client.admin.keyring", ctx.KeyringPath())

	ctx.Keyring = "/tmp/override.keyring"
	assert.Equal(t, "/tmp/override.keyring", ctx.KeyringPath())
}

func TestDeploymentContext_Containerized(t *testing.T) {
	assert.False(t, DeploymentContext{}.Containerized())
	assert.True(t, DeploymentContext{ContainerImage: "img"}.Containerized())
}
