package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostfleet/amforge/pkg/types"
)

// TestNormalizeArch tests the uname-to-archive architecture mapping
func TestNormalizeArch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "x86_64 maps to amd64", input: "x86_64", expected: "amd64"},
		{name: "i386 maps to 386", input: "i386", expected: "386"},
		{name: "i686 maps to 386", input: "i686", expected: "386"},
		{name: "armv7l maps to armv7", input: "armv7l", expected: "armv7"},
		{name: "aarch64 maps to arm64", input: "aarch64", expected: "arm64"},
		{name: "archive names pass through", input: "amd64", expected: "amd64"},
		{name: "unknown names pass through", input: "riscv64", expected: "riscv64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeArch(tt.input))
		})
	}
}

// TestForBaseline tests the fully populated platform baseline
func TestForBaseline(t *testing.T) {
	cfg := For("linux", "x86_64")

	assert.Equal(t, DefaultVersion, cfg.Version)
	assert.Equal(t, "alertmanager", cfg.PackageName)
	assert.Equal(t, "linux", cfg.OS)
	assert.Equal(t, "amd64", cfg.Arch)
	assert.Equal(t, "tar.gz", cfg.DownloadExtension)
	assert.Equal(t, "/etc/alertmanager", cfg.ConfigDir)
	assert.Equal(t, "/etc/alertmanager/alertmanager.yaml", cfg.ConfigFile)
	assert.Equal(t, "0660", cfg.ConfigMode)
	assert.Equal(t, "/var/lib/alertmanager", cfg.StoragePath)
	assert.True(t, cfg.PurgeConfigDir)
	assert.True(t, cfg.RestartOnChange)
	assert.Equal(t, types.InstallMethodURL, cfg.InstallMethod)
	assert.Equal(t, types.ServiceStateRunning, cfg.ServiceEnsure)
	assert.Equal(t, types.InitStyleSystemd, cfg.InitStyle)

	require.NotNil(t, cfg.Global)
	require.NotNil(t, cfg.Route)
	require.NotNil(t, cfg.Receivers)
	require.NotNil(t, cfg.InhibitRules)
}

// TestForInitStyle tests the per-OS init style selection
func TestForInitStyle(t *testing.T) {
	tests := []struct {
		name     string
		os       string
		expected types.InitStyle
	}{
		{name: "linux uses systemd", os: "linux", expected: types.InitStyleSystemd},
		{name: "darwin uses launchd", os: "darwin", expected: types.InitStyleLaunchd},
		{name: "freebsd uses sysv", os: "freebsd", expected: types.InitStyleSysv},
		{name: "unknown has no init style", os: "plan9", expected: types.InitStyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, For(tt.os, "amd64").InitStyle)
		})
	}
}

// TestForReturnsFreshRecords tests that evaluations never share state
func TestForReturnsFreshRecords(t *testing.T) {
	a := For("linux", "amd64")
	b := For("linux", "amd64")

	require.NotSame(t, a, b)
	require.NotSame(t, a.Route, b.Route)

	// Mutating one baseline's alerting tree must not leak into the next
	a.Route.Content[1].Value = "changed"
	assert.NotEqual(t, a.Route.Content[1].Value, b.Route.Content[1].Value)
}
