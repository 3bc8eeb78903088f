package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hostfleet/amforge/pkg/graph"
	"github.com/hostfleet/amforge/pkg/params"
	"github.com/hostfleet/amforge/pkg/render"
	"github.com/hostfleet/amforge/pkg/types"
)

const hostParams = `os: linux
arch: x86_64
version: 0.5.1
user: am
group: am
storage_path: /srv/alertmanager
extra_options: "-log.level=debug"
templates:
  - "/etc/alertmanager/*.tmpl"
global:
  smtp_smarthost: "mail.example.com:25"
  smtp_from: alertmanager@example.com
route:
  group_by: [alertname, cluster]
  group_wait: 30s
  group_interval: 5m
  repeat_interval: 3h
  receiver: Ops
receivers:
  - name: Ops
    email_configs:
      - to: ops@example.com
inhibit_rules:
  - source_match:
      severity: critical
    target_match:
      severity: warning
    equal: [alertname]
`

// TestPipeline tests the whole evaluation: parameters file in, verified
// configuration and resource plan out
func TestPipeline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.yaml")
	require.NoError(t, os.WriteFile(path, []byte(hostParams), 0o644))

	cfg, err := params.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "amd64", cfg.Arch)
	assert.Equal(t, "/srv/alertmanager", cfg.StoragePath)

	// The rendered configuration must satisfy the upstream loader
	rendered, err := render.Config(cfg)
	require.NoError(t, err)
	require.NoError(t, render.Verify(rendered))

	plan, err := graph.Emit(cfg)
	require.NoError(t, err)
	require.Len(t, plan.Resources, 5)

	// The plan must round-trip through its YAML wire format
	data, err := yaml.Marshal(plan)
	require.NoError(t, err)

	var decoded types.Plan
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, plan.ID, decoded.ID)
	require.Len(t, decoded.Resources, 5)

	install := decoded.Resources[4]
	assert.Equal(t, types.ResourceKindInstall, install.Kind)
	require.NotNil(t, install.Install)
	assert.Equal(t,
		"-config.file=/etc/alertmanager/alertmanager.yaml -storage.path=/srv/alertmanager -log.level=debug",
		install.Install.Options)
	assert.Equal(t, "alertmanager", install.Install.NotifyService)

	// The config file resource carries the same rendered content
	file := decoded.Resources[1]
	assert.Equal(t, types.ResourceKindFile, file.Kind)
	assert.Equal(t, string(rendered), file.File.Content)
}
