package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hostfleet/amforge/pkg/defaults"
	"github.com/hostfleet/amforge/pkg/params"
)

// TestConfigKeyOrder tests that the five top-level keys come out in schema order
func TestConfigKeyOrder(t *testing.T) {
	data, err := Config(defaults.For("linux", "amd64"))
	require.NoError(t, err)

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &doc))
	root := doc.Content[0]
	require.Equal(t, yaml.MappingNode, root.Kind)

	var keys []string
	for i := 0; i+1 < len(root.Content); i += 2 {
		keys = append(keys, root.Content[i].Value)
	}
	assert.Equal(t, []string{"global", "route", "receivers", "inhibit_rules", "templates"}, keys)
}

// TestConfigRoundTrip tests that operator-supplied structure survives rendering
func TestConfigRoundTrip(t *testing.T) {
	cfg, err := params.Parse([]byte(`
templates:
  - "/etc/am/*.tmpl"
global:
  smtp_smarthost: "mail.example.com:587"
  smtp_from: am@example.com
route:
  group_by: [alertname, severity]
  group_wait: 10s
  receiver: Admin
  routes:
    - match:
        team: db
      receiver: DBA
receivers:
  - name: Admin
    email_configs:
      - to: admin@example.com
  - name: DBA
    email_configs:
      - to: dba@example.com
inhibit_rules:
  - source_match:
      severity: critical
    target_match:
      severity: warning
    equal: [alertname, cluster]
`))
	require.NoError(t, err)

	data, err := Config(cfg)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &got))

	assert.Equal(t, []interface{}{"/etc/am/*.tmpl"}, got["templates"])

	route := got["route"].(map[string]interface{})
	assert.Equal(t, "Admin", route["receiver"])
	assert.Equal(t, []interface{}{"alertname", "severity"}, route["group_by"],
		"group_by order is semantic and must be preserved")

	receivers := got["receivers"].([]interface{})
	require.Len(t, receivers, 2)
	assert.Equal(t, "Admin", receivers[0].(map[string]interface{})["name"],
		"receiver order must be preserved")
	assert.Equal(t, "DBA", receivers[1].(map[string]interface{})["name"])

	wantInhibit := []interface{}{
		map[string]interface{}{
			"source_match": map[string]interface{}{"severity": "critical"},
			"target_match": map[string]interface{}{"severity": "warning"},
			"equal":        []interface{}{"alertname", "cluster"},
		},
	}
	if diff := cmp.Diff(wantInhibit, got["inhibit_rules"]); diff != "" {
		t.Errorf("inhibit_rules mismatch (-want +got):\n%s", diff)
	}
}

// TestConfigEmptySections tests rendering when passthrough sections are absent
func TestConfigEmptySections(t *testing.T) {
	cfg := defaults.For("linux", "amd64")
	cfg.Global = nil
	cfg.InhibitRules = nil
	cfg.Templates = nil

	data, err := Config(cfg)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &got))

	// All five keys are present even when empty
	for _, key := range []string{"global", "route", "receivers", "inhibit_rules", "templates"} {
		assert.Contains(t, got, key)
	}
	assert.Empty(t, got["global"])
	assert.Empty(t, got["inhibit_rules"])
}

// TestVerifyBaseline tests that the out-of-the-box render satisfies upstream
func TestVerifyBaseline(t *testing.T) {
	data, err := Config(defaults.For("linux", "amd64"))
	require.NoError(t, err)
	assert.NoError(t, Verify(data))
}

// TestVerifyDanglingReceiver tests that Verify catches semantic mistakes the
// structural renderer lets through
func TestVerifyDanglingReceiver(t *testing.T) {
	cfg, err := params.Parse([]byte(`
route:
  receiver: Missing
receivers:
  - name: Admin
    email_configs:
      - to: admin@example.com
`))
	require.NoError(t, err)

	data, err := Config(cfg)
	require.NoError(t, err)

	err = Verify(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected by upstream loader")
}
