package defaults

import "gopkg.in/yaml.v3"

// baselineAlerting is the out-of-the-box alerting configuration: a single
// Admin receiver mailing root over the local MTA. It exists so a bare
// parameters file still renders a configuration the daemon will accept.
const baselineAlerting = `global:
  smtp_smarthost: "localhost:25"
  smtp_from: alertmanager@localhost
route:
  group_by: [alertname, cluster, service]
  group_wait: 30s
  group_interval: 5m
  repeat_interval: 3h
  receiver: Admin
receivers:
  - name: Admin
    email_configs:
      - to: root@localhost
inhibit_rules: []
`

// alertingDefaults parses the baseline document into fresh node trees. A new
// parse per call keeps returned configs independent of each other.
func alertingDefaults() (global, route, receivers, inhibitRules *yaml.Node) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(baselineAlerting), &doc); err != nil {
		panic("defaults: baseline alerting document is invalid: " + err.Error())
	}

	root := doc.Content[0]
	for i := 0; i+1 < len(root.Content); i += 2 {
		switch root.Content[i].Value {
		case "global":
			global = root.Content[i+1]
		case "route":
			route = root.Content[i+1]
		case "receivers":
			receivers = root.Content[i+1]
		case "inhibit_rules":
			inhibitRules = root.Content[i+1]
		}
	}
	return global, route, receivers, inhibitRules
}
