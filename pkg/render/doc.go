/*
Package render produces the alertmanager.yml configuration document.

The renderer is deliberately dumb: it takes the validated alerting sections
from the Config record and assembles a YAML document with the five top-level
keys the daemon expects, in schema order:

	global:
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
	templates: []

# Structure Preservation

The alerting sections are carried through the whole pipeline as yaml.Node
trees, never decoded into Go maps. That matters for two reasons:

  - Sequence order is semantic downstream: route.receiver references
    receivers[].name, and group_by / equal ordering affects grouping in the
    daemon itself. Decoding into a map and re-encoding would reorder keys.
  - The daemon's schema evolves; passing structure through verbatim means
    new upstream fields work without a release of this tool.

# Verification

Verify runs the rendered bytes through the upstream Alertmanager config
loader. The renderer guarantees shape, not semantics; Verify catches the
rest (dangling receiver references, malformed durations, incomplete channel
configs) before the engine ships the file to a host. It is wired to
`amforge render --verify`.

# See Also

  - pkg/params for shape validation of the input sections
  - pkg/graph for the file resource that carries the rendered content
*/
package render
