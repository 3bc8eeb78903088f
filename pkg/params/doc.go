/*
Package params loads and validates host parameter files.

A parameters file is a flat YAML mapping of overrides layered on top of the
platform defaults table:

	version: 0.5.1
	storage_path: /var/lib/alertmanager
	extra_options: "-log.level=debug"
	route:
	  group_by: [alertname]
	  receiver: Ops
	receivers:
	  - name: Ops
	    email_configs:
	      - to: ops@example.com

# Resolution

Resolution happens in two passes over the document:

 1. Pre-scan for os/arch, because the defaults table is keyed by platform
    and the baseline cannot be built before both are known.
 2. Field dispatch: every top-level key is matched against the known
    parameter table and its value decoded with an explicit shape check.

Unknown parameters are rejected, as are shape mismatches (a string where a
boolean belongs, a mapping where a sequence belongs). Errors name the
offending parameter and the YAML line. Validation is all-or-nothing: the
first failure aborts the evaluation and no partial Config escapes.

The alerting sections (global, route, receivers, inhibit_rules) are only
checked for kind, mapping or sequence. Their contents belong to the daemon's
schema, not to this tool, and pass through as yaml.Node trees.

# Derived Fields

config_file follows an overridden config_dir unless it is itself overridden,
and arch values are normalized to release-archive naming (x86_64 to amd64).
A null storage_path clears the default and disables persistent storage,
which in turn drops the storage directory resource and the -storage.path
launch flag.

# See Also

  - pkg/defaults for the baseline being overridden
  - pkg/types for the resolved Config record
*/
package params
