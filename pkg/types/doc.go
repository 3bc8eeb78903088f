/*
Package types defines the core data structures used throughout amforge.

This package contains the fundamental types that represent amforge's domain
model: the resolved Config record for one host evaluation, the Resource
descriptors that make up a desired-state plan, and the Plan envelope handed to
the external reconciliation engine. These types are used by all other packages
for resolution, validation, rendering, and emission.

# Architecture

The types package is the foundation of amforge's data model. It defines:

  - Config: the fully resolved parameter record (identity, filesystem,
    runtime identity, service control, alerting passthrough)
  - Resource: one tagged desired-state declaration (directory, file,
    service, install)
  - Plan: an ordered, dependency-annotated resource graph
  - Enumerations: InstallMethod, ServiceState, InitStyle, ResourceKind

All types are designed to be:
  - Serializable (YAML for the engine hand-off, JSON for tooling)
  - Immutable after construction (each evaluation builds a fresh Config)
  - Self-documenting (clear field names and comments)
  - Validated (constants for enums, shape checks in pkg/params)

# Core Types

Config:
  - Built once per evaluation from defaults plus overrides
  - Never mutated; downstream packages only read it
  - Alerting sections (Global, Route, Receivers, InhibitRules) are kept as
    yaml.Node trees so operator-supplied structure passes through verbatim

Resource:
  - Tagged union: Kind selects which spec pointer is populated
  - DependsOn names other resources in the same plan
  - Serializes with snake_case keys for the engine contract

Plan:
  - UUID evaluation ID plus generation timestamp
  - Resources appear in dependency order; the engine may still topologically
    sort on DependsOn

# Immutability

Config has no setters and no update methods. A change of desired state is a
new evaluation: construct a new Config, emit a new Plan. This keeps the whole
pipeline a pure function from parameters to plan, which is what makes it
trivially testable.

# Usage

	cfg, err := params.Load("host.yaml")
	if err != nil {
		return err
	}

	plan, err := graph.Emit(cfg)
	if err != nil {
		return err
	}

	for _, res := range plan.Resources {
		fmt.Printf("%s %s (after %v)\n", res.Kind, res.Name, res.DependsOn)
	}

# See Also

  - pkg/params for construction and validation of Config
  - pkg/graph for Plan emission
  - pkg/render for the alerting passthrough sections
*/
package types
