/*
Package graph emits the desired-state resource plan for one host evaluation.

The emitter is the last stage of the resolution pipeline. It takes a resolved
Config, derives the download URL, the rendered configuration content, and the
launch options, and assembles the ordered list of resource declarations the
external reconciliation engine converges on.

# Architecture

	┌──────────────────── PLAN EMISSION ───────────────────────┐
	│                                                           │
	│   Config (pkg/params)                                     │
	│      │                                                    │
	│      ├──▶ release.URL     ── download URL                 │
	│      ├──▶ render.Config   ── alertmanager.yml content     │
	│      └──▶ launch.Options  ── daemon flags                 │
	│                  │                                        │
	│                  ▼                                        │
	│   ┌────────────────────────────────────────┐             │
	│   │ Candidate list (ordered, tagged)        │             │
	│   │  1. config-dir        (always)          │             │
	│   │  2. config-file       (always)          │             │
	│   │  3. stop-legacy-service (always)        │             │
	│   │  4. storage-dir       (storage set)     │             │
	│   │  5. install-alertmanager (always)       │             │
	│   └───────────────┬────────────────────────┘             │
	│                   ▼ filter on condition                   │
	│   Plan { ID, GeneratedAt, Resources }                     │
	└──────────────────────────────────────────────────────────┘

# Resource Semantics

config-dir:
  - Owned by the configured user/group
  - When purge_config_dir is set, the engine removes any file in the
    directory that this plan does not declare (drift correction)

config-file:
  - Content is the rendered alertmanager.yml
  - Depends on config-dir: created only after the directory exists

stop-legacy-service:
  - Unconditional stop of the pre-0.3.0 "alert_manager" unit
  - Migration shim for hosts upgraded across that release; emitted on every
    plan regardless of the configured version

storage-dir:
  - Only when storage_path is set; fixed 0755 mode

install-alertmanager:
  - Parameterizes the external daemon installer (fetch/extract or package
    install, user/group creation, service wiring)
  - Carries a notify reference to the managed service only when
    restart_on_change is set; without it, config changes are reconciled on
    disk but the daemon keeps running untouched

# Purity

Emit never touches the host. It is a pure function from Config to Plan; all
filesystem, package, and service mutation belongs to the reconciliation
engine consuming the plan. That is also why there is no retry or rollback
here: a failed resolution produces no plan at all.

# See Also

  - pkg/types for the Resource and Plan shapes
  - pkg/release, pkg/render, pkg/launch for the derived values
*/
package graph
