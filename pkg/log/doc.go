/*
Package log provides structured logging for amforge using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper functions
for common logging patterns. All logs carry timestamps and are written to
stderr so that stdout stays reserved for rendered artifacts (resource plans
and configuration files).

# Architecture

amforge's logging system provides structured logging with minimal overhead:

	┌──────────────────── LOGGING SYSTEM ──────────────────────┐
	│                                                           │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Global Logger                    │          │
	│  │  - Zerolog instance                         │          │
	│  │  - Initialized via log.Init()               │          │
	│  │  - Thread-safe for concurrent use           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                     │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           Configuration                     │          │
	│  │  - Level: debug/info/warn/error             │          │
	│  │  - Format: JSON or console (human)          │          │
	│  │  - Output: stderr, file, or custom writer   │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                     │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │         Component Loggers                   │          │
	│  │  - WithComponent("graph")                   │          │
	│  │  - WithResource("file", "/etc/am/am.yaml")  │          │
	│  │  - WithEvaluation("eval-abc123")            │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                     │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │            Log Output                       │          │
	│  │                                             │          │
	│  │  JSON Format:                               │          │
	│  │  {                                          │          │
	│  │    "level": "info",                         │          │
	│  │    "component": "graph",                    │          │
	│  │    "time": "2026-08-30T10:30:00Z",          │          │
	│  │    "message": "plan emitted"                │          │
	│  │  }                                          │          │
	│  │                                             │          │
	│  │  Console Format:                            │          │
	│  │  10:30AM INF plan emitted component=graph   │          │
	│  └────────────────────────────────────────────┘          │
	└──────────────────────────────────────────────────────────┘

# Core Components

Global Logger:
  - Package-level zerolog.Logger instance
  - Initialized once via log.Init() from the CLI entry point
  - Accessible from all amforge packages
  - Thread-safe concurrent writes

Log Levels:
  - Debug: Detailed evaluation tracing (defaults applied, fields resolved)
  - Info: General informational messages
  - Warn: Warning messages (potential issues)
  - Error: Error messages (operation failed)
  - Fatal: Critical errors (process exits)

Configuration:
  - Level: Filter messages below threshold
  - JSONOutput: JSON vs human-readable console
  - Output: io.Writer for log destination (stderr by default)

Context Loggers:
  - WithComponent: Add component name to all logs
  - WithResource: Add resource kind and name context
  - WithEvaluation: Add evaluation ID context

# Usage

Initializing the logger:

	import "github.com/hostfleet/amforge/pkg/log"

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: false,
	})

Component logger:

	logger := log.WithComponent("release")
	logger.Debug().
		Str("version", cfg.Version).
		Str("url", url).
		Msg("download URL resolved")

Helper functions:

	log.Info("configuration validated")
	log.Errorf("failed to load parameters", err)

# Design Patterns

Stderr Separation:
  - stdout is the artifact channel (plan YAML, rendered config)
  - stderr is the diagnostic channel (all logs)
  - Piping `amforge render` into a file never captures log noise

Child Loggers:
  - Context fields attached once, included in every message
  - Cheap to create, no allocation until a message is written

# See Also

  - pkg/graph for plan emission logging
  - pkg/params for validation logging
  - zerolog documentation: https://github.com/rs/zerolog
*/
package log
