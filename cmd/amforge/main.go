package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostfleet/amforge/pkg/log"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "amforge",
	Short: "amforge - Alertmanager host provisioning resolver",
	Long: `amforge resolves Alertmanager host parameters into declarative
desired-state plans: it fetches platform defaults, validates operator
overrides, renders the alertmanager.yml configuration, and emits the
ordered resource graph (directories, config file, service declarations,
daemon install) consumed by a reconciliation engine.

amforge never mutates the host itself; it only describes desired state.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")

		log.Init(log.Config{
			Level:      log.Level(level),
			JSONOutput: jsonLogs,
		})
	},
}

func init() {
	// Set version template
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"amforge version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON instead of console format")
}
