package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hostfleet/amforge/pkg/graph"
	"github.com/hostfleet/amforge/pkg/params"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Emit the desired-state resource plan for a host",
	Long: `Resolve a parameters file and print the ordered resource plan
handed to the reconciliation engine.

Examples:
  # Plan with platform defaults plus overrides from host.yaml
  amforge plan -f host.yaml

  # JSON output for tooling
  amforge plan -f host.yaml -o json

  # Write the plan to a file
  amforge plan -f host.yaml --out plan.yaml`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringP("file", "f", "", "Parameters file (required)")
	planCmd.Flags().StringP("output", "o", "yaml", "Output format: yaml or json")
	planCmd.Flags().String("out", "", "Write the plan to a file instead of stdout")
	_ = planCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("file")
	format, _ := cmd.Flags().GetString("output")
	outFile, _ := cmd.Flags().GetString("out")

	cfg, err := params.Load(filename)
	if err != nil {
		return err
	}

	plan, err := graph.Emit(cfg)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "yaml":
		data, err = yaml.Marshal(plan)
	case "json":
		data, err = json.MarshalIndent(plan, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode plan: %v", err)
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write plan: %v", err)
		}
		fmt.Printf("✓ Plan written: %s (%d resources)\n", outFile, len(plan.Resources))
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
