package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hostfleet/amforge/pkg/params"
	"github.com/hostfleet/amforge/pkg/render"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the alertmanager.yml configuration",
	Long: `Resolve a parameters file and print the rendered Alertmanager
configuration document.

Examples:
  # Render to stdout
  amforge render -f host.yaml

  # Render and check against the upstream configuration loader
  amforge render -f host.yaml --verify

  # Write the configuration to a file
  amforge render -f host.yaml --out alertmanager.yaml`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringP("file", "f", "", "Parameters file (required)")
	renderCmd.Flags().Bool("verify", false, "Validate the output with the upstream Alertmanager loader")
	renderCmd.Flags().String("out", "", "Write the configuration to a file instead of stdout")
	_ = renderCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("file")
	verify, _ := cmd.Flags().GetBool("verify")
	outFile, _ := cmd.Flags().GetString("out")

	cfg, err := params.Load(filename)
	if err != nil {
		return err
	}

	data, err := render.Config(cfg)
	if err != nil {
		return err
	}

	if verify {
		if err := render.Verify(data); err != nil {
			return err
		}
	}

	if outFile != "" {
		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write configuration: %v", err)
		}
		fmt.Printf("✓ Configuration written: %s\n", outFile)
		return nil
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
