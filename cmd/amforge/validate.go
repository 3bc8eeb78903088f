package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostfleet/amforge/pkg/params"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a parameters file without emitting anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		filename, _ := cmd.Flags().GetString("file")

		cfg, err := params.Load(filename)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Parameters valid: %s (version %s, %s/%s)\n",
			filename, cfg.Version, cfg.OS, cfg.Arch)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringP("file", "f", "", "Parameters file (required)")
	_ = validateCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(validateCmd)
}
