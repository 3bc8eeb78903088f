package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostfleet/amforge/pkg/params"
	"github.com/hostfleet/amforge/pkg/release"
)

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the resolved release download URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		filename, _ := cmd.Flags().GetString("file")

		cfg, err := params.Load(filename)
		if err != nil {
			return err
		}

		url, err := release.URL(cfg)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}

func init() {
	urlCmd.Flags().StringP("file", "f", "", "Parameters file (required)")
	_ = urlCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(urlCmd)
}
