package main

import (
	"github.com/spf13/cobra"

	"github.com/openhlx/hlxproxyd/internal/config"
	"github.com/openhlx/hlxproxyd/internal/statuscli"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.configPath)
		if err != nil {
			return err
		}
		statuscli.PrintConfig(cfg)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
