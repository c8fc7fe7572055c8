package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openhlx/hlxproxyd/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}
