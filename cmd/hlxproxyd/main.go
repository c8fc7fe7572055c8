// hlxproxyd - audio matrix proxy daemon
//
// Sits between a downstream set of control clients and a single upstream
// audio matrix device, translating and serializing every exchange through
// an in-memory model of the device's state (spec.md §1, §2).
//
// Noun-verb CLI pattern:
//
//	hlxproxyd serve --listen <addr> --connect <addr>
//	hlxproxyd config show
//	hlxproxyd version
//	hlxproxyd repl --connect <host>:<port>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openhlx/hlxproxyd/internal/logging"
)

// App holds state shared across subcommands.
type App struct {
	configPath string
	logLevel   string
}

var app = &App{}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "hlxproxyd",
	Short:         "Audio matrix proxy daemon",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if app.logLevel != "" {
			if err := logging.SetLevel(resolveLogLevel(app.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
		}
		return nil
	},
}

// syslogLevels maps spec.md §6's numeric --log-level 0..7 (syslog severity)
// onto logrus level names. A non-numeric value is passed straight through
// to logrus.ParseLevel, so "--log-level debug" also works.
var syslogLevels = map[string]string{
	"0": "panic",   // emerg
	"1": "fatal",   // alert
	"2": "fatal",   // crit
	"3": "error",   // err
	"4": "warning", // warning
	"5": "info",    // notice
	"6": "info",    // info
	"7": "debug",   // debug
}

func resolveLogLevel(s string) string {
	if name, ok := syslogLevels[s]; ok {
		return name
	}
	return s
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&app.configPath, "config", "c", "", "Path to YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "", "Log level (panic, fatal, error, warn, info, debug, trace)")

	rootCmd.AddCommand(serveCmd, configCmd, versionCmd, replCmd)
}
