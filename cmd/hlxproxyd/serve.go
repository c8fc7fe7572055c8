package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/openhlx/hlxproxyd/internal/audit"
	"github.com/openhlx/hlxproxyd/internal/config"
	"github.com/openhlx/hlxproxyd/internal/logging"
	"github.com/openhlx/hlxproxyd/pkg/proxy"
)

var serveFlags struct {
	listen    string
	connect   string
	timeoutMS int
	auditPath string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the proxy daemon",
	Long: `Run the proxy daemon: accept downstream client connections, maintain the
upstream device link, and translate every exchange through the in-memory
model (spec.md §1, §2).

Exits 0 on a clean shutdown (SIGINT/SIGTERM), non-zero on a configuration or
bind failure. A failed upstream connect does not end the process: the dial is
retried every 2 seconds.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.listen, "listen", "", "Downstream bind address (host:port)")
	serveCmd.Flags().StringVar(&serveFlags.connect, "connect", "", "Upstream device address (host:port)")
	serveCmd.Flags().IntVar(&serveFlags.timeoutMS, "timeout", 0, "Upstream exchange timeout in milliseconds")
	serveCmd.Flags().StringVar(&serveFlags.auditPath, "audit-log", "", "Path to the audit log file (disabled if empty)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(app.configPath)
	if err != nil {
		return err
	}
	logLevel := ""
	if app.logLevel != "" {
		logLevel = resolveLogLevel(app.logLevel)
	}
	cfg.ApplyFlags(serveFlags.listen, serveFlags.connect, serveFlags.timeoutMS, logLevel)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if serveFlags.auditPath != "" {
		auditLogger, err := audit.NewFileLogger(serveFlags.auditPath, audit.RotationConfig{
			MaxSize:    10 * 1024 * 1024,
			MaxBackups: 5,
		})
		if err != nil {
			logging.Log.WithError(err).Warn("could not initialize audit logging")
		} else {
			audit.SetDefaultLogger(auditLogger)
			defer auditLogger.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := proxy.New(cfg)
	logging.Log.WithField("listen", cfg.Listen).WithField("connect", cfg.Connect).Info("starting hlxproxyd")

	err = p.Run(ctx)
	if err != nil && ctx.Err() != nil {
		// Cancelled by signal: a clean shutdown, not a failure.
		logging.Log.Info("shutting down")
		return nil
	}
	return err
}
