package cli

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	mcpadapter "github.com/bewertigo/bewertigo/internal/adapters/inbound/mcp"
	"github.com/bewertigo/bewertigo/internal/observability"
)

func newMCPCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the bewertigo MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(s))
	return cmd
}

func newMCPServeCmd(s *settings) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start bewertigo MCP server (stdio)",
		Long:  "Start the bewertigo MCP server using stdio transport. This lets AI assistants run audits, look up benchmarks and read the scoring weights.",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := observability.ParseLevel(logLevel)
			if s.verbose() {
				level = zapcore.DebugLevel
			}
			logger := observability.NewServerLogger(os.Stderr, level)
			defer func() { _ = logger.Sync() }()

			logger.Info("starting mcp server", zap.String("config_dir", s.configDir()))
			srv := mcpadapter.NewBewertigoMCPServer(s.configDir(), logger)
			return server.ServeStdio(srv)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level for stderr output (debug, info, warn, error)")

	return cmd
}
