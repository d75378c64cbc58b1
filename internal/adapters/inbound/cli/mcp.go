package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/drewnoakes/validate-slnf/internal/adapters/inbound/mcp"
)

func newMCPCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the validate-slnf MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(e))
	return cmd
}

func newMCPServeCmd(e *env) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start validate-slnf MCP server (stdio)",
		Long:  "Start the validate-slnf MCP server using stdio transport. This allows AI coding assistants to validate solution filters in the current directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout carries the protocol, so diagnostics stay on stderr.
			logger := newLogger(cmd.ErrOrStderr(), logLevel)
			s, err := mcpadapter.NewValidateSlnfMCPServer(e.fs, e.workDir, logger)
			if err != nil {
				return err
			}
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Diagnostics level (debug, info, warn, error)")

	return cmd
}
