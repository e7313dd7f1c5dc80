package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/leapcalc/internal/mcpserver"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve calculators to MCP clients",
		Long: `Serve calculator tools over the Model Context Protocol.

By default the server speaks MCP over stdin/stdout. With --http it listens
for streamable HTTP clients instead. Each client session gets its own
calculator.

Tools: press, display, state, clear.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, version)
		},
	}

	cmd.Flags().String("http", "", "Listen address for streamable HTTP (e.g. :8080)")

	return cmd
}

func runServe(cmd *cobra.Command, version string) error {
	cmdCtx := NewCommandContext(cmd)
	srv := mcpserver.New(version, cmdCtx.Cfg.EngineConfig(cmdCtx.Logger))

	addr := cmdCtx.Cfg.GetServeConfig().HTTP
	if addr == "" {
		return srv.ServeStdio()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ServeHTTP(ctx, addr)
}
