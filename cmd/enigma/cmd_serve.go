package main

import (
	"context"

	"github.com/spf13/cobra"

	"enigma/internal/logging"
	mcpserver "enigma/internal/mcp"
)

var serveFlags struct {
	trace bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio",
	Long: `Starts a Model Context Protocol server over stdin/stdout. Clients open a
machine session with configure_machine and cypher text with it; rotor
positions persist across calls until close_session.

The server exits when its parent process goes away.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveFlags.trace, "trace", false, "Log every substitution and rotor step (at info level)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	var opts []mcpserver.Option
	if serveFlags.trace {
		opts = append(opts, mcpserver.WithTrace())
	}
	srv := mcpserver.NewServer(version, opts...)
	defer srv.Shutdown()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting enigma MCP server over stdio")
	return srv.Run(ctx)
}
