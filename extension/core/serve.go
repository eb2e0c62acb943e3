// serve.go implements "dur serve".
//
// Unlike other commands, serve blocks, answering MCP requests over stdio
// until the client closes the stream.

package core

import (
	"github.com/jpl-au/dur/internal/mcp"
	"github.com/spf13/cobra"
)

func (e *Extension) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Every conversion command is exposed as a tool (dur_parse, dur_round, ...),
alongside dur_guide, dur_config_get and dur_config_set. Tool calls are
recorded in the audit log with author "mcp".`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return mcp.Serve(c.Context(), e.ctx)
		},
	}
}
