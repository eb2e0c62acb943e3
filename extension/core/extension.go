// Package core provides the core extension for dur.
// It registers commands: config, serve, guide, llm, log, version.
package core

import (
	"github.com/jpl-au/dur/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct {
	ctx extension.Context
}

// Compile-time interface compliance.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
	_ extension.Bootstrap     = (*Extension)(nil)
)

// Name returns "core".
func (e *Extension) Name() string { return "core" }

// Init keeps the shared context so serve can hand it to the MCP server.
func (e *Extension) Init(ctx extension.Context) error {
	e.ctx = ctx
	return nil
}

// Commands returns the core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		e.newServeCmd(),
		newGuideCmd(),
		newLlmCmd(),
		newLogCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil. The server registers its own guide and config
// tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// BootstrapCommands returns commands that must run without loading config.
// config loads it itself so a broken file can be repaired; the rest print
// static content or read the audit log.
func (e *Extension) BootstrapCommands() []string {
	return []string{"config", "guide", "llm", "log", "version"}
}
