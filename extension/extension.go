// Package extension provides the plugin architecture for dur. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, enabling modular feature development without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for dur extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared Context before their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Bootstrap is an optional interface for extensions with commands that
// must run before configuration is loaded. Commands returned by
// BootstrapCommands() do not trigger extension initialisation in
// PersistentPreRunE, so they keep working when the config file is
// malformed.
//
// Use cases:
// 1. Commands that load config themselves (config)
// 2. Static output (guide, llm, version)
type Bootstrap interface {
	BootstrapCommands() []string
}
