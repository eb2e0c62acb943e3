// Package mcp implements the Model Context Protocol server, exposing dur
// conversions to LLMs. Extensions contribute the conversion tools; the
// server adds guide, config and log tools plus read-only resources.
package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jpl-au/dur/extension"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is advertised to clients for capability negotiation.
const Version = "1.0.0"

// Serve runs the MCP server over stdio until ctx is cancelled, the client
// closes stdin, or the process receives SIGINT or SIGTERM.
func Serve(ctx context.Context, extCtx extension.Context) error {
	return serve(ctx, extCtx, os.Stdin, os.Stdout)
}

func serve(ctx context.Context, extCtx extension.Context, in io.Reader, out io.Writer) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := newServer(extCtx)
	slog.Info("dur MCP server ready", "version", Version, "transport", "stdio", "tools", len(s.ListTools()))

	err := server.NewStdioServer(s).Listen(ctx, in, out)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// handlers provides MCP request handlers with access to the shared context.
type handlers struct {
	ext extension.Context
}

// newServer builds the server with every extension tool registered.
// A nil extCtx is replaced by one built from empty configuration.
func newServer(extCtx extension.Context) *server.MCPServer {
	if extCtx == nil {
		extCtx = extension.NewContext(nil)
	}
	h := &handlers{ext: extCtx}

	s := server.NewMCPServer(
		"dur",
		Version,
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)
	return s
}

// registerTools exposes extension tools plus the server's own.
func registerTools(s *server.MCPServer, h *handlers) {
	for _, t := range extension.Tools() {
		s.AddTool(t.Tool, bind(t.Handler, h.ext))
	}

	s.AddTool(
		mcp.NewTool("dur_guide",
			mcp.WithDescription("Get help/guide content for dur commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'round', 'canon', 'config') or empty for index")),
		),
		h.getGuide,
	)

	s.AddTool(
		mcp.NewTool("dur_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (defaults.round, defaults.truncate, limits.max_input, ...) or empty for all")),
		),
		h.configGet,
	)

	s.AddTool(
		mcp.NewTool("dur_config_set",
			mcp.WithDescription("Set a configuration value. Takes effect for later tool calls in this session."),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key (defaults.round, defaults.truncate, limits.max_input, ...)")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
		),
		h.configSet,
	)

	s.AddTool(
		mcp.NewTool("dur_log",
			mcp.WithDescription("Recent audit log entries, newest first. Empty when logging is disabled."),
			mcp.WithNumber("limit", mcp.Description("Maximum entries (default 20)")),
			mcp.WithString("source", mcp.Description("Glob over the source, e.g. 'mcp:*' or 'convert:round'")),
			mcp.WithBoolean("failed", mcp.Description("Only failed operations")),
		),
		h.getLog,
	)
}

// bind adapts an extension handler to the server's handler signature.
func bind(fn extension.MCPHandler, extCtx extension.Context) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return fn(ctx, extCtx, req)
	}
}
