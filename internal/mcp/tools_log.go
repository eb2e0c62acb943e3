// tools_log.go implements the dur_log tool, the MCP view of "dur log".

package mcp

import (
	"context"

	"github.com/jpl-au/dur/extension"
	"github.com/jpl-au/dur/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// logEntry is the JSON shape of one audit entry returned to the client.
type logEntry struct {
	Start       int64  `json:"start"`
	Source      string `json:"source"`
	Action      string `json:"action"`
	Input       string `json:"input,omitempty"`
	Output      string `json:"output,omitempty"`
	Nanoseconds *int64 `json:"nanoseconds,omitempty"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
}

// getLog handles dur_log tool calls. Reading the log is not itself logged.
func (h *handlers) getLog(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	f := log.Filter{
		Limit:  extension.IntArg(req, "limit", log.DefaultLimit),
		Source: extension.StringArg(req, "source", ""),
		Failed: extension.BoolArg(req, "failed", false),
	}
	if f.Limit <= 0 {
		return mcp.NewToolResultError("limit must be positive"), nil
	}

	entries, err := log.Query(f)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := make([]logEntry, 0, len(entries))
	for _, e := range entries {
		j := logEntry{
			Start:   e.Start,
			Source:  e.Source,
			Action:  e.Action,
			Input:   e.Input,
			Output:  e.Output,
			Success: e.Success,
			Error:   e.Error,
		}
		if e.Value != nil {
			ns := e.Value.Nanoseconds()
			j.Nanoseconds = &ns
		}
		out = append(out, j)
	}
	return extension.JSONResult(out)
}
