// mcp.go exposes the conversion operations as MCP tools.
//
// Tool failures are returned as MCP error results so the LLM sees the
// parser's message and can correct its input. Every call is audit-logged
// with author "mcp".

package convert

import (
	"context"
	"strings"

	"github.com/jpl-au/dur/duration"
	"github.com/jpl-au/dur/extension"
	"github.com/jpl-au/dur/internal/convert"
	"github.com/jpl-au/dur/internal/diff"
	"github.com/jpl-au/dur/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// MCPTools returns the conversion tools.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		{
			Tool: mcp.NewTool("dur_parse",
				mcp.WithDescription("Parse a duration such as 1h15m30.5s and return its value in every unit"),
				mcp.WithString("duration", mcp.Required(), mcp.Description("Duration text (units: ns, us, µs, ms, s, m, h)")),
			),
			Handler: parseTool,
		},
		{
			Tool: mcp.NewTool("dur_format",
				mcp.WithDescription("Format an integer nanosecond count as a canonical duration"),
				mcp.WithString("nanoseconds", mcp.Required(), mcp.Description("Integer nanoseconds; pass as a string to keep full int64 precision")),
			),
			Handler: formatTool,
		},
		{
			Tool: mcp.NewTool("dur_round",
				mcp.WithDescription("Round a duration to the nearest multiple of a unit, halves away from zero"),
				mcp.WithString("duration", mcp.Required(), mcp.Description("Duration to round")),
				mcp.WithString("unit", mcp.Description("Positive rounding unit such as 1s or 15m (default from config)")),
			),
			Handler: roundTool,
		},
		{
			Tool: mcp.NewTool("dur_truncate",
				mcp.WithDescription("Truncate a duration toward zero to a multiple of a unit"),
				mcp.WithString("duration", mcp.Required(), mcp.Description("Duration to truncate")),
				mcp.WithString("unit", mcp.Description("Positive truncation unit such as 1s or 1h (default from config)")),
			),
			Handler: truncateTool,
		},
		{
			Tool: mcp.NewTool("dur_canon",
				mcp.WithDescription("Rewrite a duration in canonical form and show what changed"),
				mcp.WithString("duration", mcp.Required(), mcp.Description("Duration text")),
			),
			Handler: canonTool,
		},
		{
			Tool: mcp.NewTool("dur_sum",
				mcp.WithDescription("Add durations together (int64 arithmetic, overflow wraps)"),
				mcp.WithArray("durations", mcp.Required(), mcp.Description("Durations to add"), mcp.WithStringItems()),
			),
			Handler: sumTool,
		},
	}
}

func parseTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := extension.StringArg(req, "duration", "")
	r, err := extCtx.Converter().Parse(in)
	return result("dur_parse", "parse", in, r, err)
}

func formatTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := extension.StringArg(req, "nanoseconds", "")
	r, err := extCtx.Converter().Format(in)
	return result("dur_format", "format", in, r, err)
}

func roundTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return rounding(req, "dur_round", "round", extCtx.Config().RoundUnit(), extCtx.Converter().Round)
}

func truncateTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return rounding(req, "dur_truncate", "truncate", extCtx.Config().TruncateUnit(), extCtx.Converter().Truncate)
}

func rounding(req mcp.CallToolRequest, tool, action string, def duration.Duration,
	fn func(string, duration.Duration) (convert.Result, error)) (*mcp.CallToolResult, error) {
	in := extension.StringArg(req, "duration", "")
	unit := def
	if s := extension.StringArg(req, "unit", ""); s != "" {
		u, err := duration.Parse(s)
		if err != nil {
			log.Event("mcp:"+tool, action).Author("mcp").Input(in).Detail("unit", s).Write(err)
			return mcp.NewToolResultError("unit " + duration.Quote(s) + ": " + err.Error()), nil
		}
		unit = u
	}
	r, err := fn(in, unit)
	b := log.Event("mcp:"+tool, action).Author("mcp").Input(in).Detail("unit", unit.String())
	if err != nil {
		b.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	b.Output(r.Canonical()).Value(r.Duration).Write(nil)
	return extension.JSONResult(r)
}

func canonTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := extension.StringArg(req, "duration", "")
	r, err := extCtx.Converter().Canon(in)
	b := log.Event("mcp:dur_canon", "canon").Author("mcp").Input(in)
	if err != nil {
		b.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	b.Output(r.Canonical()).Value(r.Duration).Write(nil)
	return extension.JSONResult(canonJSON{
		Input:     r.Input,
		Canonical: r.Canonical(),
		Changed:   r.Changed(),
		Diff:      diff.Compute(r.Input, r.Canonical(), "input", "canonical").Diff,
	})
}

func sumTool(_ context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in, err := extension.StringsArg(req, "durations")
	if err != nil {
		log.Event("mcp:dur_sum", "sum").Author("mcp").Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	r, err := extCtx.Converter().Sum(in)
	return result("dur_sum", "sum", strings.Join(in, " "), r, err)
}

// result logs a single-result tool call and converts it to an MCP result.
func result(tool, action, in string, r convert.Result, err error) (*mcp.CallToolResult, error) {
	b := log.Event("mcp:"+tool, action).Author("mcp").Input(in)
	if err != nil {
		b.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	b.Output(r.Canonical()).Value(r.Duration).Write(nil)
	return extension.JSONResult(r)
}
