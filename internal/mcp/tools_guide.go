// tools_guide.go implements the dur_guide tool, giving LLMs the same pages
// as "dur guide".

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/dur/extension"
	"github.com/jpl-au/dur/guide"
	"github.com/jpl-au/dur/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide handles dur_guide tool calls.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := extension.StringArg(req, "topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:dur_guide", "guide").Author("mcp").Detail("topic", topic).Write(err)

	if err != nil {
		// Unknown topic: hand back the list so the caller can retry.
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return extension.JSONResult(map[string]any{
			"error":            fmt.Sprintf("guide %q not found", topic),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}
