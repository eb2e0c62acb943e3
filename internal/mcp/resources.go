// resources.go implements MCP resources: the unit table and guide pages.
//
// Resources give clients read-only context without a tool call. Guide URIs
// follow dur://guide/{topic}; dur://guide alone is the index page.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jpl-au/dur/duration"
	"github.com/jpl-au/dur/guide"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	unitsURI    = "dur://units"
	guidePrefix = "dur://guide"
)

// ErrInvalidURI indicates a malformed resource URI.
var ErrInvalidURI = errors.New("invalid URI")

// unit is the JSON shape of one row of the units resource.
type unit struct {
	Name        string `json:"name"`
	Nanoseconds int64  `json:"nanoseconds"`
}

func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResource(
		mcp.NewResource(unitsURI, "Units",
			mcp.WithResourceDescription("Unit suffixes accepted in durations and their value in nanoseconds"),
			mcp.WithMIMEType("application/json"),
		),
		h.readUnits,
	)

	s.AddResource(
		mcp.NewResource(guidePrefix, "Guide",
			mcp.WithResourceDescription("The dur usage guide"),
			mcp.WithMIMEType("text/markdown"),
		),
		h.readGuide,
	)

	s.AddResourceTemplate(
		mcp.NewResourceTemplate(guidePrefix+"/{topic}", "Guide Topic",
			mcp.WithTemplateDescription("Detailed guide for one command or topic"),
			mcp.WithTemplateMIMEType("text/markdown"),
		),
		h.readGuide,
	)
}

func (h *handlers) readUnits(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	units := duration.Units()
	rows := make([]unit, len(units))
	for i, u := range units {
		rows[i] = unit{Name: u.Name, Nanoseconds: int64(u.Value)}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) readGuide(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	topic, err := parseGuideURI(req.Params.URI)
	if err != nil {
		return nil, err
	}
	content, err := guide.Get(topic)
	if err != nil {
		return nil, fmt.Errorf("guide %q: %w", topic, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseGuideURI extracts the topic from dur://guide or dur://guide/{topic}.
func parseGuideURI(uri string) (string, error) {
	rest, ok := strings.CutPrefix(uri, guidePrefix)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	if rest == "" || rest == "/" {
		return "", nil
	}
	topic, ok := strings.CutPrefix(rest, "/")
	if !ok || strings.Contains(topic, "/") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}
	return topic, nil
}
