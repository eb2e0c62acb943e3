// mcp_args.go provides helpers for MCP tool parameter extraction.
//
// Scalar extraction is permissive: optional parameters fall back to a
// default when missing or of the wrong JSON type, so an LLM omitting one
// does not get a type error back. Array extraction is strict: every element
// must have the expected type.

package extension

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// ErrInvalidArgument is returned when a strict parameter has the wrong
// JSON type.
var ErrInvalidArgument = errors.New("invalid argument")

func arguments(req mcp.CallToolRequest) map[string]any {
	args, _ := req.Params.Arguments.(map[string]any)
	return args
}

// StringArg extracts a string parameter, returning def if it is missing.
//
// Integral JSON numbers are accepted and formatted in base 10, so a client
// sending {"nanoseconds": 1500} works the same as {"nanoseconds": "1500"}.
func StringArg(req mcp.CallToolRequest, name, def string) string {
	switch v := arguments(req)[name].(type) {
	case string:
		return v
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<63 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return def
	}
}

// StringsArg extracts a string array parameter. Returns nil when the
// parameter is absent or null. A non-array value or a non-string element
// is an ErrInvalidArgument naming the offending index.
func StringsArg(req mcp.CallToolRequest, name string) ([]string, error) {
	raw := arguments(req)[name]
	if raw == nil {
		return nil, nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be an array of strings, got %s", ErrInvalidArgument, name, jsonType(raw))
	}
	result := make([]string, 0, len(arr))
	for i, v := range arr {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] must be a string, got %s", ErrInvalidArgument, name, i, jsonType(v))
		}
		result = append(result, s)
	}
	return result, nil
}

// jsonType names the JSON type of a decoded value.
func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// BoolArg extracts a boolean parameter, returning def if it is missing or
// not a JSON boolean.
func BoolArg(req mcp.CallToolRequest, name string, def bool) bool {
	if v, ok := arguments(req)[name].(bool); ok {
		return v
	}
	return def
}

// IntArg extracts an integer parameter. JSON numbers decode as float64.
func IntArg(req mcp.CallToolRequest, name string, def int) int {
	if v, ok := arguments(req)[name].(float64); ok {
		return int(v)
	}
	return def
}

// JSONResult serialises v as indented JSON in an MCP text result.
// Marshalling failures become MCP error results.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
