// Package validate provides input validation for dur's command surfaces.
//
// The duration package accepts any string and reports grammar errors itself.
// This package sits in front of it and rejects input that should never reach
// the parser: empty strings, null bytes and oversized payloads arriving over
// stdin or MCP. Each function returns nil on success or an error wrapping one
// of the sentinels in errors.go, so callers can use errors.Is:
//
//	if errors.Is(err, validate.ErrInputTooLong) {
//	    // handle oversized input
//	}
package validate
