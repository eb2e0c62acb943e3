// errors.go defines the parser's error taxonomy.
//
// The set is closed: malformed input, a term without a unit, and a term with
// a unit the parser does not know. Callers use errors.Is against the sentinel
// values; UnknownUnitError additionally carries the offending suffix for
// errors.As.

package duration

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalid reports malformed syntax or a value outside the int64 range.
	ErrInvalid = errors.New("invalid duration")
	// ErrMissingUnit reports a term that has digits but no unit suffix.
	ErrMissingUnit = errors.New("missing unit in duration")
	// ErrUnknownUnit is the sentinel every *UnknownUnitError unwraps to.
	ErrUnknownUnit = errors.New("unknown unit")
)

// UnknownUnitError reports a term whose suffix is not in the unit table.
type UnknownUnitError struct {
	Unit string // suffix exactly as it appeared in the input
}

func (e *UnknownUnitError) Error() string {
	return "unknown unit " + Quote(e.Unit)
}

// Unwrap returns ErrUnknownUnit.
func (e *UnknownUnitError) Unwrap() error { return ErrUnknownUnit }

// Quote wraps s in double quotes for use in error messages.
//
// Printable ASCII is copied through, with '"' and '\' backslash-escaped.
// Every other character, including control characters and all non-ASCII
// runes, is written as \u{hex}. Invalid UTF-8 bytes are written as
// \u{fffd}.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		if r < utf8.RuneSelf && r >= ' ' && r != 0x7f {
			if r == '"' || r == '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
			continue
		}
		b.WriteString(`\u{`)
		b.WriteString(strconv.FormatInt(int64(r), 16))
		b.WriteByte('}')
	}
	b.WriteByte('"')
	return b.String()
}
