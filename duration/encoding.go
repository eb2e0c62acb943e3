// encoding.go connects Duration to the encoders it is commonly stored with:
// text, JSON, YAML, command-line flags and SQL.
//
// Everything that writes text writes the canonical form, so a value always
// reads back unchanged. Readers that receive a bare integer (a JSON number,
// a YAML !!int, an SQL INTEGER) treat it as nanoseconds.

package duration

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Compile-time interface compliance.
var (
	_ encoding.TextMarshaler   = Duration(0)
	_ encoding.TextAppender    = Duration(0)
	_ encoding.TextUnmarshaler = (*Duration)(nil)
	_ json.Marshaler           = Duration(0)
	_ json.Unmarshaler         = (*Duration)(nil)
	_ yaml.Marshaler           = Duration(0)
	_ yaml.Unmarshaler         = (*Duration)(nil)
	_ pflag.Value              = (*Duration)(nil)
	_ sql.Scanner              = (*Duration)(nil)
	_ driver.Valuer            = Duration(0)
)

// AppendText appends the canonical form of d to b.
func (d Duration) AppendText(b []byte) ([]byte, error) {
	var arr [32]byte
	n := d.format(&arr)
	return append(b, arr[n:]...), nil
}

// MarshalText returns the canonical form of d.
func (d Duration) MarshalText() ([]byte, error) {
	return d.AppendText(nil)
}

// UnmarshalText parses text with Parse.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON encodes d as a JSON string in canonical form.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a JSON string (parsed with Parse) or a JSON integer
// (nanoseconds). null leaves d unchanged.
func (d *Duration) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return d.UnmarshalText([]byte(s))
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: json value %s is neither a string nor an integer", ErrInvalid, data)
	}
	*d = Duration(n)
	return nil
}

// MarshalYAML encodes d as a scalar in canonical form.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML accepts a scalar. Integers (tag !!int) are nanoseconds,
// anything else is parsed with Parse.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalid, value.Line)
	}
	if value.ShortTag() == "!!int" {
		n, err := strconv.ParseInt(value.Value, 0, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: %s", ErrInvalid, value.Line, Quote(value.Value))
		}
		*d = Duration(n)
		return nil
	}
	return d.UnmarshalText([]byte(value.Value))
}

// Set parses s into d. Together with String and Type it lets a *Duration be
// bound to a pflag (and so cobra) flag.
func (d *Duration) Set(s string) error {
	return d.UnmarshalText([]byte(s))
}

// Type names the flag value type in usage output.
func (d *Duration) Type() string { return "duration" }

// Value stores d as an INTEGER nanosecond count.
func (d Duration) Value() (driver.Value, error) {
	return int64(d), nil
}

// Scan reads an INTEGER nanosecond count, a TEXT duration, or NULL (zero).
func (d *Duration) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = 0
	case int64:
		*d = Duration(v)
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	default:
		return fmt.Errorf("duration: cannot scan %T", src)
	}
	return nil
}
