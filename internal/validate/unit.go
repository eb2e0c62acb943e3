// unit.go implements validation of rounding and truncation units.

package validate

import (
	"fmt"

	"github.com/jpl-au/dur/duration"
)

// Unit rejects non-positive rounding units.
//
// duration.Round and duration.Truncate return their input unchanged for
// m <= 0, which is never what a user asking to round means. Library callers
// keep that behaviour; the CLI and MCP surfaces reject it.
func Unit(m duration.Duration) error {
	if m <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidUnit, m)
	}
	return nil
}
