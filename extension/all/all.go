// Package all imports all built-in dur extensions.
// Import this package to register all built-in commands.
package all

import (
	// Each extension registers itself via init().
	_ "github.com/jpl-au/dur/extension/convert"
	_ "github.com/jpl-au/dur/extension/core"
)
