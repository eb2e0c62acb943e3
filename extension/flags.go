// flags.go defines constants for CLI flag names shared across extensions.
//
// Naming convention: Flag<PascalCaseName> where name matches the kebab-case
// CLI flag.

package extension

// Flag name constants for CLI commands.
const (
	// Boolean flags

	FlagDiff   = "diff"    // Show diff output
	FlagDryRun = "dry-run" // Preview without changes
	FlagFailed = "failed"  // Only failed operations
	FlagForce  = "force"   // Skip confirmation prompts
	FlagLocal  = "local"   // Use local scope
	FlagLong   = "long"    // Long format output
	FlagRaw    = "raw"     // Raw output without rendering

	// String flags

	FlagSource = "source" // Filter by log source pattern

	// Duration flags

	FlagUnit = "unit" // Rounding or truncation unit

	// Integer flags

	FlagLimit = "limit" // Limit number of results
)
