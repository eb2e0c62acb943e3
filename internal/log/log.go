// Package log provides centralised audit logging for dur operations.
// Logs are stored in ~/.dur/log/dur-log.db (or under $DUR_HOME) and track
// CLI commands and MCP tool invocations across projects.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("convert:round", "round").
//		Author(cmd.Author()).
//		Input(s).
//		Output(r.Canonical()).
//		Value(r.Duration).
//		Detail("unit", unit.String()).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands or "mcp:{tool}" for MCP tools. Examples: "convert:parse",
// "core:config", "mcp:dur_round".
package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jpl-au/dur/duration"
	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source  string // e.g., "convert:parse", "mcp:dur_round"
	Author  string // who performed the action
	Action  string // verb: parse, format, round, sum, config, etc.
	Input   string // text supplied by the caller
	Output  string // canonical result text
	Value   *duration.Duration
	Session string // per-process id, filled in by the logger

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "convert:round")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:dur_round")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Author sets who performed the operation.
//
// For CLI commands, use cmd.Author() which returns the configured author.
// For MCP tools, use "mcp" as the author.
func (b *Builder) Author(author string) *Builder {
	b.entry.Author = author
	return b
}

// Input records the text the operation was given.
func (b *Builder) Input(s string) *Builder {
	b.entry.Input = s
	return b
}

// Output records the text the operation produced.
func (b *Builder) Output(s string) *Builder {
	b.entry.Output = s
	return b
}

// Value records the resulting duration. It is stored as integer
// nanoseconds so entries can be filtered and aggregated in SQL.
func (b *Builder) Value(d duration.Duration) *Builder {
	b.entry.Value = &d
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// rounding units, argument counts, config keys, etc.
// Can be called multiple times to add multiple details.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db, session: uuid.NewString()}
	return nil
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute path of the working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Session returns the id attached to entries written by this process, or
// "" when the logger is not open.
func Session() string {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return ""
	}
	return global.session
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// ErrClosed is returned by Prune when the logger is not open.
var ErrClosed = errors.New("audit log is not open")

// Filter narrows the entries returned by [Query].
type Filter struct {
	Limit  int    // maximum entries; <= 0 means DefaultLimit
	Source string // SQLite GLOB pattern, e.g. "mcp:*"
	Failed bool   // only failed operations
}

// Recent returns up to limit entries, newest first. Returns nil without
// error when the logger is not open.
func Recent(limit int) ([]Entry, error) {
	return Query(Filter{Limit: limit})
}

// Query returns entries matching f, newest first. Returns nil without
// error when the logger is not open.
func Query(f Filter) ([]Entry, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return nil, nil
	}
	return l.query(f)
}

// Prune removes entries that started more than age before now and
// returns how many were removed. With dryRun the entries are counted but
// kept.
func Prune(age duration.Duration, dryRun bool) (int64, error) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return 0, ErrClosed
	}
	cutoff := time.Now().Add(-age.Std()).Unix()
	return l.prune(cutoff, dryRun)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
