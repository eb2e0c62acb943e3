// log_storage.go implements SQLite-based persistent audit logging.
//
// The fluent API in log.go builds entries; this file persists and queries
// them. The project column holds a hash of the working directory so entries
// can be grouped per project without recording paths.
//
// Errors during writes are reported to stderr and otherwise ignored. A
// conversion must succeed even if it cannot be recorded.

package log

import (
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpl-au/dur/duration"
	"github.com/jpl-au/dur/internal/config"
	"golang.org/x/crypto/blake2b"
	_ "modernc.org/sqlite"
)

// DefaultLimit is the number of entries returned when no limit is given.
const DefaultLimit = 20

// Logger writes audit log entries to a SQLite database.
type Logger struct {
	db      *sql.DB
	project string
	session string
}

func (l *Logger) log(e Entry) {
	var detail *string
	if len(e.Detail) > 0 {
		if b, err := json.Marshal(e.Detail); err == nil {
			s := string(b)
			detail = &s
		}
	}

	success := 0
	if e.Success {
		success = 1
	}

	// A nil *duration.Duration is stored as NULL through its Valuer.
	_, err := l.db.Exec(`
		INSERT INTO log (start, end, project, session, source, author, action,
		                 input, output, value, success, error, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Start, e.End, l.project, l.session, e.Source, nilIfEmpty(e.Author), e.Action,
		nilIfEmpty(e.Input), nilIfEmpty(e.Output), e.Value,
		success, nilIfEmpty(e.Error), detail,
	)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "dur: audit log write failed: %v\n", err)
	}
}

func (l *Logger) query(f Filter) ([]Entry, error) {
	if f.Limit <= 0 {
		f.Limit = DefaultLimit
	}

	var (
		where []string
		args  []any
	)
	if f.Source != "" {
		where = append(where, "source GLOB ?")
		args = append(args, f.Source)
	}
	if f.Failed {
		where = append(where, "success = 0")
	}
	q := `SELECT start, end, session, source, author, action, input, output,
	             value, success, error, detail
	      FROM log`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id DESC LIMIT ?"
	args = append(args, f.Limit)

	rows, err := l.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("query log: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e                             Entry
			author, input, output, errMsg sql.NullString
			detail                        sql.NullString
			value                         sql.Null[duration.Duration]
			success                       int
		)
		if err := rows.Scan(&e.Start, &e.End, &e.Session, &e.Source, &author, &e.Action,
			&input, &output, &value, &success, &errMsg, &detail); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		e.Author = author.String
		e.Input = input.String
		e.Output = output.String
		e.Error = errMsg.String
		e.Success = success == 1
		if value.Valid {
			d := value.V
			e.Value = &d
		}
		if detail.Valid {
			_ = json.Unmarshal([]byte(detail.String), &e.Detail)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// prune deletes, or with dryRun counts, entries that started before cutoff.
func (l *Logger) prune(cutoff int64, dryRun bool) (int64, error) {
	if dryRun {
		var n int64
		err := l.db.QueryRow("SELECT COUNT(*) FROM log WHERE start < ?", cutoff).Scan(&n)
		if err != nil {
			return 0, fmt.Errorf("count log: %w", err)
		}
		return n, nil
	}
	res, err := l.db.Exec("DELETE FROM log WHERE start < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune log: %w", err)
	}
	return res.RowsAffected()
}

// dbPathFunc is the function that returns the database path.
// Tests can override this to use a temp directory.
var dbPathFunc = defaultDBPath

func defaultDBPath() string {
	home := config.Home()
	if home == "" {
		// Fall back to the working directory so logging still works in
		// environments without a home directory.
		return filepath.Join(config.Dir, "log", "dur-log.db")
	}
	return filepath.Join(home, "log", "dur-log.db")
}

func dbPath() string {
	return dbPathFunc()
}

// DBPath returns the path to the log database.
func DBPath() string {
	return dbPath()
}

// hash creates a project identifier from the directory path.
func hash(s string) string {
	h, err := blake2b.New(8, nil) // 64-bit = 16 hex chars
	if err != nil {
		panic("blake2b.New failed: " + err.Error())
	}
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

// migrate creates the log table if it doesn't exist.
func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS log (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			start   INTEGER NOT NULL,
			end     INTEGER NOT NULL,
			project TEXT NOT NULL,
			session TEXT NOT NULL,
			source  TEXT NOT NULL,
			author  TEXT,
			action  TEXT NOT NULL,
			input   TEXT,
			output  TEXT,
			value   INTEGER,
			success INTEGER NOT NULL,
			error   TEXT,
			detail  TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_log_start ON log(start);
		CREATE INDEX IF NOT EXISTS idx_log_project ON log(project);
		CREATE INDEX IF NOT EXISTS idx_log_source ON log(source);
	`)
	return err
}

// nilIfEmpty returns nil for empty strings so they are stored as NULL.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
