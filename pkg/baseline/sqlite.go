package baseline

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/cottonBuddha/SwiftLint/pkg/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS violations (
	fingerprint  TEXT PRIMARY KEY,
	rule_id      TEXT NOT NULL,
	rule_name    TEXT NOT NULL,
	message      TEXT NOT NULL,
	severity     TEXT NOT NULL,
	file_path    TEXT NOT NULL,
	offset_start INTEGER NOT NULL,
	offset_end   INTEGER NOT NULL,
	line         INTEGER NOT NULL,
	column       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_violations_file ON violations(file_path);
`

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed baseline store.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Add records a violation in the baseline.
func (s *SQLiteStore) Add(v *types.Violation) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO violations
		(fingerprint, rule_id, rule_name, message, severity, file_path, offset_start, offset_end, line, column)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		v.Fingerprint(),
		v.RuleID,
		v.RuleName,
		v.Message,
		string(v.Severity),
		v.FilePath,
		v.Location.Offset.Start,
		v.Location.Offset.End,
		v.Location.Source.Start.Line,
		v.Location.Source.Start.Column,
	)
	if err != nil {
		return fmt.Errorf("inserting violation: %w", err)
	}
	return nil
}

// Contains checks whether a fingerprint is in the baseline.
func (s *SQLiteStore) Contains(fingerprint string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM violations WHERE fingerprint = ?", fingerprint).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("querying baseline: %w", err)
	}
	return count > 0, nil
}

// All retrieves every baselined violation ordered by file and offset.
func (s *SQLiteStore) All() ([]*types.Violation, error) {
	rows, err := s.db.Query(`
		SELECT rule_id, rule_name, message, severity, file_path, offset_start, offset_end, line, column
		FROM violations
		ORDER BY file_path, offset_start
	`)
	if err != nil {
		return nil, fmt.Errorf("querying violations: %w", err)
	}
	defer rows.Close()

	var violations []*types.Violation
	for rows.Next() {
		var v types.Violation
		var severity string
		err := rows.Scan(
			&v.RuleID,
			&v.RuleName,
			&v.Message,
			&severity,
			&v.FilePath,
			&v.Location.Offset.Start,
			&v.Location.Offset.End,
			&v.Location.Source.Start.Line,
			&v.Location.Source.Start.Column,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning violation: %w", err)
		}
		v.Severity = types.Severity(severity)
		violations = append(violations, &v)
	}
	return violations, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
