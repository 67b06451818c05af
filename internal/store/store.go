// Package store handles SQLite persistence for children and measurements.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hungknow/community-nutriition-interface/internal/growth"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Child is a stored child profile.
type Child struct {
	ID          int64
	Name        string
	Sex         growth.Sex
	DateOfBirth time.Time
}

// Measurement is one stored observation with its evaluated band. The status
// is persisted as the stable status string and parsed back on load.
type Measurement struct {
	ID         int64
	ChildID    int64
	Kind       growth.Kind
	Value      float64
	LengthCm   float64
	MeasuredAt time.Time
	Status     growth.Status
}

// HistoryFilter narrows measurement listing.
type HistoryFilter struct {
	Kind  *growth.Kind
	Since *time.Time
	Last  int
}

// Store wraps SQLite access for measurement history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS children (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			sex TEXT NOT NULL,
			date_of_birth TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS measurements (
			id INTEGER PRIMARY KEY,
			child_id INTEGER NOT NULL REFERENCES children(id),
			kind TEXT NOT NULL,
			value REAL NOT NULL,
			length_cm REAL NOT NULL DEFAULT 0,
			measured_at TEXT NOT NULL,
			status TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_measurements_child ON measurements(child_id, measured_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AddChild stores a child profile and returns its id.
func (s *Store) AddChild(ctx context.Context, child Child) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO children (name, sex, date_of_birth) VALUES (?, ?, ?)`,
		child.Name,
		child.Sex.String(),
		child.DateOfBirth.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetChildByName looks a child up by its unique name.
func (s *Store) GetChildByName(ctx context.Context, name string) (Child, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, sex, date_of_birth FROM children WHERE name = ?`, name)
	return scanChild(row)
}

// ListChildren returns all stored children ordered by name.
func (s *Store) ListChildren(ctx context.Context) ([]Child, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, sex, date_of_birth FROM children ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var children []Child
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return children, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChild(row rowScanner) (Child, error) {
	var child Child
	var sexStr, dobStr string
	if err := row.Scan(&child.ID, &child.Name, &sexStr, &dobStr); err != nil {
		return Child{}, err
	}
	sex, err := growth.ParseSex(sexStr)
	if err != nil {
		return Child{}, err
	}
	dob, err := time.Parse(time.RFC3339Nano, dobStr)
	if err != nil {
		return Child{}, err
	}
	child.Sex = sex
	child.DateOfBirth = dob
	return child, nil
}

// InsertMeasurement stores an evaluated measurement for a child.
func (s *Store) InsertMeasurement(ctx context.Context, m Measurement) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO measurements (child_id, kind, value, length_cm, measured_at, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		m.ChildID,
		m.Kind.String(),
		m.Value,
		m.LengthCm,
		m.MeasuredAt.Format(time.RFC3339Nano),
		m.Status.String(),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListMeasurements returns a child's measurements, oldest first.
func (s *Store) ListMeasurements(ctx context.Context, childID int64, filter HistoryFilter) ([]Measurement, error) {
	clauses := []string{"child_id = ?"}
	args := []any{childID}
	if filter.Kind != nil {
		clauses = append(clauses, "kind = ?")
		args = append(args, filter.Kind.String())
	}
	if filter.Since != nil {
		clauses = append(clauses, "measured_at >= ?")
		args = append(args, filter.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, child_id, kind, value, length_cm, measured_at, status
		FROM measurements
		WHERE %s
		ORDER BY measured_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var measurements []Measurement
	for rows.Next() {
		var m Measurement
		var kindStr, atStr, statusStr string
		if err := rows.Scan(&m.ID, &m.ChildID, &kindStr, &m.Value, &m.LengthCm, &atStr, &statusStr); err != nil {
			return nil, err
		}
		kind, err := growth.ParseKind(kindStr)
		if err != nil {
			return nil, err
		}
		at, err := time.Parse(time.RFC3339Nano, atStr)
		if err != nil {
			return nil, err
		}
		status, err := growth.ParseStatus(statusStr)
		if err != nil {
			return nil, err
		}
		m.Kind = kind
		m.MeasuredAt = at
		m.Status = status
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if filter.Last > 0 && len(measurements) > filter.Last {
		measurements = measurements[len(measurements)-filter.Last:]
	}
	return measurements, nil
}
