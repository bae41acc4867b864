package chemdb

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store persists user-defined substances in SQLite. It is an overlay:
// its rows are merged into a DB after the built-in data, so they can
// add substances but never override them.
type Store struct {
	db *sql.DB
}

// OpenStore creates or opens the overlay database at the given path.
// WAL mode allows concurrent reads; the connection pool is capped at
// one because SQLite supports a single writer.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open overlay database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to overlay database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply overlay schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add inserts a user substance. Adding the same cation/anion pair
// twice updates its solubility.
func (s *Store) Add(ctx context.Context, r Record) error {
	if !r.Solubility.Valid() {
		return fmt.Errorf("chemdb: unknown solubility marker %q", r.Solubility)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO substances (id, cation, cation_charge, anion, anion_charge, solubility)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (cation, cation_charge, anion, anion_charge)
		DO UPDATE SET solubility = excluded.solubility`,
		uuid.NewString(), r.Cation, r.CationCharge, r.Anion, r.AnionCharge, string(r.Solubility),
	)
	if err != nil {
		return fmt.Errorf("add substance: %w", err)
	}
	return nil
}

// Remove deletes a user substance by its cation/anion pair.
func (s *Store) Remove(ctx context.Context, cation string, cationCharge int, anion string, anionCharge int) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM substances
		WHERE cation = ? AND cation_charge = ? AND anion = ? AND anion_charge = ?`,
		cation, cationCharge, anion, anionCharge,
	)
	if err != nil {
		return fmt.Errorf("remove substance: %w", err)
	}
	return nil
}

// Records returns all user substances in insertion order.
func (s *Store) Records(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT cation, cation_charge, anion, anion_charge, solubility
		FROM substances ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list substances: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var sol string
		if err := rows.Scan(&r.Cation, &r.CationCharge, &r.Anion, &r.AnionCharge, &sol); err != nil {
			return nil, fmt.Errorf("scan substance: %w", err)
		}
		r.Solubility = Solubility(sol)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate substances: %w", err)
	}
	return out, nil
}

// NewWithStore builds the reference DB with the overlay applied.
func NewWithStore(ctx context.Context, store *Store) (*DB, error) {
	db, err := New()
	if err != nil {
		return nil, err
	}
	records, err := store.Records(ctx)
	if err != nil {
		return nil, err
	}
	db.Merge(records)
	return db, nil
}
