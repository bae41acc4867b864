package mechanism

import (
	"minichem/internal/chemdb"
)

// Set bundles the reference tables the table-backed mechanisms and
// restrictions consult.
type Set struct {
	db     *chemdb.DB
	acids  *chemdb.AcidsTable
	bases  *chemdb.BasesTable
	series *chemdb.ActivitySeries
}

// NewSet derives the acid and base tables from the given database and
// pairs them with the built-in activity series.
func NewSet(db *chemdb.DB) (*Set, error) {
	acids, err := chemdb.NewAcidsTable()
	if err != nil {
		return nil, err
	}
	bases, err := chemdb.NewBasesTable(db)
	if err != nil {
		return nil, err
	}
	return &Set{
		db:     db,
		acids:  acids,
		bases:  bases,
		series: chemdb.NewActivitySeries(),
	}, nil
}

// DB returns the underlying solubility database.
func (s *Set) DB() *chemdb.DB { return s.db }

// Acids returns the acid compatibility table.
func (s *Set) Acids() *chemdb.AcidsTable { return s.acids }

// Bases returns the base compatibility table.
func (s *Set) Bases() *chemdb.BasesTable { return s.bases }

// Series returns the metal activity series.
func (s *Set) Series() *chemdb.ActivitySeries { return s.series }
