// Package dataset loads a delimited text file into an immutable in-memory
// table and serves it for the lifetime of the process.
package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"
)

// SourceNotFoundError indicates the dataset file does not exist.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("dataset file not found at %s", e.Path)
}

// ParseError indicates the dataset file could not be parsed as delimited text.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse dataset file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the file at path from the source and parses it into a Table.
// The first line is the header; every row must have the same number of
// fields as the header. Cell types are inferred once per column.
func Load(source Source, path string) (*Table, error) {
	rc, err := source.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &SourceNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to open dataset file %s: %w", path, err)
	}
	defer rc.Close()

	br := bufio.NewReader(rc)
	// Skip a UTF-8 BOM if present.
	if r, _, err := br.ReadRune(); err == nil && r != '\uFEFF' {
		if err := br.UnreadRune(); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	reader := csv.NewReader(br)
	header, err := reader.Read()
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}
	seen := map[string]bool{}
	for _, name := range columns {
		if seen[name] {
			return nil, &ParseError{Path: path, Err: fmt.Errorf("duplicate column name %q", name)}
		}
		seen[name] = true
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	kinds := make([]Kind, len(columns))
	cells := make([]string, len(records))
	for col := range columns {
		for i, record := range records {
			cells[i] = record[col]
		}
		kinds[col] = inferKind(cells)
	}

	rows := make([]Row, len(records))
	for i, record := range records {
		row := make(Row, len(columns))
		for col, name := range columns {
			row[name] = coerce(record[col], kinds[col])
		}
		rows[i] = row
	}

	return &Table{Columns: columns, Kinds: kinds, Rows: rows}, nil
}

// Store resolves the table exactly once. The first call to Table performs
// the load; every later call returns the same result without touching the
// source again, so concurrent first accesses cannot double-read.
type Store struct {
	source Source
	path   string

	once  sync.Once
	table *Table
	err   error
}

// NewStore creates a store for the file at path on the given source.
func NewStore(source Source, path string) *Store {
	return &Store{source: source, path: path}
}

// Table returns the loaded table, loading it on first use.
func (s *Store) Table() (*Table, error) {
	s.once.Do(func() {
		s.table, s.err = Load(s.source, s.path)
	})
	return s.table, s.err
}

// Path returns the dataset file path this store serves.
func (s *Store) Path() string { return s.path }
