// Package dataset loads soft membership matrices and writes trajectory
// results.
//
// Matrices are read from CSV (one cell per row, optional header) or JSON
// (an array of equally long numeric arrays). Results are written as JSON
// documents or as a per-cell CSV table.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmpty is returned for an input without data rows.
	ErrEmpty = errors.New("dataset: no data rows")

	// ErrRagged is returned when rows differ in length.
	ErrRagged = errors.New("dataset: rows have different lengths")

	// ErrBadValue is returned for a field that is not a finite number.
	ErrBadValue = errors.New("dataset: invalid numeric value")

	// ErrUnsupportedFormat is returned by LoadMatrix for unknown extensions.
	ErrUnsupportedFormat = errors.New("dataset: unsupported file format")
)

type readConfig struct {
	header bool
	comma  rune
}

// ReadOption configures ReadMatrix.
type ReadOption func(*readConfig)

// WithHeader skips the first CSV record.
func WithHeader() ReadOption {
	return func(c *readConfig) { c.header = true }
}

// WithComma sets the CSV field delimiter (default ',').
func WithComma(r rune) ReadOption {
	return func(c *readConfig) { c.comma = r }
}

// ReadMatrix parses a numeric CSV table into a cells × columns matrix.
func ReadMatrix(r io.Reader, opts ...ReadOption) (*mat.Dense, error) {
	cfg := readConfig{comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: reading CSV: %w", err)
	}
	if cfg.header && len(records) > 0 {
		records = records[1:]
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d column %d: %q", ErrBadValue, i, j, field)
			}
			row[j] = v
		}
		rows[i] = row
	}

	return fromRows(rows)
}

// ReadMatrixJSON parses a JSON array of numeric arrays.
func ReadMatrixJSON(r io.Reader) (*mat.Dense, error) {
	var rows [][]float64
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("dataset: parsing JSON: %w", err)
	}
	for i, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: row %d column %d", ErrBadValue, i, j)
			}
		}
	}

	return fromRows(rows)
}

// LoadMatrix reads path as CSV or JSON depending on its extension.
// CSV options apply to .csv and .tsv files only; .tsv implies a tab delimiter.
func LoadMatrix(path string, opts ...ReadOption) (*mat.Dense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: opening %s: %w", path, err)
	}
	defer file.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ReadMatrix(file, opts...)
	case ".tsv":
		return ReadMatrix(file, append(opts, WithComma('\t'))...)
	case ".json":
		return ReadMatrixJSON(file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// fromRows packs rectangular rows into a dense matrix.
func fromRows(rows [][]float64) (*mat.Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, i, len(row), cols)
		}
		data = append(data, row...)
	}

	return mat.NewDense(len(rows), cols, data), nil
}
