package communes

import (
	"fmt"

	"github.com/alpstat/swissdata/errors"
	"github.com/alpstat/swissdata/internal/tsv"
)

// Dataset owns the decoded text payload for one entity type and produces
// fresh, independent row sequences on demand. Every iteration re-parses
// the owned payload, so concurrent consumers never interfere; records are
// immutable values rebuilt on each pass.
type Dataset[T any] struct {
	raw    string
	decode func(fields []string) (T, error)
}

func newDataset[T any](raw string, decode func([]string) (T, error)) Dataset[T] {
	return Dataset[T]{raw: raw, decode: decode}
}

// RowError describes a row that failed to decode. It is reported as part
// of the row sequence; decoding of the remaining rows continues.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Rows starts a fresh pass over the dataset.
func (ds Dataset[T]) Rows() *Rows[T] {
	return &Rows[T]{
		reader: tsv.NewReader(ds.raw),
		decode: ds.decode,
	}
}

// Rows iterates decode results row by row. Usage mirrors bufio.Scanner:
//
//	rows := ds.Rows()
//	for rows.Next() {
//	    rec, err := rows.Record()
//	    ...
//	}
//
// A row-level decode failure is surfaced by Record for that row only;
// Next keeps going, leaving the skip-vs-abort policy to the caller.
type Rows[T any] struct {
	reader *tsv.Reader
	decode func([]string) (T, error)

	record T
	err    error
	line   int
}

// Next advances to the next row. It returns false when the payload is
// exhausted.
func (r *Rows[T]) Next() bool {
	fields, line, ok := r.reader.Next()
	if !ok {
		return false
	}
	r.line = line
	r.record, r.err = r.decode(fields)
	if r.err != nil {
		r.err = &RowError{Line: line, Err: r.err}
		var zero T
		r.record = zero
	}
	return true
}

// Record returns the decode result for the current row. On failure the
// error is a *RowError carrying the 1-based line number.
func (r *Rows[T]) Record() (T, error) {
	return r.record, r.err
}

// Line returns the 1-based line number of the current row.
func (r *Rows[T]) Line() int {
	return r.line
}

// All decodes every row strictly: the first row error aborts and is
// returned as a *RowError.
func (ds Dataset[T]) All() ([]T, error) {
	var records []T
	rows := ds.Rows()
	for rows.Next() {
		rec, err := rows.Record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Valid decodes every row, skipping failures. The failed rows come back
// as RowErrors in original row order so callers can log or reject the
// load; silent dropping is a caller choice, not a default.
func (ds Dataset[T]) Valid() ([]T, []*RowError) {
	var records []T
	var rowErrs []*RowError
	rows := ds.Rows()
	for rows.Next() {
		rec, err := rows.Record()
		if err != nil {
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				rowErr = &RowError{Line: rows.Line(), Err: err}
			}
			rowErrs = append(rowErrs, rowErr)
			continue
		}
		records = append(records, rec)
	}
	return records, rowErrs
}

// Actual returns the currently active versions in ds, plus the rows that
// failed to decode. An entity version is active iff it has no abolition.
func Actual[T interface{ Active() bool }](ds Dataset[T]) ([]T, []*RowError) {
	records, rowErrs := ds.Valid()
	var active []T
	for _, rec := range records {
		if rec.Active() {
			active = append(active, rec)
		}
	}
	return active, rowErrs
}

// Historic returns the abolished versions in ds, plus the rows that
// failed to decode.
func Historic[T interface{ Active() bool }](ds Dataset[T]) ([]T, []*RowError) {
	records, rowErrs := ds.Valid()
	var historic []T
	for _, rec := range records {
		if !rec.Active() {
			historic = append(historic, rec)
		}
	}
	return historic, rowErrs
}
