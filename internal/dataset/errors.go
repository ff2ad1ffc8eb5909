package dataset

import (
	"errors"
	"fmt"
)

// ErrNoDays is returned by Load when the day-level source yields no records, since the
// date picker bounds are taken from it.
var ErrNoDays = errors.New("day-level data set is empty")

// errNoHeader marks a source without a header row.
var errNoHeader = errors.New("missing header row")

// MissingFileError reports a source that could not be opened or read.
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *MissingFileError) Unwrap() error {
	return e.Err
}

// MissingColumnError reports a required column absent from a source's header.
type MissingColumnError struct {
	Source string
	Column Column
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q (accepted names: %v)",
		e.Source, e.Column, columnAliases[e.Column])
}

// ParseError reports a field that failed to parse. Row is the 1-based data row,
// not counting the header; 0 means the header itself.
type ParseError struct {
	Source string
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s: row %d: %v", e.Source, e.Row, e.Err)
	}
	return fmt.Sprintf("%s: row %d, column %q: cannot parse %q: %v",
		e.Source, e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
