package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/dataset"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// Source serves the day and hour tables of a database as a dataset.Source.
// Columns are resolved by name with the same aliases as the CSV files.
type Source struct {
	db *DB
}

var _ dataset.Source = (*Source)(nil)

// NewSource wraps an open database.
func NewSource(db *DB) *Source {
	return &Source{db: db}
}

// Describe returns a short human-readable name for the source.
func (s *Source) Describe() string {
	return fmt.Sprintf("sqlite (%s)", filepath.Base(s.db.Path()))
}

// Days reads every row of the day table.
func (s *Source) Days() ([]models.DailyRecord, error) {
	var dec *dataset.DayDecoder
	var days []models.DailyRecord

	err := s.scanTable(DayTable, func(names []string) error {
		var err error
		dec, err = dataset.NewDayDecoder(DayTable, names)
		return err
	}, func(row int, values []string) error {
		rec, err := dec.Decode(row, values)
		if err != nil {
			return err
		}
		days = append(days, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return days, nil
}

// Hours reads every row of the hour table.
func (s *Source) Hours() ([]models.HourlyRecord, error) {
	var dec *dataset.HourDecoder
	var hours []models.HourlyRecord

	err := s.scanTable(HourTable, func(names []string) error {
		var err error
		dec, err = dataset.NewHourDecoder(HourTable, names)
		return err
	}, func(row int, values []string) error {
		rec, err := dec.Decode(row, values)
		if err != nil {
			return err
		}
		hours = append(hours, rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hours, nil
}

// scanTable reads a table in rowid order, handing every value to the decoder as text.
// NULL becomes the empty string, which the decoders reject for required columns.
func (s *Source) scanTable(table string, onHeader func([]string) error, onRow func(int, []string) error) error {
	ok, err := s.db.HasTable(table)
	if err != nil {
		return &dataset.MissingFileError{Path: s.db.Path(), Err: err}
	}
	if !ok {
		return &dataset.MissingFileError{Path: s.db.Path(), Err: fmt.Errorf("no such table: %s", table)}
	}

	query := fmt.Sprintf(`SELECT * FROM %q ORDER BY rowid`, table)
	rows, err := s.db.QueryContext(context.Background(), query)
	if err != nil {
		return &dataset.MissingFileError{Path: s.db.Path(), Err: err}
	}
	defer func() { _ = rows.Close() }()

	names, err := rows.Columns()
	if err != nil {
		return &dataset.MissingFileError{Path: s.db.Path(), Err: err}
	}
	if err := onHeader(names); err != nil {
		return err
	}

	raw := make([]sql.NullString, len(names))
	dest := make([]any, len(names))
	for i := range raw {
		dest[i] = &raw[i]
	}

	row := 0
	for rows.Next() {
		row++
		if err := rows.Scan(dest...); err != nil {
			return &dataset.ParseError{Source: table, Row: row, Err: err}
		}
		values := make([]string, len(raw))
		for i, v := range raw {
			values[i] = v.String
		}
		if err := onRow(row, values); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return &dataset.MissingFileError{Path: s.db.Path(), Err: err}
	}
	return nil
}
