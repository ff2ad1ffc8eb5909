package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// CSVSource reads the two record sets from delimited text files.
type CSVSource struct {
	DayPath  string
	HourPath string
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// NewCSVSource creates a comma-delimited source.
func NewCSVSource(dayPath, hourPath string) *CSVSource {
	return &CSVSource{DayPath: dayPath, HourPath: hourPath}
}

// Describe returns a short human-readable name for the source.
func (s *CSVSource) Describe() string {
	return fmt.Sprintf("csv (%s, %s)", filepath.Base(s.DayPath), filepath.Base(s.HourPath))
}

// Days reads the day-level file.
func (s *CSVSource) Days() ([]models.DailyRecord, error) {
	var dec *DayDecoder
	var days []models.DailyRecord

	err := s.readFile(s.DayPath, func(names []string) error {
		var err error
		dec, err = NewDayDecoder(filepath.Base(s.DayPath), names)
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

// Hours reads the hour-level file.
func (s *CSVSource) Hours() ([]models.HourlyRecord, error) {
	var dec *HourDecoder
	var hours []models.HourlyRecord

	err := s.readFile(s.HourPath, func(names []string) error {
		var err error
		dec, err = NewHourDecoder(filepath.Base(s.HourPath), names)
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

// readFile streams a delimited file, handing the header to onHeader and each data
// row to onRow.
func (s *CSVSource) readFile(path string, onHeader func([]string) error, onRow func(int, []string) error) error {
	f, err := os.Open(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return &MissingFileError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	source := filepath.Base(path)
	r := csv.NewReader(f)
	if s.Comma != 0 {
		r.Comma = s.Comma
	}

	names, err := r.Read()
	if errors.Is(err, io.EOF) {
		return &ParseError{Source: source, Err: errNoHeader}
	}
	if err != nil {
		return &ParseError{Source: source, Err: err}
	}
	if err := onHeader(names); err != nil {
		return err
	}

	for row := 1; ; row++ {
		values, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return &ParseError{Source: source, Row: row, Err: csvErr.Err}
			}
			return &MissingFileError{Path: path, Err: err}
		}
		if err := onRow(row, values); err != nil {
			return err
		}
	}
}
