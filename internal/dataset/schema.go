package dataset

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// Column identifies a field the dashboard reads from a source.
type Column string

// Known columns.
const (
	ColDate       Column = "date"
	ColHour       Column = "hour"
	ColTotal      Column = "total"
	ColRegistered Column = "registered"
	ColCasual     Column = "casual"
	ColSeason     Column = "season"
)

// columnAliases lists the header names accepted for each column, most specific first.
var columnAliases = map[Column][]string{
	ColDate:       {"dteday", "date"},
	ColHour:       {"hours", "hr", "hour"},
	ColTotal:      {"count_cr", "cnt", "count", "total"},
	ColRegistered: {"registered"},
	ColCasual:     {"casual"},
	ColSeason:     {"season"},
}

var (
	dailyColumns  = []Column{ColDate, ColCasual, ColRegistered, ColTotal, ColSeason}
	hourlyColumns = []Column{ColDate, ColHour, ColTotal, ColSeason}
)

var dateLayouts = []string{
	models.DateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDate parses an ISO-8601 date or timestamp into a calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.DateOf(t), nil
		}
	}
	return time.Time{}, errors.New("not an ISO-8601 date")
}

// header maps the columns the dashboard needs to their positions in a row.
type header struct {
	source string
	names  []string
	index  map[Column]int
	extra  []int
}

func resolveHeader(source string, names []string, required []Column) (*header, error) {
	if len(names) == 0 {
		return nil, &ParseError{Source: source, Err: errNoHeader}
	}

	byName := make(map[string]int, len(names))
	cleaned := make([]string, len(names))
	for i, n := range names {
		n = strings.TrimSpace(strings.TrimPrefix(n, "\ufeff"))
		cleaned[i] = n
		if _, dup := byName[strings.ToLower(n)]; !dup {
			byName[strings.ToLower(n)] = i
		}
	}

	h := &header{source: source, names: cleaned, index: make(map[Column]int, len(required))}
	for _, col := range required {
		found := false
		for _, alias := range columnAliases[col] {
			if i, ok := byName[alias]; ok {
				h.index[col] = i
				found = true
				break
			}
		}
		if !found {
			return nil, &MissingColumnError{Source: source, Column: col}
		}
	}

	used := make(map[int]bool, len(h.index))
	for _, i := range h.index {
		used[i] = true
	}
	for i := range cleaned {
		if !used[i] {
			h.extra = append(h.extra, i)
		}
	}
	return h, nil
}

func (h *header) field(row int, values []string, col Column) (string, error) {
	i := h.index[col]
	if i >= len(values) {
		return "", &ParseError{Source: h.source, Row: row, Column: h.names[i],
			Err: errors.New("row has too few fields")}
	}
	return values[i], nil
}

func (h *header) date(row int, values []string) (time.Time, error) {
	raw, err := h.field(row, values, ColDate)
	if err != nil {
		return time.Time{}, err
	}
	d, err := ParseDate(raw)
	if err != nil {
		return time.Time{}, h.parseErr(row, ColDate, raw, err)
	}
	return d, nil
}

func (h *header) count(row int, values []string, col Column) (int, error) {
	raw, err := h.field(row, values, col)
	if err != nil {
		return 0, err
	}
	n, err := parseCount(raw)
	if err != nil {
		return 0, h.parseErr(row, col, raw, err)
	}
	return n, nil
}

func (h *header) season(row int, values []string) (models.Season, error) {
	raw, err := h.field(row, values, ColSeason)
	if err != nil {
		return models.SeasonUnknown, err
	}
	s, err := models.ParseSeason(raw)
	if err != nil {
		return models.SeasonUnknown, h.parseErr(row, ColSeason, raw, err)
	}
	return s, nil
}

func (h *header) attrs(values []string) map[string]string {
	if len(h.extra) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(h.extra))
	for _, i := range h.extra {
		if i < len(values) {
			attrs[h.names[i]] = values[i]
		}
	}
	return attrs
}

func (h *header) parseErr(row int, col Column, raw string, err error) error {
	return &ParseError{Source: h.source, Row: row, Column: h.names[h.index[col]], Value: raw, Err: err}
}

// parseCount parses a non-negative integer count. Integral float renderings such as
// "985.0" are accepted since spreadsheet exports produce them.
func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, errors.New("not an integer")
		}
		n = int(f)
	}
	if n < 0 {
		return 0, errors.New("negative count")
	}
	return n, nil
}

// DayDecoder turns raw rows of a day-level source into records.
type DayDecoder struct {
	h *header
}

// NewDayDecoder resolves the header of a day-level source.
func NewDayDecoder(source string, names []string) (*DayDecoder, error) {
	h, err := resolveHeader(source, names, dailyColumns)
	if err != nil {
		return nil, err
	}
	return &DayDecoder{h: h}, nil
}

// Decode parses one data row. row is 1-based and used for error reporting.
func (d *DayDecoder) Decode(row int, values []string) (models.DailyRecord, error) {
	var rec models.DailyRecord
	var err error

	if rec.Date, err = d.h.date(row, values); err != nil {
		return rec, err
	}
	if rec.Casual, err = d.h.count(row, values, ColCasual); err != nil {
		return rec, err
	}
	if rec.Registered, err = d.h.count(row, values, ColRegistered); err != nil {
		return rec, err
	}
	if rec.Total, err = d.h.count(row, values, ColTotal); err != nil {
		return rec, err
	}
	if rec.Season, err = d.h.season(row, values); err != nil {
		return rec, err
	}
	rec.Attrs = d.h.attrs(values)
	return rec, nil
}

// HourDecoder turns raw rows of an hour-level source into records.
type HourDecoder struct {
	h *header
}

// NewHourDecoder resolves the header of an hour-level source.
func NewHourDecoder(source string, names []string) (*HourDecoder, error) {
	h, err := resolveHeader(source, names, hourlyColumns)
	if err != nil {
		return nil, err
	}
	return &HourDecoder{h: h}, nil
}

// Decode parses one data row. row is 1-based and used for error reporting.
func (d *HourDecoder) Decode(row int, values []string) (models.HourlyRecord, error) {
	var rec models.HourlyRecord
	var err error

	if rec.Date, err = d.h.date(row, values); err != nil {
		return rec, err
	}
	if rec.Hour, err = d.h.count(row, values, ColHour); err != nil {
		return rec, err
	}
	if rec.Hour > 23 {
		raw, _ := d.h.field(row, values, ColHour)
		return rec, d.h.parseErr(row, ColHour, raw, errors.New("hour out of range 0-23"))
	}
	if rec.Total, err = d.h.count(row, values, ColTotal); err != nil {
		return rec, err
	}
	if rec.Season, err = d.h.season(row, values); err != nil {
		return rec, err
	}
	rec.Attrs = d.h.attrs(values)
	return rec, nil
}
