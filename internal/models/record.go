package models

import "time"

// DailyRecord is one row of the day-granularity data set. Records are unique by Date.
type DailyRecord struct {
	Date       time.Time
	Casual     int
	Registered int
	Total      int
	Season     Season
	// Attrs holds columns the dashboard does not inspect, keyed by header name.
	Attrs map[string]string
}

// RecordDate returns the calendar date of the record.
func (r DailyRecord) RecordDate() time.Time {
	return r.Date
}

// HourlyRecord is one row of the hour-granularity data set. Records are unique by
// (Date, Hour).
type HourlyRecord struct {
	Date   time.Time
	Hour   int // 0-23
	Total  int
	Season Season
	Attrs  map[string]string
}

// RecordDate returns the calendar date of the record.
func (r HourlyRecord) RecordDate() time.Time {
	return r.Date
}

// Dated is implemented by every record type the range filter can restrict.
type Dated interface {
	RecordDate() time.Time
}
