package models

import "time"

// Column labels of the derived date tables, kept from the exported data format.
const (
	RegisterSumLabel = "register_sum"
	CasualSumLabel   = "casual_sum"
)

// HourCount is the summed rental count for one hour of the day.
type HourCount struct {
	Hour  int
	Count int
}

// DateSum is a per-date sum of one rider category.
type DateSum struct {
	Date time.Time
	Sum  int
}

// SeasonCount is the summed rental count for one season.
type SeasonCount struct {
	Season Season
	Count  int
}

// Metrics are the three scalar figures shown at the top of the dashboard.
type Metrics struct {
	TotalRentals    int
	TotalRegistered int
	TotalCasual     int
}

// IsZero returns true when no rentals of any kind were counted.
func (m Metrics) IsZero() bool {
	return m.TotalRentals == 0 && m.TotalRegistered == 0 && m.TotalCasual == 0
}

// PeakHour returns the hour with the highest count. ok is false for an empty slice.
// Ties keep the earliest entry.
func PeakHour(counts []HourCount) (hc HourCount, ok bool) {
	if len(counts) == 0 {
		return HourCount{}, false
	}
	hc = counts[0]
	for _, c := range counts[1:] {
		if c.Count > hc.Count {
			hc = c
		}
	}
	return hc, true
}

// QuietestHour returns the hour with the lowest count. ok is false for an empty slice.
func QuietestHour(counts []HourCount) (hc HourCount, ok bool) {
	if len(counts) == 0 {
		return HourCount{}, false
	}
	hc = counts[0]
	for _, c := range counts[1:] {
		if c.Count < hc.Count {
			hc = c
		}
	}
	return hc, true
}
