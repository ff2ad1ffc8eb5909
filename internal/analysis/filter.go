// Package analysis holds the pure range filter and aggregation functions behind
// every dashboard render.
package analysis

import (
	"github.com/samber/lo"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// Filter returns the records whose date lies within r, inclusive on both ends, in
// their original order. The input is never modified. An inverted range yields an
// empty result.
func Filter[T models.Dated](records []T, r models.DateRange) []T {
	if r.IsEmpty() {
		return []T{}
	}
	return lo.Filter(records, func(rec T, _ int) bool {
		return r.Contains(rec.RecordDate())
	})
}

// FilterDays restricts the day-level records to r.
func FilterDays(days []models.DailyRecord, r models.DateRange) []models.DailyRecord {
	return Filter(days, r)
}

// FilterHours restricts the hour-level records to r.
func FilterHours(hours []models.HourlyRecord, r models.DateRange) []models.HourlyRecord {
	return Filter(hours, r)
}
