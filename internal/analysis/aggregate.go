package analysis

import (
	"cmp"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// Row counts of the presentation slices.
const (
	TopHours    = 5
	BottomHours = 5
)

// HourlyCountSummary sums Total per hour of day, ascending by hour. Hours without
// records are absent.
func HourlyCountSummary(hours []models.HourlyRecord) []models.HourCount {
	sums := make(map[int]int)
	for _, h := range hours {
		sums[h.Hour] += h.Total
	}

	keys := lo.Keys(sums)
	slices.Sort(keys)
	return lo.Map(keys, func(hour int, _ int) models.HourCount {
		return models.HourCount{Hour: hour, Count: sums[hour]}
	})
}

// RegisteredByDate sums registered riders per date, ascending by date.
func RegisteredByDate(days []models.DailyRecord) []models.DateSum {
	return sumByDate(days, func(d models.DailyRecord) int { return d.Registered })
}

// CasualByDate sums casual riders per date, ascending by date.
func CasualByDate(days []models.DailyRecord) []models.DateSum {
	return sumByDate(days, func(d models.DailyRecord) int { return d.Casual })
}

func sumByDate(days []models.DailyRecord, value func(models.DailyRecord) int) []models.DateSum {
	sums := make(map[time.Time]int)
	for _, d := range days {
		sums[d.Date] += value(d)
	}

	keys := lo.Keys(sums)
	slices.SortFunc(keys, func(a, b time.Time) int { return a.Compare(b) })
	return lo.Map(keys, func(date time.Time, _ int) models.DateSum {
		return models.DateSum{Date: date, Sum: sums[date]}
	})
}

// HourOrderRanking is the hourly summary ordered by count, highest first. Equal
// counts keep ascending hour order.
func HourOrderRanking(hours []models.HourlyRecord) []models.HourCount {
	ranking := HourlyCountSummary(hours)
	slices.SortStableFunc(ranking, func(a, b models.HourCount) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return ranking
}

// SeasonSummary sums Total per season over the hour-level records, ascending by
// season label.
func SeasonSummary(hours []models.HourlyRecord) []models.SeasonCount {
	sums := make(map[models.Season]int)
	for _, h := range hours {
		sums[h.Season] += h.Total
	}

	keys := lo.Keys(sums)
	slices.SortFunc(keys, compareSeason)
	return lo.Map(keys, func(s models.Season, _ int) models.SeasonCount {
		return models.SeasonCount{Season: s, Count: sums[s]}
	})
}

func compareSeason(a, b models.Season) int {
	return cmp.Compare(a.String(), b.String())
}

// TopBusiestHours returns the first n entries of a ranking.
func TopBusiestHours(ranking []models.HourCount, n int) []models.HourCount {
	return head(ranking, n)
}

// BottomHourSlice re-sorts a ranking ascending by hour of day and returns the first
// n entries. This is the earliest hours present, not the n lowest counts.
func BottomHourSlice(ranking []models.HourCount, n int) []models.HourCount {
	byHour := slices.Clone(ranking)
	slices.SortStableFunc(byHour, func(a, b models.HourCount) int {
		return cmp.Compare(a.Hour, b.Hour)
	})
	return head(byHour, n)
}

// SeasonsForChart orders a season summary descending by season label.
func SeasonsForChart(summary []models.SeasonCount) []models.SeasonCount {
	out := slices.Clone(summary)
	slices.SortStableFunc(out, func(a, b models.SeasonCount) int {
		return compareSeason(b.Season, a.Season)
	})
	return out
}

// ComputeMetrics derives the three headline figures. Registered and casual totals
// come from the per-date tables.
func ComputeMetrics(days []models.DailyRecord, registered, casual []models.DateSum) models.Metrics {
	sum := func(s models.DateSum) int { return s.Sum }
	return models.Metrics{
		TotalRentals:    lo.SumBy(days, func(d models.DailyRecord) int { return d.Total }),
		TotalRegistered: lo.SumBy(registered, sum),
		TotalCasual:     lo.SumBy(casual, sum),
	}
}

func head[T any](s []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return slices.Clone(s[:n])
}
