package analysis

import (
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/dataset"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// Report is everything one render needs for a date range. It is rebuilt from
// scratch on every range change.
type Report struct {
	Range models.DateRange

	Days  []models.DailyRecord
	Hours []models.HourlyRecord

	HourlySummary []models.HourCount
	Registered    []models.DateSum
	Casual        []models.DateSum
	Ranking       []models.HourCount
	Seasons       []models.SeasonCount

	Busiest      []models.HourCount
	BottomSlice  []models.HourCount
	SeasonsChart []models.SeasonCount

	Metrics models.Metrics
}

// IsEmpty returns true when the range selected no day-level or hour-level records.
func (r Report) IsEmpty() bool {
	return len(r.Days) == 0 && len(r.Hours) == 0
}

// Compute filters both record sets of ds to r and runs every aggregation.
func Compute(ds *dataset.Dataset, r models.DateRange) Report {
	days := FilterDays(ds.Days, r)
	hours := FilterHours(ds.Hours, r)

	rep := Report{
		Range:         r,
		Days:          days,
		Hours:         hours,
		HourlySummary: HourlyCountSummary(hours),
		Registered:    RegisteredByDate(days),
		Casual:        CasualByDate(days),
		Ranking:       HourOrderRanking(hours),
		Seasons:       SeasonSummary(hours),
	}
	rep.Busiest = TopBusiestHours(rep.Ranking, TopHours)
	rep.BottomSlice = BottomHourSlice(rep.Ranking, BottomHours)
	rep.SeasonsChart = SeasonsForChart(rep.Seasons)
	rep.Metrics = ComputeMetrics(days, rep.Registered, rep.Casual)
	return rep
}
