// Package dataset loads the day- and hour-level bike share record sets.
package dataset

import (
	"fmt"
	"sort"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/logger"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// Source produces the two raw record sets. Implementations read their backing
// storage once per call and do not sort.
type Source interface {
	Days() ([]models.DailyRecord, error)
	Hours() ([]models.HourlyRecord, error)
	Describe() string
}

// Dataset holds both record sets ordered by date. It is read-only after Load.
type Dataset struct {
	Days   []models.DailyRecord
	Hours  []models.HourlyRecord
	Source string
}

// Load reads both record sets from src and stable-sorts each by date.
func Load(src Source) (*Dataset, error) {
	days, err := src.Days()
	if err != nil {
		return nil, fmt.Errorf("failed to load day records: %w", err)
	}
	if len(days) == 0 {
		return nil, ErrNoDays
	}

	hours, err := src.Hours()
	if err != nil {
		return nil, fmt.Errorf("failed to load hour records: %w", err)
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	sort.SliceStable(hours, func(i, j int) bool {
		return hours[i].Date.Before(hours[j].Date)
	})

	ds := &Dataset{Days: days, Hours: hours, Source: src.Describe()}
	bounds := ds.Bounds()
	logger.Info("dataset loaded",
		"source", ds.Source,
		"days", len(days),
		"hours", len(hours),
		"from", bounds.Start.Format(models.DateLayout),
		"to", bounds.End.Format(models.DateLayout),
	)
	return ds, nil
}

// Bounds returns the [min, max] date span of the day-level records.
func (d *Dataset) Bounds() models.DateRange {
	if len(d.Days) == 0 {
		return models.DateRange{}
	}
	return models.DateRange{Start: d.Days[0].Date, End: d.Days[len(d.Days)-1].Date}
}

// HourBounds returns the [min, max] date span of the hour-level records.
func (d *Dataset) HourBounds() models.DateRange {
	if len(d.Hours) == 0 {
		return models.DateRange{}
	}
	return models.DateRange{Start: d.Hours[0].Date, End: d.Hours[len(d.Hours)-1].Date}
}
