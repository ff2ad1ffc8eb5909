// Package services wires the configured record source to the analysis layer.
package services

import (
	"fmt"
	"sync"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/analysis"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/config"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/dataset"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/db"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/logger"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// SourceInfo describes the loaded data for display.
type SourceInfo struct {
	Kind      string
	Name      string
	DayCount  int
	HourCount int
	Span      models.DateRange
	HourSpan  models.DateRange
	Seasons   []models.Season
}

// Manager owns the loaded dataset and computes reports over it. The dataset is
// immutable after construction; only the report cache is guarded.
type Manager struct {
	mu       sync.Mutex
	dataset  *dataset.Dataset
	database *db.DB
	kind     string

	cached    analysis.Report
	hasCached bool
}

// NewManager opens the configured source and loads both record sets.
func NewManager(cfg *config.Config) (*Manager, error) {
	switch cfg.Source {
	case config.SourceSQLite:
		database, err := db.Open(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		ds, err := dataset.Load(db.NewSource(database))
		if err != nil {
			_ = database.Close()
			return nil, err
		}
		return &Manager{dataset: ds, database: database, kind: config.SourceSQLite}, nil

	case config.SourceCSV, "":
		ds, err := dataset.Load(dataset.NewCSVSource(cfg.DayFile, cfg.HourFile))
		if err != nil {
			return nil, err
		}
		return &Manager{dataset: ds, kind: config.SourceCSV}, nil

	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

// FromDataset wraps an already loaded dataset.
func FromDataset(ds *dataset.Dataset) *Manager {
	return &Manager{dataset: ds, kind: "memory"}
}

// Dataset returns the loaded record sets.
func (m *Manager) Dataset() *dataset.Dataset {
	return m.dataset
}

// Bounds returns the day-level data span, which bounds the range picker.
func (m *Manager) Bounds() models.DateRange {
	return m.dataset.Bounds()
}

// Compute returns the report for r. The last report is reused when r repeats.
func (m *Manager) Compute(r models.DateRange) analysis.Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.hasCached && m.cached.Range == r {
		return m.cached
	}

	rep := analysis.Compute(m.dataset, r)
	logger.Debug("report computed",
		"range", r.String(),
		"days", len(rep.Days),
		"hours", len(rep.Hours),
		"total", rep.Metrics.TotalRentals,
	)
	m.cached = rep
	m.hasCached = true
	return rep
}

// SourceInfo summarises where the data came from and what it covers.
func (m *Manager) SourceInfo() SourceInfo {
	seasons := analysis.SeasonSummary(m.dataset.Hours)
	present := make([]models.Season, 0, len(seasons))
	for _, s := range seasons {
		present = append(present, s.Season)
	}

	return SourceInfo{
		Kind:      m.kind,
		Name:      m.dataset.Source,
		DayCount:  len(m.dataset.Days),
		HourCount: len(m.dataset.Hours),
		Span:      m.dataset.Bounds(),
		HourSpan:  m.dataset.HourBounds(),
		Seasons:   present,
	}
}

// Close releases the database handle, if any.
func (m *Manager) Close() error {
	if m.database == nil {
		return nil
	}
	err := m.database.Close()
	m.database = nil
	return err
}
