package app

import (
	"time"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/analysis"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

// TickMsg is sent periodically to expire notifications.
type TickMsg struct {
	Time time.Time
}

// RangeChangedMsg requests a report for a new date range.
type RangeChangedMsg struct {
	Range models.DateRange
}

// ReportUpdatedMsg is sent after the shared state holds a new report.
type ReportUpdatedMsg struct {
	Report analysis.Report
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}
