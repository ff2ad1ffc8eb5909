// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/analysis"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
	"github.com/j-veylop/bikeshare-dashboard-tui/internal/services"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"

	maxNotifications = 10
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	case NotificationLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// State is shared by the application model and every tab. Tabs read it at render
// time; only the application model writes the report.
type State struct {
	mu sync.RWMutex

	bounds    models.DateRange
	source    services.SourceInfo
	report    analysis.Report
	hasReport bool

	lastUpdated time.Time

	notifications []Notification
}

// NewState creates an empty state.
func NewState() *State {
	return &State{
		notifications: make([]Notification, 0),
	}
}

// SetBounds records the span the range picker is restricted to.
func (s *State) SetBounds(r models.DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bounds = r
}

// Bounds returns the data span.
func (s *State) Bounds() models.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bounds
}

// SetSourceInfo records where the data was loaded from.
func (s *State) SetSourceInfo(info services.SourceInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.source = info
}

// SourceInfo returns the loaded data description.
func (s *State) SourceInfo() services.SourceInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// SetReport replaces the current report.
func (s *State) SetReport(rep analysis.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = rep
	s.hasReport = true
	s.lastUpdated = time.Now()
}

// Report returns the current report. ok is false until the first range is computed.
func (s *State) Report() (rep analysis.Report, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report, s.hasReport
}

// HasReport returns true once a report has been computed.
func (s *State) HasReport() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasReport
}

// Range returns the range of the current report, or the bounds before the first one.
func (s *State) Range() models.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasReport {
		return s.bounds
	}
	return s.report.Range
}

// LastUpdated returns when the report was last replaced.
func (s *State) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.notifications = append(s.notifications, Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	})

	if len(s.notifications) > maxNotifications {
		s.notifications = s.notifications[len(s.notifications)-maxNotifications:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = activeNotifications(s.notifications)
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return activeNotifications(s.notifications)
}

// ClearAllNotifications removes all notifications.
func (s *State) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]Notification, 0)
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.RemoveNotification(LoadingNotificationID)
}

func activeNotifications(all []Notification) []Notification {
	active := make([]Notification, 0, len(all))
	for _, n := range all {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	return active
}
