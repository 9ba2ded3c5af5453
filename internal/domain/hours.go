// Package domain contains domain models for the application.
package domain

// Badge labels shown next to the hours table.
const (
	BadgeOpen        = "Open Now"
	BadgeClosingSoon = "Closing Soon"
	BadgeClosed      = "Closed"
)

// ScheduleEntry is one day of the weekly office hours table.
type ScheduleEntry struct {
	Day   string `json:"day" binding:"required"`
	Hours string `json:"hours" binding:"required"`
	Open  bool   `json:"is_open"`
}

// OpenStatus is derived from a ScheduleEntry and the current time. It is never stored.
type OpenStatus struct {
	IsOpen      bool `json:"is_open"`
	ClosingSoon bool `json:"closing_soon"`
}

// Badge returns the label the front end renders for the status.
func (s OpenStatus) Badge() string {
	switch {
	case s.ClosingSoon:
		return BadgeClosingSoon
	case s.IsOpen:
		return BadgeOpen
	default:
		return BadgeClosed
	}
}

// HoursStatus is today's entry and status.
type HoursStatus struct {
	DayIndex  int           `json:"day_index"`
	Today     ScheduleEntry `json:"today"`
	Status    OpenStatus    `json:"status"`
	Badge     string        `json:"badge"`
	CheckedAt string        `json:"checked_at"`
}

// WeeklyHours is the full table plus today's status.
type WeeklyHours struct {
	Entries []ScheduleEntry `json:"entries"`
	HoursStatus
}

// UpdateHoursRequestDTO replaces the weekly table.
type UpdateHoursRequestDTO struct {
	Entries []ScheduleEntry `json:"entries" binding:"required,len=7,dive"`
}
