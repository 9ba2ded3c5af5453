// Package static serves the office hours table compiled into the binary.
package static

import (
	"context"
	"sync"

	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/repository"
)

// DefaultWeek returns the practice's regular Monday-first hours.
func DefaultWeek() []domain.ScheduleEntry {
	return []domain.ScheduleEntry{
		{Day: "Monday", Hours: "8:00 AM – 5:00 PM", Open: true},
		{Day: "Tuesday", Hours: "8:00 AM – 5:00 PM", Open: true},
		{Day: "Wednesday", Hours: "8:00 AM – 5:00 PM", Open: true},
		{Day: "Thursday", Hours: "8:00 AM – 5:00 PM", Open: true},
		{Day: "Friday", Hours: "8:00 AM – 2:00 PM", Open: true},
		{Day: "Saturday", Hours: "9:00 AM – 1:00 PM", Open: true},
		{Day: "Sunday", Hours: "Closed", Open: false},
	}
}

// ScheduleRepository keeps the weekly table in memory.
type ScheduleRepository struct {
	mu   sync.RWMutex
	week []domain.ScheduleEntry
}

// NewScheduleRepository starts from week, or DefaultWeek when week is empty.
func NewScheduleRepository(week []domain.ScheduleEntry) *ScheduleRepository {
	if len(week) == 0 {
		week = DefaultWeek()
	}
	return &ScheduleRepository{week: clone(week)}
}

// Week returns a copy of the current table.
func (r *ScheduleRepository) Week(_ context.Context) ([]domain.ScheduleEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.week), nil
}

// Save replaces the table with a copy of week.
func (r *ScheduleRepository) Save(_ context.Context, week []domain.ScheduleEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.week = clone(week)
	return nil
}

func clone(week []domain.ScheduleEntry) []domain.ScheduleEntry {
	out := make([]domain.ScheduleEntry, len(week))
	copy(out, week)
	return out
}

var _ repository.ScheduleRepository = (*ScheduleRepository)(nil)
