// Package service contains business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/hours"
	"github.com/roguepikachu/smileline/internal/repository"
	"github.com/roguepikachu/smileline/pkg/logger"
)

// ErrInvalidSchedule wraps every problem found when saving a schedule.
var ErrInvalidSchedule = errors.New("invalid schedule")

// CheckedAtFormat is the layout of HoursStatus.CheckedAt.
const CheckedAtFormat = time.RFC3339

// HoursService answers "are we open" questions from the weekly schedule.
type HoursService struct {
	repo  repository.ScheduleRepository
	clock Clock
	loc   *time.Location
}

// NewHoursService creates a HoursService evaluating times in loc (time.Local when nil).
func NewHoursService(repo repository.ScheduleRepository, clock Clock, loc *time.Location) *HoursService {
	if loc == nil {
		loc = time.Local
	}
	return &HoursService{repo: repo, clock: clock, loc: loc}
}

// Status returns today's entry and whether the office is open right now.
func (s *HoursService) Status(ctx context.Context) (domain.HoursStatus, error) {
	week, err := s.repo.Week(ctx)
	if err != nil {
		return domain.HoursStatus{}, fmt.Errorf("load schedule: %w", err)
	}
	return s.status(week), nil
}

// Week returns the full table plus today's status.
func (s *HoursService) Week(ctx context.Context) (domain.WeeklyHours, error) {
	week, err := s.repo.Week(ctx)
	if err != nil {
		return domain.WeeklyHours{}, fmt.Errorf("load schedule: %w", err)
	}
	return domain.WeeklyHours{Entries: week, HoursStatus: s.status(week)}, nil
}

func (s *HoursService) status(week []domain.ScheduleEntry) domain.HoursStatus {
	now := s.clock.Now().In(s.loc)
	idx := hours.DayIndex(now.Weekday())
	out := domain.HoursStatus{DayIndex: idx, CheckedAt: now.Format(CheckedAtFormat)}
	if idx < len(week) {
		out.Today = week[idx]
		out.Status = hours.Evaluate(week[idx].Hours, now)
	}
	out.Badge = out.Status.Badge()
	return out
}

// ValidateSchedule logs every problem in the stored schedule without failing.
// Broken entries still evaluate as closed.
func (s *HoursService) ValidateSchedule(ctx context.Context) []error {
	week, err := s.repo.Week(ctx)
	if err != nil {
		logger.Warn(ctx, "office hours validation skipped: %v", err)
		return []error{err}
	}
	errs := hours.ValidateWeek(week)
	for _, e := range errs {
		logger.Warn(ctx, "office hours: %v", e)
	}
	if len(errs) == 0 {
		logger.Debug(ctx, "office hours validated")
	}
	return errs
}

// UpdateSchedule validates week strictly and stores it.
func (s *HoursService) UpdateSchedule(ctx context.Context, week []domain.ScheduleEntry) error {
	if errs := hours.ValidateWeek(week); len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSchedule, errors.Join(errs...))
	}
	if err := s.repo.Save(ctx, week); err != nil {
		return fmt.Errorf("save schedule: %w", err)
	}
	return nil
}
