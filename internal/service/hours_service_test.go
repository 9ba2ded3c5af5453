package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roguepikachu/smileline/internal/domain"
	"github.com/roguepikachu/smileline/internal/hours"
	"github.com/roguepikachu/smileline/internal/repository/static"
)

type stubClock struct{ t time.Time }

func (s stubClock) Now() time.Time { return s.t }

type failingScheduleRepo struct{ err error }

func (f failingScheduleRepo) Week(context.Context) ([]domain.ScheduleEntry, error) {
	return nil, f.err
}

func (f failingScheduleRepo) Save(context.Context, []domain.ScheduleEntry) error { return f.err }

// 2025-09-01 is a Monday.
func monday(hour, minute int) time.Time {
	return time.Date(2025, 9, 1, hour, minute, 0, 0, time.UTC)
}

func TestHoursService_Status(t *testing.T) {
	repo := static.NewScheduleRepository(nil)
	tests := []struct {
		name  string
		now   time.Time
		day   int
		badge string
	}{
		{"monday morning", monday(9, 0), 0, domain.BadgeOpen},
		{"monday last hour", monday(16, 15), 0, domain.BadgeClosingSoon},
		{"monday evening", monday(18, 0), 0, domain.BadgeClosed},
		{"friday afternoon", monday(13, 30).AddDate(0, 0, 4), 4, domain.BadgeClosingSoon},
		{"sunday", monday(11, 0).AddDate(0, 0, 6), 6, domain.BadgeClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewHoursService(repo, stubClock{t: tt.now}, time.UTC)
			got, err := svc.Status(context.Background())
			if err != nil {
				t.Fatalf("status: %v", err)
			}
			if got.DayIndex != tt.day {
				t.Fatalf("want day %d, got %d", tt.day, got.DayIndex)
			}
			if got.Badge != tt.badge {
				t.Fatalf("want badge %q, got %q (%+v)", tt.badge, got.Badge, got.Status)
			}
			if got.Today.Day != static.DefaultWeek()[tt.day].Day {
				t.Fatalf("wrong today entry: %+v", got.Today)
			}
		})
	}
}

func TestHoursService_ConvertsToOfficeLocation(t *testing.T) {
	office := time.FixedZone("office", -7*60*60)
	// Tuesday 02:30 UTC is Monday 19:30 in the office.
	now := time.Date(2025, 9, 2, 2, 30, 0, 0, time.UTC)
	svc := NewHoursService(static.NewScheduleRepository(nil), stubClock{t: now}, office)
	got, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if got.DayIndex != 0 || got.Status.IsOpen {
		t.Fatalf("want closed Monday, got %+v", got)
	}
	if got.CheckedAt != "2025-09-01T19:30:00-07:00" {
		t.Fatalf("unexpected checked_at %q", got.CheckedAt)
	}
}

func TestHoursService_Week(t *testing.T) {
	svc := NewHoursService(static.NewScheduleRepository(nil), stubClock{t: monday(10, 0)}, time.UTC)
	got, err := svc.Week(context.Background())
	if err != nil {
		t.Fatalf("week: %v", err)
	}
	if len(got.Entries) != hours.DaysPerWeek {
		t.Fatalf("want 7 entries, got %d", len(got.Entries))
	}
	if !got.Status.IsOpen || got.Badge != domain.BadgeOpen {
		t.Fatalf("want open, got %+v", got.HoursStatus)
	}
}

func TestHoursService_ShortWeekIsClosed(t *testing.T) {
	repo := static.NewScheduleRepository([]domain.ScheduleEntry{{Day: "Monday", Hours: "8:00 AM – 5:00 PM", Open: true}})
	sunday := monday(10, 0).AddDate(0, 0, 6)
	got, err := NewHoursService(repo, stubClock{t: sunday}, time.UTC).Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if got.Status.IsOpen || got.Badge != domain.BadgeClosed {
		t.Fatalf("want closed for missing day, got %+v", got)
	}
}

func TestHoursService_RepoError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewHoursService(failingScheduleRepo{err: boom}, stubClock{t: monday(9, 0)}, nil)
	if _, err := svc.Status(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("want wrapped boom, got %v", err)
	}
	if _, err := svc.Week(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("want wrapped boom, got %v", err)
	}
	if errs := svc.ValidateSchedule(context.Background()); len(errs) != 1 {
		t.Fatalf("want 1 validation error, got %v", errs)
	}
}

func TestHoursService_ValidateSchedule(t *testing.T) {
	week := static.DefaultWeek()
	week[2].Hours = "9 to 5"
	svc := NewHoursService(static.NewScheduleRepository(week), stubClock{t: monday(9, 0)}, time.UTC)
	errs := svc.ValidateSchedule(context.Background())
	if len(errs) != 1 || !errors.Is(errs[0], hours.ErrMalformed) {
		t.Fatalf("want one malformed error, got %v", errs)
	}
	// a broken day still evaluates, as closed
	wed := monday(10, 0).AddDate(0, 0, 2)
	got, _ := NewHoursService(static.NewScheduleRepository(week), stubClock{t: wed}, time.UTC).Status(context.Background())
	if got.Status.IsOpen {
		t.Fatalf("malformed day must read closed, got %+v", got.Status)
	}
}

func TestHoursService_UpdateSchedule(t *testing.T) {
	repo := static.NewScheduleRepository(nil)
	svc := NewHoursService(repo, stubClock{t: monday(9, 0)}, time.UTC)

	bad := static.DefaultWeek()
	bad[0].Hours = "5:00 PM – 8:00 AM"
	err := svc.UpdateSchedule(context.Background(), bad)
	if !errors.Is(err, ErrInvalidSchedule) || !errors.Is(err, hours.ErrInvertedRange) {
		t.Fatalf("want invalid schedule wrapping inverted range, got %v", err)
	}

	good := static.DefaultWeek()
	good[0] = domain.ScheduleEntry{Day: "Monday", Hours: "Closed"}
	if err := svc.UpdateSchedule(context.Background(), good); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := svc.Status(context.Background())
	if got.Status.IsOpen || got.Today.Hours != "Closed" {
		t.Fatalf("update not applied: %+v", got)
	}
}
