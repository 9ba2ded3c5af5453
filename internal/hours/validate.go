package hours

import (
	"errors"
	"fmt"

	"github.com/roguepikachu/smileline/internal/domain"
)

// DaysPerWeek is the length of the weekly schedule.
const DaysPerWeek = 7

// ErrWeekLength is reported when a schedule does not have one entry per day.
var ErrWeekLength = errors.New("schedule must have 7 entries")

// ErrOpenFlagMismatch is reported when an entry's Open flag disagrees with its hours text.
var ErrOpenFlagMismatch = errors.New("open flag disagrees with hours")

// ValidateWeek checks a Monday-first weekly schedule and returns every problem found.
// An empty result means each entry is either "Closed" or a well formed same-day range.
func ValidateWeek(week []domain.ScheduleEntry) []error {
	var errs []error
	if len(week) != DaysPerWeek {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrWeekLength, len(week)))
	}
	for i, e := range week {
		_, err := ParseRange(e.Hours)
		switch {
		case errors.Is(err, ErrClosed):
			if e.Open {
				errs = append(errs, fmt.Errorf("day %d (%s): %w", i, e.Day, ErrOpenFlagMismatch))
			}
		case err != nil:
			errs = append(errs, fmt.Errorf("day %d (%s): %w", i, e.Day, err))
		case !e.Open:
			errs = append(errs, fmt.Errorf("day %d (%s): %w", i, e.Day, ErrOpenFlagMismatch))
		}
	}
	return errs
}
