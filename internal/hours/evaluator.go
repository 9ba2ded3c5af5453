// Package hours evaluates office hours text such as "8:00 AM – 5:00 PM"
// against a wall-clock instant.
//
// Evaluation never fails: text that cannot be parsed is treated as closed so
// a typo in the schedule can only under-claim availability.
package hours

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/roguepikachu/smileline/internal/domain"
)

// ClosedText marks a day without office hours.
const ClosedText = "Closed"

// ClosingSoonWindow is how close to closing time the office counts as closing soon.
const ClosingSoonWindow = 60 * time.Minute

var (
	// ErrClosed is returned by ParseRange for the "Closed" literal.
	ErrClosed = errors.New("office closed")
	// ErrMalformed is returned when the text does not match "H:MM AM – H:MM PM".
	ErrMalformed = errors.New("malformed hours")
	// ErrInvertedRange is returned when the office would close before it opens.
	ErrInvertedRange = errors.New("closing time not after opening time")
)

var rangePattern = regexp.MustCompile(`^\s*(\d{1,2}):(\d{2})\s*([AaPp][Mm])\s*[–-]\s*(\d{1,2}):(\d{2})\s*([AaPp][Mm])\s*$`)

// Clock is a 12-hour wall-clock reading.
type Clock struct {
	Hour   int
	Minute int
	Period string // "AM" or "PM"
}

// Minutes converts the reading to minutes since midnight.
func (c Clock) Minutes() int {
	h := c.Hour
	switch {
	case c.Period == "AM" && h == 12:
		h = 0
	case c.Period == "PM" && h != 12:
		h += 12
	}
	return h*60 + c.Minute
}

// String renders the clock as 24-hour "15:04", the form schema.org expects.
func (c Clock) String() string {
	m := c.Minutes()
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Range is a same-day opening interval, open inclusive and close exclusive.
type Range struct {
	Open  Clock
	Close Clock
}

// Contains reports whether minute-of-day m falls inside the range.
func (r Range) Contains(m int) bool {
	return r.Open.Minutes() <= m && m < r.Close.Minutes()
}

// ParseRange parses hours text into a Range.
func ParseRange(text string) (Range, error) {
	if strings.TrimSpace(text) == ClosedText {
		return Range{}, ErrClosed
	}
	m := rangePattern.FindStringSubmatch(text)
	if m == nil {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformed, text)
	}
	open, err := newClock(m[1], m[2], m[3])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrMalformed, text, err)
	}
	closing, err := newClock(m[4], m[5], m[6])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrMalformed, text, err)
	}
	r := Range{Open: open, Close: closing}
	if r.Open.Minutes() >= r.Close.Minutes() {
		return Range{}, fmt.Errorf("%w: %q", ErrInvertedRange, text)
	}
	return r, nil
}

func newClock(hour, minute, period string) (Clock, error) {
	h, err := strconv.Atoi(hour)
	if err != nil {
		return Clock{}, err
	}
	m, err := strconv.Atoi(minute)
	if err != nil {
		return Clock{}, err
	}
	if h < 1 || h > 12 {
		return Clock{}, fmt.Errorf("hour %d out of range", h)
	}
	if m > 59 {
		return Clock{}, fmt.Errorf("minute %d out of range", m)
	}
	return Clock{Hour: h, Minute: m, Period: strings.ToUpper(period)}, nil
}

// Evaluate reports whether the office is open at now given the day's hours text.
// now is read in its own location.
func Evaluate(text string, now time.Time) domain.OpenStatus {
	r, err := ParseRange(text)
	if err != nil {
		return domain.OpenStatus{}
	}
	current := now.Hour()*60 + now.Minute()
	if !r.Contains(current) {
		return domain.OpenStatus{}
	}
	remaining := r.Close.Minutes() - current
	return domain.OpenStatus{
		IsOpen:      true,
		ClosingSoon: remaining <= int(ClosingSoonWindow/time.Minute),
	}
}

// DayIndex maps a Sunday-first weekday onto the Monday-first schedule index.
func DayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// CurrentDayIndex returns today's Monday-first index in local time.
func CurrentDayIndex() int {
	return DayIndex(time.Now().Weekday())
}
