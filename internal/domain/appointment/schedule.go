package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/models"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	return d, nil
}

// ParseClock parses HH:MM and returns it zero padded ("9:05" -> "09:05").
func ParseClock(s string) (string, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalidFormat
	}
	return t.Format(ClockLayout), nil
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// Interval is a half-open [Start, End) range of zero padded HH:MM clocks.
type Interval struct {
	Start string
	End   string
}

func (i Interval) Valid() bool {
	return i.Start < i.End
}

// Overlaps reports whether i and o share any instant. Intervals that only
// touch at a boundary do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && i.End > o.Start
}

func IntervalOf(ap *models.Appointment) Interval {
	return Interval{Start: ap.StartTime, End: ap.EndTime}
}

// FindOverlap returns the first appointment in existing that overlaps
// candidate, skipping excludeID (0 skips nothing).
func FindOverlap(
	existing []models.Appointment,
	candidate Interval,
	excludeID uint,
) *models.Appointment {
	for i := range existing {
		ap := &existing[i]
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if IntervalOf(ap).Overlaps(candidate) {
			return ap
		}
	}
	return nil
}
