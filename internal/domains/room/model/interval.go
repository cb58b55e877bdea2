package model

import (
	"time"

	"github.com/Lynxxxc/RESERVASI/shared/constant"
	"github.com/Lynxxxc/RESERVASI/shared/failure"
	"github.com/Lynxxxc/RESERVASI/shared/timezone"
)

// Interval is a half-open time window [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// ToInterval converts a calendar date ("2006-01-02"), a time of day
// ("15:04") and a duration in hours into an absolute interval in the
// application timezone. Malformed input fails with an invalid-time-format
// failure; nothing is silently coerced.
func ToInterval(date, startTime string, durationHours int) (Interval, error) {
	start, err := timezone.Parse(constant.DateFormat+"T"+constant.TimeOfDayFormat, date+"T"+startTime)
	if err != nil {
		return Interval{}, failure.InvalidTimeFormat(err)
	}

	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationHours) * time.Hour),
	}, nil
}

// Overlaps reports whether the two half-open intervals share at least one
// instant. Touching endpoints do not count as a conflict.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}
