package allocation

import (
	"fmt"
	"time"

	"tavolo/shared/constant"
	"tavolo/shared/failure"
	"tavolo/shared/timezone"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

// ParseClock parses an HH:MM string.
func ParseClock(value string) (TimeOfDay, error) {
	t, err := time.Parse(constant.ClockFormat, value)
	if err != nil {
		return 0, failure.BadRequestFromString(fmt.Sprintf("invalid time %q, expected HH:MM", value)) // nolint:wrapcheck
	}

	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// At anchors the time of day on the given calendar date in the application
// timezone.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(t)/60, int(t)%60, 0, 0, timezone.GetLocation())
}

// ClockOf extracts the time of day from an instant, in the application
// timezone.
func ClockOf(instant time.Time) TimeOfDay {
	local := timezone.ToAppTime(instant)

	return TimeOfDay(local.Hour()*60 + local.Minute())
}
