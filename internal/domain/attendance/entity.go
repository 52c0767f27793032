package attendance

import (
	"fmt"
	"math"
	"time"
)

// TimeOfDayLayout is the wire format for clock times.
const TimeOfDayLayout = "15:04:05"

// DateLayout is the wire format for the calendar day.
const DateLayout = "2006-01-02"

// Attendance is one user's clock-in/out state for one calendar day.
// At most one record exists per (UserID, Date); the repository enforces
// this with a unique constraint and the service never creates a second one.
type Attendance struct {
	ID           string
	UserID       string
	Name         string
	Date         time.Time
	Day          string
	ClockInTime  string // "15:04:05", empty until clocked in
	ClockOutTime string // "15:04:05", empty until clocked out
	ClockIn      bool
	ClockOut     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WeekdayName derives the stored day name from a calendar date.
func WeekdayName(date time.Time) string {
	return date.Weekday().String()
}

// WorkDuration formats the elapsed time between clock-in and clock-out as
// "8h 30m". It returns ok=false when either time is missing, unparseable,
// or the clock-out precedes the clock-in (midnight crossing is not
// handled, so a negative span is undefined rather than negative).
func (a Attendance) WorkDuration() (string, bool) {
	if a.ClockInTime == "" || a.ClockOutTime == "" {
		return "", false
	}

	in, err := time.Parse(TimeOfDayLayout, a.ClockInTime)
	if err != nil {
		return "", false
	}
	out, err := time.Parse(TimeOfDayLayout, a.ClockOutTime)
	if err != nil {
		return "", false
	}

	diff := out.Sub(in)
	if diff < 0 {
		return "", false
	}

	totalMinutes := int(math.Round(diff.Minutes()))
	return fmt.Sprintf("%dh %dm", totalMinutes/60, totalMinutes%60), true
}
