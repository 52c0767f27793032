package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkDuration(t *testing.T) {
	cases := []struct {
		name     string
		in       string
		out      string
		want     string
		wantOK   bool
	}{
		{"full working day", "09:00:00", "17:30:00", "8h 30m", true},
		{"out before in is undefined", "09:00:00", "08:00:00", "", false},
		{"zero span", "09:00:00", "09:00:00", "0h 0m", true},
		{"seconds round to nearest minute", "09:00:00", "09:10:30", "0h 11m", true},
		{"missing clock-out", "09:00:00", "", "", false},
		{"missing clock-in", "", "17:00:00", "", false},
		{"garbage clock-in", "nine", "17:00:00", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := Attendance{ClockInTime: c.in, ClockOutTime: c.out}
			got, ok := a.WorkDuration()
			assert.Equal(t, c.wantOK, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestWeekdayName(t *testing.T) {
	date, err := time.Parse(DateLayout, "2024-06-03")
	assert.NoError(t, err)
	assert.Equal(t, "Monday", WeekdayName(date))
}

func TestNewAttendanceResponse(t *testing.T) {
	date, _ := time.Parse(DateLayout, "2024-06-03")
	a := Attendance{
		ID:           "a1",
		UserID:       "u1",
		Name:         "Ada Lovelace",
		Date:         date,
		Day:          "Monday",
		ClockInTime:  "09:00:00",
		ClockOutTime: "17:30:00",
		ClockIn:      true,
		ClockOut:     true,
	}

	resp := NewAttendanceResponse(a)
	assert.Equal(t, "2024-06-03", resp.Date)
	assert.Equal(t, "8h 30m", resp.Duration)
	assert.True(t, resp.ClockIn)
	assert.True(t, resp.ClockOut)
}
