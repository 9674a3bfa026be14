package attendance

import (
	"fmt"
	"strings"
	"time"
)

// ShiftTime is a wall-clock time of day with no date attached.
type ShiftTime struct {
	Hour   int
	Minute int
}

// shiftTimeLayouts covers the two textual forms schedules arrive in:
// 24-hour ("08:00", "22:00:00") and 12-hour ("8:00 AM", "10:00 pm").
var shiftTimeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
	"3:04PM",
}

// ParseShiftTime normalizes a schedule time string to a ShiftTime.
func ParseShiftTime(s string) (ShiftTime, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range shiftTimeLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return ShiftTime{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return ShiftTime{}, fmt.Errorf("%w: %q", ErrBadScheduleTime, s)
}

// On anchors the time of day to the given calendar date.
func (st ShiftTime) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), st.Hour, st.Minute, 0, 0, date.Location())
}

func (st ShiftTime) String() string {
	return fmt.Sprintf("%02d:%02d", st.Hour, st.Minute)
}

// Shift is an employee's fixed schedule for one working day. Immutable for the
// duration of one day's attendance cycle.
type Shift struct {
	In             ShiftTime
	Out            ShiftTime
	EmploymentType string
}

// ParseShift builds a Shift from the raw schedule strings on the employee
// record.
func ParseShift(scheduledIn, scheduledOut, employmentType string) (Shift, error) {
	in, err := ParseShiftTime(scheduledIn)
	if err != nil {
		return Shift{}, err
	}
	out, err := ParseShiftTime(scheduledOut)
	if err != nil {
		return Shift{}, err
	}
	return Shift{In: in, Out: out, EmploymentType: employmentType}, nil
}
