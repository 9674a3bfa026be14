package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/clock"
)

var manila = func() *time.Location {
	loc, err := time.LoadLocation(clock.BusinessTimezone)
	if err != nil {
		panic(err)
	}
	return loc
}()

// at builds an instant on 2026-01-15 (a Thursday) in the business timezone.
func at(hour, minute int) time.Time {
	return time.Date(2026, 1, 15, hour, minute, 0, 0, manila)
}

func atDay(day, hour, minute int) time.Time {
	return time.Date(2026, 1, day, hour, minute, 0, 0, manila)
}

func dayShift(t *testing.T) Shift {
	t.Helper()
	shift, err := ParseShift("08:00", "17:00", "regular")
	require.NoError(t, err)
	return shift
}

func graveyardShift(t *testing.T) Shift {
	t.Helper()
	shift, err := ParseShift("10:00 PM", "6:00 AM", "regular")
	require.NoError(t, err)
	return shift
}

func TestClockInOnTime(t *testing.T) {
	pol := DefaultPolicy()
	rec := Record{EmployeeID: "emp-1"}

	err := ClockIn(at(8, 0), dayShift(t), pol, &rec)
	require.NoError(t, err)

	require.NotNil(t, rec.TimeIn)
	assert.Equal(t, at(8, 0), *rec.TimeIn)
	assert.Equal(t, atDay(15, 0, 0), rec.Date)
	assert.Equal(t, StatusActive, rec.Status)
	require.NotNil(t, rec.TimeInStatus)
	assert.Equal(t, "On Time", rec.TimeInStatus.String())
}

func TestClockInLate(t *testing.T) {
	pol := DefaultPolicy()
	rec := Record{}

	err := ClockIn(at(8, 15), dayShift(t), pol, &rec)
	require.NoError(t, err)
	assert.Equal(t, "Late(15)", rec.TimeInStatus.String())
}

func TestClockInEarly(t *testing.T) {
	pol := DefaultPolicy()
	rec := Record{}

	err := ClockIn(at(7, 50), dayShift(t), pol, &rec)
	require.NoError(t, err)
	assert.Equal(t, "Early(10)", rec.TimeInStatus.String())
}

func TestClockInTwiceFails(t *testing.T) {
	pol := DefaultPolicy()
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), dayShift(t), pol, &rec))
	err := ClockIn(at(8, 5), dayShift(t), pol, &rec)
	assert.ErrorIs(t, err, ErrAlreadyClockedIn)
	assert.ErrorIs(t, err, ErrOutOfSequence)
	assert.Equal(t, at(8, 0), *rec.TimeIn)
}

func TestClockInGraveyardEarlySameEvening(t *testing.T) {
	// 21:50 against a 22:00 schedule is ten minutes early, no midnight
	// correction applies because both sit on the evening side.
	pol := DefaultPolicy()
	rec := Record{}

	err := ClockIn(at(21, 50), graveyardShift(t), pol, &rec)
	require.NoError(t, err)
	assert.Equal(t, "Early(10)", rec.TimeInStatus.String())
}

func TestClockInGraveyardLateAfterMidnight(t *testing.T) {
	// 01:00 against a 22:00 schedule belongs to the previous evening's
	// shift: three hours late, not 21 hours early.
	pol := DefaultPolicy()
	rec := Record{}

	err := ClockIn(atDay(16, 1, 0), graveyardShift(t), pol, &rec)
	require.NoError(t, err)
	assert.Equal(t, "Late(180)", rec.TimeInStatus.String())
}

func TestClockInEveningAgainstMorningSchedule(t *testing.T) {
	// 23:00 against a 01:00 schedule counts toward the next day's shift.
	pol := DefaultPolicy()
	shift, err := ParseShift("01:00", "09:00", "regular")
	require.NoError(t, err)
	rec := Record{}

	require.NoError(t, ClockIn(at(23, 0), shift, pol, &rec))
	assert.Equal(t, "Early(120)", rec.TimeInStatus.String())
}

func TestStartBreakSequence(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}

	err := StartBreak(at(9, 0), shift, pol, &rec)
	assert.ErrorIs(t, err, ErrNotClockedIn)

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))

	err = StartBreak(at(8, 30), shift, pol, &rec)
	assert.ErrorIs(t, err, ErrBreakTooSoon)
	assert.Nil(t, rec.StartBreak)

	require.NoError(t, StartBreak(at(12, 0), shift, pol, &rec))

	err = StartBreak(at(12, 5), shift, pol, &rec)
	assert.ErrorIs(t, err, ErrAlreadyOnBreak)
}

func TestStartBreakExactlyAtDelayBoundary(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	assert.NoError(t, StartBreak(at(9, 0), shift, pol, &rec))
}

func TestStartBreakWindowClosesNearShiftEnd(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))

	// 16:30 leaves only 30 minutes before the 17:00 scheduled out.
	err := StartBreak(at(16, 30), shift, pol, &rec)
	assert.ErrorIs(t, err, ErrBreakWindowClosed)

	// Exactly 60 minutes remaining is still closed.
	err = StartBreak(at(16, 0), shift, pol, &rec)
	assert.ErrorIs(t, err, ErrBreakWindowClosed)

	assert.NoError(t, StartBreak(at(15, 59), shift, pol, &rec))
}

func TestEndBreakWithinAllowance(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	require.NoError(t, StartBreak(at(12, 0), shift, pol, &rec))
	require.NoError(t, EndBreak(at(12, 30), shift, pol, &rec))

	assert.Equal(t, 30, rec.BreakDuration)
	assert.Equal(t, "On Time", rec.BreakStatus.String())
}

func TestEndBreakOverAllowance(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	require.NoError(t, StartBreak(at(12, 0), shift, pol, &rec))
	require.NoError(t, EndBreak(at(13, 10), shift, pol, &rec))

	// The full elapsed break is recorded, not the clamped allowance.
	assert.Equal(t, 70, rec.BreakDuration)
	assert.Equal(t, "Overbreak(10)", rec.BreakStatus.String())
}

func TestEndBreakTrainingAllowance(t *testing.T) {
	pol := DefaultPolicy()
	shift, err := ParseShift("08:00", "17:00", "training")
	require.NoError(t, err)
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	require.NoError(t, StartBreak(at(12, 0), shift, pol, &rec))
	require.NoError(t, EndBreak(at(13, 10), shift, pol, &rec))

	assert.Equal(t, 70, rec.BreakDuration)
	assert.Equal(t, "Overbreak(55)", rec.BreakStatus.String())
}

func TestEndBreakSequence(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))

	err := EndBreak(at(12, 0), shift, pol, &rec)
	assert.ErrorIs(t, err, ErrBreakNotStarted)

	require.NoError(t, StartBreak(at(12, 0), shift, pol, &rec))
	require.NoError(t, EndBreak(at(12, 30), shift, pol, &rec))

	err = EndBreak(at(12, 45), shift, pol, &rec)
	assert.ErrorIs(t, err, ErrBreakAlreadyEnded)
}

func TestClockOutFullDay(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	require.NoError(t, StartBreak(at(12, 0), shift, pol, &rec))
	require.NoError(t, EndBreak(at(12, 30), shift, pol, &rec))
	require.NoError(t, ClockOut(at(17, 0), shift, pol, &rec))

	assert.Equal(t, StatusCompleted, rec.Status)
	assert.Equal(t, "On Time", rec.TimeOutStatus.String())
	assert.Equal(t, 8.5, rec.WorkHours)
}

func TestClockOutWithOpenBreakFails(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	require.NoError(t, StartBreak(at(12, 0), shift, pol, &rec))

	err := ClockOut(at(17, 0), shift, pol, &rec)
	assert.ErrorIs(t, err, ErrBreakStillOpen)
	assert.Nil(t, rec.TimeOut)
}

func TestClockOutUndertime(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	require.NoError(t, ClockOut(at(16, 20), shift, pol, &rec))

	assert.Equal(t, "Undertime(40)", rec.TimeOutStatus.String())
	assert.InDelta(t, 8.33, rec.WorkHours, 0.001)
}

func TestClockOutOvertimeWithOverbreak(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	require.NoError(t, StartBreak(at(12, 0), shift, pol, &rec))
	require.NoError(t, EndBreak(at(13, 10), shift, pol, &rec))
	require.NoError(t, ClockOut(at(17, 30), shift, pol, &rec))

	assert.Equal(t, "Overtime(30) | Overbreak(10)", rec.TimeOutStatus.String())
}

func TestClockOutTwiceFails(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	require.NoError(t, ClockOut(at(17, 0), shift, pol, &rec))

	err := ClockOut(at(17, 5), shift, pol, &rec)
	assert.ErrorIs(t, err, ErrAlreadyClockedOut)
}

func TestGraveyardFullCycle(t *testing.T) {
	// In 22:00 Jan 15, break 02:00-02:45, out 06:30 Jan 16. The record stays
	// anchored to Jan 15 while the time-out is judged against 06:00 Jan 16.
	pol := DefaultPolicy()
	shift := graveyardShift(t)
	rec := Record{}

	require.NoError(t, ClockIn(atDay(15, 22, 0), shift, pol, &rec))
	assert.Equal(t, atDay(15, 0, 0), rec.Date)
	assert.Equal(t, "On Time", rec.TimeInStatus.String())

	require.NoError(t, StartBreak(atDay(16, 2, 0), shift, pol, &rec))
	require.NoError(t, EndBreak(atDay(16, 2, 45), shift, pol, &rec))
	assert.Equal(t, 45, rec.BreakDuration)

	require.NoError(t, ClockOut(atDay(16, 6, 30), shift, pol, &rec))
	assert.Equal(t, "Overtime(30)", rec.TimeOutStatus.String())
	assert.Equal(t, 7.75, rec.WorkHours)
	assert.Equal(t, atDay(15, 0, 0), rec.Date)
}

func TestGraveyardBreakWindowBeforeMidnight(t *testing.T) {
	// At 23:30 against a 05:00-next-morning scheduled out, the window is
	// wide open: the scheduled out resolves to tomorrow, not today.
	pol := DefaultPolicy()
	shift, err := ParseShift("22:00", "05:00", "regular")
	require.NoError(t, err)
	rec := Record{}

	require.NoError(t, ClockIn(atDay(15, 22, 0), shift, pol, &rec))
	assert.NoError(t, StartBreak(atDay(15, 23, 30), shift, pol, &rec))
}

func TestGraveyardUndertimeBeforeMidnight(t *testing.T) {
	// Clocking out at 23:00 against the 05:00-next-morning schedule is six
	// hours undertime.
	pol := DefaultPolicy()
	shift, err := ParseShift("22:00", "05:00", "regular")
	require.NoError(t, err)
	rec := Record{}

	require.NoError(t, ClockIn(atDay(15, 22, 0), shift, pol, &rec))
	require.NoError(t, ClockOut(atDay(15, 23, 0), shift, pol, &rec))
	assert.Equal(t, "Undertime(360)", rec.TimeOutStatus.String())
}

func TestFailedOperationLeavesRecordUntouched(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	rec := Record{}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	snapshot := rec

	require.Error(t, StartBreak(at(8, 10), shift, pol, &rec))
	assert.Equal(t, snapshot, rec)
}

func TestClockInResetsStaleFields(t *testing.T) {
	pol := DefaultPolicy()
	shift := dayShift(t)
	stale := at(7, 0)
	rec := Record{
		StartBreak:    &stale,
		BreakDuration: 99,
		WorkHours:     9.9,
	}

	require.NoError(t, ClockIn(at(8, 0), shift, pol, &rec))
	assert.Nil(t, rec.StartBreak)
	assert.Zero(t, rec.BreakDuration)
	assert.Zero(t, rec.WorkHours)
}
