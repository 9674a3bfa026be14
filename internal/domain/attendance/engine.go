package attendance

import (
	"math"
	"time"

	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/clock"
)

const minutesPerDay = 24 * 60

// The engine is a set of pure operations over one Record. Every operation
// validates fully before touching any field, so a failed call leaves the
// record exactly as it was. All instants must already be in the business
// timezone; the engine never converts zones itself.

// ClockIn records the day's time-in and derives its status against the
// scheduled start.
func ClockIn(now time.Time, shift Shift, pol Policy, rec *Record) error {
	if rec.TimeIn != nil {
		return ErrAlreadyClockedIn
	}

	scheduled := shift.In.On(clock.DateOf(now))
	diff := minutesBetween(scheduled, now)
	diff = pol.adjustAcrossMidnight(diff, now.Hour(), shift.In.Hour)

	in := now
	rec.Date = clock.DateOf(now)
	rec.TimeIn = &in
	rec.TimeInStatus = classifyTimeIn(diff)
	rec.Status = StatusActive

	// Reset in case a stale record object is being reused.
	rec.StartBreak = nil
	rec.EndBreak = nil
	rec.TimeOut = nil
	rec.BreakStatus = nil
	rec.TimeOutStatus = nil
	rec.BreakDuration = 0
	rec.WorkHours = 0
	return nil
}

// StartBreak opens the day's break. Beyond the ordering rules it enforces the
// break window: at least BreakDelayMinutes after time-in, and more than
// BreakCutoffMinutes before the scheduled time-out.
func StartBreak(now time.Time, shift Shift, pol Policy, rec *Record) error {
	if rec.Terminal() {
		return ErrAlreadyClockedOut
	}
	if rec.TimeIn == nil {
		return ErrNotClockedIn
	}
	if rec.StartBreak != nil {
		return ErrAlreadyOnBreak
	}
	if minutesBetween(*rec.TimeIn, now) < pol.BreakDelayMinutes {
		return ErrBreakTooSoon
	}
	if minutesBetween(now, pol.scheduledOut(now, shift)) <= pol.BreakCutoffMinutes {
		return ErrBreakWindowClosed
	}

	start := now
	rec.StartBreak = &start
	rec.EndBreak = nil
	rec.BreakStatus = nil
	rec.BreakDuration = 0
	return nil
}

// EndBreak closes the day's break and derives the break status. The full
// elapsed break is recorded even when it exceeds the allowance; only the
// status carries the overage. Breaks are assumed not to span midnight.
func EndBreak(now time.Time, shift Shift, pol Policy, rec *Record) error {
	if rec.Terminal() {
		return ErrAlreadyClockedOut
	}
	if rec.StartBreak == nil {
		return ErrBreakNotStarted
	}
	if rec.EndBreak != nil {
		return ErrBreakAlreadyEnded
	}

	breakMinutes := minutesBetween(*rec.StartBreak, now)
	allowance := pol.BreakAllowance(shift.EmploymentType)

	end := now
	rec.EndBreak = &end
	rec.BreakDuration = breakMinutes
	rec.BreakStatus = &BreakStatus{OverbreakMinutes: max(0, breakMinutes-allowance)}
	return nil
}

// ClockOut records the day's time-out, derives the composite status and the
// worked hours, and makes the record terminal.
func ClockOut(now time.Time, shift Shift, pol Policy, rec *Record) error {
	if rec.Terminal() {
		return ErrAlreadyClockedOut
	}
	if rec.TimeIn == nil {
		return ErrNotClockedIn
	}
	if rec.StartBreak != nil && rec.EndBreak == nil {
		return ErrBreakStillOpen
	}

	workMinutes := minutesBetween(*rec.TimeIn, now) - rec.BreakDuration
	diff := minutesBetween(pol.scheduledOut(now, shift), now)
	overbreak := max(0, rec.BreakDuration-pol.BreakAllowance(shift.EmploymentType))

	out := now
	rec.TimeOut = &out
	rec.WorkHours = math.Round(float64(workMinutes)/60*100) / 100
	rec.TimeOutStatus = classifyTimeOut(diff, overbreak)
	rec.Status = StatusCompleted
	return nil
}

func classifyTimeIn(diffMinutes int) *TimeInStatus {
	switch {
	case diffMinutes < 0:
		return &TimeInStatus{Facet: FacetEarly, Minutes: -diffMinutes}
	case diffMinutes > 0:
		return &TimeInStatus{Facet: FacetLate, Minutes: diffMinutes}
	default:
		return &TimeInStatus{Facet: FacetOnTime}
	}
}

func classifyTimeOut(diffMinutes, overbreakMinutes int) *TimeOutStatus {
	st := TimeOutStatus{Facet: FacetOnTime, OverbreakMinutes: overbreakMinutes}
	switch {
	case diffMinutes < 0:
		st.Facet = FacetUndertime
		st.Minutes = -diffMinutes
	case diffMinutes > 0:
		st.Facet = FacetOvertime
		st.Minutes = diffMinutes
	}
	return &st
}

// adjustAcrossMidnight corrects a raw scheduled-vs-actual difference when the
// two instants sit on opposite sides of midnight: an early-morning actual
// against an evening schedule belongs to the previous day's shift, and an
// evening actual against an early-morning schedule belongs to the next one.
func (p Policy) adjustAcrossMidnight(diffMinutes, actualHour, scheduledHour int) int {
	switch {
	case actualHour < p.MorningBoundaryHour && scheduledHour >= p.EveningBoundaryHour:
		return diffMinutes + minutesPerDay
	case actualHour >= p.EveningBoundaryHour && scheduledHour < p.MorningBoundaryHour:
		return diffMinutes - minutesPerDay
	}
	return diffMinutes
}

// scheduledOut resolves the scheduled time-out to a concrete instant on the
// side of midnight the actual clock is on.
func (p Policy) scheduledOut(now time.Time, shift Shift) time.Time {
	out := shift.Out.On(clock.DateOf(now))
	switch {
	case now.Hour() < p.MorningBoundaryHour && shift.Out.Hour >= p.EveningBoundaryHour:
		return out.AddDate(0, 0, -1)
	case now.Hour() >= p.EveningBoundaryHour && shift.Out.Hour < p.MorningBoundaryHour:
		return out.AddDate(0, 0, 1)
	}
	return out
}

func minutesBetween(from, to time.Time) int {
	return int(to.Sub(from).Minutes())
}
