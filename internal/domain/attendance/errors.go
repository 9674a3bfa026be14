package attendance

import (
	"errors"
	"fmt"
)

// ErrOutOfSequence is the shared kind behind every ordering violation. Callers
// match it with errors.Is when they only care that the action came out of
// order, and on the specific sentinel when they need the step.
var ErrOutOfSequence = errors.New("attendance action out of sequence")

// Sequence errors
var (
	ErrAlreadyClockedIn  = fmt.Errorf("%w: already timed in for today", ErrOutOfSequence)
	ErrNotClockedIn      = fmt.Errorf("%w: must time in before starting break", ErrOutOfSequence)
	ErrAlreadyOnBreak    = fmt.Errorf("%w: break already started", ErrOutOfSequence)
	ErrBreakNotStarted   = fmt.Errorf("%w: must start break before ending it", ErrOutOfSequence)
	ErrBreakAlreadyEnded = fmt.Errorf("%w: break already ended", ErrOutOfSequence)
	ErrBreakStillOpen    = fmt.Errorf("%w: must end break before timing out", ErrOutOfSequence)
	ErrAlreadyClockedOut = fmt.Errorf("%w: already timed out for today", ErrOutOfSequence)
)

// Eligibility errors
var (
	ErrBreakTooSoon      = errors.New("break is available one hour after time in")
	ErrBreakWindowClosed = errors.New("cannot start break when less than 1 hour remaining")
)

// Schedule and record errors
var (
	ErrNoScheduleFound   = errors.New("no shift schedule found for employee")
	ErrBadScheduleTime   = errors.New("unparsable shift schedule time")
	ErrClockInConflict   = errors.New("another time-in for this employee is in progress")
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrRecordNotForToday = errors.New("action only available for today's record")
)
