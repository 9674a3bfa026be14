package clock

import "time"

// BusinessTimezone is the fixed wall-clock zone all attendance arithmetic is
// anchored to. Host-local time is never consulted.
const BusinessTimezone = "Asia/Manila"

// Clock supplies the current instant in the business timezone.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type businessClock struct {
	loc *time.Location
}

// NewBusinessClock loads the business timezone once and returns a Clock
// reporting wall-clock time in that zone.
func NewBusinessClock() (Clock, error) {
	loc, err := time.LoadLocation(BusinessTimezone)
	if err != nil {
		return nil, err
	}
	return &businessClock{loc: loc}, nil
}

func (c *businessClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *businessClock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock pinned to a single instant. Used in tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}

func (f Fixed) Location() *time.Location {
	return f.T.Location()
}

// DateOf truncates t to midnight in its own location. The result is the
// work-day anchor attendance records are keyed by.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
