package attendance

import "time"

// Record lifecycle markers.
const (
	StatusActive    = "Active"
	StatusCompleted = "Completed"
)

// Record is one employee's attendance for one working day. A graveyard shift
// record stays anchored to the date of its time-in even though its time-out
// lands on the next calendar day.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time // midnight in the business timezone

	TimeIn     *time.Time
	StartBreak *time.Time
	EndBreak   *time.Time
	TimeOut    *time.Time

	TimeInStatus  *TimeInStatus
	BreakStatus   *BreakStatus
	TimeOutStatus *TimeOutStatus

	BreakDuration int     // minutes
	WorkHours     float64 // decimal hours, 2dp, set at time-out

	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for admin listings only.
	EmployeeName *string
}

// Open reports whether the day's cycle is still unfinished.
func (r *Record) Open() bool {
	return r != nil && r.TimeIn != nil && r.TimeOut == nil
}

// Terminal reports whether time-out has been recorded. A terminal record
// accepts no further actions until the next calendar day's time-in.
func (r *Record) Terminal() bool {
	return r != nil && r.TimeOut != nil
}
