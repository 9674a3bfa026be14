package adjustment

import "time"

// Kind distinguishes the two remaining portal request types.
type Kind string

const (
	KindMakeupHours    Kind = "makeup_hours"
	KindScheduleChange Kind = "schedule_change"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Request is a makeup-hour or schedule-change application. Approving a
// schedule change records the decision only; applying it to the employee's
// base schedule stays a separate admin action.
type Request struct {
	ID         string
	EmployeeID string
	Kind       Kind
	Date       time.Time

	// Makeup-hours fields.
	Hours *float64

	// Schedule-change fields, raw time-of-day strings.
	RequestedTimeIn  *string
	RequestedTimeOut *string

	Reason     string
	Status     string
	ReviewedBy *string
	ReviewedAt *time.Time
	ReviewNote *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	EmployeeName *string
}
