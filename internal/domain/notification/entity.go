package notification

import "time"

// Notification kinds the portal emits.
const (
	TypeLeaveReviewed      = "leave_reviewed"
	TypeAdjustmentReviewed = "adjustment_reviewed"
	TypeCreditAdjusted     = "credit_adjusted"
)

type Notification struct {
	ID         string
	EmployeeID string
	Type       string
	Title      string
	Message    string
	IsRead     bool
	CreatedAt  time.Time
}
