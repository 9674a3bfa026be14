package leave

import "time"

// Request review states shared by every portal request type.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var TypeValues = []string{"vacation", "sick", "emergency", "bereavement", "unpaid"}

// Request is one leave application. Accrual of credits is owned by the HR
// back office; this service only checks and deducts balances on approval.
type Request struct {
	ID         string
	EmployeeID string
	Type       string
	StartDate  time.Time
	EndDate    time.Time
	Days       int
	Reason     string
	Status     string
	ReviewedBy *string
	ReviewedAt *time.Time
	ReviewNote *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for admin listings only.
	EmployeeName *string
}

// Credit is an employee's remaining balance for one leave type.
type Credit struct {
	ID         string
	EmployeeID string
	Type       string
	Balance    float64
	UpdatedAt  time.Time
}
