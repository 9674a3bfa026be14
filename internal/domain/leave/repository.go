package leave

import (
	"context"
	"time"
)

type RequestRepository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Update(ctx context.Context, req Request) error
	List(ctx context.Context, filter Filter) ([]Request, int64, error)
	// HasOverlap reports whether a pending or approved request of the
	// employee overlaps the given date range.
	HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
}

type CreditRepository interface {
	GetBalance(ctx context.Context, employeeID, leaveType string) (Credit, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Credit, error)
	// Adjust adds delta (may be negative) to the balance, creating the row
	// when none exists.
	Adjust(ctx context.Context, employeeID, leaveType string, delta float64) (Credit, error)
}
