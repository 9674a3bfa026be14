package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records. The persistence
// layer is also responsible for the at-most-one-open-record guarantee via a
// partial unique index on (employee_id) where time_out is null.
type Repository interface {
	// Create inserts a new record.
	Create(ctx context.Context, rec Record) (Record, error)

	// GetByID retrieves one record.
	GetByID(ctx context.Context, id string) (Record, error)

	// FindOpenOrToday resolves the record an action should apply to, in
	// order: today's record, else yesterday's unfinished record, else the
	// most recent unfinished record if dated today or yesterday, else nil.
	FindOpenOrToday(ctx context.Context, employeeID string, today time.Time) (*Record, error)

	// Save upserts a mutated record. Called after every engine operation.
	Save(ctx context.Context, rec Record) error

	// List retrieves records with filters and pagination (admin view).
	List(ctx context.Context, filter Filter) ([]Record, int64, error)

	// ListByEmployee retrieves one employee's records.
	ListByEmployee(ctx context.Context, employeeID string, filter MyFilter) ([]Record, int64, error)

	// ListRange retrieves completed records in a date range for reporting.
	ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
}
