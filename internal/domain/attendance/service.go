package attendance

import "context"

// Service defines the business operations behind the portal's four buttons
// and the timesheet views. The employee identity always comes from the JWT
// claims in ctx, never from the request body.
type Service interface {
	// TimeIn opens (or reuses) today's record and records the time-in.
	TimeIn(ctx context.Context) (RecordResponse, error)

	// StartBreak records the start of the day's break.
	StartBreak(ctx context.Context) (RecordResponse, error)

	// EndBreak records the end of the day's break.
	EndBreak(ctx context.Context) (RecordResponse, error)

	// TimeOut records the time-out and closes the record.
	TimeOut(ctx context.Context) (RecordResponse, error)

	// ActionStates reports eligibility of all four actions right now.
	ActionStates(ctx context.Context) (ActionStatesResponse, error)

	// GetMyRecords lists the authenticated employee's records.
	GetMyRecords(ctx context.Context, filter MyFilter) (ListRecordsResponse, error)

	// ListRecords lists records across employees (admin).
	ListRecords(ctx context.Context, filter Filter) (ListRecordsResponse, error)

	// UpdateRecord fixes a record's raw times and rederives statuses (admin).
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)
}
