package adjustment

import "context"

type Service interface {
	// SubmitMakeup files a makeup-hours request for the authenticated employee.
	SubmitMakeup(ctx context.Context, req SubmitMakeupRequest) (RequestResponse, error)

	// SubmitScheduleChange files a schedule-change request.
	SubmitScheduleChange(ctx context.Context, req SubmitScheduleChangeRequest) (RequestResponse, error)

	// GetMyRequests lists the authenticated employee's requests.
	GetMyRequests(ctx context.Context, filter Filter) (ListRequestsResponse, error)

	// ListRequests lists requests across employees (admin).
	ListRequests(ctx context.Context, filter Filter) (ListRequestsResponse, error)

	// Approve approves a pending request.
	Approve(ctx context.Context, req ReviewRequest) (RequestResponse, error)

	// Reject rejects a pending request with a note.
	Reject(ctx context.Context, req ReviewRequest) (RequestResponse, error)
}
