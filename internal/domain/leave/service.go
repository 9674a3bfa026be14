package leave

import "context"

type Service interface {
	// Submit files a leave request for the authenticated employee.
	Submit(ctx context.Context, req SubmitRequest) (RequestResponse, error)

	// GetMyRequests lists the authenticated employee's requests.
	GetMyRequests(ctx context.Context, filter Filter) (ListRequestsResponse, error)

	// GetMyCredits lists the authenticated employee's credit balances.
	GetMyCredits(ctx context.Context) ([]CreditResponse, error)

	// ListRequests lists requests across employees (admin).
	ListRequests(ctx context.Context, filter Filter) (ListRequestsResponse, error)

	// Approve approves a pending request and deducts credits.
	Approve(ctx context.Context, req ReviewRequest) (RequestResponse, error)

	// Reject rejects a pending request with a note.
	Reject(ctx context.Context, req ReviewRequest) (RequestResponse, error)

	// AdjustCredit changes an employee's balance (admin).
	AdjustCredit(ctx context.Context, req AdjustCreditRequest) (CreditResponse, error)
}
