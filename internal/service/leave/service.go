package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/leave"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/notification"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/clock"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/database"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/validator"
	"github.com/workpoint-ph/attendance-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db            *database.DB
	clock         clock.Clock
	requests      leave.RequestRepository
	credits       leave.CreditRepository
	notifications notification.Service
}

func NewLeaveService(
	db *database.DB,
	clk clock.Clock,
	requestRepo leave.RequestRepository,
	creditRepo leave.CreditRepository,
	notificationService notification.Service,
) leave.Service {
	return &LeaveServiceImpl{
		db:            db,
		clock:         clk,
		requests:      requestRepo,
		credits:       creditRepo,
		notifications: notificationService,
	}
}

func claimsFromContext(ctx context.Context) (employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}
	return employeeID, nil
}

// Submit implements leave.Service.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	days := leave.WorkingDaysBetween(start, end)
	if days == 0 {
		return leave.RequestResponse{}, validator.ValidationErrors{
			{Field: "start_date", Message: "range covers no working days"},
		}
	}

	overlap, err := s.requests.HasOverlap(ctx, employeeID, start, end)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	if overlap {
		return leave.RequestResponse{}, leave.ErrOverlappingRequest
	}

	// Paid leave needs enough balance up front; unpaid never checks.
	if req.Type != "unpaid" {
		credit, err := s.credits.GetBalance(ctx, employeeID, req.Type)
		if err != nil {
			return leave.RequestResponse{}, err
		}
		if credit.Balance < float64(days) {
			return leave.RequestResponse{}, leave.ErrInsufficientCredits
		}
	}

	created, err := s.requests.Create(ctx, leave.Request{
		EmployeeID: employeeID,
		Type:       req.Type,
		StartDate:  start,
		EndDate:    end,
		Days:       days,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}
	return leave.NewRequestResponse(created), nil
}

// GetMyRequests implements leave.Service.
func (s *LeaveServiceImpl) GetMyRequests(ctx context.Context, filter leave.Filter) (leave.ListRequestsResponse, error) {
	employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.ListRequestsResponse{}, err
	}
	filter.EmployeeID = &employeeID
	return s.list(ctx, filter)
}

// GetMyCredits implements leave.Service.
func (s *LeaveServiceImpl) GetMyCredits(ctx context.Context) ([]leave.CreditResponse, error) {
	employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	credits, err := s.credits.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.CreditResponse, 0, len(credits))
	for _, c := range credits {
		responses = append(responses, leave.CreditResponse{EmployeeID: c.EmployeeID, Type: c.Type, Balance: c.Balance})
	}
	return responses, nil
}

// ListRequests implements leave.Service.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.Filter) (leave.ListRequestsResponse, error) {
	return s.list(ctx, filter)
}

func (s *LeaveServiceImpl) list(ctx context.Context, filter leave.Filter) (leave.ListRequestsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	requests, total, err := s.requests.List(ctx, filter)
	if err != nil {
		return leave.ListRequestsResponse{}, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.NewRequestResponse(req))
	}
	return leave.ListRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   responses,
	}, nil
}

// Approve implements leave.Service. The status flip and the credit deduction
// commit together or not at all.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.ReviewRequest) (leave.RequestResponse, error) {
	return s.review(ctx, req, leave.StatusApproved)
}

// Reject implements leave.Service.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.ReviewRequest) (leave.RequestResponse, error) {
	return s.review(ctx, req, leave.StatusRejected)
}

func (s *LeaveServiceImpl) review(ctx context.Context, req leave.ReviewRequest, status string) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	reviewerID, err := claimsFromContext(ctx)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	var reviewed leave.Request
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.requests.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusPending {
			return leave.ErrRequestAlreadyProcessed
		}

		if status == leave.StatusApproved && request.Type != "unpaid" {
			credit, err := s.credits.GetBalance(txCtx, request.EmployeeID, request.Type)
			if err != nil {
				return err
			}
			if credit.Balance < float64(request.Days) {
				return leave.ErrInsufficientCredits
			}
			if _, err := s.credits.Adjust(txCtx, request.EmployeeID, request.Type, -float64(request.Days)); err != nil {
				return err
			}
		}

		now := s.clock.Now()
		request.Status = status
		request.ReviewedBy = &reviewerID
		request.ReviewedAt = &now
		if req.Note != "" {
			request.ReviewNote = &req.Note
		}
		if err := s.requests.Update(txCtx, request); err != nil {
			return err
		}
		reviewed = request
		return nil
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	// Notification failure never unwinds the review itself.
	_ = s.notifications.Publish(ctx, notification.PublishRequest{
		EmployeeID: reviewed.EmployeeID,
		Type:       notification.TypeLeaveReviewed,
		Title:      "Leave request " + status,
		Message:    fmt.Sprintf("Your %s leave request for %s to %s was %s.", reviewed.Type, reviewed.StartDate.Format("2006-01-02"), reviewed.EndDate.Format("2006-01-02"), status),
	})

	return leave.NewRequestResponse(reviewed), nil
}

// AdjustCredit implements leave.Service.
func (s *LeaveServiceImpl) AdjustCredit(ctx context.Context, req leave.AdjustCreditRequest) (leave.CreditResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.CreditResponse{}, err
	}

	credit, err := s.credits.Adjust(ctx, req.EmployeeID, req.Type, req.Delta)
	if err != nil {
		return leave.CreditResponse{}, err
	}

	_ = s.notifications.Publish(ctx, notification.PublishRequest{
		EmployeeID: req.EmployeeID,
		Type:       notification.TypeCreditAdjusted,
		Title:      "Leave credits adjusted",
		Message:    fmt.Sprintf("Your %s leave balance is now %.1f days.", req.Type, credit.Balance),
	})

	return leave.CreditResponse{EmployeeID: credit.EmployeeID, Type: credit.Type, Balance: credit.Balance}, nil
}
