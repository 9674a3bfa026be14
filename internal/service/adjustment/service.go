package adjustment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/adjustment"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/notification"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/clock"
)

type AdjustmentServiceImpl struct {
	clock         clock.Clock
	requests      adjustment.Repository
	notifications notification.Service
}

func NewAdjustmentService(
	clk clock.Clock,
	requestRepo adjustment.Repository,
	notificationService notification.Service,
) adjustment.Service {
	return &AdjustmentServiceImpl{
		clock:         clk,
		requests:      requestRepo,
		notifications: notificationService,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
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

// SubmitMakeup implements adjustment.Service.
func (s *AdjustmentServiceImpl) SubmitMakeup(ctx context.Context, req adjustment.SubmitMakeupRequest) (adjustment.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.RequestResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return adjustment.RequestResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	hours := req.Hours

	created, err := s.requests.Create(ctx, adjustment.Request{
		EmployeeID: employeeID,
		Kind:       adjustment.KindMakeupHours,
		Date:       date,
		Hours:      &hours,
		Reason:     req.Reason,
		Status:     adjustment.StatusPending,
	})
	if err != nil {
		return adjustment.RequestResponse{}, err
	}
	return adjustment.NewRequestResponse(created), nil
}

// SubmitScheduleChange implements adjustment.Service.
func (s *AdjustmentServiceImpl) SubmitScheduleChange(ctx context.Context, req adjustment.SubmitScheduleChangeRequest) (adjustment.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.RequestResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return adjustment.RequestResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	timeIn := req.RequestedTimeIn
	timeOut := req.RequestedTimeOut

	created, err := s.requests.Create(ctx, adjustment.Request{
		EmployeeID:       employeeID,
		Kind:             adjustment.KindScheduleChange,
		Date:             date,
		RequestedTimeIn:  &timeIn,
		RequestedTimeOut: &timeOut,
		Reason:           req.Reason,
		Status:           adjustment.StatusPending,
	})
	if err != nil {
		return adjustment.RequestResponse{}, err
	}
	return adjustment.NewRequestResponse(created), nil
}

// GetMyRequests implements adjustment.Service.
func (s *AdjustmentServiceImpl) GetMyRequests(ctx context.Context, filter adjustment.Filter) (adjustment.ListRequestsResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return adjustment.ListRequestsResponse{}, err
	}
	filter.EmployeeID = &employeeID
	return s.list(ctx, filter)
}

// ListRequests implements adjustment.Service.
func (s *AdjustmentServiceImpl) ListRequests(ctx context.Context, filter adjustment.Filter) (adjustment.ListRequestsResponse, error) {
	return s.list(ctx, filter)
}

func (s *AdjustmentServiceImpl) list(ctx context.Context, filter adjustment.Filter) (adjustment.ListRequestsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	requests, total, err := s.requests.List(ctx, filter)
	if err != nil {
		return adjustment.ListRequestsResponse{}, err
	}

	responses := make([]adjustment.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, adjustment.NewRequestResponse(req))
	}
	return adjustment.ListRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   responses,
	}, nil
}

// Approve implements adjustment.Service.
func (s *AdjustmentServiceImpl) Approve(ctx context.Context, req adjustment.ReviewRequest) (adjustment.RequestResponse, error) {
	return s.review(ctx, req, adjustment.StatusApproved)
}

// Reject implements adjustment.Service.
func (s *AdjustmentServiceImpl) Reject(ctx context.Context, req adjustment.ReviewRequest) (adjustment.RequestResponse, error) {
	return s.review(ctx, req, adjustment.StatusRejected)
}

func (s *AdjustmentServiceImpl) review(ctx context.Context, req adjustment.ReviewRequest, status string) (adjustment.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.RequestResponse{}, err
	}

	reviewerID, err := employeeIDFromContext(ctx)
	if err != nil {
		return adjustment.RequestResponse{}, err
	}

	request, err := s.requests.GetByID(ctx, req.ID)
	if err != nil {
		return adjustment.RequestResponse{}, err
	}
	if request.Status != adjustment.StatusPending {
		return adjustment.RequestResponse{}, adjustment.ErrRequestAlreadyProcessed
	}

	now := s.clock.Now()
	request.Status = status
	request.ReviewedBy = &reviewerID
	request.ReviewedAt = &now
	if req.Note != "" {
		request.ReviewNote = &req.Note
	}
	if err := s.requests.Update(ctx, request); err != nil {
		return adjustment.RequestResponse{}, err
	}

	_ = s.notifications.Publish(ctx, notification.PublishRequest{
		EmployeeID: request.EmployeeID,
		Type:       notification.TypeAdjustmentReviewed,
		Title:      "Adjustment request " + status,
		Message:    fmt.Sprintf("Your %s request for %s was %s.", request.Kind, request.Date.Format("2006-01-02"), status),
	})

	return adjustment.NewRequestResponse(request), nil
}
