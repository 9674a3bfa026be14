package adjustment

import (
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/attendance"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type SubmitMakeupRequest struct {
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
	Reason string  `json:"reason"`
}

func (r *SubmitMakeupRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.Hours <= 0 || r.Hours > 12 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "must be between 0 and 12"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubmitScheduleChangeRequest struct {
	Date             string `json:"date"`
	RequestedTimeIn  string `json:"requested_time_in"`
	RequestedTimeOut string `json:"requested_time_out"`
	Reason           string `json:"reason"`
}

func (r *SubmitScheduleChangeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if _, err := attendance.ParseShiftTime(r.RequestedTimeIn); err != nil {
		errs = append(errs, validator.ValidationError{Field: "requested_time_in", Message: "must be a valid time of day"})
	}
	if _, err := attendance.ParseShiftTime(r.RequestedTimeOut); err != nil {
		errs = append(errs, validator.ValidationError{Field: "requested_time_out", Message: "must be a valid time of day"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewRequest struct {
	ID   string `json:"-"`
	Note string `json:"note"`
}

func (r *ReviewRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID               string   `json:"id"`
	EmployeeID       string   `json:"employee_id"`
	EmployeeName     *string  `json:"employee_name,omitempty"`
	Kind             string   `json:"kind"`
	Date             string   `json:"date"`
	Hours            *float64 `json:"hours,omitempty"`
	RequestedTimeIn  *string  `json:"requested_time_in,omitempty"`
	RequestedTimeOut *string  `json:"requested_time_out,omitempty"`
	Reason           string   `json:"reason"`
	Status           string   `json:"status"`
	ReviewedBy       *string  `json:"reviewed_by,omitempty"`
	ReviewedAt       *string  `json:"reviewed_at,omitempty"`
	ReviewNote       *string  `json:"review_note,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

func NewRequestResponse(req Request) RequestResponse {
	resp := RequestResponse{
		ID:               req.ID,
		EmployeeID:       req.EmployeeID,
		EmployeeName:     req.EmployeeName,
		Kind:             string(req.Kind),
		Date:             req.Date.Format(dateLayout),
		Hours:            req.Hours,
		RequestedTimeIn:  req.RequestedTimeIn,
		RequestedTimeOut: req.RequestedTimeOut,
		Reason:           req.Reason,
		Status:           req.Status,
		ReviewedBy:       req.ReviewedBy,
		ReviewNote:       req.ReviewNote,
		CreatedAt:        req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if req.ReviewedAt != nil {
		s := req.ReviewedAt.Format("2006-01-02 15:04:05")
		resp.ReviewedAt = &s
	}
	return resp
}

type Filter struct {
	EmployeeID *string
	Kind       *string
	Status     *string
	Page       int
	Limit      int
}

type ListRequestsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Requests   []RequestResponse `json:"requests"`
}
