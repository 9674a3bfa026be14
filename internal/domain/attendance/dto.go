package attendance

import (
	"time"

	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/validator"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// RecordResponse is the wire shape of one attendance record. Durations are
// integer minutes, times HH:MM:SS, dates YYYY-MM-DD, statuses the legacy
// display strings.
type RecordResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  *string  `json:"employee_name,omitempty"`
	Date          string   `json:"date"`
	TimeIn        *string  `json:"time_in,omitempty"`
	StartBreak    *string  `json:"start_break,omitempty"`
	EndBreak      *string  `json:"end_break,omitempty"`
	TimeOut       *string  `json:"time_out,omitempty"`
	TimeInStatus  *string  `json:"time_in_status,omitempty"`
	BreakStatus   *string  `json:"break_status,omitempty"`
	TimeOutStatus *string  `json:"time_out_status,omitempty"`
	BreakDuration int      `json:"break_duration"`
	WorkHours     *float64 `json:"work_hours,omitempty"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"created_at,omitempty"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
}

// NewRecordResponse maps a Record to its wire shape.
func NewRecordResponse(rec Record) RecordResponse {
	resp := RecordResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		Date:          rec.Date.Format(dateLayout),
		TimeIn:        timeOfDay(rec.TimeIn),
		StartBreak:    timeOfDay(rec.StartBreak),
		EndBreak:      timeOfDay(rec.EndBreak),
		TimeOut:       timeOfDay(rec.TimeOut),
		BreakDuration: rec.BreakDuration,
		Status:        rec.Status,
	}
	if rec.TimeInStatus != nil {
		s := rec.TimeInStatus.String()
		resp.TimeInStatus = &s
	}
	if rec.BreakStatus != nil {
		s := rec.BreakStatus.String()
		resp.BreakStatus = &s
	}
	if rec.TimeOutStatus != nil {
		s := rec.TimeOutStatus.String()
		resp.TimeOutStatus = &s
	}
	if rec.TimeOut != nil {
		wh := rec.WorkHours
		resp.WorkHours = &wh
	}
	if !rec.CreatedAt.IsZero() {
		resp.CreatedAt = rec.CreatedAt.Format("2006-01-02 15:04:05")
	}
	if !rec.UpdatedAt.IsZero() {
		resp.UpdatedAt = rec.UpdatedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}

func timeOfDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeLayout)
	return &s
}

// ActionStatesResponse is the answer to "which buttons light up right now".
type ActionStatesResponse struct {
	Date    string        `json:"date"`
	Actions []ActionState `json:"actions"`
}

// Filter narrows the admin listing.
type Filter struct {
	EmployeeID   *string
	EmployeeName *string
	Date         *string
	StartDate    *string
	EndDate      *string
	Status       *string
	Page         int
	Limit        int
	SortBy       string
	SortOrder    string
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	for field, v := range map[string]*string{"date": f.Date, "start_date": f.StartDate, "end_date": f.EndDate} {
		if v != nil && *v != "" {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: "must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.SortOrder != "" && f.SortOrder != "asc" && f.SortOrder != "desc" {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "must be asc or desc",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MyFilter narrows an employee's own timesheet listing.
type MyFilter struct {
	Date      *string
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

func (f *MyFilter) Validate() error {
	var errs validator.ValidationErrors

	for field, v := range map[string]*string{"date": f.Date, "start_date": f.StartDate, "end_date": f.EndDate} {
		if v != nil && *v != "" {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: "must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest lets an admin fix a record's raw times. Derived fields
// are recomputed server-side, never accepted from the client.
type UpdateRecordRequest struct {
	ID         string  `json:"-"`
	TimeIn     *string `json:"time_in,omitempty"`
	StartBreak *string `json:"start_break,omitempty"`
	EndBreak   *string `json:"end_break,omitempty"`
	TimeOut    *string `json:"time_out,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	for field, v := range map[string]*string{
		"time_in": r.TimeIn, "start_break": r.StartBreak, "end_break": r.EndBreak, "time_out": r.TimeOut,
	} {
		if v != nil && *v != "" {
			if _, err := time.Parse(timeLayout, *v); err != nil {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: "must be in HH:MM:SS format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListRecordsResponse wraps a page of records.
type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}
