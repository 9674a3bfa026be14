package report

import (
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/validator"
)

type TimesheetRequest struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (r *TimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TimesheetRow is one record flattened for display or export.
type TimesheetRow struct {
	Date          string  `json:"date"`
	TimeIn        string  `json:"time_in"`
	TimeInStatus  string  `json:"time_in_status"`
	StartBreak    string  `json:"start_break"`
	EndBreak      string  `json:"end_break"`
	BreakStatus   string  `json:"break_status"`
	TimeOut       string  `json:"time_out"`
	TimeOutStatus string  `json:"time_out_status"`
	BreakMinutes  int     `json:"break_minutes"`
	WorkHours     float64 `json:"work_hours"`
}

type TimesheetResponse struct {
	EmployeeID     string         `json:"employee_id"`
	EmployeeName   string         `json:"employee_name"`
	StartDate      string         `json:"start_date"`
	EndDate        string         `json:"end_date"`
	TotalWorkHours float64        `json:"total_work_hours"`
	Rows           []TimesheetRow `json:"rows"`
}
