package employee

import (
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/attendance"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Code             string `json:"code"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Role             string `json:"role"`
	EmploymentType   string `json:"employment_type"`
	ScheduledTimeIn  string `json:"scheduled_time_in"`
	ScheduledTimeOut string `json:"scheduled_time_out"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "must be in NNNN-NNNN format"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if !validator.IsInSlice(r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be employee or admin"})
	}
	if !validator.IsInSlice(r.EmploymentType, EmploymentTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "unknown employment type"})
	}
	if _, err := attendance.ParseShiftTime(r.ScheduledTimeIn); err != nil {
		errs = append(errs, validator.ValidationError{Field: "scheduled_time_in", Message: "must be a valid time of day"})
	}
	if _, err := attendance.ParseShiftTime(r.ScheduledTimeOut); err != nil {
		errs = append(errs, validator.ValidationError{Field: "scheduled_time_out", Message: "must be a valid time of day"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string  `json:"-"`
	FullName         *string `json:"full_name,omitempty"`
	Email            *string `json:"email,omitempty"`
	Role             *string `json:"role,omitempty"`
	EmploymentType   *string `json:"employment_type,omitempty"`
	ScheduledTimeIn  *string `json:"scheduled_time_in,omitempty"`
	ScheduledTimeOut *string `json:"scheduled_time_out,omitempty"`
	IsActive         *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, RoleValues) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be employee or admin"})
	}
	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, EmploymentTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "unknown employment type"})
	}
	if r.ScheduledTimeIn != nil {
		if _, err := attendance.ParseShiftTime(*r.ScheduledTimeIn); err != nil {
			errs = append(errs, validator.ValidationError{Field: "scheduled_time_in", Message: "must be a valid time of day"})
		}
	}
	if r.ScheduledTimeOut != nil {
		if _, err := attendance.ParseShiftTime(*r.ScheduledTimeOut); err != nil {
			errs = append(errs, validator.ValidationError{Field: "scheduled_time_out", Message: "must be a valid time of day"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	Code             string `json:"code"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	EmploymentType   string `json:"employment_type"`
	ScheduledTimeIn  string `json:"scheduled_time_in"`
	ScheduledTimeOut string `json:"scheduled_time_out"`
	IsActive         bool   `json:"is_active"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		Code:             e.Code,
		FullName:         e.FullName,
		Email:            e.Email,
		Role:             string(e.Role),
		EmploymentType:   e.EmploymentType,
		ScheduledTimeIn:  e.ScheduledTimeIn,
		ScheduledTimeOut: e.ScheduledTimeOut,
		IsActive:         e.IsActive,
	}
}

type Filter struct {
	Search   *string
	IsActive *bool
	Page     int
	Limit    int
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Employees  []EmployeeResponse `json:"employees"`
}
