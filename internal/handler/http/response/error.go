package response

import (
	"errors"
	"net/http"

	"github.com/workpoint-ph/attendance-backend-go/internal/domain/adjustment"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/attendance"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/auth"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/employee"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/leave"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/notification"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid employee code or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrOutOfSequence):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrBreakTooSoon),
		errors.Is(err, attendance.ErrBreakWindowClosed):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrClockInConflict):
		Conflict(w, "Another time-in for this employee is in progress")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrRecordNotForToday):
		BadRequest(w, "Action only available for today's record", nil)
	case errors.Is(err, attendance.ErrNoScheduleFound):
		BadRequest(w, "No shift schedule assigned to employee", nil)
	case errors.Is(err, attendance.ErrBadScheduleTime):
		BadRequest(w, "Employee schedule has an unparsable time", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee account is deactivated")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientCredits):
		BadRequest(w, "Insufficient leave credits", nil)
	case errors.Is(err, leave.ErrCreditNotFound):
		NotFound(w, "No leave credit balance for this type")
	case errors.Is(err, leave.ErrOverlappingRequest):
		Conflict(w, "An overlapping leave request already exists")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrRequestNotFound):
		NotFound(w, "Adjustment request not found")
	case errors.Is(err, adjustment.ErrRequestAlreadyProcessed):
		Conflict(w, "Adjustment request already processed")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
