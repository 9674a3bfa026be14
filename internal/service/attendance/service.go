package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/attendance"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/employee"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/clock"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/lock"
)

// clockInLockTTL bounds how long a crashed time-in can hold the per-employee
// lock before it expires on its own.
const clockInLockTTL = 10 * time.Second

type AttendanceServiceImpl struct {
	clock      clock.Clock
	policy     attendance.Policy
	locker     lock.Locker
	attendance attendance.Repository
	employees  employee.Repository
}

func NewAttendanceService(
	clk clock.Clock,
	policy attendance.Policy,
	locker lock.Locker,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
) attendance.Service {
	return &AttendanceServiceImpl{
		clock:      clk,
		policy:     policy,
		locker:     locker,
		attendance: attendanceRepo,
		employees:  employeeRepo,
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

// shiftFor loads the employee's fixed schedule. Unset schedule strings mean
// the employee was never assigned a shift.
func (s *AttendanceServiceImpl) shiftFor(ctx context.Context, employeeID string) (employee.Employee, attendance.Shift, error) {
	emp, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, attendance.Shift{}, err
	}
	if !emp.IsActive {
		return employee.Employee{}, attendance.Shift{}, employee.ErrEmployeeInactive
	}
	if emp.ScheduledTimeIn == "" || emp.ScheduledTimeOut == "" {
		return employee.Employee{}, attendance.Shift{}, attendance.ErrNoScheduleFound
	}

	shift, err := attendance.ParseShift(emp.ScheduledTimeIn, emp.ScheduledTimeOut, emp.EmploymentType)
	if err != nil {
		return employee.Employee{}, attendance.Shift{}, err
	}
	return emp, shift, nil
}

// TimeIn implements attendance.Service.
func (s *AttendanceServiceImpl) TimeIn(ctx context.Context) (attendance.RecordResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	_, shift, err := s.shiftFor(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	// Serialize racing time-in calls for one employee. The partial unique
	// index on open records is the backstop when the lock store is down.
	lockKey := "attendance:time-in:" + employeeID
	acquired, err := s.locker.Acquire(ctx, lockKey, clockInLockTTL)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to acquire time-in lock: %w", err)
	}
	if !acquired {
		return attendance.RecordResponse{}, attendance.ErrClockInConflict
	}
	defer s.locker.Release(ctx, lockKey)

	now := s.clock.Now()
	rec, err := s.attendance.FindOpenOrToday(ctx, employeeID, clock.DateOf(now))
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if rec != nil {
		if err := attendance.ClockIn(now, shift, s.policy, rec); err != nil {
			return attendance.RecordResponse{}, err
		}
		if err := s.attendance.Save(ctx, *rec); err != nil {
			return attendance.RecordResponse{}, err
		}
		return attendance.NewRecordResponse(*rec), nil
	}

	fresh := attendance.Record{EmployeeID: employeeID}
	if err := attendance.ClockIn(now, shift, s.policy, &fresh); err != nil {
		return attendance.RecordResponse{}, err
	}
	created, err := s.attendance.Create(ctx, fresh)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.NewRecordResponse(created), nil
}

// StartBreak implements attendance.Service.
func (s *AttendanceServiceImpl) StartBreak(ctx context.Context) (attendance.RecordResponse, error) {
	return s.applyToOpenRecord(ctx, attendance.StartBreak)
}

// EndBreak implements attendance.Service.
func (s *AttendanceServiceImpl) EndBreak(ctx context.Context) (attendance.RecordResponse, error) {
	return s.applyToOpenRecord(ctx, attendance.EndBreak)
}

// TimeOut implements attendance.Service.
func (s *AttendanceServiceImpl) TimeOut(ctx context.Context) (attendance.RecordResponse, error) {
	return s.applyToOpenRecord(ctx, attendance.ClockOut)
}

// applyToOpenRecord resolves the record the action belongs to, runs one engine
// operation against it and persists the result.
func (s *AttendanceServiceImpl) applyToOpenRecord(
	ctx context.Context,
	op func(time.Time, attendance.Shift, attendance.Policy, *attendance.Record) error,
) (attendance.RecordResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	_, shift, err := s.shiftFor(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	now := s.clock.Now()
	rec, err := s.attendance.FindOpenOrToday(ctx, employeeID, clock.DateOf(now))
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if rec == nil {
		return attendance.RecordResponse{}, attendance.ErrRecordNotForToday
	}

	if err := op(now, shift, s.policy, rec); err != nil {
		return attendance.RecordResponse{}, err
	}
	if err := s.attendance.Save(ctx, *rec); err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.NewRecordResponse(*rec), nil
}

// ActionStates implements attendance.Service.
func (s *AttendanceServiceImpl) ActionStates(ctx context.Context) (attendance.ActionStatesResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ActionStatesResponse{}, err
	}

	_, shift, err := s.shiftFor(ctx, employeeID)
	if err != nil {
		return attendance.ActionStatesResponse{}, err
	}

	now := s.clock.Now()
	rec, err := s.attendance.FindOpenOrToday(ctx, employeeID, clock.DateOf(now))
	if err != nil {
		return attendance.ActionStatesResponse{}, err
	}

	return attendance.ActionStatesResponse{
		Date:    clock.DateOf(now).Format("2006-01-02"),
		Actions: attendance.StatesFor(now, shift, s.policy, rec),
	}, nil
}

// GetMyRecords implements attendance.Service.
func (s *AttendanceServiceImpl) GetMyRecords(ctx context.Context, filter attendance.MyFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	normalizePage(&filter.Page, &filter.Limit)
	records, total, err := s.attendance.ListByEmployee(ctx, employeeID, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, err
	}
	return newListResponse(records, total, filter.Page, filter.Limit), nil
}

// ListRecords implements attendance.Service.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.Filter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	normalizePage(&filter.Page, &filter.Limit)
	records, total, err := s.attendance.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, err
	}
	return newListResponse(records, total, filter.Page, filter.Limit), nil
}

// UpdateRecord implements attendance.Service. Admin corrections change raw
// times only; every derived field is recomputed the same way the engine
// derives it on the live path.
func (s *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.attendance.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	_, shift, err := s.shiftFor(ctx, rec.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	applyCorrection(&rec, req)
	if err := rederive(&rec, shift, s.policy); err != nil {
		return attendance.RecordResponse{}, err
	}

	if err := s.attendance.Save(ctx, rec); err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.NewRecordResponse(rec), nil
}

// applyCorrection overlays the requested time-of-day fixes onto the record,
// keeping each instant on the calendar date the original value sat on. A
// corrected field the record never had lands on the record's own date.
func applyCorrection(rec *attendance.Record, req attendance.UpdateRecordRequest) {
	overlay := func(dst **time.Time, raw *string) {
		if raw == nil || *raw == "" {
			return
		}
		t, _ := time.Parse("15:04:05", *raw)
		anchor := rec.Date
		if *dst != nil {
			anchor = clock.DateOf(**dst)
		}
		fixed := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), t.Hour(), t.Minute(), t.Second(), 0, anchor.Location())
		*dst = &fixed
	}
	overlay(&rec.TimeIn, req.TimeIn)
	overlay(&rec.StartBreak, req.StartBreak)
	overlay(&rec.EndBreak, req.EndBreak)
	overlay(&rec.TimeOut, req.TimeOut)
}

// rederive recomputes every derived field from the raw times, replaying the
// engine's classification at each recorded instant.
func rederive(rec *attendance.Record, shift attendance.Shift, pol attendance.Policy) error {
	if rec.TimeIn == nil {
		return fmt.Errorf("%w: record has no time in", attendance.ErrRecordNotFound)
	}

	replay := attendance.Record{ID: rec.ID, EmployeeID: rec.EmployeeID}
	if err := attendance.ClockIn(*rec.TimeIn, shift, pol, &replay); err != nil {
		return err
	}
	if rec.StartBreak != nil {
		start := *rec.StartBreak
		replay.StartBreak = &start
		if rec.EndBreak != nil {
			if err := attendance.EndBreak(*rec.EndBreak, shift, pol, &replay); err != nil {
				return err
			}
		}
	}
	if rec.TimeOut != nil {
		if err := attendance.ClockOut(*rec.TimeOut, shift, pol, &replay); err != nil {
			return err
		}
	}

	replay.Date = rec.Date
	replay.CreatedAt = rec.CreatedAt
	replay.UpdatedAt = rec.UpdatedAt
	replay.EmployeeName = rec.EmployeeName
	*rec = replay
	return nil
}

func normalizePage(page, limit *int) {
	if *page < 1 {
		*page = 1
	}
	if *limit < 1 || *limit > 100 {
		*limit = 20
	}
}

func newListResponse(records []attendance.Record, total int64, page, limit int) attendance.ListRecordsResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}
	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Records:    responses,
	}
}
