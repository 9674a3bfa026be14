package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/attendance"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, time_in, start_break, end_break, time_out,
	time_in_facet, time_in_minutes, break_overbreak_minutes,
	time_out_facet, time_out_minutes, time_out_overbreak_minutes,
	break_duration, work_hours, status, created_at, updated_at
`

// rowScanner lets one scan helper serve both QueryRow and Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner, withEmployee bool) (attendance.Record, error) {
	var rec attendance.Record
	var inFacet, outFacet *string
	var inMinutes, outMinutes, outOverbreak, breakOverbreak *int

	dest := []any{
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.TimeIn, &rec.StartBreak, &rec.EndBreak, &rec.TimeOut,
		&inFacet, &inMinutes, &breakOverbreak,
		&outFacet, &outMinutes, &outOverbreak,
		&rec.BreakDuration, &rec.WorkHours, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &rec.EmployeeName)
	}
	if err := row.Scan(dest...); err != nil {
		return attendance.Record{}, err
	}

	if inFacet != nil {
		st := attendance.TimeInStatus{Facet: attendance.TimeFacet(*inFacet)}
		if inMinutes != nil {
			st.Minutes = *inMinutes
		}
		rec.TimeInStatus = &st
	}
	if breakOverbreak != nil {
		rec.BreakStatus = &attendance.BreakStatus{OverbreakMinutes: *breakOverbreak}
	}
	if outFacet != nil {
		st := attendance.TimeOutStatus{Facet: attendance.TimeFacet(*outFacet)}
		if outMinutes != nil {
			st.Minutes = *outMinutes
		}
		if outOverbreak != nil {
			st.OverbreakMinutes = *outOverbreak
		}
		rec.TimeOutStatus = &st
	}
	return rec, nil
}

func statusFields(rec attendance.Record) (inFacet *string, inMinutes *int, breakOverbreak *int, outFacet *string, outMinutes, outOverbreak *int) {
	if rec.TimeInStatus != nil {
		f := string(rec.TimeInStatus.Facet)
		m := rec.TimeInStatus.Minutes
		inFacet, inMinutes = &f, &m
	}
	if rec.BreakStatus != nil {
		o := rec.BreakStatus.OverbreakMinutes
		breakOverbreak = &o
	}
	if rec.TimeOutStatus != nil {
		f := string(rec.TimeOutStatus.Facet)
		m := rec.TimeOutStatus.Minutes
		o := rec.TimeOutStatus.OverbreakMinutes
		outFacet, outMinutes, outOverbreak = &f, &m, &o
	}
	return
}

// Create implements attendance.Repository. The partial unique index
// attendance_records_one_open_per_employee (employee_id WHERE time_out IS
// NULL) backs the at-most-one-open-record invariant; a violation surfaces as
// ErrClockInConflict.
func (a *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	inFacet, inMinutes, breakOverbreak, outFacet, outMinutes, outOverbreak := statusFields(rec)

	query := `
		INSERT INTO attendance_records (
			employee_id, date, time_in, start_break, end_break, time_out,
			time_in_facet, time_in_minutes, break_overbreak_minutes,
			time_out_facet, time_out_minutes, time_out_overbreak_minutes,
			break_duration, work_hours, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.Date, rec.TimeIn, rec.StartBreak, rec.EndBreak, rec.TimeOut,
		inFacet, inMinutes, breakOverbreak,
		outFacet, outMinutes, outOverbreak,
		rec.BreakDuration, rec.WorkHours, rec.Status,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Record{}, attendance.ErrClockInConflict
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1`

	rec, err := scanRecord(q.QueryRow(ctx, query, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return rec, nil
}

// FindOpenOrToday implements attendance.Repository. Resolution order: (a)
// today's record, (b) yesterday's unfinished record, (c) the most recent
// unfinished record if dated today or yesterday, (d) none.
func (a *attendanceRepository) FindOpenOrToday(ctx context.Context, employeeID string, today time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)
	yesterday := today.AddDate(0, 0, -1)

	byDate := `SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2 %s
		ORDER BY created_at DESC
		LIMIT 1`

	rec, err := scanRecord(q.QueryRow(ctx, fmt.Sprintf(byDate, ""), employeeID, today), false)
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to find today's record: %w", err)
	}

	rec, err = scanRecord(q.QueryRow(ctx, fmt.Sprintf(byDate, "AND time_out IS NULL"), employeeID, yesterday), false)
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to find yesterday's open record: %w", err)
	}

	latestOpen := `SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND time_out IS NULL
		ORDER BY date DESC
		LIMIT 1`
	rec, err = scanRecord(q.QueryRow(ctx, latestOpen, employeeID), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open record: %w", err)
	}
	if rec.Date.Before(yesterday) {
		// Stale open record from before yesterday never carries over.
		return nil, nil
	}
	return &rec, nil
}

// Save implements attendance.Repository.
func (a *attendanceRepository) Save(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	inFacet, inMinutes, breakOverbreak, outFacet, outMinutes, outOverbreak := statusFields(rec)

	query := `
		UPDATE attendance_records SET
			date = $2, time_in = $3, start_break = $4, end_break = $5, time_out = $6,
			time_in_facet = $7, time_in_minutes = $8, break_overbreak_minutes = $9,
			time_out_facet = $10, time_out_minutes = $11, time_out_overbreak_minutes = $12,
			break_duration = $13, work_hours = $14, status = $15, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.Date, rec.TimeIn, rec.StartBreak, rec.EndBreak, rec.TimeOut,
		inFacet, inMinutes, breakOverbreak,
		outFacet, outMinutes, outOverbreak,
		rec.BreakDuration, rec.WorkHours, rec.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to save attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	addArg := func(cond string, v interface{}) {
		baseWhere += fmt.Sprintf(" AND "+cond, argIdx)
		args = append(args, v)
		argIdx++
	}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		addArg("a.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.EmployeeName != nil && *filter.EmployeeName != "" {
		addArg("e.full_name ILIKE '%%' || $%d || '%%'", *filter.EmployeeName)
	}
	if filter.Date != nil && *filter.Date != "" {
		addArg("a.date = $%d", *filter.Date)
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		addArg("a.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		addArg("a.date <= $%d", *filter.EndDate)
	}
	if filter.Status != nil && *filter.Status != "" {
		addArg("a.status = $%d", *filter.Status)
	}

	countQuery := `SELECT COUNT(*) FROM attendance_records a LEFT JOIN employees e ON e.id = a.employee_id WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	sortBy := "a.date"
	if filter.SortBy == "created_at" {
		sortBy = "a.created_at"
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.time_in, a.start_break, a.end_break, a.time_out,
			a.time_in_facet, a.time_in_minutes, a.break_overbreak_minutes,
			a.time_out_facet, a.time_out_minutes, a.time_out_overbreak_minutes,
			a.break_duration, a.work_hours, a.status, a.created_at, a.updated_at,
			e.full_name AS employee_name
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// ListByEmployee implements attendance.Repository.
func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, filter attendance.MyFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := `SELECT COUNT(*) FROM attendance_records WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM attendance_records WHERE %s ORDER BY date DESC LIMIT $%d OFFSET $%d`,
		attendanceColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows, false)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// ListRange implements attendance.Repository.
func (a *attendanceRepository) ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
