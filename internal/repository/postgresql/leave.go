package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/leave"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	id, employee_id, type, start_date, end_date, days, reason, status,
	reviewed_by, reviewed_at, review_note, created_at, updated_at
`

func scanLeaveRequest(row rowScanner, withEmployee bool) (leave.Request, error) {
	var req leave.Request
	dest := []any{
		&req.ID, &req.EmployeeID, &req.Type, &req.StartDate, &req.EndDate, &req.Days, &req.Reason, &req.Status,
		&req.ReviewedBy, &req.ReviewedAt, &req.ReviewNote, &req.CreatedAt, &req.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &req.EmployeeName)
	}
	err := row.Scan(dest...)
	return req, err
}

// Create implements leave.RequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (employee_id, type, start_date, end_date, days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.Type, req.StartDate, req.EndDate, req.Days, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return req, nil
}

// GetByID implements leave.RequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanLeaveRequest(q.QueryRow(ctx, `SELECT `+leaveRequestColumns+` FROM leave_requests WHERE id = $1`, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

// Update implements leave.RequestRepository.
func (r *leaveRequestRepository) Update(ctx context.Context, req leave.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests SET
			status = $2, reviewed_by = $3, reviewed_at = $4, review_note = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Status, req.ReviewedBy, req.ReviewedAt, req.ReviewNote)
	if err != nil {
		return fmt.Errorf("failed to update leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestNotFound
	}
	return nil
}

// List implements leave.RequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.Filter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND l.type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests l WHERE `+baseWhere, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT l.id, l.employee_id, l.type, l.start_date, l.end_date, l.days, l.reason, l.status,
			l.reviewed_by, l.reviewed_at, l.review_note, l.created_at, l.updated_at,
			e.full_name AS employee_name
		FROM leave_requests l
		LEFT JOIN employees e ON e.id = l.employee_id
		WHERE %s
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		req, err := scanLeaveRequest(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, total, rows.Err()
}

// HasOverlap implements leave.RequestRepository.
func (r *leaveRequestRepository) HasOverlap(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	return exists, nil
}

type leaveCreditRepository struct {
	db *database.DB
}

func NewLeaveCreditRepository(db *database.DB) leave.CreditRepository {
	return &leaveCreditRepository{db: db}
}

// GetBalance implements leave.CreditRepository.
func (r *leaveCreditRepository) GetBalance(ctx context.Context, employeeID, leaveType string) (leave.Credit, error) {
	q := GetQuerier(ctx, r.db)

	var credit leave.Credit
	err := q.QueryRow(ctx,
		`SELECT id, employee_id, type, balance, updated_at FROM leave_credits WHERE employee_id = $1 AND type = $2`,
		employeeID, leaveType,
	).Scan(&credit.ID, &credit.EmployeeID, &credit.Type, &credit.Balance, &credit.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Credit{}, leave.ErrCreditNotFound
		}
		return leave.Credit{}, fmt.Errorf("failed to get leave credit: %w", err)
	}
	return credit, nil
}

// ListByEmployee implements leave.CreditRepository.
func (r *leaveCreditRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Credit, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, employee_id, type, balance, updated_at FROM leave_credits WHERE employee_id = $1 ORDER BY type`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave credits: %w", err)
	}
	defer rows.Close()

	var credits []leave.Credit
	for rows.Next() {
		var credit leave.Credit
		if err := rows.Scan(&credit.ID, &credit.EmployeeID, &credit.Type, &credit.Balance, &credit.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan leave credit: %w", err)
		}
		credits = append(credits, credit)
	}
	return credits, rows.Err()
}

// Adjust implements leave.CreditRepository.
func (r *leaveCreditRepository) Adjust(ctx context.Context, employeeID, leaveType string, delta float64) (leave.Credit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_credits (employee_id, type, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, type)
		DO UPDATE SET balance = leave_credits.balance + $3, updated_at = NOW()
		RETURNING id, employee_id, type, balance, updated_at
	`

	var credit leave.Credit
	err := q.QueryRow(ctx, query, employeeID, leaveType, delta).Scan(
		&credit.ID, &credit.EmployeeID, &credit.Type, &credit.Balance, &credit.UpdatedAt,
	)
	if err != nil {
		return leave.Credit{}, fmt.Errorf("failed to adjust leave credit: %w", err)
	}
	return credit, nil
}
