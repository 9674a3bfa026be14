package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/workpoint-ph/attendance-backend-go/internal/domain/adjustment"
	"github.com/workpoint-ph/attendance-backend-go/internal/pkg/database"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.Repository {
	return &adjustmentRepository{db: db}
}

const adjustmentColumns = `
	id, employee_id, kind, date, hours, requested_time_in, requested_time_out,
	reason, status, reviewed_by, reviewed_at, review_note, created_at, updated_at
`

func scanAdjustment(row rowScanner, withEmployee bool) (adjustment.Request, error) {
	var req adjustment.Request
	dest := []any{
		&req.ID, &req.EmployeeID, &req.Kind, &req.Date, &req.Hours, &req.RequestedTimeIn, &req.RequestedTimeOut,
		&req.Reason, &req.Status, &req.ReviewedBy, &req.ReviewedAt, &req.ReviewNote, &req.CreatedAt, &req.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &req.EmployeeName)
	}
	err := row.Scan(dest...)
	return req, err
}

// Create implements adjustment.Repository.
func (r *adjustmentRepository) Create(ctx context.Context, req adjustment.Request) (adjustment.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO adjustment_requests (
			employee_id, kind, date, hours, requested_time_in, requested_time_out, reason, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.Kind, req.Date, req.Hours, req.RequestedTimeIn, req.RequestedTimeOut, req.Reason, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return adjustment.Request{}, fmt.Errorf("failed to create adjustment request: %w", err)
	}
	return req, nil
}

// GetByID implements adjustment.Repository.
func (r *adjustmentRepository) GetByID(ctx context.Context, id string) (adjustment.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanAdjustment(q.QueryRow(ctx, `SELECT `+adjustmentColumns+` FROM adjustment_requests WHERE id = $1`, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return adjustment.Request{}, adjustment.ErrRequestNotFound
		}
		return adjustment.Request{}, fmt.Errorf("failed to get adjustment request: %w", err)
	}
	return req, nil
}

// Update implements adjustment.Repository.
func (r *adjustmentRepository) Update(ctx context.Context, req adjustment.Request) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE adjustment_requests SET
			status = $2, reviewed_by = $3, reviewed_at = $4, review_note = $5, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Status, req.ReviewedBy, req.ReviewedAt, req.ReviewNote)
	if err != nil {
		return fmt.Errorf("failed to update adjustment request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrRequestNotFound
	}
	return nil
}

// List implements adjustment.Repository.
func (r *adjustmentRepository) List(ctx context.Context, filter adjustment.Filter) ([]adjustment.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Kind != nil && *filter.Kind != "" {
		baseWhere += fmt.Sprintf(" AND a.kind = $%d", argIdx)
		args = append(args, *filter.Kind)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM adjustment_requests a WHERE `+baseWhere, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count adjustment requests: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.kind, a.date, a.hours, a.requested_time_in, a.requested_time_out,
			a.reason, a.status, a.reviewed_by, a.reviewed_at, a.review_note, a.created_at, a.updated_at,
			e.full_name AS employee_name
		FROM adjustment_requests a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list adjustment requests: %w", err)
	}
	defer rows.Close()

	var requests []adjustment.Request
	for rows.Next() {
		req, err := scanAdjustment(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan adjustment request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, total, rows.Err()
}
