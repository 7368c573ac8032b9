package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/leave"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const requestColumns = `
	lr.id, lr.employee_id, lr.leave_type,
	lr.start_date, lr.end_date, lr.number_of_days, lr.reason,
	lr.status, lr.balance_year, lr.balance_tracked,
	lr.decided_by, lr.decided_at, lr.rejection_reason,
	lr.created_at, lr.updated_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanRequest(row pgx.Row, extra ...any) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	dest := []any{
		&req.ID, &req.EmployeeID, &req.LeaveType,
		&req.StartDate, &req.EndDate, &req.NumberOfDays, &req.Reason,
		&req.Status, &req.BalanceYear, &req.BalanceTracked,
		&req.DecidedBy, &req.DecidedAt, &req.RejectionReason,
		&req.CreatedAt, &req.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return req, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to generate leave request id: %w", err)
	}

	query := `
		INSERT INTO leave_requests AS lr (
			id, employee_id, leave_type,
			start_date, end_date, number_of_days, reason,
			status, balance_year, balance_tracked,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + requestColumns

	created, err := scanRequest(q.QueryRow(ctx, query,
		id.String(), request.EmployeeID, request.LeaveType,
		request.StartDate, request.EndDate, request.NumberOfDays, request.Reason,
		request.Status, request.BalanceYear, request.BalanceTracked,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `, e.full_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	var employeeName string
	req, err := scanRequest(q.QueryRow(ctx, query, id), &employeeName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	req.EmployeeName = &employeeName
	return req, nil
}

func (r *leaveRequestRepositoryImpl) GetForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM leave_requests lr WHERE lr.id = $1 FOR UPDATE`

	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to lock leave request: %w", err)
	}
	return req, nil
}

func (r *leaveRequestRepositoryImpl) UpdateDecision(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests SET
			status = $1, decided_by = $2, decided_at = $3, rejection_reason = $4,
			updated_at = NOW()
		WHERE id = $5 AND status = $6
	`

	tag, err := q.Exec(ctx, query,
		request.Status, request.DecidedBy, request.DecidedAt, request.RejectionReason,
		request.ID, leave.RequestStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request decision: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrRequestAlreadyDecided
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND lr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.LeaveType != nil {
		whereClause += fmt.Sprintf(" AND lr.leave_type = $%d", argIdx)
		args = append(args, *filter.LeaveType)
		argIdx++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND lr.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Year != nil {
		whereClause += fmt.Sprintf(" AND lr.balance_year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM leave_requests lr "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		%s
		ORDER BY lr.created_at DESC
		LIMIT $%d OFFSET $%d
	`, requestColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		var employeeName string
		req, err := scanRequest(rows, &employeeName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		req.EmployeeName = &employeeName
		requests = append(requests, req)
	}
	return requests, total, rows.Err()
}
