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

const balanceColumns = `
	lb.id, lb.employee_id, lb.leave_type, lb.year,
	lb.entitlement, lb.carried_forward, lb.taken, lb.pending, lb.available,
	lb.version, lb.created_at, lb.updated_at`

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

func scanBalance(row pgx.Row, extra ...any) (leave.LeaveBalance, error) {
	var b leave.LeaveBalance
	dest := []any{
		&b.ID, &b.EmployeeID, &b.LeaveType, &b.Year,
		&b.Entitlement, &b.CarriedForward, &b.Taken, &b.Pending, &b.Available,
		&b.Version, &b.CreatedAt, &b.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return b, err
}

// Create implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to generate leave balance id: %w", err)
	}

	query := `
		INSERT INTO leave_balances AS lb (
			id, employee_id, leave_type, year,
			entitlement, carried_forward, taken, pending, available,
			version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1, NOW(), NOW())
		RETURNING ` + balanceColumns

	created, err := scanBalance(q.QueryRow(ctx, query,
		id.String(), balance.EmployeeID, balance.LeaveType, balance.Year,
		balance.Entitlement, balance.CarriedForward, balance.Taken, balance.Pending, balance.Available,
	))
	if err != nil {
		if database.IsUniqueViolation(err, "leave_balances_employee_type_year_key") {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceExists
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}
	return created, nil
}

// GetForUpdate implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) GetForUpdate(ctx context.Context, employeeID, leaveType string, year int) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + balanceColumns + `
		FROM leave_balances lb
		WHERE lb.employee_id = $1 AND lb.leave_type = $2 AND lb.year = $3
		FOR UPDATE
	`

	b, err := scanBalance(q.QueryRow(ctx, query, employeeID, leaveType, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to lock leave balance: %w", err)
	}
	return b, nil
}

// Update implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) Update(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances AS lb SET
			taken = $1, pending = $2, available = $3,
			version = lb.version + 1, updated_at = NOW()
		WHERE lb.id = $4 AND lb.version = $5
		RETURNING ` + balanceColumns

	updated, err := scanBalance(q.QueryRow(ctx, query,
		balance.Taken, balance.Pending, balance.Available,
		balance.ID, balance.Version,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveBalance{}, leave.ErrBalanceModified
		}
		return leave.LeaveBalance{}, fmt.Errorf("failed to update leave balance: %w", err)
	}
	return updated, nil
}

// ListByEmployeeYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	return r.list(ctx, `
		SELECT `+balanceColumns+`, e.full_name
		FROM leave_balances lb
		JOIN employees e ON lb.employee_id = e.id
		WHERE lb.employee_id = $1 AND lb.year = $2
		ORDER BY lb.leave_type
	`, employeeID, year)
}

// ListByYear implements leave.LeaveBalanceRepository.
func (r *leaveBalanceRepositoryImpl) ListByYear(ctx context.Context, year int) ([]leave.LeaveBalance, error) {
	return r.list(ctx, `
		SELECT `+balanceColumns+`, e.full_name
		FROM leave_balances lb
		JOIN employees e ON lb.employee_id = e.id
		WHERE lb.year = $1
		ORDER BY lb.employee_id, lb.leave_type
	`, year)
}

func (r *leaveBalanceRepositoryImpl) list(ctx context.Context, query string, args ...any) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	balances := make([]leave.LeaveBalance, 0)
	for rows.Next() {
		var employeeName string
		b, err := scanBalance(rows, &employeeName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		b.EmployeeName = &employeeName
		balances = append(balances, b)
	}
	return balances, rows.Err()
}
