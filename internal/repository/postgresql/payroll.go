package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/payroll"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const periodColumns = `
	id, period_month, period_year, status,
	total_gross_pay, total_deductions, total_net_pay,
	total_epf_employee, total_epf_employer, total_socso, total_eis, total_pcb,
	total_employees, processed_by, processed_at, created_at, updated_at`

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

func scanPeriod(row pgx.Row) (payroll.PayrollPeriod, error) {
	var p payroll.PayrollPeriod
	err := row.Scan(
		&p.ID, &p.Month, &p.Year, &p.Status,
		&p.TotalGrossPay, &p.TotalDeductions, &p.TotalNetPay,
		&p.TotalEPFEmployee, &p.TotalEPFEmployer, &p.TotalSOCSO, &p.TotalEIS, &p.TotalPCB,
		&p.TotalEmployees, &p.ProcessedBy, &p.ProcessedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// ========== PERIODS ==========

func (r *payrollRepository) CreatePeriod(ctx context.Context, period payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to generate payroll period id: %w", err)
	}

	query := `
		INSERT INTO payroll_periods (id, period_month, period_year, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + periodColumns

	created, err := scanPeriod(q.QueryRow(ctx, query, id.String(), period.Month, period.Year, payroll.PeriodStatusOpen))
	if err != nil {
		if database.IsUniqueViolation(err, "payroll_periods_month_year_key") {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodAlreadyExists
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to create payroll period: %w", err)
	}
	return created, nil
}

func (r *payrollRepository) GetPeriodByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	return r.getPeriod(ctx, `SELECT `+periodColumns+` FROM payroll_periods WHERE id = $1`, id)
}

func (r *payrollRepository) GetPeriodForUpdate(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	return r.getPeriod(ctx, `SELECT `+periodColumns+` FROM payroll_periods WHERE id = $1 FOR UPDATE`, id)
}

func (r *payrollRepository) getPeriod(ctx context.Context, query, id string) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPeriod(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get payroll period %s: %w", id, err)
	}
	return p, nil
}

func (r *payrollRepository) ListPeriods(ctx context.Context, filter payroll.PeriodFilter) ([]payroll.PayrollPeriod, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Year != nil {
		whereClause += fmt.Sprintf(" AND period_year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM payroll_periods "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll periods: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM payroll_periods
		%s
		ORDER BY period_year DESC, period_month DESC
		LIMIT $%d OFFSET $%d
	`, periodColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	periods := make([]payroll.PayrollPeriod, 0)
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}
	return periods, total, rows.Err()
}

// CompletePeriod writes the totals and marks the period completed. The
// status guard keeps a second writer from overwriting a finished period.
func (r *payrollRepository) CompletePeriod(ctx context.Context, period payroll.PayrollPeriod) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_periods SET
			status = $1,
			total_gross_pay = $2, total_deductions = $3, total_net_pay = $4,
			total_epf_employee = $5, total_epf_employer = $6,
			total_socso = $7, total_eis = $8, total_pcb = $9,
			total_employees = $10, processed_by = $11, processed_at = $12,
			updated_at = NOW()
		WHERE id = $13 AND status = $14
	`

	tag, err := q.Exec(ctx, query,
		payroll.PeriodStatusCompleted,
		period.TotalGrossPay, period.TotalDeductions, period.TotalNetPay,
		period.TotalEPFEmployee, period.TotalEPFEmployer,
		period.TotalSOCSO, period.TotalEIS, period.TotalPCB,
		period.TotalEmployees, period.ProcessedBy, period.ProcessedAt,
		period.ID, payroll.PeriodStatusOpen,
	)
	if err != nil {
		return fmt.Errorf("failed to complete payroll period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPeriodAlreadyCompleted
	}
	return nil
}

// ========== ENTRIES ==========

func (r *payrollRepository) CreateEntry(ctx context.Context, entry payroll.PayrollEntry) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return payroll.PayrollEntry{}, fmt.Errorf("failed to generate payroll entry id: %w", err)
	}
	entry.ID = id.String()

	query := `
		INSERT INTO payroll_entries (
			id, period_id, employee_id,
			basic_salary, gross_pay,
			epf_employee, socso_employee, eis_employee, pcb,
			total_deductions, net_pay,
			epf_employer, socso_employer, eis_employer,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		entry.ID, entry.PeriodID, entry.EmployeeID,
		entry.BasicSalary, entry.GrossPay,
		entry.EPFEmployee, entry.SOCSOEmployee, entry.EISEmployee, entry.PCB,
		entry.TotalDeductions, entry.NetPay,
		entry.EPFEmployer, entry.SOCSOEmployer, entry.EISEmployer,
	).Scan(&entry.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "payroll_entries_period_employee_key") {
			return payroll.PayrollEntry{}, payroll.ErrEntryAlreadyExists
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to create payroll entry: %w", err)
	}
	return entry, nil
}

func (r *payrollRepository) ListEntries(ctx context.Context, periodID string) ([]payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pe.id, pe.period_id, pe.employee_id,
			   pe.basic_salary, pe.gross_pay,
			   pe.epf_employee, pe.socso_employee, pe.eis_employee, pe.pcb,
			   pe.total_deductions, pe.net_pay,
			   pe.epf_employer, pe.socso_employer, pe.eis_employer,
			   pe.created_at,
			   e.full_name, e.employee_code
		FROM payroll_entries pe
		JOIN employees e ON pe.employee_id = e.id
		WHERE pe.period_id = $1
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	entries := make([]payroll.PayrollEntry, 0)
	for rows.Next() {
		var e payroll.PayrollEntry
		if err := rows.Scan(
			&e.ID, &e.PeriodID, &e.EmployeeID,
			&e.BasicSalary, &e.GrossPay,
			&e.EPFEmployee, &e.SOCSOEmployee, &e.EISEmployee, &e.PCB,
			&e.TotalDeductions, &e.NetPay,
			&e.EPFEmployer, &e.SOCSOEmployer, &e.EISEmployer,
			&e.CreatedAt,
			&e.EmployeeName, &e.EmployeeCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
