package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/backoffice-go/internal/domain/claim"
	"github.com/cmlabs-hris/backoffice-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const claimColumns = `
	c.id, c.claim_number, c.employee_id, c.title, c.claim_date, c.status,
	c.total_amount, c.receipt_count,
	c.submitted_at, c.approved_by, c.approved_at,
	c.rejected_by, c.rejected_at, c.rejection_reason,
	c.paid_by, c.paid_at, c.payment_reference,
	c.created_at, c.updated_at`

type claimRepositoryImpl struct {
	db *database.DB
}

func NewClaimRepository(db *database.DB) claim.ClaimRepository {
	return &claimRepositoryImpl{db: db}
}

func scanClaim(row pgx.Row, extra ...any) (claim.Claim, error) {
	var c claim.Claim
	dest := []any{
		&c.ID, &c.ClaimNumber, &c.EmployeeID, &c.Title, &c.ClaimDate, &c.Status,
		&c.TotalAmount, &c.ReceiptCount,
		&c.SubmittedAt, &c.ApprovedBy, &c.ApprovedAt,
		&c.RejectedBy, &c.RejectedAt, &c.RejectionReason,
		&c.PaidBy, &c.PaidAt, &c.PaymentReference,
		&c.CreatedAt, &c.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return c, err
}

// NextSequence implements claim.ClaimRepository. The upsert holds the row
// lock of (prefix, year) until the caller's transaction ends.
func (r *claimRepositoryImpl) NextSequence(ctx context.Context, prefix string, year int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO document_sequences (prefix, year, last_value, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (prefix, year)
		DO UPDATE SET last_value = document_sequences.last_value + 1, updated_at = NOW()
		RETURNING last_value
	`

	var seq int64
	if err := q.QueryRow(ctx, query, prefix, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to draw %s sequence for %d: %w", prefix, year, err)
	}
	return seq, nil
}

// Create implements claim.ClaimRepository.
func (r *claimRepositoryImpl) Create(ctx context.Context, c claim.Claim) (claim.Claim, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return claim.Claim{}, fmt.Errorf("failed to generate claim id: %w", err)
	}

	query := `
		INSERT INTO claims AS c (
			id, claim_number, employee_id, title, claim_date, status,
			total_amount, receipt_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + claimColumns

	created, err := scanClaim(q.QueryRow(ctx, query,
		id.String(), c.ClaimNumber, c.EmployeeID, c.Title, c.ClaimDate, c.Status,
		c.TotalAmount, c.ReceiptCount,
	))
	if err != nil {
		if database.IsUniqueViolation(err, "claims_claim_number_key") {
			return claim.Claim{}, claim.ErrClaimNumberExists
		}
		return claim.Claim{}, fmt.Errorf("failed to create claim: %w", err)
	}

	lineQuery := `
		INSERT INTO claim_lines (id, claim_id, line_no, category, description, amount, receipt_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	created.Lines = make([]claim.ClaimLine, 0, len(c.Lines))
	for _, line := range c.Lines {
		lineID, err := uuid.NewV7()
		if err != nil {
			return claim.Claim{}, fmt.Errorf("failed to generate claim line id: %w", err)
		}
		line.ID = lineID.String()
		line.ClaimID = created.ID

		if _, err := q.Exec(ctx, lineQuery,
			line.ID, line.ClaimID, line.LineNo, line.Category, line.Description, line.Amount, line.ReceiptDate,
		); err != nil {
			return claim.Claim{}, fmt.Errorf("failed to create claim line %d: %w", line.LineNo, err)
		}
		created.Lines = append(created.Lines, line)
	}

	return created, nil
}

// GetByID implements claim.ClaimRepository.
func (r *claimRepositoryImpl) GetByID(ctx context.Context, id string) (claim.Claim, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + claimColumns + `, e.full_name
		FROM claims c
		JOIN employees e ON c.employee_id = e.id
		WHERE c.id = $1
	`

	var employeeName string
	c, err := scanClaim(q.QueryRow(ctx, query, id), &employeeName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return claim.Claim{}, claim.ErrClaimNotFound
		}
		return claim.Claim{}, fmt.Errorf("failed to get claim: %w", err)
	}
	c.EmployeeName = &employeeName

	rows, err := q.Query(ctx, `
		SELECT id, claim_id, line_no, category, description, amount, receipt_date
		FROM claim_lines
		WHERE claim_id = $1
		ORDER BY line_no
	`, id)
	if err != nil {
		return claim.Claim{}, fmt.Errorf("failed to get claim lines: %w", err)
	}
	defer rows.Close()

	c.Lines = make([]claim.ClaimLine, 0, c.ReceiptCount)
	for rows.Next() {
		var l claim.ClaimLine
		if err := rows.Scan(&l.ID, &l.ClaimID, &l.LineNo, &l.Category, &l.Description, &l.Amount, &l.ReceiptDate); err != nil {
			return claim.Claim{}, fmt.Errorf("failed to scan claim line: %w", err)
		}
		c.Lines = append(c.Lines, l)
	}
	return c, rows.Err()
}

// List implements claim.ClaimRepository. Lines are not loaded.
func (r *claimRepositoryImpl) List(ctx context.Context, filter claim.ClaimFilter) ([]claim.Claim, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND c.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND c.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Year != nil {
		whereClause += fmt.Sprintf(" AND EXTRACT(YEAR FROM c.claim_date) = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM claims c "+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count claims: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.full_name
		FROM claims c
		JOIN employees e ON c.employee_id = e.id
		%s
		ORDER BY c.claim_date DESC, c.claim_number DESC
		LIMIT $%d OFFSET $%d
	`, claimColumns, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list claims: %w", err)
	}
	defer rows.Close()

	claims := make([]claim.Claim, 0)
	for rows.Next() {
		var employeeName string
		c, err := scanClaim(rows, &employeeName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan claim: %w", err)
		}
		c.EmployeeName = &employeeName
		claims = append(claims, c)
	}
	return claims, total, rows.Err()
}

// UpdateStatus implements claim.ClaimRepository.
func (r *claimRepositoryImpl) UpdateStatus(ctx context.Context, c claim.Claim, from claim.Status) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE claims SET
			status = $1,
			submitted_at = $2,
			approved_by = $3, approved_at = $4,
			rejected_by = $5, rejected_at = $6, rejection_reason = $7,
			paid_by = $8, paid_at = $9, payment_reference = $10,
			updated_at = NOW()
		WHERE id = $11 AND status = $12
	`

	tag, err := q.Exec(ctx, query,
		c.Status,
		c.SubmittedAt,
		c.ApprovedBy, c.ApprovedAt,
		c.RejectedBy, c.RejectedAt, c.RejectionReason,
		c.PaidBy, c.PaidAt, c.PaymentReference,
		c.ID, from,
	)
	if err != nil {
		return fmt.Errorf("failed to update claim status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return claim.ErrClaimModified
	}
	return nil
}
