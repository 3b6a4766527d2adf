package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/altamar/portal/internal/domain"
)

// CreatePaymentParams contains the fields for inserting a pending payment
// together with its allocations. Allocations are a proper child table so
// apply-time iteration is referentially sound.
type CreatePaymentParams struct {
	ServerID    uuid.UUID
	UserID      uuid.UUID
	AmountCents int64
	Method      string
	Bank        string
	ProofURL    string
	Allocations []domain.Allocation
}

// PaymentWithServer is a payment row joined with its server's domain for
// admin list views.
type PaymentWithServer struct {
	domain.Payment
	ServerName string
}

// ListPaymentsParams filters and orders the admin payment list.
type ListPaymentsParams struct {
	Search  string
	Status  string
	OrderBy domain.PaymentSortField
	Desc    bool
	Limit   int32
	Offset  int32
}

const paymentColumns = `id, server_id, user_id, amount_cents, method, bank, proof_url, status, reason, validated_by, validated_at, applied_by, applied_at, created_at`

func scanPayment(row pgx.Row) (domain.Payment, error) {
	var p domain.Payment
	var reason pgtype.Text
	var validatedBy, appliedBy pgtype.UUID
	var validatedAt, appliedAt pgtype.Timestamptz

	err := row.Scan(
		&p.ID, &p.ServerID, &p.UserID, &p.AmountCents, &p.Method, &p.Bank,
		&p.ProofURL, &p.Status, &reason, &validatedBy, &validatedAt,
		&appliedBy, &appliedAt, &p.CreatedAt,
	)
	if err != nil {
		return domain.Payment{}, err
	}

	p.Reason = reason.String
	if validatedBy.Valid {
		p.ValidatedBy = uuid.UUID(validatedBy.Bytes)
	}
	if validatedAt.Valid {
		p.ValidatedAt = validatedAt.Time
	}
	if appliedBy.Valid {
		p.AppliedBy = uuid.UUID(appliedBy.Bytes)
	}
	if appliedAt.Valid {
		p.AppliedAt = appliedAt.Time
	}
	return p, nil
}

// CreatePayment inserts a pending payment and its allocation rows.
// Call inside WithTx so the payment and its allocations land together.
func (q *Queries) CreatePayment(ctx context.Context, params CreatePaymentParams) (domain.Payment, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO payments (id, server_id, user_id, amount_cents, method, bank, proof_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+paymentColumns,
		uuid.New(), params.ServerID, params.UserID, params.AmountCents,
		params.Method, params.Bank, params.ProofURL, domain.PaymentStatusPending,
	)

	p, err := scanPayment(row)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("insert payment: %w", err)
	}

	for _, a := range params.Allocations {
		_, err := q.db.Exec(ctx, `
			INSERT INTO payment_allocations (payment_id, invoice_id, amount_cents)
			VALUES ($1, $2, $3)`,
			p.ID, a.InvoiceID, a.AmountCents,
		)
		if err != nil {
			return domain.Payment{}, fmt.Errorf("insert payment allocation: %w", err)
		}
	}

	p.Allocations = params.Allocations
	return p, nil
}

// GetPaymentByID fetches one payment without its allocations.
func (q *Queries) GetPaymentByID(ctx context.Context, id uuid.UUID) (domain.Payment, error) {
	row := q.db.QueryRow(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)

	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Payment{}, domain.ErrPaymentNotFound
		}
		return domain.Payment{}, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// GetPaymentAllocations returns the allocations of a payment in insertion
// order.
func (q *Queries) GetPaymentAllocations(ctx context.Context, paymentID uuid.UUID) ([]domain.Allocation, error) {
	rows, err := q.db.Query(ctx, `
		SELECT invoice_id, amount_cents
		FROM payment_allocations
		WHERE payment_id = $1
		ORDER BY position ASC`,
		paymentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list payment allocations: %w", err)
	}
	defer rows.Close()

	var out []domain.Allocation
	for rows.Next() {
		var a domain.Allocation
		if err := rows.Scan(&a.InvoiceID, &a.AmountCents); err != nil {
			return nil, fmt.Errorf("scan allocation: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// MarkPaymentValidated performs the Pending -> Validated transition.
// The WHERE clause carries the expected prior status, so the return value
// is the number of rows affected: zero means the payment does not exist
// or was already processed.
func (q *Queries) MarkPaymentValidated(ctx context.Context, paymentID, adminID uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, `
		UPDATE payments
		SET status = $3, validated_by = $2, validated_at = NOW()
		WHERE id = $1 AND status = $4`,
		paymentID, adminID, domain.PaymentStatusValidated, domain.PaymentStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("validate payment: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MarkPaymentRejected performs the Pending -> Rejected transition under
// the same status guard as validation.
func (q *Queries) MarkPaymentRejected(ctx context.Context, paymentID, adminID uuid.UUID, reason string) (int64, error) {
	tag, err := q.db.Exec(ctx, `
		UPDATE payments
		SET status = $3, reason = $4, validated_by = $2, validated_at = NOW()
		WHERE id = $1 AND status = $5`,
		paymentID, adminID, domain.PaymentStatusRejected, reason, domain.PaymentStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("reject payment: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MarkPaymentApplied performs the Validated -> Applied transition. The
// guard is what makes application idempotent: a duplicate apply sees zero
// rows and must not touch invoice balances.
func (q *Queries) MarkPaymentApplied(ctx context.Context, paymentID, adminID uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, `
		UPDATE payments
		SET status = $3, applied_by = $2, applied_at = NOW()
		WHERE id = $1 AND status = $4`,
		paymentID, adminID, domain.PaymentStatusApplied, domain.PaymentStatusValidated,
	)
	if err != nil {
		return 0, fmt.Errorf("apply payment: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListPayments returns a page of payments joined with server names.
func (q *Queries) ListPayments(ctx context.Context, params ListPaymentsParams) ([]PaymentWithServer, error) {
	where, args := paymentFilter(params)

	orderBy := domain.PaymentSortCreatedAt
	if params.OrderBy.Valid() {
		orderBy = params.OrderBy
	}
	direction := "ASC"
	if params.Desc {
		direction = "DESC"
	}

	args = append(args, params.Limit, params.Offset)
	sql := fmt.Sprintf(`
		SELECT p.id, p.server_id, p.user_id, p.amount_cents, p.method, p.bank, p.proof_url,
		       p.status, p.reason, p.validated_by, p.validated_at, p.applied_by, p.applied_at,
		       p.created_at, s.name
		FROM payments p
		JOIN servers s ON s.id = p.server_id
		%s
		ORDER BY p.%s %s
		LIMIT $%d OFFSET $%d`,
		where, orderBy, direction, len(args)-1, len(args),
	)

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []PaymentWithServer
	for rows.Next() {
		var item PaymentWithServer
		var reason pgtype.Text
		var validatedBy, appliedBy pgtype.UUID
		var validatedAt, appliedAt pgtype.Timestamptz

		if err := rows.Scan(
			&item.ID, &item.ServerID, &item.UserID, &item.AmountCents, &item.Method,
			&item.Bank, &item.ProofURL, &item.Status, &reason, &validatedBy,
			&validatedAt, &appliedBy, &appliedAt, &item.CreatedAt, &item.ServerName,
		); err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}

		item.Reason = reason.String
		if validatedBy.Valid {
			item.ValidatedBy = uuid.UUID(validatedBy.Bytes)
		}
		if validatedAt.Valid {
			item.ValidatedAt = validatedAt.Time
		}
		if appliedBy.Valid {
			item.AppliedBy = uuid.UUID(appliedBy.Bytes)
		}
		if appliedAt.Valid {
			item.AppliedAt = appliedAt.Time
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// CountPayments returns the total row count for the ListPayments filter.
func (q *Queries) CountPayments(ctx context.Context, params ListPaymentsParams) (int64, error) {
	where, args := paymentFilter(params)

	var total int64
	err := q.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM payments p
		JOIN servers s ON s.id = p.server_id
		`+where, args...,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count payments: %w", err)
	}
	return total, nil
}

func paymentFilter(params ListPaymentsParams) (string, []any) {
	var conditions []string
	var args []any

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(s.name ILIKE $%d OR p.method ILIKE $%d OR p.bank ILIKE $%d)", n, n, n))
	}
	if params.Status != "" {
		args = append(args, params.Status)
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
