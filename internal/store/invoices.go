package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/altamar/portal/internal/domain"
)

// CreateInvoiceParams contains the fields needed to insert an invoice.
// The balance starts equal to the total and the status derives from it.
type CreateInvoiceParams struct {
	ServerID   uuid.UUID
	Folio      string
	IssueDate  time.Time
	DueDate    time.Time
	TotalCents int64
	PDFURL     string
}

// InvoiceWithServer is an invoice row joined with its server's domain for
// admin list views.
type InvoiceWithServer struct {
	domain.Invoice
	ServerName string
}

// ListInvoicesParams filters and orders the admin invoice list.
// OrderBy must come from the domain allow-list; anything else falls back
// to ordering by due date.
type ListInvoicesParams struct {
	Search  string
	Status  string
	OrderBy domain.InvoiceSortField
	Desc    bool
	Limit   int32
	Offset  int32
}

const invoiceColumns = `id, server_id, folio, issue_date, due_date, total_cents, balance_cents, status, pdf_url, created_at`

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var inv domain.Invoice
	err := row.Scan(
		&inv.ID,
		&inv.ServerID,
		&inv.Folio,
		&inv.IssueDate,
		&inv.DueDate,
		&inv.TotalCents,
		&inv.BalanceCents,
		&inv.Status,
		&inv.PDFURL,
		&inv.CreatedAt,
	)
	return inv, err
}

// CreateInvoice inserts a new invoice. Returns domain.ErrDuplicateFolio
// when the (server, folio) pair already exists.
func (q *Queries) CreateInvoice(ctx context.Context, params CreateInvoiceParams) (domain.Invoice, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO invoices (id, server_id, folio, issue_date, due_date, total_cents, balance_cents, status, pdf_url)
		VALUES ($1, $2, $3, $4, $5, $6, $6, $7, $8)
		RETURNING `+invoiceColumns,
		uuid.New(), params.ServerID, params.Folio, params.IssueDate, params.DueDate,
		params.TotalCents, domain.InvoiceStatusUnpaid, params.PDFURL,
	)

	inv, err := scanInvoice(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Invoice{}, domain.ErrDuplicateFolio
		}
		return domain.Invoice{}, fmt.Errorf("insert invoice: %w", err)
	}
	return inv, nil
}

// GetInvoiceByID fetches one invoice.
func (q *Queries) GetInvoiceByID(ctx context.Context, id uuid.UUID) (domain.Invoice, error) {
	row := q.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)

	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Invoice{}, domain.ErrInvoiceNotFound
		}
		return domain.Invoice{}, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListOpenInvoices returns all invoices for a server that still carry a
// positive balance, ordered by due date.
func (q *Queries) ListOpenInvoices(ctx context.Context, serverID uuid.UUID) ([]domain.Invoice, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE server_id = $1 AND balance_cents > 0
		ORDER BY due_date ASC`,
		serverID,
	)
	if err != nil {
		return nil, fmt.Errorf("list open invoices: %w", err)
	}
	defer rows.Close()

	return collectInvoices(rows)
}

// ListInvoicesByIDs returns the given invoices, scoped to one server so a
// payment cannot reference another tenant's invoices.
func (q *Queries) ListInvoicesByIDs(ctx context.Context, serverID uuid.UUID, ids []uuid.UUID) ([]domain.Invoice, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE server_id = $1 AND id = ANY($2)`,
		serverID, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("list invoices by ids: %w", err)
	}
	defer rows.Close()

	return collectInvoices(rows)
}

// ApplyToInvoiceBalance decrements an invoice balance and recomputes the
// status in the same statement. The balance clamps at zero so the
// 0 <= balance <= total invariant survives stale allocations.
func (q *Queries) ApplyToInvoiceBalance(ctx context.Context, invoiceID uuid.UUID, amountCents int64) (domain.Invoice, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE invoices
		SET balance_cents = GREATEST(balance_cents - $2, 0),
		    status = CASE
		               WHEN balance_cents - $2 <= 0 THEN 'paid'
		               WHEN balance_cents - $2 >= total_cents THEN 'unpaid'
		               ELSE 'partial'
		             END
		WHERE id = $1
		RETURNING `+invoiceColumns,
		invoiceID, amountCents,
	)

	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Invoice{}, domain.ErrInvoiceNotFound
		}
		return domain.Invoice{}, fmt.Errorf("apply to invoice balance: %w", err)
	}
	return inv, nil
}

// SumOpenBalance returns the aggregate outstanding balance for a server.
func (q *Queries) SumOpenBalance(ctx context.Context, serverID uuid.UUID) (int64, error) {
	var total int64
	err := q.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(balance_cents), 0)
		FROM invoices
		WHERE server_id = $1`,
		serverID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum open balance: %w", err)
	}
	return total, nil
}

// ListInvoices returns a page of invoices joined with server names for the
// admin list view.
func (q *Queries) ListInvoices(ctx context.Context, params ListInvoicesParams) ([]InvoiceWithServer, error) {
	where, args := invoiceFilter(params)

	orderBy := domain.InvoiceSortDueDate
	if params.OrderBy.Valid() {
		orderBy = params.OrderBy
	}
	direction := "ASC"
	if params.Desc {
		direction = "DESC"
	}

	args = append(args, params.Limit, params.Offset)
	sql := fmt.Sprintf(`
		SELECT i.%s, s.name
		FROM invoices i
		JOIN servers s ON s.id = i.server_id
		%s
		ORDER BY i.%s %s
		LIMIT $%d OFFSET $%d`,
		invoiceColumnsQualified(), where, orderBy, direction, len(args)-1, len(args),
	)

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var out []InvoiceWithServer
	for rows.Next() {
		var item InvoiceWithServer
		if err := rows.Scan(
			&item.ID, &item.ServerID, &item.Folio, &item.IssueDate, &item.DueDate,
			&item.TotalCents, &item.BalanceCents, &item.Status, &item.PDFURL,
			&item.CreatedAt, &item.ServerName,
		); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// CountInvoices returns the total row count for the same filter as
// ListInvoices, for pagination.
func (q *Queries) CountInvoices(ctx context.Context, params ListInvoicesParams) (int64, error) {
	where, args := invoiceFilter(params)

	var total int64
	err := q.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM invoices i
		JOIN servers s ON s.id = i.server_id
		`+where, args...,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return total, nil
}

// invoiceFilter builds the shared WHERE clause for the invoice list and
// count queries. Only parameterized values; column names never come from
// the caller.
func invoiceFilter(params ListInvoicesParams) (string, []any) {
	var conditions []string
	var args []any

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(i.folio ILIKE $%d OR s.name ILIKE $%d)", n, n))
	}
	if params.Status != "" {
		args = append(args, params.Status)
		conditions = append(conditions, fmt.Sprintf("i.status = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func invoiceColumnsQualified() string {
	return `id, i.server_id, i.folio, i.issue_date, i.due_date, i.total_cents, i.balance_cents, i.status, i.pdf_url, i.created_at`
}

func collectInvoices(rows pgx.Rows) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
