package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/altamar/portal/internal/domain"
)

// EulaRecordParams carries the full set of compliance fields. Both the
// insert and the full-row update take it; merging a partial patch onto
// the current row is the service's job.
type EulaRecordParams struct {
	ServerRef      string
	ServerURL      string
	Distributor    string
	Client         string
	ContractSigned bool
	ContractURL    string
	IDReceived     bool
	IDType         string
	IDDocumentURL  string
	SourceFile     string
}

// ListEulasParams filters the compliance list. The boolean filters are
// tri-state: nil means no filter.
type ListEulasParams struct {
	Search     string
	Signed     *bool
	IDReceived *bool
	Limit      int32
	Offset     int32
}

const eulaColumns = `id, server_ref, server_url, distributor, client, contract_signed, contract_url, id_received, id_type, id_document_url, source_file, created_at, updated_at`

func scanEula(row pgx.Row) (domain.Eula, error) {
	var e domain.Eula
	err := row.Scan(
		&e.ID, &e.ServerRef, &e.ServerURL, &e.Distributor, &e.Client,
		&e.ContractSigned, &e.ContractURL, &e.IDReceived, &e.IDType,
		&e.IDDocumentURL, &e.SourceFile, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// CreateEula inserts a compliance record. Returns
// domain.ErrDuplicateEulaRef when the server reference is already
// registered.
func (q *Queries) CreateEula(ctx context.Context, params EulaRecordParams) (domain.Eula, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO eulas (id, server_ref, server_url, distributor, client, contract_signed, contract_url, id_received, id_type, id_document_url, source_file)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+eulaColumns,
		uuid.New(), params.ServerRef, params.ServerURL, params.Distributor, params.Client,
		params.ContractSigned, params.ContractURL, params.IDReceived, params.IDType,
		params.IDDocumentURL, params.SourceFile,
	)

	e, err := scanEula(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Eula{}, domain.ErrDuplicateEulaRef
		}
		return domain.Eula{}, fmt.Errorf("insert eula: %w", err)
	}
	return e, nil
}

// GetEulaByID fetches one compliance record.
func (q *Queries) GetEulaByID(ctx context.Context, id uuid.UUID) (domain.Eula, error) {
	row := q.db.QueryRow(ctx, `SELECT `+eulaColumns+` FROM eulas WHERE id = $1`, id)

	e, err := scanEula(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Eula{}, domain.ErrEulaNotFound
		}
		return domain.Eula{}, fmt.Errorf("get eula: %w", err)
	}
	return e, nil
}

// UpdateEula replaces the mutable fields of a compliance record.
func (q *Queries) UpdateEula(ctx context.Context, id uuid.UUID, params EulaRecordParams) (domain.Eula, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE eulas
		SET server_ref = $2,
		    server_url = $3,
		    distributor = $4,
		    client = $5,
		    contract_signed = $6,
		    contract_url = $7,
		    id_received = $8,
		    id_type = $9,
		    id_document_url = $10,
		    source_file = $11,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+eulaColumns,
		id, params.ServerRef, params.ServerURL, params.Distributor, params.Client,
		params.ContractSigned, params.ContractURL, params.IDReceived, params.IDType,
		params.IDDocumentURL, params.SourceFile,
	)

	e, err := scanEula(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Eula{}, domain.ErrEulaNotFound
		}
		if isUniqueViolation(err) {
			return domain.Eula{}, domain.ErrDuplicateEulaRef
		}
		return domain.Eula{}, fmt.Errorf("update eula: %w", err)
	}
	return e, nil
}

// DeleteEula removes a compliance record.
func (q *Queries) DeleteEula(ctx context.Context, id uuid.UUID) error {
	tag, err := q.db.Exec(ctx, `DELETE FROM eulas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete eula: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEulaNotFound
	}
	return nil
}

// UpsertEula inserts a compliance record or, when the server reference
// is already registered, overwrites the existing one. The bulk import
// path.
func (q *Queries) UpsertEula(ctx context.Context, params EulaRecordParams) (domain.Eula, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO eulas (id, server_ref, server_url, distributor, client, contract_signed, contract_url, id_received, id_type, id_document_url, source_file)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT ((lower(server_ref))) DO UPDATE
		SET server_url = EXCLUDED.server_url,
		    distributor = EXCLUDED.distributor,
		    client = EXCLUDED.client,
		    contract_signed = EXCLUDED.contract_signed,
		    contract_url = EXCLUDED.contract_url,
		    id_received = EXCLUDED.id_received,
		    id_type = EXCLUDED.id_type,
		    id_document_url = EXCLUDED.id_document_url,
		    source_file = EXCLUDED.source_file,
		    updated_at = NOW()
		RETURNING `+eulaColumns,
		uuid.New(), params.ServerRef, params.ServerURL, params.Distributor, params.Client,
		params.ContractSigned, params.ContractURL, params.IDReceived, params.IDType,
		params.IDDocumentURL, params.SourceFile,
	)

	e, err := scanEula(row)
	if err != nil {
		return domain.Eula{}, fmt.Errorf("upsert eula: %w", err)
	}
	return e, nil
}

// ListEulas returns a page of compliance records, most recently updated
// first.
func (q *Queries) ListEulas(ctx context.Context, params ListEulasParams) ([]domain.Eula, error) {
	where, args := eulaFilter(params)

	args = append(args, params.Limit, params.Offset)
	sql := fmt.Sprintf(`
		SELECT %s
		FROM eulas
		%s
		ORDER BY updated_at DESC
		LIMIT $%d OFFSET $%d`,
		eulaColumns, where, len(args)-1, len(args),
	)

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list eulas: %w", err)
	}
	defer rows.Close()

	var out []domain.Eula
	for rows.Next() {
		e, err := scanEula(rows)
		if err != nil {
			return nil, fmt.Errorf("scan eula: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountEulas returns the total row count for the same filter as
// ListEulas, for pagination.
func (q *Queries) CountEulas(ctx context.Context, params ListEulasParams) (int64, error) {
	where, args := eulaFilter(params)

	var total int64
	err := q.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM eulas
		`+where, args...,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count eulas: %w", err)
	}
	return total, nil
}

// eulaFilter builds the shared WHERE clause for the compliance list and
// count queries. Only parameterized values; column names never come from
// the caller.
func eulaFilter(params ListEulasParams) (string, []any) {
	var conditions []string
	var args []any

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(server_ref ILIKE $%d OR server_url ILIKE $%d OR client ILIKE $%d OR distributor ILIKE $%d)", n, n, n, n))
	}
	if params.Signed != nil {
		args = append(args, *params.Signed)
		conditions = append(conditions, fmt.Sprintf("contract_signed = $%d", len(args)))
	}
	if params.IDReceived != nil {
		args = append(args, *params.IDReceived)
		conditions = append(conditions, fmt.Sprintf("id_received = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
