package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/altamar/portal/internal/domain"
)

const serverColumns = `id, name, grace_days, status, created_at`

func scanServer(row pgx.Row) (domain.Server, error) {
	var s domain.Server
	err := row.Scan(&s.ID, &s.Name, &s.GraceDays, &s.Status, &s.CreatedAt)
	return s, err
}

// GetServerByID fetches one server.
func (q *Queries) GetServerByID(ctx context.Context, id uuid.UUID) (domain.Server, error) {
	row := q.db.QueryRow(ctx, `SELECT `+serverColumns+` FROM servers WHERE id = $1`, id)

	s, err := scanServer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Server{}, domain.ErrServerNotFound
		}
		return domain.Server{}, fmt.Errorf("get server: %w", err)
	}
	return s, nil
}

// GetServerByName fetches a server by its domain name, case-insensitively.
func (q *Queries) GetServerByName(ctx context.Context, name string) (domain.Server, error) {
	row := q.db.QueryRow(ctx, `SELECT `+serverColumns+` FROM servers WHERE lower(name) = lower($1)`, name)

	s, err := scanServer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Server{}, domain.ErrServerNotFound
		}
		return domain.Server{}, fmt.Errorf("get server by name: %w", err)
	}
	return s, nil
}

// ListServers returns all servers ordered by domain name, for the invoice
// upload domain selector.
func (q *Queries) ListServers(ctx context.Context) ([]domain.Server, error) {
	rows, err := q.db.Query(ctx, `SELECT `+serverColumns+` FROM servers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list servers: %w", err)
	}
	defer rows.Close()

	var out []domain.Server
	for rows.Next() {
		s, err := scanServer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan server: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
