package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/altamar/portal/internal/domain"
)

// CreateAlertParams contains the fields for inserting an alert.
type CreateAlertParams struct {
	ServerID  uuid.UUID
	UserID    uuid.UUID
	AlertType string
	Message   string
}

// AlertWithContext is an alert row joined with the username and server
// domain for the admin feed.
type AlertWithContext struct {
	domain.Alert
	Username   string
	ServerName string
}

// ListAlertsParams filters the admin alert feed.
type ListAlertsParams struct {
	Type   string
	Search string
	Limit  int32
	Offset int32
}

// CreateAlert inserts an operational alert.
func (q *Queries) CreateAlert(ctx context.Context, params CreateAlertParams) (domain.Alert, error) {
	var userID pgtype.UUID
	if params.UserID != uuid.Nil {
		userID = pgtype.UUID{Bytes: params.UserID, Valid: true}
	}

	row := q.db.QueryRow(ctx, `
		INSERT INTO alerts (id, server_id, user_id, alert_type, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, server_id, user_id, alert_type, message, acknowledged, created_at`,
		uuid.New(), params.ServerID, userID, params.AlertType, params.Message,
	)

	var a domain.Alert
	var uid pgtype.UUID
	if err := row.Scan(&a.ID, &a.ServerID, &uid, &a.AlertType, &a.Message, &a.Acknowledged, &a.CreatedAt); err != nil {
		return domain.Alert{}, fmt.Errorf("insert alert: %w", err)
	}
	if uid.Valid {
		a.UserID = uuid.UUID(uid.Bytes)
	}
	return a, nil
}

// ListAlerts returns a page of the admin alert feed, newest first.
func (q *Queries) ListAlerts(ctx context.Context, params ListAlertsParams) ([]AlertWithContext, error) {
	where, args := alertFilter(params)

	args = append(args, params.Limit, params.Offset)
	sql := fmt.Sprintf(`
		SELECT a.id, a.server_id, a.user_id, a.alert_type, a.message, a.acknowledged, a.created_at,
		       COALESCE(u.username, ''), COALESCE(s.name, '')
		FROM alerts a
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN servers s ON s.id = a.server_id
		%s
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args),
	)

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var out []AlertWithContext
	for rows.Next() {
		var item AlertWithContext
		var uid pgtype.UUID
		if err := rows.Scan(
			&item.ID, &item.ServerID, &uid, &item.AlertType, &item.Message,
			&item.Acknowledged, &item.CreatedAt, &item.Username, &item.ServerName,
		); err != nil {
			return nil, fmt.Errorf("scan alert row: %w", err)
		}
		if uid.Valid {
			item.UserID = uuid.UUID(uid.Bytes)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// CountAlerts returns the total row count for the ListAlerts filter.
func (q *Queries) CountAlerts(ctx context.Context, params ListAlertsParams) (int64, error) {
	where, args := alertFilter(params)

	var total int64
	err := q.db.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM alerts a
		LEFT JOIN users u ON u.id = a.user_id
		LEFT JOIN servers s ON s.id = a.server_id
		`+where, args...,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count alerts: %w", err)
	}
	return total, nil
}

func alertFilter(params ListAlertsParams) (string, []any) {
	var conditions []string
	var args []any

	if params.Type != "" {
		args = append(args, params.Type)
		conditions = append(conditions, fmt.Sprintf("a.alert_type = $%d", len(args)))
	}
	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(a.message ILIKE $%d OR u.username ILIKE $%d OR s.name ILIKE $%d)", n, n, n))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
