package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/altamar/portal/internal/domain"
)

// CreateAnnouncementParams contains the fields for inserting an
// announcement.
type CreateAnnouncementParams struct {
	ServerID uuid.UUID
	Kind     string
	Title    string
	Body     string
	StartsAt time.Time
	EndsAt   time.Time
}

// UpdateAnnouncementParams carries the replacement fields for an admin
// edit of a manual notice.
type UpdateAnnouncementParams struct {
	Kind     string
	Title    string
	Body     string
	StartsAt time.Time
	EndsAt   time.Time
}

const announcementColumns = `id, server_id, kind, title, body, starts_at, ends_at, status, created_at`

func scanAnnouncement(row pgx.Row) (domain.Announcement, error) {
	var a domain.Announcement
	err := row.Scan(
		&a.ID, &a.ServerID, &a.Kind, &a.Title, &a.Body,
		&a.StartsAt, &a.EndsAt, &a.Status, &a.CreatedAt,
	)
	return a, err
}

// CreateAnnouncement inserts an active announcement.
func (q *Queries) CreateAnnouncement(ctx context.Context, params CreateAnnouncementParams) (domain.Announcement, error) {
	row := q.db.QueryRow(ctx, `
		INSERT INTO announcements (id, server_id, kind, title, body, starts_at, ends_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+announcementColumns,
		uuid.New(), params.ServerID, params.Kind, params.Title, params.Body,
		params.StartsAt, params.EndsAt, domain.AnnouncementStatusActive,
	)

	a, err := scanAnnouncement(row)
	if err != nil {
		return domain.Announcement{}, fmt.Errorf("insert announcement: %w", err)
	}
	return a, nil
}

// GetAnnouncementByID fetches one announcement.
func (q *Queries) GetAnnouncementByID(ctx context.Context, id uuid.UUID) (domain.Announcement, error) {
	row := q.db.QueryRow(ctx, `SELECT `+announcementColumns+` FROM announcements WHERE id = $1`, id)

	a, err := scanAnnouncement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Announcement{}, domain.ErrAnnouncementNotFound
		}
		return domain.Announcement{}, fmt.Errorf("get announcement: %w", err)
	}
	return a, nil
}

// UpdateAnnouncement replaces the editable fields of an announcement.
func (q *Queries) UpdateAnnouncement(ctx context.Context, id uuid.UUID, params UpdateAnnouncementParams) (domain.Announcement, error) {
	row := q.db.QueryRow(ctx, `
		UPDATE announcements
		SET kind = $2, title = $3, body = $4, starts_at = $5, ends_at = $6
		WHERE id = $1
		RETURNING `+announcementColumns,
		id, params.Kind, params.Title, params.Body, params.StartsAt, params.EndsAt,
	)

	a, err := scanAnnouncement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Announcement{}, domain.ErrAnnouncementNotFound
		}
		return domain.Announcement{}, fmt.Errorf("update announcement: %w", err)
	}
	return a, nil
}

// ListServerAnnouncements returns every announcement for a server,
// newest first, for the admin view.
func (q *Queries) ListServerAnnouncements(ctx context.Context, serverID uuid.UUID) ([]domain.Announcement, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+announcementColumns+`
		FROM announcements
		WHERE server_id = $1
		ORDER BY created_at DESC`,
		serverID,
	)
	if err != nil {
		return nil, fmt.Errorf("list server announcements: %w", err)
	}
	defer rows.Close()

	var out []domain.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// AcknowledgeAnnouncement records that a user has seen an announcement.
// Returns the number of rows inserted; zero means it was already
// acknowledged.
func (q *Queries) AcknowledgeAnnouncement(ctx context.Context, announcementID, userID uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, `
		INSERT INTO announcement_acknowledgements (announcement_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (announcement_id, user_id) DO NOTHING`,
		announcementID, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("acknowledge announcement: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListActiveAnnouncements returns the server's active, non-expired
// announcements, newest first.
func (q *Queries) ListActiveAnnouncements(ctx context.Context, serverID uuid.UUID) ([]domain.Announcement, error) {
	rows, err := q.db.Query(ctx, `
		SELECT `+announcementColumns+`
		FROM announcements
		WHERE server_id = $1 AND status = $2 AND ends_at > NOW()
		ORDER BY created_at DESC`,
		serverID, domain.AnnouncementStatusActive,
	)
	if err != nil {
		return nil, fmt.Errorf("list active announcements: %w", err)
	}
	defer rows.Close()

	var out []domain.Announcement
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteDunningAnnouncements removes all engine-owned announcements for a
// server. Regeneration replaces rather than accumulates, so duplicates
// can never build up.
func (q *Queries) DeleteDunningAnnouncements(ctx context.Context, serverID uuid.UUID) error {
	_, err := q.db.Exec(ctx, `
		DELETE FROM announcements
		WHERE server_id = $1 AND kind = ANY($2)`,
		serverID, domain.DunningKinds(),
	)
	if err != nil {
		return fmt.Errorf("delete dunning announcements: %w", err)
	}
	return nil
}

// ArchiveActiveAnnouncements archives every active announcement for a
// server and closes its window. This is the "balance is clear" branch.
func (q *Queries) ArchiveActiveAnnouncements(ctx context.Context, serverID uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, `
		UPDATE announcements
		SET status = $2, ends_at = NOW()
		WHERE server_id = $1 AND status = $3`,
		serverID, domain.AnnouncementStatusArchived, domain.AnnouncementStatusActive,
	)
	if err != nil {
		return 0, fmt.Errorf("archive active announcements: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ArchiveSuspendedAnnouncement archives only an active Suspended
// announcement. Used by the explicit unlock check after payment
// application.
func (q *Queries) ArchiveSuspendedAnnouncement(ctx context.Context, serverID uuid.UUID) (int64, error) {
	tag, err := q.db.Exec(ctx, `
		UPDATE announcements
		SET status = $2, ends_at = NOW()
		WHERE server_id = $1 AND kind = $3 AND status = $4`,
		serverID, domain.AnnouncementStatusArchived, domain.AnnouncementSuspended, domain.AnnouncementStatusActive,
	)
	if err != nil {
		return 0, fmt.Errorf("archive suspended announcement: %w", err)
	}
	return tag.RowsAffected(), nil
}
