package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/altamar/portal/internal/domain"
)

// CreateUserParams contains the fields for inserting a portal user.
type CreateUserParams struct {
	ServerID     uuid.UUID // zero for admins
	Username     string
	Email        string
	PasswordHash string
	Role         string
}

const userColumns = `id, server_id, username, email, password_hash, role, created_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	var serverID pgtype.UUID
	err := row.Scan(&u.ID, &serverID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		return domain.User{}, err
	}
	if serverID.Valid {
		u.ServerID = uuid.UUID(serverID.Bytes)
	}
	return u, nil
}

// GetUserByLogin resolves a customer by username + server domain, the
// portal's login identity pair.
func (q *Queries) GetUserByLogin(ctx context.Context, username, domainName string) (domain.User, error) {
	row := q.db.QueryRow(ctx, `
		SELECT u.`+userColumnsQualified()+`
		FROM users u
		JOIN servers s ON s.id = u.server_id
		WHERE lower(u.username) = lower($1) AND lower(s.name) = lower($2)`,
		username, domainName,
	)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user by login: %w", err)
	}
	return u, nil
}

// GetAdminByEmail fetches an admin account by email.
func (q *Queries) GetAdminByEmail(ctx context.Context, email string) (domain.User, error) {
	row := q.db.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE lower(email) = lower($1) AND role = $2`,
		email, domain.RoleAdmin,
	)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get admin by email: %w", err)
	}
	return u, nil
}

// CreateUser inserts a portal user. The server reference is NULL for
// admin accounts.
func (q *Queries) CreateUser(ctx context.Context, params CreateUserParams) (domain.User, error) {
	var serverID pgtype.UUID
	if params.ServerID != uuid.Nil {
		serverID = pgtype.UUID{Bytes: params.ServerID, Valid: true}
	}

	row := q.db.QueryRow(ctx, `
		INSERT INTO users (id, server_id, username, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		uuid.New(), serverID, params.Username, params.Email, params.PasswordHash, params.Role,
	)

	u, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, domain.Conflict("user.create", "username already exists for this server")
		}
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func userColumnsQualified() string {
	return `id, u.server_id, u.username, u.email, u.password_hash, u.role, u.created_at`
}

// AcceptNDAParams records who accepted the NDA and from where.
type AcceptNDAParams struct {
	UserID    uuid.UUID
	IP        string
	UserAgent string
}

// HasAcceptedNDA reports whether the user has an NDA acceptance on file.
func (q *Queries) HasAcceptedNDA(ctx context.Context, userID uuid.UUID) (bool, error) {
	var accepted bool
	err := q.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM nda_acceptances WHERE user_id = $1)`,
		userID,
	).Scan(&accepted)
	if err != nil {
		return false, fmt.Errorf("check nda acceptance: %w", err)
	}
	return accepted, nil
}

// AcceptNDA stores an NDA acceptance. Accepting again keeps the original
// row.
func (q *Queries) AcceptNDA(ctx context.Context, params AcceptNDAParams) error {
	_, err := q.db.Exec(ctx, `
		INSERT INTO nda_acceptances (user_id, ip, user_agent)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING`,
		params.UserID, params.IP, params.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("accept nda: %w", err)
	}
	return nil
}
