package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/altamar/portal/internal/auth"
	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/store"
)

// RegisterCustomerParams are the fields for a customer self-registration.
type RegisterCustomerParams struct {
	ServerName string
	Username   string
	Email      string
	Password   string
}

// AccountService handles logins and customer registration. Customers
// authenticate with username + server domain, admins with email; both
// receive a signed session token.
type AccountService struct {
	store  store.TxStore
	tokens *auth.TokenIssuer
	log    zerolog.Logger
}

// NewAccountService builds an AccountService.
func NewAccountService(st store.TxStore, tokens *auth.TokenIssuer, log zerolog.Logger) *AccountService {
	return &AccountService{store: st, tokens: tokens, log: log}
}

// LoginCustomer authenticates a customer by username + server domain.
// Lookup failures and password mismatches both map to the same
// credentials error.
func (s *AccountService) LoginCustomer(ctx context.Context, username, serverName, password string) (domain.User, string, error) {
	user, err := s.store.GetUserByLogin(ctx, strings.TrimSpace(username), strings.TrimSpace(serverName))
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}
	return s.issueSession(user, password)
}

// LoginAdmin authenticates an administrator by email.
func (s *AccountService) LoginAdmin(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.store.GetAdminByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}
	return s.issueSession(user, password)
}

// RegisterCustomer creates a customer account bound to an existing
// server domain.
func (s *AccountService) RegisterCustomer(ctx context.Context, params RegisterCustomerParams) (domain.User, error) {
	username := strings.TrimSpace(params.Username)
	if username == "" {
		return domain.User{}, domain.Invalid("account.register", "Username is required")
	}

	server, err := s.store.GetServerByName(ctx, strings.TrimSpace(params.ServerName))
	if err != nil {
		return domain.User{}, err
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		if errors.Is(err, auth.ErrPasswordTooShort) {
			return domain.User{}, domain.Invalid("account.register", err.Error())
		}
		return domain.User{}, err
	}

	user, err := s.store.CreateUser(ctx, store.CreateUserParams{
		ServerID:     server.ID,
		Username:     username,
		Email:        strings.TrimSpace(params.Email),
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
	})
	if err != nil {
		return domain.User{}, err
	}

	s.log.Info().
		Str("username", user.Username).
		Str("server", server.Name).
		Msg("customer registered")
	return user, nil
}

// NDAAccepted reports whether the user has accepted the NDA.
func (s *AccountService) NDAAccepted(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.store.HasAcceptedNDA(ctx, userID)
}

// AcceptNDA records the user's NDA acceptance along with the request
// origin. Accepting twice keeps the original record.
func (s *AccountService) AcceptNDA(ctx context.Context, userID uuid.UUID, ip, userAgent string) error {
	return s.store.AcceptNDA(ctx, store.AcceptNDAParams{
		UserID:    userID,
		IP:        ip,
		UserAgent: userAgent,
	})
}

func (s *AccountService) issueSession(user domain.User, password string) (domain.User, string, error) {
	if err := auth.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return domain.User{}, "", domain.Internal(err, "account.login", "Could not create session")
	}
	return user, token, nil
}
