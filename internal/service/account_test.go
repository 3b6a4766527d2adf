package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/altamar/portal/internal/auth"
	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/store"
)

func newAccountService(st store.TxStore) *AccountService {
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewAccountService(st, tokens, zerolog.Nop())
}

func Test_LoginCustomer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAccountService(mockStore)
	ctx := context.Background()

	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	serverID := uuid.New()
	mockStore.EXPECT().
		GetUserByLogin(ctx, "ana", "acme.example.com").
		Return(domain.User{
			ID:           uuid.New(),
			ServerID:     serverID,
			Username:     "ana",
			PasswordHash: hash,
			Role:         domain.RoleCustomer,
		}, nil)

	user, token, err := svc.LoginCustomer(ctx, " ana ", " acme.example.com ", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "ana", user.Username)
	assert.NotEmpty(t, token)
}

func Test_LoginCustomer_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAccountService(mockStore)
	ctx := context.Background()

	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	mockStore.EXPECT().
		GetUserByLogin(ctx, "ana", "acme.example.com").
		Return(domain.User{PasswordHash: hash, Role: domain.RoleCustomer}, nil)

	_, _, err = svc.LoginCustomer(ctx, "ana", "acme.example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func Test_LoginCustomer_UnknownUserMapsToCredentialsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAccountService(mockStore)
	ctx := context.Background()

	mockStore.EXPECT().
		GetUserByLogin(ctx, "ghost", "acme.example.com").
		Return(domain.User{}, domain.ErrUserNotFound)

	_, _, err := svc.LoginCustomer(ctx, "ghost", "acme.example.com", "whatever")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func Test_LoginAdmin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAccountService(mockStore)
	ctx := context.Background()

	hash, err := auth.HashPassword("admin-password")
	require.NoError(t, err)

	mockStore.EXPECT().
		GetAdminByEmail(ctx, "ops@altamar.mx").
		Return(domain.User{
			ID:           uuid.New(),
			Email:        "ops@altamar.mx",
			PasswordHash: hash,
			Role:         domain.RoleAdmin,
		}, nil)

	user, token, err := svc.LoginAdmin(ctx, "ops@altamar.mx", "admin-password")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
	assert.NotEmpty(t, token)
}

func Test_RegisterCustomer_ShortPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAccountService(mockStore)
	server := testServer()
	ctx := context.Background()

	mockStore.EXPECT().
		GetServerByName(ctx, server.Name).
		Return(server, nil)

	_, err := svc.RegisterCustomer(ctx, RegisterCustomerParams{
		ServerName: server.Name,
		Username:   "ana",
		Email:      "ana@example.com",
		Password:   "short",
	})
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func Test_RegisterCustomer_UnknownDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAccountService(mockStore)
	ctx := context.Background()

	mockStore.EXPECT().
		GetServerByName(ctx, "nope.example.com").
		Return(domain.Server{}, domain.ErrServerNotFound)

	_, err := svc.RegisterCustomer(ctx, RegisterCustomerParams{
		ServerName: "nope.example.com",
		Username:   "ana",
		Password:   "long-enough-password",
	})
	require.ErrorIs(t, err, domain.ErrServerNotFound)
}

func Test_AcceptNDA_RecordsRequestOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAccountService(mockStore)
	ctx := context.Background()
	userID := uuid.New()

	mockStore.EXPECT().
		AcceptNDA(ctx, store.AcceptNDAParams{
			UserID:    userID,
			IP:        "203.0.113.7",
			UserAgent: "portal-web/1.0",
		}).
		Return(nil)
	mockStore.EXPECT().
		HasAcceptedNDA(ctx, userID).
		Return(true, nil)

	require.NoError(t, svc.AcceptNDA(ctx, userID, "203.0.113.7", "portal-web/1.0"))

	accepted, err := svc.NDAAccepted(ctx, userID)
	require.NoError(t, err)
	assert.True(t, accepted)
}
