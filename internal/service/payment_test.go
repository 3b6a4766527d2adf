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

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/store"
)

func newPaymentService(st store.TxStore, pub *capturePublisher) *PaymentService {
	announcements := newAnnouncementService(st, pub)
	return NewPaymentService(st, announcements, pub, zerolog.Nop())
}

func expectTx(mockStore *store.MockTxStore, ctx context.Context) *gomock.Call {
	return mockStore.EXPECT().
		WithTx(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(store.Querier) error) error {
			return fn(mockStore)
		})
}

func Test_SubmitPayment_RejectsBadAllocations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	serverID := uuid.New()
	invoiceID := uuid.New()
	ctx := context.Background()

	tests := []struct {
		name     string
		params   SubmitPaymentParams
		invoices []domain.Invoice // nil means the lookup is never reached
		wantErr  error
	}{
		{
			name:    "no allocations",
			params:  SubmitPaymentParams{ServerID: serverID, AmountCents: 1000},
			wantErr: domain.ErrNoAllocations,
		},
		{
			name: "sum mismatch",
			params: SubmitPaymentParams{
				ServerID:    serverID,
				AmountCents: 1500,
				Allocations: []domain.Allocation{{InvoiceID: invoiceID, AmountCents: 1000}},
			},
			wantErr: domain.ErrAllocationSumMismatch,
		},
		{
			name: "duplicate invoice",
			params: SubmitPaymentParams{
				ServerID:    serverID,
				AmountCents: 2000,
				Allocations: []domain.Allocation{
					{InvoiceID: invoiceID, AmountCents: 1000},
					{InvoiceID: invoiceID, AmountCents: 1000},
				},
			},
			wantErr: domain.Invalid("payment.submit", "Duplicate invoice in allocations"),
		},
		{
			name: "invoice not on this server",
			params: SubmitPaymentParams{
				ServerID:    serverID,
				AmountCents: 1000,
				Allocations: []domain.Allocation{{InvoiceID: invoiceID, AmountCents: 1000}},
			},
			invoices: []domain.Invoice{},
			wantErr:  domain.ErrInvoiceNotFound,
		},
		{
			name: "invoice already settled",
			params: SubmitPaymentParams{
				ServerID:    serverID,
				AmountCents: 1000,
				Allocations: []domain.Allocation{{InvoiceID: invoiceID, AmountCents: 1000}},
			},
			invoices: []domain.Invoice{{ID: invoiceID, BalanceCents: 0}},
			wantErr:  domain.ErrInvoiceNoBalance,
		},
		{
			name: "allocation exceeds balance",
			params: SubmitPaymentParams{
				ServerID:    serverID,
				AmountCents: 5000,
				Allocations: []domain.Allocation{{InvoiceID: invoiceID, AmountCents: 5000}},
			},
			invoices: []domain.Invoice{{ID: invoiceID, BalanceCents: 3000}},
			wantErr:  domain.ErrAllocationExceedsBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := store.NewMockTxStore(ctrl)
			svc := newPaymentService(mockStore, &capturePublisher{})

			if tt.invoices != nil {
				mockStore.EXPECT().
					ListInvoicesByIDs(ctx, serverID, gomock.Any()).
					Return(tt.invoices, nil)
			}

			_, err := svc.Submit(ctx, tt.params)
			require.Error(t, err)
			assert.Equal(t, domain.ErrorCode(tt.wantErr), domain.ErrorCode(err))
			assert.Equal(t, domain.ErrorMessage(tt.wantErr), domain.ErrorMessage(err))
		})
	}
}

func Test_SubmitPayment_CreatesPendingPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	pub := &capturePublisher{}
	svc := newPaymentService(mockStore, pub)

	serverID := uuid.New()
	userID := uuid.New()
	invoiceA := uuid.New()
	invoiceB := uuid.New()
	ctx := context.Background()

	params := SubmitPaymentParams{
		ServerID:    serverID,
		UserID:      userID,
		AmountCents: 7000,
		Method:      "transfer",
		Bank:        "BBVA",
		Allocations: []domain.Allocation{
			{InvoiceID: invoiceA, AmountCents: 5000},
			{InvoiceID: invoiceB, AmountCents: 2000},
		},
	}

	mockStore.EXPECT().
		ListInvoicesByIDs(ctx, serverID, []uuid.UUID{invoiceA, invoiceB}).
		Return([]domain.Invoice{
			{ID: invoiceA, BalanceCents: 5000},
			{ID: invoiceB, BalanceCents: 9000},
		}, nil)

	expectTx(mockStore, ctx)
	mockStore.EXPECT().
		CreatePayment(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p store.CreatePaymentParams) (domain.Payment, error) {
			assert.Equal(t, int64(7000), p.AmountCents)
			assert.Len(t, p.Allocations, 2)
			return domain.Payment{
				ID:          uuid.New(),
				ServerID:    p.ServerID,
				UserID:      p.UserID,
				AmountCents: p.AmountCents,
				Status:      domain.PaymentStatusPending,
				Allocations: p.Allocations,
			}, nil
		})
	mockStore.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a store.CreateAlertParams) (domain.Alert, error) {
			assert.Equal(t, domain.AlertPaymentReceived, a.AlertType)
			return domain.Alert{}, nil
		})

	payment, err := svc.Submit(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, payment.Status)
	assert.Contains(t, pub.subjects, "billing.payment.submitted")
}

func Test_ValidatePayment_ConflictWhenNotPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newPaymentService(mockStore, &capturePublisher{})

	paymentID := uuid.New()
	adminID := uuid.New()
	ctx := context.Background()

	mockStore.EXPECT().
		MarkPaymentValidated(ctx, paymentID, adminID).
		Return(int64(0), nil)
	mockStore.EXPECT().
		GetPaymentByID(ctx, paymentID).
		Return(domain.Payment{ID: paymentID, Status: domain.PaymentStatusApplied}, nil)

	_, err := svc.Validate(ctx, paymentID, adminID)
	require.ErrorIs(t, err, domain.ErrPaymentNotPending)
}

func Test_ValidatePayment_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newPaymentService(mockStore, &capturePublisher{})

	paymentID := uuid.New()
	adminID := uuid.New()
	ctx := context.Background()

	mockStore.EXPECT().
		MarkPaymentValidated(ctx, paymentID, adminID).
		Return(int64(0), nil)
	mockStore.EXPECT().
		GetPaymentByID(ctx, paymentID).
		Return(domain.Payment{}, domain.ErrPaymentNotFound)

	_, err := svc.Validate(ctx, paymentID, adminID)
	require.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func Test_RejectPayment_RequiresReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newPaymentService(mockStore, &capturePublisher{})

	_, err := svc.Reject(context.Background(), uuid.New(), uuid.New(), "")
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func Test_RejectPayment_GuardedTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	pub := &capturePublisher{}
	svc := newPaymentService(mockStore, pub)

	paymentID := uuid.New()
	adminID := uuid.New()
	ctx := context.Background()

	mockStore.EXPECT().
		MarkPaymentRejected(ctx, paymentID, adminID, "proof unreadable").
		Return(int64(1), nil)
	mockStore.EXPECT().
		GetPaymentByID(ctx, paymentID).
		Return(domain.Payment{
			ID:          paymentID,
			ServerID:    uuid.New(),
			UserID:      uuid.New(),
			AmountCents: 4000,
			Status:      domain.PaymentStatusRejected,
			Reason:      "proof unreadable",
		}, nil)
	mockStore.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		Return(domain.Alert{}, nil)

	payment, err := svc.Reject(ctx, paymentID, adminID, "proof unreadable")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusRejected, payment.Status)
	assert.Contains(t, pub.subjects, "billing.payment.rejected")
}

func Test_ApplyPayment_ReconcilesInOneTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	pub := &capturePublisher{}
	svc := newPaymentService(mockStore, pub)

	paymentID := uuid.New()
	adminID := uuid.New()
	server := testServer()
	invoiceA := uuid.New()
	invoiceB := uuid.New()
	ctx := context.Background()

	allocations := []domain.Allocation{
		{InvoiceID: invoiceA, AmountCents: 5000},
		{InvoiceID: invoiceB, AmountCents: 2000},
	}

	expectTx(mockStore, ctx)
	mockStore.EXPECT().
		GetPaymentByID(ctx, paymentID).
		Return(domain.Payment{
			ID:          paymentID,
			ServerID:    server.ID,
			UserID:      uuid.New(),
			AmountCents: 7000,
			Status:      domain.PaymentStatusValidated,
		}, nil)
	mockStore.EXPECT().
		MarkPaymentApplied(ctx, paymentID, adminID).
		Return(int64(1), nil)
	mockStore.EXPECT().
		GetPaymentAllocations(ctx, paymentID).
		Return(allocations, nil)
	mockStore.EXPECT().
		ApplyToInvoiceBalance(ctx, invoiceA, int64(5000)).
		Return(domain.Invoice{ID: invoiceA, BalanceCents: 0, Status: domain.InvoiceStatusPaid}, nil)
	mockStore.EXPECT().
		ApplyToInvoiceBalance(ctx, invoiceB, int64(2000)).
		Return(domain.Invoice{ID: invoiceB, BalanceCents: 3000, Status: domain.InvoiceStatusPartial}, nil)
	mockStore.EXPECT().
		GetServerByID(ctx, server.ID).
		Return(server, nil)

	// Regeneration inside the same transaction sees the remaining open
	// invoice, due far in the future, so the dunning state is clear.
	mockStore.EXPECT().
		ListOpenInvoices(ctx, server.ID).
		Return([]domain.Invoice{
			{ID: invoiceB, DueDate: testDay.AddDate(0, 0, 20), BalanceCents: 3000},
		}, nil)
	mockStore.EXPECT().
		ArchiveActiveAnnouncements(ctx, server.ID).
		Return(int64(1), nil)

	mockStore.EXPECT().
		SumOpenBalance(ctx, server.ID).
		Return(int64(3000), nil)
	mockStore.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		Return(domain.Alert{}, nil)

	payment, err := svc.Apply(ctx, paymentID, adminID)
	require.NoError(t, err)
	assert.Len(t, payment.Allocations, 2)
	assert.Contains(t, pub.subjects, "billing.payment.applied")
	assert.NotContains(t, pub.subjects, "billing.server.unlocked")
}

func Test_ApplyPayment_UnlocksWhenBalanceCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	pub := &capturePublisher{}
	svc := newPaymentService(mockStore, pub)

	paymentID := uuid.New()
	adminID := uuid.New()
	server := testServer()
	invoiceID := uuid.New()
	ctx := context.Background()

	expectTx(mockStore, ctx)
	mockStore.EXPECT().
		GetPaymentByID(ctx, paymentID).
		Return(domain.Payment{
			ID:          paymentID,
			ServerID:    server.ID,
			AmountCents: 5000,
			Status:      domain.PaymentStatusValidated,
		}, nil)
	mockStore.EXPECT().
		MarkPaymentApplied(ctx, paymentID, adminID).
		Return(int64(1), nil)
	mockStore.EXPECT().
		GetPaymentAllocations(ctx, paymentID).
		Return([]domain.Allocation{{InvoiceID: invoiceID, AmountCents: 5000}}, nil)
	mockStore.EXPECT().
		ApplyToInvoiceBalance(ctx, invoiceID, int64(5000)).
		Return(domain.Invoice{ID: invoiceID, BalanceCents: 0, Status: domain.InvoiceStatusPaid}, nil)
	mockStore.EXPECT().
		GetServerByID(ctx, server.ID).
		Return(server, nil)
	mockStore.EXPECT().
		ListOpenInvoices(ctx, server.ID).
		Return(nil, nil)
	mockStore.EXPECT().
		ArchiveActiveAnnouncements(ctx, server.ID).
		Return(int64(1), nil)
	mockStore.EXPECT().
		SumOpenBalance(ctx, server.ID).
		Return(int64(0), nil)
	mockStore.EXPECT().
		ArchiveSuspendedAnnouncement(ctx, server.ID).
		Return(int64(0), nil)
	mockStore.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		Return(domain.Alert{}, nil)

	_, err := svc.Apply(ctx, paymentID, adminID)
	require.NoError(t, err)
	assert.Contains(t, pub.subjects, "billing.server.unlocked")
}

func Test_ApplyPayment_ConflictWhenNotValidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newPaymentService(mockStore, &capturePublisher{})

	paymentID := uuid.New()
	adminID := uuid.New()
	ctx := context.Background()

	expectTx(mockStore, ctx)
	mockStore.EXPECT().
		GetPaymentByID(ctx, paymentID).
		Return(domain.Payment{ID: paymentID, Status: domain.PaymentStatusPending}, nil)
	mockStore.EXPECT().
		MarkPaymentApplied(ctx, paymentID, adminID).
		Return(int64(0), nil)

	_, err := svc.Apply(ctx, paymentID, adminID)
	require.ErrorIs(t, err, domain.ErrPaymentNotValidated)
}

func Test_ApplyPayment_DuplicateApplyDoesNotTouchBalances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newPaymentService(mockStore, &capturePublisher{})

	paymentID := uuid.New()
	adminID := uuid.New()
	ctx := context.Background()

	expectTx(mockStore, ctx)
	mockStore.EXPECT().
		GetPaymentByID(ctx, paymentID).
		Return(domain.Payment{
			ID:        paymentID,
			Status:    domain.PaymentStatusApplied,
			AppliedAt: time.Now(),
		}, nil)
	mockStore.EXPECT().
		MarkPaymentApplied(ctx, paymentID, adminID).
		Return(int64(0), nil)

	// No ApplyToInvoiceBalance expectations: the guard must stop the
	// transaction before any balance mutation.
	_, err := svc.Apply(ctx, paymentID, adminID)
	require.ErrorIs(t, err, domain.ErrPaymentNotValidated)
}
