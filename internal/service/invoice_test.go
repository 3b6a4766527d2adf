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

func newInvoiceService(st store.TxStore, pub *capturePublisher) *InvoiceService {
	announcements := newAnnouncementService(st, pub)
	return NewInvoiceService(st, announcements, pub, zerolog.Nop())
}

func Test_CreateInvoice_RejectsInvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newInvoiceService(mockStore, &capturePublisher{})
	ctx := context.Background()

	tests := []struct {
		name   string
		params CreateInvoiceParams
	}{
		{
			name:   "missing folio",
			params: CreateInvoiceParams{ServerID: uuid.New(), IssueDate: testDay, TotalCents: 1000},
		},
		{
			name:   "zero total",
			params: CreateInvoiceParams{ServerID: uuid.New(), Folio: "F-001", IssueDate: testDay},
		},
		{
			name:   "negative total",
			params: CreateInvoiceParams{ServerID: uuid.New(), Folio: "F-001", IssueDate: testDay, TotalCents: -100},
		},
		{
			name:   "missing issue date",
			params: CreateInvoiceParams{ServerID: uuid.New(), Folio: "F-001", TotalCents: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.params)
			require.Error(t, err)
			assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		})
	}
}

func Test_CreateInvoice_DefaultsDueDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	pub := &capturePublisher{}
	svc := newInvoiceService(mockStore, pub)
	server := testServer()
	ctx := context.Background()

	issueDate := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	mockStore.EXPECT().
		GetServerByID(ctx, server.ID).
		Return(server, nil)
	expectTx(mockStore, ctx)

	mockStore.EXPECT().
		CreateInvoice(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p store.CreateInvoiceParams) (domain.Invoice, error) {
			assert.Equal(t, issueDate.AddDate(0, 0, domain.DueDateOffsetDays), p.DueDate)
			return domain.Invoice{
				ID:           uuid.New(),
				ServerID:     p.ServerID,
				Folio:        p.Folio,
				IssueDate:    p.IssueDate,
				DueDate:      p.DueDate,
				TotalCents:   p.TotalCents,
				BalanceCents: p.TotalCents,
				Status:       domain.InvoiceStatusUnpaid,
			}, nil
		})

	// The new invoice is already overdue relative to the fixed test day,
	// so regeneration inside the transaction must pick it up.
	mockStore.EXPECT().
		ListOpenInvoices(ctx, server.ID).
		Return([]domain.Invoice{
			{DueDate: issueDate.AddDate(0, 0, domain.DueDateOffsetDays), BalanceCents: 1000},
		}, nil)
	mockStore.EXPECT().
		DeleteDunningAnnouncements(ctx, server.ID).
		Return(nil)
	mockStore.EXPECT().
		CreateAnnouncement(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p store.CreateAnnouncementParams) (domain.Announcement, error) {
			assert.Equal(t, domain.AnnouncementOverdue, p.Kind)
			return domain.Announcement{}, nil
		})

	invoice, err := svc.Create(ctx, CreateInvoiceParams{
		ServerID:   server.ID,
		Folio:      "F-1001",
		IssueDate:  issueDate,
		TotalCents: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, invoice.TotalCents, invoice.BalanceCents)
	assert.Contains(t, pub.subjects, "billing.invoice.created")
}

func Test_CreateInvoice_DuplicateFolioConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newInvoiceService(mockStore, &capturePublisher{})
	server := testServer()
	ctx := context.Background()

	mockStore.EXPECT().
		GetServerByID(ctx, server.ID).
		Return(server, nil)
	expectTx(mockStore, ctx)
	mockStore.EXPECT().
		CreateInvoice(ctx, gomock.Any()).
		Return(domain.Invoice{}, domain.ErrDuplicateFolio)

	_, err := svc.Create(ctx, CreateInvoiceParams{
		ServerID:   server.ID,
		Folio:      "F-1001",
		IssueDate:  testDay,
		TotalCents: 1000,
	})
	require.ErrorIs(t, err, domain.ErrDuplicateFolio)
	assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
}

func Test_OpenForServer_SumsBalances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newInvoiceService(mockStore, &capturePublisher{})
	serverID := uuid.New()
	ctx := context.Background()

	mockStore.EXPECT().
		ListOpenInvoices(ctx, serverID).
		Return([]domain.Invoice{
			{BalanceCents: 3000},
			{BalanceCents: 4500},
		}, nil)

	summary, err := svc.OpenForServer(ctx, serverID)
	require.NoError(t, err)
	assert.Equal(t, int64(7500), summary.TotalDueCents)
	assert.Len(t, summary.Invoices, 2)
}
