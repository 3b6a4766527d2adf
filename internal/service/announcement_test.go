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

// capturePublisher records published subjects for assertions.
type capturePublisher struct {
	subjects []string
}

func (p *capturePublisher) Publish(ctx context.Context, subject string, payload any) error {
	p.subjects = append(p.subjects, subject)
	return nil
}

func (p *capturePublisher) Close() {}

var testDay = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func newAnnouncementService(st store.TxStore, pub *capturePublisher) *AnnouncementService {
	svc := NewAnnouncementService(st, pub, zerolog.Nop())
	svc.now = func() time.Time { return testDay }
	return svc
}

func testServer() domain.Server {
	return domain.Server{
		ID:        uuid.New(),
		Name:      "acme.example.com",
		GraceDays: 5,
	}
}

func Test_RegenerateForServer_ClearArchivesEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAnnouncementService(mockStore, &capturePublisher{})
	server := testServer()
	ctx := context.Background()

	mockStore.EXPECT().
		ListOpenInvoices(ctx, server.ID).
		Return(nil, nil)
	mockStore.EXPECT().
		ArchiveActiveAnnouncements(ctx, server.ID).
		Return(int64(2), nil)

	res, err := svc.RegenerateForServer(ctx, mockStore, server)
	require.NoError(t, err)
	assert.True(t, res.Clear())
}

func Test_RegenerateForServer_DueSoonOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAnnouncementService(mockStore, &capturePublisher{})
	server := testServer()
	ctx := context.Background()

	mockStore.EXPECT().
		ListOpenInvoices(ctx, server.ID).
		Return([]domain.Invoice{
			{DueDate: testDay.AddDate(0, 0, 3), BalanceCents: 5000},
		}, nil)
	mockStore.EXPECT().
		DeleteDunningAnnouncements(ctx, server.ID).
		Return(nil)

	var kinds []string
	mockStore.EXPECT().
		CreateAnnouncement(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params store.CreateAnnouncementParams) (domain.Announcement, error) {
			kinds = append(kinds, params.Kind)
			assert.Equal(t, testDay.AddDate(0, 0, domain.DueSoonWindowDays), params.EndsAt)
			return domain.Announcement{Kind: params.Kind}, nil
		})

	res, err := svc.RegenerateForServer(ctx, mockStore, server)
	require.NoError(t, err)
	assert.True(t, res.DueSoon)
	assert.False(t, res.Overdue)
	assert.Equal(t, []string{domain.AnnouncementDueSoon}, kinds)
}

func Test_RegenerateForServer_SuspendSuppressesOverdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAnnouncementService(mockStore, &capturePublisher{})
	server := testServer()
	ctx := context.Background()

	// One invoice past grace, one within it. Suspension wins and the
	// overdue notice is omitted.
	mockStore.EXPECT().
		ListOpenInvoices(ctx, server.ID).
		Return([]domain.Invoice{
			{DueDate: testDay.AddDate(0, 0, -10), BalanceCents: 8000},
			{DueDate: testDay.AddDate(0, 0, -2), BalanceCents: 3000},
		}, nil)
	mockStore.EXPECT().
		DeleteDunningAnnouncements(ctx, server.ID).
		Return(nil)

	var kinds []string
	mockStore.EXPECT().
		CreateAnnouncement(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params store.CreateAnnouncementParams) (domain.Announcement, error) {
			kinds = append(kinds, params.Kind)
			return domain.Announcement{Kind: params.Kind}, nil
		})

	res, err := svc.RegenerateForServer(ctx, mockStore, server)
	require.NoError(t, err)
	assert.True(t, res.Suspend)
	assert.True(t, res.Overdue)
	assert.Equal(t, []string{domain.AnnouncementSuspended}, kinds)
}

func Test_RegenerateForServer_OverdueAndDueSoonCoexist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAnnouncementService(mockStore, &capturePublisher{})
	server := testServer()
	ctx := context.Background()

	mockStore.EXPECT().
		ListOpenInvoices(ctx, server.ID).
		Return([]domain.Invoice{
			{DueDate: testDay.AddDate(0, 0, -2), BalanceCents: 3000},
			{DueDate: testDay.AddDate(0, 0, 2), BalanceCents: 4000},
		}, nil)
	mockStore.EXPECT().
		DeleteDunningAnnouncements(ctx, server.ID).
		Return(nil)

	var kinds []string
	mockStore.EXPECT().
		CreateAnnouncement(ctx, gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, params store.CreateAnnouncementParams) (domain.Announcement, error) {
			kinds = append(kinds, params.Kind)
			return domain.Announcement{Kind: params.Kind}, nil
		})

	res, err := svc.RegenerateForServer(ctx, mockStore, server)
	require.NoError(t, err)
	assert.True(t, res.Overdue)
	assert.True(t, res.DueSoon)
	assert.Equal(t, []string{domain.AnnouncementOverdue, domain.AnnouncementDueSoon}, kinds)
}

func Test_Regenerate_PublishesSuspensionEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	pub := &capturePublisher{}
	svc := newAnnouncementService(mockStore, pub)
	server := testServer()
	ctx := context.Background()

	mockStore.EXPECT().
		GetServerByID(ctx, server.ID).
		Return(server, nil)
	mockStore.EXPECT().
		WithTx(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(store.Querier) error) error {
			return fn(mockStore)
		})
	mockStore.EXPECT().
		ListOpenInvoices(ctx, server.ID).
		Return([]domain.Invoice{
			{DueDate: testDay.AddDate(0, 0, -20), BalanceCents: 8000},
		}, nil)
	mockStore.EXPECT().
		DeleteDunningAnnouncements(ctx, server.ID).
		Return(nil)
	mockStore.EXPECT().
		CreateAnnouncement(ctx, gomock.Any()).
		Return(domain.Announcement{}, nil)

	res, err := svc.Regenerate(ctx, server.ID)
	require.NoError(t, err)
	assert.True(t, res.Suspend)
	assert.Contains(t, pub.subjects, "billing.server.suspended")
}

func Test_RegenerateAll_ContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAnnouncementService(mockStore, &capturePublisher{})
	ctx := context.Background()

	broken := testServer()
	healthy := testServer()

	mockStore.EXPECT().
		ListServers(ctx).
		Return([]domain.Server{broken, healthy}, nil)

	mockStore.EXPECT().
		GetServerByID(ctx, broken.ID).
		Return(domain.Server{}, domain.ErrServerNotFound)

	mockStore.EXPECT().
		GetServerByID(ctx, healthy.ID).
		Return(healthy, nil)
	mockStore.EXPECT().
		WithTx(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(store.Querier) error) error {
			return fn(mockStore)
		})
	mockStore.EXPECT().
		ListOpenInvoices(ctx, healthy.ID).
		Return(nil, nil)
	mockStore.EXPECT().
		ArchiveActiveAnnouncements(ctx, healthy.ID).
		Return(int64(0), nil)

	done, err := svc.RegenerateAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, done)
}

func Test_CreateNotice_ResolvesServerByDomain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAnnouncementService(mockStore, &capturePublisher{})
	server := testServer()
	ctx := context.Background()

	mockStore.EXPECT().
		GetServerByName(ctx, server.Name).
		Return(server, nil)
	mockStore.EXPECT().
		CreateAnnouncement(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, params store.CreateAnnouncementParams) (domain.Announcement, error) {
			assert.Equal(t, server.ID, params.ServerID)
			assert.Equal(t, domain.AnnouncementDueWarning, params.Kind)
			assert.Equal(t, testDay, params.StartsAt)
			return domain.Announcement{Kind: params.Kind, ServerID: params.ServerID}, nil
		})

	notice, err := svc.CreateNotice(ctx, CreateNoticeParams{
		Domain: " " + server.Name + " ",
		Kind:   domain.AnnouncementDueWarning,
		Title:  "Scheduled maintenance notice",
		EndsAt: testDay.AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AnnouncementDueWarning, notice.Kind)
}

func Test_CreateNotice_RejectsEngineKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAnnouncementService(mockStore, &capturePublisher{})

	_, err := svc.CreateNotice(context.Background(), CreateNoticeParams{
		Domain: "acme.example.com",
		Kind:   domain.AnnouncementOverdue,
		Title:  "Manual overdue",
		EndsAt: testDay.AddDate(0, 0, 7),
	})
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func Test_UpdateNotice_RefusesEngineOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAnnouncementService(mockStore, &capturePublisher{})
	ctx := context.Background()
	id := uuid.New()

	mockStore.EXPECT().
		GetAnnouncementByID(ctx, id).
		Return(domain.Announcement{ID: id, Kind: domain.AnnouncementSuspended}, nil)

	title := "Edited title"
	_, err := svc.UpdateNotice(ctx, id, UpdateNoticeParams{Title: &title})
	require.ErrorIs(t, err, domain.ErrAnnouncementEngineOwned)
}

func Test_UpdateNotice_PatchesManualNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAnnouncementService(mockStore, &capturePublisher{})
	ctx := context.Background()
	id := uuid.New()

	mockStore.EXPECT().
		GetAnnouncementByID(ctx, id).
		Return(domain.Announcement{
			ID:       id,
			Kind:     domain.AnnouncementDueWarning,
			Title:    "Original title",
			StartsAt: testDay,
			EndsAt:   testDay.AddDate(0, 0, 7),
		}, nil)

	newEnd := testDay.AddDate(0, 0, 14)
	mockStore.EXPECT().
		UpdateAnnouncement(ctx, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, params store.UpdateAnnouncementParams) (domain.Announcement, error) {
			assert.Equal(t, "Original title", params.Title)
			assert.Equal(t, newEnd, params.EndsAt)
			return domain.Announcement{ID: id, EndsAt: params.EndsAt}, nil
		})

	_, err := svc.UpdateNotice(ctx, id, UpdateNoticeParams{EndsAt: &newEnd})
	require.NoError(t, err)
}

func Test_Acknowledge_SecondTimeConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newAnnouncementService(mockStore, &capturePublisher{})
	ctx := context.Background()
	announcementID := uuid.New()
	userID := uuid.New()

	mockStore.EXPECT().
		GetAnnouncementByID(ctx, announcementID).
		Return(domain.Announcement{ID: announcementID}, nil).
		Times(2)
	mockStore.EXPECT().
		AcknowledgeAnnouncement(ctx, announcementID, userID).
		Return(int64(1), nil)
	mockStore.EXPECT().
		AcknowledgeAnnouncement(ctx, announcementID, userID).
		Return(int64(0), nil)

	require.NoError(t, svc.Acknowledge(ctx, announcementID, userID))
	err := svc.Acknowledge(ctx, announcementID, userID)
	require.ErrorIs(t, err, domain.ErrAnnouncementAcknowledged)
}
