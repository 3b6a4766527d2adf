package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/store"
)

func newEulaService(st store.TxStore) *EulaService {
	return NewEulaService(st, zerolog.Nop())
}

func ptr[T any](v T) *T {
	return &v
}

func Test_EulaCreate_DerivesIDReceived(t *testing.T) {
	tests := []struct {
		name     string
		params   EulaRecordParams
		expected bool
	}{
		{"document url on file", EulaRecordParams{ServerRef: "srv-100", IDDocumentURL: "https://files.example.com/id.pdf"}, true},
		{"ine id type", EulaRecordParams{ServerRef: "srv-100", IDType: domain.EulaIDINE}, true},
		{"passport id type", EulaRecordParams{ServerRef: "srv-100", IDType: domain.EulaIDPassport}, true},
		{"explicit flag", EulaRecordParams{ServerRef: "srv-100", IDReceived: true}, true},
		{"nothing on file", EulaRecordParams{ServerRef: "srv-100", IDType: domain.EulaIDNone}, false},
		{"other type without document", EulaRecordParams{ServerRef: "srv-100", IDType: domain.EulaIDOther}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := store.NewMockTxStore(ctrl)
			svc := newEulaService(mockStore)
			ctx := context.Background()

			mockStore.EXPECT().
				CreateEula(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, rec store.EulaRecordParams) (domain.Eula, error) {
					assert.Equal(t, tt.expected, rec.IDReceived)
					return domain.Eula{ServerRef: rec.ServerRef, IDReceived: rec.IDReceived}, nil
				})

			_, err := svc.Create(ctx, tt.params)
			require.NoError(t, err)
		})
	}
}

func Test_EulaCreate_RequiresServerRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newEulaService(mockStore)

	_, err := svc.Create(context.Background(), EulaRecordParams{ServerRef: "   "})
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func Test_EulaCreate_RejectsUnknownIDType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newEulaService(mockStore)

	_, err := svc.Create(context.Background(), EulaRecordParams{
		ServerRef: "srv-100",
		IDType:    "drivers_license",
	})
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}

func Test_EulaUpdate_MergesPatchOntoCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newEulaService(mockStore)
	ctx := context.Background()
	id := uuid.New()

	mockStore.EXPECT().
		GetEulaByID(ctx, id).
		Return(domain.Eula{
			ID:        id,
			ServerRef: "srv-42",
			Client:    "Cafe Sublime",
			IDType:    domain.EulaIDNone,
		}, nil)

	mockStore.EXPECT().
		UpdateEula(ctx, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, rec store.EulaRecordParams) (domain.Eula, error) {
			assert.Equal(t, "srv-42", rec.ServerRef)
			assert.Equal(t, "Cafe Sublime", rec.Client)
			assert.True(t, rec.ContractSigned)
			assert.Equal(t, domain.EulaIDINE, rec.IDType)
			assert.True(t, rec.IDReceived)
			return domain.Eula{ID: id, ServerRef: rec.ServerRef}, nil
		})

	_, err := svc.Update(ctx, id, UpdateEulaParams{
		ContractSigned: ptr(true),
		IDType:         ptr(domain.EulaIDINE),
	})
	require.NoError(t, err)
}

func Test_EulaImport_SkipsRowsWithoutServerRef(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newEulaService(mockStore)
	ctx := context.Background()

	expectTx(mockStore, ctx)

	var refs []string
	mockStore.EXPECT().
		UpsertEula(ctx, gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, rec store.EulaRecordParams) (domain.Eula, error) {
			refs = append(refs, rec.ServerRef)
			return domain.Eula{ServerRef: rec.ServerRef}, nil
		})

	done, err := svc.Import(ctx, []EulaRecordParams{
		{ServerRef: "srv-1", ContractSigned: true},
		{ServerRef: "  "},
		{ServerRef: "srv-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, done)
	assert.Equal(t, []string{"srv-1", "srv-2"}, refs)
}

func Test_EulaImport_RequiresAtLeastOneRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := store.NewMockTxStore(ctrl)
	svc := newEulaService(mockStore)

	_, err := svc.Import(context.Background(), []EulaRecordParams{{ServerRef: ""}})
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
}
