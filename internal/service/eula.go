package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/store"
)

// EulaRecordParams are the admin-supplied compliance fields. IDReceived
// may be forced true by the derivation rule even when false on input.
type EulaRecordParams struct {
	ServerRef      string
	ServerURL      string
	Distributor    string
	Client         string
	ContractSigned bool
	ContractURL    string
	IDReceived     bool
	IDType         string
	IDDocumentURL  string
	SourceFile     string
}

// UpdateEulaParams is a partial patch; nil fields keep the current
// value.
type UpdateEulaParams struct {
	ServerRef      *string
	ServerURL      *string
	Distributor    *string
	Client         *string
	ContractSigned *bool
	ContractURL    *string
	IDReceived     *bool
	IDType         *string
	IDDocumentURL  *string
	SourceFile     *string
}

// ListEulasParams are the admin list filters.
type ListEulasParams struct {
	Search     string
	Signed     *bool
	IDReceived *bool
	Page       int32
	PerPage    int32
}

// EulaPage is one page of the compliance list.
type EulaPage struct {
	Items []domain.Eula
	Total int64
}

// EulaService maintains the contract compliance registry: one record per
// provisioned server tracking whether the agreement was signed and an
// official ID document received.
type EulaService struct {
	store store.TxStore
	log   zerolog.Logger
}

// NewEulaService builds an EulaService.
func NewEulaService(st store.TxStore, log zerolog.Logger) *EulaService {
	return &EulaService{store: st, log: log}
}

// Create registers a compliance record for a server reference.
func (s *EulaService) Create(ctx context.Context, params EulaRecordParams) (domain.Eula, error) {
	rec, err := normalizeEula("eula.create", params)
	if err != nil {
		return domain.Eula{}, err
	}

	eula, err := s.store.CreateEula(ctx, rec)
	if err != nil {
		return domain.Eula{}, err
	}

	s.log.Info().
		Str("server_ref", eula.ServerRef).
		Bool("contract_signed", eula.ContractSigned).
		Msg("compliance record created")
	return eula, nil
}

// Get fetches one compliance record.
func (s *EulaService) Get(ctx context.Context, id uuid.UUID) (domain.Eula, error) {
	return s.store.GetEulaByID(ctx, id)
}

// Update merges a partial patch onto the current record and stores the
// result, re-running the ID derivation over the merged fields.
func (s *EulaService) Update(ctx context.Context, id uuid.UUID, patch UpdateEulaParams) (domain.Eula, error) {
	current, err := s.store.GetEulaByID(ctx, id)
	if err != nil {
		return domain.Eula{}, err
	}

	rec, err := normalizeEula("eula.update", mergeEula(current, patch))
	if err != nil {
		return domain.Eula{}, err
	}
	return s.store.UpdateEula(ctx, id, rec)
}

// Delete removes a compliance record.
func (s *EulaService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.DeleteEula(ctx, id)
}

// List returns a page of compliance records for the admin view.
func (s *EulaService) List(ctx context.Context, params ListEulasParams) (EulaPage, error) {
	limit, offset := pageBounds(params.Page, params.PerPage)
	storeParams := store.ListEulasParams{
		Search:     params.Search,
		Signed:     params.Signed,
		IDReceived: params.IDReceived,
		Limit:      limit,
		Offset:     offset,
	}

	items, err := s.store.ListEulas(ctx, storeParams)
	if err != nil {
		return EulaPage{}, err
	}
	total, err := s.store.CountEulas(ctx, storeParams)
	if err != nil {
		return EulaPage{}, err
	}
	return EulaPage{Items: items, Total: total}, nil
}

// Import upserts a batch of records keyed by server reference, the bulk
// load path for compliance sheets. Rows without a server reference are
// skipped; the returned count is the number of rows written.
func (s *EulaService) Import(ctx context.Context, rows []EulaRecordParams) (int, error) {
	prepared := make([]store.EulaRecordParams, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.ServerRef) == "" {
			continue
		}
		rec, err := normalizeEula("eula.import", row)
		if err != nil {
			return 0, err
		}
		prepared = append(prepared, rec)
	}
	if len(prepared) == 0 {
		return 0, domain.Invalid("eula.import", "No rows with a server reference to import")
	}

	var done int
	err := s.store.WithTx(ctx, func(q store.Querier) error {
		for _, rec := range prepared {
			if _, err := q.UpsertEula(ctx, rec); err != nil {
				return err
			}
			done++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.Info().Int("rows", done).Msg("compliance records imported")
	return done, nil
}

// normalizeEula trims the record and applies the ID derivation rule: a
// stored document URL or an INE/passport type counts as received even
// when the flag was not set.
func normalizeEula(op string, params EulaRecordParams) (store.EulaRecordParams, error) {
	ref := strings.TrimSpace(params.ServerRef)
	if ref == "" {
		return store.EulaRecordParams{}, domain.Invalid(op, "Server reference is required")
	}

	idType := strings.TrimSpace(params.IDType)
	if idType == "" {
		idType = domain.EulaIDNone
	}
	if !domain.ValidEulaIDType(idType) {
		return store.EulaRecordParams{}, domain.Invalid(op, "Unknown ID document type")
	}

	docURL := strings.TrimSpace(params.IDDocumentURL)
	received := params.IDReceived ||
		docURL != "" ||
		idType == domain.EulaIDINE ||
		idType == domain.EulaIDPassport

	return store.EulaRecordParams{
		ServerRef:      ref,
		ServerURL:      strings.TrimSpace(params.ServerURL),
		Distributor:    strings.TrimSpace(params.Distributor),
		Client:         strings.TrimSpace(params.Client),
		ContractSigned: params.ContractSigned,
		ContractURL:    strings.TrimSpace(params.ContractURL),
		IDReceived:     received,
		IDType:         idType,
		IDDocumentURL:  docURL,
		SourceFile:     strings.TrimSpace(params.SourceFile),
	}, nil
}

func mergeEula(current domain.Eula, patch UpdateEulaParams) EulaRecordParams {
	out := EulaRecordParams{
		ServerRef:      current.ServerRef,
		ServerURL:      current.ServerURL,
		Distributor:    current.Distributor,
		Client:         current.Client,
		ContractSigned: current.ContractSigned,
		ContractURL:    current.ContractURL,
		IDReceived:     current.IDReceived,
		IDType:         current.IDType,
		IDDocumentURL:  current.IDDocumentURL,
		SourceFile:     current.SourceFile,
	}
	if patch.ServerRef != nil {
		out.ServerRef = *patch.ServerRef
	}
	if patch.ServerURL != nil {
		out.ServerURL = *patch.ServerURL
	}
	if patch.Distributor != nil {
		out.Distributor = *patch.Distributor
	}
	if patch.Client != nil {
		out.Client = *patch.Client
	}
	if patch.ContractSigned != nil {
		out.ContractSigned = *patch.ContractSigned
	}
	if patch.ContractURL != nil {
		out.ContractURL = *patch.ContractURL
	}
	if patch.IDReceived != nil {
		out.IDReceived = *patch.IDReceived
	}
	if patch.IDType != nil {
		out.IDType = *patch.IDType
	}
	if patch.IDDocumentURL != nil {
		out.IDDocumentURL = *patch.IDDocumentURL
	}
	if patch.SourceFile != nil {
		out.SourceFile = *patch.SourceFile
	}
	return out
}
