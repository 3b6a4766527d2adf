package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/events"
	"github.com/altamar/portal/internal/store"
)

// CreateInvoiceParams are the admin-supplied fields for an invoice
// upload. DueDate is optional; when zero it defaults to the issue date
// plus the standard offset.
type CreateInvoiceParams struct {
	ServerID   uuid.UUID
	Folio      string
	IssueDate  time.Time
	DueDate    time.Time
	TotalCents int64
	PDFURL     string
}

// ListInvoicesParams are the admin list filters. Zero limits fall back
// to the default page size.
type ListInvoicesParams struct {
	Search  string
	Status  string
	OrderBy domain.InvoiceSortField
	Desc    bool
	Page    int32
	PerPage int32
}

// InvoicePage is one page of the admin invoice list.
type InvoicePage struct {
	Items []store.InvoiceWithServer
	Total int64
}

// BillingSummary is the customer-facing view of a server's open
// invoices.
type BillingSummary struct {
	Invoices      []domain.Invoice
	TotalDueCents int64
}

// InvoiceService creates invoices and serves invoice views for both
// sides of the portal.
type InvoiceService struct {
	store         store.TxStore
	announcements *AnnouncementService
	events        events.Publisher
	log           zerolog.Logger
}

// NewInvoiceService builds an InvoiceService.
func NewInvoiceService(st store.TxStore, announcements *AnnouncementService, pub events.Publisher, log zerolog.Logger) *InvoiceService {
	return &InvoiceService{
		store:         st,
		announcements: announcements,
		events:        pub,
		log:           log,
	}
}

// Create registers a new invoice for a server and regenerates the
// server's dunning announcements in the same transaction, so a
// just-uploaded overdue invoice is reflected immediately.
func (s *InvoiceService) Create(ctx context.Context, params CreateInvoiceParams) (domain.Invoice, error) {
	if params.Folio == "" {
		return domain.Invoice{}, domain.Invalid("invoice.create", "Folio is required")
	}
	if params.TotalCents <= 0 {
		return domain.Invoice{}, domain.Invalid("invoice.create", "Invoice total must be positive")
	}
	if params.IssueDate.IsZero() {
		return domain.Invoice{}, domain.Invalid("invoice.create", "Issue date is required")
	}

	server, err := s.store.GetServerByID(ctx, params.ServerID)
	if err != nil {
		return domain.Invoice{}, err
	}

	dueDate := params.DueDate
	if dueDate.IsZero() {
		dueDate = domain.DueDateFor(params.IssueDate)
	}

	var invoice domain.Invoice
	err = s.store.WithTx(ctx, func(q store.Querier) error {
		invoice, err = q.CreateInvoice(ctx, store.CreateInvoiceParams{
			ServerID:   params.ServerID,
			Folio:      params.Folio,
			IssueDate:  params.IssueDate,
			DueDate:    dueDate,
			TotalCents: params.TotalCents,
			PDFURL:     params.PDFURL,
		})
		if err != nil {
			return err
		}

		_, err = s.announcements.RegenerateForServer(ctx, q, server)
		return err
	})
	if err != nil {
		return domain.Invoice{}, err
	}

	s.log.Info().
		Str("server", server.Name).
		Str("folio", invoice.Folio).
		Int64("total_cents", invoice.TotalCents).
		Msg("invoice created")

	s.publish(ctx, events.SubjectInvoiceCreated, map[string]any{
		"invoice_id":  invoice.ID.String(),
		"server_id":   server.ID.String(),
		"folio":       invoice.Folio,
		"total_cents": invoice.TotalCents,
		"due_date":    invoice.DueDate,
	})
	return invoice, nil
}

// Get fetches one invoice.
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (domain.Invoice, error) {
	return s.store.GetInvoiceByID(ctx, id)
}

// List returns a page of invoices for the admin view.
func (s *InvoiceService) List(ctx context.Context, params ListInvoicesParams) (InvoicePage, error) {
	limit, offset := pageBounds(params.Page, params.PerPage)
	storeParams := store.ListInvoicesParams{
		Search:  params.Search,
		Status:  params.Status,
		OrderBy: params.OrderBy,
		Desc:    params.Desc,
		Limit:   limit,
		Offset:  offset,
	}

	items, err := s.store.ListInvoices(ctx, storeParams)
	if err != nil {
		return InvoicePage{}, err
	}
	total, err := s.store.CountInvoices(ctx, storeParams)
	if err != nil {
		return InvoicePage{}, err
	}
	return InvoicePage{Items: items, Total: total}, nil
}

// OpenForServer returns a server's open invoices and total outstanding
// balance for the customer billing page.
func (s *InvoiceService) OpenForServer(ctx context.Context, serverID uuid.UUID) (BillingSummary, error) {
	invoices, err := s.store.ListOpenInvoices(ctx, serverID)
	if err != nil {
		return BillingSummary{}, err
	}

	var total int64
	for _, inv := range invoices {
		total += inv.BalanceCents
	}
	return BillingSummary{Invoices: invoices, TotalDueCents: total}, nil
}

func (s *InvoiceService) publish(ctx context.Context, subject string, payload any) {
	if err := s.events.Publish(ctx, subject, payload); err != nil {
		s.log.Warn().Err(err).Str("subject", subject).Msg("publish event failed")
	}
}

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

func pageBounds(page, perPage int32) (limit, offset int32) {
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	if page < 1 {
		page = 1
	}
	return perPage, (page - 1) * perPage
}
