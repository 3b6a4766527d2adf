package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/events"
	"github.com/altamar/portal/internal/store"
)

// SubmitPaymentParams are the customer-supplied fields for a payment
// report.
type SubmitPaymentParams struct {
	ServerID    uuid.UUID
	UserID      uuid.UUID
	AmountCents int64
	Method      string
	Bank        string
	ProofURL    string
	Allocations []domain.Allocation
}

// ListPaymentsParams are the admin list filters.
type ListPaymentsParams struct {
	Search  string
	Status  string
	OrderBy domain.PaymentSortField
	Desc    bool
	Page    int32
	PerPage int32
}

// PaymentPage is one page of the admin payment list.
type PaymentPage struct {
	Items []store.PaymentWithServer
	Total int64
}

// PaymentService drives the payment lifecycle: customers submit, admins
// validate or reject, and application reconciles invoice balances and
// dunning state in a single transaction.
type PaymentService struct {
	store         store.TxStore
	announcements *AnnouncementService
	events        events.Publisher
	log           zerolog.Logger
}

// NewPaymentService builds a PaymentService.
func NewPaymentService(st store.TxStore, announcements *AnnouncementService, pub events.Publisher, log zerolog.Logger) *PaymentService {
	return &PaymentService{
		store:         st,
		announcements: announcements,
		events:        pub,
		log:           log,
	}
}

// Submit records a pending payment. Every allocation is checked against
// the live invoice balances, and the allocation total must equal the
// reported amount exactly.
func (s *PaymentService) Submit(ctx context.Context, params SubmitPaymentParams) (domain.Payment, error) {
	if len(params.Allocations) == 0 {
		return domain.Payment{}, domain.ErrNoAllocations
	}
	if params.AmountCents <= 0 {
		return domain.Payment{}, domain.Invalid("payment.submit", "Payment amount must be positive")
	}
	if domain.AllocationsTotal(params.Allocations) != params.AmountCents {
		return domain.Payment{}, domain.ErrAllocationSumMismatch
	}

	ids := make([]uuid.UUID, 0, len(params.Allocations))
	seen := make(map[uuid.UUID]bool, len(params.Allocations))
	for _, a := range params.Allocations {
		if a.AmountCents <= 0 {
			return domain.Payment{}, domain.Invalid("payment.submit", "Allocation amounts must be positive")
		}
		if seen[a.InvoiceID] {
			return domain.Payment{}, domain.Invalid("payment.submit", "Duplicate invoice in allocations")
		}
		seen[a.InvoiceID] = true
		ids = append(ids, a.InvoiceID)
	}

	invoices, err := s.store.ListInvoicesByIDs(ctx, params.ServerID, ids)
	if err != nil {
		return domain.Payment{}, err
	}
	byID := make(map[uuid.UUID]domain.Invoice, len(invoices))
	for _, inv := range invoices {
		byID[inv.ID] = inv
	}

	for _, a := range params.Allocations {
		inv, ok := byID[a.InvoiceID]
		if !ok {
			return domain.Payment{}, domain.ErrInvoiceNotFound
		}
		if inv.BalanceCents <= 0 {
			return domain.Payment{}, domain.ErrInvoiceNoBalance
		}
		if a.AmountCents > inv.BalanceCents {
			return domain.Payment{}, domain.ErrAllocationExceedsBalance
		}
	}

	var payment domain.Payment
	err = s.store.WithTx(ctx, func(q store.Querier) error {
		payment, err = q.CreatePayment(ctx, store.CreatePaymentParams{
			ServerID:    params.ServerID,
			UserID:      params.UserID,
			AmountCents: params.AmountCents,
			Method:      params.Method,
			Bank:        params.Bank,
			ProofURL:    params.ProofURL,
			Allocations: params.Allocations,
		})
		return err
	})
	if err != nil {
		return domain.Payment{}, err
	}

	s.log.Info().
		Str("payment_id", payment.ID.String()).
		Int64("amount_cents", payment.AmountCents).
		Msg("payment submitted")

	s.alert(ctx, store.CreateAlertParams{
		ServerID:  payment.ServerID,
		UserID:    payment.UserID,
		AlertType: domain.AlertPaymentReceived,
		Message:   fmt.Sprintf("Payment report received for %s", formatCents(payment.AmountCents)),
	})
	s.publish(ctx, events.SubjectPaymentSubmitted, paymentEvent(payment))
	return payment, nil
}

// Get fetches one payment with its allocations.
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (domain.Payment, error) {
	payment, err := s.store.GetPaymentByID(ctx, id)
	if err != nil {
		return domain.Payment{}, err
	}
	payment.Allocations, err = s.store.GetPaymentAllocations(ctx, id)
	if err != nil {
		return domain.Payment{}, err
	}
	return payment, nil
}

// Validate marks a pending payment as verified against the bank
// statement. A payment that is no longer pending reports a conflict.
func (s *PaymentService) Validate(ctx context.Context, paymentID, adminID uuid.UUID) (domain.Payment, error) {
	rows, err := s.store.MarkPaymentValidated(ctx, paymentID, adminID)
	if err != nil {
		return domain.Payment{}, err
	}
	if rows == 0 {
		if _, err := s.store.GetPaymentByID(ctx, paymentID); err != nil {
			return domain.Payment{}, err
		}
		return domain.Payment{}, domain.ErrPaymentNotPending
	}
	return s.store.GetPaymentByID(ctx, paymentID)
}

// Reject marks a pending payment as rejected with a reason. Like
// Validate, the transition is guarded on the pending status.
func (s *PaymentService) Reject(ctx context.Context, paymentID, adminID uuid.UUID, reason string) (domain.Payment, error) {
	if reason == "" {
		return domain.Payment{}, domain.Invalid("payment.reject", "A rejection reason is required")
	}

	rows, err := s.store.MarkPaymentRejected(ctx, paymentID, adminID, reason)
	if err != nil {
		return domain.Payment{}, err
	}
	if rows == 0 {
		if _, err := s.store.GetPaymentByID(ctx, paymentID); err != nil {
			return domain.Payment{}, err
		}
		return domain.Payment{}, domain.ErrPaymentNotPending
	}

	payment, err := s.store.GetPaymentByID(ctx, paymentID)
	if err != nil {
		return domain.Payment{}, err
	}

	s.alert(ctx, store.CreateAlertParams{
		ServerID:  payment.ServerID,
		UserID:    payment.UserID,
		AlertType: domain.AlertPaymentRejected,
		Message:   fmt.Sprintf("Payment of %s rejected: %s", formatCents(payment.AmountCents), reason),
	})
	s.publish(ctx, events.SubjectPaymentRejected, paymentEvent(payment))
	return payment, nil
}

// Apply reconciles a validated payment in a single transaction: the
// status flips to applied under a guard, each allocation is subtracted
// from its invoice balance, and the server's dunning announcements are
// regenerated against the new balances. If the server's total open
// balance reaches zero, any Suspended announcement still active is
// archived as a final unlock check.
func (s *PaymentService) Apply(ctx context.Context, paymentID, adminID uuid.UUID) (domain.Payment, error) {
	var payment domain.Payment
	var cleared bool

	err := s.store.WithTx(ctx, func(q store.Querier) error {
		p, err := q.GetPaymentByID(ctx, paymentID)
		if err != nil {
			return err
		}

		rows, err := q.MarkPaymentApplied(ctx, paymentID, adminID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrPaymentNotValidated
		}

		allocations, err := q.GetPaymentAllocations(ctx, paymentID)
		if err != nil {
			return err
		}
		for _, a := range allocations {
			if _, err := q.ApplyToInvoiceBalance(ctx, a.InvoiceID, a.AmountCents); err != nil {
				return err
			}
		}

		server, err := q.GetServerByID(ctx, p.ServerID)
		if err != nil {
			return err
		}
		if _, err := s.announcements.RegenerateForServer(ctx, q, server); err != nil {
			return err
		}

		remaining, err := q.SumOpenBalance(ctx, p.ServerID)
		if err != nil {
			return err
		}
		if remaining <= 0 {
			cleared = true
			archived, err := q.ArchiveSuspendedAnnouncement(ctx, p.ServerID)
			if err != nil {
				return err
			}
			if archived > 0 {
				s.log.Warn().
					Str("server", server.Name).
					Msg("suspended announcement survived regeneration, archived on unlock check")
			}
		}

		p.Allocations = allocations
		payment = p
		return nil
	})
	if err != nil {
		return domain.Payment{}, err
	}

	paymentsAppliedTotal.Inc()
	s.log.Info().
		Str("payment_id", payment.ID.String()).
		Int64("amount_cents", payment.AmountCents).
		Bool("balance_cleared", cleared).
		Msg("payment applied")

	s.alert(ctx, store.CreateAlertParams{
		ServerID:  payment.ServerID,
		UserID:    payment.UserID,
		AlertType: domain.AlertPaymentApplied,
		Message:   fmt.Sprintf("Payment of %s applied", formatCents(payment.AmountCents)),
	})
	s.publish(ctx, events.SubjectPaymentApplied, paymentEvent(payment))
	if cleared {
		s.publish(ctx, events.SubjectServerUnlocked, map[string]string{
			"server_id": payment.ServerID.String(),
		})
	}
	return payment, nil
}

// List returns a page of payments for the admin view.
func (s *PaymentService) List(ctx context.Context, params ListPaymentsParams) (PaymentPage, error) {
	limit, offset := pageBounds(params.Page, params.PerPage)
	storeParams := store.ListPaymentsParams{
		Search:  params.Search,
		Status:  params.Status,
		OrderBy: params.OrderBy,
		Desc:    params.Desc,
		Limit:   limit,
		Offset:  offset,
	}

	items, err := s.store.ListPayments(ctx, storeParams)
	if err != nil {
		return PaymentPage{}, err
	}
	total, err := s.store.CountPayments(ctx, storeParams)
	if err != nil {
		return PaymentPage{}, err
	}
	return PaymentPage{Items: items, Total: total}, nil
}

func (s *PaymentService) alert(ctx context.Context, params store.CreateAlertParams) {
	if _, err := s.store.CreateAlert(ctx, params); err != nil {
		s.log.Warn().Err(err).Str("alert_type", params.AlertType).Msg("create alert failed")
	}
}

func (s *PaymentService) publish(ctx context.Context, subject string, payload any) {
	if err := s.events.Publish(ctx, subject, payload); err != nil {
		s.log.Warn().Err(err).Str("subject", subject).Msg("publish event failed")
	}
}

func paymentEvent(p domain.Payment) map[string]any {
	return map[string]any{
		"payment_id":   p.ID.String(),
		"server_id":    p.ServerID.String(),
		"user_id":      p.UserID.String(),
		"amount_cents": p.AmountCents,
		"status":       p.Status,
	}
}

// formatCents renders a minor-unit amount as a currency string for alert
// messages.
func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
