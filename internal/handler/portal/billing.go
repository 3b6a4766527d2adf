// Package portal holds the customer-facing API: open invoices, payment
// submission and the announcement feed, all scoped to the session's
// server.
package portal

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/handler"
	"github.com/altamar/portal/internal/middleware"
	"github.com/altamar/portal/internal/service"
)

// Handler serves the customer endpoints.
type Handler struct {
	invoices      *service.InvoiceService
	payments      *service.PaymentService
	announcements *service.AnnouncementService
	account       *service.AccountService
}

// NewHandler builds the portal handler.
func NewHandler(invoices *service.InvoiceService, payments *service.PaymentService, announcements *service.AnnouncementService, account *service.AccountService) *Handler {
	return &Handler{
		invoices:      invoices,
		payments:      payments,
		announcements: announcements,
		account:       account,
	}
}

// Register mounts the portal routes. The group must already enforce a
// customer session.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/billing", h.billing)
	g.POST("/payments", h.submitPayment)
	g.GET("/announcements", h.announcementsFeed)
	g.POST("/announcements/:id/ack", h.acknowledgeAnnouncement)
	g.GET("/nda", h.ndaStatus)
	g.POST("/nda/accept", h.acceptNDA)
}

type invoiceResponse struct {
	ID           string    `json:"id"`
	Folio        string    `json:"folio"`
	IssueDate    time.Time `json:"issue_date"`
	DueDate      time.Time `json:"due_date"`
	TotalCents   int64     `json:"total_cents"`
	BalanceCents int64     `json:"balance_cents"`
	Status       string    `json:"status"`
	PDFURL       string    `json:"pdf_url,omitempty"`
}

type billingResponse struct {
	Invoices      []invoiceResponse `json:"invoices"`
	TotalDueCents int64             `json:"total_due_cents"`
}

func (h *Handler) billing(c echo.Context) error {
	summary, err := h.invoices.OpenForServer(c.Request().Context(), middleware.ServerID(c))
	if err != nil {
		return handler.Error(c, err)
	}

	resp := billingResponse{
		Invoices:      make([]invoiceResponse, 0, len(summary.Invoices)),
		TotalDueCents: summary.TotalDueCents,
	}
	for _, inv := range summary.Invoices {
		resp.Invoices = append(resp.Invoices, invoiceResponse{
			ID:           inv.ID.String(),
			Folio:        inv.Folio,
			IssueDate:    inv.IssueDate,
			DueDate:      inv.DueDate,
			TotalCents:   inv.TotalCents,
			BalanceCents: inv.BalanceCents,
			Status:       inv.Status,
			PDFURL:       inv.PDFURL,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

type allocationRequest struct {
	InvoiceID   string `json:"invoice_id" validate:"required,uuid"`
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
}

type submitPaymentRequest struct {
	AmountCents int64               `json:"amount_cents" validate:"required,gt=0"`
	Method      string              `json:"method" validate:"required"`
	Bank        string              `json:"bank"`
	ProofURL    string              `json:"proof_url"`
	Allocations []allocationRequest `json:"allocations" validate:"required,min=1,dive"`
}

func (h *Handler) submitPayment(c echo.Context) error {
	var req submitPaymentRequest
	if err := handler.Bind(c, &req); err != nil {
		return handler.Error(c, err)
	}

	allocations := make([]domain.Allocation, 0, len(req.Allocations))
	for _, a := range req.Allocations {
		invoiceID, err := uuid.Parse(a.InvoiceID)
		if err != nil {
			return handler.Error(c, domain.Invalid("payment.submit", "Invalid invoice id"))
		}
		allocations = append(allocations, domain.Allocation{
			InvoiceID:   invoiceID,
			AmountCents: a.AmountCents,
		})
	}

	payment, err := h.payments.Submit(c.Request().Context(), service.SubmitPaymentParams{
		ServerID:    middleware.ServerID(c),
		UserID:      middleware.UserID(c),
		AmountCents: req.AmountCents,
		Method:      req.Method,
		Bank:        req.Bank,
		ProofURL:    req.ProofURL,
		Allocations: allocations,
	})
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"payment_id":   payment.ID.String(),
		"status":       payment.Status,
		"amount_cents": payment.AmountCents,
	})
}

type announcementResponse struct {
	ID       string    `json:"id"`
	Kind     string    `json:"kind"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

func (h *Handler) announcementsFeed(c echo.Context) error {
	items, err := h.announcements.ListActive(c.Request().Context(), middleware.ServerID(c))
	if err != nil {
		return handler.Error(c, err)
	}

	resp := make([]announcementResponse, 0, len(items))
	for _, a := range items {
		resp = append(resp, announcementResponse{
			ID:       a.ID.String(),
			Kind:     a.Kind,
			Title:    a.Title,
			Body:     a.Body,
			StartsAt: a.StartsAt,
			EndsAt:   a.EndsAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) acknowledgeAnnouncement(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handler.Error(c, domain.Invalid("announcement.ack", "Invalid announcement id"))
	}

	if err := h.announcements.Acknowledge(c.Request().Context(), id, middleware.UserID(c)); err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"acknowledged": true})
}

func (h *Handler) ndaStatus(c echo.Context) error {
	accepted, err := h.account.NDAAccepted(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"accepted": accepted})
}

func (h *Handler) acceptNDA(c echo.Context) error {
	err := h.account.AcceptNDA(c.Request().Context(), middleware.UserID(c), c.RealIP(), c.Request().UserAgent())
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"accepted": true})
}
