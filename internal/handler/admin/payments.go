package admin

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/handler"
	"github.com/altamar/portal/internal/middleware"
	"github.com/altamar/portal/internal/service"
)

func (h *Handler) listPayments(c echo.Context) error {
	page, err := h.payments.List(c.Request().Context(), service.ListPaymentsParams{
		Search:  c.QueryParam("search"),
		Status:  c.QueryParam("status"),
		OrderBy: domain.PaymentSortField(c.QueryParam("sort")),
		Desc:    c.QueryParam("dir") == "desc",
		Page:    queryInt32(c, "page"),
		PerPage: queryInt32(c, "per_page"),
	})
	if err != nil {
		return handler.Error(c, err)
	}

	items := make([]map[string]any, 0, len(page.Items))
	for _, p := range page.Items {
		items = append(items, map[string]any{
			"id":           p.ID.String(),
			"server":       p.ServerName,
			"amount_cents": p.AmountCents,
			"method":       p.Method,
			"bank":         p.Bank,
			"status":       p.Status,
			"reason":       p.Reason,
			"created_at":   p.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items": items,
		"total": page.Total,
	})
}

func (h *Handler) getPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handler.Error(c, domain.Invalid("payment.get", "Invalid payment id"))
	}

	payment, err := h.payments.Get(c.Request().Context(), id)
	if err != nil {
		return handler.Error(c, err)
	}

	allocations := make([]map[string]any, 0, len(payment.Allocations))
	for _, a := range payment.Allocations {
		allocations = append(allocations, map[string]any{
			"invoice_id":   a.InvoiceID.String(),
			"amount_cents": a.AmountCents,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"id":           payment.ID.String(),
		"server_id":    payment.ServerID.String(),
		"amount_cents": payment.AmountCents,
		"method":       payment.Method,
		"bank":         payment.Bank,
		"proof_url":    payment.ProofURL,
		"status":       payment.Status,
		"reason":       payment.Reason,
		"allocations":  allocations,
		"created_at":   payment.CreatedAt,
	})
}

func (h *Handler) validatePayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handler.Error(c, domain.Invalid("payment.validate", "Invalid payment id"))
	}

	payment, err := h.payments.Validate(c.Request().Context(), id, middleware.UserID(c))
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"payment_id": payment.ID.String(),
		"status":     payment.Status,
	})
}

type rejectPaymentRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *Handler) rejectPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handler.Error(c, domain.Invalid("payment.reject", "Invalid payment id"))
	}

	var req rejectPaymentRequest
	if err := handler.Bind(c, &req); err != nil {
		return handler.Error(c, err)
	}

	payment, err := h.payments.Reject(c.Request().Context(), id, middleware.UserID(c), req.Reason)
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"payment_id": payment.ID.String(),
		"status":     payment.Status,
		"reason":     payment.Reason,
	})
}

func (h *Handler) applyPayment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handler.Error(c, domain.Invalid("payment.apply", "Invalid payment id"))
	}

	payment, err := h.payments.Apply(c.Request().Context(), id, middleware.UserID(c))
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"payment_id":   payment.ID.String(),
		"status":       domain.PaymentStatusApplied,
		"amount_cents": payment.AmountCents,
	})
}
