package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/handler"
	"github.com/altamar/portal/internal/service"
)

type createInvoiceRequest struct {
	ServerID   string    `json:"server_id" validate:"required,uuid"`
	Folio      string    `json:"folio" validate:"required"`
	IssueDate  time.Time `json:"issue_date" validate:"required"`
	DueDate    time.Time `json:"due_date"`
	TotalCents int64     `json:"total_cents" validate:"required,gt=0"`
	PDFURL     string    `json:"pdf_url"`
}

func (h *Handler) createInvoice(c echo.Context) error {
	var req createInvoiceRequest
	if err := handler.Bind(c, &req); err != nil {
		return handler.Error(c, err)
	}

	serverID, err := uuid.Parse(req.ServerID)
	if err != nil {
		return handler.Error(c, domain.Invalid("invoice.create", "Invalid server id"))
	}

	invoice, err := h.invoices.Create(c.Request().Context(), service.CreateInvoiceParams{
		ServerID:   serverID,
		Folio:      req.Folio,
		IssueDate:  req.IssueDate,
		DueDate:    req.DueDate,
		TotalCents: req.TotalCents,
		PDFURL:     req.PDFURL,
	})
	if err != nil {
		return handler.Error(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"invoice_id":  invoice.ID.String(),
		"folio":       invoice.Folio,
		"due_date":    invoice.DueDate,
		"total_cents": invoice.TotalCents,
		"status":      invoice.Status,
	})
}

func (h *Handler) listInvoices(c echo.Context) error {
	page, err := h.invoices.List(c.Request().Context(), service.ListInvoicesParams{
		Search:  c.QueryParam("search"),
		Status:  c.QueryParam("status"),
		OrderBy: domain.InvoiceSortField(c.QueryParam("sort")),
		Desc:    c.QueryParam("dir") == "desc",
		Page:    queryInt32(c, "page"),
		PerPage: queryInt32(c, "per_page"),
	})
	if err != nil {
		return handler.Error(c, err)
	}

	items := make([]map[string]any, 0, len(page.Items))
	for _, inv := range page.Items {
		items = append(items, map[string]any{
			"id":            inv.ID.String(),
			"server":        inv.ServerName,
			"folio":         inv.Folio,
			"issue_date":    inv.IssueDate,
			"due_date":      inv.DueDate,
			"total_cents":   inv.TotalCents,
			"balance_cents": inv.BalanceCents,
			"status":        inv.Status,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items": items,
		"total": page.Total,
	})
}

func queryInt32(c echo.Context, name string) int32 {
	n, err := strconv.ParseInt(c.QueryParam(name), 10, 32)
	if err != nil {
		return 0
	}
	return int32(n)
}
