// Package admin holds the back-office API: invoice uploads, payment
// review and reconciliation, dunning controls, manual notices, the
// compliance registry and the alert feed.
package admin

import (
	"github.com/labstack/echo/v4"

	"github.com/altamar/portal/internal/service"
)

// Handler serves the admin endpoints.
type Handler struct {
	invoices      *service.InvoiceService
	payments      *service.PaymentService
	announcements *service.AnnouncementService
	alerts        *service.AlertService
	servers       *service.ServerService
	eulas         *service.EulaService
}

// NewHandler builds the admin handler.
func NewHandler(
	invoices *service.InvoiceService,
	payments *service.PaymentService,
	announcements *service.AnnouncementService,
	alerts *service.AlertService,
	servers *service.ServerService,
	eulas *service.EulaService,
) *Handler {
	return &Handler{
		invoices:      invoices,
		payments:      payments,
		announcements: announcements,
		alerts:        alerts,
		servers:       servers,
		eulas:         eulas,
	}
}

// Register mounts the admin routes. The group must already enforce an
// admin session.
func (h *Handler) Register(g *echo.Group) {
	g.GET("/servers", h.listServers)

	g.GET("/invoices", h.listInvoices)
	g.POST("/invoices", h.createInvoice)

	g.GET("/payments", h.listPayments)
	g.GET("/payments/:id", h.getPayment)
	g.POST("/payments/:id/validate", h.validatePayment)
	g.POST("/payments/:id/reject", h.rejectPayment)
	g.POST("/payments/:id/apply", h.applyPayment)

	g.POST("/announcements", h.createNotice)
	g.GET("/announcements/:id", h.getNotice)
	g.PATCH("/announcements/:id", h.updateNotice)
	g.POST("/announcements/regenerate", h.regenerateAll)
	g.GET("/servers/:id/announcements", h.listServerAnnouncements)
	g.POST("/servers/:id/announcements/regenerate", h.regenerateServer)

	g.GET("/eulas", h.listEulas)
	g.POST("/eulas", h.createEula)
	g.POST("/eulas/import", h.importEulas)
	g.GET("/eulas/:id", h.getEula)
	g.PATCH("/eulas/:id", h.updateEula)
	g.DELETE("/eulas/:id", h.deleteEula)

	g.GET("/alerts", h.listAlerts)
}
