package admin

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/handler"
	"github.com/altamar/portal/internal/service"
)

type createNoticeRequest struct {
	Domain   string    `json:"domain" validate:"required"`
	Kind     string    `json:"kind" validate:"required"`
	Title    string    `json:"title" validate:"required"`
	Body     string    `json:"body"`
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at" validate:"required"`
}

type updateNoticeRequest struct {
	Kind     *string    `json:"kind"`
	Title    *string    `json:"title"`
	Body     *string    `json:"body"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

func (h *Handler) createNotice(c echo.Context) error {
	var req createNoticeRequest
	if err := handler.Bind(c, &req); err != nil {
		return handler.Error(c, err)
	}

	notice, err := h.announcements.CreateNotice(c.Request().Context(), service.CreateNoticeParams{
		Domain:   req.Domain,
		Kind:     req.Kind,
		Title:    req.Title,
		Body:     req.Body,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	})
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusCreated, noticeResponse(notice))
}

func (h *Handler) getNotice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handler.Error(c, domain.Invalid("announcement.get", "Invalid announcement id"))
	}

	notice, err := h.announcements.Get(c.Request().Context(), id)
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, noticeResponse(notice))
}

func (h *Handler) updateNotice(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handler.Error(c, domain.Invalid("announcement.update", "Invalid announcement id"))
	}

	var req updateNoticeRequest
	if err := handler.Bind(c, &req); err != nil {
		return handler.Error(c, err)
	}

	notice, err := h.announcements.UpdateNotice(c.Request().Context(), id, service.UpdateNoticeParams{
		Kind:     req.Kind,
		Title:    req.Title,
		Body:     req.Body,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	})
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, noticeResponse(notice))
}

func (h *Handler) listServerAnnouncements(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handler.Error(c, domain.Invalid("announcement.list", "Invalid server id"))
	}

	items, err := h.announcements.ListForServer(c.Request().Context(), id)
	if err != nil {
		return handler.Error(c, err)
	}

	resp := make([]map[string]any, 0, len(items))
	for _, a := range items {
		resp = append(resp, noticeResponse(a))
	}
	return c.JSON(http.StatusOK, resp)
}

func noticeResponse(a domain.Announcement) map[string]any {
	return map[string]any{
		"id":         a.ID.String(),
		"server_id":  a.ServerID.String(),
		"kind":       a.Kind,
		"title":      a.Title,
		"body":       a.Body,
		"starts_at":  a.StartsAt,
		"ends_at":    a.EndsAt,
		"status":     a.Status,
		"created_at": a.CreatedAt,
	}
}

func (h *Handler) regenerateAll(c echo.Context) error {
	done, err := h.announcements.RegenerateAll(c.Request().Context())
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"servers_processed": done})
}

func (h *Handler) regenerateServer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handler.Error(c, domain.Invalid("announcement.regenerate", "Invalid server id"))
	}

	res, err := h.announcements.Regenerate(c.Request().Context(), id)
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{
		"due_soon":  res.DueSoon,
		"overdue":   res.Overdue,
		"suspended": res.Suspend,
	})
}

func (h *Handler) listServers(c echo.Context) error {
	servers, err := h.servers.List(c.Request().Context())
	if err != nil {
		return handler.Error(c, err)
	}

	items := make([]map[string]any, 0, len(servers))
	for _, s := range servers {
		items = append(items, map[string]any{
			"id":         s.ID.String(),
			"name":       s.Name,
			"grace_days": s.EffectiveGraceDays(),
			"status":     s.Status,
		})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) listAlerts(c echo.Context) error {
	page, err := h.alerts.List(c.Request().Context(), service.ListAlertsParams{
		Type:    c.QueryParam("type"),
		Search:  c.QueryParam("search"),
		Page:    queryInt32(c, "page"),
		PerPage: queryInt32(c, "per_page"),
	})
	if err != nil {
		return handler.Error(c, err)
	}

	items := make([]map[string]any, 0, len(page.Items))
	for _, a := range page.Items {
		items = append(items, map[string]any{
			"id":         a.ID.String(),
			"type":       a.AlertType,
			"message":    a.Message,
			"username":   a.Username,
			"server":     a.ServerName,
			"created_at": a.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items": items,
		"total": page.Total,
	})
}
