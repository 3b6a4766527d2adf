package admin

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/handler"
	"github.com/altamar/portal/internal/service"
)

type eulaRequest struct {
	ServerRef      string `json:"server_ref" validate:"required"`
	ServerURL      string `json:"server_url"`
	Distributor    string `json:"distributor"`
	Client         string `json:"client"`
	ContractSigned bool   `json:"contract_signed"`
	ContractURL    string `json:"contract_url"`
	IDReceived     bool   `json:"id_received"`
	IDType         string `json:"id_type"`
	IDDocumentURL  string `json:"id_document_url"`
	SourceFile     string `json:"source_file"`
}

type updateEulaRequest struct {
	ServerRef      *string `json:"server_ref"`
	ServerURL      *string `json:"server_url"`
	Distributor    *string `json:"distributor"`
	Client         *string `json:"client"`
	ContractSigned *bool   `json:"contract_signed"`
	ContractURL    *string `json:"contract_url"`
	IDReceived     *bool   `json:"id_received"`
	IDType         *string `json:"id_type"`
	IDDocumentURL  *string `json:"id_document_url"`
	SourceFile     *string `json:"source_file"`
}

type importEulasRequest struct {
	Rows []eulaImportRow `json:"rows" validate:"required,min=1"`
}

// eulaImportRow mirrors eulaRequest without the required tag: the import
// skips rows missing a server reference instead of failing the batch.
type eulaImportRow struct {
	ServerRef      string `json:"server_ref"`
	ServerURL      string `json:"server_url"`
	Distributor    string `json:"distributor"`
	Client         string `json:"client"`
	ContractSigned bool   `json:"contract_signed"`
	ContractURL    string `json:"contract_url"`
	IDReceived     bool   `json:"id_received"`
	IDType         string `json:"id_type"`
	IDDocumentURL  string `json:"id_document_url"`
	SourceFile     string `json:"source_file"`
}

func (h *Handler) listEulas(c echo.Context) error {
	page, err := h.eulas.List(c.Request().Context(), service.ListEulasParams{
		Search:     c.QueryParam("search"),
		Signed:     queryBool(c, "signed"),
		IDReceived: queryBool(c, "id_received"),
		Page:       queryInt32(c, "page"),
		PerPage:    queryInt32(c, "per_page"),
	})
	if err != nil {
		return handler.Error(c, err)
	}

	items := make([]map[string]any, 0, len(page.Items))
	for _, e := range page.Items {
		items = append(items, eulaResponse(e))
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items": items,
		"total": page.Total,
	})
}

func (h *Handler) getEula(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handler.Error(c, domain.Invalid("eula.get", "Invalid record id"))
	}

	eula, err := h.eulas.Get(c.Request().Context(), id)
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, eulaResponse(eula))
}

func (h *Handler) createEula(c echo.Context) error {
	var req eulaRequest
	if err := handler.Bind(c, &req); err != nil {
		return handler.Error(c, err)
	}

	eula, err := h.eulas.Create(c.Request().Context(), service.EulaRecordParams{
		ServerRef:      req.ServerRef,
		ServerURL:      req.ServerURL,
		Distributor:    req.Distributor,
		Client:         req.Client,
		ContractSigned: req.ContractSigned,
		ContractURL:    req.ContractURL,
		IDReceived:     req.IDReceived,
		IDType:         req.IDType,
		IDDocumentURL:  req.IDDocumentURL,
		SourceFile:     req.SourceFile,
	})
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusCreated, eulaResponse(eula))
}

func (h *Handler) updateEula(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handler.Error(c, domain.Invalid("eula.update", "Invalid record id"))
	}

	var req updateEulaRequest
	if err := handler.Bind(c, &req); err != nil {
		return handler.Error(c, err)
	}

	eula, err := h.eulas.Update(c.Request().Context(), id, service.UpdateEulaParams{
		ServerRef:      req.ServerRef,
		ServerURL:      req.ServerURL,
		Distributor:    req.Distributor,
		Client:         req.Client,
		ContractSigned: req.ContractSigned,
		ContractURL:    req.ContractURL,
		IDReceived:     req.IDReceived,
		IDType:         req.IDType,
		IDDocumentURL:  req.IDDocumentURL,
		SourceFile:     req.SourceFile,
	})
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, eulaResponse(eula))
}

func (h *Handler) deleteEula(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return handler.Error(c, domain.Invalid("eula.delete", "Invalid record id"))
	}

	if err := h.eulas.Delete(c.Request().Context(), id); err != nil {
		return handler.Error(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) importEulas(c echo.Context) error {
	var req importEulasRequest
	if err := handler.Bind(c, &req); err != nil {
		return handler.Error(c, err)
	}

	rows := make([]service.EulaRecordParams, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, service.EulaRecordParams{
			ServerRef:      r.ServerRef,
			ServerURL:      r.ServerURL,
			Distributor:    r.Distributor,
			Client:         r.Client,
			ContractSigned: r.ContractSigned,
			ContractURL:    r.ContractURL,
			IDReceived:     r.IDReceived,
			IDType:         r.IDType,
			IDDocumentURL:  r.IDDocumentURL,
			SourceFile:     r.SourceFile,
		})
	}

	done, err := h.eulas.Import(c.Request().Context(), rows)
	if err != nil {
		return handler.Error(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"imported": done})
}

func eulaResponse(e domain.Eula) map[string]any {
	return map[string]any{
		"id":              e.ID.String(),
		"server_ref":      e.ServerRef,
		"server_url":      e.ServerURL,
		"distributor":     e.Distributor,
		"client":          e.Client,
		"contract_signed": e.ContractSigned,
		"contract_url":    e.ContractURL,
		"id_received":     e.IDReceived,
		"id_type":         e.IDType,
		"id_document_url": e.IDDocumentURL,
		"source_file":     e.SourceFile,
		"created_at":      e.CreatedAt,
		"updated_at":      e.UpdatedAt,
	}
}

// queryBool parses an optional boolean query parameter; absent or
// unparsable values mean no filter.
func queryBool(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
