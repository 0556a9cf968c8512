package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"textilerp/internal/service"
)

const erpDefaultLimit = 100

// ERPHandler exposes the legacy-ERP bridge.
type ERPHandler struct {
	erpService service.ERPService
}

// NewERPHandler creates a new ERP handler.
func NewERPHandler(erpService service.ERPService) *ERPHandler {
	return &ERPHandler{erpService: erpService}
}

// LinkRequest names the base variant and the remote record to attach.
type LinkRequest struct {
	BaseID   uint  `json:"base_id" validate:"required"`
	RecordID int64 `json:"record_id" validate:"required"`
}

func searchLimit(c echo.Context) (string, int) {
	limit := erpDefaultLimit
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return c.QueryParam("search"), limit
}

// Status godoc
// @Summary Check ERP connectivity
// @Tags erp
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 502 {object} errors.ErrorResponse
// @Router /legacy/status [get]
func (h *ERPHandler) Status(c echo.Context) error {
	if err := h.erpService.Status(c.Request().Context()); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "connected"})
}

// Models godoc
// @Summary List ERP models
// @Tags erp
// @Security BearerAuth
// @Produce json
// @Param search query string false "Substring match on name"
// @Param limit query int false "Result cap"
// @Success 200 {array} repository.ERPModel
// @Failure 502 {object} errors.ErrorResponse
// @Router /legacy/models [get]
func (h *ERPHandler) Models(c echo.Context) error {
	search, limit := searchLimit(c)
	models, err := h.erpService.Models(c.Request().Context(), search, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, models)
}

// Records godoc
// @Summary List ERP production records
// @Tags erp
// @Security BearerAuth
// @Produce json
// @Param search query string false "Substring match on model name or cut number"
// @Param limit query int false "Result cap"
// @Success 200 {array} repository.ERPRecord
// @Failure 502 {object} errors.ErrorResponse
// @Router /legacy/records [get]
func (h *ERPHandler) Records(c echo.Context) error {
	search, limit := searchLimit(c)
	records, err := h.erpService.Records(c.Request().Context(), search, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, records)
}

// Unlinked godoc
// @Summary List ERP records not yet linked to any base variant
// @Tags erp
// @Security BearerAuth
// @Produce json
// @Param search query string false "Substring match on model name or cut number"
// @Param limit query int false "Result cap"
// @Success 200 {array} repository.ERPRecord
// @Failure 502 {object} errors.ErrorResponse
// @Router /legacy/records/unlinked [get]
func (h *ERPHandler) Unlinked(c echo.Context) error {
	search, limit := searchLimit(c)
	records, err := h.erpService.Unlinked(c.Request().Context(), search, limit)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, records)
}

// Linked godoc
// @Summary List ERP records linked to a base variant
// @Tags erp
// @Security BearerAuth
// @Produce json
// @Param base_id path int true "Base variant ID"
// @Success 200 {array} repository.ERPRecord
// @Failure 502 {object} errors.ErrorResponse
// @Router /legacy/records/linked/{base_id} [get]
func (h *ERPHandler) Linked(c echo.Context) error {
	id, err := pathUint(c, "base_id")
	if err != nil {
		return err
	}
	records, err := h.erpService.Linked(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, records)
}

// Link godoc
// @Summary Link a base variant to an ERP record
// @Tags erp
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body LinkRequest true "Base variant and record to link"
// @Success 200 {object} model.BaseVariant
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /legacy/link [post]
func (h *ERPHandler) Link(c echo.Context) error {
	var req LinkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	base, err := h.erpService.Link(c.Request().Context(), actorFrom(c), req.BaseID, req.RecordID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, base)
}

// Unlink godoc
// @Summary Detach a base variant from its ERP record
// @Tags erp
// @Security BearerAuth
// @Produce json
// @Param base_id path int true "Base variant ID"
// @Success 200 {object} model.BaseVariant
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /legacy/unlink/{base_id} [post]
func (h *ERPHandler) Unlink(c echo.Context) error {
	id, err := pathUint(c, "base_id")
	if err != nil {
		return err
	}
	base, err := h.erpService.Unlink(c.Request().Context(), actorFrom(c), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, base)
}
