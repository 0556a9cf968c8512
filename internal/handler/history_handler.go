package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"textilerp/internal/model"
	"textilerp/internal/repository"
	"textilerp/internal/service"
)

// HistoryHandler exposes the read-only audit trail. Admin-gated by the router.
type HistoryHandler struct {
	historyService service.HistoryService
}

// NewHistoryHandler creates a new history handler.
func NewHistoryHandler(historyService service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// HistoryPage is one page of audit entries with the unfiltered-match total.
type HistoryPage struct {
	Entries  []model.AuditEntry `json:"entries"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

func parseFilter(c echo.Context) (repository.AuditFilter, error) {
	filter := repository.AuditFilter{
		Username: c.QueryParam("user"),
		Category: c.QueryParam("category"),
		Action:   model.AuditAction(c.QueryParam("action")),
	}

	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid 'from' timestamp, want RFC 3339")
		}
		filter.From = &t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid 'to' timestamp, want RFC 3339")
		}
		filter.To = &t
	}
	if v := c.QueryParam("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid page")
		}
		filter.Page = n
	}
	if v := c.QueryParam("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return filter, echo.NewHTTPError(http.StatusBadRequest, "invalid page_size")
		}
		filter.PageSize = n
	}
	return filter, nil
}

// List godoc
// @Summary List audit entries, newest first
// @Tags history
// @Security BearerAuth
// @Produce json
// @Param user query string false "Substring match on username"
// @Param category query string false "Exact category"
// @Param action query string false "Exact action"
// @Param from query string false "RFC 3339 lower bound"
// @Param to query string false "RFC 3339 upper bound"
// @Param page query int false "Page number, starting at 1"
// @Param page_size query int false "Page size, capped at 200"
// @Success 200 {object} HistoryPage
// @Failure 403 {object} errors.ErrorResponse
// @Router /history [get]
func (h *HistoryHandler) List(c echo.Context) error {
	filter, err := parseFilter(c)
	if err != nil {
		return err
	}

	entries, total, err := h.historyService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size < 1 {
		size = repository.DefaultAuditPageSize
	}
	if size > repository.MaxAuditPageSize {
		size = repository.MaxAuditPageSize
	}
	return c.JSON(http.StatusOK, HistoryPage{Entries: entries, Total: total, Page: page, PageSize: size})
}

// Get godoc
// @Summary Get one audit entry with full before/after state
// @Tags history
// @Security BearerAuth
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} model.AuditEntry
// @Failure 404 {object} errors.ErrorResponse
// @Router /history/{id} [get]
func (h *HistoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	entry, err := h.historyService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, entry)
}

// Stats godoc
// @Summary Aggregate audit statistics
// @Tags history
// @Security BearerAuth
// @Produce json
// @Success 200 {object} repository.AuditStats
// @Failure 403 {object} errors.ErrorResponse
// @Router /history/stats [get]
func (h *HistoryHandler) Stats(c echo.Context) error {
	stats, err := h.historyService.Stats(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Categories godoc
// @Summary Distinct categories present in the trail
// @Tags history
// @Security BearerAuth
// @Produce json
// @Success 200 {array} string
// @Failure 403 {object} errors.ErrorResponse
// @Router /history/categories [get]
func (h *HistoryHandler) Categories(c echo.Context) error {
	categories, err := h.historyService.Categories(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, categories)
}
