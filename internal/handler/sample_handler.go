package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"textilerp/internal/model"
	"textilerp/internal/service"
)

// SampleHandler handles the sample hierarchy endpoints.
type SampleHandler struct {
	sampleService service.SampleService
}

// NewSampleHandler creates a new sample handler.
func NewSampleHandler(sampleService service.SampleService) *SampleHandler {
	return &SampleHandler{sampleService: sampleService}
}

// CreateSampleRequest represents a sample creation request.
type CreateSampleRequest struct {
	ProductTypeID        uint             `json:"product_type_id" validate:"required"`
	FitTypeID            uint             `json:"fit_type_id" validate:"required"`
	FabricID             uint             `json:"fabric_id" validate:"required"`
	BrandID              *uint            `json:"brand_id"`
	EstimatedConsumption *decimal.Decimal `json:"estimated_consumption"`
	EstimatedCost        *decimal.Decimal `json:"estimated_cost"`
}

// CreateBaseVariantRequest represents a base variant creation request.
type CreateBaseVariantRequest struct {
	SampleID    uint   `json:"sample_id" validate:"required"`
	PatternFile string `json:"pattern_file" validate:"omitempty,max=500"`
}

// CreateGradingRequest represents a grading creation request.
type CreateGradingRequest struct {
	BaseVariantID uint   `json:"base_variant_id" validate:"required"`
	File          string `json:"file" validate:"omitempty,max=500"`
	SizeCurve     string `json:"size_curve"`
}

// CreateSpecSheetRequest represents a spec sheet creation request.
type CreateSpecSheetRequest struct {
	BaseVariantID uint   `json:"base_variant_id" validate:"required"`
	Name          string `json:"name" validate:"required,max=255"`
	File          string `json:"file" validate:"omitempty,max=500"`
}

// Samples

// ListSamples godoc
// @Summary List samples with their full subtree
// @Tags samples
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Sample
// @Router /samples [get]
func (h *SampleHandler) ListSamples(c echo.Context) error {
	samples, err := h.sampleService.ListSamples(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, samples)
}

// GetSample godoc
// @Summary Get a sample by id
// @Tags samples
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sample ID"
// @Success 200 {object} model.Sample
// @Failure 404 {object} errors.ErrorResponse
// @Router /samples/{id} [get]
func (h *SampleHandler) GetSample(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	sample, err := h.sampleService.GetSample(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, sample)
}

// CreateSample godoc
// @Summary Create a sample
// @Tags samples
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateSampleRequest true "New sample"
// @Success 201 {object} model.Sample
// @Failure 403 {object} errors.ErrorResponse
// @Router /samples [post]
func (h *SampleHandler) CreateSample(c echo.Context) error {
	var req CreateSampleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sample := &model.Sample{
		ProductTypeID:        req.ProductTypeID,
		FitTypeID:            req.FitTypeID,
		FabricID:             req.FabricID,
		BrandID:              req.BrandID,
		EstimatedConsumption: req.EstimatedConsumption,
		EstimatedCost:        req.EstimatedCost,
	}
	created, err := h.sampleService.CreateSample(c.Request().Context(), actorFrom(c), sample)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateSample godoc
// @Summary Update a sample
// @Tags samples
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Sample ID"
// @Param request body model.SamplePatch true "Fields to change"
// @Success 200 {object} model.Sample
// @Failure 404 {object} errors.ErrorResponse
// @Router /samples/{id} [put]
func (h *SampleHandler) UpdateSample(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var patch model.SamplePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	sample, err := h.sampleService.UpdateSample(c.Request().Context(), actorFrom(c), id, patch)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, sample)
}

// DeleteSample godoc
// @Summary Delete a sample and its whole subtree
// @Tags samples
// @Security BearerAuth
// @Produce json
// @Param id path int true "Sample ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /samples/{id} [delete]
func (h *SampleHandler) DeleteSample(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.sampleService.DeleteSample(c.Request().Context(), actorFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "sample deleted"})
}

// Base variants

// ListBaseVariants godoc
// @Summary List base variants
// @Tags bases
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.BaseVariant
// @Router /bases [get]
func (h *SampleHandler) ListBaseVariants(c echo.Context) error {
	bases, err := h.sampleService.ListBaseVariants(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, bases)
}

// GetBaseVariant godoc
// @Summary Get a base variant by id
// @Tags bases
// @Security BearerAuth
// @Produce json
// @Param id path int true "Base variant ID"
// @Success 200 {object} model.BaseVariant
// @Failure 404 {object} errors.ErrorResponse
// @Router /bases/{id} [get]
func (h *SampleHandler) GetBaseVariant(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	base, err := h.sampleService.GetBaseVariant(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, base)
}

// CreateBaseVariant godoc
// @Summary Create a base variant under a sample
// @Tags bases
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateBaseVariantRequest true "New base variant"
// @Success 201 {object} model.BaseVariant
// @Failure 404 {object} errors.ErrorResponse
// @Router /bases [post]
func (h *SampleHandler) CreateBaseVariant(c echo.Context) error {
	var req CreateBaseVariantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	base := &model.BaseVariant{SampleID: req.SampleID, PatternFile: req.PatternFile}
	created, err := h.sampleService.CreateBaseVariant(c.Request().Context(), actorFrom(c), base)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateBaseVariant godoc
// @Summary Update a base variant
// @Tags bases
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Base variant ID"
// @Param request body model.BaseVariantPatch true "Fields to change"
// @Success 200 {object} model.BaseVariant
// @Failure 404 {object} errors.ErrorResponse
// @Router /bases/{id} [put]
func (h *SampleHandler) UpdateBaseVariant(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var patch model.BaseVariantPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	base, err := h.sampleService.UpdateBaseVariant(c.Request().Context(), actorFrom(c), id, patch)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, base)
}

// DeleteBaseVariant godoc
// @Summary Delete a base variant and its gradings and spec sheets
// @Tags bases
// @Security BearerAuth
// @Produce json
// @Param id path int true "Base variant ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /bases/{id} [delete]
func (h *SampleHandler) DeleteBaseVariant(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.sampleService.DeleteBaseVariant(c.Request().Context(), actorFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "base variant deleted"})
}

// Gradings

// ListGradings godoc
// @Summary List gradings
// @Tags gradings
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Grading
// @Router /gradings [get]
func (h *SampleHandler) ListGradings(c echo.Context) error {
	gradings, err := h.sampleService.ListGradings(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, gradings)
}

// GetGrading godoc
// @Summary Get a grading by id
// @Tags gradings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Grading ID"
// @Success 200 {object} model.Grading
// @Failure 404 {object} errors.ErrorResponse
// @Router /gradings/{id} [get]
func (h *SampleHandler) GetGrading(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	grading, err := h.sampleService.GetGrading(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, grading)
}

// CreateGrading godoc
// @Summary Create a grading under a base variant
// @Tags gradings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateGradingRequest true "New grading"
// @Success 201 {object} model.Grading
// @Failure 404 {object} errors.ErrorResponse
// @Router /gradings [post]
func (h *SampleHandler) CreateGrading(c echo.Context) error {
	var req CreateGradingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	grading := &model.Grading{BaseVariantID: req.BaseVariantID, File: req.File, SizeCurve: req.SizeCurve}
	created, err := h.sampleService.CreateGrading(c.Request().Context(), actorFrom(c), grading)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateGrading godoc
// @Summary Update a grading
// @Tags gradings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Grading ID"
// @Param request body model.GradingPatch true "Fields to change"
// @Success 200 {object} model.Grading
// @Failure 404 {object} errors.ErrorResponse
// @Router /gradings/{id} [put]
func (h *SampleHandler) UpdateGrading(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var patch model.GradingPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	grading, err := h.sampleService.UpdateGrading(c.Request().Context(), actorFrom(c), id, patch)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, grading)
}

// DeleteGrading godoc
// @Summary Delete a grading
// @Tags gradings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Grading ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /gradings/{id} [delete]
func (h *SampleHandler) DeleteGrading(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.sampleService.DeleteGrading(c.Request().Context(), actorFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "grading deleted"})
}

// Spec sheets

// ListSpecSheets godoc
// @Summary List spec sheets
// @Tags spec-sheets
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.SpecSheet
// @Router /spec-sheets [get]
func (h *SampleHandler) ListSpecSheets(c echo.Context) error {
	sheets, err := h.sampleService.ListSpecSheets(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, sheets)
}

// GetSpecSheet godoc
// @Summary Get a spec sheet by id
// @Tags spec-sheets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Spec sheet ID"
// @Success 200 {object} model.SpecSheet
// @Failure 404 {object} errors.ErrorResponse
// @Router /spec-sheets/{id} [get]
func (h *SampleHandler) GetSpecSheet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	sheet, err := h.sampleService.GetSpecSheet(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, sheet)
}

// CreateSpecSheet godoc
// @Summary Create a spec sheet under a base variant
// @Tags spec-sheets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateSpecSheetRequest true "New spec sheet"
// @Success 201 {object} model.SpecSheet
// @Failure 404 {object} errors.ErrorResponse
// @Router /spec-sheets [post]
func (h *SampleHandler) CreateSpecSheet(c echo.Context) error {
	var req CreateSpecSheetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sheet := &model.SpecSheet{BaseVariantID: req.BaseVariantID, Name: req.Name, File: req.File}
	created, err := h.sampleService.CreateSpecSheet(c.Request().Context(), actorFrom(c), sheet)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateSpecSheet godoc
// @Summary Update a spec sheet
// @Tags spec-sheets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Spec sheet ID"
// @Param request body model.SpecSheetPatch true "Fields to change"
// @Success 200 {object} model.SpecSheet
// @Failure 404 {object} errors.ErrorResponse
// @Router /spec-sheets/{id} [put]
func (h *SampleHandler) UpdateSpecSheet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var patch model.SpecSheetPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	sheet, err := h.sampleService.UpdateSpecSheet(c.Request().Context(), actorFrom(c), id, patch)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, sheet)
}

// DeleteSpecSheet godoc
// @Summary Delete a spec sheet
// @Tags spec-sheets
// @Security BearerAuth
// @Produce json
// @Param id path int true "Spec sheet ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /spec-sheets/{id} [delete]
func (h *SampleHandler) DeleteSpecSheet(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.sampleService.DeleteSpecSheet(c.Request().Context(), actorFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "spec sheet deleted"})
}
