package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"textilerp/internal/model"
	"textilerp/internal/service"
)

// CatalogHandler handles the four reference-table endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateFabricRequest represents a fabric creation request.
type CreateFabricRequest struct {
	Name          string           `json:"name" validate:"required,max=255"`
	Grammage      *decimal.Decimal `json:"grammage"`
	Elasticity    string           `json:"elasticity" validate:"omitempty,max=100"`
	Supplier      string           `json:"supplier" validate:"omitempty,max=255"`
	StandardWidth *decimal.Decimal `json:"standard_width"`
	Color         *string          `json:"color" validate:"omitempty,oneof=blue black"`
}

// CreateNamedRequest represents a creation request for name-only entries.
type CreateNamedRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// Fabrics

// ListFabrics godoc
// @Summary List fabrics
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Fabric
// @Router /fabrics [get]
func (h *CatalogHandler) ListFabrics(c echo.Context) error {
	fabrics, err := h.catalogService.ListFabrics(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, fabrics)
}

// GetFabric godoc
// @Summary Get a fabric by id
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Fabric ID"
// @Success 200 {object} model.Fabric
// @Failure 404 {object} errors.ErrorResponse
// @Router /fabrics/{id} [get]
func (h *CatalogHandler) GetFabric(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	fabric, err := h.catalogService.GetFabric(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, fabric)
}

// CreateFabric godoc
// @Summary Create a fabric
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateFabricRequest true "New fabric"
// @Success 201 {object} model.Fabric
// @Failure 403 {object} errors.ErrorResponse
// @Router /fabrics [post]
func (h *CatalogHandler) CreateFabric(c echo.Context) error {
	var req CreateFabricRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fabric := &model.Fabric{
		Name:          req.Name,
		Grammage:      req.Grammage,
		Elasticity:    req.Elasticity,
		Supplier:      req.Supplier,
		StandardWidth: req.StandardWidth,
	}
	if req.Color != nil {
		color := model.FabricColor(*req.Color)
		fabric.Color = &color
	}

	created, err := h.catalogService.CreateFabric(c.Request().Context(), actorFrom(c), fabric)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateFabric godoc
// @Summary Update a fabric
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Fabric ID"
// @Param request body model.FabricPatch true "Fields to change"
// @Success 200 {object} model.Fabric
// @Failure 404 {object} errors.ErrorResponse
// @Router /fabrics/{id} [put]
func (h *CatalogHandler) UpdateFabric(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var patch model.FabricPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	fabric, err := h.catalogService.UpdateFabric(c.Request().Context(), actorFrom(c), id, patch)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, fabric)
}

// DeleteFabric godoc
// @Summary Delete a fabric
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Fabric ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /fabrics/{id} [delete]
func (h *CatalogHandler) DeleteFabric(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogService.DeleteFabric(c.Request().Context(), actorFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "fabric deleted"})
}

// Brands

// ListBrands godoc
// @Summary List brands
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.Brand
// @Router /brands [get]
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.catalogService.ListBrands(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, brands)
}

// GetBrand godoc
// @Summary Get a brand by id
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} model.Brand
// @Failure 404 {object} errors.ErrorResponse
// @Router /brands/{id} [get]
func (h *CatalogHandler) GetBrand(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	brand, err := h.catalogService.GetBrand(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, brand)
}

// CreateBrand godoc
// @Summary Create a brand
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateNamedRequest true "New brand"
// @Success 201 {object} model.Brand
// @Failure 403 {object} errors.ErrorResponse
// @Router /brands [post]
func (h *CatalogHandler) CreateBrand(c echo.Context) error {
	var req CreateNamedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	brand, err := h.catalogService.CreateBrand(c.Request().Context(), actorFrom(c), &model.Brand{Name: req.Name})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, brand)
}

// UpdateBrand godoc
// @Summary Update a brand
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Brand ID"
// @Param request body model.BrandPatch true "Fields to change"
// @Success 200 {object} model.Brand
// @Failure 404 {object} errors.ErrorResponse
// @Router /brands/{id} [put]
func (h *CatalogHandler) UpdateBrand(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var patch model.BrandPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	brand, err := h.catalogService.UpdateBrand(c.Request().Context(), actorFrom(c), id, patch)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, brand)
}

// DeleteBrand godoc
// @Summary Delete a brand
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Brand ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /brands/{id} [delete]
func (h *CatalogHandler) DeleteBrand(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogService.DeleteBrand(c.Request().Context(), actorFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "brand deleted"})
}

// Fit types

// ListFitTypes godoc
// @Summary List fit types
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.FitType
// @Router /fit-types [get]
func (h *CatalogHandler) ListFitTypes(c echo.Context) error {
	fits, err := h.catalogService.ListFitTypes(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, fits)
}

// GetFitType godoc
// @Summary Get a fit type by id
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Fit type ID"
// @Success 200 {object} model.FitType
// @Failure 404 {object} errors.ErrorResponse
// @Router /fit-types/{id} [get]
func (h *CatalogHandler) GetFitType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	fit, err := h.catalogService.GetFitType(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, fit)
}

// CreateFitType godoc
// @Summary Create a fit type
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateNamedRequest true "New fit type"
// @Success 201 {object} model.FitType
// @Failure 403 {object} errors.ErrorResponse
// @Router /fit-types [post]
func (h *CatalogHandler) CreateFitType(c echo.Context) error {
	var req CreateNamedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	fit, err := h.catalogService.CreateFitType(c.Request().Context(), actorFrom(c), &model.FitType{Name: req.Name})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, fit)
}

// UpdateFitType godoc
// @Summary Update a fit type
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Fit type ID"
// @Param request body model.FitTypePatch true "Fields to change"
// @Success 200 {object} model.FitType
// @Failure 404 {object} errors.ErrorResponse
// @Router /fit-types/{id} [put]
func (h *CatalogHandler) UpdateFitType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var patch model.FitTypePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	fit, err := h.catalogService.UpdateFitType(c.Request().Context(), actorFrom(c), id, patch)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, fit)
}

// DeleteFitType godoc
// @Summary Delete a fit type
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Fit type ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /fit-types/{id} [delete]
func (h *CatalogHandler) DeleteFitType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogService.DeleteFitType(c.Request().Context(), actorFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "fit type deleted"})
}

// Product types

// ListProductTypes godoc
// @Summary List product types
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.ProductType
// @Router /product-types [get]
func (h *CatalogHandler) ListProductTypes(c echo.Context) error {
	types, err := h.catalogService.ListProductTypes(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, types)
}

// GetProductType godoc
// @Summary Get a product type by id
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product type ID"
// @Success 200 {object} model.ProductType
// @Failure 404 {object} errors.ErrorResponse
// @Router /product-types/{id} [get]
func (h *CatalogHandler) GetProductType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	pt, err := h.catalogService.GetProductType(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, pt)
}

// CreateProductType godoc
// @Summary Create a product type
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateNamedRequest true "New product type"
// @Success 201 {object} model.ProductType
// @Failure 403 {object} errors.ErrorResponse
// @Router /product-types [post]
func (h *CatalogHandler) CreateProductType(c echo.Context) error {
	var req CreateNamedRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	pt, err := h.catalogService.CreateProductType(c.Request().Context(), actorFrom(c), &model.ProductType{Name: req.Name})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, pt)
}

// UpdateProductType godoc
// @Summary Update a product type
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Product type ID"
// @Param request body model.ProductTypePatch true "Fields to change"
// @Success 200 {object} model.ProductType
// @Failure 404 {object} errors.ErrorResponse
// @Router /product-types/{id} [put]
func (h *CatalogHandler) UpdateProductType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var patch model.ProductTypePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	pt, err := h.catalogService.UpdateProductType(c.Request().Context(), actorFrom(c), id, patch)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, pt)
}

// DeleteProductType godoc
// @Summary Delete a product type
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path int true "Product type ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /product-types/{id} [delete]
func (h *CatalogHandler) DeleteProductType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogService.DeleteProductType(c.Request().Context(), actorFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product type deleted"})
}
