package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"textilerp/internal/auth"
	"textilerp/internal/config"
	"textilerp/internal/handler"
	"textilerp/internal/observability/metrics"
	"textilerp/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	permService service.PermissionService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	catalogHandler *handler.CatalogHandler,
	sampleHandler *handler.SampleHandler,
	historyHandler *handler.HistoryHandler,
	fileHandler *handler.FileHandler,
	erpHandler *handler.ERPHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(metrics.HTTPMetricsMiddleware)

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}), currentUser(authService))

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/auth/me", authHandler.Me)
	secured.GET("/auth/me/permissions", authHandler.MyPermissions)
	secured.PUT("/auth/me/password", authHandler.ChangePassword)

	// User management, admin only
	users := secured.Group("/users", requireAdmin)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("", userHandler.Create)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
	users.GET("/:id/permissions", userHandler.GetPermissions)
	users.PUT("/:id/permissions", userHandler.PutPermissions)

	// Audit trail, admin only
	history := secured.Group("/history", requireAdmin)
	history.GET("", historyHandler.List)
	history.GET("/stats", historyHandler.Stats)
	history.GET("/categories", historyHandler.Categories)
	history.GET("/:id", historyHandler.Get)

	gate := func(allowed func(auth.CapabilitySet) bool) echo.MiddlewareFunc {
		return requireCapability(permService, allowed)
	}

	// Catalog
	secured.GET("/fabrics", catalogHandler.ListFabrics, gate(func(s auth.CapabilitySet) bool { return s.FabricsView }))
	secured.GET("/fabrics/:id", catalogHandler.GetFabric, gate(func(s auth.CapabilitySet) bool { return s.FabricsView }))
	secured.POST("/fabrics", catalogHandler.CreateFabric, gate(func(s auth.CapabilitySet) bool { return s.FabricsCreate }))
	secured.PUT("/fabrics/:id", catalogHandler.UpdateFabric, gate(func(s auth.CapabilitySet) bool { return s.FabricsEdit }))
	secured.DELETE("/fabrics/:id", catalogHandler.DeleteFabric, gate(func(s auth.CapabilitySet) bool { return s.FabricsDelete }))

	secured.GET("/brands", catalogHandler.ListBrands, gate(func(s auth.CapabilitySet) bool { return s.BrandsView }))
	secured.GET("/brands/:id", catalogHandler.GetBrand, gate(func(s auth.CapabilitySet) bool { return s.BrandsView }))
	secured.POST("/brands", catalogHandler.CreateBrand, gate(func(s auth.CapabilitySet) bool { return s.BrandsCreate }))
	secured.PUT("/brands/:id", catalogHandler.UpdateBrand, gate(func(s auth.CapabilitySet) bool { return s.BrandsEdit }))
	secured.DELETE("/brands/:id", catalogHandler.DeleteBrand, gate(func(s auth.CapabilitySet) bool { return s.BrandsDelete }))

	secured.GET("/fit-types", catalogHandler.ListFitTypes, gate(func(s auth.CapabilitySet) bool { return s.FitTypesView }))
	secured.GET("/fit-types/:id", catalogHandler.GetFitType, gate(func(s auth.CapabilitySet) bool { return s.FitTypesView }))
	secured.POST("/fit-types", catalogHandler.CreateFitType, gate(func(s auth.CapabilitySet) bool { return s.FitTypesCreate }))
	secured.PUT("/fit-types/:id", catalogHandler.UpdateFitType, gate(func(s auth.CapabilitySet) bool { return s.FitTypesEdit }))
	secured.DELETE("/fit-types/:id", catalogHandler.DeleteFitType, gate(func(s auth.CapabilitySet) bool { return s.FitTypesDelete }))

	secured.GET("/product-types", catalogHandler.ListProductTypes, gate(func(s auth.CapabilitySet) bool { return s.ProductTypesView }))
	secured.GET("/product-types/:id", catalogHandler.GetProductType, gate(func(s auth.CapabilitySet) bool { return s.ProductTypesView }))
	secured.POST("/product-types", catalogHandler.CreateProductType, gate(func(s auth.CapabilitySet) bool { return s.ProductTypesCreate }))
	secured.PUT("/product-types/:id", catalogHandler.UpdateProductType, gate(func(s auth.CapabilitySet) bool { return s.ProductTypesEdit }))
	secured.DELETE("/product-types/:id", catalogHandler.DeleteProductType, gate(func(s auth.CapabilitySet) bool { return s.ProductTypesDelete }))

	// Sample hierarchy
	secured.GET("/samples", sampleHandler.ListSamples, gate(func(s auth.CapabilitySet) bool { return s.SamplesView }))
	secured.GET("/samples/:id", sampleHandler.GetSample, gate(func(s auth.CapabilitySet) bool { return s.SamplesView }))
	secured.POST("/samples", sampleHandler.CreateSample, gate(func(s auth.CapabilitySet) bool { return s.SamplesCreate }))
	secured.PUT("/samples/:id", sampleHandler.UpdateSample, gate(func(s auth.CapabilitySet) bool { return s.SamplesEdit }))
	secured.DELETE("/samples/:id", sampleHandler.DeleteSample, gate(func(s auth.CapabilitySet) bool { return s.SamplesDelete }))

	secured.GET("/bases", sampleHandler.ListBaseVariants, gate(func(s auth.CapabilitySet) bool { return s.BasesView }))
	secured.GET("/bases/:id", sampleHandler.GetBaseVariant, gate(func(s auth.CapabilitySet) bool { return s.BasesView }))
	secured.POST("/bases", sampleHandler.CreateBaseVariant, gate(func(s auth.CapabilitySet) bool { return s.BasesCreate }))
	secured.PUT("/bases/:id", sampleHandler.UpdateBaseVariant, gate(func(s auth.CapabilitySet) bool { return s.BasesEdit }))
	secured.DELETE("/bases/:id", sampleHandler.DeleteBaseVariant, gate(func(s auth.CapabilitySet) bool { return s.BasesDelete }))

	secured.GET("/gradings", sampleHandler.ListGradings, gate(func(s auth.CapabilitySet) bool { return s.GradingsView }))
	secured.GET("/gradings/:id", sampleHandler.GetGrading, gate(func(s auth.CapabilitySet) bool { return s.GradingsView }))
	secured.POST("/gradings", sampleHandler.CreateGrading, gate(func(s auth.CapabilitySet) bool { return s.GradingsCreate }))
	secured.PUT("/gradings/:id", sampleHandler.UpdateGrading, gate(func(s auth.CapabilitySet) bool { return s.GradingsEdit }))
	secured.DELETE("/gradings/:id", sampleHandler.DeleteGrading, gate(func(s auth.CapabilitySet) bool { return s.GradingsDelete }))

	// Spec sheets ride on the base-variant capabilities; they have no
	// category of their own in the permission model.
	secured.GET("/spec-sheets", sampleHandler.ListSpecSheets, gate(func(s auth.CapabilitySet) bool { return s.BasesView }))
	secured.GET("/spec-sheets/:id", sampleHandler.GetSpecSheet, gate(func(s auth.CapabilitySet) bool { return s.BasesView }))
	secured.POST("/spec-sheets", sampleHandler.CreateSpecSheet, gate(func(s auth.CapabilitySet) bool { return s.BasesEdit }))
	secured.PUT("/spec-sheets/:id", sampleHandler.UpdateSpecSheet, gate(func(s auth.CapabilitySet) bool { return s.BasesEdit }))
	secured.DELETE("/spec-sheets/:id", sampleHandler.DeleteSpecSheet, gate(func(s auth.CapabilitySet) bool { return s.BasesEdit }))

	// Files
	secured.POST("/upload", fileHandler.Upload, requireFileCapability(permService, true))
	secured.GET("/files/:name", fileHandler.Download, requireFileCapability(permService, false))
	secured.DELETE("/files/:name", fileHandler.Delete, requireFileCapability(permService, true))

	// Legacy ERP bridge
	secured.GET("/legacy/status", erpHandler.Status, gate(func(s auth.CapabilitySet) bool { return s.BasesView }))
	secured.GET("/legacy/models", erpHandler.Models, gate(func(s auth.CapabilitySet) bool { return s.BasesView }))
	secured.GET("/legacy/records", erpHandler.Records, gate(func(s auth.CapabilitySet) bool { return s.BasesView }))
	secured.GET("/legacy/records/unlinked", erpHandler.Unlinked, gate(func(s auth.CapabilitySet) bool { return s.BasesView }))
	secured.GET("/legacy/records/linked/:base_id", erpHandler.Linked, gate(func(s auth.CapabilitySet) bool { return s.BasesView }))
	secured.POST("/legacy/link", erpHandler.Link, gate(func(s auth.CapabilitySet) bool { return s.BasesEdit }))
	secured.POST("/legacy/unlink/:base_id", erpHandler.Unlink, gate(func(s auth.CapabilitySet) bool { return s.BasesEdit }))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
