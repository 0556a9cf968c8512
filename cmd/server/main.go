package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"textilerp/docs"

	"textilerp/internal/audit"
	"textilerp/internal/auth"
	"textilerp/internal/cache"
	"textilerp/internal/config"
	"textilerp/internal/db"
	"textilerp/internal/handler"
	"textilerp/internal/model"
	"textilerp/internal/repository"
	"textilerp/internal/router"
	"textilerp/internal/service"
)

// @title Textile Production Data Manager API
// @version 1.0
// @description Sample and pattern catalog with role-based access, a full audit trail and a legacy ERP bridge.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.PermissionOverride{},
		&model.AuditEntry{},
		&model.Brand{},
		&model.FitType{},
		&model.ProductType{},
		&model.Fabric{},
		&model.Sample{},
		&model.BaseVariant{},
		&model.Grading{},
		&model.SpecSheet{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// The ERP database is optional; without a DSN the bridge reports
	// unavailable instead of failing startup.
	erpDB, err := db.NewERPMySQL(cfg.ERPMySQLDSN)
	if err != nil {
		log.Printf("erp database unavailable: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	permRepo := repository.NewPermissionRepository(gormDB)
	auditRepo := repository.NewAuditRepository(gormDB)
	fabricRepo := repository.NewFabricRepository(gormDB)
	brandRepo := repository.NewBrandRepository(gormDB)
	fitTypeRepo := repository.NewFitTypeRepository(gormDB)
	productTypeRepo := repository.NewProductTypeRepository(gormDB)
	sampleRepo := repository.NewSampleRepository(gormDB)
	baseRepo := repository.NewBaseVariantRepository(gormDB)
	gradingRepo := repository.NewGradingRepository(gormDB)
	sheetRepo := repository.NewSpecSheetRepository(gormDB)
	erpRepo := repository.NewERPRepository(erpDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	recorder := audit.NewRecorder(auditRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, recorder)
	permService := service.NewPermissionService(userRepo, permRepo, cacheClient, recorder)
	userService := service.NewUserService(userRepo, permService, recorder)
	catalogService := service.NewCatalogService(fabricRepo, brandRepo, fitTypeRepo, productTypeRepo, recorder)
	sampleService := service.NewSampleService(sampleRepo, baseRepo, gradingRepo, sheetRepo, recorder)
	fileService, err := service.NewFileService(cfg.UploadDir, recorder)
	if err != nil {
		log.Fatalf("file storage init: %v", err)
	}
	historyService := service.NewHistoryService(auditRepo)
	erpService := service.NewERPService(erpRepo, baseRepo, recorder)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, permService)
	userHandler := handler.NewUserHandler(userService, permService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	sampleHandler := handler.NewSampleHandler(sampleService)
	historyHandler := handler.NewHistoryHandler(historyService)
	fileHandler := handler.NewFileHandler(fileService)
	erpHandler := handler.NewERPHandler(erpService)

	// Register routes
	router.Register(
		e,
		cfg,
		authService,
		permService,
		authHandler,
		userHandler,
		catalogHandler,
		sampleHandler,
		historyHandler,
		fileHandler,
		erpHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
