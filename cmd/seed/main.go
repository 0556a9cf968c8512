package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"textilerp/internal/auth"
	"textilerp/internal/config"
	"textilerp/internal/db"
	"textilerp/internal/model"
	"textilerp/internal/repository"
)

var starterFitTypes = []string{"Slim", "Regular", "Oversize"}

var starterProductTypes = []string{"T-Shirt", "Hoodie", "Trousers"}

// The seed is idempotent: it creates the bootstrap super admin and a few
// starter catalog rows only when they are missing.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.PermissionOverride{},
		&model.FitType{},
		&model.ProductType{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	username := envOr("SEED_ADMIN_USERNAME", "admin")
	password := envOr("SEED_ADMIN_PASSWORD", "admin123")

	existing, err := userRepo.FindByUsername(ctx, username)
	switch {
	case err == nil && existing != nil:
		log.Printf("Super admin '%s' already present, skipping", username)
	case errors.Is(err, gorm.ErrRecordNotFound):
		hashed, err := auth.HashPassword(password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		admin := &model.User{
			Username:     username,
			FullName:     "System Administrator",
			PasswordHash: hashed,
			Role:         model.RoleSuperAdmin,
			Active:       true,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create super admin: %v", err)
		}
		log.Printf("Created super admin '%s'", username)
	default:
		log.Fatalf("Failed to check super admin: %v", err)
	}

	fitRepo := repository.NewFitTypeRepository(gormDB)
	fits, err := fitRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list fit types: %v", err)
	}
	if len(fits) == 0 {
		for _, name := range starterFitTypes {
			if err := fitRepo.Create(ctx, &model.FitType{Name: name}); err != nil {
				log.Fatalf("Failed to create fit type '%s': %v", name, err)
			}
		}
		log.Printf("Created %d starter fit types", len(starterFitTypes))
	}

	productRepo := repository.NewProductTypeRepository(gormDB)
	products, err := productRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list product types: %v", err)
	}
	if len(products) == 0 {
		for _, name := range starterProductTypes {
			if err := productRepo.Create(ctx, &model.ProductType{Name: name}); err != nil {
				log.Fatalf("Failed to create product type '%s': %v", name, err)
			}
		}
		log.Printf("Created %d starter product types", len(starterProductTypes))
	}

	log.Println("Seed completed successfully!")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
