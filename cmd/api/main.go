package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"agrihub/internal/caching"
	"agrihub/internal/config"
	"agrihub/internal/handlers"
	"agrihub/internal/jobs/background"
	appmiddleware "agrihub/internal/middleware"
	"agrihub/internal/onboarding"
	"agrihub/internal/repositories"
	"agrihub/internal/services"
	"agrihub/pkg/database"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	redisClient := caching.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	cacheService := caching.NewRedisCacheService(redisClient)
	feed := caching.NewRedisFeed(redisClient)

	documentService, err := services.NewDocumentService(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize document storage: %v", err)
	}
	if err := documentService.EnsureBucketExists(context.Background()); err != nil {
		log.Printf("WARN: invoice bucket check failed: %v", err)
	}

	// Repositories
	orgRepo := repositories.NewOrganizationRepository(pool)
	profileRepo := repositories.NewProfileRepository(pool)
	membershipRepo := repositories.NewMembershipRepository(pool)
	farmRepo := repositories.NewFarmRepository(pool)
	structureRepo := repositories.NewStructureRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)
	warehouseRepo := repositories.NewWarehouseRepository(pool)
	accountRepo := repositories.NewAccountRepository(pool)
	inventoryStore := repositories.NewInventoryStore(pool)

	// Services
	orgService := services.NewOrganizationService(orgRepo, membershipRepo)
	farmService := services.NewFarmService(farmRepo)
	structureService := services.NewStructureService(structureRepo, cacheService)
	inventoryService := services.NewInventoryService(inventoryRepo, inventoryStore, cacheService, feed)
	supplierService := services.NewSupplierService(supplierRepo)
	warehouseService := services.NewWarehouseService(warehouseRepo)
	authService := services.NewAuthService(cfg.DashboardPath)

	onboardingController := onboarding.NewController(profileRepo, orgRepo, membershipRepo, farmRepo)

	// Handlers
	orgHandlers := handlers.NewOrganizationHandlers(orgService)
	profileHandlers := handlers.NewProfileHandlers(profileRepo)
	farmHandlers := handlers.NewFarmHandlers(farmService)
	structureHandlers := handlers.NewStructureHandlers(structureService)
	inventoryHandlers := handlers.NewInventoryHandlers(inventoryService, documentService)
	supplierHandlers := handlers.NewSupplierHandlers(supplierService)
	warehouseHandlers := handlers.NewWarehouseHandlers(warehouseService)
	accountHandlers := handlers.NewAccountHandlers(accountRepo)
	onboardingHandlers := handlers.NewOnboardingHandlers(onboardingController)
	authHandlers := handlers.NewAuthHandlers(authService)

	jwtMiddleware, err := appmiddleware.NewJWTMiddleware(cfg.JWKSEndpoint(), membershipRepo)
	if err != nil {
		log.Fatalf("Failed to initialize JWT middleware: %v", err)
	}

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/auth/callback", authHandlers.Callback)

	v1 := e.Group("/v1", jwtMiddleware.Authenticate)

	v1.GET("/onboarding/status", onboardingHandlers.Status)
	v1.POST("/onboarding/complete", onboardingHandlers.Complete)
	v1.GET("/profile", profileHandlers.GetProfile)
	v1.PUT("/profile", profileHandlers.UpdateProfile)

	// Everything below requires a resolved organization.
	scoped := v1.Group("", jwtMiddleware.RequireOrganization)

	scoped.GET("/organization", orgHandlers.GetOrganization)
	scoped.PATCH("/organization", orgHandlers.UpdateOrganization)
	scoped.GET("/organization/members", orgHandlers.ListMembers)

	scoped.POST("/farms", farmHandlers.CreateFarm)
	scoped.GET("/farms", farmHandlers.ListFarms)
	scoped.GET("/farms/:id", farmHandlers.GetFarm)
	scoped.PATCH("/farms/:id", farmHandlers.UpdateFarm)
	scoped.DELETE("/farms/:id", farmHandlers.DeleteFarm)

	scoped.POST("/structures", structureHandlers.CreateStructure)
	scoped.GET("/structures", structureHandlers.ListStructures)
	scoped.GET("/structures/:id", structureHandlers.GetStructure)
	scoped.PATCH("/structures/:id", structureHandlers.UpdateStructure)
	scoped.DELETE("/structures/:id", structureHandlers.DeleteStructure)

	scoped.POST("/inventory", inventoryHandlers.CreateItem)
	scoped.GET("/inventory", inventoryHandlers.ListItems)
	scoped.GET("/inventory/:id", inventoryHandlers.GetItem)
	scoped.PATCH("/inventory/:id", inventoryHandlers.UpdateItem)
	scoped.DELETE("/inventory/:id", inventoryHandlers.DeleteItem)
	scoped.POST("/inventory/:id/invoice", inventoryHandlers.UploadInvoice)
	scoped.GET("/inventory/:id/invoice", inventoryHandlers.GetInvoiceURL)

	scoped.POST("/suppliers", supplierHandlers.CreateSupplier)
	scoped.GET("/suppliers", supplierHandlers.ListSuppliers)
	scoped.GET("/suppliers/:id", supplierHandlers.GetSupplier)
	scoped.PATCH("/suppliers/:id", supplierHandlers.UpdateSupplier)
	scoped.DELETE("/suppliers/:id", supplierHandlers.DeleteSupplier)

	scoped.POST("/warehouses", warehouseHandlers.CreateWarehouse)
	scoped.GET("/warehouses", warehouseHandlers.ListWarehouses)
	scoped.GET("/warehouses/:id", warehouseHandlers.GetWarehouse)
	scoped.PATCH("/warehouses/:id", warehouseHandlers.UpdateWarehouse)
	scoped.DELETE("/warehouses/:id", warehouseHandlers.DeleteWarehouse)

	scoped.GET("/accounts", accountHandlers.ListAccounts)
	scoped.GET("/accounts/:code", accountHandlers.GetAccountByCode)

	scheduler := background.NewJobScheduler(cacheService, orgRepo, inventoryStore, feed)
	if err := scheduler.Start(); err != nil {
		log.Printf("WARN: background scheduler failed to start: %v", err)
	}
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("WARN: background scheduler shutdown: %v", err)
		}
	}()

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("Starting server on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
