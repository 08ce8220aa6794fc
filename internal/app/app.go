package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"jewelcms/internal/config"
	"jewelcms/internal/handlers"
	"jewelcms/internal/middleware"
	"jewelcms/internal/pdf"
	"jewelcms/internal/realtime"
	"jewelcms/internal/repositories"
	"jewelcms/internal/routes"
	"jewelcms/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "jewelcms/docs"
)

func Run() {
	cfg := config.LoadConfig()
	middleware.SetJWTKey(cfg.Auth.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	leadNoteRepo := repositories.NewLeadNoteRepository(db)
	productRepo := repositories.NewProductRepository(db)
	productImageRepo := repositories.NewProductImageRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	settingRepo := repositories.NewSettingRepository(db)

	// === Services ===
	settingsService := services.NewSettingsService(settingRepo)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	telegramService := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.DryRun)
	notifyService := services.NewNotifyService(settingsService, emailService, telegramService)

	var rule services.TransitionRule = services.AllowAnyTransition
	if cfg.Leads.StrictTransitions {
		rule = services.StrictPipelineTransition
	}
	leadService := services.NewLeadService(leadRepo, leadNoteRepo, notifyService, rule)

	productService := services.NewProductService(productRepo, productImageRepo)
	catalogService := services.NewCatalogService(brandRepo, categoryRepo, tagRepo)
	wishlistService := services.NewWishlistService(wishlistRepo)
	customerService := services.NewCustomerService(customerRepo)

	pdfGen := pdf.NewReportGenerator(cfg.Files.RootDir)
	reportService := services.NewReportService(leadService, productService, wishlistService, pdfGen)

	hub := realtime.NewHub()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userRepo, time.Duration(cfg.Auth.TokenTTLMin)*time.Minute)
	leadHandler := handlers.NewLeadHandler(leadService, hub)
	eventsHandler := handlers.NewEventsHandler(hub)
	productHandler := handlers.NewProductHandler(productService, cfg.Files.RootDir)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	reportHandler := handlers.NewReportHandler(reportService)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(middleware.Metrics())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// uploaded product images and generated reports
	router.Static("/files", cfg.Files.RootDir)

	routes.SetupRoutes(
		router,
		authHandler,
		leadHandler,
		productHandler,
		catalogHandler,
		wishlistHandler,
		customerHandler,
		settingsHandler,
		reportHandler,
		eventsHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
