package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"etalase/internal/cache"
	"etalase/internal/handlers"
	"etalase/internal/middleware"
	"etalase/internal/models"
	"etalase/internal/repositories"
	"etalase/internal/services"
	"etalase/internal/storage"
	"etalase/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// Viper reads everything from environment variables, with local-dev
	// defaults.
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DRIVER", "sqlite") // sqlite | postgres | memory
	viper.SetDefault("DATABASE_DSN", "etalase.db")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "admin")
	viper.SetDefault("UPLOAD_DIR", "./public/uploads")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("VIEW_CACHE_TTL_MIN", 10)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("S3_REGION", "")
	viper.SetDefault("S3_BUCKET", "")
	viper.SetDefault("S3_ACCESS_KEY_ID", "")
	viper.SetDefault("S3_SECRET_ACCESS_KEY", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Repositories ---
	var (
		productRepo repositories.ProductRepository
		messageRepo repositories.MessageRepository
		bannerRepo  repositories.BannerRepository
	)
	switch driver := viper.GetString("DATABASE_DRIVER"); driver {
	case "memory":
		// In-memory stores, handy for demos and local poking around.
		productRepo = repositories.NewMockProductRepository()
		messageRepo = repositories.NewMockMessageRepository()
		bannerRepo = repositories.NewMockBannerRepository()
	default:
		var dialector gorm.Dialector
		dsn := viper.GetString("DATABASE_DSN")
		if driver == "postgres" {
			dialector = postgres.Open(dsn)
		} else {
			dialector = sqlite.Open(dsn)
		}
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.AutoMigrate(&models.Product{}, &models.Message{}, &models.HeroBanner{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		productRepo = repositories.NewGORMProductRepository(db)
		messageRepo = repositories.NewGORMMessageRepository(db)
		bannerRepo = repositories.NewGORMBannerRepository(db)
	}

	// --- View cache (optional) ---
	// A nil *cache.Views disables caching; reads then hit the store
	// directly.
	var views *cache.Views
	if addr := viper.GetString("REDIS_ADDR"); addr != "" {
		v, err := cache.NewViews(
			addr,
			viper.GetString("REDIS_PASSWORD"),
			viper.GetInt("REDIS_DB"),
			time.Duration(viper.GetInt("VIEW_CACHE_TTL_MIN"))*time.Minute,
		)
		if err != nil {
			log.Fatalf("Failed to initialize view cache: %v", err)
		}
		defer v.Close()
		views = v
	}

	// --- Event publisher (optional) ---
	var publisher services.EventPublisher
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer client.Close()
		mqClient = client
		publisher = client
	}

	// --- Upload storage ---
	var uploader storage.Uploader
	if bucket := viper.GetString("S3_BUCKET"); bucket != "" {
		s3Uploader, err := storage.NewS3Uploader(storage.S3Config{
			Region:          viper.GetString("S3_REGION"),
			Bucket:          bucket,
			AccessKeyID:     viper.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: viper.GetString("S3_SECRET_ACCESS_KEY"),
		})
		if err != nil {
			log.Fatalf("Failed to initialize S3 uploader: %v", err)
		}
		uploader = s3Uploader
	} else {
		localUploader, err := storage.NewLocalUploader(viper.GetString("UPLOAD_DIR"), "/uploads")
		if err != nil {
			log.Fatalf("Failed to initialize upload storage: %v", err)
		}
		uploader = localUploader
	}

	// --- Services ---
	verifier, err := services.NewStaticVerifier(
		viper.GetString("ADMIN_USERNAME"),
		viper.GetString("ADMIN_PASSWORD"),
	)
	if err != nil {
		log.Fatalf("Failed to initialize credential verifier: %v", err)
	}
	authService := services.NewAuthService(verifier, viper.GetString("JWT_SECRET"))
	catalogService := services.NewCatalogService(productRepo, views)
	messageService := services.NewMessageService(messageRepo, publisher)
	bannerService := services.NewBannerService(bannerRepo, views)
	statsService := services.NewStatsService(productRepo, messageRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService, views)
	messageHandler := handlers.NewMessageHandler(messageService)
	bannerHandler := handlers.NewBannerHandler(bannerService, views)
	adminHandler := handlers.NewAdminHandler(statsService, uploader)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())
	app.Static("/uploads", viper.GetString("UPLOAD_DIR"))

	apiV1 := app.Group("/api/v1")

	// Public routes
	authHandler.RegisterRoutes(apiV1)
	productHandler.RegisterPublicRoutes(apiV1)
	bannerHandler.RegisterPublicRoutes(apiV1)
	messageHandler.RegisterPublicRoutes(apiV1)

	// Admin routes, gated by the operator JWT
	admin := apiV1.Group("/admin", middleware.AuthRequired(authService))
	productHandler.RegisterAdminRoutes(admin)
	messageHandler.RegisterAdminRoutes(admin)
	bannerHandler.RegisterAdminRoutes(admin)
	adminHandler.RegisterAdminRoutes(admin)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Notification consumer ---
	// Logs storefront events; a real deployment would hook a mail or chat
	// notifier in here.
	if mqClient != nil {
		go func() {
			log.Println("Starting storefront event consumer...")
			err := mqClient.ConsumeEvents(func(msg amqp.Delivery) error {
				log.Printf("Storefront event %s (tag %d): %s", msg.Type, msg.DeliveryTag, string(msg.Body))
				return nil
			})
			if err != nil {
				log.Printf("Event consumer stopped: %v", err)
			}
		}()
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
