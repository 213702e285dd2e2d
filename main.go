package main

import (
	"log"

	"store-admin/config"
	"store-admin/controllers"
	"store-admin/libs"
	"store-admin/middleware"
	"store-admin/repositories"
	"store-admin/routes"
	"store-admin/services"
	"store-admin/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	logger, err := libs.NewLogger(config.AppConfig.AppEnv)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	var store storage.Store
	if config.AppConfig.RedisURL != "" || config.AppConfig.RedisAddr != "" {
		redisStore, err := storage.NewRedisStore(
			config.AppConfig.RedisURL,
			config.AppConfig.RedisAddr,
			config.AppConfig.RedisPassword,
		)
		if err != nil {
			logger.Warn("redis unavailable, falling back to file storage", "error", err)
		} else {
			logger.Info("storage backend: redis")
			store = redisStore
			defer redisStore.Close()
		}
	}
	if store == nil {
		fileStore, err := storage.NewFileStore(config.AppConfig.DataDir)
		if err != nil {
			logger.Fatal("failed to initialize file storage", "error", err)
		}
		logger.Info("storage backend: file", "dir", config.AppConfig.DataDir)
		store = fileStore
	}

	mailer, err := services.NewEmailService()
	if err != nil {
		logger.Info("mailer disabled", "reason", err.Error())
		mailer = nil
	}

	cartRepo := repositories.NewCartRepository(store)
	userRepo := repositories.NewUserRepository(store)
	sessionRepo := repositories.NewSessionRepository(store)

	authSvc := services.NewAuthService(userRepo, sessionRepo, mailer, logger,
		config.AppConfig.AdminEmail, config.AppConfig.AdminPassword)
	cartSvc := services.NewCartService(cartRepo, logger)
	productSvc := services.NewProductService(config.AppConfig.UpstreamAPIURL, logger)
	orderSvc := services.NewOrderService(config.AppConfig.UpstreamAPIURL, logger)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SessionMiddleware())
	routes.SetupRoutes(router,
		authSvc,
		controllers.NewAuthController(authSvc),
		controllers.NewCartController(cartSvc),
		controllers.NewProductController(productSvc),
		controllers.NewOrderController(orderSvc, mailer, logger),
	)

	port := ":" + config.AppConfig.Port
	logger.Info("server starting", "port", config.AppConfig.Port, "env", config.AppConfig.AppEnv)

	if err := router.Run(port); err != nil {
		logger.Fatal("server failed", "error", err)
	}
}
