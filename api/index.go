package api

import (
	"net/http"
	"sync"

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

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()

		logger := libs.NewNopLogger()
		if l, err := libs.NewLogger(config.AppConfig.AppEnv); err == nil {
			logger = l
		}

		var store storage.Store
		if config.AppConfig.RedisURL != "" || config.AppConfig.RedisAddr != "" {
			if redisStore, err := storage.NewRedisStore(
				config.AppConfig.RedisURL,
				config.AppConfig.RedisAddr,
				config.AppConfig.RedisPassword,
			); err == nil {
				store = redisStore
			} else {
				logger.Warn("redis unavailable, falling back to file storage", "error", err)
			}
		}
		if store == nil {
			if fileStore, err := storage.NewFileStore(config.AppConfig.DataDir); err == nil {
				store = fileStore
			} else {
				store = storage.NewMemoryStore()
			}
		}

		mailer, err := services.NewEmailService()
		if err != nil {
			mailer = nil
		}

		authSvc := services.NewAuthService(
			repositories.NewUserRepository(store),
			repositories.NewSessionRepository(store),
			mailer, logger,
			config.AppConfig.AdminEmail, config.AppConfig.AdminPassword,
		)
		cartSvc := services.NewCartService(repositories.NewCartRepository(store), logger)
		productSvc := services.NewProductService(config.AppConfig.UpstreamAPIURL, logger)
		orderSvc := services.NewOrderService(config.AppConfig.UpstreamAPIURL, logger)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())
		router.Use(middleware.SessionMiddleware())

		routes.SetupRoutes(router,
			authSvc,
			controllers.NewAuthController(authSvc),
			controllers.NewCartController(cartSvc),
			controllers.NewProductController(productSvc),
			controllers.NewOrderController(orderSvc, mailer, logger),
		)
	})
}

// Handler is the serverless entrypoint.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
