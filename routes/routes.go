package routes

import (
	"store-admin/controllers"
	"store-admin/middleware"
	"store-admin/models"
	"store-admin/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	authSvc *services.AuthService,
	authCtrl *controllers.AuthController,
	cartCtrl *controllers.CartController,
	productCtrl *controllers.ProductController,
	orderCtrl *controllers.OrderController,
) {
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)
	router.GET("/auth/session", authCtrl.GetSession)

	router.GET("/products", productCtrl.List)
	router.GET("/products/:id", productCtrl.Get)

	cart := router.Group("/cart")
	cart.Use(middleware.RequireAuth(authSvc))
	{
		cart.GET("", cartCtrl.GetCart)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:id", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:id", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.RequireAuth(authSvc, models.RoleAdmin))
	{
		admin.GET("/dashboard", orderCtrl.GetDashboard)

		admin.POST("/products", productCtrl.Create)
		admin.PUT("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)

		admin.GET("/orders", orderCtrl.List)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)
	}
}
