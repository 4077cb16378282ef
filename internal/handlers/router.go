package handlers

import (
	"time"

	"pizzeria/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(
	authService services.AuthService,
	catalogService services.CatalogService,
	cartService services.CartService,
	orderService services.OrderService,
	reviewService services.ReviewService,
) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", SessionTokenHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	authHandler := NewAuthHandler(authService)
	catalogHandler := NewCatalogHandler(catalogService)
	cartHandler := NewCartHandler(cartService)
	orderHandler := NewOrderHandler(orderService)
	reviewHandler := NewReviewHandler(reviewService)

	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
		api.GET("/menu", catalogHandler.ListMenu)
		api.GET("/menu/:id", catalogHandler.GetMenuItem)
		api.GET("/promotions", catalogHandler.ListPromotions)
		api.GET("/reviews", reviewHandler.List)

		authed := api.Group("", RequireSession(authService))
		{
			authed.POST("/auth/logout", authHandler.Logout)

			authed.GET("/cart", cartHandler.GetCart)
			authed.POST("/cart/items", cartHandler.AddItem)
			authed.PUT("/cart/items/:id", cartHandler.UpdateItem)
			authed.DELETE("/cart/items/:id", cartHandler.RemoveItem)
			authed.DELETE("/cart", cartHandler.ClearCart)

			authed.POST("/orders", orderHandler.Checkout)
			authed.GET("/orders", orderHandler.ListMine)
			authed.GET("/orders/:id", orderHandler.GetMine)
			authed.POST("/orders/:id/messages", orderHandler.PostCustomerMessage)

			authed.POST("/reviews", reviewHandler.Add)
			authed.POST("/reviews/:id/like", reviewHandler.Like)
		}

		admin := api.Group("/admin", RequireSession(authService), RequireAdmin())
		{
			admin.GET("/orders", orderHandler.ListAll)
			admin.GET("/orders/:id", orderHandler.Get)
			admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
			admin.POST("/orders/:id/messages", orderHandler.PostAdminMessage)

			admin.POST("/menu", catalogHandler.CreateMenuItem)
			admin.PUT("/menu/:id", catalogHandler.UpdateMenuItem)
			admin.DELETE("/menu/:id", catalogHandler.DeleteMenuItem)

			admin.POST("/promotions", catalogHandler.CreatePromotion)
			admin.PUT("/promotions/:id", catalogHandler.UpdatePromotion)
			admin.DELETE("/promotions/:id", catalogHandler.DeletePromotion)
		}
	}

	return router
}
