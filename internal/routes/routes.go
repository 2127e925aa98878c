package routes

import (
	"github.com/gin-gonic/gin"

	"cosmetics-catalog/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, products *handlers.ProductHandler, carts *handlers.CartHandler, checkout *handlers.CheckoutHandler, status *handlers.StatusHandler) {
	router.GET("/", status.Root)
	router.GET("/test", status.Diagnostics)

	api := router.Group("/api")
	{
		api.GET("/hello", status.Hello)
		api.GET("/products", products.ListProducts)
		api.GET("/products/:id", products.GetProduct)

		cart := api.Group("/cart")
		{
			cart.POST("/start", carts.StartCart)
			cart.POST("/add", carts.AddItem)
			cart.GET("/:cart_id", carts.ViewCart)
		}

		api.POST("/checkout", checkout.Checkout)
	}
}
