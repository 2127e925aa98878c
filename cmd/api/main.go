package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"cosmetics-catalog/internal/catalog"
	"cosmetics-catalog/internal/config"
	"cosmetics-catalog/internal/database"
	"cosmetics-catalog/internal/handlers"
	"cosmetics-catalog/internal/middleware"
	"cosmetics-catalog/internal/repository"
	"cosmetics-catalog/internal/routes"
	"cosmetics-catalog/internal/service"
)

func main() {
	cfg := config.LoadConfig()

	var (
		source repository.CatalogSource
		carts  repository.CartStore
		orders repository.OrderStore
	)

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		// Sin base de datos: lecturas desde el catálogo estático,
		// mutaciones devuelven 503
		log.Println("⚠️ Mongo unavailable, using in-memory catalog:", err)
		source = repository.NewStaticCatalog(catalog.FallbackProducts())
		carts = repository.UnavailableStore{}
		orders = repository.UnavailableStore{}
	} else {
		db := client.Database(cfg.MongoDB)
		products := repository.NewProductRepository(db.Collection("products"))
		seedProducts(products)

		source = products
		carts = repository.NewCartRepository(db.Collection("cart_items"))
		orders = repository.NewOrderRepository(db.Collection("orders"))
		log.Println("✅ Connected to MongoDB database", cfg.MongoDB)
	}

	cartService := service.NewCartService(source, carts)
	checkoutService := service.NewCheckoutService(source, carts, orders)

	router := gin.Default()
	router.Use(middleware.CORS())
	routes.RegisterRoutes(
		router,
		handlers.NewProductHandler(source),
		handlers.NewCartHandler(cartService),
		handlers.NewCheckoutHandler(checkoutService),
		handlers.NewStatusHandler(cfg, client),
	)

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}

// seedProducts siembra el catálogo una sola vez, solo si la colección está
// vacía. Errores se loguean y el servidor arranca igual.
func seedProducts(products *repository.ProductRepository) {
	ctx := context.Background()

	seeded, err := products.HasProducts(ctx)
	if err != nil {
		log.Println("⚠️ Seed check failed:", err)
		return
	}
	if seeded {
		return
	}

	if err := products.Seed(ctx, catalog.FallbackProducts()); err != nil {
		log.Println("⚠️ Product seeding failed:", err)
		return
	}
	log.Println("🌱 Seeded product catalog")
}
