package main

import (
	"log"
	"time"

	"pizzeria/internal/config"
	"pizzeria/internal/database"
	"pizzeria/internal/handlers"
	"pizzeria/internal/redis"
	"pizzeria/internal/repository"
	"pizzeria/internal/services"
	"pizzeria/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Load persisted state, seeding the fixed initial data on first run
	items, err := catalogRepo.LoadMenuItems()
	if err != nil {
		log.Fatal("Failed to load menu items:", err)
	}
	if len(items) == 0 {
		items = database.DefaultMenuItems()
		if err := catalogRepo.SaveMenuItems(items); err != nil {
			log.Fatal("Failed to seed menu items:", err)
		}
		log.Printf("Seeded %d menu items", len(items))
	}

	promotions, err := catalogRepo.LoadPromotions()
	if err != nil {
		log.Fatal("Failed to load promotions:", err)
	}
	if len(promotions) == 0 {
		promotions = database.DefaultPromotions()
		if err := catalogRepo.SavePromotions(promotions); err != nil {
			log.Fatal("Failed to seed promotions:", err)
		}
		log.Printf("Seeded %d promotions", len(promotions))
	}

	reviews, err := reviewRepo.LoadReviews()
	if err != nil {
		log.Fatal("Failed to load reviews:", err)
	}
	if len(reviews) == 0 {
		for _, review := range database.DefaultReviews() {
			if err := reviewRepo.SaveReview(review); err != nil {
				log.Fatal("Failed to seed reviews:", err)
			}
			reviews = append(reviews, review)
		}
		log.Printf("Seeded %d reviews", len(reviews))
	}

	orders, err := orderRepo.LoadOrders()
	if err != nil {
		log.Fatal("Failed to load orders:", err)
	}

	// Initialize stores with save-on-mutation persistence
	catalog := store.NewCatalog(items, promotions, catalogRepo)
	ledger := store.NewLedger(orders, orderRepo)
	reviewStore := store.NewReviews(reviews, reviewRepo)

	// Initialize services
	sessionTTL := time.Duration(cfg.SessionTTL) * time.Second
	authService, err := services.NewAuthService(redisClient, cfg.AdminEmail, cfg.AdminPassword, sessionTTL)
	if err != nil {
		log.Fatal("Failed to initialize auth service:", err)
	}
	catalogService := services.NewCatalogService(catalog)
	cartService := services.NewCartService(redisClient, catalog, sessionTTL)
	orderService := services.NewOrderService(ledger, redisClient)
	reviewService := services.NewReviewService(reviewStore)

	// Setup routes
	router := handlers.SetupRouter(authService, catalogService, cartService, orderService, reviewService)

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
