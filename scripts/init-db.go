package main

import (
	"fmt"
	"log"

	"pizzeria/internal/config"
	"pizzeria/internal/database"
	"pizzeria/internal/models"
	"pizzeria/internal/repository"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Force recreate all tables
	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.MenuItem{},
		&models.Promotion{},
		&models.Order{},
		&models.Review{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	fmt.Println("Recreating tables...")
	err = db.AutoMigrate(
		&models.MenuItem{},
		&models.Promotion{},
		&models.Order{},
		&models.Review{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed initial data
	catalogRepo := repository.NewCatalogRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	items := database.DefaultMenuItems()
	if err := catalogRepo.SaveMenuItems(items); err != nil {
		log.Fatal("Failed to seed menu items:", err)
	}
	fmt.Printf("Seeded %d menu items\n", len(items))

	promotions := database.DefaultPromotions()
	if err := catalogRepo.SavePromotions(promotions); err != nil {
		log.Fatal("Failed to seed promotions:", err)
	}
	fmt.Printf("Seeded %d promotions\n", len(promotions))

	reviews := database.DefaultReviews()
	for _, review := range reviews {
		if err := reviewRepo.SaveReview(review); err != nil {
			log.Fatal("Failed to seed reviews:", err)
		}
	}
	fmt.Printf("Seeded %d reviews\n", len(reviews))

	fmt.Println("Database initialization complete")
}
