package main

import (
	"log"
	"time"

	"github.com/VisKlo/furniture-inventory/config"
	"github.com/VisKlo/furniture-inventory/internal/handler"
	"github.com/VisKlo/furniture-inventory/internal/models"
	"github.com/VisKlo/furniture-inventory/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	database.Connect()

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")
	err := database.DB.AutoMigrate(
		&models.User{},
		&models.Supplier{},
		&models.Material{},
		&models.Furniture{},
		&models.FurnitureMaterial{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.SeedAdminUser()

	// 4. Initialize Router
	r := gin.Default()

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 5. Setup Routes
	handler.RegisterRoutes(r)

	// 6. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
