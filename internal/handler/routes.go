package handler

import (
	"net/http"

	"github.com/VisKlo/furniture-inventory/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every API route onto the engine. Reads are public;
// every mutating route sits behind the auth guard.
func RegisterRoutes(r *gin.Engine) {
	authHandler := &AuthHandler{}
	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	furnitureHandler := &FurnitureHandler{}
	furnitureRoutes := r.Group("/api/furniture")
	{
		furnitureRoutes.GET("", furnitureHandler.List)
		furnitureRoutes.GET("/:id", furnitureHandler.Get)
		furnitureRoutes.GET("/search/:keyword", furnitureHandler.Search)
		furnitureRoutes.POST("", middleware.AuthMiddleware(), furnitureHandler.Create)
		furnitureRoutes.PUT("/:id", middleware.AuthMiddleware(), furnitureHandler.Update)
		furnitureRoutes.DELETE("/:id", middleware.AuthMiddleware(), furnitureHandler.Delete)
	}

	materialHandler := &MaterialHandler{}
	materialRoutes := r.Group("/api/materials")
	{
		materialRoutes.GET("", materialHandler.List)
		materialRoutes.GET("/:id", materialHandler.Get)
		materialRoutes.GET("/search/:keyword", materialHandler.Search)
		materialRoutes.POST("", middleware.AuthMiddleware(), materialHandler.Create)
		materialRoutes.PUT("/:id", middleware.AuthMiddleware(), materialHandler.Update)
		materialRoutes.DELETE("/:id", middleware.AuthMiddleware(), materialHandler.Delete)
		materialRoutes.POST("/:id/addQuantity", middleware.AuthMiddleware(), materialHandler.AddQuantity)
	}

	supplierHandler := &SupplierHandler{}
	supplierRoutes := r.Group("/api/suppliers")
	{
		supplierRoutes.GET("", supplierHandler.List)
		supplierRoutes.GET("/:id", supplierHandler.Get)
		supplierRoutes.GET("/:id/materials", supplierHandler.Materials)
		supplierRoutes.POST("", middleware.AuthMiddleware(), supplierHandler.Create)
		supplierRoutes.PUT("/:id", middleware.AuthMiddleware(), supplierHandler.Update)
		supplierRoutes.DELETE("/:id", middleware.AuthMiddleware(), supplierHandler.Delete)
	}

	statsHandler := &StatsHandler{}
	r.GET("/api/stats/dashboard", middleware.AuthMiddleware(), statsHandler.GetDashboard)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Furniture Management API is running!"})
	})
}
