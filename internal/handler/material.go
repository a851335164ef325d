package handler

import (
	"net/http"
	"strings"

	"github.com/VisKlo/furniture-inventory/internal/models"
	"github.com/VisKlo/furniture-inventory/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MaterialHandler struct{}

func (h *MaterialHandler) List(c *gin.Context) {
	materials := []models.Material{}
	if err := database.DB.Preload("Supplier").Find(&materials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch materials", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (h *MaterialHandler) Get(c *gin.Context) {
	var material models.Material
	if err := database.DB.Preload("Supplier").First(&material, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Material not found"})
		return
	}
	c.JSON(http.StatusOK, material)
}

type CreateMaterialRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required,oneof=wood metal plastic"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	SupplierID  *uint   `json:"supplier_id"`
}

func (h *MaterialHandler) Create(c *gin.Context) {
	var req CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	material := models.Material{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Price:       req.Price,
		SupplierID:  req.SupplierID,
	}
	if err := database.DB.Create(&material).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create material", "error": err.Error()})
		return
	}

	var created models.Material
	database.DB.Preload("Supplier").First(&created, material.ID)
	c.JSON(http.StatusCreated, created)
}

type UpdateMaterialRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" binding:"omitempty,oneof=wood metal plastic"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	SupplierID  *uint    `json:"supplier_id"`
}

func (h *MaterialHandler) Update(c *gin.Context) {
	var material models.Material
	if err := database.DB.First(&material, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Material not found"})
		return
	}

	var req UpdateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.SupplierID != nil {
		updates["supplier_id"] = *req.SupplierID
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&material).Updates(updates).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update material", "error": err.Error()})
			return
		}
	}

	var updated models.Material
	database.DB.Preload("Supplier").First(&updated, material.ID)
	c.JSON(http.StatusOK, updated)
}

// Delete removes a material. A material still used by furniture is rejected
// so no edge is left referencing a missing row; the caller must edit or
// delete the furniture first.
func (h *MaterialHandler) Delete(c *gin.Context) {
	var material models.Material
	if err := database.DB.First(&material, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Material not found"})
		return
	}

	var furnitureIDs []uint
	if err := database.DB.Model(&models.FurnitureMaterial{}).
		Where("material_id = ?", material.ID).
		Distinct().
		Pluck("furniture_id", &furnitureIDs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete material", "error": err.Error()})
		return
	}
	if len(furnitureIDs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Material is in use by furniture and cannot be deleted",
			"furniture": furnitureIDs,
		})
		return
	}

	if err := database.DB.Delete(&material).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete material", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material deleted successfully"})
}

// Search is a case-insensitive substring match over name and description.
func (h *MaterialHandler) Search(c *gin.Context) {
	pattern := "%" + strings.ToLower(c.Param("keyword")) + "%"

	materials := []models.Material{}
	if err := database.DB.Preload("Supplier").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&materials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to search materials", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, materials)
}

type AddQuantityRequest struct {
	QuantityToAdd int `json:"quantityToAdd" binding:"required,gt=0"`
}

// AddQuantity tops up a material's stock.
func (h *MaterialHandler) AddQuantity(c *gin.Context) {
	var material models.Material
	if err := database.DB.First(&material, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Material not found"})
		return
	}

	var req AddQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	if err := database.DB.Model(&material).
		Update("quantity", gorm.Expr("quantity + ?", req.QuantityToAdd)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update stock", "error": err.Error()})
		return
	}

	var updated models.Material
	database.DB.Preload("Supplier").First(&updated, material.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Quantity updated", "material": updated})
}
