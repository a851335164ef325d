package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/VisKlo/furniture-inventory/internal/models"
	"github.com/VisKlo/furniture-inventory/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FurnitureHandler struct{}

type FurnitureMaterialRequest struct {
	Material uint `json:"material" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,gt=0"`
}

// Materials is a pointer so an absent field is distinguishable from an
// explicit empty list: omitting it is rejected, [] clears every edge.
type FurnitureRequest struct {
	Name        string                      `json:"name" binding:"required"`
	Description string                      `json:"description"`
	Category    string                      `json:"category" binding:"required"`
	Quantity    *int                        `json:"quantity" binding:"omitempty,gte=0"`
	Materials   *[]FurnitureMaterialRequest `json:"materials" binding:"required,dive"`
}

func (h *FurnitureHandler) List(c *gin.Context) {
	furniture := []models.Furniture{}
	if err := database.DB.Preload("Materials.Material.Supplier").
		Order("created_at desc").Find(&furniture).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch furniture", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, furniture)
}

func (h *FurnitureHandler) Get(c *gin.Context) {
	var furniture models.Furniture
	if err := database.DB.Preload("Materials.Material.Supplier").
		First(&furniture, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Furniture not found"})
		return
	}
	c.JSON(http.StatusOK, furniture)
}

func (h *FurnitureHandler) Search(c *gin.Context) {
	pattern := "%" + strings.ToLower(c.Param("keyword")) + "%"

	furniture := []models.Furniture{}
	if err := database.DB.Preload("Materials.Material.Supplier").
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Order("created_at desc").Find(&furniture).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to search furniture", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, furniture)
}

// checkAvailability validates the requested material list in input order.
// The first missing or under-stocked material aborts the whole request; the
// error names the material and the stock actually available.
func checkAvailability(tx *gorm.DB, requests []FurnitureMaterialRequest) error {
	for _, m := range requests {
		var material models.Material
		if err := tx.First(&material, m.Material).Error; err != nil {
			return fmt.Errorf("insufficient stock for material ID %d (stock: 0)", m.Material)
		}
		if material.Quantity < m.Quantity {
			return fmt.Errorf("insufficient stock for material ID %d (stock: %d)", m.Material, material.Quantity)
		}
	}
	return nil
}

// reserveMaterials inserts the furniture-material edges and deducts each
// requested quantity from the material's stock. Must run after
// checkAvailability inside the same transaction.
func reserveMaterials(tx *gorm.DB, furnitureID uint, requests []FurnitureMaterialRequest) error {
	for _, m := range requests {
		edge := models.FurnitureMaterial{
			FurnitureID: furnitureID,
			MaterialID:  m.Material,
			Quantity:    m.Quantity,
		}
		if err := tx.Create(&edge).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Material{}).Where("id = ?", m.Material).
			Update("quantity", gorm.Expr("quantity - ?", m.Quantity)).Error; err != nil {
			return err
		}
	}
	return nil
}

// releaseMaterials restores the stock reserved by the given edges and deletes
// them, reversing reserveMaterials.
func releaseMaterials(tx *gorm.DB, furnitureID uint) error {
	var edges []models.FurnitureMaterial
	if err := tx.Where("furniture_id = ?", furnitureID).Find(&edges).Error; err != nil {
		return err
	}
	for _, edge := range edges {
		if err := tx.Model(&models.Material{}).Where("id = ?", edge.MaterialID).
			Update("quantity", gorm.Expr("quantity + ?", edge.Quantity)).Error; err != nil {
			return err
		}
	}
	return tx.Where("furniture_id = ?", furnitureID).Delete(&models.FurnitureMaterial{}).Error
}

// Create inserts a furniture item and reserves stock for every material it
// uses. All writes happen in one transaction; any failure leaves the
// furniture, join and material tables untouched.
func (h *FurnitureHandler) Create(c *gin.Context) {
	var req FurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	tx := database.DB.Begin()

	if err := checkAvailability(tx, *req.Materials); err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create furniture", "error": err.Error()})
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	furniture := models.Furniture{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Quantity:    quantity,
	}
	if err := tx.Create(&furniture).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create furniture", "error": err.Error()})
		return
	}

	if err := reserveMaterials(tx, furniture.ID, *req.Materials); err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to create furniture", "error": err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create furniture", "error": err.Error()})
		return
	}

	var created models.Furniture
	database.DB.Preload("Materials.Material.Supplier").First(&created, furniture.ID)
	c.JSON(http.StatusCreated, created)
}

// Update replaces the furniture's whole material list. Stock reserved by the
// old edges is restored first, then availability is re-checked against the
// restored levels before the new reservations are applied. A failure at any
// step rolls everything back, leaving stock and edges exactly as before.
func (h *FurnitureHandler) Update(c *gin.Context) {
	var req FurnitureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	tx := database.DB.Begin()

	var furniture models.Furniture
	if err := tx.First(&furniture, c.Param("id")).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"message": "Furniture not found"})
		return
	}

	if err := releaseMaterials(tx, furniture.ID); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update furniture", "error": err.Error()})
		return
	}

	if err := checkAvailability(tx, *req.Materials); err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update furniture", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"category":    req.Category,
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if err := tx.Model(&furniture).Updates(updates).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update furniture", "error": err.Error()})
		return
	}

	if err := reserveMaterials(tx, furniture.ID, *req.Materials); err != nil {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update furniture", "error": err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update furniture", "error": err.Error()})
		return
	}

	var updated models.Furniture
	database.DB.Preload("Materials.Material.Supplier").First(&updated, furniture.ID)
	c.JSON(http.StatusOK, updated)
}

// Delete removes a furniture item and its material edges. The stock the
// edges had reserved is restored, keeping delete symmetric with update.
func (h *FurnitureHandler) Delete(c *gin.Context) {
	tx := database.DB.Begin()

	var furniture models.Furniture
	if err := tx.First(&furniture, c.Param("id")).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"message": "Furniture not found"})
		return
	}

	if err := releaseMaterials(tx, furniture.ID); err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete furniture", "error": err.Error()})
		return
	}

	if err := tx.Delete(&furniture).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete furniture", "error": err.Error()})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete furniture", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Furniture deleted successfully"})
}
