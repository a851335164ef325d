package handler

import (
	"net/http"

	"github.com/VisKlo/furniture-inventory/internal/models"
	"github.com/VisKlo/furniture-inventory/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type SupplierHandler struct{}

func (h *SupplierHandler) List(c *gin.Context) {
	suppliers := []models.Supplier{}
	if err := database.DB.Preload("Materials").Find(&suppliers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch suppliers", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, suppliers)
}

func (h *SupplierHandler) Get(c *gin.Context) {
	var supplier models.Supplier
	if err := database.DB.Preload("Materials").First(&supplier, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Supplier not found"})
		return
	}
	c.JSON(http.StatusOK, supplier)
}

type CreateSupplierRequest struct {
	Name    string         `json:"name" binding:"required"`
	Contact models.Contact `json:"contact"`
}

func (h *SupplierHandler) Create(c *gin.Context) {
	var req CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	supplier := models.Supplier{
		Name:    req.Name,
		Contact: datatypes.NewJSONType(req.Contact),
	}
	if err := database.DB.Create(&supplier).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create supplier", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, supplier)
}

type UpdateSupplierRequest struct {
	Name    *string         `json:"name"`
	Contact *models.Contact `json:"contact"`
}

func (h *SupplierHandler) Update(c *gin.Context) {
	var supplier models.Supplier
	if err := database.DB.First(&supplier, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Supplier not found"})
		return
	}

	var req UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request", "error": err.Error()})
		return
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Contact != nil {
		supplier.Contact = datatypes.NewJSONType(*req.Contact)
	}

	if err := database.DB.Save(&supplier).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to update supplier", "error": err.Error()})
		return
	}

	var updated models.Supplier
	database.DB.Preload("Materials").First(&updated, supplier.ID)
	c.JSON(http.StatusOK, updated)
}

// Delete removes a supplier. Its materials survive with a nulled supplier
// reference, matching the nullable foreign key.
func (h *SupplierHandler) Delete(c *gin.Context) {
	var supplier models.Supplier
	if err := database.DB.First(&supplier, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Supplier not found"})
		return
	}

	tx := database.DB.Begin()
	if err := tx.Model(&models.Material{}).Where("supplier_id = ?", supplier.ID).Update("supplier_id", nil).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to detach materials", "error": err.Error()})
		return
	}
	if err := tx.Delete(&supplier).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete supplier", "error": err.Error()})
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}

// Materials returns a supplier together with every material it supplies.
func (h *SupplierHandler) Materials(c *gin.Context) {
	var supplier models.Supplier
	if err := database.DB.First(&supplier, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Supplier not found"})
		return
	}

	materials := []models.Material{}
	if err := database.DB.Where("supplier_id = ?", supplier.ID).Find(&materials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch materials", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"supplier": supplier, "materials": materials})
}
