package handler

import (
	"net/http"
	"sort"
	"time"

	"github.com/VisKlo/furniture-inventory/internal/models"
	"github.com/VisKlo/furniture-inventory/pkg/database"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct{}

type categoryCount struct {
	Category string `json:"-"`
	Count    int    `json:"count"`
}

type materialQuantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type yearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// GetDashboard aggregates the read-only counters the dashboard view renders.
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	var totalFurniture int64
	if err := database.DB.Model(&models.Furniture{}).Count(&totalFurniture).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard data", "error": err.Error()})
		return
	}

	var totalMaterials int64
	if err := database.DB.Model(&models.Material{}).Count(&totalMaterials).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard data", "error": err.Error()})
		return
	}

	// Furniture count per category
	var byCategory []categoryCount
	if err := database.DB.Model(&models.Furniture{}).
		Select("category, count(id) as count").
		Group("category").
		Scan(&byCategory).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard data", "error": err.Error()})
		return
	}
	furnitureByCategory := make([]gin.H, 0, len(byCategory))
	for _, row := range byCategory {
		furnitureByCategory = append(furnitureByCategory, gin.H{"id": row.Category, "count": row.Count})
	}

	// Stock level per material, ordered by name
	materialQuantities := []materialQuantity{}
	if err := database.DB.Model(&models.Material{}).
		Select("name, quantity").
		Order("name asc").
		Scan(&materialQuantities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard data", "error": err.Error()})
		return
	}

	// Ten most recently created furniture items, edges embedded
	recentFurniture := []models.Furniture{}
	if err := database.DB.Preload("Materials.Material").
		Order("created_at desc").
		Limit(10).
		Find(&recentFurniture).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard data", "error": err.Error()})
		return
	}

	monthlyFurniture, err := monthlyCreationCounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard data", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totals": gin.H{
			"furniture": totalFurniture,
			"materials": totalMaterials,
		},
		"furnitureByCategory": furnitureByCategory,
		"materialQuantities":  materialQuantities,
		"recentFurniture":     recentFurniture,
		"monthlyFurniture":    monthlyFurniture,
	})
}

// monthlyCreationCounts groups furniture rows by creation year+month, keeping
// the twelve most recent groups in ascending chronological order. Grouping is
// done here rather than in SQL so the date arithmetic stays portable across
// drivers.
func monthlyCreationCounts() ([]gin.H, error) {
	var createdAts []time.Time
	if err := database.DB.Model(&models.Furniture{}).
		Order("created_at asc").
		Pluck("created_at", &createdAts).Error; err != nil {
		return nil, err
	}

	counts := make(map[yearMonth]int)
	for _, t := range createdAts {
		counts[yearMonth{Year: t.Year(), Month: int(t.Month())}]++
	}

	groups := make([]yearMonth, 0, len(counts))
	for ym := range counts {
		groups = append(groups, ym)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Year != groups[j].Year {
			return groups[i].Year < groups[j].Year
		}
		return groups[i].Month < groups[j].Month
	})
	if len(groups) > 12 {
		groups = groups[len(groups)-12:]
	}

	monthly := make([]gin.H, 0, len(groups))
	for _, ym := range groups {
		monthly = append(monthly, gin.H{"id": ym, "count": counts[ym]})
	}
	return monthly, nil
}
