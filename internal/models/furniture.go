package models

import (
	"time"
)

type Furniture struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	Name        string              `gorm:"size:150;not null" json:"name"`
	Description string              `gorm:"type:text" json:"description"`
	Category    string              `gorm:"size:50;not null" json:"category"`
	Quantity    int                 `gorm:"not null;default:1" json:"quantity"`
	Materials   []FurnitureMaterial `gorm:"foreignKey:FurnitureID" json:"materials"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// FurnitureMaterial links one furniture item to one material. Quantity is how
// many units of the material the furniture consumes; that amount is deducted
// from the material's stock when the edge is created and restored when the
// edge is removed.
type FurnitureMaterial struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	FurnitureID uint     `gorm:"index;not null" json:"furniture_id"`
	MaterialID  uint     `gorm:"index;not null" json:"material_id"`
	Material    Material `gorm:"foreignKey:MaterialID" json:"material"`
	Quantity    int      `gorm:"not null;check:quantity >= 0" json:"quantity"`
}
