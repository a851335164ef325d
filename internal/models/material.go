package models

import (
	"time"
)

// Material categories. Closed set, validated at the request boundary.
const (
	CategoryWood    = "wood"
	CategoryMetal   = "metal"
	CategoryPlastic = "plastic"
)

type Material struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:20;not null" json:"category"` // 'wood', 'metal', 'plastic'
	Quantity    int       `gorm:"not null;check:quantity >= 0" json:"quantity"`
	Price       float64   `gorm:"not null" json:"price"`
	SupplierID  *uint     `json:"supplier_id"` // Nullable: materials may be supplier-less
	Supplier    *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
