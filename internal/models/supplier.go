package models

import (
	"time"

	"gorm.io/datatypes"
)

// Contact is stored as a JSON blob on the supplier row.
type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Supplier struct {
	ID        uint                        `gorm:"primaryKey" json:"id"`
	Name      string                      `gorm:"size:150;not null" json:"name"`
	Contact   datatypes.JSONType[Contact] `json:"contact"`
	Materials []Material                  `gorm:"foreignKey:SupplierID" json:"materials,omitempty"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
}
