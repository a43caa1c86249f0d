package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`
	Type string    `json:"type"` // "snack", "material", "coffee", ...

	// Removal rule flags, resolved once at load time.
	NeedBuffer     bool `gorm:"default:true" json:"need_buffer"`
	ScrapOnRemoval bool `json:"scrap_on_removal"`
	AllowGift      bool `json:"allow_gift"`

	Timestamp
}

type Product struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SKU            string     `gorm:"uniqueIndex;not null" json:"sku"`
	Name           string     `json:"name"`
	CategoryID     *uuid.UUID `json:"category_id,omitempty"`
	RemovalBuffer  int        `json:"removal_buffer"` // days subtracted from expiry, non-negative
	InventoryCycle string     `json:"inventory_cycle"`

	Category *Category `gorm:"foreignKey:CategoryID"`
	Batches  []*Batch  `gorm:"foreignKey:ProductID"`
	Timestamp
}
