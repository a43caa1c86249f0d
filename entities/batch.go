package entities

import (
	"time"

	"github.com/google/uuid"
)

type Batch struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProductID  uuid.UUID  `gorm:"not null" json:"product_id"`
	ExpiryDate time.Time  `gorm:"type:date;not null" json:"expiry_date"`
	Quantity   int        `gorm:"not null" json:"quantity"` // always > 0 once persisted
	SessionID  *uuid.UUID `json:"session_id,omitempty"`

	Product *Product          `gorm:"foreignKey:ProductID"`
	Session *InventorySession `gorm:"foreignKey:SessionID"`
	Timestamp
}
