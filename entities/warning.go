package entities

import (
	"github.com/google/uuid"
)

type WarningLog struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProductID    uuid.UUID  `gorm:"not null" json:"product_id"`
	BatchID      *uuid.UUID `json:"batch_id,omitempty"` // nil for stock-level warnings
	WarningLevel string     `json:"warning_level"`      // "critical", "warning", "reminder", "low_stock"
	WarningType  string     `json:"warning_type"`       // "expiry", "stock"
	Message      string     `json:"message"`
	IsResolved   bool       `json:"is_resolved"`

	Product *Product `gorm:"foreignKey:ProductID"`
	Batch   *Batch   `gorm:"foreignKey:BatchID;constraint:OnDelete:SET NULL"`
	Timestamp
}

// WarningConfig is a single-row table (id=1). Last write wins, no versioning.
type WarningConfig struct {
	ID                uint `gorm:"primary_key" json:"id"`
	WarningDaysLevel1 int  `gorm:"default:7" json:"warning_days_level1"`
	WarningDaysLevel2 int  `gorm:"default:15" json:"warning_days_level2"`
	WarningDaysLevel3 int  `gorm:"default:30" json:"warning_days_level3"`
	LowStockThreshold int  `gorm:"default:10" json:"low_stock_threshold"`

	Timestamp
}
