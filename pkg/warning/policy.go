package warning

import (
	"FreshStock-Backend/entities"
)

const (
	LevelCritical = "critical"
	LevelWarning  = "warning"
	LevelReminder = "reminder"
	LevelLowStock = "low_stock"
)

const (
	TypeExpiry = "expiry"
	TypeStock  = "stock"
)

// LevelForExpiry maps the plain days-to-expiry distance to an escalation tier.
// Returns false when the batch is too far out to warrant a warning.
func LevelForExpiry(daysToExpiry int, cfg *entities.WarningConfig) (string, bool) {
	switch {
	case daysToExpiry <= cfg.WarningDaysLevel1:
		return LevelCritical, true
	case daysToExpiry <= cfg.WarningDaysLevel2:
		return LevelWarning, true
	case daysToExpiry <= cfg.WarningDaysLevel3:
		return LevelReminder, true
	}
	return "", false
}

// LevelForStock flags a product whose aggregate quantity fell below the
// configured threshold. Zero stock (or no batches at all) also qualifies.
func LevelForStock(totalQuantity int, cfg *entities.WarningConfig) (string, bool) {
	if totalQuantity == 0 || totalQuantity < cfg.LowStockThreshold {
		return LevelLowStock, true
	}
	return "", false
}
