package expiry

const (
	CategoryTypeSnack    = "snack"
	CategoryTypeMaterial = "material"
	CategoryTypeCoffee   = "coffee"
)

const (
	StatusStopSellGiftable = "StopSellGiftable" // past removal, coffee: pull from sale but gifting allowed
	StatusImmediateRemoval = "ImmediateRemoval"
	StatusUrgent           = "Urgent"
	StatusHealthy          = "Healthy"
)

// urgentWindowDays is the fixed per-batch urgency boundary. It is deliberately
// not tied to the tunable warning thresholds in WarningConfig.
const urgentWindowDays = 7

// Classify maps the days remaining until removal to a per-batch status label.
func Classify(categoryType string, daysToRemoval int) string {
	switch {
	case daysToRemoval < 0 && categoryType == CategoryTypeCoffee:
		return StatusStopSellGiftable
	case daysToRemoval < 0:
		return StatusImmediateRemoval
	case daysToRemoval <= urgentWindowDays:
		return StatusUrgent
	default:
		return StatusHealthy
	}
}
