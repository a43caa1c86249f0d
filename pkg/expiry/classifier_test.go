package expiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name          string
		categoryType  string
		daysToRemoval int
		want          string
	}{
		{"zero days is urgent", CategoryTypeSnack, 0, StatusUrgent},
		{"seven days is urgent", CategoryTypeSnack, 7, StatusUrgent},
		{"eight days is healthy", CategoryTypeSnack, 8, StatusHealthy},
		{"negative is immediate removal", CategoryTypeSnack, -1, StatusImmediateRemoval},
		{"negative coffee may be gifted", CategoryTypeCoffee, -1, StatusStopSellGiftable},
		{"coffee still in window is urgent", CategoryTypeCoffee, 3, StatusUrgent},
		{"material far out is healthy", CategoryTypeMaterial, 90, StatusHealthy},
		{"unknown category behaves like default", "frozen", -5, StatusImmediateRemoval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.categoryType, tt.daysToRemoval))
		})
	}
}

func TestSnackWithBufferPastRemoval(t *testing.T) {
	today := date(2026, 8, 31)
	exp := today.AddDate(0, 0, 5)

	removal := RemovalDate(exp, Rule{NeedBuffer: true}, 7)
	days := DaysToRemoval(removal, today)

	assert.Equal(t, today.AddDate(0, 0, -2), removal)
	assert.Equal(t, -2, days)
	assert.Equal(t, StatusImmediateRemoval, Classify(CategoryTypeSnack, days))
}

func TestCoffeePastRemovalIsGiftable(t *testing.T) {
	today := date(2026, 8, 31)
	exp := today.AddDate(0, 0, 1)

	removal := RemovalDate(exp, Rule{NeedBuffer: true}, 3)
	days := DaysToRemoval(removal, today)

	assert.Equal(t, -2, days)
	assert.Equal(t, StatusStopSellGiftable, Classify(CategoryTypeCoffee, days))
}

func TestMaterialWithoutBufferStaysOnExpiry(t *testing.T) {
	today := date(2026, 8, 31)
	exp := today.AddDate(0, 0, 5)

	removal := RemovalDate(exp, Rule{NeedBuffer: false}, 7)
	days := DaysToRemoval(removal, today)

	assert.Equal(t, exp, removal)
	assert.Equal(t, 5, days)
	assert.Equal(t, StatusUrgent, Classify(CategoryTypeMaterial, days))
}
