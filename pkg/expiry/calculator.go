package expiry

import (
	"time"

	"FreshStock-Backend/entities"
)

// Rule is a category's removal policy, resolved once when the category is
// loaded. A product without a category falls back to DefaultRule.
type Rule struct {
	NeedBuffer     bool
	ScrapOnRemoval bool
	AllowGift      bool
}

func DefaultRule() Rule {
	return Rule{NeedBuffer: true}
}

// RuleFromCategory flattens a category row into a Rule.
func RuleFromCategory(category *entities.Category) Rule {
	if category == nil {
		return DefaultRule()
	}
	return Rule{
		NeedBuffer:     category.NeedBuffer,
		ScrapOnRemoval: category.ScrapOnRemoval,
		AllowGift:      category.AllowGift,
	}
}

// RemovalDate returns the date after which a batch must leave saleable stock.
// The buffer only applies when the rule asks for it.
func RemovalDate(expiryDate time.Time, rule Rule, removalBufferDays int) time.Time {
	buffer := removalBufferDays
	if !rule.NeedBuffer {
		buffer = 0
	}
	return truncateToDate(expiryDate).AddDate(0, 0, -buffer)
}

// DaysToRemoval is the whole-day calendar distance from today to the removal
// date. Negative once the removal date has passed.
func DaysToRemoval(removalDate, today time.Time) int {
	return daysBetween(today, removalDate)
}

// DaysToExpiry is the plain calendar distance to the raw expiry date, with no
// buffer applied. The warning scanner uses this, not the removal date.
func DaysToExpiry(expiryDate, today time.Time) int {
	return daysBetween(today, expiryDate)
}

func daysBetween(from, to time.Time) int {
	f := truncateToDate(from)
	t := truncateToDate(to)
	return int(t.Sub(f).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
