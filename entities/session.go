package entities

import (
	"time"

	"github.com/google/uuid"
)

// InventorySession is append-only: rows are written once when a submission
// happens and never updated apart from the running item count.
type InventorySession struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SessionKey string    `gorm:"uniqueIndex;not null" json:"session_key"`
	UserID     uuid.UUID `gorm:"not null" json:"user_id"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
