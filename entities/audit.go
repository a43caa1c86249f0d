package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog is append-only. One row per batch touched by a mutation, written in
// the same transaction as the mutation itself.
type AuditLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SessionID *uuid.UUID     `json:"session_id,omitempty"`
	BatchID   uuid.UUID      `gorm:"not null" json:"batch_id"`
	Action    string         `gorm:"type:varchar(20);not null;index" json:"action"` // "add", "update", "delete"
	OldValue  datatypes.JSON `gorm:"type:jsonb" json:"old_value,omitempty"`
	NewValue  datatypes.JSON `gorm:"type:jsonb" json:"new_value,omitempty"`
	UserID    uuid.UUID      `gorm:"not null" json:"user_id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID"`
}
