package entities

import (
	"github.com/google/uuid"
)

const (
	AttemptStatusPending    = "pending"
	AttemptStatusProcessing = "processing"
	AttemptStatusCompleted  = "completed"
	AttemptStatusFailed     = "failed"
)

// GenerationAttempt is an audit record of one call into the image generator.
// It is written by fulfillment flows and never read back into business logic.
type GenerationAttempt struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID  `json:"user_id"`
	LogoID       *uuid.UUID `json:"logo_id,omitempty"`
	PurchaseID   *uuid.UUID `json:"purchase_id,omitempty"`
	Prompt       string     `gorm:"type:text" json:"prompt"`
	RawResponse  string     `gorm:"type:text" json:"raw_response,omitempty"`
	Status       string     `gorm:"default:pending" json:"status"`
	ErrorMessage string     `gorm:"type:text" json:"error_message,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
