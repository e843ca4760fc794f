package entities

import (
	"github.com/google/uuid"
)

const (
	BrandKitStatusPending    = "pending"
	BrandKitStatusGenerating = "generating"
	BrandKitStatusCompleted  = "completed"
	BrandKitStatusFailed     = "failed"
)

// BrandKit references its source Logo but does not own it: deleting a kit
// leaves the logo untouched.
type BrandKit struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	LogoID uuid.UUID `json:"logo_id"`
	Name   string    `json:"name"`

	EmailSignatureURL    string `gorm:"type:text" json:"email_signature_url,omitempty"`
	EmailSignatureKey    string `json:"email_signature_key,omitempty"`
	BusinessCardFrontURL string `gorm:"type:text" json:"business_card_front_url,omitempty"`
	BusinessCardFrontKey string `json:"business_card_front_key,omitempty"`
	BusinessCardBackURL  string `gorm:"type:text" json:"business_card_back_url,omitempty"`
	BusinessCardBackKey  string `json:"business_card_back_key,omitempty"`
	LetterheadURL        string `gorm:"type:text" json:"letterhead_url,omitempty"`
	LetterheadKey        string `json:"letterhead_key,omitempty"`
	FolderURL            string `gorm:"type:text" json:"folder_url,omitempty"`
	FolderKey            string `json:"folder_key,omitempty"`

	Status string `gorm:"default:pending" json:"status"`

	User *User `gorm:"foreignKey:UserID"`
	Logo *Logo `gorm:"foreignKey:LogoID"`
	Timestamp
}
