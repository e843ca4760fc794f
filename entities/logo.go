package entities

import (
	"github.com/google/uuid"
)

const (
	LogoStatusPending    = "pending"
	LogoStatusGenerating = "generating"
	LogoStatusCompleted  = "completed"
	LogoStatusFailed     = "failed"
)

type Logo struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	CompanyName    string     `json:"company_name"`
	Tagline        string     `json:"tagline,omitempty"`
	Industry       string     `json:"industry,omitempty"`
	Style          string     `json:"style,omitempty"`
	ColorScheme    string     `json:"color_scheme,omitempty"`
	Prompt         string     `gorm:"type:text" json:"prompt"`
	ImageURL       string     `gorm:"type:text" json:"image_url"`
	ImageKey       string     `json:"image_key"`
	Format         string     `gorm:"default:png" json:"format"` // png, jpeg
	HasTransparent bool       `gorm:"default:true" json:"has_transparent_bg"`
	VariationIndex int        `gorm:"default:0" json:"variation_index"`
	ParentLogoID   *uuid.UUID `json:"parent_logo_id,omitempty"`
	Status         string     `gorm:"default:pending" json:"status"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
