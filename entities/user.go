package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	Password     string    `json:"-"`
	Role         string    `gorm:"default:user" json:"role"` // user, admin
	ProfileImage string    `json:"profile_image,omitempty"`
	LastSignedIn time.Time `json:"last_signed_in"`

	Timestamp
}
