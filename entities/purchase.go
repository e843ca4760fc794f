package entities

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusFailed    = "failed"
	PurchaseStatusRefunded  = "refunded"
)

// BrandInputs captures the brand parameters supplied at checkout time so
// fulfillment can run without asking the user again.
type BrandInputs struct {
	CompanyName string `json:"company_name"`
	Tagline     string `json:"tagline,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Style       string `json:"style,omitempty"`
	ColorScheme string `json:"color_scheme,omitempty"`
}

func (b BrandInputs) Value() (driver.Value, error) {
	return json.Marshal(b)
}

func (b *BrandInputs) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("unsupported type for brand inputs column")
		}
		bytes = []byte(s)
	}
	return json.Unmarshal(bytes, b)
}

type Purchase struct {
	ID            uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID   `json:"user_id"`
	PackageType   string      `json:"package_type"` // basic, premium, brandkit
	Amount        string      `gorm:"type:decimal(10,2)" json:"amount"`
	Currency      string      `gorm:"default:USD" json:"currency"`
	SessionID     *string     `gorm:"uniqueIndex" json:"session_id,omitempty"`
	TransactionID *string     `json:"transaction_id,omitempty"`
	Status        string      `gorm:"default:pending" json:"status"`
	LogoID        *uuid.UUID  `json:"logo_id,omitempty"`
	BrandKitID    *uuid.UUID  `json:"brand_kit_id,omitempty"`
	BrandInputs   BrandInputs `gorm:"type:jsonb" json:"brand_inputs"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
