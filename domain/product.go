package domain

import (
	"errors"
)

const (
	PackageBasic    = "basic"
	PackagePremium  = "premium"
	PackageBrandKit = "brandkit"
)

var (
	MessageSuccessGetProducts = "products retrieved successfully"
	MessageSuccessGetProduct  = "product retrieved successfully"

	MessageFailedGetProduct = "failed to retrieve product"

	ErrProductNotFound = errors.New("product not found")
)

type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Price            int      `json:"price"` // integer cents
	Currency         string   `json:"currency"`
	FormattedPrice   string   `json:"formatted_price"`
	Features         []string `json:"features"`
	LogoCount        int      `json:"logo_count"`
	Regenerations    int      `json:"regenerations"` // -1 = unlimited
	IncludesBrandKit bool     `json:"includes_brand_kit"`
}
