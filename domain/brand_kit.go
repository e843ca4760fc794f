package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerateBrandKit = "brand kit generated successfully"
	MessageSuccessGetBrandKits     = "brand kits retrieved successfully"
	MessageSuccessGetBrandKit      = "brand kit retrieved successfully"

	MessageFailedGenerateBrandKit = "failed to generate brand kit"
	MessageFailedGetBrandKits     = "failed to retrieve brand kits"
	MessageFailedGetBrandKit      = "failed to retrieve brand kit"

	ErrBrandKitNotFound       = errors.New("brand kit not found")
	ErrBrandKitGenerationFail = errors.New("brand kit generation failed")
)

type (
	GenerateBrandKitRequest struct {
		LogoID string `json:"logo_id" validate:"required"`
		Name   string `json:"name" validate:"required"`
	}

	AssetRef struct {
		URL string `json:"url"`
		Key string `json:"key"`
	}

	// BrandKitAssets is the full set of collateral produced for one kit.
	// A kit is sold as one indivisible bundle: either all five assets exist
	// or the kit is failed.
	BrandKitAssets struct {
		EmailSignature    AssetRef
		BusinessCardFront AssetRef
		BusinessCardBack  AssetRef
		Letterhead        AssetRef
		Folder            AssetRef
	}

	BrandKitResponse struct {
		ID                string    `json:"id"`
		LogoID            string    `json:"logo_id"`
		Name              string    `json:"name"`
		EmailSignature    AssetRef  `json:"email_signature"`
		BusinessCardFront AssetRef  `json:"business_card_front"`
		BusinessCardBack  AssetRef  `json:"business_card_back"`
		Letterhead        AssetRef  `json:"letterhead"`
		Folder            AssetRef  `json:"folder"`
		Status            string    `json:"status"`
		CreatedAt         time.Time `json:"created_at"`
	}
)
