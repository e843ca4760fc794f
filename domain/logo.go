package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessPreviewLogos   = "logo previews generated successfully"
	MessageSuccessGenerateLogos  = "logos generated successfully"
	MessageSuccessRegenerateLogo = "logo regenerated successfully"
	MessageSuccessGetLogos       = "logos retrieved successfully"
	MessageSuccessGetLogo        = "logo retrieved successfully"

	MessageFailedPreviewLogos   = "failed to generate logo previews"
	MessageFailedGenerateLogos  = "failed to generate logos"
	MessageFailedRegenerateLogo = "failed to regenerate logo"
	MessageFailedGetLogos       = "failed to retrieve logos"
	MessageFailedGetLogo        = "failed to retrieve logo"

	ErrLogoNotFound     = errors.New("logo not found")
	ErrGenerationFailed = errors.New("image generation failed")
)

type (
	PreviewLogoRequest struct {
		CompanyName string `json:"company_name" validate:"required"`
		Tagline     string `json:"tagline,omitempty"`
		Industry    string `json:"industry,omitempty"`
		Style       string `json:"style,omitempty"`
		ColorScheme string `json:"color_scheme,omitempty"`
	}

	LogoPreview struct {
		Index    int    `json:"index"`
		ImageURL string `json:"image_url"`
		Prompt   string `json:"prompt"`
	}

	GenerateLogoRequest struct {
		PurchaseID     string `json:"purchase_id,omitempty"`
		CompanyName    string `json:"company_name" validate:"required"`
		Tagline        string `json:"tagline,omitempty"`
		Industry       string `json:"industry,omitempty"`
		Style          string `json:"style,omitempty"`
		ColorScheme    string `json:"color_scheme,omitempty"`
		VariationCount int    `json:"variation_count" validate:"omitempty,min=1,max=3"`
	}

	RegenerateLogoRequest struct {
		Style string `json:"style,omitempty"`
	}

	LogoResponse struct {
		ID             string    `json:"id"`
		CompanyName    string    `json:"company_name"`
		Tagline        string    `json:"tagline,omitempty"`
		Industry       string    `json:"industry,omitempty"`
		Style          string    `json:"style,omitempty"`
		ColorScheme    string    `json:"color_scheme,omitempty"`
		Prompt         string    `json:"prompt"`
		ImageURL       string    `json:"image_url"`
		ImageKey       string    `json:"image_key"`
		Format         string    `json:"format"`
		VariationIndex int       `json:"variation_index"`
		Status         string    `json:"status"`
		CreatedAt      time.Time `json:"created_at"`
	}

	// GeneratedLogo is one image produced by the generation gateway before
	// it is persisted.
	GeneratedLogo struct {
		ImageURL string `json:"image_url"`
		ImageKey string `json:"image_key"`
		Prompt   string `json:"prompt"`
	}
)
