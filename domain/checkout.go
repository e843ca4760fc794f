package domain

import (
	"errors"

	"LogoForge/entities"
)

var (
	MessageSuccessCreateCheckout = "checkout session created successfully"
	MessageSuccessVerifyPayment  = "payment verification completed"
	MessageSuccessGetPurchases   = "purchases retrieved successfully"
	MessageSuccessGetStats       = "dashboard stats retrieved successfully"

	MessageFailedCreateCheckout = "failed to create checkout session"
	MessageFailedVerifyPayment  = "failed to verify payment"
	MessageFailedGetPurchases   = "failed to retrieve purchases"
	MessageFailedWebhook        = "failed to process payment notification"

	ErrCompanyNameRequired = errors.New("company name is required")
	ErrPurchaseNotFound    = errors.New("purchase not found")
	ErrPaymentFailed       = errors.New("payment processing failed")
	ErrInvalidSignature    = errors.New("invalid notification signature")
)

type (
	CreateCheckoutRequest struct {
		ProductID string          `json:"product_id" validate:"required,oneof=basic premium brandkit"`
		LogoData  BrandInputsData `json:"logo_data" validate:"required"`
	}

	BrandInputsData struct {
		CompanyName string `json:"company_name" validate:"required"`
		Tagline     string `json:"tagline,omitempty"`
		Industry    string `json:"industry,omitempty"`
		Style       string `json:"style,omitempty"`
		ColorScheme string `json:"color_scheme,omitempty"`
	}

	CreateCheckoutResponse struct {
		CheckoutURL string `json:"checkout_url"`
		PurchaseID  string `json:"purchase_id"`
	}

	VerifyPaymentResponse struct {
		Success   bool             `json:"success"`
		Status    string           `json:"status"`
		ProductID string           `json:"product_id,omitempty"`
		LogoData  *BrandInputsData `json:"logo_data,omitempty"`
	}

	PurchaseResponse struct {
		ID          string               `json:"id"`
		PackageType string               `json:"package_type"`
		Amount      string               `json:"amount"`
		Currency    string               `json:"currency"`
		Status      string               `json:"status"`
		BrandInputs entities.BrandInputs `json:"brand_inputs"`
		CreatedAt   string               `json:"created_at"`
	}

	DashboardStatsResponse struct {
		TotalLogos     int64 `json:"total_logos"`
		TotalBrandKits int64 `json:"total_brand_kits"`
		TotalPurchases int64 `json:"total_purchases"`
	}
)

func (b BrandInputsData) ToEntity() entities.BrandInputs {
	return entities.BrandInputs{
		CompanyName: b.CompanyName,
		Tagline:     b.Tagline,
		Industry:    b.Industry,
		Style:       b.Style,
		ColorScheme: b.ColorScheme,
	}
}
