package product

import (
	"fmt"

	"LogoForge/domain"
)

type (
	ProductService interface {
		GetProducts() []domain.Product
		GetProductByID(id string) (domain.Product, error)
	}

	productService struct{}
)

// catalog is the fixed SKU table. Prices are integer cents.
var catalog = []domain.Product{
	{
		ID:          domain.PackageBasic,
		Name:        "Basic Logo",
		Description: "1 AI-generated logo with PNG format and commercial license",
		Price:       500,
		Currency:    "usd",
		Features: []string{
			"1 AI-generated logo",
			"PNG format (1024x1024)",
			"3 regeneration attempts",
			"Commercial license",
			"Transparent background",
		},
		LogoCount:        1,
		Regenerations:    3,
		IncludesBrandKit: false,
	},
	{
		ID:          domain.PackagePremium,
		Name:        "Premium Logo",
		Description: "3 logo variations with multiple formats and unlimited regenerations",
		Price:       900,
		Currency:    "usd",
		Features: []string{
			"3 logo variations",
			"Transparent backgrounds",
			"PNG & JPEG formats",
			"Unlimited regenerations",
			"Commercial license",
			"Full ownership rights",
		},
		LogoCount:        3,
		Regenerations:    -1,
		IncludesBrandKit: false,
	},
	{
		ID:          domain.PackageBrandKit,
		Name:        "Brand Kit",
		Description: "Complete brand identity package with logo and business materials",
		Price:       1900,
		Currency:    "usd",
		Features: []string{
			"Everything in Premium Logo",
			"Email signature template",
			"Business card (front & back)",
			"Letterhead design",
			"Folder design",
			"All formats (PNG, JPEG)",
			"Commercial license",
			"Full ownership rights",
		},
		LogoCount:        3,
		Regenerations:    -1,
		IncludesBrandKit: true,
	},
}

func NewProductService() ProductService {
	return &productService{}
}

func (s *productService) GetProducts() []domain.Product {
	products := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		p.FormattedPrice = FormatPrice(p.Price)
		products = append(products, p)
	}
	return products
}

func (s *productService) GetProductByID(id string) (domain.Product, error) {
	for _, p := range catalog {
		if p.ID == id {
			p.FormattedPrice = FormatPrice(p.Price)
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func FormatPrice(cents int) string {
	return fmt.Sprintf("$%.0f", float64(cents)/100)
}
