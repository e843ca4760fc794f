package product

import (
	"testing"

	"LogoForge/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProducts(t *testing.T) {
	service := NewProductService()

	products := service.GetProducts()
	require.Len(t, products, 3)

	assert.Equal(t, domain.PackageBasic, products[0].ID)
	assert.Equal(t, domain.PackagePremium, products[1].ID)
	assert.Equal(t, domain.PackageBrandKit, products[2].ID)

	assert.Equal(t, 500, products[0].Price)
	assert.Equal(t, 900, products[1].Price)
	assert.Equal(t, 1900, products[2].Price)

	assert.Equal(t, "$5", products[0].FormattedPrice)
	assert.Equal(t, "$9", products[1].FormattedPrice)
	assert.Equal(t, "$19", products[2].FormattedPrice)
}

func TestGetProductByID(t *testing.T) {
	service := NewProductService()

	premium, err := service.GetProductByID(domain.PackagePremium)
	require.NoError(t, err)
	assert.Equal(t, "Premium Logo", premium.Name)
	assert.Equal(t, 3, premium.LogoCount)
	assert.Equal(t, -1, premium.Regenerations)
	assert.False(t, premium.IncludesBrandKit)

	brandKit, err := service.GetProductByID(domain.PackageBrandKit)
	require.NoError(t, err)
	assert.True(t, brandKit.IncludesBrandKit)

	_, err = service.GetProductByID("enterprise")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$5", FormatPrice(500))
	assert.Equal(t, "$19", FormatPrice(1900))
	assert.Equal(t, "$0", FormatPrice(0))
}
