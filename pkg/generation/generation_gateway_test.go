package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"LogoForge/domain"
	"LogoForge/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeneratorClient struct {
	calls   int
	prompts []string
	// failOn holds 1-based call numbers that should fail.
	failOn map[int]bool
}

func (f *fakeGeneratorClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.failOn[f.calls] {
		return "", errors.New("upstream error")
	}
	return fmt.Sprintf("https://images.example.com/%d.png", f.calls), nil
}

func TestBuildLogoPrompt(t *testing.T) {
	inputs := entities.BrandInputs{
		CompanyName: "Acme Corp",
		Tagline:     "We build things",
		Industry:    "construction",
		Style:       "bold",
		ColorScheme: "red and black",
	}

	prompt := BuildLogoPrompt(inputs, true)

	assert.True(t, strings.HasPrefix(prompt, `Professional minimalist logo design for "Acme Corp"`))
	assert.Contains(t, prompt, `with tagline "We build things"`)
	assert.Contains(t, prompt, "in the construction industry")
	assert.Contains(t, prompt, "bold style")
	assert.Contains(t, prompt, "using red and black colors")
	assert.Contains(t, prompt, "on transparent background")

	// tagline comes before industry, style before colors
	assert.Less(t, strings.Index(prompt, "tagline"), strings.Index(prompt, "industry"))
	assert.Less(t, strings.Index(prompt, "bold style"), strings.Index(prompt, "colors"))
}

func TestBuildLogoPromptDefaults(t *testing.T) {
	prompt := BuildLogoPrompt(entities.BrandInputs{CompanyName: "Acme"}, false)

	assert.Contains(t, prompt, "modern and clean style")
	assert.Contains(t, prompt, "on white background")
	assert.NotContains(t, prompt, "tagline")
	assert.NotContains(t, prompt, "industry")
	assert.NotContains(t, prompt, "colors,")
}

func TestGenerateOne(t *testing.T) {
	client := &fakeGeneratorClient{}
	gateway := NewGenerationGateway(client)

	logo, err := gateway.GenerateOne(context.Background(), entities.BrandInputs{CompanyName: "Acme"})
	require.NoError(t, err)

	assert.Equal(t, "https://images.example.com/1.png", logo.ImageURL)
	assert.True(t, strings.HasPrefix(logo.ImageKey, "logos/"))
	assert.True(t, strings.HasSuffix(logo.ImageKey, ".png"))
	assert.NotEmpty(t, logo.Prompt)
}

func TestGenerateManyUsesStyleVariants(t *testing.T) {
	client := &fakeGeneratorClient{}
	gateway := NewGenerationGateway(client)

	results, err := gateway.GenerateMany(context.Background(), entities.BrandInputs{CompanyName: "Acme"}, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Contains(t, client.prompts[0], "modern minimalist style")
	assert.Contains(t, client.prompts[1], "bold and dynamic style")
	assert.Contains(t, client.prompts[2], "elegant and sophisticated style")
}

func TestGenerateManyKeepsCallerStyleForFirstVariant(t *testing.T) {
	client := &fakeGeneratorClient{}
	gateway := NewGenerationGateway(client)

	_, err := gateway.GenerateMany(context.Background(), entities.BrandInputs{
		CompanyName: "Acme",
		Style:       "art deco",
	}, 2)
	require.NoError(t, err)

	assert.Contains(t, client.prompts[0], "art deco style")
	assert.Contains(t, client.prompts[1], "bold and dynamic style")
}

func TestGenerateManyDegradesOnPartialFailure(t *testing.T) {
	client := &fakeGeneratorClient{failOn: map[int]bool{2: true}}
	gateway := NewGenerationGateway(client)

	results, err := gateway.GenerateMany(context.Background(), entities.BrandInputs{CompanyName: "Acme"}, 3)
	require.NoError(t, err)

	// the failed variant is skipped, the other two survive
	require.Len(t, results, 2)
	assert.Equal(t, "https://images.example.com/1.png", results[0].ImageURL)
	assert.Equal(t, "https://images.example.com/3.png", results[1].ImageURL)
}

func TestGenerateManyCapsCount(t *testing.T) {
	client := &fakeGeneratorClient{}
	gateway := NewGenerationGateway(client)

	results, err := gateway.GenerateMany(context.Background(), entities.BrandInputs{CompanyName: "Acme"}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, 3, client.calls)
}

func TestGenerateBrandKitAssets(t *testing.T) {
	client := &fakeGeneratorClient{}
	gateway := NewGenerationGateway(client)

	assets, err := gateway.GenerateBrandKitAssets(context.Background(), "Acme Corp", "navy and gold")
	require.NoError(t, err)
	require.Equal(t, 5, client.calls)

	for _, prompt := range client.prompts {
		assert.Contains(t, prompt, `"Acme Corp"`)
		assert.Contains(t, prompt, "navy and gold")
	}
	assert.Contains(t, client.prompts[0], "email signature")
	assert.Contains(t, client.prompts[1], "business card front")
	assert.Contains(t, client.prompts[2], "business card back")
	assert.Contains(t, client.prompts[3], "letterhead")
	assert.Contains(t, client.prompts[4], "presentation folder")

	assert.True(t, strings.HasSuffix(assets.EmailSignature.Key, "-email-signature.png"))
	assert.True(t, strings.HasSuffix(assets.Folder.Key, "-folder.png"))
}

func TestGenerateBrandKitAssetsAbortsOnFailure(t *testing.T) {
	client := &fakeGeneratorClient{failOn: map[int]bool{3: true}}
	gateway := NewGenerationGateway(client)

	assets, err := gateway.GenerateBrandKitAssets(context.Background(), "Acme Corp", "")
	require.Error(t, err)
	assert.Nil(t, assets)

	// generation stops at the failed asset
	assert.Equal(t, 3, client.calls)
}

func TestGenerateBrandKitAssetsDefaultColors(t *testing.T) {
	client := &fakeGeneratorClient{}
	gateway := NewGenerationGateway(client)

	_, err := gateway.GenerateBrandKitAssets(context.Background(), "Acme", "")
	require.NoError(t, err)
	assert.Contains(t, client.prompts[0], "professional blue and white")
}

func TestGenerateOneEmptyURL(t *testing.T) {
	gateway := NewGenerationGateway(emptyURLClient{})

	_, err := gateway.GenerateOne(context.Background(), entities.BrandInputs{CompanyName: "Acme"})
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

type emptyURLClient struct{}

func (emptyURLClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return "", nil
}
