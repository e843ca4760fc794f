package generation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"LogoForge/domain"
	"LogoForge/entities"
	"LogoForge/internal/utils/generator"

	"github.com/google/uuid"
)

type (
	// GenerationGateway wraps the external image generator with the prompt
	// conventions used for logos and brand collateral.
	GenerationGateway interface {
		GenerateOne(ctx context.Context, inputs entities.BrandInputs) (*domain.GeneratedLogo, error)
		GenerateMany(ctx context.Context, inputs entities.BrandInputs, count int) ([]*domain.GeneratedLogo, error)
		GenerateBrandKitAssets(ctx context.Context, companyName string, colorScheme string) (*domain.BrandKitAssets, error)
	}

	generationGateway struct {
		client generator.Client
	}
)

// styleVariants are the pre-defined styles used for multi-logo generation.
// The first slot is replaced by the caller's style when one is given.
var styleVariants = []string{
	"modern minimalist",
	"bold and dynamic",
	"elegant and sophisticated",
}

func NewGenerationGateway(client generator.Client) GenerationGateway {
	return &generationGateway{
		client: client,
	}
}

// BuildLogoPrompt assembles the descriptive prompt from fixed fragments.
// Empty fragments are dropped; the result is deterministic for the same
// inputs.
func BuildLogoPrompt(inputs entities.BrandInputs, transparentBackground bool) string {
	style := inputs.Style
	if style == "" {
		style = "modern and clean"
	}

	background := "on white background"
	if transparentBackground {
		background = "on transparent background"
	}

	parts := []string{
		fmt.Sprintf("Professional minimalist logo design for %q", inputs.CompanyName),
	}
	if inputs.Tagline != "" {
		parts = append(parts, fmt.Sprintf("with tagline %q", inputs.Tagline))
	}
	if inputs.Industry != "" {
		parts = append(parts, fmt.Sprintf("in the %s industry", inputs.Industry))
	}
	parts = append(parts, style+" style")
	if inputs.ColorScheme != "" {
		parts = append(parts, fmt.Sprintf("using %s colors", inputs.ColorScheme))
	}
	parts = append(parts,
		"vector-style logo",
		"centered composition",
		"high contrast",
		"professional business logo",
		background,
		"crisp text rendering",
		"scalable design",
	)

	return strings.Join(parts, ", ")
}

func (g *generationGateway) GenerateOne(ctx context.Context, inputs entities.BrandInputs) (*domain.GeneratedLogo, error) {
	prompt := BuildLogoPrompt(inputs, true)

	imageURL, err := g.client.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		return nil, domain.ErrGenerationFailed
	}

	return &domain.GeneratedLogo{
		ImageURL: imageURL,
		ImageKey: fmt.Sprintf("logos/%s.png", uuid.New().String()),
		Prompt:   prompt,
	}, nil
}

// GenerateMany runs up to three style variants sequentially. A failed
// variant is logged and skipped, so the result may hold fewer entries than
// requested. Single generation does not degrade this way.
func (g *generationGateway) GenerateMany(ctx context.Context, inputs entities.BrandInputs, count int) ([]*domain.GeneratedLogo, error) {
	if count > len(styleVariants) {
		count = len(styleVariants)
	}

	results := make([]*domain.GeneratedLogo, 0, count)
	for i := 0; i < count; i++ {
		variant := inputs
		if i > 0 || inputs.Style == "" {
			variant.Style = styleVariants[i]
		}

		logo, err := g.GenerateOne(ctx, variant)
		if err != nil {
			log.Printf("failed to generate variation %d: %v", i+1, err)
			continue
		}
		results = append(results, logo)
	}

	return results, nil
}

// GenerateBrandKitAssets produces the five collateral images sequentially.
// A kit is delivered as one indivisible bundle: any single failure aborts
// the whole call.
func (g *generationGateway) GenerateBrandKitAssets(ctx context.Context, companyName string, colorScheme string) (*domain.BrandKitAssets, error) {
	colors := colorScheme
	if colors == "" {
		colors = "professional blue and white"
	}

	emailSignature, err := g.generateAsset(ctx,
		fmt.Sprintf("Professional email signature design for %q, featuring company logo placeholder, modern layout with name, title, phone, email fields, %s color scheme, clean horizontal design, business professional style", companyName, colors),
		"email-signature")
	if err != nil {
		return nil, err
	}

	businessCardFront, err := g.generateAsset(ctx,
		fmt.Sprintf("Professional business card front design for %q, featuring logo placeholder area, company name, modern minimalist layout, %s color scheme, 3.5x2 inch standard size, premium quality design", companyName, colors),
		"card-front")
	if err != nil {
		return nil, err
	}

	businessCardBack, err := g.generateAsset(ctx,
		fmt.Sprintf("Professional business card back design for %q, contact information layout with name, title, phone, email, address fields, %s color scheme, matching front design style, clean professional layout", companyName, colors),
		"card-back")
	if err != nil {
		return nil, err
	}

	letterhead, err := g.generateAsset(ctx,
		fmt.Sprintf("Professional letterhead design for %q, A4 size, logo placeholder at top, company name header, %s color scheme, elegant border or accent design, space for letter content, footer with contact information", companyName, colors),
		"letterhead")
	if err != nil {
		return nil, err
	}

	folder, err := g.generateAsset(ctx,
		fmt.Sprintf("Professional presentation folder design for %q, corporate folder mockup, logo placement area, %s color scheme, pocket folder style, business document holder design, premium quality", companyName, colors),
		"folder")
	if err != nil {
		return nil, err
	}

	return &domain.BrandKitAssets{
		EmailSignature:    *emailSignature,
		BusinessCardFront: *businessCardFront,
		BusinessCardBack:  *businessCardBack,
		Letterhead:        *letterhead,
		Folder:            *folder,
	}, nil
}

func (g *generationGateway) generateAsset(ctx context.Context, prompt string, keyPrefix string) (*domain.AssetRef, error) {
	imageURL, err := g.client.GenerateImage(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		return nil, fmt.Errorf("failed to generate %s asset: %w", keyPrefix, domain.ErrGenerationFailed)
	}

	return &domain.AssetRef{
		URL: imageURL,
		Key: fmt.Sprintf("brandkits/%s-%s.png", uuid.New().String(), keyPrefix),
	}, nil
}
