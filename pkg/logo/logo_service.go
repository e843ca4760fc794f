package logo

import (
	"context"
	"errors"
	"fmt"

	"LogoForge/domain"
	"LogoForge/entities"
	"LogoForge/pkg/generation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LogoService interface {
		Preview(ctx context.Context, req domain.PreviewLogoRequest, userID string) ([]domain.LogoPreview, error)
		Generate(ctx context.Context, req domain.GenerateLogoRequest, userID string) ([]domain.LogoResponse, error)
		Regenerate(ctx context.Context, logoID string, req domain.RegenerateLogoRequest, userID string) (*domain.LogoResponse, error)
		GetUserLogos(ctx context.Context, userID string) ([]domain.LogoResponse, error)
		GetLogoByID(ctx context.Context, id string, userID string) (*domain.LogoResponse, error)
	}

	logoService struct {
		logoRepository LogoRepository
		gateway        generation.GenerationGateway
	}
)

func NewLogoService(logoRepository LogoRepository, gateway generation.GenerationGateway) LogoService {
	return &logoService{
		logoRepository: logoRepository,
		gateway:        gateway,
	}
}

// Preview generates up to three variations without persisting Logo rows.
// It backs the pre-payment preview flow.
func (s *logoService) Preview(ctx context.Context, req domain.PreviewLogoRequest, userID string) ([]domain.LogoPreview, error) {
	inputs := entities.BrandInputs{
		CompanyName: req.CompanyName,
		Tagline:     req.Tagline,
		Industry:    req.Industry,
		Style:       req.Style,
		ColorScheme: req.ColorScheme,
	}

	generated, err := s.gateway.GenerateMany(ctx, inputs, 3)
	if err != nil {
		return nil, domain.ErrGenerationFailed
	}

	previews := make([]domain.LogoPreview, 0, len(generated))
	for i, g := range generated {
		previews = append(previews, domain.LogoPreview{
			Index:    i,
			ImageURL: g.ImageURL,
			Prompt:   g.Prompt,
		})
	}
	return previews, nil
}

func (s *logoService) Generate(ctx context.Context, req domain.GenerateLogoRequest, userID string) ([]domain.LogoResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	inputs := entities.BrandInputs{
		CompanyName: req.CompanyName,
		Tagline:     req.Tagline,
		Industry:    req.Industry,
		Style:       req.Style,
		ColorScheme: req.ColorScheme,
	}

	variationCount := req.VariationCount
	if variationCount < 1 {
		variationCount = 1
	}

	// The attempt row is written before any gateway call so started-but-
	// unfinished attempts stay visible.
	attempt := &entities.GenerationAttempt{
		ID:     uuid.New(),
		UserID: userUUID,
		Prompt: fmt.Sprintf("Logo for %s", req.CompanyName),
		Status: entities.AttemptStatusProcessing,
	}
	if req.PurchaseID != "" {
		if purchaseUUID, parseErr := uuid.Parse(req.PurchaseID); parseErr == nil {
			attempt.PurchaseID = &purchaseUUID
		}
	}
	if err := s.logoRepository.CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	var generated []*domain.GeneratedLogo
	if variationCount > 1 {
		generated, err = s.gateway.GenerateMany(ctx, inputs, variationCount)
	} else {
		var one *domain.GeneratedLogo
		one, err = s.gateway.GenerateOne(ctx, inputs)
		if err == nil {
			generated = []*domain.GeneratedLogo{one}
		}
	}
	if err != nil {
		attempt.Status = entities.AttemptStatusFailed
		attempt.ErrorMessage = err.Error()
		_ = s.logoRepository.UpdateAttempt(ctx, attempt)
		return nil, domain.ErrGenerationFailed
	}

	responses := make([]domain.LogoResponse, 0, len(generated))
	var firstID *uuid.UUID
	for i, g := range generated {
		row := &entities.Logo{
			ID:             uuid.New(),
			UserID:         userUUID,
			CompanyName:    req.CompanyName,
			Tagline:        req.Tagline,
			Industry:       req.Industry,
			Style:          req.Style,
			ColorScheme:    req.ColorScheme,
			Prompt:         g.Prompt,
			ImageURL:       g.ImageURL,
			ImageKey:       g.ImageKey,
			Format:         "png",
			HasTransparent: true,
			VariationIndex: i,
			ParentLogoID:   firstID,
			Status:         entities.LogoStatusCompleted,
		}
		if i == 0 {
			firstID = &row.ID
		}
		if err := s.logoRepository.CreateLogo(ctx, row); err != nil {
			attempt.Status = entities.AttemptStatusFailed
			attempt.ErrorMessage = err.Error()
			_ = s.logoRepository.UpdateAttempt(ctx, attempt)
			return nil, err
		}
		responses = append(responses, toLogoResponse(row))
	}

	attempt.Status = entities.AttemptStatusCompleted
	if err := s.logoRepository.UpdateAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	return responses, nil
}

// Regenerate overwrites the logo's image reference and prompt in place.
// The logo id stays stable across regenerations.
func (s *logoService) Regenerate(ctx context.Context, logoID string, req domain.RegenerateLogoRequest, userID string) (*domain.LogoResponse, error) {
	existing, err := s.getOwnedLogo(ctx, logoID, userID)
	if err != nil {
		return nil, err
	}

	inputs := entities.BrandInputs{
		CompanyName: existing.CompanyName,
		Tagline:     existing.Tagline,
		Industry:    existing.Industry,
		Style:       existing.Style,
		ColorScheme: existing.ColorScheme,
	}
	if req.Style != "" {
		inputs.Style = req.Style
	}

	generated, err := s.gateway.GenerateOne(ctx, inputs)
	if err != nil {
		return nil, domain.ErrGenerationFailed
	}

	existing.ImageURL = generated.ImageURL
	existing.ImageKey = generated.ImageKey
	existing.Prompt = generated.Prompt
	if err := s.logoRepository.UpdateLogo(ctx, existing); err != nil {
		return nil, err
	}

	response := toLogoResponse(existing)
	return &response, nil
}

func (s *logoService) GetUserLogos(ctx context.Context, userID string) ([]domain.LogoResponse, error) {
	logos, err := s.logoRepository.GetUserLogos(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.LogoResponse, 0, len(logos))
	for _, l := range logos {
		responses = append(responses, toLogoResponse(l))
	}
	return responses, nil
}

func (s *logoService) GetLogoByID(ctx context.Context, id string, userID string) (*domain.LogoResponse, error) {
	existing, err := s.getOwnedLogo(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	response := toLogoResponse(existing)
	return &response, nil
}

// getOwnedLogo answers "not found" for both a missing logo and a logo owned
// by someone else, so existence is never leaked.
func (s *logoService) getOwnedLogo(ctx context.Context, id string, userID string) (*entities.Logo, error) {
	existing, err := s.logoRepository.GetLogoByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLogoNotFound
		}
		return nil, err
	}
	if existing.UserID.String() != userID {
		return nil, domain.ErrLogoNotFound
	}
	return existing, nil
}

func toLogoResponse(l *entities.Logo) domain.LogoResponse {
	return domain.LogoResponse{
		ID:             l.ID.String(),
		CompanyName:    l.CompanyName,
		Tagline:        l.Tagline,
		Industry:       l.Industry,
		Style:          l.Style,
		ColorScheme:    l.ColorScheme,
		Prompt:         l.Prompt,
		ImageURL:       l.ImageURL,
		ImageKey:       l.ImageKey,
		Format:         l.Format,
		VariationIndex: l.VariationIndex,
		Status:         l.Status,
		CreatedAt:      l.CreatedAt,
	}
}
