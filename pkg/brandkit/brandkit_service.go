package brandkit

import (
	"context"
	"errors"
	"log"

	"LogoForge/domain"
	"LogoForge/entities"
	"LogoForge/pkg/generation"
	"LogoForge/pkg/logo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BrandKitService interface {
		Generate(ctx context.Context, req domain.GenerateBrandKitRequest, userID string) (*domain.BrandKitResponse, error)
		GetUserBrandKits(ctx context.Context, userID string) ([]domain.BrandKitResponse, error)
		GetBrandKitByID(ctx context.Context, id string, userID string) (*domain.BrandKitResponse, error)
	}

	brandKitService struct {
		brandKitRepository BrandKitRepository
		logoRepository     logo.LogoRepository
		gateway            generation.GenerationGateway
	}
)

func NewBrandKitService(brandKitRepository BrandKitRepository, logoRepository logo.LogoRepository, gateway generation.GenerationGateway) BrandKitService {
	return &brandKitService{
		brandKitRepository: brandKitRepository,
		logoRepository:     logoRepository,
		gateway:            gateway,
	}
}

// Generate builds all five collateral assets for an owned logo. Asset refs
// are written only when the whole bundle succeeded; a partial kit is a
// failed kit.
func (s *brandKitService) Generate(ctx context.Context, req domain.GenerateBrandKitRequest, userID string) (*domain.BrandKitResponse, error) {
	sourceLogo, err := s.logoRepository.GetLogoByID(ctx, req.LogoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLogoNotFound
		}
		return nil, err
	}
	if sourceLogo.UserID.String() != userID {
		return nil, domain.ErrLogoNotFound
	}

	kit := &entities.BrandKit{
		ID:     uuid.New(),
		UserID: sourceLogo.UserID,
		LogoID: sourceLogo.ID,
		Name:   req.Name,
		Status: entities.BrandKitStatusGenerating,
	}
	if err := s.brandKitRepository.CreateBrandKit(ctx, kit); err != nil {
		return nil, err
	}

	assets, err := s.gateway.GenerateBrandKitAssets(ctx, sourceLogo.CompanyName, sourceLogo.ColorScheme)
	if err != nil {
		log.Printf("brand kit %s generation failed: %v", kit.ID, err)
		kit.Status = entities.BrandKitStatusFailed
		if updateErr := s.brandKitRepository.UpdateBrandKit(ctx, kit); updateErr != nil {
			log.Printf("failed to mark brand kit %s failed: %v", kit.ID, updateErr)
		}
		return nil, domain.ErrBrandKitGenerationFail
	}

	kit.EmailSignatureURL = assets.EmailSignature.URL
	kit.EmailSignatureKey = assets.EmailSignature.Key
	kit.BusinessCardFrontURL = assets.BusinessCardFront.URL
	kit.BusinessCardFrontKey = assets.BusinessCardFront.Key
	kit.BusinessCardBackURL = assets.BusinessCardBack.URL
	kit.BusinessCardBackKey = assets.BusinessCardBack.Key
	kit.LetterheadURL = assets.Letterhead.URL
	kit.LetterheadKey = assets.Letterhead.Key
	kit.FolderURL = assets.Folder.URL
	kit.FolderKey = assets.Folder.Key
	kit.Status = entities.BrandKitStatusCompleted
	if err := s.brandKitRepository.UpdateBrandKit(ctx, kit); err != nil {
		return nil, err
	}

	response := toBrandKitResponse(kit)
	return &response, nil
}

func (s *brandKitService) GetUserBrandKits(ctx context.Context, userID string) ([]domain.BrandKitResponse, error) {
	kits, err := s.brandKitRepository.GetUserBrandKits(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.BrandKitResponse, 0, len(kits))
	for _, kit := range kits {
		responses = append(responses, toBrandKitResponse(kit))
	}
	return responses, nil
}

func (s *brandKitService) GetBrandKitByID(ctx context.Context, id string, userID string) (*domain.BrandKitResponse, error) {
	kit, err := s.brandKitRepository.GetBrandKitByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBrandKitNotFound
		}
		return nil, err
	}
	if kit.UserID.String() != userID {
		return nil, domain.ErrBrandKitNotFound
	}

	response := toBrandKitResponse(kit)
	return &response, nil
}

func toBrandKitResponse(kit *entities.BrandKit) domain.BrandKitResponse {
	return domain.BrandKitResponse{
		ID:                kit.ID.String(),
		LogoID:            kit.LogoID.String(),
		Name:              kit.Name,
		EmailSignature:    domain.AssetRef{URL: kit.EmailSignatureURL, Key: kit.EmailSignatureKey},
		BusinessCardFront: domain.AssetRef{URL: kit.BusinessCardFrontURL, Key: kit.BusinessCardFrontKey},
		BusinessCardBack:  domain.AssetRef{URL: kit.BusinessCardBackURL, Key: kit.BusinessCardBackKey},
		Letterhead:        domain.AssetRef{URL: kit.LetterheadURL, Key: kit.LetterheadKey},
		Folder:            domain.AssetRef{URL: kit.FolderURL, Key: kit.FolderKey},
		Status:            kit.Status,
		CreatedAt:         kit.CreatedAt,
	}
}
