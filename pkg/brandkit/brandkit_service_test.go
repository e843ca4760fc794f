package brandkit

import (
	"context"
	"errors"
	"testing"

	"LogoForge/domain"
	"LogoForge/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memoryBrandKitRepository struct {
	kits map[uuid.UUID]*entities.BrandKit
}

func newMemoryBrandKitRepository() *memoryBrandKitRepository {
	return &memoryBrandKitRepository{kits: make(map[uuid.UUID]*entities.BrandKit)}
}

func (m *memoryBrandKitRepository) CreateBrandKit(ctx context.Context, kit *entities.BrandKit) error {
	m.kits[kit.ID] = kit
	return nil
}

func (m *memoryBrandKitRepository) UpdateBrandKit(ctx context.Context, kit *entities.BrandKit) error {
	m.kits[kit.ID] = kit
	return nil
}

func (m *memoryBrandKitRepository) GetBrandKitByID(ctx context.Context, id string) (*entities.BrandKit, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if kit, ok := m.kits[parsed]; ok {
		return kit, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryBrandKitRepository) GetUserBrandKits(ctx context.Context, userID string) ([]*entities.BrandKit, error) {
	var result []*entities.BrandKit
	for _, kit := range m.kits {
		if kit.UserID.String() == userID {
			result = append(result, kit)
		}
	}
	return result, nil
}

func (m *memoryBrandKitRepository) CountUserBrandKits(ctx context.Context, userID string) (int64, error) {
	kits, _ := m.GetUserBrandKits(ctx, userID)
	return int64(len(kits)), nil
}

func (m *memoryBrandKitRepository) singleKit(t *testing.T) *entities.BrandKit {
	t.Helper()
	require.Len(t, m.kits, 1)
	for _, kit := range m.kits {
		return kit
	}
	return nil
}

type stubLogoRepository struct {
	logos map[uuid.UUID]*entities.Logo
}

func (s *stubLogoRepository) CreateLogo(ctx context.Context, logo *entities.Logo) error { return nil }
func (s *stubLogoRepository) UpdateLogo(ctx context.Context, logo *entities.Logo) error { return nil }

func (s *stubLogoRepository) GetLogoByID(ctx context.Context, id string) (*entities.Logo, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	if logo, ok := s.logos[parsed]; ok {
		return logo, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubLogoRepository) GetUserLogos(ctx context.Context, userID string) ([]*entities.Logo, error) {
	return nil, nil
}

func (s *stubLogoRepository) CountUserLogos(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (s *stubLogoRepository) CreateAttempt(ctx context.Context, attempt *entities.GenerationAttempt) error {
	return nil
}

func (s *stubLogoRepository) UpdateAttempt(ctx context.Context, attempt *entities.GenerationAttempt) error {
	return nil
}

type stubGenerationGateway struct {
	assetsErr   error
	companyName string
	colorScheme string
}

func (s *stubGenerationGateway) GenerateOne(ctx context.Context, inputs entities.BrandInputs) (*domain.GeneratedLogo, error) {
	return nil, errors.New("not used")
}

func (s *stubGenerationGateway) GenerateMany(ctx context.Context, inputs entities.BrandInputs, count int) ([]*domain.GeneratedLogo, error) {
	return nil, errors.New("not used")
}

func (s *stubGenerationGateway) GenerateBrandKitAssets(ctx context.Context, companyName string, colorScheme string) (*domain.BrandKitAssets, error) {
	s.companyName = companyName
	s.colorScheme = colorScheme
	if s.assetsErr != nil {
		return nil, s.assetsErr
	}
	ref := func(slot string) domain.AssetRef {
		return domain.AssetRef{
			URL: "https://images.example.com/" + slot + ".png",
			Key: "brandkits/" + slot + ".png",
		}
	}
	return &domain.BrandKitAssets{
		EmailSignature:    ref("email-signature"),
		BusinessCardFront: ref("card-front"),
		BusinessCardBack:  ref("card-back"),
		Letterhead:        ref("letterhead"),
		Folder:            ref("folder"),
	}, nil
}

func newSourceLogo(owner uuid.UUID) *entities.Logo {
	return &entities.Logo{
		ID:          uuid.New(),
		UserID:      owner,
		CompanyName: "Acme Corp",
		ColorScheme: "navy and gold",
	}
}

func TestGenerateBrandKit(t *testing.T) {
	owner := uuid.New()
	sourceLogo := newSourceLogo(owner)

	kitRepo := newMemoryBrandKitRepository()
	logoRepo := &stubLogoRepository{logos: map[uuid.UUID]*entities.Logo{sourceLogo.ID: sourceLogo}}
	gateway := &stubGenerationGateway{}
	service := NewBrandKitService(kitRepo, logoRepo, gateway)

	res, err := service.Generate(context.Background(), domain.GenerateBrandKitRequest{
		LogoID: sourceLogo.ID.String(),
		Name:   "Acme Identity",
	}, owner.String())
	require.NoError(t, err)

	assert.Equal(t, entities.BrandKitStatusCompleted, res.Status)
	assert.Equal(t, sourceLogo.ID.String(), res.LogoID)
	assert.Equal(t, "Acme Identity", res.Name)
	assert.NotEmpty(t, res.EmailSignature.URL)
	assert.NotEmpty(t, res.BusinessCardFront.URL)
	assert.NotEmpty(t, res.BusinessCardBack.URL)
	assert.NotEmpty(t, res.Letterhead.URL)
	assert.NotEmpty(t, res.Folder.URL)

	// the source logo's branding drives the asset prompts
	assert.Equal(t, "Acme Corp", gateway.companyName)
	assert.Equal(t, "navy and gold", gateway.colorScheme)

	kit := kitRepo.singleKit(t)
	assert.Equal(t, entities.BrandKitStatusCompleted, kit.Status)
}

func TestGenerateBrandKitFailureLeavesNoAssets(t *testing.T) {
	owner := uuid.New()
	sourceLogo := newSourceLogo(owner)

	kitRepo := newMemoryBrandKitRepository()
	logoRepo := &stubLogoRepository{logos: map[uuid.UUID]*entities.Logo{sourceLogo.ID: sourceLogo}}
	service := NewBrandKitService(kitRepo, logoRepo, &stubGenerationGateway{assetsErr: errors.New("upstream down")})

	_, err := service.Generate(context.Background(), domain.GenerateBrandKitRequest{
		LogoID: sourceLogo.ID.String(),
		Name:   "Acme Identity",
	}, owner.String())
	assert.ErrorIs(t, err, domain.ErrBrandKitGenerationFail)

	// the kit row survives as failed, with every asset slot empty
	kit := kitRepo.singleKit(t)
	assert.Equal(t, entities.BrandKitStatusFailed, kit.Status)
	assert.Empty(t, kit.EmailSignatureURL)
	assert.Empty(t, kit.BusinessCardFrontURL)
	assert.Empty(t, kit.BusinessCardBackURL)
	assert.Empty(t, kit.LetterheadURL)
	assert.Empty(t, kit.FolderURL)
}

func TestGenerateBrandKitForeignLogo(t *testing.T) {
	sourceLogo := newSourceLogo(uuid.New())

	kitRepo := newMemoryBrandKitRepository()
	logoRepo := &stubLogoRepository{logos: map[uuid.UUID]*entities.Logo{sourceLogo.ID: sourceLogo}}
	service := NewBrandKitService(kitRepo, logoRepo, &stubGenerationGateway{})

	_, err := service.Generate(context.Background(), domain.GenerateBrandKitRequest{
		LogoID: sourceLogo.ID.String(),
		Name:   "Acme Identity",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrLogoNotFound)
	assert.Empty(t, kitRepo.kits)
}

func TestGenerateBrandKitMissingLogo(t *testing.T) {
	service := NewBrandKitService(
		newMemoryBrandKitRepository(),
		&stubLogoRepository{logos: map[uuid.UUID]*entities.Logo{}},
		&stubGenerationGateway{},
	)

	_, err := service.Generate(context.Background(), domain.GenerateBrandKitRequest{
		LogoID: uuid.New().String(),
		Name:   "Acme Identity",
	}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrLogoNotFound)
}

func TestGetBrandKitByIDEnforcesOwnership(t *testing.T) {
	owner := uuid.New()
	kit := &entities.BrandKit{
		ID:     uuid.New(),
		UserID: owner,
		LogoID: uuid.New(),
		Name:   "Acme Identity",
		Status: entities.BrandKitStatusCompleted,
	}

	kitRepo := newMemoryBrandKitRepository()
	kitRepo.kits[kit.ID] = kit
	service := NewBrandKitService(kitRepo, &stubLogoRepository{}, &stubGenerationGateway{})

	res, err := service.GetBrandKitByID(context.Background(), kit.ID.String(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, "Acme Identity", res.Name)

	_, err = service.GetBrandKitByID(context.Background(), kit.ID.String(), uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrBrandKitNotFound)
}

func TestGetUserBrandKits(t *testing.T) {
	owner := uuid.New()
	kitRepo := newMemoryBrandKitRepository()
	for i := 0; i < 2; i++ {
		kit := &entities.BrandKit{ID: uuid.New(), UserID: owner, LogoID: uuid.New()}
		kitRepo.kits[kit.ID] = kit
	}
	other := &entities.BrandKit{ID: uuid.New(), UserID: uuid.New(), LogoID: uuid.New()}
	kitRepo.kits[other.ID] = other

	service := NewBrandKitService(kitRepo, &stubLogoRepository{}, &stubGenerationGateway{})

	kits, err := service.GetUserBrandKits(context.Background(), owner.String())
	require.NoError(t, err)
	assert.Len(t, kits, 2)
}
