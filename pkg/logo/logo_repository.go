package logo

import (
	"context"

	"LogoForge/entities"

	"gorm.io/gorm"
)

type (
	LogoRepository interface {
		CreateLogo(ctx context.Context, logo *entities.Logo) error
		UpdateLogo(ctx context.Context, logo *entities.Logo) error
		GetLogoByID(ctx context.Context, id string) (*entities.Logo, error)
		GetUserLogos(ctx context.Context, userID string) ([]*entities.Logo, error)
		CountUserLogos(ctx context.Context, userID string) (int64, error)

		CreateAttempt(ctx context.Context, attempt *entities.GenerationAttempt) error
		UpdateAttempt(ctx context.Context, attempt *entities.GenerationAttempt) error
	}

	logoRepository struct {
		db *gorm.DB
	}
)

func NewLogoRepository(db *gorm.DB) LogoRepository {
	return &logoRepository{
		db: db,
	}
}

func (r *logoRepository) CreateLogo(ctx context.Context, logo *entities.Logo) error {
	return r.db.WithContext(ctx).Create(logo).Error
}

func (r *logoRepository) UpdateLogo(ctx context.Context, logo *entities.Logo) error {
	return r.db.WithContext(ctx).Save(logo).Error
}

func (r *logoRepository) GetLogoByID(ctx context.Context, id string) (*entities.Logo, error) {
	var logo entities.Logo
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&logo).Error; err != nil {
		return nil, err
	}
	return &logo, nil
}

func (r *logoRepository) GetUserLogos(ctx context.Context, userID string) ([]*entities.Logo, error) {
	var logos []*entities.Logo
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&logos).Error; err != nil {
		return nil, err
	}
	return logos, nil
}

func (r *logoRepository) CountUserLogos(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Logo{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *logoRepository) CreateAttempt(ctx context.Context, attempt *entities.GenerationAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *logoRepository) UpdateAttempt(ctx context.Context, attempt *entities.GenerationAttempt) error {
	return r.db.WithContext(ctx).Save(attempt).Error
}
