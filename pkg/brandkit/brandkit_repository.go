package brandkit

import (
	"context"

	"LogoForge/entities"

	"gorm.io/gorm"
)

type (
	BrandKitRepository interface {
		CreateBrandKit(ctx context.Context, kit *entities.BrandKit) error
		UpdateBrandKit(ctx context.Context, kit *entities.BrandKit) error
		GetBrandKitByID(ctx context.Context, id string) (*entities.BrandKit, error)
		GetUserBrandKits(ctx context.Context, userID string) ([]*entities.BrandKit, error)
		CountUserBrandKits(ctx context.Context, userID string) (int64, error)
	}

	brandKitRepository struct {
		db *gorm.DB
	}
)

func NewBrandKitRepository(db *gorm.DB) BrandKitRepository {
	return &brandKitRepository{
		db: db,
	}
}

func (r *brandKitRepository) CreateBrandKit(ctx context.Context, kit *entities.BrandKit) error {
	return r.db.WithContext(ctx).Create(kit).Error
}

func (r *brandKitRepository) UpdateBrandKit(ctx context.Context, kit *entities.BrandKit) error {
	return r.db.WithContext(ctx).Save(kit).Error
}

func (r *brandKitRepository) GetBrandKitByID(ctx context.Context, id string) (*entities.BrandKit, error) {
	var kit entities.BrandKit
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&kit).Error; err != nil {
		return nil, err
	}
	return &kit, nil
}

func (r *brandKitRepository) GetUserBrandKits(ctx context.Context, userID string) ([]*entities.BrandKit, error) {
	var kits []*entities.BrandKit
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&kits).Error; err != nil {
		return nil, err
	}
	return kits, nil
}

func (r *brandKitRepository) CountUserBrandKits(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.BrandKit{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
