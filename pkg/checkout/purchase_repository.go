package checkout

import (
	"context"

	"LogoForge/entities"

	"gorm.io/gorm"
)

type (
	PurchaseRepository interface {
		CreatePurchase(ctx context.Context, purchase *entities.Purchase) error
		UpdatePurchase(ctx context.Context, purchase *entities.Purchase) error
		GetPurchaseByID(ctx context.Context, id string) (*entities.Purchase, error)
		GetPurchaseBySessionID(ctx context.Context, sessionID string) (*entities.Purchase, error)
		GetUserPurchases(ctx context.Context, userID string) ([]*entities.Purchase, error)
		GetCompletedPurchases(ctx context.Context, userID string) ([]*entities.Purchase, error)
		CountCompletedPurchases(ctx context.Context, userID string) (int64, error)
	}

	purchaseRepository struct {
		db *gorm.DB
	}
)

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

func (r *purchaseRepository) CreatePurchase(ctx context.Context, purchase *entities.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepository) UpdatePurchase(ctx context.Context, purchase *entities.Purchase) error {
	return r.db.WithContext(ctx).Save(purchase).Error
}

func (r *purchaseRepository) GetPurchaseByID(ctx context.Context, id string) (*entities.Purchase, error) {
	var purchase entities.Purchase
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&purchase).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) GetPurchaseBySessionID(ctx context.Context, sessionID string) (*entities.Purchase, error) {
	var purchase entities.Purchase
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&purchase).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) GetUserPurchases(ctx context.Context, userID string) ([]*entities.Purchase, error) {
	var purchases []*entities.Purchase
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) GetCompletedPurchases(ctx context.Context, userID string) ([]*entities.Purchase, error) {
	var purchases []*entities.Purchase
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, entities.PurchaseStatusCompleted).
		Order("created_at DESC").
		Find(&purchases).Error; err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) CountCompletedPurchases(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Purchase{}).
		Where("user_id = ? AND status = ?", userID, entities.PurchaseStatusCompleted).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
