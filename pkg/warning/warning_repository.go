package warning

import (
	"context"
	"time"

	"FreshStock-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	WarningRepository interface {
		GetConfig(ctx context.Context) (*entities.WarningConfig, error)
		SaveConfig(ctx context.Context, cfg *entities.WarningConfig) error

		ListBatchesExpiringAfter(ctx context.Context, day time.Time) ([]*entities.Batch, error)
		ListProducts(ctx context.Context) ([]*entities.Product, error)

		HasExpiryWarningToday(ctx context.Context, productID, batchID uuid.UUID, level string, day time.Time) (bool, error)
		HasStockWarningToday(ctx context.Context, productID uuid.UUID, day time.Time) (bool, error)
		CreateWarning(ctx context.Context, warning *entities.WarningLog) error

		GetWarnings(ctx context.Context, level string, resolved bool, limit int) ([]*entities.WarningLog, error)
		GetWarningByID(ctx context.Context, id string) (*entities.WarningLog, error)
		SaveWarning(ctx context.Context, warning *entities.WarningLog) error
	}

	warningRepository struct {
		db *gorm.DB
	}
)

func NewWarningRepository(db *gorm.DB) WarningRepository {
	return &warningRepository{db: db}
}

func (r *warningRepository) GetConfig(ctx context.Context) (*entities.WarningConfig, error) {
	cfg := entities.WarningConfig{
		ID:                1,
		WarningDaysLevel1: 7,
		WarningDaysLevel2: 15,
		WarningDaysLevel3: 30,
		LowStockThreshold: 10,
	}
	if err := r.db.WithContext(ctx).
		Where(entities.WarningConfig{ID: 1}).
		FirstOrCreate(&cfg).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *warningRepository) SaveConfig(ctx context.Context, cfg *entities.WarningConfig) error {
	return r.db.WithContext(ctx).Save(cfg).Error
}

func (r *warningRepository) ListBatchesExpiringAfter(ctx context.Context, day time.Time) ([]*entities.Batch, error) {
	var batches []*entities.Batch
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("expiry_date > ?", startOfDay(day)).
		Order("expiry_date asc").
		Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *warningRepository) ListProducts(ctx context.Context) ([]*entities.Product, error) {
	var products []*entities.Product
	if err := r.db.WithContext(ctx).
		Preload("Batches").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *warningRepository) HasExpiryWarningToday(ctx context.Context, productID, batchID uuid.UUID, level string, day time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.WarningLog{}).
		Where("product_id = ? AND batch_id = ? AND warning_level = ? AND warning_type = ?",
			productID, batchID, level, TypeExpiry).
		Where("is_resolved = ?", false).
		Where("created_at >= ? AND created_at < ?", startOfDay(day), startOfDay(day).AddDate(0, 0, 1)).
		Count(&count).Error
	return count > 0, err
}

// HasStockWarningToday ignores the level on purpose: any stock warning raised
// for the product today suppresses another one.
func (r *warningRepository) HasStockWarningToday(ctx context.Context, productID uuid.UUID, day time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.WarningLog{}).
		Where("product_id = ? AND warning_type = ?", productID, TypeStock).
		Where("is_resolved = ?", false).
		Where("created_at >= ? AND created_at < ?", startOfDay(day), startOfDay(day).AddDate(0, 0, 1)).
		Count(&count).Error
	return count > 0, err
}

func (r *warningRepository) CreateWarning(ctx context.Context, warning *entities.WarningLog) error {
	return r.db.WithContext(ctx).Create(warning).Error
}

func (r *warningRepository) GetWarnings(ctx context.Context, level string, resolved bool, limit int) ([]*entities.WarningLog, error) {
	query := r.db.WithContext(ctx).
		Preload("Product").
		Where("is_resolved = ?", resolved)

	if level != "" {
		query = query.Where("warning_level = ?", level)
	}

	var warnings []*entities.WarningLog
	if err := query.Order("created_at desc").Limit(limit).Find(&warnings).Error; err != nil {
		return nil, err
	}
	return warnings, nil
}

func (r *warningRepository) GetWarningByID(ctx context.Context, id string) (*entities.WarningLog, error) {
	var warning entities.WarningLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&warning).Error; err != nil {
		return nil, err
	}
	return &warning, nil
}

func (r *warningRepository) SaveWarning(ctx context.Context, warning *entities.WarningLog) error {
	return r.db.WithContext(ctx).Save(warning).Error
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
