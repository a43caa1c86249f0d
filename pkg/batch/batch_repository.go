package batch

import (
	"context"

	"FreshStock-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BatchRepository interface {
		// Transaction runs fn against a repository bound to one database
		// transaction. Any error from fn rolls the whole unit back.
		Transaction(ctx context.Context, fn func(repo BatchRepository) error) error

		GetBatchByID(ctx context.Context, id string) (*entities.Batch, error)
		CreateBatch(ctx context.Context, batch *entities.Batch) error
		SaveBatch(ctx context.Context, batch *entities.Batch) error
		DeleteBatch(ctx context.Context, batch *entities.Batch) error

		GetProductBySKU(ctx context.Context, sku string) (*entities.Product, error)
		CreateProduct(ctx context.Context, product *entities.Product) error

		GetSessionByID(ctx context.Context, id uuid.UUID) (*entities.InventorySession, error)
		GetSessionByKey(ctx context.Context, key string) (*entities.InventorySession, error)
		CreateSession(ctx context.Context, session *entities.InventorySession) error
		AddSessionItems(ctx context.Context, sessionID uuid.UUID, delta int) error

		CreateAuditEntry(ctx context.Context, entry *entities.AuditLog) error
	}

	batchRepository struct {
		db *gorm.DB
	}
)

func NewBatchRepository(db *gorm.DB) BatchRepository {
	return &batchRepository{db: db}
}

func (r *batchRepository) Transaction(ctx context.Context, fn func(repo BatchRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&batchRepository{db: tx})
	})
}

func (r *batchRepository) GetBatchByID(ctx context.Context, id string) (*entities.Batch, error) {
	var batch entities.Batch
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", id).
		First(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *batchRepository) CreateBatch(ctx context.Context, batch *entities.Batch) error {
	return r.db.WithContext(ctx).Create(batch).Error
}

func (r *batchRepository) SaveBatch(ctx context.Context, batch *entities.Batch) error {
	return r.db.WithContext(ctx).Save(batch).Error
}

// DeleteBatch hard-removes the row. The audit entry written alongside is the
// only trace left behind.
func (r *batchRepository) DeleteBatch(ctx context.Context, batch *entities.Batch) error {
	return r.db.WithContext(ctx).Delete(batch).Error
}

func (r *batchRepository) GetProductBySKU(ctx context.Context, sku string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *batchRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *batchRepository) GetSessionByID(ctx context.Context, id uuid.UUID) (*entities.InventorySession, error) {
	var session entities.InventorySession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *batchRepository) GetSessionByKey(ctx context.Context, key string) (*entities.InventorySession, error) {
	var session entities.InventorySession
	if err := r.db.WithContext(ctx).Where("session_key = ?", key).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *batchRepository) CreateSession(ctx context.Context, session *entities.InventorySession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *batchRepository) AddSessionItems(ctx context.Context, sessionID uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&entities.InventorySession{}).
		Where("id = ?", sessionID).
		Update("item_count", gorm.Expr("item_count + ?", delta)).Error
}

func (r *batchRepository) CreateAuditEntry(ctx context.Context, entry *entities.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
