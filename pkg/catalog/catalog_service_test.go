package catalog

import (
	"context"
	"testing"
	"time"

	"FreshStock-Backend/domain"
	"FreshStock-Backend/entities"
	"FreshStock-Backend/pkg/expiry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeCatalogRepo struct {
	products   map[string]*entities.Product
	categories map[string]*entities.Category
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		products:   map[string]*entities.Product{},
		categories: map[string]*entities.Category{},
	}
}

func (r *fakeCatalogRepo) CreateProduct(ctx context.Context, product *entities.Product) error {
	r.products[product.SKU] = product
	return nil
}

func (r *fakeCatalogRepo) SaveProduct(ctx context.Context, product *entities.Product) error {
	r.products[product.SKU] = product
	return nil
}

func (r *fakeCatalogRepo) GetProductBySKU(ctx context.Context, sku string) (*entities.Product, error) {
	p, ok := r.products[sku]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeCatalogRepo) GetProducts(ctx context.Context, page, limit int) ([]*entities.Product, int64, error) {
	var out []*entities.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakeCatalogRepo) CreateCategory(ctx context.Context, category *entities.Category) error {
	r.categories[category.ID.String()] = category
	return nil
}

func (r *fakeCatalogRepo) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCatalogRepo) GetCategoryByName(ctx context.Context, name string) (*entities.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCatalogRepo) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

var admin = domain.Actor{UserID: uuid.NewString(), IsAdmin: true}

func TestCreateProductRequiresAdmin(t *testing.T) {
	repo := newFakeCatalogRepo()
	service := NewCatalogService(repo)

	_, err := service.CreateProduct(context.Background(), domain.Actor{UserID: uuid.NewString()}, domain.CreateProductRequest{
		SKU:  "KOPI-001",
		Name: "Kopi Arabika",
	})

	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	assert.Empty(t, repo.products)
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.products["KOPI-001"] = &entities.Product{ID: uuid.New(), SKU: "KOPI-001"}
	service := NewCatalogService(repo)

	_, err := service.CreateProduct(context.Background(), admin, domain.CreateProductRequest{
		SKU:  "KOPI-001",
		Name: "Kopi Arabika",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	repo := newFakeCatalogRepo()
	service := NewCatalogService(repo)

	_, err := service.CreateProduct(context.Background(), admin, domain.CreateProductRequest{
		SKU:        "KOPI-001",
		Name:       "Kopi Arabika",
		CategoryID: uuid.NewString(),
	})

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCreateCategoryDefaultsNeedBuffer(t *testing.T) {
	repo := newFakeCatalogRepo()
	service := NewCatalogService(repo)

	res, err := service.CreateCategory(context.Background(), admin, domain.CreateCategoryRequest{
		Name: "Snack",
		Type: expiry.CategoryTypeSnack,
	})

	require.NoError(t, err)
	assert.True(t, res.NeedBuffer)

	disabled := false
	res, err = service.CreateCategory(context.Background(), admin, domain.CreateCategoryRequest{
		Name:       "Material",
		Type:       expiry.CategoryTypeMaterial,
		NeedBuffer: &disabled,
	})

	require.NoError(t, err)
	assert.False(t, res.NeedBuffer)
}

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	repo := newFakeCatalogRepo()
	service := NewCatalogService(repo)

	_, err := service.CreateCategory(context.Background(), admin, domain.CreateCategoryRequest{
		Name: "Snack",
		Type: expiry.CategoryTypeSnack,
	})
	require.NoError(t, err)

	_, err = service.CreateCategory(context.Background(), admin, domain.CreateCategoryRequest{
		Name: "Snack",
		Type: expiry.CategoryTypeSnack,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)
}

func TestGetProductBatchesClassifiesAgainstBuffer(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	category := &entities.Category{
		ID:         uuid.New(),
		Name:       "Snack",
		Type:       expiry.CategoryTypeSnack,
		NeedBuffer: true,
	}
	product := &entities.Product{
		ID:            uuid.New(),
		SKU:           "SNCK-001",
		Name:          "Keripik",
		CategoryID:    &category.ID,
		Category:      category,
		RemovalBuffer: 5,
		Batches: []*entities.Batch{
			// removal 2026-03-05, already past
			{ID: uuid.New(), ExpiryDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Quantity: 4},
			// removal 2026-03-15, inside the urgent window
			{ID: uuid.New(), ExpiryDate: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), Quantity: 10},
			// removal 2026-04-25, healthy
			{ID: uuid.New(), ExpiryDate: time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), Quantity: 30},
		},
	}

	repo := newFakeCatalogRepo()
	repo.products[product.SKU] = product
	service := NewCatalogService(repo)

	res, err := service.GetProductBatches(context.Background(), "SNCK-001", today)

	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, expiry.StatusImmediateRemoval, res[0].Status)
	assert.Equal(t, -5, res[0].DaysToRemoval)
	assert.Equal(t, expiry.StatusUrgent, res[1].Status)
	assert.Equal(t, 5, res[1].DaysToRemoval)
	assert.Equal(t, expiry.StatusHealthy, res[2].Status)
}

func TestGetProductBatchesCoffeePastRemovalIsGiftable(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	category := &entities.Category{
		ID:         uuid.New(),
		Name:       "Coffee Beans",
		Type:       expiry.CategoryTypeCoffee,
		NeedBuffer: true,
		AllowGift:  true,
	}
	product := &entities.Product{
		ID:            uuid.New(),
		SKU:           "KOPI-001",
		Name:          "Kopi Arabika",
		CategoryID:    &category.ID,
		Category:      category,
		RemovalBuffer: 3,
		Batches: []*entities.Batch{
			{ID: uuid.New(), ExpiryDate: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), Quantity: 2},
		},
	}

	repo := newFakeCatalogRepo()
	repo.products[product.SKU] = product
	service := NewCatalogService(repo)

	res, err := service.GetProductBatches(context.Background(), "KOPI-001", today)

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, expiry.StatusStopSellGiftable, res[0].Status)
}

func TestGetProductBatchesNoCategoryUsesDefaultRule(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	product := &entities.Product{
		ID:            uuid.New(),
		SKU:           "MISC-001",
		Name:          "Uncategorized",
		RemovalBuffer: 2,
		Batches: []*entities.Batch{
			{ID: uuid.New(), ExpiryDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), Quantity: 1},
		},
	}

	repo := newFakeCatalogRepo()
	repo.products[product.SKU] = product
	service := NewCatalogService(repo)

	res, err := service.GetProductBatches(context.Background(), "MISC-001", today)

	require.NoError(t, err)
	require.Len(t, res, 1)
	// default rule applies the buffer: removal 2026-03-12
	assert.Equal(t, 2, res[0].DaysToRemoval)
	assert.Equal(t, expiry.StatusUrgent, res[0].Status)
}

func TestGetProductBatchesUnknownSKU(t *testing.T) {
	repo := newFakeCatalogRepo()
	service := NewCatalogService(repo)

	_, err := service.GetProductBatches(context.Background(), "NOPE-404", time.Now())

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateProductPartialFields(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.products["KOPI-001"] = &entities.Product{
		ID:             uuid.New(),
		SKU:            "KOPI-001",
		Name:           "Kopi Arabika",
		RemovalBuffer:  3,
		InventoryCycle: "weekly",
	}
	service := NewCatalogService(repo)

	buffer := 6
	err := service.UpdateProduct(context.Background(), admin, "KOPI-001", domain.UpdateProductRequest{
		RemovalBuffer: &buffer,
	})

	require.NoError(t, err)
	updated := repo.products["KOPI-001"]
	assert.Equal(t, 6, updated.RemovalBuffer)
	assert.Equal(t, "Kopi Arabika", updated.Name)
	assert.Equal(t, "weekly", updated.InventoryCycle)

	negative := -1
	err = service.UpdateProduct(context.Background(), admin, "KOPI-001", domain.UpdateProductRequest{
		RemovalBuffer: &negative,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidBuffer)
}
