package catalog

import (
	"context"
	"errors"
	"time"

	"FreshStock-Backend/domain"
	"FreshStock-Backend/entities"
	"FreshStock-Backend/pkg/expiry"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CatalogService interface {
		CreateProduct(ctx context.Context, actor domain.Actor, req domain.CreateProductRequest) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, actor domain.Actor, sku string, req domain.UpdateProductRequest) error
		GetProducts(ctx context.Context, page, limit int) ([]domain.ProductResponse, int64, error)
		CreateCategory(ctx context.Context, actor domain.Actor, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetProductBatches(ctx context.Context, sku string, today time.Time) ([]domain.BatchStatusResponse, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) CreateProduct(ctx context.Context, actor domain.Actor, req domain.CreateProductRequest) (domain.ProductResponse, error) {
	if !actor.IsAdmin {
		return domain.ProductResponse{}, domain.ErrUserNotAllowed
	}
	if req.RemovalBuffer < 0 {
		return domain.ProductResponse{}, domain.ErrInvalidBuffer
	}

	if _, err := s.catalogRepository.GetProductBySKU(ctx, req.SKU); err == nil {
		return domain.ProductResponse{}, domain.ErrDuplicateSKU
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ProductResponse{}, err
	}

	product := &entities.Product{
		ID:             uuid.New(),
		SKU:            req.SKU,
		Name:           req.Name,
		RemovalBuffer:  req.RemovalBuffer,
		InventoryCycle: req.InventoryCycle,
	}

	if req.CategoryID != "" {
		category, err := s.catalogRepository.GetCategoryByID(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ProductResponse{}, domain.ErrCategoryNotFound
			}
			return domain.ProductResponse{}, err
		}
		product.CategoryID = &category.ID
		product.Category = category
	}

	if err := s.catalogRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}

	return productResponse(product), nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, actor domain.Actor, sku string, req domain.UpdateProductRequest) error {
	if !actor.IsAdmin {
		return domain.ErrUserNotAllowed
	}

	product, err := s.catalogRepository.GetProductBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.InventoryCycle != "" {
		product.InventoryCycle = req.InventoryCycle
	}
	if req.RemovalBuffer != nil {
		if *req.RemovalBuffer < 0 {
			return domain.ErrInvalidBuffer
		}
		product.RemovalBuffer = *req.RemovalBuffer
	}
	if req.CategoryID != "" {
		category, err := s.catalogRepository.GetCategoryByID(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrCategoryNotFound
			}
			return err
		}
		product.CategoryID = &category.ID
		product.Category = category
	}

	return s.catalogRepository.SaveProduct(ctx, product)
}

func (s *catalogService) GetProducts(ctx context.Context, page, limit int) ([]domain.ProductResponse, int64, error) {
	products, count, err := s.catalogRepository.GetProducts(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, productResponse(product))
	}
	return response, count, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, actor domain.Actor, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	if !actor.IsAdmin {
		return domain.CategoryResponse{}, domain.ErrUserNotAllowed
	}

	if _, err := s.catalogRepository.GetCategoryByName(ctx, req.Name); err == nil {
		return domain.CategoryResponse{}, domain.ErrDuplicateCategory
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CategoryResponse{}, err
	}

	// Missing need_buffer defaults to true.
	needBuffer := true
	if req.NeedBuffer != nil {
		needBuffer = *req.NeedBuffer
	}

	category := &entities.Category{
		ID:             uuid.New(),
		Name:           req.Name,
		Type:           req.Type,
		NeedBuffer:     needBuffer,
		ScrapOnRemoval: req.ScrapOnRemoval,
		AllowGift:      req.AllowGift,
	}
	if err := s.catalogRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return categoryResponse(category), nil
}

func (s *catalogService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.catalogRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, categoryResponse(category))
	}
	return response, nil
}

// GetProductBatches computes the removal classification for every batch of a
// product: removal date from the category rule and buffer, then the status
// label from the fixed urgency window.
func (s *catalogService) GetProductBatches(ctx context.Context, sku string, today time.Time) ([]domain.BatchStatusResponse, error) {
	product, err := s.catalogRepository.GetProductBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	rule := expiry.RuleFromCategory(product.Category)
	categoryType := ""
	if product.Category != nil {
		categoryType = product.Category.Type
	}

	response := make([]domain.BatchStatusResponse, 0, len(product.Batches))
	for _, b := range product.Batches {
		removalDate := expiry.RemovalDate(b.ExpiryDate, rule, product.RemovalBuffer)
		days := expiry.DaysToRemoval(removalDate, today)

		response = append(response, domain.BatchStatusResponse{
			BatchID:       b.ID.String(),
			ExpiryDate:    b.ExpiryDate,
			Quantity:      b.Quantity,
			RemovalDate:   removalDate,
			DaysToRemoval: days,
			Status:        expiry.Classify(categoryType, days),
		})
	}
	return response, nil
}

func productResponse(product *entities.Product) domain.ProductResponse {
	response := domain.ProductResponse{
		ID:             product.ID.String(),
		SKU:            product.SKU,
		Name:           product.Name,
		RemovalBuffer:  product.RemovalBuffer,
		InventoryCycle: product.InventoryCycle,
		CreatedAt:      product.CreatedAt,
	}
	if product.CategoryID != nil {
		response.CategoryID = product.CategoryID.String()
	}
	if product.Category != nil {
		response.CategoryName = product.Category.Name
	}
	return response
}

func categoryResponse(category *entities.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:             category.ID.String(),
		Name:           category.Name,
		Type:           category.Type,
		NeedBuffer:     category.NeedBuffer,
		ScrapOnRemoval: category.ScrapOnRemoval,
		AllowGift:      category.AllowGift,
	}
}
