package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateProduct    = "product created successfully"
	MessageSuccessUpdateProduct    = "product updated successfully"
	MessageSuccessGetProducts      = "products retrieved successfully"
	MessageSuccessCreateCategory   = "category created successfully"
	MessageSuccessGetCategories    = "categories retrieved successfully"
	MessageSuccessGetBatchStatuses = "batch statuses retrieved successfully"

	MessageFailedCreateProduct    = "failed to create product"
	MessageFailedUpdateProduct    = "failed to update product"
	MessageFailedGetProducts      = "failed to retrieve products"
	MessageFailedCreateCategory   = "failed to create category"
	MessageFailedGetCategories    = "failed to retrieve categories"
	MessageFailedGetBatchStatuses = "failed to retrieve batch statuses"

	ErrProductNotFound   = errors.New("product not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateSKU      = errors.New("sku already registered")
	ErrDuplicateCategory = errors.New("category name already exists")
	ErrInvalidBuffer     = errors.New("removal buffer must be non-negative")
)

type (
	CreateProductRequest struct {
		SKU            string `json:"sku" validate:"required"`
		Name           string `json:"name" validate:"required"`
		CategoryID     string `json:"category_id" validate:"omitempty,uuid"`
		RemovalBuffer  int    `json:"removal_buffer" validate:"min=0"`
		InventoryCycle string `json:"inventory_cycle"`
	}

	UpdateProductRequest struct {
		Name           string `json:"name" validate:"omitempty"`
		CategoryID     string `json:"category_id" validate:"omitempty,uuid"`
		RemovalBuffer  *int   `json:"removal_buffer" validate:"omitempty,min=0"`
		InventoryCycle string `json:"inventory_cycle" validate:"omitempty"`
	}

	ProductResponse struct {
		ID             string    `json:"id"`
		SKU            string    `json:"sku"`
		Name           string    `json:"name"`
		CategoryID     string    `json:"category_id,omitempty"`
		CategoryName   string    `json:"category_name,omitempty"`
		RemovalBuffer  int       `json:"removal_buffer"`
		InventoryCycle string    `json:"inventory_cycle"`
		CreatedAt      time.Time `json:"created_at"`
	}

	CreateCategoryRequest struct {
		Name           string `json:"name" validate:"required"`
		Type           string `json:"type" validate:"required"`
		NeedBuffer     *bool  `json:"need_buffer"`
		ScrapOnRemoval bool   `json:"scrap_on_removal"`
		AllowGift      bool   `json:"allow_gift"`
	}

	CategoryResponse struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		Type           string `json:"type"`
		NeedBuffer     bool   `json:"need_buffer"`
		ScrapOnRemoval bool   `json:"scrap_on_removal"`
		AllowGift      bool   `json:"allow_gift"`
	}

	// BatchStatusResponse carries the per-batch removal classification shown
	// on the dashboard.
	BatchStatusResponse struct {
		BatchID       string    `json:"batch_id"`
		ExpiryDate    time.Time `json:"expiry_date"`
		Quantity      int       `json:"quantity"`
		RemovalDate   time.Time `json:"removal_date"`
		DaysToRemoval int       `json:"days_to_removal"`
		Status        string    `json:"status"`
	}
)
