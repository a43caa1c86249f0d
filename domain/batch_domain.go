package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddBatches   = "batches added successfully"
	MessageSuccessUpdateBatch  = "batch updated successfully"
	MessageSuccessDeleteBatch  = "batch deleted successfully"
	MessageSuccessOpenSession  = "inventory session opened successfully"
	MessageSuccessAddToSession = "items recorded to session successfully"

	MessageFailedAddBatches   = "failed to add batches"
	MessageFailedUpdateBatch  = "failed to update batch"
	MessageFailedDeleteBatch  = "failed to delete batch"
	MessageFailedOpenSession  = "failed to open inventory session"
	MessageFailedAddToSession = "failed to record items to session"

	ErrBatchNotFound        = errors.New("batch not found")
	ErrProductNotRegistered = errors.New("product sku is not registered in the catalog")
	ErrSessionNotFound      = errors.New("inventory session not found")
	ErrSessionKeyTaken      = errors.New("session key already in use")
	ErrForbidden            = errors.New("only the session owner or an admin may mutate this batch")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidExpiryDate    = errors.New("invalid expiry date")
	ErrEmptyBatchSet        = errors.New("at least one batch is required")
)

type (
	BatchItemRequest struct {
		ExpiryDate string `json:"expiry_date" validate:"required"`
		Quantity   int    `json:"quantity" validate:"required"`
	}

	AddBatchesRequest struct {
		SessionID string             `json:"session_id" validate:"required,uuid"`
		SKU       string             `json:"sku" validate:"required"`
		Batches   []BatchItemRequest `json:"batches" validate:"dive"`
	}

	UpdateBatchRequest struct {
		ExpiryDate string `json:"expiry_date" validate:"required"`
		Quantity   int    `json:"quantity" validate:"required"`
	}

	// BatchSnapshot is the audit payload stored as old_value/new_value.
	BatchSnapshot struct {
		SKU        string `json:"sku"`
		Name       string `json:"name"`
		ExpiryDate string `json:"expiry_date"`
		Quantity   int    `json:"quantity"`
	}

	BatchResponse struct {
		ID         string    `json:"id"`
		ProductID  string    `json:"product_id"`
		SKU        string    `json:"sku"`
		ExpiryDate time.Time `json:"expiry_date"`
		Quantity   int       `json:"quantity"`
		SessionID  string    `json:"session_id,omitempty"`
	}

	AddBatchesResponse struct {
		Batches []BatchResponse `json:"batches"`
	}

	OpenSessionRequest struct {
		SessionKey string `json:"session_key" validate:"required"`
	}

	OpenSessionResponse struct {
		SessionID  string `json:"session_id"`
		SessionKey string `json:"session_key"`
	}

	SessionEntryRequest struct {
		SKU        string `json:"sku" validate:"required"`
		Name       string `json:"name"`
		ExpiryDate string `json:"expiry_date" validate:"required"`
		Quantity   int    `json:"quantity" validate:"required"`
	}

	AddToSessionRequest struct {
		SessionKey string                `json:"session_key" validate:"required"`
		Entries    []SessionEntryRequest `json:"entries" validate:"required,dive"`
	}

	AddToSessionResponse struct {
		SessionID string          `json:"session_id"`
		ItemCount int             `json:"item_count"`
		Batches   []BatchResponse `json:"batches"`
	}
)
