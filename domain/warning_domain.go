package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessScanWarnings = "warning scan completed"
	MessageSuccessGetWarnings  = "warnings retrieved successfully"
	MessageSuccessResolve      = "warning resolved successfully"
	MessageSuccessGetConfig    = "warning configuration retrieved successfully"
	MessageSuccessUpdateConfig = "warning configuration updated successfully"
	MessageSuccessSendDigest   = "warning digest sent successfully"

	MessageFailedScanWarnings = "failed to scan warnings"
	MessageFailedGetWarnings  = "failed to retrieve warnings"
	MessageFailedResolve      = "failed to resolve warning"
	MessageFailedGetConfig    = "failed to retrieve warning configuration"
	MessageFailedUpdateConfig = "failed to update warning configuration"
	MessageFailedSendDigest   = "failed to send warning digest"

	ErrWarningNotFound  = errors.New("warning not found")
	ErrStoreUnavailable = errors.New("warning store unavailable")
)

type (
	ScanWarningsResponse struct {
		GeneratedCount int `json:"generated_count"`
	}

	WarningResponse struct {
		ID           string    `json:"id"`
		ProductID    string    `json:"product_id"`
		SKU          string    `json:"sku,omitempty"`
		BatchID      string    `json:"batch_id,omitempty"`
		WarningLevel string    `json:"warning_level"`
		WarningType  string    `json:"warning_type"`
		Message      string    `json:"message"`
		IsResolved   bool      `json:"is_resolved"`
		CreatedAt    time.Time `json:"created_at"`
	}

	WarningConfigResponse struct {
		WarningDaysLevel1 int `json:"warning_days_level1"`
		WarningDaysLevel2 int `json:"warning_days_level2"`
		WarningDaysLevel3 int `json:"warning_days_level3"`
		LowStockThreshold int `json:"low_stock_threshold"`
	}

	// UpdateWarningConfigRequest is a partial update: nil fields keep their
	// current value.
	UpdateWarningConfigRequest struct {
		WarningDaysLevel1 *int `json:"warning_days_level1" validate:"omitempty,min=0"`
		WarningDaysLevel2 *int `json:"warning_days_level2" validate:"omitempty,min=0"`
		WarningDaysLevel3 *int `json:"warning_days_level3" validate:"omitempty,min=0"`
		LowStockThreshold *int `json:"low_stock_threshold" validate:"omitempty,min=0"`
	}

	SendDigestRequest struct {
		Recipient string `json:"recipient" validate:"required,email"`
	}
)
