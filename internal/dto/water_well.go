package dto

import (
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCollectionRequest is the daily collection form of a well operator.
type CreateCollectionRequest struct {
	OperatorID     string          `json:"operatorId" binding:"required"`
	CollectionDate domain.Date     `json:"collectionDate" binding:"required"`
	BucketsSold    int64           `json:"bucketsSold" binding:"gte=0"`
	UnitPrice      decimal.Decimal `json:"unitPrice" binding:"gt=0"`
	Notes          string          `json:"notes"`
}

// UpdateCollectionRequest corrects a collection that has not been deposited.
type UpdateCollectionRequest struct {
	BucketsSold *int64           `json:"bucketsSold,omitempty" binding:"omitempty,gte=0"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty" binding:"omitempty,gt=0"`
	Notes       *string          `json:"notes,omitempty"`
}

// MarkDepositedRequest optionally names the bank account the cash went to.
type MarkDepositedRequest struct {
	BankAccountID string `json:"bankAccountId"`
}
