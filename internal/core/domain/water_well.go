package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// WaterWellCollection records buckets sold at a well by an operator on one day.
// It is created undeposited and becomes deposited exactly once.
type WaterWellCollection struct {
	ID             string          `json:"id,omitempty"`
	OperatorID     string          `json:"operatorId"`
	CollectionDate Date            `json:"collectionDate"`
	BucketsSold    int64           `json:"bucketsSold"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	IsDeposited    bool            `json:"isDeposited"`
	DepositID      string          `json:"depositId,omitempty"`
	DepositDate    *time.Time      `json:"depositDate,omitempty"`
	BankAccountID  string          `json:"bankAccountId,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	AuditFields
}

func (c WaterWellCollection) GetID() string { return c.ID }
