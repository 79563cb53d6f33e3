package dto

import (
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateToiletRevenueRequest is the daily takings form. TotalAmount is derived.
type CreateToiletRevenueRequest struct {
	Location    string          `json:"location" binding:"required"`
	OperatorID  string          `json:"operatorId" binding:"required"`
	RevenueDate domain.Date     `json:"revenueDate" binding:"required"`
	Visitors    int64           `json:"visitors" binding:"gte=0"`
	FeePerVisit decimal.Decimal `json:"feePerVisit" binding:"gt=0"`
}

type UpdateToiletRevenueRequest struct {
	Visitors    *int64           `json:"visitors,omitempty" binding:"omitempty,gte=0"`
	FeePerVisit *decimal.Decimal `json:"feePerVisit,omitempty" binding:"omitempty,gt=0"`
}
