package domain

import "github.com/shopspring/decimal"

// ToiletRevenue is the daily takings of a public toilet.
type ToiletRevenue struct {
	ID          string          `json:"id,omitempty"`
	Location    string          `json:"location"`
	OperatorID  string          `json:"operatorId"`
	RevenueDate Date            `json:"revenueDate"`
	Visitors    int64           `json:"visitors"`
	FeePerVisit decimal.Decimal `json:"feePerVisit"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	AuditFields
}

func (r ToiletRevenue) GetID() string { return r.ID }
