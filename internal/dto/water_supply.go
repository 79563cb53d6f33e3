package dto

import (
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest registers a metered connection.
type CreateCustomerRequest struct {
	Name            string          `json:"name" binding:"required"`
	Phone           string          `json:"phone"`
	Address         string          `json:"address"`
	MeterNumber     string          `json:"meterNumber" binding:"required"`
	StartingReading decimal.Decimal `json:"startingReading" binding:"gte=0"`
	UnitPrice       decimal.Decimal `json:"unitPrice" binding:"gt=0"`
}

func (r CreateCustomerRequest) ToRecord() domain.WaterSupplyCustomer {
	return domain.WaterSupplyCustomer{
		Name:            r.Name,
		Phone:           r.Phone,
		Address:         r.Address,
		MeterNumber:     r.MeterNumber,
		StartingReading: r.StartingReading,
		UnitPrice:       r.UnitPrice,
		IsActive:        true,
	}
}

// UpdateCustomerRequest changes customer details. A new unit price only
// affects readings created afterwards.
type UpdateCustomerRequest struct {
	Name      *string          `json:"name,omitempty" binding:"omitempty,min=1"`
	Phone     *string          `json:"phone,omitempty"`
	Address   *string          `json:"address,omitempty"`
	UnitPrice *decimal.Decimal `json:"unitPrice,omitempty" binding:"omitempty,gt=0"`
	IsActive  *bool            `json:"isActive,omitempty"`
}

// CreateReadingRequest is the reading form. Derived fields are never taken
// from the client; they are computed at submit time.
type CreateReadingRequest struct {
	CustomerID   string          `json:"customerId" binding:"required"`
	ReadingDate  domain.Date     `json:"readingDate" binding:"required"`
	MeterReading decimal.Decimal `json:"meterReading" binding:"gte=0"`
	Notes        string          `json:"notes"`
}

// UpdateReadingRequest corrects a reading. Changing the meter value recomputes
// consumption with the unit price frozen on the reading.
type UpdateReadingRequest struct {
	ReadingDate   *domain.Date          `json:"readingDate,omitempty"`
	MeterReading  *decimal.Decimal      `json:"meterReading,omitempty" binding:"omitempty,gte=0"`
	PaymentStatus *domain.PaymentStatus `json:"paymentStatus,omitempty" binding:"omitempty,oneof=pending paid overdue"`
	Notes         *string               `json:"notes,omitempty"`
}

// PreviewReadingRequest drives the live preview of the reading form.
type PreviewReadingRequest struct {
	CustomerID   string          `json:"customerId" binding:"required"`
	MeterReading decimal.Decimal `json:"meterReading" binding:"gte=0"`
	// ExcludingID is the reading being edited, if any.
	ExcludingID string `json:"excludingId"`
}

// CreatePaymentRequest records a payment against a reading.
type CreatePaymentRequest struct {
	ReadingID     string          `json:"readingId" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"gt=0"`
	PaymentDate   domain.Date     `json:"paymentDate" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"omitempty,oneof=cash bank mobile"`
	Reference     string          `json:"reference"`
}

// UpdatePaymentRequest defines the editable fields of a payment.
type UpdatePaymentRequest struct {
	PaymentMethod *string `json:"paymentMethod,omitempty" binding:"omitempty,oneof=cash bank mobile"`
	Reference     *string `json:"reference,omitempty"`
}
