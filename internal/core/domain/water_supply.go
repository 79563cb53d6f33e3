package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentStatus is the billing state of a meter reading.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// WaterSupplyCustomer is a metered water connection.
type WaterSupplyCustomer struct {
	ID              string          `json:"id,omitempty"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone,omitempty"`
	Address         string          `json:"address,omitempty"`
	MeterNumber     string          `json:"meterNumber"`
	StartingReading decimal.Decimal `json:"startingReading"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	IsActive        bool            `json:"isActive"`
	AuditFields
}

func (c WaterSupplyCustomer) GetID() string { return c.ID }

// WaterSupplyReading is one meter reading and the bill derived from it.
// UnitPrice is the customer's price at the time the reading was created;
// AmountDue is never re-derived from a later customer price.
type WaterSupplyReading struct {
	ID              string          `json:"id,omitempty"`
	CustomerID      string          `json:"customerId"`
	ReadingDate     Date            `json:"readingDate"`
	PreviousReading decimal.Decimal `json:"previousReading"`
	MeterReading    decimal.Decimal `json:"meterReading"`
	UnitsConsumed   decimal.Decimal `json:"unitsConsumed"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	AmountDue       decimal.Decimal `json:"amountDue"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	PaymentDate     *Date           `json:"paymentDate,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	AuditFields
}

func (r WaterSupplyReading) GetID() string { return r.ID }

// WaterSupplyPayment settles a reading's bill.
type WaterSupplyPayment struct {
	ID            string          `json:"id,omitempty"`
	CustomerID    string          `json:"customerId"`
	ReadingID     string          `json:"readingId"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   Date            `json:"paymentDate"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Reference     string          `json:"reference,omitempty"`
	AuditFields
}

func (p WaterSupplyPayment) GetID() string { return p.ID }

// Bill holds the derived fields of a reading.
type Bill struct {
	PreviousReading decimal.Decimal `json:"previousReading"`
	MeterReading    decimal.Decimal `json:"meterReading"`
	UnitsConsumed   decimal.Decimal `json:"unitsConsumed"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	AmountDue       decimal.Decimal `json:"amountDue"`
}
