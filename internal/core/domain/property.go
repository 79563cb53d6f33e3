package domain

import "github.com/shopspring/decimal"

// Property is a rentable building or unit.
type Property struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Address     string          `json:"address"`
	Type        string          `json:"type"`
	Units       int             `json:"units"`
	MonthlyRent decimal.Decimal `json:"monthlyRent"`
	AuditFields
}

func (p Property) GetID() string { return p.ID }

// Tenant occupies a property.
type Tenant struct {
	ID         string `json:"id,omitempty"`
	PropertyID string `json:"propertyId"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	AuditFields
}

func (t Tenant) GetID() string { return t.ID }

// ContractStatus is the lifecycle state of a lease.
type ContractStatus string

const (
	ContractActive     ContractStatus = "active"
	ContractExpired    ContractStatus = "expired"
	ContractTerminated ContractStatus = "terminated"
)

// Contract is a lease binding a tenant to a property.
type Contract struct {
	ID          string          `json:"id,omitempty"`
	PropertyID  string          `json:"propertyId"`
	TenantID    string          `json:"tenantId"`
	StartDate   Date            `json:"startDate"`
	EndDate     Date            `json:"endDate"`
	MonthlyRent decimal.Decimal `json:"monthlyRent"`
	Deposit     decimal.Decimal `json:"deposit"`
	Status      ContractStatus  `json:"status"`
	AuditFields
}

func (c Contract) GetID() string { return c.ID }

// RentPayment is a payment made against a contract.
type RentPayment struct {
	ID          string          `json:"id,omitempty"`
	ContractID  string          `json:"contractId"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate Date            `json:"paymentDate"`
	PeriodMonth string          `json:"periodMonth"`
	AuditFields
}

func (r RentPayment) GetID() string { return r.ID }
