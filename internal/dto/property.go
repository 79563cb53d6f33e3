package dto

import (
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreatePropertyRequest struct {
	Name        string          `json:"name" binding:"required"`
	Address     string          `json:"address" binding:"required"`
	Type        string          `json:"type" binding:"required,oneof=residential commercial land"`
	Units       int             `json:"units" binding:"gte=1"`
	MonthlyRent decimal.Decimal `json:"monthlyRent" binding:"gte=0"`
}

func (r CreatePropertyRequest) ToRecord() domain.Property {
	return domain.Property{
		Name:        r.Name,
		Address:     r.Address,
		Type:        r.Type,
		Units:       r.Units,
		MonthlyRent: r.MonthlyRent,
	}
}

type UpdatePropertyRequest struct {
	Name        *string          `json:"name,omitempty" binding:"omitempty,min=1"`
	Address     *string          `json:"address,omitempty" binding:"omitempty,min=1"`
	Units       *int             `json:"units,omitempty" binding:"omitempty,gte=1"`
	MonthlyRent *decimal.Decimal `json:"monthlyRent,omitempty" binding:"omitempty,gte=0"`
}

type CreateTenantRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"omitempty,email"`
}

func (r CreateTenantRequest) ToRecord() domain.Tenant {
	return domain.Tenant{
		PropertyID: r.PropertyID,
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
	}
}

type UpdateTenantRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
}

// CreateContractRequest defines a lease. EndDate must follow StartDate.
type CreateContractRequest struct {
	PropertyID  string          `json:"propertyId" binding:"required"`
	TenantID    string          `json:"tenantId" binding:"required"`
	StartDate   domain.Date     `json:"startDate" binding:"required"`
	EndDate     domain.Date     `json:"endDate" binding:"required"`
	MonthlyRent decimal.Decimal `json:"monthlyRent" binding:"gt=0"`
	Deposit     decimal.Decimal `json:"deposit" binding:"gte=0"`
}

func (r CreateContractRequest) ToRecord() domain.Contract {
	return domain.Contract{
		PropertyID:  r.PropertyID,
		TenantID:    r.TenantID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		MonthlyRent: r.MonthlyRent,
		Deposit:     r.Deposit,
		Status:      domain.ContractActive,
	}
}

type UpdateContractRequest struct {
	EndDate     *domain.Date           `json:"endDate,omitempty"`
	MonthlyRent *decimal.Decimal       `json:"monthlyRent,omitempty" binding:"omitempty,gt=0"`
	Status      *domain.ContractStatus `json:"status,omitempty" binding:"omitempty,oneof=active expired terminated"`
}

type CreateRentPaymentRequest struct {
	ContractID  string          `json:"contractId" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"gt=0"`
	PaymentDate domain.Date     `json:"paymentDate" binding:"required"`
	PeriodMonth string          `json:"periodMonth" binding:"required,datetime=2006-01"`
}

func (r CreateRentPaymentRequest) ToRecord() domain.RentPayment {
	return domain.RentPayment{
		ContractID:  r.ContractID,
		Amount:      r.Amount,
		PaymentDate: r.PaymentDate,
		PeriodMonth: r.PeriodMonth,
	}
}

type UpdateRentPaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty" binding:"omitempty,gt=0"`
	PaymentDate *domain.Date     `json:"paymentDate,omitempty"`
}
