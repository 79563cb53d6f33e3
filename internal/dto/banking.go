package dto

import (
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the data needed to create a new bank account.
type CreateBankAccountRequest struct {
	BankName      string                 `json:"bankName" binding:"required"`
	AccountName   string                 `json:"accountName" binding:"required"`
	AccountNumber string                 `json:"accountNumber" binding:"required"`
	AccountType   domain.BankAccountType `json:"accountType" binding:"required,oneof=checking savings business"`
	Currency      string                 `json:"currency" binding:"required,len=3"`
	Balance       decimal.Decimal        `json:"balance" binding:"gte=0"`
}

// ToRecord converts the form into the payload posted to the backend.
func (r CreateBankAccountRequest) ToRecord() domain.BankAccount {
	return domain.BankAccount{
		BankName:      r.BankName,
		AccountName:   r.AccountName,
		AccountNumber: r.AccountNumber,
		AccountType:   r.AccountType,
		Currency:      r.Currency,
		Balance:       r.Balance,
		IsActive:      true,
	}
}

// UpdateBankAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateBankAccountRequest struct {
	BankName    *string                 `json:"bankName,omitempty" binding:"omitempty,min=1"`
	AccountName *string                 `json:"accountName,omitempty" binding:"omitempty,min=1"`
	AccountType *domain.BankAccountType `json:"accountType,omitempty" binding:"omitempty,oneof=checking savings business"`
	IsActive    *bool                   `json:"isActive,omitempty"`
}

// CreateBankTransactionRequest defines a new movement on an account.
type CreateBankTransactionRequest struct {
	AccountID   string                 `json:"accountId" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=deposit withdrawal"`
	Amount      decimal.Decimal        `json:"amount" binding:"gt=0"`
	Date        domain.Date            `json:"date" binding:"required"`
	Reference   string                 `json:"reference"`
	Description string                 `json:"description"`
}

func (r CreateBankTransactionRequest) ToRecord() domain.BankTransaction {
	return domain.BankTransaction{
		AccountID:   r.AccountID,
		Type:        r.Type,
		Amount:      r.Amount,
		Date:        r.Date,
		Reference:   r.Reference,
		Description: r.Description,
	}
}

// UpdateBankTransactionRequest defines the editable fields of a transaction.
type UpdateBankTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Date        *domain.Date     `json:"date,omitempty"`
	Reference   *string          `json:"reference,omitempty"`
	Description *string          `json:"description,omitempty"`
}
