package domain

import (
	"github.com/shopspring/decimal"
)

// BankAccountType classifies a bank account held by the business.
type BankAccountType string

const (
	Checking BankAccountType = "checking"
	Savings  BankAccountType = "savings"
	Business BankAccountType = "business"
)

// BankAccount represents an account at a bank into which revenue is deposited.
type BankAccount struct {
	ID            string          `json:"id,omitempty"`
	BankName      string          `json:"bankName"`
	AccountName   string          `json:"accountName"`
	AccountNumber string          `json:"accountNumber"`
	AccountType   BankAccountType `json:"accountType"`
	Currency      string          `json:"currency"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}

func (a BankAccount) GetID() string { return a.ID }
