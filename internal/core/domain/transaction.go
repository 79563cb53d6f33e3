package domain

import "github.com/shopspring/decimal"

// TransactionType indicates the direction of money on a bank account.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
)

// BankTransaction is a single movement on a bank account. It references the
// account by ID only.
type BankTransaction struct {
	ID          string          `json:"id,omitempty"`
	AccountID   string          `json:"accountId"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        Date            `json:"date"`
	Reference   string          `json:"reference,omitempty"`
	Description string          `json:"description,omitempty"`
	AuditFields
}

func (t BankTransaction) GetID() string { return t.ID }

// SignedAmount is positive for deposits and negative for withdrawals.
func (t BankTransaction) SignedAmount() decimal.Decimal {
	if t.Type == Withdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}
