package services

import (
	"context"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/core/store"
	"github.com/SscSPs/estate_admin_console/internal/core/summary"
	"github.com/SscSPs/estate_admin_console/internal/dto"
)

// NewAccountService creates the bank accounts screen. Its balance figures
// cover every account, fetched with aggregatePerPage.
func NewAccountService(st *store.Store[domain.BankAccount], aggregatePerPage int) portssvc.AccountSvcFacade {
	return NewResourceService(st,
		FromRecord[domain.BankAccount, dto.CreateBankAccountRequest](),
		WithSummary[domain.BankAccount, dto.CreateBankAccountRequest, dto.UpdateBankAccountRequest](
			func(ctx context.Context, _ []domain.BankAccount) ([]domain.Figure, error) {
				return summary.Accounts(ctx, st.Service(), aggregatePerPage)
			}),
	)
}

// NewTransactionService creates the bank transactions screen.
func NewTransactionService(st *store.Store[domain.BankTransaction]) portssvc.TransactionSvcFacade {
	return NewResourceService(st,
		FromRecord[domain.BankTransaction, dto.CreateBankTransactionRequest](),
		WithSummary[domain.BankTransaction, dto.CreateBankTransactionRequest, dto.UpdateBankTransactionRequest](
			func(_ context.Context, page []domain.BankTransaction) ([]domain.Figure, error) {
				return summary.Transactions(page), nil
			}),
	)
}
