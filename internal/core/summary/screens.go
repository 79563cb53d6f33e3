package summary

import (
	"context"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Figure keys.
const (
	KeyTotalBalance       = "totalBalance"
	KeyAccountCount       = "accountCount"
	KeyTotalDeposits      = "totalDeposits"
	KeyTotalWithdrawals   = "totalWithdrawals"
	KeyTotalBilled        = "totalBilled"
	KeyPendingAmount      = "pendingAmount"
	KeyPendingCount       = "pendingCount"
	KeyTotalCollected     = "totalCollected"
	KeyTotalRevenue       = "totalRevenue"
	KeyUndepositedAmount  = "undepositedAmount"
	KeyUndepositedCount   = "undepositedCount"
	KeyTotalRentCollected = "totalRentCollected"
)

// Accounts sums balances over every account, not only the visible page.
func Accounts(ctx context.Context, svc ports.ResourceService[domain.BankAccount], perPage int) ([]domain.Figure, error) {
	all, err := FetchAll(ctx, svc, domain.ListQuery{}, perPage)
	if err != nil {
		return nil, err
	}
	return []domain.Figure{
		Amount(KeyTotalBalance, "Total Balance", Sum(all, func(a domain.BankAccount) decimal.Decimal { return a.Balance }), domain.ScopeCollection),
		Quantity(KeyAccountCount, "Accounts", Count(all), domain.ScopeCollection),
	}, nil
}

// Transactions totals deposits and withdrawals of the visible page.
func Transactions(page []domain.BankTransaction) []domain.Figure {
	amount := func(t domain.BankTransaction) decimal.Decimal { return t.Amount }
	return []domain.Figure{
		Amount(KeyTotalDeposits, "Deposits", SumWhere(page, func(t domain.BankTransaction) bool { return t.Type == domain.Deposit }, amount), domain.ScopePage),
		Amount(KeyTotalWithdrawals, "Withdrawals", SumWhere(page, func(t domain.BankTransaction) bool { return t.Type == domain.Withdrawal }, amount), domain.ScopePage),
	}
}

// Readings reports billed and outstanding amounts of the visible page.
// Overdue readings count as outstanding.
func Readings(page []domain.WaterSupplyReading) []domain.Figure {
	unpaid := func(r domain.WaterSupplyReading) bool { return r.PaymentStatus != domain.PaymentPaid }
	due := func(r domain.WaterSupplyReading) decimal.Decimal { return r.AmountDue }
	return []domain.Figure{
		Amount(KeyTotalBilled, "Total Billed", Sum(page, due), domain.ScopePage),
		Amount(KeyPendingAmount, "Pending Amount", SumWhere(page, unpaid, due), domain.ScopePage),
		Quantity(KeyPendingCount, "Pending Bills", CountWhere(page, unpaid), domain.ScopePage),
	}
}

// SupplyPayments totals the visible water-supply payments.
func SupplyPayments(page []domain.WaterSupplyPayment) []domain.Figure {
	return []domain.Figure{
		Amount(KeyTotalCollected, "Total Collected", Sum(page, func(p domain.WaterSupplyPayment) decimal.Decimal { return p.Amount }), domain.ScopePage),
	}
}

// Collections reports revenue over every collection but the undeposited
// amount over the visible page only.
func Collections(ctx context.Context, svc ports.ResourceService[domain.WaterWellCollection], page []domain.WaterWellCollection, perPage int) ([]domain.Figure, error) {
	all, err := FetchAll(ctx, svc, domain.ListQuery{}, perPage)
	if err != nil {
		return nil, err
	}
	total := func(c domain.WaterWellCollection) decimal.Decimal { return c.TotalAmount }
	undeposited := func(c domain.WaterWellCollection) bool { return !c.IsDeposited }
	return []domain.Figure{
		Amount(KeyTotalRevenue, "Total Revenue", Sum(all, total), domain.ScopeCollection),
		Amount(KeyUndepositedAmount, "Undeposited", SumWhere(page, undeposited, total), domain.ScopePage),
		Quantity(KeyUndepositedCount, "Undeposited Collections", CountWhere(page, undeposited), domain.ScopePage),
	}, nil
}

// RentPayments totals the visible rent payments.
func RentPayments(page []domain.RentPayment) []domain.Figure {
	return []domain.Figure{
		Amount(KeyTotalRentCollected, "Rent Collected", Sum(page, func(p domain.RentPayment) decimal.Decimal { return p.Amount }), domain.ScopePage),
	}
}

// ToiletRevenues totals revenue over every record.
func ToiletRevenues(ctx context.Context, svc ports.ResourceService[domain.ToiletRevenue], perPage int) ([]domain.Figure, error) {
	all, err := FetchAll(ctx, svc, domain.ListQuery{}, perPage)
	if err != nil {
		return nil, err
	}
	return []domain.Figure{
		Amount(KeyTotalRevenue, "Total Revenue", Sum(all, func(r domain.ToiletRevenue) decimal.Decimal { return r.TotalAmount }), domain.ScopeCollection),
	}, nil
}
