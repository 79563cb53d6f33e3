package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/estate_admin_console/internal/adapters/memory"
	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/core/services"
	"github.com/SscSPs/estate_admin_console/internal/dto"
	"github.com/SscSPs/estate_admin_console/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

type ServiceContainerTestSuite struct {
	suite.Suite
	ctx       context.Context
	backend   *memory.Provider
	stores    *services.Stores
	container *portssvc.ServiceContainer
}

func (s *ServiceContainerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.backend = memory.NewProvider()
	cfg := &config.Config{DefaultPerPage: 10, AggregatePerPage: 1000}
	s.stores = services.NewStores(cfg, s.backend.Resources(), nil)
	s.container = services.NewServiceContainer(cfg, s.stores, new(MockAuthGateway), newFakeSessions())
}

func TestServiceContainerTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceContainerTestSuite))
}

// --- Generic resource behaviour ---

func (s *ServiceContainerTestSuite) TestFetch_NetworkFailureReportsFallback() {
	s.backend.Accounts.WithError(&apperrors.NetworkError{Op: "GET /banking/accounts", Err: errors.New("connection refused")})

	state, err := s.container.Accounts.Fetch(s.ctx, domain.ListQuery{})
	s.Require().Error(err)
	s.Equal("Failed to fetch accounts", state.Error)
	s.Empty(state.Records)
	s.False(state.Loading)
}

func (s *ServiceContainerTestSuite) TestCreate_InvalidFormNeverReachesBackend() {
	_, err := s.container.Accounts.Create(s.ctx, dto.CreateBankAccountRequest{AccountName: "Ops"})
	s.Require().Error(err)

	var formErr *apperrors.FormError
	s.Require().ErrorAs(err, &formErr)
	s.Equal("bankName is required", formErr.Fields["bankName"])
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(0, s.backend.Accounts.Calls("create"))
}

func (s *ServiceContainerTestSuite) TestCreateAccount_AppendsToStore() {
	acc, err := s.container.Accounts.Create(s.ctx, dto.CreateBankAccountRequest{
		BankName:      "First Bank",
		AccountName:   "Operations",
		AccountNumber: "001",
		AccountType:   domain.Business,
		Currency:      "KES",
		Balance:       dec("250"),
	})
	s.Require().NoError(err)
	s.NotEmpty(acc.ID)
	s.True(acc.IsActive)

	snapshot := s.container.Accounts.Snapshot()
	s.Require().Len(snapshot.Records, 1)
	s.Equal(acc.ID, snapshot.Records[0].ID)
}

func (s *ServiceContainerTestSuite) TestAccountsSummary_CoversWholeCollection() {
	for i := 0; i < 12; i++ {
		s.backend.Accounts.Seed(domain.BankAccount{ID: string(rune('a' + i)), Balance: dec("10")})
	}
	state, err := s.container.Accounts.Fetch(s.ctx, domain.ListQuery{Page: 1, PerPage: 5})
	s.Require().NoError(err)
	s.Len(state.Records, 5)

	figures, err := s.container.Accounts.Summarize(s.ctx, state.Records)
	s.Require().NoError(err)
	s.Require().Len(figures, 2)
	s.Equal("120.00", figures[0].Display)
	s.Equal(domain.ScopeCollection, figures[0].Scope)
	s.Len(s.container.Accounts.Snapshot().Records, 5)
}

func (s *ServiceContainerTestSuite) TestDeleteAccount_CascadesToTransactions() {
	s.backend.Accounts.Seed(domain.BankAccount{ID: "a1"}, domain.BankAccount{ID: "a2"})
	s.backend.Transactions.Seed(
		domain.BankTransaction{ID: "t1", AccountID: "a1", Type: domain.Deposit, Amount: dec("5")},
		domain.BankTransaction{ID: "t2", AccountID: "a2", Type: domain.Deposit, Amount: dec("5")},
	)
	_, err := s.container.Accounts.Fetch(s.ctx, domain.ListQuery{})
	s.Require().NoError(err)
	_, err = s.container.Transactions.Fetch(s.ctx, domain.ListQuery{})
	s.Require().NoError(err)

	s.Require().NoError(s.container.Accounts.Delete(s.ctx, "a1"))

	records := s.container.Transactions.Snapshot().Records
	s.Require().Len(records, 1)
	s.Equal("t2", records[0].ID)
}

func (s *ServiceContainerTestSuite) TestDeleteAccount_KeepsDepositedCollections() {
	s.backend.Accounts.Seed(domain.BankAccount{ID: "a1"})
	s.backend.Collections.Seed(
		domain.WaterWellCollection{ID: "w1", BucketsSold: 10, UnitPrice: dec("1"), TotalAmount: dec("10")},
		domain.WaterWellCollection{ID: "w2", BucketsSold: 4, UnitPrice: dec("1"), TotalAmount: dec("4")},
	)
	_, err := s.container.Accounts.Fetch(s.ctx, domain.ListQuery{})
	s.Require().NoError(err)
	_, err = s.container.Collections.Fetch(s.ctx, domain.ListQuery{})
	s.Require().NoError(err)
	_, err = s.container.Collections.MarkDeposited(s.ctx, "w1", dto.MarkDepositedRequest{BankAccountID: "a1"})
	s.Require().NoError(err)

	s.Require().NoError(s.container.Accounts.Delete(s.ctx, "a1"))

	records := s.container.Collections.Snapshot().Records
	s.Require().Len(records, 2)
	s.Equal("a1", records[0].BankAccountID)
	s.True(records[0].IsDeposited)
	s.Empty(s.container.Accounts.Snapshot().Records)
}

// --- Water supply ---

func (s *ServiceContainerTestSuite) seedCustomer() domain.WaterSupplyCustomer {
	c := domain.WaterSupplyCustomer{ID: "c1", Name: "Amina", MeterNumber: "M-1", StartingReading: dec("100"), UnitPrice: dec("2.5"), IsActive: true}
	s.backend.Customers.Seed(c)
	return c
}

func (s *ServiceContainerTestSuite) TestCreateReading_FirstReadingUsesStartingReading() {
	s.seedCustomer()

	reading, err := s.container.Readings.Create(s.ctx, dto.CreateReadingRequest{
		CustomerID:   "c1",
		ReadingDate:  domain.MustParseDate("2024-01-31"),
		MeterReading: dec("150"),
	})
	s.Require().NoError(err)

	s.Equal("100", reading.PreviousReading.String())
	s.Equal("50", reading.UnitsConsumed.String())
	s.Equal("125.00", reading.AmountDue.StringFixed(2))
	s.True(reading.UnitPrice.Equal(dec("2.5")))
	s.Equal(domain.PaymentPending, reading.PaymentStatus)
	s.Len(s.container.Readings.Snapshot().Records, 1)
}

func (s *ServiceContainerTestSuite) TestCreateReading_UsesLatestPriorReading() {
	s.seedCustomer()
	s.backend.Readings.Seed(
		domain.WaterSupplyReading{ID: "r1", CustomerID: "c1", ReadingDate: domain.MustParseDate("2024-01-31"), MeterReading: dec("150")},
		domain.WaterSupplyReading{ID: "r2", CustomerID: "c1", ReadingDate: domain.MustParseDate("2024-02-29"), MeterReading: dec("180")},
		domain.WaterSupplyReading{ID: "other", CustomerID: "c2", ReadingDate: domain.MustParseDate("2024-03-15"), MeterReading: dec("999")},
	)

	bill, err := s.container.Readings.Preview(s.ctx, dto.PreviewReadingRequest{CustomerID: "c1", MeterReading: dec("220")})
	s.Require().NoError(err)
	s.Equal("180", bill.PreviousReading.String())
	s.Equal("40", bill.UnitsConsumed.String())

	reading, err := s.container.Readings.Create(s.ctx, dto.CreateReadingRequest{
		CustomerID:   "c1",
		ReadingDate:  domain.MustParseDate("2024-03-31"),
		MeterReading: dec("220"),
	})
	s.Require().NoError(err)
	s.Equal(bill.AmountDue.String(), reading.AmountDue.String())
}

func (s *ServiceContainerTestSuite) TestCreateReading_HistorySpansSeveralPages() {
	cfg := &config.Config{DefaultPerPage: 10, AggregatePerPage: 2}
	container := services.NewServiceContainer(cfg, services.NewStores(cfg, s.backend.Resources(), nil), new(MockAuthGateway), newFakeSessions())
	s.seedCustomer()
	s.backend.Readings.Seed(
		domain.WaterSupplyReading{ID: "r1", CustomerID: "c1", ReadingDate: domain.MustParseDate("2024-01-31"), MeterReading: dec("100")},
		domain.WaterSupplyReading{ID: "r2", CustomerID: "c1", ReadingDate: domain.MustParseDate("2024-02-29"), MeterReading: dec("180")},
		domain.WaterSupplyReading{ID: "r3", CustomerID: "c1", ReadingDate: domain.MustParseDate("2024-03-31"), MeterReading: dec("200")},
	)

	reading, err := container.Readings.Create(s.ctx, dto.CreateReadingRequest{
		CustomerID:   "c1",
		ReadingDate:  domain.MustParseDate("2024-04-30"),
		MeterReading: dec("220"),
	})
	s.Require().NoError(err)
	s.Equal("200", reading.PreviousReading.String())
	s.Equal("20", reading.UnitsConsumed.String())
	s.Equal(2, s.backend.Readings.Calls("list"))
}

func (s *ServiceContainerTestSuite) TestCreateReading_LowerMeterGivesZeroConsumption() {
	s.seedCustomer()

	reading, err := s.container.Readings.Create(s.ctx, dto.CreateReadingRequest{
		CustomerID:   "c1",
		ReadingDate:  domain.MustParseDate("2024-01-31"),
		MeterReading: dec("90"),
	})
	s.Require().NoError(err)
	s.True(reading.UnitsConsumed.IsZero())
	s.True(reading.AmountDue.IsZero())
}

func (s *ServiceContainerTestSuite) TestCreateReading_UnknownCustomer() {
	_, err := s.container.Readings.Create(s.ctx, dto.CreateReadingRequest{
		CustomerID:   "missing",
		ReadingDate:  domain.MustParseDate("2024-01-31"),
		MeterReading: dec("10"),
	})
	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.Equal(0, s.backend.Readings.Calls("create"))
}

func (s *ServiceContainerTestSuite) TestUpdateReading_KeepsFrozenUnitPrice() {
	s.seedCustomer()
	reading, err := s.container.Readings.Create(s.ctx, dto.CreateReadingRequest{
		CustomerID:   "c1",
		ReadingDate:  domain.MustParseDate("2024-01-31"),
		MeterReading: dec("150"),
	})
	s.Require().NoError(err)

	_, err = s.container.Customers.Update(s.ctx, "c1", dto.UpdateCustomerRequest{UnitPrice: ptr(dec("4"))})
	s.Require().NoError(err)

	preview, err := s.container.Readings.Preview(s.ctx, dto.PreviewReadingRequest{CustomerID: "c1", MeterReading: dec("160"), ExcludingID: reading.ID})
	s.Require().NoError(err)
	s.Equal("150.00", preview.AmountDue.StringFixed(2))

	updated, err := s.container.Readings.Update(s.ctx, reading.ID, dto.UpdateReadingRequest{MeterReading: ptr(dec("160"))})
	s.Require().NoError(err)
	s.Equal("60", updated.UnitsConsumed.String())
	s.Equal("150.00", updated.AmountDue.StringFixed(2))
	s.True(updated.UnitPrice.Equal(dec("2.5")))

	cached := s.container.Readings.Snapshot().Records
	s.Require().Len(cached, 1)
	s.Equal("60", cached[0].UnitsConsumed.String())
}

func (s *ServiceContainerTestSuite) TestRecordPayment_MarksReadingPaid() {
	s.seedCustomer()
	s.backend.Readings.Seed(domain.WaterSupplyReading{
		ID: "r1", CustomerID: "c1", ReadingDate: domain.MustParseDate("2024-01-31"),
		MeterReading: dec("150"), AmountDue: dec("125"), PaymentStatus: domain.PaymentPending,
	})
	_, err := s.container.Readings.Fetch(s.ctx, domain.ListQuery{})
	s.Require().NoError(err)

	payment, err := s.container.Payments.Create(s.ctx, dto.CreatePaymentRequest{
		ReadingID:     "r1",
		Amount:        dec("125"),
		PaymentDate:   domain.MustParseDate("2024-02-05"),
		PaymentMethod: "cash",
	})
	s.Require().NoError(err)
	s.Equal("c1", payment.CustomerID)

	reading, err := s.backend.Readings.GetByID(s.ctx, "r1")
	s.Require().NoError(err)
	s.Equal(domain.PaymentPaid, reading.PaymentStatus)
	s.Require().NotNil(reading.PaymentDate)
	s.Equal("2024-02-05", reading.PaymentDate.String())

	cached := s.container.Readings.Snapshot().Records
	s.Equal(domain.PaymentPaid, cached[0].PaymentStatus)

	_, err = s.container.Payments.Create(s.ctx, dto.CreatePaymentRequest{
		ReadingID:   "r1",
		Amount:      dec("1"),
		PaymentDate: domain.MustParseDate("2024-02-06"),
	})
	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Equal(1, s.backend.Payments.Calls("create"))
}

func (s *ServiceContainerTestSuite) TestDeleteCustomer_CascadesToReadingsAndPayments() {
	s.seedCustomer()
	s.backend.Readings.Seed(
		domain.WaterSupplyReading{ID: "r1", CustomerID: "c1"},
		domain.WaterSupplyReading{ID: "r2", CustomerID: "c2"},
	)
	s.backend.Payments.Seed(
		domain.WaterSupplyPayment{ID: "p1", CustomerID: "c1", ReadingID: "r1"},
		domain.WaterSupplyPayment{ID: "p2", CustomerID: "c2", ReadingID: "r2"},
	)
	for _, fetch := range []func() error{
		func() error { _, err := s.container.Customers.Fetch(s.ctx, domain.ListQuery{}); return err },
		func() error { _, err := s.container.Readings.Fetch(s.ctx, domain.ListQuery{}); return err },
		func() error { _, err := s.container.Payments.Fetch(s.ctx, domain.ListQuery{}); return err },
	} {
		s.Require().NoError(fetch())
	}

	s.Require().NoError(s.container.Customers.Delete(s.ctx, "c1"))

	readings := s.container.Readings.Snapshot().Records
	s.Require().Len(readings, 1)
	s.Equal("r2", readings[0].ID)
	payments := s.container.Payments.Snapshot().Records
	s.Require().Len(payments, 1)
	s.Equal("p2", payments[0].ID)
}

// --- Water well ---

func (s *ServiceContainerTestSuite) TestCreateCollection_DerivesTotal() {
	col, err := s.container.Collections.Create(s.ctx, dto.CreateCollectionRequest{
		OperatorID:     "op-1",
		CollectionDate: domain.MustParseDate("2024-05-01"),
		BucketsSold:    40,
		UnitPrice:      dec("0.5"),
	})
	s.Require().NoError(err)
	s.Equal("20.00", col.TotalAmount.StringFixed(2))
	s.False(col.IsDeposited)
	s.Empty(col.DepositID)
}

func (s *ServiceContainerTestSuite) TestMarkDeposited_OnceOnly() {
	s.backend.Accounts.Seed(domain.BankAccount{ID: "a1"})
	s.backend.Collections.Seed(domain.WaterWellCollection{ID: "w1", BucketsSold: 10, UnitPrice: dec("1"), TotalAmount: dec("10")})
	_, err := s.container.Collections.Fetch(s.ctx, domain.ListQuery{})
	s.Require().NoError(err)

	first, err := s.container.Collections.MarkDeposited(s.ctx, "w1", dto.MarkDepositedRequest{BankAccountID: "a1"})
	s.Require().NoError(err)
	s.True(first.IsDeposited)
	s.NotEmpty(first.DepositID)
	s.Require().NotNil(first.DepositDate)
	s.Equal("a1", first.BankAccountID)

	second, err := s.container.Collections.MarkDeposited(s.ctx, "w1", dto.MarkDepositedRequest{})
	s.Require().NoError(err)
	s.Equal(first.DepositID, second.DepositID)
	s.Equal(1, s.backend.Collections.Calls("update"))

	cached := s.container.Collections.Snapshot().Records
	s.True(cached[0].IsDeposited)

	_, err = s.container.Collections.Update(s.ctx, "w1", dto.UpdateCollectionRequest{BucketsSold: ptr(int64(12))})
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (s *ServiceContainerTestSuite) TestMarkDeposited_UnknownBankAccount() {
	s.backend.Collections.Seed(domain.WaterWellCollection{ID: "w1"})

	_, err := s.container.Collections.MarkDeposited(s.ctx, "w1", dto.MarkDepositedRequest{BankAccountID: "nope"})
	var formErr *apperrors.FormError
	s.Require().ErrorAs(err, &formErr)
	s.Contains(formErr.Fields, "bankAccountId")
	s.Equal(0, s.backend.Collections.Calls("update"))
}

func (s *ServiceContainerTestSuite) TestUpdateCollection_RecomputesTotal() {
	s.backend.Collections.Seed(domain.WaterWellCollection{ID: "w1", BucketsSold: 10, UnitPrice: dec("1.5"), TotalAmount: dec("15")})

	updated, err := s.container.Collections.Update(s.ctx, "w1", dto.UpdateCollectionRequest{BucketsSold: ptr(int64(20))})
	s.Require().NoError(err)
	s.Equal("30.00", updated.TotalAmount.StringFixed(2))
}

// --- Property domain ---

func (s *ServiceContainerTestSuite) TestCreateContract_RejectsEndBeforeStart() {
	_, err := s.container.Contracts.Create(s.ctx, dto.CreateContractRequest{
		PropertyID:  "p1",
		TenantID:    "t1",
		StartDate:   domain.MustParseDate("2024-06-01"),
		EndDate:     domain.MustParseDate("2024-05-01"),
		MonthlyRent: dec("500"),
	})
	var formErr *apperrors.FormError
	s.Require().ErrorAs(err, &formErr)
	s.Equal("endDate must be after startDate", formErr.Fields["endDate"])
}

func (s *ServiceContainerTestSuite) TestDeleteProperty_CascadesToTenantsAndContracts() {
	s.backend.Properties.Seed(domain.Property{ID: "p1"})
	s.backend.Tenants.Seed(domain.Tenant{ID: "t1", PropertyID: "p1"}, domain.Tenant{ID: "t2", PropertyID: "p2"})
	s.backend.Contracts.Seed(domain.Contract{ID: "k1", PropertyID: "p1", TenantID: "t1"})
	s.backend.RentPayments.Seed(domain.RentPayment{ID: "rp1", ContractID: "k1"})

	_, err := s.container.Tenants.Fetch(s.ctx, domain.ListQuery{})
	s.Require().NoError(err)
	_, err = s.container.Contracts.Fetch(s.ctx, domain.ListQuery{})
	s.Require().NoError(err)
	_, err = s.container.RentPayments.Fetch(s.ctx, domain.ListQuery{})
	s.Require().NoError(err)

	s.Require().NoError(s.container.Properties.Delete(s.ctx, "p1"))
	s.Len(s.container.Tenants.Snapshot().Records, 1)
	s.Empty(s.container.Contracts.Snapshot().Records)

	s.Require().NoError(s.container.Contracts.Delete(s.ctx, "k1"))
	s.Empty(s.container.RentPayments.Snapshot().Records)
}

func (s *ServiceContainerTestSuite) TestToiletRevenue_TotalsDerived() {
	rec, err := s.container.ToiletRevenues.Create(s.ctx, dto.CreateToiletRevenueRequest{
		Location:    "Market",
		OperatorID:  "op-1",
		RevenueDate: domain.MustParseDate("2024-07-01"),
		Visitors:    120,
		FeePerVisit: dec("0.25"),
	})
	s.Require().NoError(err)
	s.Equal("30.00", rec.TotalAmount.StringFixed(2))

	updated, err := s.container.ToiletRevenues.Update(s.ctx, rec.ID, dto.UpdateToiletRevenueRequest{FeePerVisit: ptr(dec("0.5"))})
	s.Require().NoError(err)
	s.Equal("60.00", updated.TotalAmount.StringFixed(2))

	figures, err := s.container.ToiletRevenues.Summarize(s.ctx, nil)
	s.Require().NoError(err)
	s.Require().Len(figures, 1)
	s.Equal("60.00", figures[0].Display)
}

func (s *ServiceContainerTestSuite) TestCreateUser() {
	user, err := s.container.Users.Create(s.ctx, dto.CreateUserRequest{
		Name:     "Joy",
		Email:    "joy@example.com",
		Role:     domain.RoleOperator,
		Password: "longenough",
	})
	s.Require().NoError(err)
	s.Equal("joy@example.com", user.Email)
	s.True(user.IsActive)

	_, err = s.container.Users.Create(s.ctx, dto.CreateUserRequest{Name: "X", Email: "x@example.com", Role: domain.RoleAdmin, Password: "short"})
	s.Require().ErrorIs(err, apperrors.ErrValidation)
}
