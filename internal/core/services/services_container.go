package services

import (
	"log/slog"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/core/ports"
	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/core/store"
	"github.com/SscSPs/estate_admin_console/internal/platform/config"
)

// Stores holds the resource store of every screen.
type Stores struct {
	Accounts     *store.Store[domain.BankAccount]
	Transactions *store.Store[domain.BankTransaction]

	Customers *store.Store[domain.WaterSupplyCustomer]
	Readings  *store.Store[domain.WaterSupplyReading]
	Payments  *store.Store[domain.WaterSupplyPayment]

	Collections *store.Store[domain.WaterWellCollection]

	Users *store.Store[domain.User]

	Properties     *store.Store[domain.Property]
	Tenants        *store.Store[domain.Tenant]
	Contracts      *store.Store[domain.Contract]
	RentPayments   *store.Store[domain.RentPayment]
	ToiletRevenues *store.Store[domain.ToiletRevenue]
}

// NewStores creates one store per resource and declares the delete cascades
// between them.
func NewStores(cfg *config.Config, resources ports.ResourceProvider, logger *slog.Logger) *Stores {
	opts := func(name string, messages store.Messages) store.Config {
		return store.Config{Name: name, Messages: messages, DefaultPerPage: cfg.DefaultPerPage}
	}

	s := &Stores{
		Accounts:       store.New(resources.Accounts, opts("accounts", store.MessagesFor("accounts", "account")), logger),
		Transactions:   store.New(resources.Transactions, opts("transactions", store.MessagesFor("transactions", "transaction")), logger),
		Customers:      store.New(resources.Customers, opts("customers", store.MessagesFor("customers", "customer")), logger),
		Readings:       store.New(resources.Readings, opts("readings", store.MessagesFor("readings", "reading")), logger),
		Payments:       store.New(resources.Payments, opts("payments", store.MessagesFor("payments", "payment")), logger),
		Collections:    store.New(resources.Collections, opts("collections", store.MessagesFor("collections", "collection")), logger),
		Users:          store.New(resources.Users, opts("users", store.MessagesFor("users", "user")), logger),
		Properties:     store.New(resources.Properties, opts("properties", store.MessagesFor("properties", "property")), logger),
		Tenants:        store.New(resources.Tenants, opts("tenants", store.MessagesFor("tenants", "tenant")), logger),
		Contracts:      store.New(resources.Contracts, opts("contracts", store.MessagesFor("contracts", "contract")), logger),
		RentPayments:   store.New(resources.RentPayments, opts("rent payments", store.MessagesFor("rent payments", "rent payment")), logger),
		ToiletRevenues: store.New(resources.ToiletRevenues, opts("toilet revenue", store.MessagesFor("toilet revenue", "toilet revenue record")), logger),
	}

	store.CascadeFrom(s.Accounts, s.Transactions, func(t domain.BankTransaction) string { return t.AccountID })
	// No cascade to Collections: a deposit is a settled cash record and keeps
	// its bankAccountId after the account is gone.

	store.CascadeFrom(s.Customers, s.Readings, func(r domain.WaterSupplyReading) string { return r.CustomerID })
	store.CascadeFrom(s.Customers, s.Payments, func(p domain.WaterSupplyPayment) string { return p.CustomerID })
	store.CascadeFrom(s.Readings, s.Payments, func(p domain.WaterSupplyPayment) string { return p.ReadingID })

	store.CascadeFrom(s.Properties, s.Tenants, func(t domain.Tenant) string { return t.PropertyID })
	store.CascadeFrom(s.Properties, s.Contracts, func(c domain.Contract) string { return c.PropertyID })
	store.CascadeFrom(s.Tenants, s.Contracts, func(c domain.Contract) string { return c.TenantID })
	store.CascadeFrom(s.Contracts, s.RentPayments, func(p domain.RentPayment) string { return p.ContractID })

	return s
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, stores *Stores, auth ports.AuthGateway, sessions ports.SessionManager) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(auth, sessions, cfg.JWTSecret)

	container.Accounts = NewAccountService(stores.Accounts, cfg.AggregatePerPage)
	container.Transactions = NewTransactionService(stores.Transactions)

	container.Customers = NewCustomerService(stores.Customers)
	container.Readings = NewReadingService(stores.Readings, stores.Customers, cfg.AggregatePerPage)
	container.Payments = NewPaymentService(stores.Payments, stores.Readings)

	container.Collections = NewCollectionService(stores.Collections, stores.Accounts, cfg.AggregatePerPage)

	container.Users = NewUserService(stores.Users)

	container.Properties = NewPropertyService(stores.Properties)
	container.Tenants = NewTenantService(stores.Tenants)
	container.Contracts = NewContractService(stores.Contracts)
	container.RentPayments = NewRentPaymentService(stores.RentPayments)
	container.ToiletRevenues = NewToiletRevenueService(stores.ToiletRevenues, cfg.AggregatePerPage)

	return container
}
