package memory

import (
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/core/ports"
)

// Provider exposes typed handles on every in-memory collection so tests can
// seed them and inject failures.
type Provider struct {
	Accounts       *Resource[domain.BankAccount]
	Transactions   *Resource[domain.BankTransaction]
	Customers      *Resource[domain.WaterSupplyCustomer]
	Readings       *Resource[domain.WaterSupplyReading]
	Payments       *Resource[domain.WaterSupplyPayment]
	Collections    *Resource[domain.WaterWellCollection]
	Users          *Resource[domain.User]
	Properties     *Resource[domain.Property]
	Tenants        *Resource[domain.Tenant]
	Contracts      *Resource[domain.Contract]
	RentPayments   *Resource[domain.RentPayment]
	ToiletRevenues *Resource[domain.ToiletRevenue]
}

// NewProvider creates empty collections for every resource.
func NewProvider() *Provider {
	return &Provider{
		Accounts:       NewResource[domain.BankAccount]("account"),
		Transactions:   NewResource[domain.BankTransaction]("transaction"),
		Customers:      NewResource[domain.WaterSupplyCustomer]("customer"),
		Readings:       NewResource[domain.WaterSupplyReading]("reading"),
		Payments:       NewResource[domain.WaterSupplyPayment]("payment"),
		Collections:    NewResource[domain.WaterWellCollection]("collection"),
		Users:          NewResource[domain.User]("user"),
		Properties:     NewResource[domain.Property]("property"),
		Tenants:        NewResource[domain.Tenant]("tenant"),
		Contracts:      NewResource[domain.Contract]("contract"),
		RentPayments:   NewResource[domain.RentPayment]("rent payment"),
		ToiletRevenues: NewResource[domain.ToiletRevenue]("toilet revenue"),
	}
}

// Resources returns the collections as backend ports.
func (p *Provider) Resources() ports.ResourceProvider {
	return ports.ResourceProvider{
		Accounts:       p.Accounts,
		Transactions:   p.Transactions,
		Customers:      p.Customers,
		Readings:       p.Readings,
		Payments:       p.Payments,
		Collections:    p.Collections,
		Users:          p.Users,
		Properties:     p.Properties,
		Tenants:        p.Tenants,
		Contracts:      p.Contracts,
		RentPayments:   p.RentPayments,
		ToiletRevenues: p.ToiletRevenues,
	}
}
