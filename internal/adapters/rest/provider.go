package rest

import (
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/core/ports"
)

// Endpoints of the backend. Banking transactions and the water-supply
// readings, payments and collections nest their list payload; the other
// resources answer with a top-level envelope.
var (
	AccountsResource       = ResourceConfig{Name: "accounts", Path: "/banking/accounts", Envelope: EnvelopeTopLevel}
	TransactionsResource   = ResourceConfig{Name: "transactions", Path: "/banking/transactions", Envelope: EnvelopeNested, ItemsKey: "transactions"}
	CustomersResource      = ResourceConfig{Name: "customers", Path: "/water-supply/customers", Envelope: EnvelopeTopLevel}
	ReadingsResource       = ResourceConfig{Name: "readings", Path: "/water-supply/readings", Envelope: EnvelopeNested, ItemsKey: "readings"}
	PaymentsResource       = ResourceConfig{Name: "payments", Path: "/water-supply/payments", Envelope: EnvelopeNested, ItemsKey: "payments"}
	CollectionsResource    = ResourceConfig{Name: "collections", Path: "/water-well/collections", Envelope: EnvelopeNested, ItemsKey: "collections"}
	UsersResource          = ResourceConfig{Name: "users", Path: "/users", Envelope: EnvelopeTopLevel}
	PropertiesResource     = ResourceConfig{Name: "properties", Path: "/properties", Envelope: EnvelopeTopLevel}
	TenantsResource        = ResourceConfig{Name: "tenants", Path: "/tenants", Envelope: EnvelopeTopLevel}
	ContractsResource      = ResourceConfig{Name: "contracts", Path: "/contracts", Envelope: EnvelopeTopLevel}
	RentPaymentsResource   = ResourceConfig{Name: "rent payments", Path: "/rent-payments", Envelope: EnvelopeTopLevel}
	ToiletRevenuesResource = ResourceConfig{Name: "toilet revenue", Path: "/toilet-revenue", Envelope: EnvelopeTopLevel}
)

// NewResourceProvider binds every resource to its endpoint on client.
func NewResourceProvider(client *Client) ports.ResourceProvider {
	return ports.ResourceProvider{
		Accounts:       NewResourceClient[domain.BankAccount](client, AccountsResource),
		Transactions:   NewResourceClient[domain.BankTransaction](client, TransactionsResource),
		Customers:      NewResourceClient[domain.WaterSupplyCustomer](client, CustomersResource),
		Readings:       NewResourceClient[domain.WaterSupplyReading](client, ReadingsResource),
		Payments:       NewResourceClient[domain.WaterSupplyPayment](client, PaymentsResource),
		Collections:    NewResourceClient[domain.WaterWellCollection](client, CollectionsResource),
		Users:          NewResourceClient[domain.User](client, UsersResource),
		Properties:     NewResourceClient[domain.Property](client, PropertiesResource),
		Tenants:        NewResourceClient[domain.Tenant](client, TenantsResource),
		Contracts:      NewResourceClient[domain.Contract](client, ContractsResource),
		RentPayments:   NewResourceClient[domain.RentPayment](client, RentPaymentsResource),
		ToiletRevenues: NewResourceClient[domain.ToiletRevenue](client, ToiletRevenuesResource),
	}
}
