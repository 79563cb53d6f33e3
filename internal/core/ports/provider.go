package ports

import "github.com/SscSPs/estate_admin_console/internal/core/domain"

// ResourceProvider holds the backend resource services of every screen.
type ResourceProvider struct {
	Accounts     ResourceService[domain.BankAccount]
	Transactions ResourceService[domain.BankTransaction]

	Customers ResourceService[domain.WaterSupplyCustomer]
	Readings  ResourceService[domain.WaterSupplyReading]
	Payments  ResourceService[domain.WaterSupplyPayment]

	Collections ResourceService[domain.WaterWellCollection]

	Users ResourceService[domain.User]

	Properties     ResourceService[domain.Property]
	Tenants        ResourceService[domain.Tenant]
	Contracts      ResourceService[domain.Contract]
	RentPayments   ResourceService[domain.RentPayment]
	ToiletRevenues ResourceService[domain.ToiletRevenue]
}
