package services

import (
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/dto"
)

type (
	AccountSvcFacade       = ResourceSvcFacade[domain.BankAccount, dto.CreateBankAccountRequest, dto.UpdateBankAccountRequest]
	TransactionSvcFacade   = ResourceSvcFacade[domain.BankTransaction, dto.CreateBankTransactionRequest, dto.UpdateBankTransactionRequest]
	CustomerSvcFacade      = ResourceSvcFacade[domain.WaterSupplyCustomer, dto.CreateCustomerRequest, dto.UpdateCustomerRequest]
	PaymentSvcFacade       = ResourceSvcFacade[domain.WaterSupplyPayment, dto.CreatePaymentRequest, dto.UpdatePaymentRequest]
	UserSvcFacade          = ResourceSvcFacade[domain.User, dto.CreateUserRequest, dto.UpdateUserRequest]
	PropertySvcFacade      = ResourceSvcFacade[domain.Property, dto.CreatePropertyRequest, dto.UpdatePropertyRequest]
	TenantSvcFacade        = ResourceSvcFacade[domain.Tenant, dto.CreateTenantRequest, dto.UpdateTenantRequest]
	ContractSvcFacade      = ResourceSvcFacade[domain.Contract, dto.CreateContractRequest, dto.UpdateContractRequest]
	RentPaymentSvcFacade   = ResourceSvcFacade[domain.RentPayment, dto.CreateRentPaymentRequest, dto.UpdateRentPaymentRequest]
	ToiletRevenueSvcFacade = ResourceSvcFacade[domain.ToiletRevenue, dto.CreateToiletRevenueRequest, dto.UpdateToiletRevenueRequest]
)

// ServiceContainer holds instances of all the application services.
// Handlers receive it and register one screen per field.
type ServiceContainer struct {
	Auth AuthSvcFacade

	Accounts     AccountSvcFacade
	Transactions TransactionSvcFacade

	Customers CustomerSvcFacade
	Readings  ReadingSvcFacade
	Payments  PaymentSvcFacade

	Collections CollectionSvcFacade

	Users UserSvcFacade

	Properties     PropertySvcFacade
	Tenants        TenantSvcFacade
	Contracts      ContractSvcFacade
	RentPayments   RentPaymentSvcFacade
	ToiletRevenues ToiletRevenueSvcFacade
}
