package services

import (
	"context"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/core/store"
	"github.com/SscSPs/estate_admin_console/internal/core/summary"
	"github.com/SscSPs/estate_admin_console/internal/dto"
	"github.com/SscSPs/estate_admin_console/internal/utils/billing"
	"github.com/shopspring/decimal"
)

func NewPropertyService(st *store.Store[domain.Property]) portssvc.PropertySvcFacade {
	return NewResourceService[domain.Property, dto.CreatePropertyRequest, dto.UpdatePropertyRequest](st,
		FromRecord[domain.Property, dto.CreatePropertyRequest](),
	)
}

func NewTenantService(st *store.Store[domain.Tenant]) portssvc.TenantSvcFacade {
	return NewResourceService[domain.Tenant, dto.CreateTenantRequest, dto.UpdateTenantRequest](st,
		FromRecord[domain.Tenant, dto.CreateTenantRequest](),
	)
}

// NewContractService creates the contracts screen. A contract must end after it starts.
func NewContractService(st *store.Store[domain.Contract]) portssvc.ContractSvcFacade {
	return NewResourceService[domain.Contract, dto.CreateContractRequest, dto.UpdateContractRequest](st,
		func(_ context.Context, req dto.CreateContractRequest) (any, error) {
			if !req.EndDate.After(req.StartDate.Time) {
				return nil, &apperrors.FormError{Fields: map[string]string{"endDate": "endDate must be after startDate"}}
			}
			return req.ToRecord(), nil
		},
	)
}

func NewRentPaymentService(st *store.Store[domain.RentPayment]) portssvc.RentPaymentSvcFacade {
	return NewResourceService(st,
		FromRecord[domain.RentPayment, dto.CreateRentPaymentRequest](),
		WithSummary[domain.RentPayment, dto.CreateRentPaymentRequest, dto.UpdateRentPaymentRequest](
			func(_ context.Context, page []domain.RentPayment) ([]domain.Figure, error) {
				return summary.RentPayments(page), nil
			}),
	)
}

type toiletRevenuePatch struct {
	Visitors    *int64           `json:"visitors,omitempty"`
	FeePerVisit *decimal.Decimal `json:"feePerVisit,omitempty"`
	TotalAmount *decimal.Decimal `json:"totalAmount,omitempty"`
}

type toiletRevenueService struct {
	*resourceService[domain.ToiletRevenue, dto.CreateToiletRevenueRequest, dto.UpdateToiletRevenueRequest]
}

var _ portssvc.ToiletRevenueSvcFacade = (*toiletRevenueService)(nil)

// NewToiletRevenueService creates the toilet revenue screen. Totals are
// derived from visitors and the fee per visit.
func NewToiletRevenueService(st *store.Store[domain.ToiletRevenue], aggregatePerPage int) portssvc.ToiletRevenueSvcFacade {
	return &toiletRevenueService{
		resourceService: newResourceService(st,
			func(_ context.Context, req dto.CreateToiletRevenueRequest) (any, error) {
				return domain.ToiletRevenue{
					Location:    req.Location,
					OperatorID:  req.OperatorID,
					RevenueDate: req.RevenueDate,
					Visitors:    req.Visitors,
					FeePerVisit: req.FeePerVisit,
					TotalAmount: billing.TotalAmount(req.Visitors, req.FeePerVisit),
				}, nil
			},
			WithSummary[domain.ToiletRevenue, dto.CreateToiletRevenueRequest, dto.UpdateToiletRevenueRequest](
				func(ctx context.Context, _ []domain.ToiletRevenue) ([]domain.Figure, error) {
					return summary.ToiletRevenues(ctx, st.Service(), aggregatePerPage)
				}),
		),
	}
}

func (s *toiletRevenueService) Update(ctx context.Context, id string, req dto.UpdateToiletRevenueRequest) (domain.ToiletRevenue, error) {
	if err := s.Validate(ctx, req); err != nil {
		return domain.ToiletRevenue{}, err
	}
	patch := toiletRevenuePatch{Visitors: req.Visitors, FeePerVisit: req.FeePerVisit}
	if req.Visitors != nil || req.FeePerVisit != nil {
		current, err := s.Get(ctx, id)
		if err != nil {
			return domain.ToiletRevenue{}, err
		}
		visitors, fee := current.Visitors, current.FeePerVisit
		if req.Visitors != nil {
			visitors = *req.Visitors
		}
		if req.FeePerVisit != nil {
			fee = *req.FeePerVisit
		}
		total := billing.TotalAmount(visitors, fee)
		patch.TotalAmount = &total
	}
	return s.update(ctx, id, patch)
}
