package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/core/store"
	"github.com/SscSPs/estate_admin_console/internal/core/summary"
	"github.com/SscSPs/estate_admin_console/internal/dto"
	"github.com/SscSPs/estate_admin_console/internal/utils/billing"
	"github.com/shopspring/decimal"
)

// NewCustomerService creates the water-supply customers screen.
func NewCustomerService(st *store.Store[domain.WaterSupplyCustomer]) portssvc.CustomerSvcFacade {
	return NewResourceService[domain.WaterSupplyCustomer, dto.CreateCustomerRequest, dto.UpdateCustomerRequest](st,
		FromRecord[domain.WaterSupplyCustomer, dto.CreateCustomerRequest](),
	)
}

// readingPatch is the update sent for a reading. Derived fields travel with
// the meter value they were computed from.
type readingPatch struct {
	ReadingDate     *domain.Date          `json:"readingDate,omitempty"`
	PreviousReading *decimal.Decimal      `json:"previousReading,omitempty"`
	MeterReading    *decimal.Decimal      `json:"meterReading,omitempty"`
	UnitsConsumed   *decimal.Decimal      `json:"unitsConsumed,omitempty"`
	AmountDue       *decimal.Decimal      `json:"amountDue,omitempty"`
	PaymentStatus   *domain.PaymentStatus `json:"paymentStatus,omitempty"`
	PaymentDate     *domain.Date          `json:"paymentDate,omitempty"`
	Notes           *string               `json:"notes,omitempty"`
}

type readingService struct {
	*resourceService[domain.WaterSupplyReading, dto.CreateReadingRequest, dto.UpdateReadingRequest]
	customers        *store.Store[domain.WaterSupplyCustomer]
	aggregatePerPage int
}

var _ portssvc.ReadingSvcFacade = (*readingService)(nil)

// NewReadingService creates the meter readings screen. Bills are derived
// from the customer's reading history, loaded aggregatePerPage rows at a time.
func NewReadingService(st *store.Store[domain.WaterSupplyReading], customers *store.Store[domain.WaterSupplyCustomer], aggregatePerPage int) portssvc.ReadingSvcFacade {
	svc := &readingService{customers: customers, aggregatePerPage: aggregatePerPage}
	svc.resourceService = newResourceService(st,
		svc.buildReading,
		WithSummary[domain.WaterSupplyReading, dto.CreateReadingRequest, dto.UpdateReadingRequest](
			func(_ context.Context, page []domain.WaterSupplyReading) ([]domain.Figure, error) {
				return summary.Readings(page), nil
			}),
	)
	return svc
}

// history loads the customer and every reading recorded for them.
func (s *readingService) history(ctx context.Context, customerID string) (domain.WaterSupplyCustomer, []domain.WaterSupplyReading, error) {
	customer, err := s.customers.Get(ctx, customerID)
	if err != nil {
		return customer, nil, fmt.Errorf("load customer %s: %w", customerID, err)
	}
	q := domain.ListQuery{}.WithFilter("customerId", customerID)
	readings, err := summary.FetchEvery(ctx, s.store.Service(), q, s.aggregatePerPage)
	if err != nil {
		return customer, nil, fmt.Errorf("load readings of customer %s: %w", customerID, err)
	}
	return customer, readings, nil
}

// Preview computes the bill the form would submit. When editing, the
// reading's frozen unit price is used.
func (s *readingService) Preview(ctx context.Context, req dto.PreviewReadingRequest) (domain.Bill, error) {
	if err := s.Validate(ctx, req); err != nil {
		return domain.Bill{}, err
	}
	customer, readings, err := s.history(ctx, req.CustomerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to preview reading", slog.String("customer_id", req.CustomerID))
		return domain.Bill{}, err
	}

	if req.ExcludingID != "" {
		for _, r := range readings {
			if r.ID == req.ExcludingID {
				previous := billing.PreviousReading(customer, readings, r.ID)
				return billing.BillAt(previous, req.MeterReading, r.UnitPrice), nil
			}
		}
	}
	return billing.ComputeBill(customer, readings, req.MeterReading, req.ExcludingID), nil
}

func (s *readingService) buildReading(ctx context.Context, req dto.CreateReadingRequest) (any, error) {
	customer, readings, err := s.history(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	bill := billing.ComputeBill(customer, readings, req.MeterReading, "")
	return domain.WaterSupplyReading{
		CustomerID:      customer.ID,
		ReadingDate:     req.ReadingDate,
		PreviousReading: bill.PreviousReading,
		MeterReading:    bill.MeterReading,
		UnitsConsumed:   bill.UnitsConsumed,
		UnitPrice:       bill.UnitPrice,
		AmountDue:       bill.AmountDue,
		PaymentStatus:   domain.PaymentPending,
		Notes:           req.Notes,
	}, nil
}

// Update corrects a reading. A new meter value is re-billed at the unit
// price frozen on the reading, against the customer's latest other reading.
func (s *readingService) Update(ctx context.Context, id string, req dto.UpdateReadingRequest) (domain.WaterSupplyReading, error) {
	if err := s.Validate(ctx, req); err != nil {
		return domain.WaterSupplyReading{}, err
	}

	patch := readingPatch{
		ReadingDate:   req.ReadingDate,
		PaymentStatus: req.PaymentStatus,
		Notes:         req.Notes,
	}

	if req.MeterReading != nil {
		current, err := s.Get(ctx, id)
		if err != nil {
			return domain.WaterSupplyReading{}, err
		}
		customer, readings, err := s.history(ctx, current.CustomerID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load reading history", slog.String("reading_id", id))
			return domain.WaterSupplyReading{}, err
		}
		previous := billing.PreviousReading(customer, readings, id)
		bill := billing.BillAt(previous, *req.MeterReading, current.UnitPrice)
		patch.PreviousReading = &bill.PreviousReading
		patch.MeterReading = &bill.MeterReading
		patch.UnitsConsumed = &bill.UnitsConsumed
		patch.AmountDue = &bill.AmountDue
	}

	return s.update(ctx, id, patch)
}

type paymentService struct {
	*resourceService[domain.WaterSupplyPayment, dto.CreatePaymentRequest, dto.UpdatePaymentRequest]
	readings *store.Store[domain.WaterSupplyReading]
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// NewPaymentService creates the water-supply payments screen. Recording a
// payment marks its reading paid.
func NewPaymentService(st *store.Store[domain.WaterSupplyPayment], readings *store.Store[domain.WaterSupplyReading]) portssvc.PaymentSvcFacade {
	svc := &paymentService{readings: readings}
	svc.resourceService = newResourceService(st,
		svc.buildPayment,
		WithSummary[domain.WaterSupplyPayment, dto.CreatePaymentRequest, dto.UpdatePaymentRequest](
			func(_ context.Context, page []domain.WaterSupplyPayment) ([]domain.Figure, error) {
				return summary.SupplyPayments(page), nil
			}),
	)
	return svc
}

func (s *paymentService) buildPayment(ctx context.Context, req dto.CreatePaymentRequest) (any, error) {
	reading, err := s.readings.Get(ctx, req.ReadingID)
	if err != nil {
		return nil, fmt.Errorf("load reading %s: %w", req.ReadingID, err)
	}
	if reading.PaymentStatus == domain.PaymentPaid {
		return nil, &apperrors.FormError{Fields: map[string]string{"readingId": "reading is already paid"}}
	}
	return domain.WaterSupplyPayment{
		CustomerID:    reading.CustomerID,
		ReadingID:     reading.ID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
	}, nil
}

// Create records the payment, then marks the reading paid on the payment date.
func (s *paymentService) Create(ctx context.Context, req dto.CreatePaymentRequest) (domain.WaterSupplyPayment, error) {
	payment, err := s.resourceService.Create(ctx, req)
	if err != nil {
		return payment, err
	}
	status := domain.PaymentPaid
	paidOn := payment.PaymentDate
	if _, err := s.readings.Update(ctx, payment.ReadingID, readingPatch{PaymentStatus: &status, PaymentDate: &paidOn}); err != nil {
		s.LogError(ctx, err, "Payment recorded but reading not marked paid",
			slog.String("payment_id", payment.ID),
			slog.String("reading_id", payment.ReadingID))
		return payment, fmt.Errorf("payment %s recorded, marking reading paid: %w", payment.ID, err)
	}
	return payment, nil
}
