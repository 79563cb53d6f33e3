package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/estate_admin_console/internal/apperrors"
	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	portssvc "github.com/SscSPs/estate_admin_console/internal/core/ports/services"
	"github.com/SscSPs/estate_admin_console/internal/core/store"
	"github.com/SscSPs/estate_admin_console/internal/core/summary"
	"github.com/SscSPs/estate_admin_console/internal/dto"
	"github.com/SscSPs/estate_admin_console/internal/utils/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type collectionPatch struct {
	BucketsSold   *int64           `json:"bucketsSold,omitempty"`
	UnitPrice     *decimal.Decimal `json:"unitPrice,omitempty"`
	TotalAmount   *decimal.Decimal `json:"totalAmount,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
	IsDeposited   *bool            `json:"isDeposited,omitempty"`
	DepositID     *string          `json:"depositId,omitempty"`
	DepositDate   *time.Time       `json:"depositDate,omitempty"`
	BankAccountID *string          `json:"bankAccountId,omitempty"`
}

type collectionService struct {
	*resourceService[domain.WaterWellCollection, dto.CreateCollectionRequest, dto.UpdateCollectionRequest]
	accounts *store.Store[domain.BankAccount]
	now      func() time.Time
}

var _ portssvc.CollectionSvcFacade = (*collectionService)(nil)

// NewCollectionService creates the water-well collections screen. accounts is
// used to check the bank account named in a deposit.
func NewCollectionService(st *store.Store[domain.WaterWellCollection], accounts *store.Store[domain.BankAccount], aggregatePerPage int) portssvc.CollectionSvcFacade {
	svc := &collectionService{accounts: accounts, now: time.Now}
	svc.resourceService = newResourceService(st,
		buildCollection,
		WithSummary[domain.WaterWellCollection, dto.CreateCollectionRequest, dto.UpdateCollectionRequest](
			func(ctx context.Context, page []domain.WaterWellCollection) ([]domain.Figure, error) {
				return summary.Collections(ctx, st.Service(), page, aggregatePerPage)
			}),
	)
	return svc
}

// buildCollection derives the total; new collections are never deposited.
func buildCollection(_ context.Context, req dto.CreateCollectionRequest) (any, error) {
	return domain.WaterWellCollection{
		OperatorID:     req.OperatorID,
		CollectionDate: req.CollectionDate,
		BucketsSold:    req.BucketsSold,
		UnitPrice:      req.UnitPrice,
		TotalAmount:    billing.TotalAmount(req.BucketsSold, req.UnitPrice),
		IsDeposited:    false,
		Notes:          req.Notes,
	}, nil
}

// Update corrects an undeposited collection and re-derives its total.
func (s *collectionService) Update(ctx context.Context, id string, req dto.UpdateCollectionRequest) (domain.WaterWellCollection, error) {
	if err := s.Validate(ctx, req); err != nil {
		return domain.WaterWellCollection{}, err
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return domain.WaterWellCollection{}, err
	}
	if current.IsDeposited {
		return domain.WaterWellCollection{}, &apperrors.FormError{Fields: map[string]string{"isDeposited": "deposited collections cannot be edited"}}
	}

	patch := collectionPatch{BucketsSold: req.BucketsSold, UnitPrice: req.UnitPrice, Notes: req.Notes}
	if req.BucketsSold != nil || req.UnitPrice != nil {
		buckets, price := current.BucketsSold, current.UnitPrice
		if req.BucketsSold != nil {
			buckets = *req.BucketsSold
		}
		if req.UnitPrice != nil {
			price = *req.UnitPrice
		}
		total := billing.TotalAmount(buckets, price)
		patch.TotalAmount = &total
	}
	return s.update(ctx, id, patch)
}

// MarkDeposited stamps a deposit id and date on the collection. An already
// deposited collection is returned unchanged without contacting the backend.
func (s *collectionService) MarkDeposited(ctx context.Context, id string, req dto.MarkDepositedRequest) (domain.WaterWellCollection, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return domain.WaterWellCollection{}, err
	}
	if current.IsDeposited {
		s.LogInfo(ctx, "Collection already deposited", slog.String("collection_id", id), slog.String("deposit_id", current.DepositID))
		s.store.Replace(current)
		return current, nil
	}

	if req.BankAccountID != "" {
		if _, err := s.accounts.Get(ctx, req.BankAccountID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return domain.WaterWellCollection{}, &apperrors.FormError{Fields: map[string]string{"bankAccountId": "bankAccountId does not exist"}}
			}
			return domain.WaterWellCollection{}, fmt.Errorf("check bank account %s: %w", req.BankAccountID, err)
		}
	}

	deposited := true
	depositID := uuid.NewString()
	depositDate := s.now().UTC()
	patch := collectionPatch{
		IsDeposited: &deposited,
		DepositID:   &depositID,
		DepositDate: &depositDate,
	}
	if req.BankAccountID != "" {
		patch.BankAccountID = &req.BankAccountID
	}

	rec, err := s.update(ctx, id, patch)
	if err != nil {
		return domain.WaterWellCollection{}, err
	}
	s.LogInfo(ctx, "Collection marked deposited", slog.String("collection_id", id), slog.String("deposit_id", depositID))
	return rec, nil
}
