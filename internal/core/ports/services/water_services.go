package services

import (
	"context"

	"github.com/SscSPs/estate_admin_console/internal/core/domain"
	"github.com/SscSPs/estate_admin_console/internal/dto"
)

// ReadingSvcFacade manages meter readings and their derived billing fields.
type ReadingSvcFacade interface {
	ResourceSvcFacade[domain.WaterSupplyReading, dto.CreateReadingRequest, dto.UpdateReadingRequest]

	// Preview computes the bill a reading would produce without persisting it.
	Preview(ctx context.Context, req dto.PreviewReadingRequest) (domain.Bill, error)
}

// CollectionSvcFacade manages water well collections.
type CollectionSvcFacade interface {
	ResourceSvcFacade[domain.WaterWellCollection, dto.CreateCollectionRequest, dto.UpdateCollectionRequest]

	// MarkDeposited transitions a collection to deposited exactly once.
	// Calling it on an already deposited collection returns it unchanged.
	MarkDeposited(ctx context.Context, id string, req dto.MarkDepositedRequest) (domain.WaterWellCollection, error)
}
