// Package disposal registers waste-disposal events: it resolves the
// referenced entities, normalizes the measurement into kilograms and
// persists the canonical record.
package disposal

import (
	"context"
	"fmt"

	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/domain/dto"
	"github.com/ougirez/ecotrack/internal/pkg/store"
	"github.com/ougirez/ecotrack/internal/service/audit"
)

type Service struct {
	store store.Store
	audit *audit.Service
}

func NewDisposalService(store store.Store, audit *audit.Service) *Service {
	return &Service{store: store, audit: audit}
}

const auditTable = "user_waste"

// Register validates the referenced user, waste and location, converts the
// measurement to kilograms and stores the record. Conversion errors surface
// as 400-coded errors; reference misses as 404.
func (s *Service) Register(ctx context.Context, request *dto.RegisterDisposalRequest, actorID int64) (*domain.Disposal, error) {
	if _, err := s.store.GetUserByID(ctx, request.UserID); err != nil {
		return nil, fmt.Errorf("store.GetUserByID: %w", err)
	}

	waste, err := s.store.GetWasteByID(ctx, request.WasteID)
	if err != nil {
		return nil, fmt.Errorf("store.GetWasteByID: %w", err)
	}

	if _, err := s.store.GetLocationByID(ctx, request.LocationID); err != nil {
		return nil, fmt.Errorf("store.GetLocationByID: %w", err)
	}

	weight, err := domain.ConvertToKilograms(request.Measurement(), waste)
	if err != nil {
		return nil, err
	}

	disposal := &domain.Disposal{
		UserID:     request.UserID,
		WasteID:    request.WasteID,
		Name:       request.Name,
		Weight:     weight,
		Datetime:   request.Datetime,
		LocationID: request.LocationID,
	}
	if err := s.store.CreateDisposal(ctx, disposal); err != nil {
		return nil, fmt.Errorf("store.CreateDisposal: %w", err)
	}

	s.audit.Record(ctx, domain.AuditCreate, auditTable, disposal.ID, nil, disposal, actorID)

	return disposal, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Disposal, error) {
	disposal, err := s.store.GetDisposalByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetDisposalByID: %w", err)
	}
	return disposal, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Disposal, error) {
	disposals, err := s.store.ListDisposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListDisposals: %w", err)
	}
	return disposals, nil
}

// Update re-runs conversion over the stored record with a fresh
// measurement. The canonical weight is the only recomputed field.
func (s *Service) Update(ctx context.Context, id int64, request *dto.UpdateDisposalRequest, actorID int64) (*domain.Disposal, error) {
	disposal, err := s.store.GetDisposalByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetDisposalByID: %w", err)
	}
	old := *disposal

	waste, err := s.store.GetWasteByID(ctx, disposal.WasteID)
	if err != nil {
		return nil, fmt.Errorf("store.GetWasteByID: %w", err)
	}

	weight, err := domain.ConvertToKilograms(request.Measurement(), waste)
	if err != nil {
		return nil, err
	}

	disposal.Weight = weight
	if err := s.store.UpdateDisposal(ctx, disposal); err != nil {
		return nil, fmt.Errorf("store.UpdateDisposal: %w", err)
	}

	s.audit.Record(ctx, domain.AuditUpdate, auditTable, disposal.ID, &old, disposal, actorID)

	return disposal, nil
}

func (s *Service) Delete(ctx context.Context, id int64, actorID int64) error {
	disposal, err := s.store.GetDisposalByID(ctx, id)
	if err != nil {
		return fmt.Errorf("store.GetDisposalByID: %w", err)
	}

	if err := s.store.DeleteDisposal(ctx, id); err != nil {
		return fmt.Errorf("store.DeleteDisposal: %w", err)
	}

	s.audit.Record(ctx, domain.AuditDelete, auditTable, id, disposal, nil, actorID)

	return nil
}
