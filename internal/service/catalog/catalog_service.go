// Package catalog manages the administrative reference entities: areas,
// locations, waste types and wastes.
package catalog

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

func NewCatalogService(store store.Store, audit *audit.Service) *Service {
	return &Service{store: store, audit: audit}
}

// --- areas ---

func (s *Service) CreateArea(ctx context.Context, request *dto.AreaRequest, actorID int64) (*domain.Area, error) {
	area := &domain.Area{City: request.City, Area: request.Area}
	if err := s.store.CreateArea(ctx, area); err != nil {
		return nil, fmt.Errorf("store.CreateArea: %w", err)
	}

	s.audit.Record(ctx, domain.AuditCreate, "area", area.ID, nil, area, actorID)
	return area, nil
}

func (s *Service) GetArea(ctx context.Context, id int64) (*domain.Area, error) {
	return s.store.GetAreaByID(ctx, id)
}

func (s *Service) ListAreas(ctx context.Context) ([]*domain.Area, error) {
	return s.store.ListAreas(ctx)
}

func (s *Service) UpdateArea(ctx context.Context, id int64, request *dto.AreaRequest, actorID int64) (*domain.Area, error) {
	area, err := s.store.GetAreaByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetAreaByID: %w", err)
	}
	old := *area

	area.City = request.City
	area.Area = request.Area
	if err := s.store.UpdateArea(ctx, area); err != nil {
		return nil, fmt.Errorf("store.UpdateArea: %w", err)
	}

	s.audit.Record(ctx, domain.AuditUpdate, "area", area.ID, &old, area, actorID)
	return area, nil
}

func (s *Service) DeleteArea(ctx context.Context, id int64, actorID int64) error {
	area, err := s.store.GetAreaByID(ctx, id)
	if err != nil {
		return fmt.Errorf("store.GetAreaByID: %w", err)
	}

	if err := s.store.DeleteArea(ctx, id); err != nil {
		return fmt.Errorf("store.DeleteArea: %w", err)
	}

	s.audit.Record(ctx, domain.AuditDelete, "area", id, area, nil, actorID)
	return nil
}

// --- locations ---

func (s *Service) CreateLocation(ctx context.Context, request *dto.LocationRequest, actorID int64) (*domain.Location, error) {
	if _, err := s.store.GetUserByID(ctx, request.UserID); err != nil {
		return nil, fmt.Errorf("store.GetUserByID: %w", err)
	}
	if _, err := s.store.GetAreaByID(ctx, request.AreaID); err != nil {
		return nil, fmt.Errorf("store.GetAreaByID: %w", err)
	}

	location := &domain.Location{
		UserID:             request.UserID,
		Name:               request.Name,
		AreaID:             request.AreaID,
		HasWasteCollection: request.HasWasteCollection,
	}
	if location.HasWasteCollection == "" {
		location.HasWasteCollection = domain.WasteCollectionNotSure
	}

	if err := s.store.CreateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("store.CreateLocation: %w", err)
	}

	s.audit.Record(ctx, domain.AuditCreate, "location", location.ID, nil, location, actorID)
	return location, nil
}

func (s *Service) GetLocation(ctx context.Context, id int64) (*domain.Location, error) {
	return s.store.GetLocationByID(ctx, id)
}

func (s *Service) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	return s.store.ListLocations(ctx)
}

func (s *Service) UpdateLocation(ctx context.Context, id int64, request *dto.LocationRequest, actorID int64) (*domain.Location, error) {
	location, err := s.store.GetLocationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetLocationByID: %w", err)
	}
	old := *location

	location.UserID = request.UserID
	location.Name = request.Name
	location.AreaID = request.AreaID
	if request.HasWasteCollection != "" {
		location.HasWasteCollection = request.HasWasteCollection
	}

	if err := s.store.UpdateLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("store.UpdateLocation: %w", err)
	}

	s.audit.Record(ctx, domain.AuditUpdate, "location", location.ID, &old, location, actorID)
	return location, nil
}

func (s *Service) DeleteLocation(ctx context.Context, id int64, actorID int64) error {
	location, err := s.store.GetLocationByID(ctx, id)
	if err != nil {
		return fmt.Errorf("store.GetLocationByID: %w", err)
	}

	if err := s.store.DeleteLocation(ctx, id); err != nil {
		return fmt.Errorf("store.DeleteLocation: %w", err)
	}

	s.audit.Record(ctx, domain.AuditDelete, "location", id, location, nil, actorID)
	return nil
}

// --- waste types ---

func (s *Service) CreateWasteType(ctx context.Context, request *dto.WasteTypeRequest, actorID int64) (*domain.WasteType, error) {
	wt := &domain.WasteType{
		TypeName:          request.TypeName,
		WaterSavingsIndex: request.WaterSavingsIndex,
		CO2EmissionIndex:  request.CO2EmissionIndex,
	}
	if err := s.store.CreateWasteType(ctx, wt); err != nil {
		return nil, fmt.Errorf("store.CreateWasteType: %w", err)
	}

	s.audit.Record(ctx, domain.AuditCreate, "waste_type", wt.ID, nil, wt, actorID)
	return wt, nil
}

func (s *Service) GetWasteType(ctx context.Context, id int64) (*domain.WasteType, error) {
	return s.store.GetWasteTypeByID(ctx, id)
}

func (s *Service) ListWasteTypes(ctx context.Context) ([]*domain.WasteType, error) {
	return s.store.ListWasteTypes(ctx)
}

func (s *Service) UpdateWasteType(ctx context.Context, id int64, request *dto.WasteTypeRequest, actorID int64) (*domain.WasteType, error) {
	wt, err := s.store.GetWasteTypeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetWasteTypeByID: %w", err)
	}
	old := *wt

	wt.TypeName = request.TypeName
	wt.WaterSavingsIndex = request.WaterSavingsIndex
	wt.CO2EmissionIndex = request.CO2EmissionIndex

	if err := s.store.UpdateWasteType(ctx, wt); err != nil {
		return nil, fmt.Errorf("store.UpdateWasteType: %w", err)
	}

	s.audit.Record(ctx, domain.AuditUpdate, "waste_type", wt.ID, &old, wt, actorID)
	return wt, nil
}

func (s *Service) DeleteWasteType(ctx context.Context, id int64, actorID int64) error {
	wt, err := s.store.GetWasteTypeByID(ctx, id)
	if err != nil {
		return fmt.Errorf("store.GetWasteTypeByID: %w", err)
	}

	if err := s.store.DeleteWasteType(ctx, id); err != nil {
		return fmt.Errorf("store.DeleteWasteType: %w", err)
	}

	s.audit.Record(ctx, domain.AuditDelete, "waste_type", id, wt, nil, actorID)
	return nil
}

// --- wastes ---

func (s *Service) CreateWaste(ctx context.Context, request *dto.WasteRequest, actorID int64) (*domain.Waste, error) {
	if _, err := s.store.GetWasteTypeByID(ctx, request.WasteTypeID); err != nil {
		return nil, fmt.Errorf("store.GetWasteTypeByID: %w", err)
	}

	waste := &domain.Waste{
		WasteTypeID:   request.WasteTypeID,
		IsRecyclable:  *request.IsRecyclable,
		AverageWeight: request.AverageWeight,
	}
	if err := s.store.CreateWaste(ctx, waste); err != nil {
		return nil, fmt.Errorf("store.CreateWaste: %w", err)
	}

	s.audit.Record(ctx, domain.AuditCreate, "waste", waste.ID, nil, waste, actorID)
	return waste, nil
}

func (s *Service) GetWaste(ctx context.Context, id int64) (*domain.Waste, error) {
	return s.store.GetWasteByID(ctx, id)
}

func (s *Service) ListWastes(ctx context.Context) ([]*domain.Waste, error) {
	return s.store.ListWastes(ctx)
}

func (s *Service) UpdateWaste(ctx context.Context, id int64, request *dto.WasteRequest, actorID int64) (*domain.Waste, error) {
	waste, err := s.store.GetWasteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetWasteByID: %w", err)
	}
	old := *waste

	if _, err := s.store.GetWasteTypeByID(ctx, request.WasteTypeID); err != nil {
		return nil, fmt.Errorf("store.GetWasteTypeByID: %w", err)
	}

	waste.WasteTypeID = request.WasteTypeID
	waste.IsRecyclable = *request.IsRecyclable
	waste.AverageWeight = request.AverageWeight

	if err := s.store.UpdateWaste(ctx, waste); err != nil {
		return nil, fmt.Errorf("store.UpdateWaste: %w", err)
	}

	s.audit.Record(ctx, domain.AuditUpdate, "waste", waste.ID, &old, waste, actorID)
	return waste, nil
}

func (s *Service) DeleteWaste(ctx context.Context, id int64, actorID int64) error {
	waste, err := s.store.GetWasteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("store.GetWasteByID: %w", err)
	}

	if err := s.store.DeleteWaste(ctx, id); err != nil {
		return fmt.Errorf("store.DeleteWaste: %w", err)
	}

	s.audit.Record(ctx, domain.AuditDelete, "waste", id, waste, nil, actorID)
	return nil
}
