package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/store/xpgx"
)

var locationColumns = []string{"id", "user_id", "name", "area_id", "has_waste_collection", "created_at", "updated_at"}

func (s *store) CreateLocation(ctx context.Context, location *domain.Location) error {
	query := builder().Insert(tableLocations).
		Columns("user_id", "name", "area_id", "has_waste_collection").
		Values(location.UserID, location.Name, location.AreaID, location.HasWasteCollection).
		Suffix("RETURNING id")

	id, err := xpgx.GetScalarx[int64](ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}

	location.ID = id
	return nil
}

func (s *store) GetLocationByID(ctx context.Context, id int64) (*domain.Location, error) {
	query := builder().Select(locationColumns...).
		From(tableLocations).
		Where(squirrel.Eq{"id": id})

	selected, err := xpgx.Getx[domain.Location](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	query := builder().Select(locationColumns...).
		From(tableLocations).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.Location](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateLocation(ctx context.Context, location *domain.Location) error {
	query := builder().Update(tableLocations).
		Set("user_id", location.UserID).
		Set("name", location.Name).
		Set("area_id", location.AreaID).
		Set("has_waste_collection", location.HasWasteCollection).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": location.ID})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) DeleteLocation(ctx context.Context, id int64) error {
	query := builder().Delete(tableLocations).
		Where(squirrel.Eq{"id": id})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
