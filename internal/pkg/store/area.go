package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/store/xpgx"
)

var areaColumns = []string{"id", "city", "area", "created_at", "updated_at"}

func (s *store) CreateArea(ctx context.Context, area *domain.Area) error {
	query := builder().Insert(tableAreas).
		Columns("city", "area").
		Values(area.City, area.Area).
		Suffix("RETURNING id")

	id, err := xpgx.GetScalarx[int64](ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}

	area.ID = id
	return nil
}

func (s *store) GetAreaByID(ctx context.Context, id int64) (*domain.Area, error) {
	query := builder().Select(areaColumns...).
		From(tableAreas).
		Where(squirrel.Eq{"id": id})

	selected, err := xpgx.Getx[domain.Area](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListAreas(ctx context.Context) ([]*domain.Area, error) {
	query := builder().Select(areaColumns...).
		From(tableAreas).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.Area](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateArea(ctx context.Context, area *domain.Area) error {
	query := builder().Update(tableAreas).
		Set("city", area.City).
		Set("area", area.Area).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": area.ID})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) DeleteArea(ctx context.Context, id int64) error {
	query := builder().Delete(tableAreas).
		Where(squirrel.Eq{"id": id})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
