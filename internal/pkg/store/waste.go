package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/store/xpgx"
)

var wasteColumns = []string{"id", "waste_type_id", "is_recyclable", "average_weight", "created_at", "updated_at"}

func (s *store) CreateWaste(ctx context.Context, waste *domain.Waste) error {
	query := builder().Insert(tableWastes).
		Columns("waste_type_id", "is_recyclable", "average_weight").
		Values(waste.WasteTypeID, waste.IsRecyclable, waste.AverageWeight).
		Suffix("RETURNING id")

	id, err := xpgx.GetScalarx[int64](ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}

	waste.ID = id
	return nil
}

func (s *store) GetWasteByID(ctx context.Context, id int64) (*domain.Waste, error) {
	query := builder().Select(wasteColumns...).
		From(tableWastes).
		Where(squirrel.Eq{"id": id})

	selected, err := xpgx.Getx[domain.Waste](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListWastes(ctx context.Context) ([]*domain.Waste, error) {
	query := builder().Select(wasteColumns...).
		From(tableWastes).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.Waste](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateWaste(ctx context.Context, waste *domain.Waste) error {
	query := builder().Update(tableWastes).
		Set("waste_type_id", waste.WasteTypeID).
		Set("is_recyclable", waste.IsRecyclable).
		Set("average_weight", waste.AverageWeight).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": waste.ID})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) DeleteWaste(ctx context.Context, id int64) error {
	query := builder().Delete(tableWastes).
		Where(squirrel.Eq{"id": id})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
