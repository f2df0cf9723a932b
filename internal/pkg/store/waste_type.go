package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/store/xpgx"
)

var wasteTypeColumns = []string{"id", "type_name", "water_savings_index", "co2_emission_index", "created_at", "updated_at"}

func (s *store) CreateWasteType(ctx context.Context, wt *domain.WasteType) error {
	query := builder().Insert(tableWasteTypes).
		Columns("type_name", "water_savings_index", "co2_emission_index").
		Values(wt.TypeName, wt.WaterSavingsIndex, wt.CO2EmissionIndex).
		Suffix("RETURNING id")

	id, err := xpgx.GetScalarx[int64](ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}

	wt.ID = id
	return nil
}

func (s *store) GetWasteTypeByID(ctx context.Context, id int64) (*domain.WasteType, error) {
	query := builder().Select(wasteTypeColumns...).
		From(tableWasteTypes).
		Where(squirrel.Eq{"id": id})

	selected, err := xpgx.Getx[domain.WasteType](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListWasteTypes(ctx context.Context) ([]*domain.WasteType, error) {
	query := builder().Select(wasteTypeColumns...).
		From(tableWasteTypes).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.WasteType](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateWasteType(ctx context.Context, wt *domain.WasteType) error {
	query := builder().Update(tableWasteTypes).
		Set("type_name", wt.TypeName).
		Set("water_savings_index", wt.WaterSavingsIndex).
		Set("co2_emission_index", wt.CO2EmissionIndex).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": wt.ID})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) DeleteWasteType(ctx context.Context, id int64) error {
	query := builder().Delete(tableWasteTypes).
		Where(squirrel.Eq{"id": id})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
