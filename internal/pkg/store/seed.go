package store

import (
	"context"
	"fmt"

	"github.com/ougirez/ecotrack/internal/pkg/store/xpgx"
)

func ptr(v float64) *float64 { return &v }

// Seed inserts demo reference data for local development. It is a no-op when
// waste types already exist.
func Seed(ctx context.Context, pool *Pool) error {
	count, err := xpgx.GetScalarx[int64](ctx, pool, builder().
		Select("count(1)").
		From(tableWasteTypes))
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	areas := builder().Insert(tableAreas).Columns("city", "area")
	for _, row := range [][]interface{}{
		{"Guatemala", 1},
		{"Guatemala", 10},
		{"Mixco", 4},
	} {
		areas = areas.Values(row...)
	}
	if _, err := pool.Execx(ctx, areas); err != nil {
		return fmt.Errorf("seed areas: %w", err)
	}

	// water index in liters saved per kg recycled, co2 index in kg per kg
	types := builder().Insert(tableWasteTypes).Columns("type_name", "water_savings_index", "co2_emission_index")
	for _, row := range [][]interface{}{
		{"Plastico", 22.0, 1.5},
		{"Vidrio", 2.5, 0.3},
		{"Papel", 26.0, 0.9},
		{"Organico", 0.0, 0.2},
	} {
		types = types.Values(row...)
	}
	if _, err := pool.Execx(ctx, types); err != nil {
		return fmt.Errorf("seed waste types: %w", err)
	}

	wastes := builder().Insert(tableWastes).Columns("waste_type_id", "is_recyclable", "average_weight")
	for _, row := range [][]interface{}{
		{1, true, ptr(0.025)},       // botella PET
		{2, true, ptr(0.35)},        // botella de vidrio
		{3, true, ptr(0.005)},       // hoja de papel
		{4, false, (*float64)(nil)}, // organico, solo por peso
	} {
		wastes = wastes.Values(row...)
	}
	if _, err := pool.Execx(ctx, wastes); err != nil {
		return fmt.Errorf("seed wastes: %w", err)
	}

	return nil
}
