package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/store/xpgx"
)

var disposalColumns = []string{"id", "user_id", "waste_id", "name", "weight", "datetime", "location_id", "created_at", "updated_at"}

func (s *store) CreateDisposal(ctx context.Context, disposal *domain.Disposal) error {
	query := builder().Insert(tableDisposals).
		Columns("user_id", "waste_id", "name", "weight", "datetime", "location_id").
		Values(disposal.UserID, disposal.WasteID, disposal.Name, disposal.Weight, disposal.Datetime, disposal.LocationID).
		Suffix("RETURNING id")

	id, err := xpgx.GetScalarx[int64](ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}

	disposal.ID = id
	return nil
}

func (s *store) GetDisposalByID(ctx context.Context, id int64) (*domain.Disposal, error) {
	query := builder().Select(disposalColumns...).
		From(tableDisposals).
		Where(squirrel.Eq{"id": id})

	selected, err := xpgx.Getx[domain.Disposal](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListDisposals(ctx context.Context) ([]*domain.Disposal, error) {
	query := builder().Select(disposalColumns...).
		From(tableDisposals).
		OrderBy("datetime DESC")

	selected, err := xpgx.Selectx[domain.Disposal](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpdateDisposal(ctx context.Context, disposal *domain.Disposal) error {
	query := builder().Update(tableDisposals).
		Set("waste_id", disposal.WasteID).
		Set("name", disposal.Name).
		Set("weight", disposal.Weight).
		Set("datetime", disposal.Datetime).
		Set("location_id", disposal.LocationID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": disposal.ID})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) DeleteDisposal(ctx context.Context, id int64) error {
	query := builder().Delete(tableDisposals).
		Where(squirrel.Eq{"id": id})

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
