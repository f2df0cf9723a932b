package store

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/store/xpgx"
)

// WindowKind distinguishes rolling timestamp cutoffs from calendar-date
// equality. "Today" is calendar today, not the last 24 hours.
type WindowKind int

const (
	WindowRollingDays WindowKind = iota
	WindowRollingMonths
	WindowCalendarToday
)

// Window is the time range an analytics query covers.
type Window struct {
	Kind WindowKind
	N    int
}

func LastDays(n int) Window   { return Window{Kind: WindowRollingDays, N: n} }
func LastMonths(n int) Window { return Window{Kind: WindowRollingMonths, N: n} }
func Today() Window           { return Window{Kind: WindowCalendarToday} }

// FactQueryOpts scopes a fact query. A nil UserID spans all users.
type FactQueryOpts struct {
	UserID *int64
	Window Window
}

// ListDisposalFacts fetches every disposal in the window joined with its
// waste, waste-type and location attributes, in one query, so callers
// aggregate over a single consistent snapshot.
func (s *store) ListDisposalFacts(ctx context.Context, opts FactQueryOpts) ([]*domain.DisposalFact, error) {
	query := builder().Select(
		"uw.user_id",
		"uw.weight",
		"uw.datetime",
		"w.is_recyclable",
		"wt.type_name AS waste_type_name",
		"wt.water_savings_index",
		"wt.co2_emission_index",
		"l.name AS location_name",
	).
		From(tableDisposals + " uw").
		Join(tableWastes + " w ON uw.waste_id = w.id").
		Join(tableWasteTypes + " wt ON w.waste_type_id = wt.id").
		Join(tableLocations + " l ON uw.location_id = l.id").
		OrderBy("uw.datetime")

	switch opts.Window.Kind {
	case WindowRollingDays:
		query = query.Where(squirrel.Expr("uw.datetime >= now() - make_interval(days => ?)", opts.Window.N))
	case WindowRollingMonths:
		query = query.Where(squirrel.Expr("uw.datetime >= now() - make_interval(months => ?)", opts.Window.N))
	case WindowCalendarToday:
		query = query.Where(squirrel.Expr("uw.datetime::date = current_date"))
	}

	if opts.UserID != nil {
		query = query.Where(squirrel.Eq{"uw.user_id": *opts.UserID})
	}

	selected, err := xpgx.Selectx[domain.DisposalFact](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
