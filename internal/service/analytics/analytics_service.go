// Package analytics computes the environmental-impact reports over disposal
// records. Every operation reduces one windowed fact snapshot fetched from
// the store; no operation mutates anything.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/store"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const topLimit = 5

const dayLabelFormat = "02/01" // DD/MM, as the mobile client renders it

type Service struct {
	store store.Store
}

func NewAnalyticsService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) monthFacts(ctx context.Context, scope *int64) ([]*domain.DisposalFact, error) {
	facts, err := s.store.ListDisposalFacts(ctx, store.FactQueryOpts{UserID: scope, Window: store.LastMonths(1)})
	if err != nil {
		return nil, fmt.Errorf("store.ListDisposalFacts: %w", err)
	}
	return facts, nil
}

// groupTotals sums weight per key. Keys keep first-seen order so that ties
// resolve the same way on every call over the same snapshot.
func groupTotals(facts []*domain.DisposalFact, key func(*domain.DisposalFact) string) ([]string, map[string]float64) {
	order := make([]string, 0, len(facts))
	totals := make(map[string]float64, len(facts))

	for _, f := range facts {
		k := key(f)
		if _, ok := totals[k]; !ok {
			order = append(order, k)
		}
		totals[k] += f.Weight
	}

	return order, totals
}

// topKeys orders grouped keys by total weight descending and truncates to
// limit. Ties keep first-seen order.
func topKeys(order []string, totals map[string]float64, limit int) []string {
	keys := make([]string, len(order))
	copy(keys, order)

	sort.SliceStable(keys, func(i, j int) bool {
		return totals[keys[i]] > totals[keys[j]]
	})

	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}

// RecyclableSplit partitions the last month's total weight by the
// recyclable flag. An empty window yields {0, 0}.
func (s *Service) RecyclableSplit(ctx context.Context, scope *int64) (*domain.RecyclableSplit, error) {
	facts, err := s.monthFacts(ctx, scope)
	if err != nil {
		return nil, err
	}

	split := &domain.RecyclableSplit{}
	for _, f := range facts {
		if f.IsRecyclable {
			split.RecyclableWeight += f.Weight
		} else {
			split.NonRecyclableWeight += f.Weight
		}
	}

	return split, nil
}

// TopLocationsByWeight returns the five heaviest locations of the last
// month. An empty window yields the single {"N/A", 0} row the client
// expects, never an empty list.
func (s *Service) TopLocationsByWeight(ctx context.Context, scope *int64) ([]domain.LocationWeight, error) {
	facts, err := s.monthFacts(ctx, scope)
	if err != nil {
		return nil, err
	}

	order, totals := groupTotals(facts, func(f *domain.DisposalFact) string { return f.LocationName })
	if len(order) == 0 {
		return []domain.LocationWeight{{LocationName: "N/A", TotalWeight: 0}}, nil
	}

	rows := make([]domain.LocationWeight, 0, topLimit)
	for _, k := range topKeys(order, totals, topLimit) {
		rows = append(rows, domain.LocationWeight{LocationName: k, TotalWeight: totals[k]})
	}
	return rows, nil
}

// TopWasteTypesByWeight returns the five heaviest waste types of the last
// month. Unlike locations, an empty window yields an empty list; the
// consuming client handles this case itself.
func (s *Service) TopWasteTypesByWeight(ctx context.Context, scope *int64) ([]domain.WasteTypeWeight, error) {
	facts, err := s.monthFacts(ctx, scope)
	if err != nil {
		return nil, err
	}

	order, totals := groupTotals(facts, func(f *domain.DisposalFact) string { return f.WasteTypeName })

	rows := make([]domain.WasteTypeWeight, 0, topLimit)
	for _, k := range topKeys(order, totals, topLimit) {
		rows = append(rows, domain.WasteTypeWeight{WasteType: k, TotalWeight: totals[k]})
	}
	return rows, nil
}

// WaterSavings estimates liters of water saved over the last month:
// SUM(weight × water index). Empty window yields 0.
func (s *Service) WaterSavings(ctx context.Context, scope *int64) (float64, error) {
	facts, err := s.monthFacts(ctx, scope)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, f := range facts {
		total += f.Weight * f.WaterSavingsIndex
	}
	return total, nil
}

// CO2Savings estimates kilograms of CO2 saved over the last month:
// SUM(weight × co2 index). Empty window yields 0.
func (s *Service) CO2Savings(ctx context.Context, scope *int64) (float64, error) {
	facts, err := s.monthFacts(ctx, scope)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, f := range facts {
		total += f.Weight * f.CO2EmissionIndex
	}
	return total, nil
}

// WeightByDayLast7Days returns per-day totals for the rolling 7-day window,
// labelled "DD/MM" and ordered by label ascending. The label ordering is
// lexicographic, matching what the original reports produced. Days without
// records are omitted; an empty window yields the single {"N/A", 0} row.
func (s *Service) WeightByDayLast7Days(ctx context.Context, scope *int64) ([]domain.DayWeight, error) {
	facts, err := s.store.ListDisposalFacts(ctx, store.FactQueryOpts{UserID: scope, Window: store.LastDays(7)})
	if err != nil {
		return nil, fmt.Errorf("store.ListDisposalFacts: %w", err)
	}

	order, totals := groupTotals(facts, func(f *domain.DisposalFact) string {
		return f.Datetime.Local().Format(dayLabelFormat)
	})
	if len(order) == 0 {
		return []domain.DayWeight{{DayMonth: "N/A", TotalWeight: 0}}, nil
	}

	sort.Strings(order)

	rows := make([]domain.DayWeight, 0, len(order))
	for _, k := range order {
		rows = append(rows, domain.DayWeight{DayMonth: k, TotalWeight: totals[k]})
	}
	return rows, nil
}

// WasteToday sums the weight of records whose calendar date is today.
func (s *Service) WasteToday(ctx context.Context, scope *int64) (float64, error) {
	facts, err := s.store.ListDisposalFacts(ctx, store.FactQueryOpts{UserID: scope, Window: store.Today()})
	if err != nil {
		return 0, fmt.Errorf("store.ListDisposalFacts: %w", err)
	}

	var total float64
	for _, f := range facts {
		total += f.Weight
	}
	return total, nil
}

// CompareTodayToMonthlyAverage relates today's total to the daily average of
// the last month. Both figures come from the same month snapshot: today's
// records always fall inside the rolling month, so one read keeps the two
// sub-aggregates consistent even under concurrent writes. A zero average
// produces the no-data message instead of a division.
func (s *Service) CompareTodayToMonthlyAverage(ctx context.Context, scope *int64) (*domain.TodayComparison, error) {
	facts, err := s.monthFacts(ctx, scope)
	if err != nil {
		return nil, err
	}

	const dayKey = "2006-01-02"
	today := time.Now().Local().Format(dayKey)

	var monthTotal, todayTotal float64
	days := make(map[string]struct{})
	for _, f := range facts {
		monthTotal += f.Weight
		day := f.Datetime.Local().Format(dayKey)
		days[day] = struct{}{}
		if day == today {
			todayTotal += f.Weight
		}
	}

	if len(days) == 0 || monthTotal == 0 {
		return &domain.TodayComparison{Message: "No data from last month to calculate the daily average."}, nil
	}

	dailyAverage := monthTotal / float64(len(days))

	diff := decimal.NewFromFloat(dailyAverage).
		Sub(decimal.NewFromFloat(todayTotal)).
		Div(decimal.NewFromFloat(dailyAverage)).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	return &domain.TodayComparison{
		DailyAverage:         dailyAverage,
		WasteToday:           todayTotal,
		PercentageDifference: diff.StringFixed(2),
	}, nil
}

// Summary fans out the month-window reports concurrently for the dashboard.
func (s *Service) Summary(ctx context.Context, scope *int64) (*domain.AnalyticsSummary, error) {
	summary := &domain.AnalyticsSummary{}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		split, err := s.RecyclableSplit(egCtx, scope)
		if err != nil {
			return err
		}
		summary.RecyclableSplit = *split
		return nil
	})
	eg.Go(func() error {
		rows, err := s.TopLocationsByWeight(egCtx, scope)
		if err != nil {
			return err
		}
		summary.TopLocations = rows
		return nil
	})
	eg.Go(func() error {
		rows, err := s.TopWasteTypesByWeight(egCtx, scope)
		if err != nil {
			return err
		}
		summary.TopWasteTypes = rows
		return nil
	})
	eg.Go(func() error {
		total, err := s.WaterSavings(egCtx, scope)
		if err != nil {
			return err
		}
		summary.WaterSavings = total
		return nil
	})
	eg.Go(func() error {
		total, err := s.CO2Savings(egCtx, scope)
		if err != nil {
			return err
		}
		summary.CO2Savings = total
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return summary, nil
}
