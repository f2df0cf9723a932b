package analytics

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ougirez/ecotrack/internal/domain"
	"github.com/ougirez/ecotrack/internal/pkg/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore serves canned fact snapshots. Calls to any other Store method
// panic through the embedded nil interface.
type fakeStore struct {
	store.Store
	facts func(opts store.FactQueryOpts) ([]*domain.DisposalFact, error)

	mu       sync.Mutex
	lastOpts store.FactQueryOpts
}

func (f *fakeStore) ListDisposalFacts(_ context.Context, opts store.FactQueryOpts) ([]*domain.DisposalFact, error) {
	f.mu.Lock()
	f.lastOpts = opts
	f.mu.Unlock()
	return f.facts(opts)
}

func (f *fakeStore) last() store.FactQueryOpts {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastOpts
}

func newService(facts []*domain.DisposalFact) (*Service, *fakeStore) {
	fs := &fakeStore{facts: func(store.FactQueryOpts) ([]*domain.DisposalFact, error) {
		return facts, nil
	}}
	return NewAnalyticsService(fs), fs
}

func fact(weight float64, recyclable bool, wasteType, location string, at time.Time) *domain.DisposalFact {
	return &domain.DisposalFact{
		UserID:        1,
		Weight:        weight,
		Datetime:      at,
		IsRecyclable:  recyclable,
		WasteTypeName: wasteType,
		LocationName:  location,
	}
}

func TestRecyclableSplit(t *testing.T) {
	now := time.Now()
	svc, _ := newService([]*domain.DisposalFact{
		fact(5, true, "Plastico", "Centro", now),
		fact(3, false, "Organico", "Centro", now),
		fact(2.5, true, "Vidrio", "Norte", now),
	})

	split, err := svc.RecyclableSplit(context.Background(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 7.5, split.RecyclableWeight, 1e-9)
	assert.InDelta(t, 3.0, split.NonRecyclableWeight, 1e-9)
}

func TestRecyclableSplit_Empty(t *testing.T) {
	svc, _ := newService(nil)

	split, err := svc.RecyclableSplit(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, split.RecyclableWeight)
	assert.Zero(t, split.NonRecyclableWeight)
}

func TestTopLocationsByWeight(t *testing.T) {
	now := time.Now()
	svc, _ := newService([]*domain.DisposalFact{
		fact(1, true, "Plastico", "A", now),
		fact(10, true, "Plastico", "B", now),
		fact(4, true, "Plastico", "C", now),
		fact(3, true, "Plastico", "A", now), // A totals 4, ties with C
		fact(2, true, "Plastico", "D", now),
		fact(0.5, true, "Plastico", "E", now),
		fact(0.1, true, "Plastico", "F", now),
	})

	rows, err := svc.TopLocationsByWeight(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, "B", rows[0].LocationName)
	assert.InDelta(t, 10, rows[0].TotalWeight, 1e-9)
	// tie between A and C resolves to first-seen order
	assert.Equal(t, "A", rows[1].LocationName)
	assert.Equal(t, "C", rows[2].LocationName)
	assert.Equal(t, "D", rows[3].LocationName)
	assert.Equal(t, "E", rows[4].LocationName)
}

func TestTopLocationsByWeight_EmptySentinel(t *testing.T) {
	svc, _ := newService(nil)

	rows, err := svc.TopLocationsByWeight(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "N/A", rows[0].LocationName)
	assert.Zero(t, rows[0].TotalWeight)
}

func TestTopWasteTypesByWeight(t *testing.T) {
	now := time.Now()
	svc, _ := newService([]*domain.DisposalFact{
		fact(2, true, "Papel", "A", now),
		fact(6, true, "Vidrio", "A", now),
		fact(3, true, "Papel", "A", now),
	})

	rows, err := svc.TopWasteTypesByWeight(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Vidrio", rows[0].WasteType)
	assert.Equal(t, "Papel", rows[1].WasteType)
	assert.InDelta(t, 5, rows[1].TotalWeight, 1e-9)
}

func TestTopWasteTypesByWeight_EmptyStaysEmpty(t *testing.T) {
	svc, _ := newService(nil)

	rows, err := svc.TopWasteTypesByWeight(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSavings(t *testing.T) {
	now := time.Now()
	facts := []*domain.DisposalFact{
		{Weight: 2, WaterSavingsIndex: 22, CO2EmissionIndex: 1.5, Datetime: now},
		{Weight: 3, WaterSavingsIndex: 2.5, CO2EmissionIndex: 0.3, Datetime: now},
	}
	svc, _ := newService(facts)

	water, err := svc.WaterSavings(context.Background(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 2*22+3*2.5, water, 1e-9)

	co2, err := svc.CO2Savings(context.Background(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 2*1.5+3*0.3, co2, 1e-9)
}

func TestSavings_Empty(t *testing.T) {
	svc, _ := newService(nil)

	water, err := svc.WaterSavings(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, water)

	co2, err := svc.CO2Savings(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, co2)
}

func TestWeightByDayLast7Days(t *testing.T) {
	// fixed dates so the DD/MM labels are deterministic
	d1 := time.Date(2024, 3, 9, 10, 0, 0, 0, time.Local)
	d2 := time.Date(2024, 3, 11, 15, 0, 0, 0, time.Local)

	svc, fs := newService([]*domain.DisposalFact{
		fact(2, true, "Plastico", "A", d2),
		fact(1, true, "Plastico", "A", d1),
		fact(3, true, "Plastico", "A", d1),
	})

	rows, err := svc.WeightByDayLast7Days(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, store.WindowRollingDays, fs.last().Window.Kind)
	assert.Equal(t, 7, fs.last().Window.N)

	assert.Equal(t, "09/03", rows[0].DayMonth)
	assert.InDelta(t, 4, rows[0].TotalWeight, 1e-9)
	assert.Equal(t, "11/03", rows[1].DayMonth)
	assert.InDelta(t, 2, rows[1].TotalWeight, 1e-9)
}

func TestWeightByDayLast7Days_LabelOrderIsLexicographic(t *testing.T) {
	// 28/02 precedes 02/03 in time but follows it lexicographically
	feb := time.Date(2024, 2, 28, 9, 0, 0, 0, time.Local)
	mar := time.Date(2024, 3, 2, 9, 0, 0, 0, time.Local)

	svc, _ := newService([]*domain.DisposalFact{
		fact(1, true, "Plastico", "A", feb),
		fact(2, true, "Plastico", "A", mar),
	})

	rows, err := svc.WeightByDayLast7Days(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "02/03", rows[0].DayMonth)
	assert.Equal(t, "28/02", rows[1].DayMonth)
}

func TestWeightByDayLast7Days_EmptySentinel(t *testing.T) {
	svc, _ := newService(nil)

	rows, err := svc.WeightByDayLast7Days(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "N/A", rows[0].DayMonth)
}

func TestWasteToday(t *testing.T) {
	now := time.Now()
	svc, fs := newService([]*domain.DisposalFact{
		fact(1.5, true, "Plastico", "A", now),
		fact(2, false, "Organico", "A", now),
	})

	total, err := svc.WasteToday(context.Background(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, total, 1e-9)
	assert.Equal(t, store.WindowCalendarToday, fs.last().Window.Kind)
}

func TestCompareTodayToMonthlyAverage(t *testing.T) {
	now := time.Now()
	// three active days totalling 15kg: average 5, today 3
	svc, _ := newService([]*domain.DisposalFact{
		fact(7, true, "Plastico", "A", now.AddDate(0, 0, -10)),
		fact(5, true, "Plastico", "A", now.AddDate(0, 0, -4)),
		fact(3, true, "Plastico", "A", now),
	})

	cmp, err := svc.CompareTodayToMonthlyAverage(context.Background(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 5, cmp.DailyAverage, 1e-9)
	assert.InDelta(t, 3, cmp.WasteToday, 1e-9)
	assert.Equal(t, "40.00", cmp.PercentageDifference)
	assert.Empty(t, cmp.Message)
}

func TestCompareTodayToMonthlyAverage_TodayAboveAverage(t *testing.T) {
	now := time.Now()
	// two active days totalling 4kg: average 2, today 4
	svc, _ := newService([]*domain.DisposalFact{
		fact(0, true, "Plastico", "A", now.AddDate(0, 0, -2)),
		fact(4, true, "Plastico", "A", now),
	})

	cmp, err := svc.CompareTodayToMonthlyAverage(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "-100.00", cmp.PercentageDifference)
}

func TestCompareTodayToMonthlyAverage_NoData(t *testing.T) {
	svc, _ := newService(nil)

	cmp, err := svc.CompareTodayToMonthlyAverage(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "No data from last month to calculate the daily average.", cmp.Message)
	assert.Empty(t, cmp.PercentageDifference)
}

func TestSummary(t *testing.T) {
	now := time.Now()
	svc, _ := newService([]*domain.DisposalFact{
		{Weight: 5, IsRecyclable: true, WasteTypeName: "Plastico", LocationName: "A", WaterSavingsIndex: 22, CO2EmissionIndex: 1.5, Datetime: now},
		{Weight: 3, IsRecyclable: false, WasteTypeName: "Organico", LocationName: "B", WaterSavingsIndex: 0, CO2EmissionIndex: 0.2, Datetime: now},
	})

	summary, err := svc.Summary(context.Background(), nil)
	require.NoError(t, err)
	assert.InDelta(t, 5, summary.RecyclableSplit.RecyclableWeight, 1e-9)
	assert.InDelta(t, 3, summary.RecyclableSplit.NonRecyclableWeight, 1e-9)
	require.Len(t, summary.TopLocations, 2)
	require.Len(t, summary.TopWasteTypes, 2)
	assert.InDelta(t, 5*22, summary.WaterSavings, 1e-9)
	assert.InDelta(t, 5*1.5+3*0.2, summary.CO2Savings, 1e-9)
}

func TestScopeForwardedToStore(t *testing.T) {
	svc, fs := newService(nil)

	userID := int64(42)
	_, err := svc.RecyclableSplit(context.Background(), &userID)
	require.NoError(t, err)
	require.NotNil(t, fs.last().UserID)
	assert.Equal(t, userID, *fs.last().UserID)

	_, err = svc.WaterSavings(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, fs.last().UserID)
}
