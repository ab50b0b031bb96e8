package services

import (
	"context"
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shipment-dashboard/internal/entities"
	"shipment-dashboard/pkg/types"
)

type fakeShipmentRepo struct {
	shipments []entities.Shipment
	financial []types.FinancialSummaryRow
}

func (r *fakeShipmentRepo) GetShipments(_ context.Context, _ entities.ShipmentFilter) ([]entities.Shipment, uint64, error) {
	return r.shipments, uint64(len(r.shipments)), nil
}

func (r *fakeShipmentRepo) GetFinancialSummary(_ context.Context, _ entities.ShipmentFilter) ([]types.FinancialSummaryRow, error) {
	return r.financial, nil
}

type fakeCacheRepo struct {
	store map[string]string
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{store: make(map[string]string)}
}

func (c *fakeCacheRepo) Get(_ context.Context, key string) (string, error) {
	return c.store[key], nil
}

func (c *fakeCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.store[key] = value.(string)
	return nil
}

func (c *fakeCacheRepo) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.store, k)
	}
	return nil
}

func testShipments() []entities.Shipment {
	return []entities.Shipment{
		{
			JobNo:       "J1",
			Mode:        null.StringFrom("SEA"),
			CntrNo:      null.StringFrom("C1"),
			CntrSize:    null.StringFrom("20F"),
			CntrStatus:  null.StringFrom("FCL/FCL"),
			AtdDate:     null.StringFrom("01/01/2024"),
			AtaDate:     null.StringFrom("05/01/2024"), // 4 дня, в срок
			EtaDate:     null.StringFrom("05/01/2024"),
			GrossWeight: null.Float64From(1000),
			LinerName:   null.StringFrom("Maersk"),
		},
		{
			JobNo:       "J2",
			Mode:        null.StringFrom("SEA"),
			CntrNo:      null.StringFrom("C2"),
			CntrSize:    null.StringFrom("40H"),
			CntrStatus:  null.StringFrom("FCL/FCL"),
			AtdDate:     null.StringFrom("01/02/2024"),
			AtaDate:     null.StringFrom("11/02/2024"), // 10 дней, опоздание
			EtaDate:     null.StringFrom("10/02/2024"),
			GrossWeight: null.Float64From(2000),
			LinerName:   null.StringFrom("CMA CGM"),
		},
	}
}

func TestGetDashboardStats_Aggregates(t *testing.T) {
	repo := &fakeShipmentRepo{shipments: testShipments()}
	svc := NewDashboardService(repo, nil, zap.NewNop(), time.Minute)

	stats, err := svc.GetDashboardStats(context.Background(), entities.ShipmentFilter{})
	require.NoError(t, err)

	assert.Equal(t, uint64(2), stats.TotalShipments)
	assert.Equal(t, 3, stats.TotalTEU, "20F=1 + 40H=2")

	assert.Equal(t, 2, stats.Transit.TransitShipmentCount)
	assert.InDelta(t, 7, stats.Transit.AvgDays, 1e-9)
	assert.InDelta(t, 50, stats.Transit.OnTimePct, 1e-9)

	assert.Equal(t, map[string]int{"SEA": 2}, stats.ModeBreakdown)

	require.Len(t, stats.MonthlyVolume, 2)
	assert.Equal(t, "2024-01", stats.MonthlyVolume[0].Label)
	assert.Equal(t, "2024-02", stats.MonthlyVolume[1].Label)
	assert.Equal(t, 1, stats.MonthlyVolume[0].TEU)
	assert.InDelta(t, 1000, stats.MonthlyVolume[0].GrossWeightKg, 1e-9)

	// SEA: 80 кг CO2 на тонну
	assert.InDelta(t, 3, stats.Emissions.WeightTonnes, 1e-9)
	assert.InDelta(t, 0.24, stats.Emissions.TotalTonnes, 1e-9)

	require.NotNil(t, stats.Liners.BestLiner)
	assert.Equal(t, "Maersk", stats.Liners.BestLiner.Name)
}

func TestGetDashboardStats_DateRangeFilteredInService(t *testing.T) {
	repo := &fakeShipmentRepo{shipments: testShipments()}
	svc := NewDashboardService(repo, nil, zap.NewNop(), time.Minute)

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	stats, err := svc.GetDashboardStats(context.Background(), entities.ShipmentFilter{DateFrom: &from})
	require.NoError(t, err)

	assert.Equal(t, uint64(1), stats.TotalShipments, "при активном фильтре дат счетчик берется по отфильтрованной выборке")
	assert.Equal(t, 2, stats.TotalTEU)
	assert.Equal(t, 1, stats.Transit.TransitShipmentCount)
}

func TestGetDashboardStats_ServedFromCache(t *testing.T) {
	repo := &fakeShipmentRepo{shipments: testShipments()}
	cache := newFakeCacheRepo()
	svc := NewDashboardService(repo, cache, zap.NewNop(), time.Minute)

	first, err := svc.GetDashboardStats(context.Background(), entities.ShipmentFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, cache.store)

	// данные в репозитории поменялись, но TTL еще не вышел
	repo.shipments = nil

	second, err := svc.GetDashboardStats(context.Background(), entities.ShipmentFilter{})
	require.NoError(t, err)
	assert.Equal(t, first.TotalShipments, second.TotalShipments)
	assert.Equal(t, first.TotalTEU, second.TotalTEU)
}
