package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"shipment-dashboard/internal/dto"
	"shipment-dashboard/internal/entities"
	"shipment-dashboard/internal/metrics"
	"shipment-dashboard/internal/repositories"
	apperrors "shipment-dashboard/pkg/errors"
	"shipment-dashboard/pkg/types"
)

type DashboardService struct {
	shipmentRepo repositories.ShipmentRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	logger       *zap.Logger
	cacheTTL     time.Duration
}

func NewDashboardService(
	shipmentRepo repositories.ShipmentRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *DashboardService {
	return &DashboardService{
		shipmentRepo: shipmentRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
		cacheTTL:     cacheTTL,
	}
}

func (s *DashboardService) GetDashboardStats(ctx context.Context, filter entities.ShipmentFilter) (*dto.DashboardStatsDTO, error) {
	cacheKey := dashboardCacheKey(filter)
	if s.cacheRepo != nil {
		if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil && cached != "" {
			var out dto.DashboardStatsDTO
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return &out, nil
			}
			// битый кеш просто игнорируем и пересчитываем
		}
	}

	// Для агрегатов нужна вся выборка, без пагинации
	fullFilter := filter
	fullFilter.Limit = 0
	fullFilter.Offset = 0

	var (
		wg        sync.WaitGroup
		shipments []entities.Shipment
		total     uint64
		financial []types.FinancialSummaryRow

		errs []error
		mu   sync.Mutex
	)

	addTask := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	addTask(func() (err error) { shipments, total, err = s.shipmentRepo.GetShipments(ctx, fullFilter); return })
	addTask(func() (err error) { financial, err = s.shipmentRepo.GetFinancialSummary(ctx, fullFilter); return })

	wg.Wait()

	if len(errs) > 0 {
		s.logger.Error("Dashboard fetching error", zap.Error(errs[0]))
		return nil, apperrors.NewInternalError("Ошибка загрузки дашборда")
	}

	// Диапазон дат отсекаем уже в Go: в БД даты лежат текстом
	shipments = filterByDateRange(shipments, filter.DateFrom, filter.DateTo)

	stats := &dto.DashboardStatsDTO{
		TotalShipments: total,
		TotalTEU:       metrics.CalculateUniqueTEU(shipments),
		Transit:        metrics.CalculateTransitStats(shipments),
		Liners:         metrics.CalculateLinerStats(shipments),
		ModeBreakdown:  modeBreakdown(shipments),
		MonthlyVolume:  monthlyVolumes(shipments),
		Financial:      financial,
		Emissions:      CalculateEmissions(shipments),
	}
	if filter.DateFrom != nil || filter.DateTo != nil {
		stats.TotalShipments = uint64(len(shipments))
	}

	if s.cacheRepo != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cacheRepo.Set(ctx, cacheKey, string(payload), s.cacheTTL); err != nil {
				s.logger.Warn("Не удалось сохранить дашборд в кеш", zap.Error(err))
			}
		}
	}

	return stats, nil
}

func dashboardCacheKey(filter entities.ShipmentFilter) string {
	from, to := "", ""
	if filter.DateFrom != nil {
		from = filter.DateFrom.Format("2006-01-02")
	}
	if filter.DateTo != nil {
		to = filter.DateTo.Format("2006-01-02")
	}
	return fmt.Sprintf("dashboard:%s:%s:%s:%s:%s:%s",
		from, to, filter.Mode, filter.Liner, filter.Consignee, filter.Search)
}

// filterByDateRange отбирает строки по репрезентативной дате отгрузки.
// Строки без единой распознаваемой даты при активном фильтре выпадают.
// Вход не мутируется.
func filterByDateRange(shipments []entities.Shipment, from, to *time.Time) []entities.Shipment {
	if from == nil && to == nil {
		return shipments
	}

	out := make([]entities.Shipment, 0, len(shipments))
	for i := range shipments {
		d := metrics.ValidDate(&shipments[i])
		if d == nil {
			continue
		}
		if from != nil && d.Before(*from) {
			continue
		}
		if to != nil && d.After(*to) {
			continue
		}
		out = append(out, shipments[i])
	}
	return out
}

func modeBreakdown(shipments []entities.Shipment) map[string]int {
	out := make(map[string]int)
	for i := range shipments {
		out[metrics.ComputedMode(&shipments[i])]++
	}
	return out
}

func monthlyVolumes(shipments []entities.Shipment) []types.MonthlyVolumePoint {
	byMonth := make(map[string][]entities.Shipment)
	for i := range shipments {
		d := metrics.ValidDate(&shipments[i])
		if d == nil {
			continue
		}
		label := d.Format("2006-01")
		byMonth[label] = append(byMonth[label], shipments[i])
	}

	labels := make([]string, 0, len(byMonth))
	for label := range byMonth {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	out := make([]types.MonthlyVolumePoint, 0, len(labels))
	for _, label := range labels {
		group := byMonth[label]
		point := types.MonthlyVolumePoint{
			Label:         label,
			ShipmentCount: int64(len(group)),
			TEU:           metrics.CalculateUniqueTEU(group),
		}
		for i := range group {
			point.GrossWeightKg += group[i].GrossWeight.Float64
		}
		out = append(out, point)
	}
	return out
}
