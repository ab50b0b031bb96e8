package dto

import (
	"shipment-dashboard/internal/metrics"
	"shipment-dashboard/pkg/types"
)

// DashboardStatsDTO - полный ответ для главного экрана дашборда.
type DashboardStatsDTO struct {
	TotalShipments uint64 `json:"total_shipments"`
	TotalTEU       int    `json:"total_teu"`

	Transit metrics.TransitStats `json:"transit"`
	Liners  metrics.LinerRanking `json:"liners"`

	ModeBreakdown map[string]int              `json:"mode_breakdown"`
	MonthlyVolume []types.MonthlyVolumePoint  `json:"monthly_volume"`
	Financial     []types.FinancialSummaryRow `json:"financial"`
	Emissions     types.EmissionSummary       `json:"emissions"`
}
