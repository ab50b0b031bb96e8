package types

import "github.com/shopspring/decimal"

// FinancialSummaryRow - денежная сводка по режиму перевозки.
// Деньги держим в decimal, float для сумм фрахта не годится.
type FinancialSummaryRow struct {
	Mode          string          `json:"mode"`
	TotalFreight  decimal.Decimal `json:"total_freight"`
	ShipmentCount int64           `json:"shipment_count"`
}

// MonthlyVolumePoint - точка графика месячных объемов.
type MonthlyVolumePoint struct {
	Label         string  `json:"label"` // YYYY-MM
	ShipmentCount int64   `json:"shipment_count"`
	TEU           int     `json:"teu"`
	GrossWeightKg float64 `json:"gross_weight_kg"`
}

// EmissionSummary - оценка CO2 по режимам.
type EmissionSummary struct {
	TotalTonnes  float64            `json:"total_tonnes"`
	ByMode       map[string]float64 `json:"by_mode"`
	WeightTonnes float64            `json:"weight_tonnes"`
}
