package services

import (
	"shipment-dashboard/internal/entities"
	"shipment-dashboard/internal/metrics"
	"shipment-dashboard/pkg/types"
)

// Усредненные факторы выбросов, кг CO2 на тонну груза за типовое плечо
// перевозки. Дистанций по отгрузкам в источнике нет, поэтому оценка
// грубая - для карточки "environmental impact", не для отчетности.
var emissionFactorsKgPerTonne = map[string]float64{
	"SEA":     80,
	"SEA-AIR": 650,
	"AIR":     1200,
	"ROAD":    210,
	"RAIL":    45,
}

const defaultEmissionFactorKgPerTonne = 150

// CalculateEmissions оценивает CO2 по брутто-весу и режиму перевозки.
// Строки без веса вклада не дают.
func CalculateEmissions(shipments []entities.Shipment) types.EmissionSummary {
	summary := types.EmissionSummary{ByMode: make(map[string]float64)}

	for i := range shipments {
		s := &shipments[i]
		if !s.GrossWeight.Valid || s.GrossWeight.Float64 <= 0 {
			continue
		}
		tonnes := s.GrossWeight.Float64 / 1000

		mode := metrics.ComputedMode(s)
		factor, ok := emissionFactorsKgPerTonne[mode]
		if !ok {
			factor = defaultEmissionFactorKgPerTonne
		}

		co2Tonnes := tonnes * factor / 1000
		summary.ByMode[mode] += co2Tonnes
		summary.TotalTonnes += co2Tonnes
		summary.WeightTonnes += tonnes
	}

	return summary
}
