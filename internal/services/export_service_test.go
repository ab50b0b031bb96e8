package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shipment-dashboard/internal/entities"
)

func TestGetShipmentReport_RowDerivations(t *testing.T) {
	repo := &fakeShipmentRepo{shipments: []entities.Shipment{
		{
			JobNo:       "J1",
			Mode:        null.StringFrom("SEA"),
			CntrNo:      null.StringFrom("MSKU1234567"),
			CntrSize:    null.StringFrom("40H"),
			CntrStatus:  null.StringFrom("FCL/FCL"),
			AtdDate:     null.StringFrom("01/01/2024"),
			AtaDate:     null.StringFrom("05/01/2024"),
			EtaDate:     null.StringFrom("05/01/2024"),
			LinerName:   null.StringFrom("Maersk"),
			GrossWeight: null.Float64From(12500),
		},
		{
			// опоздание и код линии вместо имени
			JobNo:      "J2",
			Mode:       null.StringFrom("SEA"),
			SeaAirFlag: null.StringFrom("2"),
			AtdDate:    null.StringFrom("01-02-2024"),
			AtaDate:    null.StringFrom("20240211"),
			EtaDate:    null.StringFrom("10/02/2024"),
			LinerCode:  null.StringFrom("CMA"),
		},
		{
			// без дат вообще
			JobNo: "J3",
		},
	}}
	svc := NewExportService(repo, zap.NewNop())

	rows, total, err := svc.GetShipmentReport(context.Background(), entities.ShipmentFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, uint64(3), total)

	first := rows[0]
	assert.Equal(t, "SEA", first.Mode)
	assert.Equal(t, "Maersk", first.Liner)
	assert.Equal(t, "01.01.2024", first.Atd)
	assert.Equal(t, "05.01.2024", first.Ata)
	assert.Equal(t, "4", first.TransitDays)
	assert.Equal(t, "да", first.OnTime)
	assert.Equal(t, 2, first.TEU, "40H при FCL/FCL дает 2 TEU")
	assert.InDelta(t, 12500, first.GrossWeight, 1e-9)

	second := rows[1]
	assert.Equal(t, "SEA-AIR", second.Mode, "флаг 2 на SEA-заявке означает смешанный маршрут")
	assert.Equal(t, "CMA", second.Liner, "без имени линии берется код")
	assert.Equal(t, "01.02.2024", second.Atd, "дата с дефисами парсится")
	assert.Equal(t, "11.02.2024", second.Ata, "восьмизначная дата парсится")
	assert.Equal(t, "10", second.TransitDays)
	assert.Equal(t, "нет", second.OnTime)

	third := rows[2]
	assert.Empty(t, third.Atd)
	assert.Empty(t, third.TransitDays)
	assert.Empty(t, third.OnTime, "без пары дат флаг пунктуальности не ставится")
}
