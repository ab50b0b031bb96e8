package metrics

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"

	"shipment-dashboard/internal/entities"
)

func TestCalculateTEU_Table(t *testing.T) {
	testCases := []struct {
		name   string
		size   string
		status string
		mode   string
		want   int
	}{
		{"20F FCL/FCL SEA", "20F", "FCL/FCL", "SEA", 1},
		{"20F LCL/FCL SEA", "20F", "LCL/FCL", "SEA", 1},
		{"20F LCL/LCL SEA", "20F", "LCL/LCL", "SEA", 0},
		{"20H FCL/FCL SEA", "20H", "FCL/FCL", "SEA", 2},
		{"40F FCL/FCL SEA", "40F", "FCL/FCL", "SEA", 2},
		{"40H LCL/LCL SEA", "40H", "LCL/LCL", "SEA", 0},
		{"40H FCL/FCL SEA-AIR", "40H", "FCL/FCL", "SEA-AIR", 2},
		{"20G без статуса", "20G", "", "SEA", 2},
		{"40G LCL/LCL", "40G", "LCL/LCL", "SEA", 2},
		// режимный гейт: не-море всегда 0
		{"20F FCL/FCL AIR", "20F", "FCL/FCL", "AIR", 0},
		{"40G ROAD", "40G", "", "ROAD", 0},
		// подстрочный fallback для кривых кодов
		{"fallback 20GP", "20GP", "FCL/FCL", "SEA", 1},
		{"fallback 40HC", "40HC", "LCL/LCL", "SEA", 2},
		{"fallback неизвестный", "45R", "FCL/FCL", "SEA", 0},
		{"регистр и пробелы", " 20f ", " fcl/fcl ", " sea ", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateTEU(tc.size, tc.status, tc.mode))
		})
	}
}

func TestCalculateUniqueTEU(t *testing.T) {
	t.Run("дубль контейнера считается один раз", func(t *testing.T) {
		rows := []entities.Shipment{
			{
				JobNo:      "J1",
				CntrNo:     null.StringFrom("MSKU1234567"),
				CntrSize:   null.StringFrom("40F"),
				CntrStatus: null.StringFrom("FCL/FCL"),
				Mode:       null.StringFrom("SEA"),
			},
			{
				JobNo:      "J2",
				CntrNo:     null.StringFrom("MSKU1234567"),
				CntrSize:   null.StringFrom("40F"),
				CntrStatus: null.StringFrom("FCL/FCL"),
				Mode:       null.StringFrom("SEA"),
			},
		}
		assert.Equal(t, 2, CalculateUniqueTEU(rows), "один контейнер в двух строках = один вклад TEU")
	})

	t.Run("fallback на MBL и синтетический ключ", func(t *testing.T) {
		rows := []entities.Shipment{
			{
				JobNo:      "J1",
				MblNo:      null.StringFrom("MBL-1"),
				CntrSize:   null.StringFrom("20F"),
				CntrStatus: null.StringFrom("FCL/FCL"),
				Mode:       null.StringFrom("SEA"),
			},
			{
				JobNo:      "J2", // ни контейнера, ни MBL -> ключ UNKNOWN-J2
				CntrSize:   null.StringFrom("20F"),
				CntrStatus: null.StringFrom("FCL/FCL"),
				Mode:       null.StringFrom("SEA"),
			},
			{
				JobNo:      "J2", // тот же синтетический ключ - дубль
				CntrSize:   null.StringFrom("20F"),
				CntrStatus: null.StringFrom("FCL/FCL"),
				Mode:       null.StringFrom("SEA"),
			},
		}
		assert.Equal(t, 2, CalculateUniqueTEU(rows))
	})

	t.Run("пустой вход", func(t *testing.T) {
		assert.Equal(t, 0, CalculateUniqueTEU(nil))
	})
}
