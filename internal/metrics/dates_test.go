package metrics

import (
	"testing"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipment-dashboard/internal/entities"
)

func TestParseDateValue(t *testing.T) {
	testCases := []struct {
		name  string
		input any
		want  *time.Time
	}{
		{"dd/MM/yyyy", "15/03/2024", timePtr(2024, 3, 15)},
		{"dd-MM-yyyy", "15-03-2024", timePtr(2024, 3, 15)},
		{"yyyyMMdd цифрами", "20240315", timePtr(2024, 3, 15)},
		{"null.String", null.StringFrom("01/12/2023"), timePtr(2023, 12, 1)},
		{"готовый time.Time", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), timePtr(2024, 6, 1)},
		{"пустая строка", "", nil},
		{"мусор", "not-a-date", nil},
		{"несуществующая дата", "31/02/2024", nil},
		{"невалидный null.String", null.String{}, nil},
		{"nil", nil, nil},
		{"восемь цифр, но не дата", "99999999", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseDateValue(tc.input)
			if tc.want == nil {
				assert.Nil(t, got, "ожидали nil, а не нулевую дату")
				return
			}
			require.NotNil(t, got)
			assert.True(t, got.Equal(*tc.want), "ожидали %v, получили %v", tc.want, got)
		})
	}
}

func TestValidDate_Priority(t *testing.T) {
	// ATD имеет высший приоритет
	s := entities.Shipment{
		AtdDate: null.StringFrom("01/01/2024"),
		AtaDate: null.StringFrom("10/01/2024"),
		EtdDate: null.StringFrom("02/01/2024"),
	}
	got := ValidDate(&s)
	require.NotNil(t, got)
	assert.True(t, got.Equal(*timePtr(2024, 1, 1)))

	// Битый ATD - падаем на ATA
	s.AtdDate = null.StringFrom("garbage")
	got = ValidDate(&s)
	require.NotNil(t, got)
	assert.True(t, got.Equal(*timePtr(2024, 1, 10)))

	// Вообще без дат
	assert.Nil(t, ValidDate(&entities.Shipment{}))
}

func TestComputedMode(t *testing.T) {
	testCases := []struct {
		name string
		mode string
		flag string
		want string
	}{
		{"обычный SEA", "SEA", "", "SEA"},
		{"SEA с флагом 2", "SEA", "2", "SEA-AIR"},
		{"SEA с флагом YES", "SEA", "yes", "SEA-AIR"},
		{"SEA с другим флагом", "SEA", "1", "SEA"},
		{"уже SEA-AIR", "SEA-AIR", "", "SEA-AIR"},
		{"AIR с флагом не трогаем", "AIR", "2", "AIR"},
		{"нижний регистр и пробелы", "  sea  ", "", "SEA"},
		{"пусто", "", "", "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := entities.Shipment{
				Mode:       null.StringFrom(tc.mode),
				SeaAirFlag: null.StringFrom(tc.flag),
			}
			assert.Equal(t, tc.want, ComputedMode(&s))
		})
	}
}

func timePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
