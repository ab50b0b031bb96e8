package metrics

import (
	"strings"
	"time"

	"github.com/aarondl/null/v8"

	"shipment-dashboard/internal/entities"
)

// Порядок важен: сначала dd/MM/yyyy, потом dd-MM-yyyy (так лежит в старой БД).
var dateLayouts = []string{"02/01/2006", "02-01-2006"}

// ParseDateValue пытается вытащить дату из "чего угодно", что может прийти
// из операционной БД: текст dd/MM/yyyy или dd-MM-yyyy, готовый time.Time,
// либо 8 цифр yyyyMMdd. При полном провале возвращает nil - НИКОГДА не
// нулевую дату и не ошибку: отсутствующая дата это нормальное состояние строки.
func ParseDateValue(value any) *time.Time {
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return &v
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil
		}
		t := *v
		return &t
	case null.String:
		if !v.Valid {
			return nil
		}
		return parseDateString(v.String)
	case string:
		return parseDateString(v)
	}
	return nil
}

func parseDateString(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	// Числовой формат yyyyMMdd без разделителей
	if len(s) == 8 && isDigits(s) {
		if t, err := time.Parse("20060102", s); err == nil {
			return &t
		}
	}

	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ValidDate возвращает "репрезентативную" дату отгрузки для месячной
// разбивки: первое, что распарсилось из фиксированного списка полей.
func ValidDate(s *entities.Shipment) *time.Time {
	for _, raw := range []null.String{
		s.AtdDate,
		s.AtaDate,
		s.EtdDate,
		s.EtaDate,
		s.DocRcvDate,
		s.DocDate,
	} {
		if t := ParseDateValue(raw); t != nil {
			return t
		}
	}
	return nil
}

// ComputedMode нормализует код перевозки. SEA с флагом "2"/"YES"
// поднимается до SEA-AIR: в источнике комбинированный случай не всегда
// разрешен заранее.
func ComputedMode(s *entities.Shipment) string {
	mode := strings.ToUpper(strings.TrimSpace(s.Mode.String))
	if mode == "" {
		return "Unknown"
	}
	if mode == "SEA-AIR" {
		return mode
	}
	if mode == "SEA" {
		flag := strings.ToUpper(strings.TrimSpace(s.SeaAirFlag.String))
		if flag == "2" || flag == "YES" {
			return "SEA-AIR"
		}
	}
	return mode
}
