package metrics

import (
	"strings"

	"shipment-dashboard/internal/entities"
)

// CalculateTEU считает TEU одного контейнера по размеру, статусу загрузки
// и режиму. Для AIR/ROAD плеч TEU не имеет смысла - сразу 0.
//
// Точная таблица (размер x статус) имеет приоритет; подстрочный fallback
// ("содержит 20" -> 1, "содержит 40" -> 2) - страховка от криво набитых
// кодов размера в источнике. Обе ветки нужны, не упрощать.
func CalculateTEU(size, status, mode string) int {
	m := strings.ToUpper(strings.TrimSpace(mode))
	if m != "SEA" && m != "SEA-AIR" {
		return 0
	}

	sz := strings.ToUpper(strings.TrimSpace(size))
	st := strings.ToUpper(strings.TrimSpace(status))

	switch sz {
	case "20G", "40G":
		// особые коды: всегда 2, статус не важен
		return 2
	case "20F", "20H", "40F", "40H":
		switch st {
		case "LCL/FCL", "FCL/FCL":
			if sz == "20F" {
				return 1
			}
			return 2
		default:
			// LCL/LCL и нераспознанные статусы не дают TEU
			return 0
		}
	}

	if strings.Contains(sz, "20") {
		return 1
	}
	if strings.Contains(sz, "40") {
		return 2
	}
	return 0
}

// CalculateUniqueTEU суммирует TEU по УНИКАЛЬНЫМ контейнерам: один контейнер
// часто встречается в нескольких строках (по одной на лег), считать его
// несколько раз нельзя. Ключ дедупликации: номер контейнера, иначе MBL,
// иначе синтетический ключ от номера джоба.
func CalculateUniqueTEU(shipments []entities.Shipment) int {
	seen := make(map[string]struct{}, len(shipments))
	total := 0

	for i := range shipments {
		s := &shipments[i]

		key := strings.TrimSpace(s.CntrNo.String)
		if key == "" {
			key = strings.TrimSpace(s.MblNo.String)
		}
		if key == "" {
			key = "UNKNOWN-" + s.JobNo
		}

		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		total += CalculateTEU(s.CntrSize.String, s.CntrStatus.String, ComputedMode(s))
	}

	return total
}
