package metrics

import (
	"sort"
	"strings"

	"shipment-dashboard/internal/entities"
)

// LinerStat - агрегат одного перевозчика.
type LinerStat struct {
	Name              string  `json:"name"`
	AvgTransitDays    float64 `json:"avg_transit_days"`
	ShipmentCount     int     `json:"shipment_count"`
	ValidTransitCount int     `json:"valid_transit_count"`
}

// LinerRanking - рейтинг перевозчиков по среднему транзиту (быстрые первыми).
type LinerRanking struct {
	BestLiner    *LinerStat  `json:"best_liner"`
	WorstLiner   *LinerStat  `json:"worst_liner"`
	TopLiners    []LinerStat `json:"top_liners"`
	BottomLiners []LinerStat `json:"bottom_liners"`
	AllLiners    []LinerStat `json:"all_liners"`
}

// CalculateLinerStats группирует строки по перевозчику (имя -> код ->
// "Unknown") и ранжирует по среднему транзиту departure->arrival.
// Перевозчики без единого валидного транзита и "Unknown" из рейтинга
// исключаются - в сырых счетчиках в других местах системы они остаются.
func CalculateLinerStats(shipments []entities.Shipment) LinerRanking {
	type group struct {
		shipments int
		sum       float64
		valid     int
	}
	groups := make(map[string]*group)

	for i := range shipments {
		s := &shipments[i]

		name := strings.TrimSpace(s.LinerName.String)
		if name == "" {
			name = strings.TrimSpace(s.LinerCode.String)
		}
		if name == "" {
			name = "Unknown"
		}

		g := groups[name]
		if g == nil {
			g = &group{}
			groups[name] = g
		}
		g.shipments++

		atd := ParseDateValue(s.AtdDate)
		ata := ParseDateValue(s.AtaDate)
		if atd != nil && ata != nil {
			days := ata.Sub(*atd).Hours() / 24
			if days >= 0 && days < maxTransitDays {
				g.sum += days
				g.valid++
			}
		}
	}

	all := make([]LinerStat, 0, len(groups))
	for name, g := range groups {
		if g.valid == 0 || name == "Unknown" || name == "UNKNOWN" {
			continue
		}
		all = append(all, LinerStat{
			Name:              name,
			AvgTransitDays:    g.sum / float64(g.valid),
			ShipmentCount:     g.shipments,
			ValidTransitCount: g.valid,
		})
	}

	// Вторичный ключ по имени: одинаковые средние не должны скакать между
	// вызовами из-за порядка обхода map.
	sort.Slice(all, func(i, j int) bool {
		if all[i].AvgTransitDays != all[j].AvgTransitDays {
			return all[i].AvgTransitDays < all[j].AvgTransitDays
		}
		return all[i].Name < all[j].Name
	})

	ranking := LinerRanking{AllLiners: all}
	if len(all) == 0 {
		return ranking
	}

	best := all[0]
	worst := all[len(all)-1]
	ranking.BestLiner = &best
	ranking.WorstLiner = &worst

	topN := 5
	if len(all) < topN {
		topN = len(all)
	}
	ranking.TopLiners = append([]LinerStat(nil), all[:topN]...)

	// Нижняя пятерка в обратном порядке: худший первым
	bottom := append([]LinerStat(nil), all[len(all)-topN:]...)
	for l, r := 0, len(bottom)-1; l < r; l, r = l+1, r-1 {
		bottom[l], bottom[r] = bottom[r], bottom[l]
	}
	ranking.BottomLiners = bottom

	return ranking
}
