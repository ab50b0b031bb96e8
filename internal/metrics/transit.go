package metrics

import (
	"math"
	"sort"
	"time"

	"shipment-dashboard/internal/entities"
)

const (
	// Потолки правдоподобия в днях. Значение на потолке или выше, как и
	// отрицательное, ИСКЛЮЧАЕТСЯ из всех агрегатов (не обрезается):
	// перепутанные или битые пары дат не должны травить среднее.
	maxTransitDays = 150 // departure -> arrival
	maxDoorLegDays = 365 // плечи с pickup/delivery длиннее и шумнее
)

// ChangeStats - динамика плеча: месяц-к-месяцу и год-к-году.
// Если исторических корзин меньше двух, Has* = false и дельты нулевые -
// тренд из одной точки не рисуем.
type ChangeStats struct {
	HasMom  bool    `json:"has_mom"`
	MomDays float64 `json:"mom_days"`
	MomPct  float64 `json:"mom_pct"`
	HasYoy  bool    `json:"has_yoy"`
	YoyDays float64 `json:"yoy_days"`
	YoyPct  float64 `json:"yoy_pct"`
}

// LegStats - агрегат одного именованного плеча маршрута.
type LegStats struct {
	AvgDays float64     `json:"avg_days"`
	Count   int         `json:"count"`
	Change  ChangeStats `json:"change"`
}

// TransitStats - сводная статистика транзита по выборке строк.
type TransitStats struct {
	AvgDays              float64 `json:"avg_days"`
	MinDays              float64 `json:"min_days"`
	MaxDays              float64 `json:"max_days"`
	MedianDays           float64 `json:"median_days"`
	StdDevDays           float64 `json:"std_dev_days"`
	TransitShipmentCount int     `json:"transit_shipment_count"`

	OnTimeBase  int     `json:"on_time_base"`
	OnTimeCount int     `json:"on_time_count"`
	OnTimePct   float64 `json:"on_time_pct"`

	PickupToArrival     LegStats `json:"pickup_to_arrival"`
	PickupToDelivery    LegStats `json:"pickup_to_delivery"`
	DepartureToArrival  LegStats `json:"departure_to_arrival"`
	DepartureToDelivery LegStats `json:"departure_to_delivery"`
}

// legAcc копит длительности одного плеча плюс корзины по месяцу и году
// ТЕРМИНАЛЬНОЙ даты плеча (arrival для плеч до прибытия, delivery для плеч
// до доставки). Эта асимметрия определяет, какому календарному периоду
// принадлежит точка тренда - не менять.
type legAcc struct {
	ceiling float64
	sum     float64
	count   int
	byMonth map[string][]float64
	byYear  map[string][]float64
}

func newLegAcc(ceiling float64) *legAcc {
	return &legAcc{
		ceiling: ceiling,
		byMonth: make(map[string][]float64),
		byYear:  make(map[string][]float64),
	}
}

func (a *legAcc) add(from, to *time.Time) {
	if from == nil || to == nil {
		return
	}
	days := to.Sub(*from).Hours() / 24
	if days < 0 || days >= a.ceiling {
		return
	}
	a.sum += days
	a.count++
	a.byMonth[to.Format("2006-01")] = append(a.byMonth[to.Format("2006-01")], days)
	a.byYear[to.Format("2006")] = append(a.byYear[to.Format("2006")], days)
}

func (a *legAcc) stats() LegStats {
	out := LegStats{Count: a.count}
	if a.count > 0 {
		out.AvgDays = a.sum / float64(a.count)
	}
	out.Change.MomDays, out.Change.MomPct, out.Change.HasMom = lastTwoBucketsDelta(a.byMonth)
	out.Change.YoyDays, out.Change.YoyPct, out.Change.HasYoy = lastTwoBucketsDelta(a.byYear)
	return out
}

// lastTwoBucketsDelta сортирует ключи корзин лексикографически (для
// "YYYY-MM" и "YYYY" это хронологический порядок), берет две последние и
// отдает дельту их средних в днях и процентах. Нулевое предыдущее среднее
// дает 0% - на ноль не делим.
func lastTwoBucketsDelta(buckets map[string][]float64) (days, pct float64, ok bool) {
	if len(buckets) < 2 {
		return 0, 0, false
	}
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	prev := meanOf(buckets[keys[len(keys)-2]])
	curr := meanOf(buckets[keys[len(keys)-1]])

	days = curr - prev
	if prev != 0 {
		pct = days / prev * 100
	}
	return days, pct, true
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// CalculateTransitStats считает все транзитные агрегаты за ОДИН проход по
// выборке. Входной срез не мутируется; битые строки молча выпадают из
// агрегатов согласно потолкам - одна плохая строка не валит расчет.
func CalculateTransitStats(shipments []entities.Shipment) TransitStats {
	var stats TransitStats

	pickupArrival := newLegAcc(maxDoorLegDays)
	pickupDelivery := newLegAcc(maxDoorLegDays)
	departureArrival := newLegAcc(maxTransitDays)
	departureDelivery := newLegAcc(maxDoorLegDays)

	var durations []float64

	for i := range shipments {
		s := &shipments[i]

		atd := ParseDateValue(s.AtdDate)
		ata := ParseDateValue(s.AtaDate)
		eta := ParseDateValue(s.EtaDate)
		crd := ParseDateValue(s.CrdDate)
		delivery := ParseDateValue(s.DeliveryDate)

		// Базовый транзит: ATA - ATD
		if atd != nil && ata != nil {
			days := ata.Sub(*atd).Hours() / 24
			if days >= 0 && days < maxTransitDays {
				if len(durations) == 0 || days < stats.MinDays {
					stats.MinDays = days
				}
				if days > stats.MaxDays {
					stats.MaxDays = days
				}
				durations = append(durations, days)
			}
		}

		// On-time: ata <= eta, граница включительно
		if ata != nil && eta != nil {
			stats.OnTimeBase++
			if !ata.After(*eta) {
				stats.OnTimeCount++
			}
		}

		pickupArrival.add(crd, ata)
		pickupDelivery.add(crd, delivery)
		departureArrival.add(atd, ata)
		departureDelivery.add(atd, delivery)
	}

	stats.TransitShipmentCount = len(durations)
	if len(durations) > 0 {
		var sum float64
		for _, d := range durations {
			sum += d
		}
		stats.AvgDays = sum / float64(len(durations))
		stats.MedianDays = medianOf(durations)
		stats.StdDevDays = populationStdDev(durations, stats.AvgDays)
	}

	if stats.OnTimeBase > 0 {
		stats.OnTimePct = float64(stats.OnTimeCount) / float64(stats.OnTimeBase) * 100
	}

	stats.PickupToArrival = pickupArrival.stats()
	stats.PickupToDelivery = pickupDelivery.stats()
	stats.DepartureToArrival = departureArrival.stats()
	stats.DepartureToDelivery = departureDelivery.stats()

	return stats
}

func medianOf(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// populationStdDev - стандартное отклонение генеральной совокупности
// (делитель N, не N-1).
func populationStdDev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)))
}
