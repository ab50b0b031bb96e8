package dto

// ReportRowDTO - строка выгрузки отчета по отгрузкам (xlsx/csv).
// Все даты уже отформатированы, транзит посчитан.
type ReportRowDTO struct {
	JobNo       string  `json:"job_no"`
	OrderNo     string  `json:"order_no"`
	CntrNo      string  `json:"cntr_no"`
	Mode        string  `json:"mode"`
	Liner       string  `json:"liner"`
	Atd         string  `json:"atd"`
	Ata         string  `json:"ata"`
	Eta         string  `json:"eta"`
	Delivery    string  `json:"delivery"`
	TransitDays string  `json:"transit_days"`
	OnTime      string  `json:"on_time"`
	TEU         int     `json:"teu"`
	GrossWeight float64 `json:"gross_weight"`
}
