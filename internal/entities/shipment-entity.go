package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Shipment - сырая строка из операционной БД (одна строка = один контейнер/лег).
// Колонки приходят из старой операционной системы, поэтому почти все поля
// опциональны, а даты хранятся ТЕКСТОМ в разных форматах (dd/MM/yyyy,
// dd-MM-yyyy, yyyyMMdd). Парсинг дат - задача internal/metrics, не сюда.
type Shipment struct {
	JobNo   string      `json:"job_no" db:"JOB_NO"`
	OrderNo null.String `json:"order_no" db:"ORDER_NO"`
	CntrNo  null.String `json:"cntr_no" db:"CNTR_NO"`
	MblNo   null.String `json:"mbl_no" db:"MBL_NO"`

	// Режим перевозки: "SEA", "AIR", "SEA-AIR" и т.д.
	// SeaAirFlag - костыль из старой системы: "2" или "YES" на SEA-заявке
	// означает, что фактически это смешанный маршрут SEA-AIR.
	Mode       null.String `json:"mode" db:"MODE"`
	SeaAirFlag null.String `json:"sea_air_flag" db:"SEA_AIR_FLAG"`

	// Даты (текст как есть из БД)
	CrdDate      null.String `json:"crd_date" db:"CRD_DATE"`           // прием груза (cargo receipt)
	DocRcvDate   null.String `json:"doc_rcv_date" db:"DOC_RCV_DATE"`   // получение документов
	DocDate      null.String `json:"doc_date" db:"DOC_DATE"`
	EtdDate      null.String `json:"etd_date" db:"ETD_DATE"`
	AtdDate      null.String `json:"atd_date" db:"ATD_DATE"`
	EtaDate      null.String `json:"eta_date" db:"ETA_DATE"`
	AtaDate      null.String `json:"ata_date" db:"ATA_DATE"`
	DeliveryDate null.String `json:"delivery_date" db:"DELIVERY_DATE"`

	// Физика
	GrossWeight null.Float64 `json:"gross_weight" db:"GROSS_WEIGHT"` // кг
	CntrSize    null.String  `json:"cntr_size" db:"CNTR_SIZE"`       // 20F, 40H, ...
	CntrStatus  null.String  `json:"cntr_status" db:"CNTR_STATUS"`   // FCL/FCL, LCL/FCL, LCL/LCL

	// Перевозчик и грузополучатель
	LinerName null.String `json:"liner_name" db:"LINER_NAME"`
	LinerCode null.String `json:"liner_code" db:"LINER_CODE"`
	Consignee null.String `json:"consignee" db:"CONSIGNEE"`

	// Финансы (для сводки, не для движка транзита)
	FreightCharge null.Float64 `json:"freight_charge" db:"FREIGHT_CHARGE"`
}

// ShipmentFilter - параметры выборки строк для дашборда.
type ShipmentFilter struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	Mode      string
	Liner     string
	Consignee string
	Search    string
	Limit     uint64
	Offset    uint64
}
