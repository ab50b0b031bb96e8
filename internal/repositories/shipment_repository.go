package repositories

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"shipment-dashboard/internal/entities"
	"shipment-dashboard/pkg/types"
)

var shipmentColumns = []string{
	`"JOB_NO"`, `"ORDER_NO"`, `"CNTR_NO"`, `"MBL_NO"`,
	`"MODE"`, `"SEA_AIR_FLAG"`,
	`"CRD_DATE"`, `"DOC_RCV_DATE"`, `"DOC_DATE"`,
	`"ETD_DATE"`, `"ATD_DATE"`, `"ETA_DATE"`, `"ATA_DATE"`, `"DELIVERY_DATE"`,
	`"GROSS_WEIGHT"`, `"CNTR_SIZE"`, `"CNTR_STATUS"`,
	`"LINER_NAME"`, `"LINER_CODE"`, `"CONSIGNEE"`,
	`"FREIGHT_CHARGE"`,
}

type ShipmentRepositoryInterface interface {
	GetShipments(ctx context.Context, filter entities.ShipmentFilter) ([]entities.Shipment, uint64, error)
	GetFinancialSummary(ctx context.Context, filter entities.ShipmentFilter) ([]types.FinancialSummaryRow, error)
}

type ShipmentRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewShipmentRepository(storage *pgxpool.Pool, logger *zap.Logger) ShipmentRepositoryInterface {
	return &ShipmentRepository{storage: storage, logger: logger}
}

// applyFilter навешивает SQL-условия. Диапазон дат тут НЕ фильтруется:
// даты в источнике лежат текстом в разных форматах, их отсекает сервис
// уже после парсинга.
func applyFilter(b sq.SelectBuilder, filter entities.ShipmentFilter) sq.SelectBuilder {
	if filter.Mode != "" {
		b = b.Where(sq.Eq{`UPPER(TRIM("MODE"))`: filter.Mode})
	}
	if filter.Liner != "" {
		b = b.Where(sq.Or{
			sq.ILike{`"LINER_NAME"`: "%" + filter.Liner + "%"},
			sq.ILike{`"LINER_CODE"`: "%" + filter.Liner + "%"},
		})
	}
	if filter.Consignee != "" {
		b = b.Where(sq.ILike{`"CONSIGNEE"`: "%" + filter.Consignee + "%"})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{`"JOB_NO"`: pattern},
			sq.ILike{`"CNTR_NO"`: pattern},
			sq.ILike{`"MBL_NO"`: pattern},
			sq.ILike{`"ORDER_NO"`: pattern},
		})
	}
	return b
}

func (r *ShipmentRepository) GetShipments(ctx context.Context, filter entities.ShipmentFilter) ([]entities.Shipment, uint64, error) {
	b := sq.Select(shipmentColumns...).From("shipments").OrderBy(`"JOB_NO"`)
	b = applyFilter(b, filter)

	// Limit == 0 означает "всю выборку": дашборд агрегирует по всем строкам
	if filter.Limit > 0 {
		b = b.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	shipments, err := pgx.CollectRows(rows, pgx.RowToStructByName[entities.Shipment])
	if err != nil {
		return nil, 0, err
	}

	countBuilder := applyFilter(sq.Select("COUNT(*)").From("shipments"), filter)
	countSQL, countArgs, err := countBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total uint64
	if err := r.storage.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return shipments, total, nil
}

func (r *ShipmentRepository) GetFinancialSummary(ctx context.Context, filter entities.ShipmentFilter) ([]types.FinancialSummaryRow, error) {
	b := sq.Select(
		`COALESCE(UPPER(TRIM("MODE")), 'UNKNOWN') as mode`,
		`COALESCE(SUM("FREIGHT_CHARGE"), 0)::text as total_freight`,
		`COUNT(*) as shipment_count`,
	).From("shipments").
		GroupBy(`COALESCE(UPPER(TRIM("MODE")), 'UNKNOWN')`).
		OrderBy("shipment_count DESC")
	b = applyFilter(b, filter)

	query, args, err := b.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []types.FinancialSummaryRow
	for rows.Next() {
		var item types.FinancialSummaryRow
		var totalStr string
		if err := rows.Scan(&item.Mode, &totalStr, &item.ShipmentCount); err != nil {
			return nil, err
		}
		// сумма приезжает текстом, деньги парсим в decimal без потерь
		total, err := decimal.NewFromString(totalStr)
		if err != nil {
			r.logger.Warn("Не удалось распарсить сумму фрахта", zap.String("raw", totalStr), zap.Error(err))
			total = decimal.Zero
		}
		item.TotalFreight = total
		result = append(result, item)
	}
	return result, rows.Err()
}
