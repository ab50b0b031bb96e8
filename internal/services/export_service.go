package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"shipment-dashboard/internal/dto"
	"shipment-dashboard/internal/entities"
	"shipment-dashboard/internal/metrics"
	"shipment-dashboard/internal/repositories"
	apperrors "shipment-dashboard/pkg/errors"
)

type ExportServiceInterface interface {
	GetShipmentReport(ctx context.Context, filter entities.ShipmentFilter) ([]dto.ReportRowDTO, uint64, error)
}

type exportService struct {
	shipmentRepo repositories.ShipmentRepositoryInterface
	logger       *zap.Logger
}

func NewExportService(shipmentRepo repositories.ShipmentRepositoryInterface, logger *zap.Logger) ExportServiceInterface {
	return &exportService{shipmentRepo: shipmentRepo, logger: logger}
}

const reportDateFmt = "02.01.2006"

func (s *exportService) GetShipmentReport(ctx context.Context, filter entities.ShipmentFilter) ([]dto.ReportRowDTO, uint64, error) {
	shipments, total, err := s.shipmentRepo.GetShipments(ctx, filter)
	if err != nil {
		s.logger.Error("Export: не удалось получить отгрузки", zap.Error(err))
		return nil, 0, apperrors.NewInternalError("Не удалось сформировать отчет")
	}

	rows := make([]dto.ReportRowDTO, 0, len(shipments))
	for i := range shipments {
		sh := &shipments[i]

		atd := metrics.ParseDateValue(sh.AtdDate)
		ata := metrics.ParseDateValue(sh.AtaDate)
		eta := metrics.ParseDateValue(sh.EtaDate)
		delivery := metrics.ParseDateValue(sh.DeliveryDate)

		row := dto.ReportRowDTO{
			JobNo:       sh.JobNo,
			OrderNo:     sh.OrderNo.String,
			CntrNo:      sh.CntrNo.String,
			Mode:        metrics.ComputedMode(sh),
			Liner:       linerDisplayName(sh),
			Atd:         formatReportDate(atd),
			Ata:         formatReportDate(ata),
			Eta:         formatReportDate(eta),
			Delivery:    formatReportDate(delivery),
			TEU:         metrics.CalculateTEU(sh.CntrSize.String, sh.CntrStatus.String, metrics.ComputedMode(sh)),
			GrossWeight: sh.GrossWeight.Float64,
		}

		if atd != nil && ata != nil {
			days := ata.Sub(*atd).Hours() / 24
			if days >= 0 {
				row.TransitDays = fmt.Sprintf("%.0f", days)
			}
		}
		if ata != nil && eta != nil {
			if !ata.After(*eta) {
				row.OnTime = "да"
			} else {
				row.OnTime = "нет"
			}
		}

		rows = append(rows, row)
	}

	return rows, total, nil
}

func linerDisplayName(sh *entities.Shipment) string {
	if name := strings.TrimSpace(sh.LinerName.String); name != "" {
		return name
	}
	return strings.TrimSpace(sh.LinerCode.String)
}

func formatReportDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(reportDateFmt)
}
