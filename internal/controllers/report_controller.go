package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"shipment-dashboard/internal/dto"
	"shipment-dashboard/internal/entities"
	"shipment-dashboard/internal/services"
	"shipment-dashboard/pkg/utils"
)

type ReportController struct {
	exportService services.ExportServiceInterface
	logger        *zap.Logger
}

func NewReportController(exportService services.ExportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{exportService: exportService, logger: logger}
}

func (c *ReportController) GetReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	filter, format := c.parseFilters(ctx)
	c.logger.Debug("Запрос на отчет с фильтрами", zap.Any("filters", filter), zap.String("format", format))

	data, total, err := c.exportService.GetShipmentReport(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	switch format {
	case "xlsx":
		return c.respondWithXLSX(ctx, data)
	case "csv":
		return c.respondWithCSV(ctx, data)
	}

	return utils.SuccessResponse(ctx, data, "Отчет успешно сформирован", http.StatusOK, total)
}

func (c *ReportController) parseFilters(ctx echo.Context) (entities.ShipmentFilter, string) {
	filter := utils.ParseShipmentFilter(ctx.Request().URL.Query())
	format := strings.ToLower(ctx.QueryParam("format"))

	if format == "xlsx" || format == "csv" {
		// Выгружаем все для экспорта
		filter.Limit = 0
		filter.Offset = 0
	}

	return filter, format
}

var reportHeaders = []string{
	"Job No", "Заказ", "Контейнер", "Режим", "Линия",
	"ATD", "ATA", "ETA", "Доставка", "Транзит (дни)", "В срок", "TEU", "Вес брутто, кг",
}

func rowToSlice(item dto.ReportRowDTO) []interface{} {
	return []interface{}{
		item.JobNo, item.OrderNo, item.CntrNo, item.Mode, item.Liner,
		item.Atd, item.Ata, item.Eta, item.Delivery,
		item.TransitDays, item.OnTime, item.TEU, item.GrossWeight,
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []dto.ReportRowDTO) error {
	f := excelize.NewFile()
	sheet := "Отчет по отгрузкам"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "M1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	// Авто-ширина колонок для красоты
	f.SetColWidth(sheet, "A", "C", 18)
	f.SetColWidth(sheet, "E", "E", 25)
	f.SetColWidth(sheet, "F", "I", 14)

	fileName := fmt.Sprintf("shipments_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}

func (c *ReportController) respondWithCSV(ctx echo.Context, data []dto.ReportRowDTO) error {
	fileName := fmt.Sprintf("shipments_%s.csv", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)

	w := csv.NewWriter(ctx.Response().Writer)
	if err := w.Write(reportHeaders); err != nil {
		return err
	}
	for _, item := range data {
		record := []string{
			item.JobNo, item.OrderNo, item.CntrNo, item.Mode, item.Liner,
			item.Atd, item.Ata, item.Eta, item.Delivery,
			item.TransitDays, item.OnTime,
			strconv.Itoa(item.TEU),
			strconv.FormatFloat(item.GrossWeight, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
