package controllers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shipment-dashboard/internal/services"
	apperrors "shipment-dashboard/pkg/errors"
	"shipment-dashboard/pkg/utils"
)

type TrackingController struct {
	trackingService *services.TrackingService
	logger          *zap.Logger
}

func NewTrackingController(trackingService *services.TrackingService, logger *zap.Logger) *TrackingController {
	return &TrackingController{trackingService: trackingService, logger: logger}
}

func (ctrl *TrackingController) GetContainerStatus(c echo.Context) error {
	containerNo := strings.TrimSpace(c.Param("containerNo"))
	if containerNo == "" {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Не указан номер контейнера", nil), ctrl.logger)
	}

	status, err := ctrl.trackingService.GetContainerStatus(c.Request().Context(), containerNo)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, status, "Статус контейнера получен", http.StatusOK)
}
