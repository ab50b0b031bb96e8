package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"shipment-dashboard/internal/dto"
	"shipment-dashboard/internal/services"
	apperrors "shipment-dashboard/pkg/errors"
	"shipment-dashboard/pkg/utils"
)

type ChatController struct {
	chatService *services.ChatService
	logger      *zap.Logger
}

func NewChatController(chatService *services.ChatService, logger *zap.Logger) *ChatController {
	return &ChatController{chatService: chatService, logger: logger}
}

func (ctrl *ChatController) Ask(c echo.Context) error {
	var payload dto.ChatRequestDTO

	if err := c.Bind(&payload); err != nil {
		ctrl.logger.Error("Chat: ошибка привязки данных", zap.Error(err))
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Неверный формат запроса", err), ctrl.logger)
	}
	if err := c.Validate(&payload); err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	answer, err := ctrl.chatService.Ask(c.Request().Context(), payload)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return utils.SuccessResponse(c, answer, "Ответ получен", http.StatusOK)
}
