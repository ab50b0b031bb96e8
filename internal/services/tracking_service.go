package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"shipment-dashboard/internal/dto"
	"shipment-dashboard/pkg/config"
	apperrors "shipment-dashboard/pkg/errors"
)

// TrackingService - тонкий прокси к внешнему API трекинга контейнеров.
// Никакой своей логики статусов: маппим ответ провайдера в наш DTO.
type TrackingService struct {
	httpClient *http.Client
	cfg        config.TrackingConfig
	logger     *zap.Logger
}

func NewTrackingService(cfg config.TrackingConfig, logger *zap.Logger) *TrackingService {
	return &TrackingService{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
	}
}

type providerTrackingEvent struct {
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
}

type providerTrackingResponse struct {
	GlobalStatus string                  `json:"global_status"`
	Events       []providerTrackingEvent `json:"events"`
}

func (s *TrackingService) GetContainerStatus(ctx context.Context, containerNo string) (*dto.TrackingResponseDTO, error) {
	endpoint := fmt.Sprintf("%s/containers/%s", s.cfg.Endpoint, url.PathEscape(containerNo))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if s.cfg.APIKey != "" {
		httpReq.Header.Set("X-Api-Key", s.cfg.APIKey)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		s.logger.Error("Tracking: провайдер недоступен", zap.String("container", containerNo), zap.Error(err))
		return nil, apperrors.NewHttpError(http.StatusBadGateway, "Сервис трекинга недоступен", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// ok
	case http.StatusNotFound:
		return nil, apperrors.ErrNotFound
	default:
		return nil, apperrors.NewHttpError(http.StatusBadGateway,
			fmt.Sprintf("Сервис трекинга вернул статус %d", resp.StatusCode), nil)
	}

	var parsed providerTrackingResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadGateway, "Не удалось разобрать ответ трекинга", err)
	}

	out := &dto.TrackingResponseDTO{
		ContainerNo:  containerNo,
		GlobalStatus: parsed.GlobalStatus,
		Events:       make([]dto.TrackingEventDTO, 0, len(parsed.Events)),
	}
	for _, e := range parsed.Events {
		out.Events = append(out.Events, dto.TrackingEventDTO{
			Date:        e.Date,
			Location:    e.Location,
			Status:      e.Status,
			Description: e.Description,
		})
	}
	return out, nil
}
