package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shipment-dashboard/internal/dto"
	"shipment-dashboard/internal/repositories"
	"shipment-dashboard/pkg/config"
	apperrors "shipment-dashboard/pkg/errors"
)

const maxChatRows = 500

// запрещенные ключевые слова как отдельные слова, регистр не важен
var forbiddenSQLPattern = regexp.MustCompile(`(?i)\b(insert|update|delete|drop|alter|create|grant|revoke|truncate|copy|vacuum)\b`)

// ChatService - обертка над внешним LLM-генератором SQL: вопрос на
// естественном языке -> SELECT по таблице отгрузок -> строки ответа.
// Промпт-инжиниринг живет на стороне генератора, мы только проверяем
// и исполняем результат.
type ChatService struct {
	queryRepo  repositories.QueryRepositoryInterface
	httpClient *http.Client
	cfg        config.SQLAssistConfig
	logger     *zap.Logger
}

func NewChatService(queryRepo repositories.QueryRepositoryInterface, cfg config.SQLAssistConfig, logger *zap.Logger) *ChatService {
	return &ChatService{
		queryRepo:  queryRepo,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
	}
}

type sqlAssistRequest struct {
	Question       string `json:"question"`
	ConversationID string `json:"conversation_id"`
}

type sqlAssistResponse struct {
	SQL string `json:"sql"`
}

func (s *ChatService) Ask(ctx context.Context, req dto.ChatRequestDTO) (*dto.ChatResponseDTO, error) {
	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	generatedSQL, err := s.generateSQL(ctx, req.Question, conversationID)
	if err != nil {
		s.logger.Error("Chat: генератор SQL недоступен", zap.Error(err))
		return nil, apperrors.NewHttpError(http.StatusBadGateway, "Сервис генерации SQL недоступен", err)
	}

	safeSQL, err := sanitizeGeneratedSQL(generatedSQL)
	if err != nil {
		s.logger.Warn("Chat: сгенерированный SQL отклонен",
			zap.String("sql", generatedSQL),
			zap.String("question", req.Question),
		)
		return nil, err
	}

	columns, rows, err := s.queryRepo.RunSelect(ctx, safeSQL)
	if err != nil {
		s.logger.Error("Chat: ошибка выполнения сгенерированного SQL", zap.String("sql", safeSQL), zap.Error(err))
		return nil, apperrors.NewHttpError(http.StatusUnprocessableEntity, "Сгенерированный запрос не выполнился", err)
	}

	if len(rows) > maxChatRows {
		rows = rows[:maxChatRows]
	}

	return &dto.ChatResponseDTO{
		ConversationID: conversationID,
		Question:       req.Question,
		GeneratedSQL:   safeSQL,
		Columns:        columns,
		Rows:           rows,
		RowCount:       len(rows),
	}, nil
}

func (s *ChatService) generateSQL(ctx context.Context, question, conversationID string) (string, error) {
	payload, err := json.Marshal(sqlAssistRequest{Question: question, ConversationID: conversationID})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("генератор SQL вернул статус %d", resp.StatusCode)
	}

	var parsed sqlAssistResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if strings.TrimSpace(parsed.SQL) == "" {
		return "", fmt.Errorf("генератор SQL вернул пустой запрос")
	}
	return parsed.SQL, nil
}

// sanitizeGeneratedSQL пропускает только одиночный SELECT (или WITH ... SELECT).
// LLM-генератору не доверяем: read-only транзакция страхует на уровне БД,
// этот фильтр - на уровне приложения.
func sanitizeGeneratedSQL(raw string) (string, error) {
	sqlText := strings.TrimSpace(raw)
	sqlText = strings.TrimSpace(strings.TrimSuffix(sqlText, ";"))

	if strings.ContainsRune(sqlText, ';') {
		return "", apperrors.ErrUnsafeGeneratedSQL
	}

	upper := strings.ToUpper(sqlText)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return "", apperrors.ErrUnsafeGeneratedSQL
	}

	if forbiddenSQLPattern.MatchString(sqlText) {
		return "", apperrors.ErrUnsafeGeneratedSQL
	}

	return sqlText, nil
}
