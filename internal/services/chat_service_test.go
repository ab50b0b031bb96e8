package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shipment-dashboard/internal/dto"
	"shipment-dashboard/pkg/config"
	apperrors "shipment-dashboard/pkg/errors"
)

func TestSanitizeGeneratedSQL(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "обычный SELECT проходит",
			input: `SELECT * FROM shipments`,
			want:  `SELECT * FROM shipments`,
		},
		{
			name:  "хвостовая точка с запятой и пробелы срезаются",
			input: "  select count(*) from shipments ; ",
			want:  "select count(*) from shipments",
		},
		{
			name:  "CTE с WITH проходит",
			input: `WITH t AS (SELECT 1) SELECT * FROM t`,
			want:  `WITH t AS (SELECT 1) SELECT * FROM t`,
		},
		{
			name:  "подстрока запрещенного слова в имени колонки проходит",
			input: `SELECT deleted_at FROM shipments`,
			want:  `SELECT deleted_at FROM shipments`,
		},
		{
			name:    "UPDATE отклоняется",
			input:   `UPDATE shipments SET x = 1`,
			wantErr: true,
		},
		{
			name:    "DROP внутри запроса отклоняется",
			input:   `SELECT 1; DROP TABLE shipments`,
			wantErr: true,
		},
		{
			name:    "несколько стейтментов отклоняются",
			input:   `SELECT 1; SELECT 2`,
			wantErr: true,
		},
		{
			name:    "EXPLAIN отклоняется",
			input:   `EXPLAIN SELECT 1`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sanitizeGeneratedSQL(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnsafeGeneratedSQL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

type fakeQueryRepo struct {
	lastSQL string
	columns []string
	rows    [][]interface{}
}

func (r *fakeQueryRepo) RunSelect(_ context.Context, sqlText string) ([]string, [][]interface{}, error) {
	r.lastSQL = sqlText
	return r.columns, r.rows, nil
}

func TestChatServiceAsk(t *testing.T) {
	generator := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req sqlAssistRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.ConversationID)
		json.NewEncoder(w).Encode(sqlAssistResponse{SQL: `SELECT "JOB_NO" FROM shipments;`})
	}))
	defer generator.Close()

	queryRepo := &fakeQueryRepo{
		columns: []string{"JOB_NO"},
		rows:    [][]interface{}{{"J1"}, {"J2"}},
	}
	svc := NewChatService(queryRepo, config.SQLAssistConfig{
		Endpoint: generator.URL,
		Timeout:  time.Second * 5,
	}, zap.NewNop())

	resp, err := svc.Ask(context.Background(), dto.ChatRequestDTO{Question: "сколько отгрузок?"})
	require.NoError(t, err)

	assert.Equal(t, `SELECT "JOB_NO" FROM shipments`, resp.GeneratedSQL, "хвостовая ; срезается перед выполнением")
	assert.Equal(t, resp.GeneratedSQL, queryRepo.lastSQL)
	assert.Equal(t, []string{"JOB_NO"}, resp.Columns)
	assert.Equal(t, 2, resp.RowCount)
	assert.NotEmpty(t, resp.ConversationID)
}

func TestChatServiceAsk_UnsafeSQLRejected(t *testing.T) {
	generator := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sqlAssistResponse{SQL: `DELETE FROM shipments`})
	}))
	defer generator.Close()

	queryRepo := &fakeQueryRepo{}
	svc := NewChatService(queryRepo, config.SQLAssistConfig{
		Endpoint: generator.URL,
		Timeout:  time.Second * 5,
	}, zap.NewNop())

	_, err := svc.Ask(context.Background(), dto.ChatRequestDTO{Question: "удали все"})
	assert.ErrorIs(t, err, apperrors.ErrUnsafeGeneratedSQL)
	assert.Empty(t, queryRepo.lastSQL, "до репозитория небезопасный SQL не доходит")
}
