package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QueryRepositoryInterface выполняет уже ПРОВЕРЕННЫЙ сервисом SELECT от
// чат-ассистента. Ограничение доступа (read-only транзакция) - здесь,
// проверка текста запроса - в сервисе.
type QueryRepositoryInterface interface {
	RunSelect(ctx context.Context, sqlText string) (columns []string, rowsOut [][]interface{}, err error)
}

type QueryRepository struct {
	storage *pgxpool.Pool
}

func NewQueryRepository(storage *pgxpool.Pool) QueryRepositoryInterface {
	return &QueryRepository{storage: storage}
}

func (r *QueryRepository) RunSelect(ctx context.Context, sqlText string) ([]string, [][]interface{}, error) {
	tx, err := r.storage.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, sqlText)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	columns := make([]string, len(fields))
	for i, f := range fields {
		columns[i] = f.Name
	}

	var out [][]interface{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, nil, err
		}
		out = append(out, values)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return columns, out, tx.Commit(ctx)
}
