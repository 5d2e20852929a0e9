package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/pdv-bebidas-api/infrastructure/database/postgres"
)

const tracesTable = "traces"

type TraceRepository interface {
	AppendEntry(tx *sql.Tx, day string, entry string) error
	GetByDay(day string) (string, error)
	ListDays() ([]string, error)
}

type traceRepository struct {
	conn *postgres.Connection
}

func NewTraceRepository(conn *postgres.Connection) TraceRepository {
	return &traceRepository{
		conn: conn,
	}
}

// AppendEntry acrescenta uma linha ao trace do dia em um único comando.
// A concatenação acontece no servidor via upsert, então duas vendas
// simultâneas no mesmo dia não perdem linhas.
func (r *traceRepository) AppendEntry(tx *sql.Tx, day string, entry string) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(tracesTable).
		Columns("data", "conteudo").
		Values(day, entry).
		Suffix(`
			ON CONFLICT (data) DO UPDATE SET
				conteudo = traces.conteudo || EXCLUDED.conteudo
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = tx.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetByDay retorna o conteúdo do trace do dia, ou string vazia quando o dia
// não tem vendas registradas
func (r *traceRepository) GetByDay(day string) (string, error) {
	query, args, err := squirrel.
		Select("conteudo").
		From(tracesTable).
		Where(squirrel.Eq{"data": day}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var conteudo string
	if err := r.conn.QueryRow(query, args...).Scan(&conteudo); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("erro ao escanear trace: %w", err)
	}

	return conteudo, nil
}

func (r *traceRepository) ListDays() ([]string, error) {
	query, args, err := squirrel.
		Select("data").
		From(tracesTable).
		OrderBy("data ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	days := make([]string, 0)
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("erro ao escanear data de trace: %w", err)
		}
		days = append(days, day.Format(time.DateOnly))
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return days, nil
}
