package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/pdv-bebidas-api/infrastructure/database/postgres"
	"github.com/vfg2006/pdv-bebidas-api/internal/domain"
)

const (
	vendasTable     = "vendas"
	itensVendaTable = "itens_venda"
)

type VendaRepository interface {
	InsertVenda(tx *sql.Tx, venda *domain.Venda) error
	InsertItem(tx *sql.Tx, vendaID string, item domain.ItemVenda) error
	ListAll() ([]*domain.Venda, error)
	ListByPeriod(start, end time.Time) ([]*domain.Venda, error)
	SumByFormaPagamento(start, end time.Time) (map[domain.FormaPagamento]float64, error)
	TopProdutos(start, end time.Time, limit uint64) ([]domain.ProdutoVendido, error)
	SumTotal(start, end time.Time) (float64, error)
}

type vendaRepository struct {
	conn *postgres.Connection
}

func NewVendaRepository(conn *postgres.Connection) VendaRepository {
	return &vendaRepository{
		conn: conn,
	}
}

// InsertVenda insere o cabeçalho da venda dentro da transação do registro
func (r *vendaRepository) InsertVenda(tx *sql.Tx, venda *domain.Venda) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(vendasTable).
		Columns("id", "data", "cliente", "forma_pagamento", "total").
		Values(venda.ID, venda.Data, venda.Cliente, string(venda.FormaPagamento), venda.Total).
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

// InsertItem insere um item da venda dentro da transação do registro
func (r *vendaRepository) InsertItem(tx *sql.Tx, vendaID string, item domain.ItemVenda) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(itensVendaTable).
		Columns("venda_id", "produto_id", "quantidade").
		Values(vendaID, item.Produto.ID, item.Quantidade).
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

func (r *vendaRepository) ListAll() ([]*domain.Venda, error) {
	query, args, err := squirrel.
		Select("id, data, cliente, forma_pagamento, total").
		From(vendasTable).
		OrderBy("data ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryVendas(query, args...)
}

func (r *vendaRepository) ListByPeriod(start, end time.Time) ([]*domain.Venda, error) {
	query, args, err := squirrel.
		Select("id, data, cliente, forma_pagamento, total").
		From(vendasTable).
		Where(squirrel.GtOrEq{"data": start}).
		Where(squirrel.LtOrEq{"data": end}).
		OrderBy("data ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryVendas(query, args...)
}

// SumByFormaPagamento soma os totais das vendas do período agrupadas por forma de pagamento
func (r *vendaRepository) SumByFormaPagamento(start, end time.Time) (map[domain.FormaPagamento]float64, error) {
	query, args, err := squirrel.
		Select("forma_pagamento, SUM(total) AS total").
		From(vendasTable).
		Where(squirrel.GtOrEq{"data": start}).
		Where(squirrel.LtOrEq{"data": end}).
		GroupBy("forma_pagamento").
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

	totais := make(map[domain.FormaPagamento]float64)
	for rows.Next() {
		var forma string
		var total float64
		if err := rows.Scan(&forma, &total); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais por forma de pagamento: %w", err)
		}
		totais[domain.FormaPagamento(forma)] = total
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totais, nil
}

// TopProdutos retorna os produtos mais vendidos do período ordenados por
// quantidade decrescente, com desempate lexicográfico pelo nome
func (r *vendaRepository) TopProdutos(start, end time.Time, limit uint64) ([]domain.ProdutoVendido, error) {
	query, args, err := squirrel.
		Select("p.nome, SUM(iv.quantidade) AS quantidade").
		From(itensVendaTable + " iv").
		Join("produtos p ON iv.produto_id = p.id").
		Join("vendas v ON iv.venda_id = v.id").
		Where(squirrel.GtOrEq{"v.data": start}).
		Where(squirrel.LtOrEq{"v.data": end}).
		GroupBy("p.nome").
		OrderBy("quantidade DESC", "p.nome ASC").
		Limit(limit).
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

	produtos := make([]domain.ProdutoVendido, 0)
	for rows.Next() {
		var produto domain.ProdutoVendido
		if err := rows.Scan(&produto.Nome, &produto.Quantidade); err != nil {
			return nil, fmt.Errorf("erro ao escanear produtos mais vendidos: %w", err)
		}
		produtos = append(produtos, produto)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return produtos, nil
}

func (r *vendaRepository) SumTotal(start, end time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(total), 0)").
		From(vendasTable).
		Where(squirrel.GtOrEq{"data": start}).
		Where(squirrel.LtOrEq{"data": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao escanear total de vendas: %w", err)
	}

	return total, nil
}

func (r *vendaRepository) queryVendas(query string, args ...interface{}) ([]*domain.Venda, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	vendas := make([]*domain.Venda, 0)
	for rows.Next() {
		venda := &domain.Venda{}
		var forma string
		if err := rows.Scan(&venda.ID, &venda.Data, &venda.Cliente, &forma, &venda.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		venda.FormaPagamento = domain.FormaPagamento(forma)
		vendas = append(vendas, venda)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	for _, venda := range vendas {
		itens, err := r.listItens(venda.ID)
		if err != nil {
			return nil, err
		}
		venda.Itens = itens
	}

	return vendas, nil
}

func (r *vendaRepository) listItens(vendaID string) ([]domain.ItemVenda, error) {
	query, args, err := squirrel.
		Select("iv.quantidade, p.id, p.nome, p.preco, p.imagem").
		From(itensVendaTable + " iv").
		Join("produtos p ON iv.produto_id = p.id").
		Where(squirrel.Eq{"iv.venda_id": vendaID}).
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

	itens := make([]domain.ItemVenda, 0)
	for rows.Next() {
		item := domain.ItemVenda{}
		if err := rows.Scan(
			&item.Quantidade,
			&item.Produto.ID,
			&item.Produto.Nome,
			&item.Produto.Preco,
			&item.Produto.Imagem,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear item de venda: %w", err)
		}
		itens = append(itens, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return itens, nil
}
