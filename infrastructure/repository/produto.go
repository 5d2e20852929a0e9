package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/pdv-bebidas-api/infrastructure/database/postgres"
	"github.com/vfg2006/pdv-bebidas-api/internal/domain"
)

const produtosTable = "produtos"

type ProdutoRepository interface {
	List() ([]*domain.Produto, error)
	GetByID(id string) (*domain.Produto, error)
	Insert(produto *domain.Produto) error
	Update(produto *domain.Produto) (bool, error)
	Delete(id string) (bool, error)
}

type produtoRepository struct {
	conn *postgres.Connection
}

func NewProdutoRepository(conn *postgres.Connection) ProdutoRepository {
	return &produtoRepository{
		conn: conn,
	}
}

func (r *produtoRepository) List() ([]*domain.Produto, error) {
	query, args, err := squirrel.
		Select("id, nome, preco, imagem").
		From(produtosTable).
		OrderBy("nome ASC").
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

	produtos := make([]*domain.Produto, 0)
	for rows.Next() {
		produto := &domain.Produto{}
		if err := rows.Scan(&produto.ID, &produto.Nome, &produto.Preco, &produto.Imagem); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		produtos = append(produtos, produto)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return produtos, nil
}

func (r *produtoRepository) GetByID(id string) (*domain.Produto, error) {
	query, args, err := squirrel.
		Select("id, nome, preco, imagem").
		From(produtosTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	produto := &domain.Produto{}
	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&produto.ID, &produto.Nome, &produto.Preco, &produto.Imagem); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return produto, nil
}

func (r *produtoRepository) Insert(produto *domain.Produto) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(produtosTable).
		Columns("id", "nome", "preco", "imagem").
		Values(produto.ID, produto.Nome, produto.Preco, produto.Imagem).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// Update atualiza um produto existente e informa se alguma linha foi afetada
func (r *produtoRepository) Update(produto *domain.Produto) (bool, error) {
	query, args, err := squirrel.StatementBuilder.
		Update(produtosTable).
		Set("nome", produto.Nome).
		Set("preco", produto.Preco).
		Set("imagem", produto.Imagem).
		Where(squirrel.Eq{"id": produto.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

// Delete remove um produto e informa se alguma linha foi afetada
func (r *produtoRepository) Delete(id string) (bool, error) {
	query, args, err := squirrel.
		Delete(produtosTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}
