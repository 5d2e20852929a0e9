package catalog

import "errors"

// Erros específicos para o contexto de produtos
var (
	// Erros de validação
	ErrNomeObrigatorio = errors.New("nome do produto é obrigatório")
	ErrPrecoInvalido   = errors.New("preço do produto deve ser maior que zero")

	// Erros de recurso
	ErrProdutoNaoEncontrado = errors.New("produto não encontrado")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)
