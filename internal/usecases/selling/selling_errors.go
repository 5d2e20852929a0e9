package selling

import "errors"

// Erros específicos para o registro de vendas
var (
	// Erros de validação
	ErrVendaSemItens          = errors.New("venda deve ter pelo menos um item")
	ErrFormaPagamentoInvalida = errors.New("forma de pagamento inválida")
	ErrQuantidadeInvalida     = errors.New("quantidade do item deve ser maior ou igual a um")

	// Erro genérico de persistência: o chamador não recebe qual etapa falhou
	ErrRegistroVenda = errors.New("erro ao registrar venda")
)
