package domain

import "time"

// FormaPagamento é o conjunto fixo de meios de pagamento aceitos no caixa
type FormaPagamento string

const (
	Pix      FormaPagamento = "pix"
	Credito  FormaPagamento = "credito"
	Debito   FormaPagamento = "debito"
	Dinheiro FormaPagamento = "dinheiro"
)

// Valid informa se a forma de pagamento pertence à enumeração fixa
func (f FormaPagamento) Valid() bool {
	switch f {
	case Pix, Credito, Debito, Dinheiro:
		return true
	}
	return false
}

// ItemVenda é um par (produto, quantidade) dentro de uma venda
type ItemVenda struct {
	Produto    Produto `json:"produto"`
	Quantidade int     `json:"quantidade"`
}

// Venda é uma transação completa registrada no caixa.
// O ID é gerado pelo cliente e o total é calculado na submissão;
// vendas são imutáveis depois de registradas.
type Venda struct {
	ID             string         `json:"id"`
	Data           time.Time      `json:"data"`
	Cliente        string         `json:"cliente"`
	FormaPagamento FormaPagamento `json:"formaPagamento"`
	Total          float64        `json:"total"`
	Itens          []ItemVenda    `json:"itens"`
}
