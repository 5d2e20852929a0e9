package domain

// ProdutoVendido é uma entrada do ranking de produtos mais vendidos do dia
type ProdutoVendido struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

// DadosGrafico é a projeção diária consumida pelo dashboard: receita por
// forma de pagamento, total geral e top 5 de produtos. É recalculada a cada
// requisição, nunca persistida.
type DadosGrafico struct {
	Pix                  float64          `json:"pix"`
	Credito              float64          `json:"credito"`
	Debito               float64          `json:"debito"`
	Dinheiro             float64          `json:"dinheiro"`
	TotalVendas          float64          `json:"totalVendas"`
	ProdutosMaisVendidos []ProdutoVendido `json:"produtosMaisVendidos"`
}
