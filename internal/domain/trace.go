package domain

// Trace é o registro textual das vendas de um dia. Cada dia tem no máximo
// um trace e cada venda registrada acrescenta uma linha ao conteúdo.
type Trace struct {
	Data     string `json:"data"` // YYYY-MM-DD
	Conteudo string `json:"conteudo"`
}
