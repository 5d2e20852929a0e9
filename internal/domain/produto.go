package domain

// Produto representa um item do catálogo de bebidas
type Produto struct {
	ID    string  `json:"id"`
	Nome  string  `json:"nome"`
	Preco float64 `json:"preco"`
	// Imagem guarda a URL ou o conteúdo em base64 enviado pelo frontend
	Imagem string `json:"imagem"`
}
