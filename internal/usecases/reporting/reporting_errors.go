package reporting

import "errors"

// Erros específicos para consultas de relatório
var (
	ErrDashboard     = errors.New("erro ao montar dados do dashboard")
	ErrBuscaVendas   = errors.New("erro ao buscar vendas")
	ErrBuscaTrace    = errors.New("erro ao buscar trace")
	ErrDatasDeTraces = errors.New("erro ao buscar datas de traces")
)
