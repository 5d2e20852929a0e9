package reporting

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-bebidas-api/infrastructure/repository"
	"github.com/vfg2006/pdv-bebidas-api/internal/domain"
	"github.com/vfg2006/pdv-bebidas-api/pkg/utils"
)

// topProdutosLimit limita o ranking do dashboard aos 5 mais vendidos
const topProdutosLimit = 5

// ReportingService agrega as leituras do caixa: dashboard diário, listagem
// de vendas e consulta de traces. Todas as operações são somente leitura.
type ReportingService interface {
	GetDashboard(day time.Time) (*domain.DadosGrafico, error)
	ListSales() ([]*domain.Venda, error)
	ListSalesByDay(day time.Time) ([]*domain.Venda, error)
	GetTraceByDay(day time.Time) (string, error)
	ListTraceDays() ([]string, error)
}

type Service struct {
	vendaRepo repository.VendaRepository
	traceRepo repository.TraceRepository
}

func NewService(
	vendaRepo repository.VendaRepository,
	traceRepo repository.TraceRepository,
) ReportingService {
	return &Service{
		vendaRepo: vendaRepo,
		traceRepo: traceRepo,
	}
}

// GetDashboard calcula a projeção diária: receita por forma de pagamento
// (as quatro chaves sempre presentes, ausentes valem zero), total geral e
// os cinco produtos mais vendidos do dia
func (s *Service) GetDashboard(day time.Time) (*domain.DadosGrafico, error) {
	start, end := utils.DayWindow(day)

	totais, err := s.vendaRepo.SumByFormaPagamento(start, end)
	if err != nil {
		logrus.WithError(err).Error("Erro ao somar vendas por forma de pagamento")
		return nil, errors.Wrap(ErrDashboard, err.Error())
	}

	topProdutos, err := s.vendaRepo.TopProdutos(start, end, topProdutosLimit)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar produtos mais vendidos")
		return nil, errors.Wrap(ErrDashboard, err.Error())
	}

	// O total geral é somado de forma independente dos baldes por forma de
	// pagamento, como sempre foi feito no servidor original
	totalVendas, err := s.vendaRepo.SumTotal(start, end)
	if err != nil {
		logrus.WithError(err).Error("Erro ao somar total de vendas do dia")
		return nil, errors.Wrap(ErrDashboard, err.Error())
	}

	dados := &domain.DadosGrafico{
		Pix:                  totais[domain.Pix],
		Credito:              totais[domain.Credito],
		Debito:               totais[domain.Debito],
		Dinheiro:             totais[domain.Dinheiro],
		TotalVendas:          utils.RoundWithTwoDecimalPlace(totalVendas),
		ProdutosMaisVendidos: topProdutos,
	}

	return dados, nil
}

func (s *Service) ListSales() ([]*domain.Venda, error) {
	vendas, err := s.vendaRepo.ListAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar vendas")
		return nil, errors.Wrap(ErrBuscaVendas, err.Error())
	}
	return vendas, nil
}

func (s *Service) ListSalesByDay(day time.Time) ([]*domain.Venda, error) {
	start, end := utils.DayWindow(day)

	vendas, err := s.vendaRepo.ListByPeriod(start, end)
	if err != nil {
		logrus.WithError(err).WithField("data", day.Format(time.DateOnly)).Error("Erro ao listar vendas do dia")
		return nil, errors.Wrap(ErrBuscaVendas, err.Error())
	}
	return vendas, nil
}

// GetTraceByDay devolve o texto bruto do trace do dia; dias sem vendas
// retornam string vazia, nunca erro
func (s *Service) GetTraceByDay(day time.Time) (string, error) {
	conteudo, err := s.traceRepo.GetByDay(day.Format(time.DateOnly))
	if err != nil {
		logrus.WithError(err).WithField("data", day.Format(time.DateOnly)).Error("Erro ao buscar trace do dia")
		return "", errors.Wrap(ErrBuscaTrace, err.Error())
	}
	return conteudo, nil
}

func (s *Service) ListTraceDays() ([]string, error) {
	days, err := s.traceRepo.ListDays()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar datas de traces")
		return nil, errors.Wrap(ErrDatasDeTraces, err.Error())
	}
	return days, nil
}
