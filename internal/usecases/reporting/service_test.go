package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/pdv-bebidas-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pdv-bebidas-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetDashboard(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		setup    func(vendaRepo *mocks.MockVendaRepository)
		validate func(t *testing.T, dados *domain.DadosGrafico)
	}{
		{
			name: "venda única no pix preenche as quatro chaves",
			setup: func(vendaRepo *mocks.MockVendaRepository) {
				vendaRepo.EXPECT().
					SumByFormaPagamento(gomock.Any(), gomock.Any()).
					Return(map[domain.FormaPagamento]float64{domain.Pix: 25.50}, nil)
				vendaRepo.EXPECT().
					TopProdutos(gomock.Any(), gomock.Any(), uint64(5)).
					Return([]domain.ProdutoVendido{
						{Nome: "ProdutoA", Quantidade: 2},
						{Nome: "ProdutoB", Quantidade: 1},
					}, nil)
				vendaRepo.EXPECT().
					SumTotal(gomock.Any(), gomock.Any()).
					Return(25.50, nil)
			},
			validate: func(t *testing.T, dados *domain.DadosGrafico) {
				assert.Equal(t, 25.50, dados.Pix)
				assert.Equal(t, 0.0, dados.Credito)
				assert.Equal(t, 0.0, dados.Debito)
				assert.Equal(t, 0.0, dados.Dinheiro)
				assert.Equal(t, 25.50, dados.TotalVendas)
				assert.Equal(t, []domain.ProdutoVendido{
					{Nome: "ProdutoA", Quantidade: 2},
					{Nome: "ProdutoB", Quantidade: 1},
				}, dados.ProdutosMaisVendidos)
			},
		},
		{
			name: "duas vendas em formas diferentes somam o total geral",
			setup: func(vendaRepo *mocks.MockVendaRepository) {
				vendaRepo.EXPECT().
					SumByFormaPagamento(gomock.Any(), gomock.Any()).
					Return(map[domain.FormaPagamento]float64{
						domain.Credito:  100.00,
						domain.Dinheiro: 50.00,
					}, nil)
				vendaRepo.EXPECT().
					TopProdutos(gomock.Any(), gomock.Any(), uint64(5)).
					Return([]domain.ProdutoVendido{}, nil)
				vendaRepo.EXPECT().
					SumTotal(gomock.Any(), gomock.Any()).
					Return(150.00, nil)
			},
			validate: func(t *testing.T, dados *domain.DadosGrafico) {
				assert.Equal(t, 100.00, dados.Credito)
				assert.Equal(t, 50.00, dados.Dinheiro)
				assert.Equal(t, 0.0, dados.Pix)
				assert.Equal(t, 0.0, dados.Debito)
				assert.Equal(t, 150.00, dados.TotalVendas)

				// os baldes precisam fechar com o total geral
				soma := dados.Pix + dados.Credito + dados.Debito + dados.Dinheiro
				assert.InDelta(t, dados.TotalVendas, soma, 0.001)
			},
		},
		{
			name: "dia sem vendas devolve tudo zerado",
			setup: func(vendaRepo *mocks.MockVendaRepository) {
				vendaRepo.EXPECT().
					SumByFormaPagamento(gomock.Any(), gomock.Any()).
					Return(map[domain.FormaPagamento]float64{}, nil)
				vendaRepo.EXPECT().
					TopProdutos(gomock.Any(), gomock.Any(), uint64(5)).
					Return([]domain.ProdutoVendido{}, nil)
				vendaRepo.EXPECT().
					SumTotal(gomock.Any(), gomock.Any()).
					Return(0.0, nil)
			},
			validate: func(t *testing.T, dados *domain.DadosGrafico) {
				assert.Equal(t, 0.0, dados.Pix)
				assert.Equal(t, 0.0, dados.Credito)
				assert.Equal(t, 0.0, dados.Debito)
				assert.Equal(t, 0.0, dados.Dinheiro)
				assert.Equal(t, 0.0, dados.TotalVendas)
				assert.Empty(t, dados.ProdutosMaisVendidos)
			},
		},
		{
			name: "ranking preserva a ordem decrescente vinda do banco",
			setup: func(vendaRepo *mocks.MockVendaRepository) {
				vendaRepo.EXPECT().
					SumByFormaPagamento(gomock.Any(), gomock.Any()).
					Return(map[domain.FormaPagamento]float64{domain.Debito: 300.00}, nil)
				// seis produtos vendidos, o repositório corta no quinto
				vendaRepo.EXPECT().
					TopProdutos(gomock.Any(), gomock.Any(), uint64(5)).
					Return([]domain.ProdutoVendido{
						{Nome: "P1", Quantidade: 60},
						{Nome: "P2", Quantidade: 50},
						{Nome: "P3", Quantidade: 40},
						{Nome: "P4", Quantidade: 30},
						{Nome: "P5", Quantidade: 20},
					}, nil)
				vendaRepo.EXPECT().
					SumTotal(gomock.Any(), gomock.Any()).
					Return(300.00, nil)
			},
			validate: func(t *testing.T, dados *domain.DadosGrafico) {
				assert.Len(t, dados.ProdutosMaisVendidos, 5)
				for i := 1; i < len(dados.ProdutosMaisVendidos); i++ {
					assert.GreaterOrEqual(t,
						dados.ProdutosMaisVendidos[i-1].Quantidade,
						dados.ProdutosMaisVendidos[i].Quantidade,
					)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockVendaRepo := mocks.NewMockVendaRepository(ctrl)
			mockTraceRepo := mocks.NewMockTraceRepository(ctrl)
			tt.setup(mockVendaRepo)

			service := NewService(mockVendaRepo, mockTraceRepo)

			dados, err := service.GetDashboard(day)
			assert.NoError(t, err)
			tt.validate(t, dados)
		})
	}
}

func TestService_GetDashboard_Idempotente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVendaRepo := mocks.NewMockVendaRepository(ctrl)
	mockTraceRepo := mocks.NewMockTraceRepository(ctrl)

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)

	mockVendaRepo.EXPECT().
		SumByFormaPagamento(gomock.Any(), gomock.Any()).
		Return(map[domain.FormaPagamento]float64{domain.Pix: 42.00}, nil).
		Times(2)
	mockVendaRepo.EXPECT().
		TopProdutos(gomock.Any(), gomock.Any(), uint64(5)).
		Return([]domain.ProdutoVendido{{Nome: "ProdutoA", Quantidade: 3}}, nil).
		Times(2)
	mockVendaRepo.EXPECT().
		SumTotal(gomock.Any(), gomock.Any()).
		Return(42.00, nil).
		Times(2)

	service := NewService(mockVendaRepo, mockTraceRepo)

	primeiro, err := service.GetDashboard(day)
	assert.NoError(t, err)

	segundo, err := service.GetDashboard(day)
	assert.NoError(t, err)

	assert.Equal(t, primeiro, segundo)
}

func TestService_GetDashboard_Erro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVendaRepo := mocks.NewMockVendaRepository(ctrl)
	mockTraceRepo := mocks.NewMockTraceRepository(ctrl)

	mockVendaRepo.EXPECT().
		SumByFormaPagamento(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	service := NewService(mockVendaRepo, mockTraceRepo)

	dados, err := service.GetDashboard(time.Now())
	assert.Nil(t, dados)
	assert.ErrorIs(t, err, ErrDashboard)
}

func TestService_GetTraceByDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVendaRepo := mocks.NewMockVendaRepository(ctrl)
	mockTraceRepo := mocks.NewMockTraceRepository(ctrl)

	service := NewService(mockVendaRepo, mockTraceRepo)

	t.Run("dia com duas vendas devolve o texto em ordem de submissão", func(t *testing.T) {
		conteudo := "[10:00:00] | Cliente: Maria | Bebidas: ProdutoA (2) | Pagamento: Pix | Total: R$ 20,00\n" +
			"[11:30:00] | Cliente: José | Bebidas: ProdutoB (1) | Pagamento: Dinheiro | Total: R$ 5,50\n"

		mockTraceRepo.EXPECT().
			GetByDay("2024-01-15").
			Return(conteudo, nil)

		got, err := service.GetTraceByDay(time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local))
		assert.NoError(t, err)
		assert.Equal(t, conteudo, got)
	})

	t.Run("dia sem vendas devolve string vazia sem erro", func(t *testing.T) {
		mockTraceRepo.EXPECT().
			GetByDay("2024-02-01").
			Return("", nil)

		got, err := service.GetTraceByDay(time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local))
		assert.NoError(t, err)
		assert.Equal(t, "", got)
	})
}

func TestService_ListTraceDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVendaRepo := mocks.NewMockVendaRepository(ctrl)
	mockTraceRepo := mocks.NewMockTraceRepository(ctrl)

	mockTraceRepo.EXPECT().
		ListDays().
		Return([]string{"2024-01-14", "2024-01-15", "2024-01-20"}, nil)

	service := NewService(mockVendaRepo, mockTraceRepo)

	days, err := service.ListTraceDays()
	assert.NoError(t, err)
	assert.Equal(t, []string{"2024-01-14", "2024-01-15", "2024-01-20"}, days)
	assert.NotContains(t, days, "2024-02-01")
}
