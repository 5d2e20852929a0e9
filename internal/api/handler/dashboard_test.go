package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pdv-bebidas-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pdv-bebidas-api/internal/api/handler/router"
	"github.com/vfg2006/pdv-bebidas-api/internal/domain"
	"github.com/vfg2006/pdv-bebidas-api/internal/usecases/reporting"
	"go.uber.org/mock/gomock"
)

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVendaRepo := mocks.NewMockVendaRepository(ctrl)
	mockTraceRepo := mocks.NewMockTraceRepository(ctrl)
	service := reporting.NewService(mockVendaRepo, mockTraceRepo)

	rt := router.New(router.WithRoutes(Dashboard(service)...))

	t.Run("responde o resumo do dia com as quatro formas de pagamento", func(t *testing.T) {
		mockVendaRepo.EXPECT().
			SumByFormaPagamento(gomock.Any(), gomock.Any()).
			Return(map[domain.FormaPagamento]float64{domain.Pix: 25.50}, nil)
		mockVendaRepo.EXPECT().
			TopProdutos(gomock.Any(), gomock.Any(), uint64(5)).
			Return([]domain.ProdutoVendido{
				{Nome: "ProdutoA", Quantidade: 2},
				{Nome: "ProdutoB", Quantidade: 1},
			}, nil)
		mockVendaRepo.EXPECT().
			SumTotal(gomock.Any(), gomock.Any()).
			Return(25.50, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/2024-01-15", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var dados domain.DadosGrafico
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dados))

		assert.Equal(t, 25.50, dados.Pix)
		assert.Equal(t, 0.0, dados.Credito)
		assert.Equal(t, 0.0, dados.Debito)
		assert.Equal(t, 0.0, dados.Dinheiro)
		assert.Equal(t, 25.50, dados.TotalVendas)
		assert.Len(t, dados.ProdutosMaisVendidos, 2)
		assert.Equal(t, "ProdutoA", dados.ProdutosMaisVendidos[0].Nome)
	})

	t.Run("data fora do formato devolve 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/15-01-2024", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("falha de leitura devolve 500", func(t *testing.T) {
		mockVendaRepo.EXPECT().
			SumByFormaPagamento(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		req := httptest.NewRequest(http.MethodGet, "/api/dashboard/2024-01-15", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
