package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/pdv-bebidas-api/internal/domain"
	"github.com/vfg2006/pdv-bebidas-api/internal/usecases/reporting"
	"github.com/vfg2006/pdv-bebidas-api/internal/usecases/selling"
	"github.com/vfg2006/pdv-bebidas-api/pkg/apiErrors"
	"github.com/vfg2006/pdv-bebidas-api/pkg/log"
	"github.com/vfg2006/pdv-bebidas-api/pkg/utils"
)

// CreateVenda registra uma nova venda de forma atômica
func CreateVenda(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var venda *domain.Venda
		if err := json.NewDecoder(r.Body).Decode(&venda); err != nil {
			logger.WithError(err).Warn("vendas: erro ao decodificar requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.RecordSale(r.Context(), venda); err != nil {
			switch {
			case errors.Is(err, selling.ErrVendaSemItens),
				errors.Is(err, selling.ErrFormaPagamentoInvalida),
				errors.Is(err, selling.ErrQuantidadeInvalida):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar venda", nil)
			}
			return
		}

		logger.WithField("venda_id", venda.ID).Info("vendas: venda registrada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Venda registrada com sucesso"})
	})
}

// ListVendas retorna todas as vendas com seus itens
func ListVendas(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		vendas, err := service.ListSales()
		if err != nil {
			logger.WithError(err).Error("vendas: erro ao listar vendas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(vendas); err != nil {
			logger.WithError(err).Error("vendas: erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ListVendasByData retorna as vendas de um dia específico
func ListVendasByData(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dataStr := httprouter.ParamsFromContext(r.Context()).ByName("data")
		data, err := utils.ParseDate(dataStr)
		if err != nil {
			logger.WithFields(log.Fields{
				"data":  dataStr,
				"error": err.Error(),
			}).Warn("vendas: data inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		vendas, err := service.ListSalesByDay(*data)
		if err != nil {
			logger.WithError(err).WithField("data", dataStr).Error("vendas: erro ao listar vendas do dia")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar vendas por data", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(vendas); err != nil {
			logger.WithError(err).Error("vendas: erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
