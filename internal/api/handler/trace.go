package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/pdv-bebidas-api/internal/usecases/reporting"
	"github.com/vfg2006/pdv-bebidas-api/pkg/apiErrors"
	"github.com/vfg2006/pdv-bebidas-api/pkg/log"
	"github.com/vfg2006/pdv-bebidas-api/pkg/utils"
)

// GetTraceByData retorna o texto bruto do trace do dia. Dias sem vendas
// respondem com string vazia, nunca com 404.
func GetTraceByData(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dataStr := httprouter.ParamsFromContext(r.Context()).ByName("data")
		data, err := utils.ParseDate(dataStr)
		if err != nil {
			logger.WithFields(log.Fields{
				"data":  dataStr,
				"error": err.Error(),
			}).Warn("traces: data inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		conteudo, err := service.GetTraceByDay(*data)
		if err != nil {
			logger.WithError(err).WithField("data", dataStr).Error("traces: erro ao buscar trace")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar trace", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(conteudo); err != nil {
			logger.WithError(err).Error("traces: erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ListTraceDatas retorna as datas com trace em ordem cronológica crescente
func ListTraceDatas(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		datas, err := service.ListTraceDays()
		if err != nil {
			logger.WithError(err).Error("traces: erro ao listar datas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar datas de traces", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(datas); err != nil {
			logger.WithError(err).Error("traces: erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
