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

// GetDashboard retorna a agregação diária de vendas para o dashboard
func GetDashboard(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		dataStr := httprouter.ParamsFromContext(r.Context()).ByName("data")
		data, err := utils.ParseDate(dataStr)
		if err != nil {
			logger.WithFields(log.Fields{
				"data":  dataStr,
				"error": err.Error(),
			}).Warn("dashboard: data inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		dados, err := service.GetDashboard(*data)
		if err != nil {
			logger.WithError(err).WithField("data", dataStr).Error("dashboard: erro ao montar dados")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar dados do dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dados); err != nil {
			logger.WithError(err).Error("dashboard: erro ao enviar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
