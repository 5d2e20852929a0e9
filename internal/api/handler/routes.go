package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/pdv-bebidas-api/internal/api/handler/router"
	"github.com/vfg2006/pdv-bebidas-api/internal/usecases/catalog"
	"github.com/vfg2006/pdv-bebidas-api/internal/usecases/reporting"
	"github.com/vfg2006/pdv-bebidas-api/internal/usecases/selling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Produtos(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/produtos",
			Method:  http.MethodGet,
			Handler: ListProdutos(service),
		},
		{
			Path:    "/api/produtos/:id",
			Method:  http.MethodGet,
			Handler: GetProduto(service),
		},
		{
			Path:    "/api/produtos",
			Method:  http.MethodPost,
			Handler: CreateProduto(service),
		},
		{
			Path:    "/api/produtos/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduto(service),
		},
		{
			Path:    "/api/produtos/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduto(service),
		},
	}
}

func Vendas(sellingService selling.SellingService, reportingService reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/vendas",
			Method:  http.MethodGet,
			Handler: ListVendas(reportingService),
		},
		{
			Path:    "/api/vendas/data/:data",
			Method:  http.MethodGet,
			Handler: ListVendasByData(reportingService),
		},
		{
			Path:    "/api/vendas",
			Method:  http.MethodPost,
			Handler: CreateVenda(sellingService),
		},
	}
}

func Dashboard(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard/:data",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Traces(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/traces/data/:data",
			Method:  http.MethodGet,
			Handler: GetTraceByData(service),
		},
		{
			Path:    "/api/traces/datas",
			Method:  http.MethodGet,
			Handler: ListTraceDatas(service),
		},
	}
}
