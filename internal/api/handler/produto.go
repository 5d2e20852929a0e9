package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-bebidas-api/internal/domain"
	"github.com/vfg2006/pdv-bebidas-api/internal/usecases/catalog"
	"github.com/vfg2006/pdv-bebidas-api/pkg/apiErrors"
)

// ListProdutos retorna todos os produtos do catálogo
func ListProdutos(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		produtos, err := service.ListProducts()
		if err != nil {
			logrus.Error("Erro ao buscar produtos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produtos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(produtos); err != nil {
			logrus.Error("Erro ao enviar resposta:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetProduto retorna um produto pelo ID
func GetProduto(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		produto, err := service.GetProduct(id)
		if err != nil {
			logrus.Error("Erro ao buscar produto:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto", nil)
			return
		}

		if produto == nil {
			apiErrors.WriteError(w, apiErrors.ErrProdutoNaoEncontrado, "Produto não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(produto); err != nil {
			logrus.Error("Erro ao enviar resposta:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreateProduto cadastra um novo produto
func CreateProduto(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var produto *domain.Produto

		if err := json.NewDecoder(r.Body).Decode(&produto); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.CreateProduct(produto); err != nil {
			writeCatalogError(w, err, "Erro ao cadastrar produto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"message": "Produto cadastrado com sucesso"})
	}
}

// UpdateProduto atualiza um produto existente
func UpdateProduto(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		var produto *domain.Produto
		if err := json.NewDecoder(r.Body).Decode(&produto); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		produto.ID = id

		if err := service.UpdateProduct(produto); err != nil {
			writeCatalogError(w, err, "Erro ao atualizar produto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Produto atualizado com sucesso"})
	}
}

// DeleteProduto exclui um produto pelo ID
func DeleteProduto(service catalog.CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do produto não fornecido", nil)
			return
		}

		if err := service.DeleteProduct(id); err != nil {
			writeCatalogError(w, err, "Erro ao excluir produto")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Produto excluído com sucesso"})
	}
}

// writeCatalogError traduz os erros do catálogo para o envelope da API
func writeCatalogError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, catalog.ErrProdutoNaoEncontrado):
		apiErrors.WriteError(w, apiErrors.ErrProdutoNaoEncontrado, "Produto não encontrado", nil)
	case errors.Is(err, catalog.ErrNomeObrigatorio), errors.Is(err, catalog.ErrPrecoInvalido):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		logrus.Error(fallback+":", err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, fallback, nil)
	}
}
