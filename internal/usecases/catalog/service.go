package catalog

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-bebidas-api/infrastructure/repository"
	"github.com/vfg2006/pdv-bebidas-api/internal/domain"
	"github.com/vfg2006/pdv-bebidas-api/pkg/utils"
)

// CatalogService define as operações de CRUD do catálogo de produtos
type CatalogService interface {
	ListProducts() ([]*domain.Produto, error)
	GetProduct(id string) (*domain.Produto, error)
	CreateProduct(produto *domain.Produto) error
	UpdateProduct(produto *domain.Produto) error
	DeleteProduct(id string) error
}

type Service struct {
	produtoRepo repository.ProdutoRepository
}

func NewService(produtoRepo repository.ProdutoRepository) CatalogService {
	return &Service{
		produtoRepo: produtoRepo,
	}
}

func (s *Service) ListProducts() ([]*domain.Produto, error) {
	produtos, err := s.produtoRepo.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar produtos")
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	return produtos, nil
}

// GetProduct busca um produto pelo ID. Retorna nil quando não existe.
func (s *Service) GetProduct(id string) (*domain.Produto, error) {
	produto, err := s.produtoRepo.GetByID(id)
	if err != nil {
		logrus.WithError(err).WithField("produto_id", id).Error("Erro ao buscar produto")
		return nil, errors.Wrap(ErrDatabaseOperation, err.Error())
	}
	return produto, nil
}

func (s *Service) CreateProduct(produto *domain.Produto) error {
	if err := validateProduct(produto); err != nil {
		return err
	}

	// Produtos criados sem ID recebem um identificador curto gerado aqui
	if produto.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return errors.Wrap(err, "erro ao gerar ID do produto")
		}
		produto.ID = id
	}

	if err := s.produtoRepo.Insert(produto); err != nil {
		logrus.WithError(err).WithField("produto_id", produto.ID).Error("Erro ao cadastrar produto")
		return errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	return nil
}

func (s *Service) UpdateProduct(produto *domain.Produto) error {
	if err := validateProduct(produto); err != nil {
		return err
	}

	updated, err := s.produtoRepo.Update(produto)
	if err != nil {
		logrus.WithError(err).WithField("produto_id", produto.ID).Error("Erro ao atualizar produto")
		return errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	if !updated {
		return ErrProdutoNaoEncontrado
	}

	return nil
}

func (s *Service) DeleteProduct(id string) error {
	deleted, err := s.produtoRepo.Delete(id)
	if err != nil {
		logrus.WithError(err).WithField("produto_id", id).Error("Erro ao excluir produto")
		return errors.Wrap(ErrDatabaseOperation, err.Error())
	}

	if !deleted {
		return ErrProdutoNaoEncontrado
	}

	return nil
}

func validateProduct(produto *domain.Produto) error {
	if produto.Nome == "" {
		return ErrNomeObrigatorio
	}
	if produto.Preco <= 0 {
		return ErrPrecoInvalido
	}
	return nil
}
