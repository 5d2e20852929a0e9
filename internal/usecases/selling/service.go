package selling

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/pdv-bebidas-api/infrastructure/repository"
	"github.com/vfg2006/pdv-bebidas-api/internal/domain"
	"github.com/vfg2006/pdv-bebidas-api/pkg/log"
	"github.com/vfg2006/pdv-bebidas-api/pkg/utils"
)

// TxRunner executa uma função dentro de uma transação do banco.
// *postgres.Connection implementa essa interface.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error
}

// SellingService registra vendas de forma atômica: cabeçalho, itens e a
// linha do trace do dia entram na mesma transação
type SellingService interface {
	RecordSale(ctx context.Context, venda *domain.Venda) error
}

type Service struct {
	db        TxRunner
	vendaRepo repository.VendaRepository
	traceRepo repository.TraceRepository
}

func NewService(
	db TxRunner,
	vendaRepo repository.VendaRepository,
	traceRepo repository.TraceRepository,
) SellingService {
	return &Service{
		db:        db,
		vendaRepo: vendaRepo,
		traceRepo: traceRepo,
	}
}

func (s *Service) RecordSale(ctx context.Context, venda *domain.Venda) error {
	logger := log.ForContext(ctx)

	if err := validateSale(venda); err != nil {
		logger.WithError(err).Warn("Venda rejeitada na validação")
		return err
	}

	if venda.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			logger.WithError(err).Error("Erro ao gerar ID da venda")
			return ErrRegistroVenda
		}
		venda.ID = id
	}

	if venda.Data.IsZero() {
		venda.Data = time.Now()
	}

	venda.Total = utils.RoundWithTwoDecimalPlace(venda.Total)

	day := venda.Data.Format(time.DateOnly)
	entry := TraceEntry(venda)

	logger.WithFields(log.Fields{
		"venda_id":        venda.ID,
		"forma_pagamento": string(venda.FormaPagamento),
		"itens":           len(venda.Itens),
	}).Info("Registrando venda")
	logger.Debug(utils.PrettyJson(venda))

	err := s.db.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.vendaRepo.InsertVenda(tx, venda); err != nil {
			return err
		}

		for _, item := range venda.Itens {
			if err := s.vendaRepo.InsertItem(tx, venda.ID, item); err != nil {
				return err
			}
		}

		return s.traceRepo.AppendEntry(tx, day, entry)
	})
	if err != nil {
		// O chamador recebe apenas a falha genérica; a causa fica no log
		logrus.WithError(err).WithField("venda_id", venda.ID).Error("Erro ao registrar venda")
		return ErrRegistroVenda
	}

	return nil
}

// TraceEntry monta a linha do trace no formato usado desde a primeira versão
// do caixa: [HH:MM:SS] | Cliente: ... | Bebidas: ... | Pagamento: ... | Total: R$ ...
func TraceEntry(venda *domain.Venda) string {
	hora := venda.Data.Format("15:04:05")

	itens := make([]string, 0, len(venda.Itens))
	for _, item := range venda.Itens {
		itens = append(itens, fmt.Sprintf("%s (%d)", item.Produto.Nome, item.Quantidade))
	}

	return fmt.Sprintf(
		"[%s] | Cliente: %s | Bebidas: %s | Pagamento: %s | Total: R$ %s\n",
		hora,
		venda.Cliente,
		strings.Join(itens, ", "),
		capitalize(string(venda.FormaPagamento)),
		utils.FormatBRL(venda.Total),
	)
}

func validateSale(venda *domain.Venda) error {
	if len(venda.Itens) == 0 {
		return ErrVendaSemItens
	}

	if !venda.FormaPagamento.Valid() {
		return ErrFormaPagamentoInvalida
	}

	for _, item := range venda.Itens {
		if item.Quantidade < 1 {
			return ErrQuantidadeInvalida
		}
	}

	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
