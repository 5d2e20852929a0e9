package selling

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/pdv-bebidas-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pdv-bebidas-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// fakeTxRunner executa o callback diretamente, sem banco
type fakeTxRunner struct {
	err error
}

func (f *fakeTxRunner) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

func buildVenda() *domain.Venda {
	return &domain.Venda{
		ID:             "VND001",
		Data:           time.Date(2024, 1, 15, 14, 30, 5, 0, time.Local),
		Cliente:        "Maria",
		FormaPagamento: domain.Pix,
		Total:          25.50,
		Itens: []domain.ItemVenda{
			{Produto: domain.Produto{ID: "P1", Nome: "Refrigerante Lata", Preco: 10.00}, Quantidade: 2},
			{Produto: domain.Produto{ID: "P2", Nome: "Suco Natural 300ml", Preco: 5.50}, Quantidade: 1},
		},
	}
}

func TestService_RecordSale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockVendaRepo := mocks.NewMockVendaRepository(ctrl)
	mockTraceRepo := mocks.NewMockTraceRepository(ctrl)

	service := &Service{
		db:        &fakeTxRunner{},
		vendaRepo: mockVendaRepo,
		traceRepo: mockTraceRepo,
	}

	t.Run("registra cabeçalho, itens e trace na mesma transação", func(t *testing.T) {
		venda := buildVenda()

		mockVendaRepo.EXPECT().
			InsertVenda(gomock.Nil(), venda).
			Return(nil)
		mockVendaRepo.EXPECT().
			InsertItem(gomock.Nil(), "VND001", venda.Itens[0]).
			Return(nil)
		mockVendaRepo.EXPECT().
			InsertItem(gomock.Nil(), "VND001", venda.Itens[1]).
			Return(nil)
		mockTraceRepo.EXPECT().
			AppendEntry(
				gomock.Nil(),
				"2024-01-15",
				"[14:30:05] | Cliente: Maria | Bebidas: Refrigerante Lata (2), Suco Natural 300ml (1) | Pagamento: Pix | Total: R$ 25,50\n",
			).
			Return(nil)

		err := service.RecordSale(context.Background(), venda)
		assert.NoError(t, err)
	})

	t.Run("gera ID quando a venda chega sem identificador", func(t *testing.T) {
		venda := buildVenda()
		venda.ID = ""

		mockVendaRepo.EXPECT().
			InsertVenda(gomock.Nil(), gomock.Any()).
			Return(nil)
		mockVendaRepo.EXPECT().
			InsertItem(gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)
		mockTraceRepo.EXPECT().
			AppendEntry(gomock.Nil(), "2024-01-15", gomock.Any()).
			Return(nil)

		err := service.RecordSale(context.Background(), venda)
		assert.NoError(t, err)
		assert.Len(t, venda.ID, 6)
	})

	t.Run("falha em qualquer etapa vira erro genérico de registro", func(t *testing.T) {
		venda := buildVenda()

		mockVendaRepo.EXPECT().
			InsertVenda(gomock.Nil(), venda).
			Return(errors.New("constraint violation"))

		err := service.RecordSale(context.Background(), venda)
		assert.ErrorIs(t, err, ErrRegistroVenda)
	})

	t.Run("falha no trace também desfaz a venda", func(t *testing.T) {
		venda := buildVenda()

		mockVendaRepo.EXPECT().
			InsertVenda(gomock.Nil(), venda).
			Return(nil)
		mockVendaRepo.EXPECT().
			InsertItem(gomock.Nil(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)
		mockTraceRepo.EXPECT().
			AppendEntry(gomock.Nil(), "2024-01-15", gomock.Any()).
			Return(errors.New("connection lost"))

		err := service.RecordSale(context.Background(), venda)
		assert.ErrorIs(t, err, ErrRegistroVenda)
	})
}

func TestService_RecordSale_Validation(t *testing.T) {
	service := &Service{db: &fakeTxRunner{}}

	tests := []struct {
		name    string
		mutate  func(venda *domain.Venda)
		wantErr error
	}{
		{
			name:    "venda sem itens é rejeitada",
			mutate:  func(venda *domain.Venda) { venda.Itens = nil },
			wantErr: ErrVendaSemItens,
		},
		{
			name:    "forma de pagamento fora da enumeração é rejeitada",
			mutate:  func(venda *domain.Venda) { venda.FormaPagamento = "cheque" },
			wantErr: ErrFormaPagamentoInvalida,
		},
		{
			name:    "quantidade zero é rejeitada",
			mutate:  func(venda *domain.Venda) { venda.Itens[0].Quantidade = 0 },
			wantErr: ErrQuantidadeInvalida,
		},
		{
			name:    "quantidade negativa é rejeitada",
			mutate:  func(venda *domain.Venda) { venda.Itens[1].Quantidade = -3 },
			wantErr: ErrQuantidadeInvalida,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			venda := buildVenda()
			tt.mutate(venda)

			err := service.RecordSale(context.Background(), venda)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTraceEntry(t *testing.T) {
	tests := []struct {
		name  string
		venda *domain.Venda
		want  string
	}{
		{
			name: "venda com dois itens e pagamento pix",
			venda: &domain.Venda{
				Data:           time.Date(2024, 1, 15, 14, 30, 5, 0, time.Local),
				Cliente:        "Maria",
				FormaPagamento: domain.Pix,
				Total:          25.50,
				Itens: []domain.ItemVenda{
					{Produto: domain.Produto{Nome: "Refrigerante Lata"}, Quantidade: 2},
					{Produto: domain.Produto{Nome: "Suco Natural 300ml"}, Quantidade: 1},
				},
			},
			want: "[14:30:05] | Cliente: Maria | Bebidas: Refrigerante Lata (2), Suco Natural 300ml (1) | Pagamento: Pix | Total: R$ 25,50\n",
		},
		{
			name: "cliente vazio e pagamento dinheiro",
			venda: &domain.Venda{
				Data:           time.Date(2024, 1, 15, 8, 0, 0, 0, time.Local),
				Cliente:        "",
				FormaPagamento: domain.Dinheiro,
				Total:          3,
				Itens: []domain.ItemVenda{
					{Produto: domain.Produto{Nome: "Água Mineral 500ml"}, Quantidade: 1},
				},
			},
			want: "[08:00:00] | Cliente:  | Bebidas: Água Mineral 500ml (1) | Pagamento: Dinheiro | Total: R$ 3,00\n",
		},
		{
			name: "total com milhar mantém vírgula apenas no decimal",
			venda: &domain.Venda{
				Data:           time.Date(2024, 1, 15, 23, 59, 59, 0, time.Local),
				Cliente:        "João",
				FormaPagamento: domain.Credito,
				Total:          1234.5,
				Itens: []domain.ItemVenda{
					{Produto: domain.Produto{Nome: "Cerveja Long Neck"}, Quantidade: 120},
				},
			},
			want: "[23:59:59] | Cliente: João | Bebidas: Cerveja Long Neck (120) | Pagamento: Credito | Total: R$ 1234,50\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TraceEntry(tt.venda))
		})
	}
}
