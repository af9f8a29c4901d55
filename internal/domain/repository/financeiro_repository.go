package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

// FiltroFinanceiro filtros de relatório e exportação CSV.
type FiltroFinanceiro struct {
	Inicio    *time.Time
	Fim       *time.Time
	Tipo      string
	Categoria string // substring, case-insensitive
}

// FinanceiroRepository define a persistência do livro caixa.
type FinanceiroRepository interface {
	Create(ctx context.Context, f *entity.Financeiro) error
	GetByID(ctx context.Context, id string) (*entity.Financeiro, error)
	Update(ctx context.Context, f *entity.Financeiro) error
	Delete(ctx context.Context, id string) error

	// ListByTipo lista lançamentos de uma direção, mais recentes primeiro.
	ListByTipo(ctx context.Context, tipo string) ([]*entity.Financeiro, error)
	// ListFiltered ordena por data crescente (relatórios e CSV).
	ListFiltered(ctx context.Context, f FiltroFinanceiro) ([]*entity.Financeiro, error)

	// TotalPorTipo soma todos os lançamentos de uma direção (COALESCE para zero).
	TotalPorTipo(ctx context.Context, tipo string) (decimal.Decimal, error)
	// PorCategoria agrega valores por categoria dentro do filtro (gráfico de pizza).
	PorCategoria(ctx context.Context, f FiltroFinanceiro) (map[string]decimal.Decimal, error)
}
