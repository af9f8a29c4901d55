package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soarespaullo/SiGI/internal/domain"
)

// Direções de lançamento financeiro. Qualquer outro valor é rejeitado na construção.
const (
	TipoEntrada     = "Entrada"
	TipoSaida       = "Saída"
	TipoComprovante = "Comprovante" // upload de comprovante avulso, valor zero
)

// Financeiro representa um lançamento do livro caixa.
type Financeiro struct {
	ID             string
	Data           time.Time
	Valor          decimal.Decimal
	Tipo           string
	Categoria      string
	Conta          string
	Descricao      string
	CPFMembro      string
	CNPJFornecedor string
	Conciliado     bool
	Comprovante    string
	CriadoEm       time.Time
}

// NovoFinanceiro constrói um lançamento validando a direção.
func NovoFinanceiro(tipo, categoria string, valor decimal.Decimal, data time.Time) (*Financeiro, error) {
	if tipo != TipoEntrada && tipo != TipoSaida {
		return nil, domain.ErrTipoFinanceiroInvalido
	}
	return &Financeiro{
		Data:      data,
		Valor:     valor,
		Tipo:      tipo,
		Categoria: categoria,
		Conta:     "Caixa",
		CriadoEm:  time.Now(),
	}, nil
}
