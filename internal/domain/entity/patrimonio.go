package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patrimonio representa um bem do inventário patrimonial da igreja.
type Patrimonio struct {
	ID          string
	Nome        string
	Descricao   string
	Categoria   string // default "Não categorizado"
	Numero      string // número de inventário
	Valor       decimal.Decimal
	DataEntrada *time.Time
	Situacao    string // default "Ativo"
	CriadoEm    time.Time
}

// Defaults de Patrimonio.
const (
	PatrimonioSemCategoria = "Não categorizado"
	PatrimonioAtivo        = "Ativo"
)
