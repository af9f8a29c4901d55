package relatorio

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// TotalMensal é o total de um mês para uma direção (linha do group-by por ano/mês).
// Meses sem lançamentos simplesmente não aparecem.
type TotalMensal struct {
	Ano   int
	Mes   int // 1–12
	Total decimal.Decimal
}

// Rotulo devolve a etiqueta do período no formato "MM-AAAA".
func (t TotalMensal) Rotulo() string {
	return fmt.Sprintf("%02d-%04d", t.Mes, t.Ano)
}

// UltimosPeriodos ordena a série cronologicamente e devolve os últimos n
// períodos que tiveram lançamentos, em ordem crescente.
func UltimosPeriodos(serie []TotalMensal, n int) []TotalMensal {
	out := make([]TotalMensal, len(serie))
	copy(out, serie)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Ano != out[j].Ano {
			return out[i].Ano < out[j].Ano
		}
		return out[i].Mes < out[j].Mes
	})
	if len(out) > n {
		out = out[len(out)-n:]
	}
	return out
}

// Valores extrai apenas os totais de uma série, na ordem dada.
func Valores(serie []TotalMensal) []decimal.Decimal {
	vals := make([]decimal.Decimal, len(serie))
	for i, t := range serie {
		vals[i] = t.Total
	}
	return vals
}

// Rotulos extrai as etiquetas "MM-AAAA" de uma série, na ordem dada.
func Rotulos(serie []TotalMensal) []string {
	ls := make([]string, len(serie))
	for i, t := range serie {
		ls[i] = t.Rotulo()
	}
	return ls
}

// TotalDoMes devolve o total do período exato (ano e mês), ou nil se ausente.
func TotalDoMes(serie []TotalMensal, ano, mes int) *decimal.Decimal {
	for _, t := range serie {
		if t.Ano == ano && t.Mes == mes {
			v := t.Total
			return &v
		}
	}
	return nil
}

// Soma acumula os totais de uma série.
func Soma(serie []TotalMensal) decimal.Decimal {
	s := decimal.Zero
	for _, t := range serie {
		s = s.Add(t.Total)
	}
	return s
}
