// Package relatorio concentra a aritmética dos relatórios e do dashboard:
// formatação monetária, séries mensais, indicadores de crescimento e tendência.
//
// Todas as funções são puras: recebem agregados já consultados e nunca tocam
// o banco. Agregados ausentes produzem séries vazias e zeros, nunca erro.
package relatorio

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatarMoeda formata um valor como moeda brasileira: "R$ 1.234,56".
// Valor ausente rende "R$ 0,00".
func FormatarMoeda(v *decimal.Decimal) string {
	if v == nil {
		return "R$ 0,00"
	}
	s := v.StringFixed(2) // ex.: "-1234.50"

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parte := strings.SplitN(s, ".", 2)
	inteiro, centavos := parte[0], parte[1]

	// Agrupa milhares com ponto.
	var b strings.Builder
	for i, d := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sinal := ""
	if neg {
		sinal = "-"
	}
	return "R$ " + sinal + b.String() + "," + centavos
}
