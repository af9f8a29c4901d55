package relatorio

import (
	"math"
	"sort"
)

// ContagemMensal é a contagem de membros de um mês (cadastros ou saídas).
type ContagemMensal struct {
	Ano        int
	Mes        int // 1–12
	Quantidade int
}

// Tendências possíveis do indicador de crescimento.
const (
	TendenciaAlta    = "alta"
	TendenciaBaixa   = "baixa"
	TendenciaEstavel = "estavel"
)

// IndicadorAno resume o movimento de membros de um ano.
type IndicadorAno struct {
	Ano      int
	Entradas int      // cadastrados no ano
	Saidas   int      // saídas no ano
	Saldo    int      // Entradas - Saidas
	Taxa     *float64 // saldo como % do total ativo atual, 1 casa; nil se não há ativos
	TotalAno int      // membros ao fim do ano: cadastrados até o ano, sem saída até o ano
}

// OrdenarContagens ordena uma série de contagens cronologicamente, in place.
func OrdenarContagens(serie []ContagemMensal) {
	sort.Slice(serie, func(i, j int) bool {
		if serie[i].Ano != serie[j].Ano {
			return serie[i].Ano < serie[j].Ano
		}
		return serie[i].Mes < serie[j].Mes
	})
}

// SeriesAnuais converte contagens mensais em vetores de 12 posições por ano
// (índice 0 = janeiro), para gráficos alinhados ao calendário.
func SeriesAnuais(serie []ContagemMensal) map[int][12]int {
	anos := make(map[int][12]int)
	for _, c := range serie {
		if c.Mes < 1 || c.Mes > 12 {
			continue
		}
		v := anos[c.Ano]
		v[c.Mes-1] += c.Quantidade
		anos[c.Ano] = v
	}
	return anos
}

// IndicadoresPorAno computa, para cada ano presente na distribuição de
// cadastros, as entradas, saídas, saldo, taxa de movimento sobre o total de
// ativos atual e o total reconstruído de membros ao fim daquele ano.
//
// A taxa é nil quando totalAtivos é zero, nunca uma divisão por zero.
func IndicadoresPorAno(cadastros, saidas []ContagemMensal, totalAtivos int) []IndicadorAno {
	porAnoCad := somaPorAno(cadastros)
	porAnoSai := somaPorAno(saidas)

	anos := make([]int, 0, len(porAnoCad))
	for ano := range porAnoCad {
		anos = append(anos, ano)
	}
	sort.Ints(anos)

	out := make([]IndicadorAno, 0, len(anos))
	for _, ano := range anos {
		entradas := porAnoCad[ano]
		sai := porAnoSai[ano]
		saldo := entradas - sai

		var taxa *float64
		if totalAtivos > 0 {
			t := math.Round(float64(saldo)/float64(totalAtivos)*1000) / 10
			taxa = &t
		}

		// Cadastrados até o fim do ano, menos quem saiu até o fim do ano.
		total := 0
		for a, q := range porAnoCad {
			if a <= ano {
				total += q
			}
		}
		for a, q := range porAnoSai {
			if a <= ano {
				total -= q
			}
		}

		out = append(out, IndicadorAno{
			Ano:      ano,
			Entradas: entradas,
			Saidas:   sai,
			Saldo:    saldo,
			Taxa:     taxa,
			TotalAno: total,
		})
	}
	return out
}

// Variacao devolve a variação percentual do último mês da série de novos
// membros frente ao anterior (1 casa decimal) e a tendência. Com menos de dois
// períodos, ou com o período anterior zerado, a variação é nil e a tendência
// "estavel".
func Variacao(serie []ContagemMensal) (*float64, string) {
	if len(serie) < 2 {
		return nil, TendenciaEstavel
	}
	ordenada := make([]ContagemMensal, len(serie))
	copy(ordenada, serie)
	OrdenarContagens(ordenada)

	anterior := ordenada[len(ordenada)-2].Quantidade
	ultimo := ordenada[len(ordenada)-1].Quantidade
	if anterior == 0 {
		return nil, TendenciaEstavel
	}

	v := math.Round(float64(ultimo-anterior)/float64(anterior)*1000) / 10
	tendencia := TendenciaBaixa
	if v > 0 {
		tendencia = TendenciaAlta
	}
	return &v, tendencia
}

func somaPorAno(serie []ContagemMensal) map[int]int {
	m := make(map[int]int)
	for _, c := range serie {
		m[c.Ano] += c.Quantidade
	}
	return m
}
