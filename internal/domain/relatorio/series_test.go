package relatorio_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soarespaullo/SiGI/internal/domain/relatorio"
)

func total(ano, mes int, v string) relatorio.TotalMensal {
	return relatorio.TotalMensal{Ano: ano, Mes: mes, Total: decimal.RequireFromString(v)}
}

// TestUltimosPeriodos_OrdenaELimita: a série resultante é cronológica
// crescente e contém somente os últimos n períodos com lançamentos.
func TestUltimosPeriodos_OrdenaELimita(t *testing.T) {
	serie := []relatorio.TotalMensal{
		total(2026, 3, "30"),
		total(2025, 11, "10"),
		total(2026, 1, "20"),
		total(2025, 8, "5"),
		total(2025, 12, "15"),
		total(2025, 7, "1"),
		total(2025, 6, "2"),
	}

	ult := relatorio.UltimosPeriodos(serie, 6)
	require.Len(t, ult, 6)
	assert.Equal(t, []string{"07-2025", "08-2025", "11-2025", "12-2025", "01-2026", "03-2026"},
		relatorio.Rotulos(ult), "meses vazios são omitidos, não zerados")
}

// TestUltimosPeriodos_SerieCurta: com menos períodos que o limite, devolve todos.
func TestUltimosPeriodos_SerieCurta(t *testing.T) {
	serie := []relatorio.TotalMensal{total(2026, 2, "200"), total(2026, 1, "100")}
	ult := relatorio.UltimosPeriodos(serie, 6)
	require.Len(t, ult, 2)
	assert.Equal(t, "01-2026", ult[0].Rotulo())
}

// TestRollupMensal_CenarioDeReferencia reproduz o cenário canônico:
// lançamentos [(jan,100,Entrada),(jan,50,Saída),(fev,200,Entrada)] rendem
// série de entradas [100,200], série de saídas [50] e total corrente de
// fevereiro "R$ 200,00".
func TestRollupMensal_CenarioDeReferencia(t *testing.T) {
	entradas := []relatorio.TotalMensal{total(2026, 1, "100"), total(2026, 2, "200")}
	saidas := []relatorio.TotalMensal{total(2026, 1, "50")}

	ue := relatorio.UltimosPeriodos(entradas, 6)
	us := relatorio.UltimosPeriodos(saidas, 6)

	ve := relatorio.Valores(ue)
	require.Len(t, ve, 2)
	assert.True(t, ve[0].Equal(decimal.NewFromInt(100)))
	assert.True(t, ve[1].Equal(decimal.NewFromInt(200)))

	vs := relatorio.Valores(us)
	require.Len(t, vs, 1)
	assert.True(t, vs[0].Equal(decimal.NewFromInt(50)))

	mesAtual := relatorio.TotalDoMes(entradas, 2026, 2)
	assert.Equal(t, "R$ 200,00", relatorio.FormatarMoeda(mesAtual))
}

// TestTotalDoMes_Ausente: mês sem lançamentos devolve nil, que formata como zero.
func TestTotalDoMes_Ausente(t *testing.T) {
	var serie []relatorio.TotalMensal
	v := relatorio.TotalDoMes(serie, 2026, 5)
	assert.Nil(t, v)
	assert.Equal(t, "R$ 0,00", relatorio.FormatarMoeda(v))
}

func TestSoma(t *testing.T) {
	serie := []relatorio.TotalMensal{total(2026, 1, "100.50"), total(2026, 2, "0.25")}
	assert.True(t, relatorio.Soma(serie).Equal(decimal.RequireFromString("100.75")))
	assert.True(t, relatorio.Soma(nil).IsZero())
}
