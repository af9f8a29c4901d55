package relatorio_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apprelatorio "github.com/soarespaullo/SiGI/internal/application/relatorio"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/relatorio"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeRelatorioRepo struct {
	contadores      repository.Contadores
	entradas        []relatorio.TotalMensal
	saidas          []relatorio.TotalMensal
	cadastros       []relatorio.ContagemMensal
	desligamentos   []relatorio.ContagemMensal
	ativos          int
	aniversariantes []string
	falha           error
}

func (r *fakeRelatorioRepo) Contadores(_ context.Context) (repository.Contadores, error) {
	return r.contadores, r.falha
}

func (r *fakeRelatorioRepo) TotaisMensaisPorTipo(_ context.Context, tipo string) ([]relatorio.TotalMensal, error) {
	if tipo == entity.TipoEntrada {
		return r.entradas, nil
	}
	return r.saidas, nil
}

func (r *fakeRelatorioRepo) ContagemCadastroPorMes(_ context.Context) ([]relatorio.ContagemMensal, error) {
	return r.cadastros, nil
}

func (r *fakeRelatorioRepo) ContagemSaidaPorMes(_ context.Context) ([]relatorio.ContagemMensal, error) {
	return r.desligamentos, nil
}

func (r *fakeRelatorioRepo) TotalAtivos(_ context.Context) (int, error) {
	return r.ativos, nil
}

func (r *fakeRelatorioRepo) AniversariantesDoDia(_ context.Context, _ time.Time) ([]string, error) {
	return r.aniversariantes, nil
}

// fakeEventoAlerta só responde à checagem de evento iminente; o painel não
// usa as demais operações do repositório de eventos.
type fakeEventoAlerta struct {
	repository.EventoRepository
	alerta bool
}

func (r *fakeEventoAlerta) ExisteProximoOuEmCurso(_ context.Context, _, _ time.Time) (bool, error) {
	return r.alerta, nil
}

func mensal(ano, mes int, valor string) relatorio.TotalMensal {
	return relatorio.TotalMensal{Ano: ano, Mes: mes, Total: decimal.RequireFromString(valor)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Painel
// ──────────────────────────────────────────────────────────────────────────────

func TestPainel(t *testing.T) {
	agora := time.Now()
	repo := &fakeRelatorioRepo{
		contadores: repository.Contadores{Membros: 120, Batizados: 80, Dizimistas: 45, Eventos: 7},
		entradas: []relatorio.TotalMensal{
			mensal(agora.Year(), int(agora.Month()), "1500.00"),
		},
		saidas: []relatorio.TotalMensal{
			mensal(agora.Year(), int(agora.Month()), "400.50"),
		},
		cadastros:       []relatorio.ContagemMensal{{Ano: agora.Year(), Mes: 1, Quantidade: 10}},
		ativos:          118,
		aniversariantes: []string{"Ana", "Bruno"},
	}
	uc := apprelatorio.NewDashboardUseCase(repo, &fakeEventoAlerta{alerta: true})

	out, err := uc.Painel(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 120, out.TotalMembros)
	assert.Equal(t, 80, out.TotalBatizados)
	assert.Equal(t, 45, out.TotalDizimistas)
	assert.Equal(t, 7, out.TotalEventos)
	assert.Equal(t, "R$ 1.099,50", out.SaldoMesFormatado)
	assert.Equal(t, []string{"Ana", "Bruno"}, out.AniversariantesHoje)
	assert.True(t, out.AlertaEvento)
	require.Len(t, out.Indicadores, 1)
	assert.Equal(t, 10, out.Indicadores[0].Entradas)
}

func TestPainel_SeriesAlinhadasPorPeriodo(t *testing.T) {
	// Entradas e saídas são séries esparsas: meses sem lançamento de uma
	// direção devem aparecer como zero, não sumir do gráfico.
	repo := &fakeRelatorioRepo{
		entradas: []relatorio.TotalMensal{
			mensal(2026, 1, "100.00"),
			mensal(2026, 3, "300.00"),
		},
		saidas: []relatorio.TotalMensal{
			mensal(2026, 2, "50.00"),
			mensal(2026, 3, "120.00"),
		},
	}
	uc := apprelatorio.NewDashboardUseCase(repo, &fakeEventoAlerta{})

	out, err := uc.Painel(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"01-2026", "02-2026", "03-2026"}, out.FinanceiroLabels)
	assert.Equal(t, []string{"R$ 100,00", "R$ 0,00", "R$ 300,00"}, out.FinanceiroEntradas)
	assert.Equal(t, []string{"R$ 0,00", "R$ 50,00", "R$ 120,00"}, out.FinanceiroSaidas)
}

func TestPainel_LimitaPeriodosDoGrafico(t *testing.T) {
	var entradas []relatorio.TotalMensal
	for mes := 1; mes <= 10; mes++ {
		entradas = append(entradas, mensal(2026, mes, "10.00"))
	}
	uc := apprelatorio.NewDashboardUseCase(&fakeRelatorioRepo{entradas: entradas}, &fakeEventoAlerta{})

	out, err := uc.Painel(context.Background())
	require.NoError(t, err)

	require.Len(t, out.FinanceiroLabels, 6, "o gráfico mostra só os últimos períodos")
	assert.Equal(t, "05-2026", out.FinanceiroLabels[0])
	assert.Equal(t, "10-2026", out.FinanceiroLabels[5])
}

func TestPainel_ErroDeConsulta(t *testing.T) {
	repo := &fakeRelatorioRepo{falha: errors.New("conexão recusada")}
	uc := apprelatorio.NewDashboardUseCase(repo, &fakeEventoAlerta{})

	_, err := uc.Painel(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contadores")
}
