// Package relatorio contém o caso de uso do painel: agrega contadores,
// séries financeiras e indicadores de crescimento em uma única resposta.
package relatorio

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/relatorio"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

// Quantos períodos com lançamentos entram nos gráficos do painel.
const periodosGrafico = 6

// Janela do alerta de evento: algo começando nos próximos 2 dias ou em curso.
const janelaAlertaEvento = 48 * time.Hour

// DashboardUseCase monta o painel inicial do sistema.
//
// Fonte de dados: RelatorioRepository (consultas read-only) e a checagem de
// evento iminente no EventoRepository. Toda a aritmética fica no pacote
// domain/relatorio; aqui só há orquestração e montagem do DTO.
type DashboardUseCase struct {
	repo    repository.RelatorioRepository
	eventos repository.EventoRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(repo repository.RelatorioRepository, eventos repository.EventoRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, eventos: eventos}
}

// Painel agrega tudo que a tela inicial exibe.
//
// Consultas em paralelo:
//  1. Contadores de topo (membros, batizados, dizimistas, eventos)
//  2. Totais mensais de entradas e de saídas
//  3. Contagens de cadastro e de saída de membros por mês, e total de ativos
//  4. Aniversariantes do dia e evento iminente
func (uc *DashboardUseCase) Painel(ctx context.Context) (*dto.DashboardResponse, error) {
	agora := time.Now()

	type contadoresResult struct {
		c   repository.Contadores
		err error
	}
	type serieResult struct {
		serie []relatorio.TotalMensal
		err   error
	}
	type contagemResult struct {
		serie []relatorio.ContagemMensal
		err   error
	}
	type intResult struct {
		n   int
		err error
	}
	type nomesResult struct {
		nomes []string
		err   error
	}
	type boolResult struct {
		ok  bool
		err error
	}

	contadoresCh := make(chan contadoresResult, 1)
	entradasCh := make(chan serieResult, 1)
	saidasCh := make(chan serieResult, 1)
	cadastrosCh := make(chan contagemResult, 1)
	desligamentosCh := make(chan contagemResult, 1)
	ativosCh := make(chan intResult, 1)
	aniversariantesCh := make(chan nomesResult, 1)
	alertaCh := make(chan boolResult, 1)

	go func() {
		c, err := uc.repo.Contadores(ctx)
		contadoresCh <- contadoresResult{c, err}
	}()
	go func() {
		s, err := uc.repo.TotaisMensaisPorTipo(ctx, entity.TipoEntrada)
		entradasCh <- serieResult{s, err}
	}()
	go func() {
		s, err := uc.repo.TotaisMensaisPorTipo(ctx, entity.TipoSaida)
		saidasCh <- serieResult{s, err}
	}()
	go func() {
		s, err := uc.repo.ContagemCadastroPorMes(ctx)
		cadastrosCh <- contagemResult{s, err}
	}()
	go func() {
		s, err := uc.repo.ContagemSaidaPorMes(ctx)
		desligamentosCh <- contagemResult{s, err}
	}()
	go func() {
		n, err := uc.repo.TotalAtivos(ctx)
		ativosCh <- intResult{n, err}
	}()
	go func() {
		nomes, err := uc.repo.AniversariantesDoDia(ctx, agora)
		aniversariantesCh <- nomesResult{nomes, err}
	}()
	go func() {
		ok, err := uc.eventos.ExisteProximoOuEmCurso(ctx, agora, agora.Add(janelaAlertaEvento))
		alertaCh <- boolResult{ok, err}
	}()

	contadores := <-contadoresCh
	entradas := <-entradasCh
	saidas := <-saidasCh
	cadastros := <-cadastrosCh
	desligamentos := <-desligamentosCh
	ativos := <-ativosCh
	aniversariantes := <-aniversariantesCh
	alerta := <-alertaCh

	if contadores.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", contadores.err)
	}
	if entradas.err != nil {
		return nil, fmt.Errorf("dashboard: entradas mensais: %w", entradas.err)
	}
	if saidas.err != nil {
		return nil, fmt.Errorf("dashboard: saídas mensais: %w", saidas.err)
	}
	if cadastros.err != nil {
		return nil, fmt.Errorf("dashboard: cadastros por mês: %w", cadastros.err)
	}
	if desligamentos.err != nil {
		return nil, fmt.Errorf("dashboard: saídas de membros por mês: %w", desligamentos.err)
	}
	if ativos.err != nil {
		return nil, fmt.Errorf("dashboard: total de ativos: %w", ativos.err)
	}
	if aniversariantes.err != nil {
		return nil, fmt.Errorf("dashboard: aniversariantes: %w", aniversariantes.err)
	}
	if alerta.err != nil {
		return nil, fmt.Errorf("dashboard: alerta de evento: %w", alerta.err)
	}

	// Gráfico financeiro: os últimos períodos com lançamentos de qualquer
	// direção, alinhados pelo rótulo "MM-AAAA".
	periodos := periodosFinanceiros(entradas.serie, saidas.serie)
	labels := relatorio.Rotulos(periodos)
	serieEntradas := make([]string, len(periodos))
	serieSaidas := make([]string, len(periodos))
	for i, p := range periodos {
		e := relatorio.TotalDoMes(entradas.serie, p.Ano, p.Mes)
		s := relatorio.TotalDoMes(saidas.serie, p.Ano, p.Mes)
		serieEntradas[i] = relatorio.FormatarMoeda(e)
		serieSaidas[i] = relatorio.FormatarMoeda(s)
	}

	// Saldo do mês corrente: entradas menos saídas do período exato.
	entradaMes := relatorio.TotalDoMes(entradas.serie, agora.Year(), int(agora.Month()))
	saidaMes := relatorio.TotalDoMes(saidas.serie, agora.Year(), int(agora.Month()))
	saldoMes := valorOuZero(entradaMes).Sub(valorOuZero(saidaMes))

	indicadores := relatorio.IndicadoresPorAno(cadastros.serie, desligamentos.serie, ativos.n)
	variacao, tendencia := relatorio.Variacao(cadastros.serie)

	return &dto.DashboardResponse{
		TotalMembros:    contadores.c.Membros,
		TotalBatizados:  contadores.c.Batizados,
		TotalDizimistas: contadores.c.Dizimistas,
		TotalEventos:    contadores.c.Eventos,

		FinanceiroLabels:   labels,
		FinanceiroEntradas: serieEntradas,
		FinanceiroSaidas:   serieSaidas,
		SaldoMesFormatado:  relatorio.FormatarMoeda(&saldoMes),

		Indicadores: toIndicadoresDTO(indicadores),
		Variacao:    variacao,
		Tendencia:   tendencia,

		AniversariantesHoje: aniversariantes.nomes,
		AlertaEvento:        alerta.ok,
	}, nil
}

// periodosFinanceiros funde as duas séries (só ano/mês importam), deduplica e
// devolve os últimos períodos em ordem crescente.
func periodosFinanceiros(entradas, saidas []relatorio.TotalMensal) []relatorio.TotalMensal {
	vistos := make(map[string]bool)
	uniao := make([]relatorio.TotalMensal, 0, len(entradas)+len(saidas))
	for _, s := range [][]relatorio.TotalMensal{entradas, saidas} {
		for _, t := range s {
			chave := t.Rotulo()
			if vistos[chave] {
				continue
			}
			vistos[chave] = true
			uniao = append(uniao, relatorio.TotalMensal{Ano: t.Ano, Mes: t.Mes})
		}
	}
	return relatorio.UltimosPeriodos(uniao, periodosGrafico)
}

func valorOuZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}

func toIndicadoresDTO(in []relatorio.IndicadorAno) []dto.IndicadorAnoDTO {
	out := make([]dto.IndicadorAnoDTO, len(in))
	for i, ind := range in {
		out[i] = dto.IndicadorAnoDTO{
			Ano:      ind.Ano,
			Entradas: ind.Entradas,
			Saidas:   ind.Saidas,
			Saldo:    ind.Saldo,
			Taxa:     ind.Taxa,
			TotalAno: ind.TotalAno,
		}
	}
	return out
}
