package repository

import (
	"context"
	"time"

	"github.com/soarespaullo/SiGI/internal/domain/relatorio"
)

// Contadores agrupa os totais de topo do painel.
type Contadores struct {
	Membros    int
	Batizados  int
	Dizimistas int
	Eventos    int
}

// RelatorioRepository expõe as agregações consumidas pelo painel e
// pelos relatórios estatísticos. As consultas devolvem apenas os
// períodos com lançamentos; períodos ausentes valem zero para quem lê.
type RelatorioRepository interface {
	Contadores(ctx context.Context) (Contadores, error)

	// TotaisMensaisPorTipo agrupa lançamentos financeiros do tipo por
	// ano e mês, em ordem cronológica.
	TotaisMensaisPorTipo(ctx context.Context, tipo string) ([]relatorio.TotalMensal, error)

	// ContagemCadastroPorMes e ContagemSaidaPorMes agrupam membros
	// pelo mês de cadastro e de saída, respectivamente.
	ContagemCadastroPorMes(ctx context.Context) ([]relatorio.ContagemMensal, error)
	ContagemSaidaPorMes(ctx context.Context) ([]relatorio.ContagemMensal, error)

	// TotalAtivos conta membros sem data de saída.
	TotalAtivos(ctx context.Context) (int, error)

	// AniversariantesDoDia lista nomes de membros que fazem
	// aniversário na data dada.
	AniversariantesDoDia(ctx context.Context, dia time.Time) ([]string, error)
}
