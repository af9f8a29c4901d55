package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/soarespaullo/SiGI/internal/application/usecase"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

// RelatorioMembros gera o relatório estatístico de membros: total geral
// seguido das distribuições solicitadas (sexo, faixa etária, função, etc).
func (g *Gerador) RelatorioMembros(_ context.Context, total int, secoes []usecase.SecaoDistribuicao) ([]byte, error) {
	doc := g.novoDocumento("Relatório Estatístico de Membros")
	g.cabecalho(doc, "Relatório Estatístico de Membros", time.Now())

	doc.AddRows(row.New(10).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de membros no filtro: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 3,
		}),
	)))

	for _, s := range secoes {
		doc.AddRows(secaoRow(s.Titulo))
		doc.AddRows(tabelaDistribuicao(s.Itens, total)...)
	}

	return gerar(doc)
}

func tabelaDistribuicao(itens []repository.Distribuicao, total int) []core.Row {
	rows := []core.Row{
		row.New(7).Add(
			col.New(6).Add(text.New("Categoria", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(3).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New("%", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1})),
		),
		line.NewRow(1, props.Line{Color: corCinza, Thickness: 0.3}),
	}
	for _, it := range itens {
		pct := "—"
		if total > 0 {
			pct = fmt.Sprintf("%.1f%%", float64(it.Total)/float64(total)*100)
		}
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(it.Rotulo, props.Text{Size: 9, Top: 1})),
			col.New(3).Add(text.New(fmt.Sprintf("%d", it.Total), props.Text{Size: 9, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(pct, props.Text{Size: 9, Align: align.Right, Top: 1})),
		))
	}
	return rows
}

// Aniversariantes gera a lista de aniversariantes de um mês.
func (g *Gerador) Aniversariantes(_ context.Context, mes time.Month, membros []*entity.Membro) ([]byte, error) {
	titulo := "Aniversariantes de " + mesesExtenso[int(mes)-1]
	doc := g.novoDocumento(titulo)
	g.cabecalho(doc, titulo, time.Now())

	doc.AddRows(row.New(7).Add(
		col.New(1).Add(text.New("Dia", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(6).Add(text.New("Nome", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(3).Add(text.New("Telefone", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(2).Add(text.New("Função", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
	))
	doc.AddRows(line.NewRow(1, props.Line{Color: corCinza, Thickness: 0.3}))

	for _, m := range membros {
		dia := "—"
		if m.DataNascimento != nil {
			dia = fmt.Sprintf("%02d", m.DataNascimento.Day())
		}
		doc.AddRows(row.New(6).Add(
			col.New(1).Add(text.New(dia, props.Text{Size: 9, Top: 1})),
			col.New(6).Add(text.New(m.Nome, props.Text{Size: 9, Top: 1})),
			col.New(3).Add(text.New(ouTraco(m.Telefone), props.Text{Size: 9, Top: 1})),
			col.New(2).Add(text.New(ouTraco(m.Funcao), props.Text{Size: 9, Top: 1})),
		))
	}

	if len(membros) == 0 {
		doc.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Nenhum aniversariante no período.", props.Text{
				Size: 9, Top: 2, Color: corCinza,
			}),
		)))
	}

	return gerar(doc)
}
