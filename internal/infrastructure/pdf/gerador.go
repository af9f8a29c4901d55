// Package pdf gera os documentos impressos do sistema com Maroto v2:
// ficha cadastral de membro, cartas emitidas, relatório estatístico de
// membros e a lista de aniversariantes do mês.
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	corPrimaria = &props.Color{Red: 13, Green: 71, Blue: 161}
	corCinza    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Gerador produz documentos PDF em A4 com cabeçalho institucional.
type Gerador struct {
	nomeIgreja string
}

// NewGerador constrói o gerador com o nome da igreja no cabeçalho.
func NewGerador(nomeIgreja string) *Gerador {
	return &Gerador{nomeIgreja: nomeIgreja}
}

func (g *Gerador) novoDocumento(titulo string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(titulo, true).
		WithAuthor(g.nomeIgreja, true).
		Build()
	return maroto.New(cfg)
}

// cabecalho: nome da igreja + título do documento + data de emissão.
func (g *Gerador) cabecalho(m core.Maroto, titulo string, emissao time.Time) {
	m.AddRows(row.New(16).Add(
		col.New(7).Add(
			text.New(g.nomeIgreja, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: corPrimaria, Top: 1,
			}),
			text.New(titulo, props.Text{Size: 10, Top: 9, Color: corCinza}),
		),
		col.New(5).Add(
			text.New("Emitido em: "+emissao.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: corCinza,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: corPrimaria, Thickness: 0.5}))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// campoRow: rótulo em negrito + valor, em uma linha de ficha.
func campoRow(rotulo, valor string) core.Row {
	return row.New(6).Add(
		col.New(4).Add(text.New(rotulo, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1,
		})),
		col.New(8).Add(text.New(ouTraco(valor), props.Text{Size: 9, Top: 1})),
	)
}

// secaoRow: título de seção da ficha.
func secaoRow(titulo string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: corPrimaria, Top: 3,
		}),
	))
}

func ouTraco(s string) string {
	if s != "" {
		return s
	}
	return "—"
}

func dataOuTraco(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Format("02/01/2006")
}

func simNao(b *bool) string {
	switch {
	case b == nil:
		return "—"
	case *b:
		return "Sim"
	default:
		return "Não"
	}
}

func gerar(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}
