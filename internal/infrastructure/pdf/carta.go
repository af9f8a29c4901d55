package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

// Carta gera o PDF de uma carta emitida (recomendação, mudança, etc).
func (g *Gerador) Carta(_ context.Context, c *entity.Carta) ([]byte, error) {
	emissao := time.Now()
	if c.DataEmissao != nil {
		emissao = *c.DataEmissao
	}

	doc := g.novoDocumento(c.Titulo)
	g.cabecalho(doc, c.Titulo, emissao)

	doc.AddRows(row.New(10).Add(col.New(12).Add(
		text.New(ouTraco(c.Cidade)+", "+dataExtenso(emissao), props.Text{
			Size: 10, Align: align.Right, Top: 4,
		}),
	)))

	doc.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Ao(À): "+ouTraco(c.Destinatario), props.Text{
			Style: fontstyle.Bold, Size: 10, Top: 2,
		}),
	)))

	// corpo em parágrafos justificados
	doc.AddRows(row.New(100).Add(col.New(12).Add(
		text.New(c.Corpo, props.Text{Size: 10, Top: 4, Align: align.Justify}),
	)))

	doc.AddRows(row.New(20).Add(col.New(12).Add(
		text.New(ouTraco(c.Remetente), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 12,
		}),
		text.New(g.nomeIgreja, props.Text{
			Size: 9, Align: align.Center, Top: 17, Color: corCinza,
		}),
	)))

	return gerar(doc)
}

var mesesExtenso = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// dataExtenso datação por extenso em português ("12 de março de 2026").
func dataExtenso(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), mesesExtenso[int(t.Month())-1], t.Year())
}
