package pdf

import (
	"context"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

// FichaMembro gera a ficha cadastral completa de um membro.
func (g *Gerador) FichaMembro(_ context.Context, m *entity.Membro) ([]byte, error) {
	doc := g.novoDocumento("Ficha de Membro")
	g.cabecalho(doc, "Ficha Cadastral de Membro", time.Now())

	doc.AddRows(secaoRow("Dados Pessoais"))
	doc.AddRows(
		campoRow("Nome:", m.Nome),
		campoRow("Data de Nascimento:", dataOuTraco(m.DataNascimento)),
		campoRow("Sexo:", m.Sexo),
		campoRow("Estado Civil:", m.EstadoCivil),
		campoRow("Cônjuge:", m.Conjuge),
		campoRow("Telefone:", m.Telefone),
		campoRow("E-mail:", m.Email),
	)

	doc.AddRows(secaoRow("Endereço"))
	doc.AddRows(
		campoRow("Endereço:", m.Endereco),
		campoRow("Bairro:", m.Bairro),
		campoRow("CEP:", m.CEP),
	)

	doc.AddRows(secaoRow("Vida Eclesiástica"))
	doc.AddRows(
		campoRow("Batizado:", simNao(m.Batizado)),
		campoRow("Data de Batismo:", dataOuTraco(m.DataBatismo)),
		campoRow("Dizimista:", simNao(m.Dizimista)),
		campoRow("Função:", m.Funcao),
		campoRow("Status:", m.Status),
		campoRow("Data de Cadastro:", dataOuTraco(m.DataCadastro)),
		campoRow("Nº da Carteira:", m.NumeroCarteira),
		campoRow("Igreja Local:", m.IgrejaLocal),
		campoRow("Data de Conversão:", dataOuTraco(m.DataConversao)),
		campoRow("Data de Saída:", dataOuTraco(m.DataSaida)),
	)

	doc.AddRows(secaoRow("Documentos e Filiação"))
	doc.AddRows(
		campoRow("Nacionalidade:", m.Nacionalidade),
		campoRow("Naturalidade:", m.Naturalidade),
		campoRow("RG:", m.RG),
		campoRow("CPF:", m.CPF),
		campoRow("Pai:", m.Pai),
		campoRow("Mãe:", m.Mae),
	)

	if m.Observacoes != "" {
		doc.AddRows(secaoRow("Observações"))
		doc.AddRows(campoRow("", m.Observacoes))
	}

	doc.AddRows(line.NewRow(3, props.Line{Color: corCinza, Thickness: 0.3}))
	return gerar(doc)
}
