package entity

import "time"

// Membro representa um membro da igreja ou visitante.
type Membro struct {
	ID string

	// Dados pessoais
	Foto           string
	Nome           string
	DataNascimento *time.Time
	Sexo           string
	EstadoCivil    string
	Conjuge        string
	Telefone       string
	Email          string

	// Endereço
	Endereco string
	Bairro   string
	CEP      string

	// Igreja
	Batizado       *bool
	Dizimista      *bool
	DataBatismo    *time.Time
	Funcao         string
	Status         string
	DataCadastro   *time.Time
	NumeroCarteira string
	IgrejaLocal    string
	Validade       *time.Time
	DataConversao  *time.Time
	DataSaida      *time.Time

	// Documentos
	Nacionalidade string
	Naturalidade  string
	RG            string
	CPF           string
	Pai           string
	Mae           string
	Filiacao      string

	Observacoes string

	CriadoEm time.Time
}

// Ativo indica se o membro está ativo. Sempre derivado da data de saída;
// nenhum campo armazenado é autoritativo para isso.
func (m *Membro) Ativo() bool {
	return m.DataSaida == nil
}

// Idade calcula a idade em anos completos na data de referência.
// Devolve -1 quando a data de nascimento é desconhecida.
func (m *Membro) Idade(ref time.Time) int {
	if m.DataNascimento == nil {
		return -1
	}
	n := *m.DataNascimento
	idade := ref.Year() - n.Year()
	if ref.Month() < n.Month() || (ref.Month() == n.Month() && ref.Day() < n.Day()) {
		idade--
	}
	return idade
}

// FaixaEtaria devolve a faixa usada no relatório estatístico.
func (m *Membro) FaixaEtaria(ref time.Time) string {
	idade := m.Idade(ref)
	switch {
	case idade < 0:
		return ""
	case idade <= 18:
		return "0-18"
	case idade <= 35:
		return "19-35"
	case idade <= 60:
		return "36-60"
	default:
		return "60+"
	}
}
