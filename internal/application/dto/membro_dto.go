package dto

// MembroRequest entrada para criar ou atualizar um membro.
// Datas no formato AAAA-MM-DD; vazias ficam nulas.
type MembroRequest struct {
	Foto           string `json:"foto"`
	Nome           string `json:"nome" validate:"required,min=1,max=200"`
	DataNascimento string `json:"data_nascimento"`
	Sexo           string `json:"sexo" validate:"omitempty,oneof=Masculino Feminino"`
	EstadoCivil    string `json:"estado_civil"`
	Conjuge        string `json:"conjuge"`
	Telefone       string `json:"telefone"`
	Email          string `json:"email" validate:"omitempty,email"`

	Endereco string `json:"endereco"`
	Bairro   string `json:"bairro"`
	CEP      string `json:"cep"`

	Batizado       *bool  `json:"batizado"`
	Dizimista      *bool  `json:"dizimista"`
	DataBatismo    string `json:"data_batismo"`
	Funcao         string `json:"funcao"`
	Status         string `json:"status"`
	DataCadastro   string `json:"data_cadastro"`
	NumeroCarteira string `json:"numero_carteira"`
	IgrejaLocal    string `json:"igreja_local"`
	Validade       string `json:"validade"`
	DataConversao  string `json:"data_conversao"`
	DataSaida      string `json:"data_saida"`

	Nacionalidade string `json:"nacionalidade"`
	Naturalidade  string `json:"naturalidade"`
	RG            string `json:"rg"`
	CPF           string `json:"cpf"`
	Pai           string `json:"pai"`
	Mae           string `json:"mae"`
	Filiacao      string `json:"filiacao"`

	Observacoes string `json:"observacoes"`
}

// VisitanteRequest entrada do cadastro público de visitantes (sem autenticação).
type VisitanteRequest struct {
	Nome           string `json:"nome" validate:"required,min=1,max=200"`
	Telefone       string `json:"telefone" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	DataNascimento string `json:"data_nascimento"`
	Endereco       string `json:"endereco"`
	Bairro         string `json:"bairro"`
	Observacoes    string `json:"observacoes"`
}

// MembroResponse saída de um membro.
type MembroResponse struct {
	ID             string `json:"id"`
	Foto           string `json:"foto,omitempty"`
	Nome           string `json:"nome"`
	DataNascimento string `json:"data_nascimento,omitempty"`
	Sexo           string `json:"sexo,omitempty"`
	EstadoCivil    string `json:"estado_civil,omitempty"`
	Conjuge        string `json:"conjuge,omitempty"`
	Telefone       string `json:"telefone,omitempty"`
	Email          string `json:"email,omitempty"`

	Endereco string `json:"endereco,omitempty"`
	Bairro   string `json:"bairro,omitempty"`
	CEP      string `json:"cep,omitempty"`

	Batizado       *bool  `json:"batizado,omitempty"`
	Dizimista      *bool  `json:"dizimista,omitempty"`
	DataBatismo    string `json:"data_batismo,omitempty"`
	Funcao         string `json:"funcao,omitempty"`
	Status         string `json:"status,omitempty"`
	DataCadastro   string `json:"data_cadastro,omitempty"`
	NumeroCarteira string `json:"numero_carteira,omitempty"`
	IgrejaLocal    string `json:"igreja_local,omitempty"`
	Validade       string `json:"validade,omitempty"`
	DataConversao  string `json:"data_conversao,omitempty"`
	DataSaida      string `json:"data_saida,omitempty"`

	Nacionalidade string `json:"nacionalidade,omitempty"`
	Naturalidade  string `json:"naturalidade,omitempty"`
	RG            string `json:"rg,omitempty"`
	CPF           string `json:"cpf,omitempty"`
	Pai           string `json:"pai,omitempty"`
	Mae           string `json:"mae,omitempty"`
	Filiacao      string `json:"filiacao,omitempty"`

	Observacoes string `json:"observacoes,omitempty"`
	Ativo       bool   `json:"ativo"`
}

// MembroListResponse listagem paginada de membros.
type MembroListResponse struct {
	Items    []MembroResponse `json:"items"`
	Mensagem string           `json:"mensagem,omitempty"`
	Page     PageResponse     `json:"page"`
}

// DistribuicaoDTO par rótulo/contagem das distribuições do relatório.
type DistribuicaoDTO struct {
	Rotulo string `json:"rotulo"`
	Total  int    `json:"total"`
}

// RelatorioMembrosResponse saída do relatório estatístico de membros.
type RelatorioMembrosResponse struct {
	Total          int               `json:"total"`
	PorSexo        []DistribuicaoDTO `json:"por_sexo"`
	PorFaixaEtaria []DistribuicaoDTO `json:"por_faixa_etaria"`
	PorEstadoCivil []DistribuicaoDTO `json:"por_estado_civil"`
	PorFuncao      []DistribuicaoDTO `json:"por_funcao"`
	PorStatus      []DistribuicaoDTO `json:"por_status"`
}
