package dto

import "github.com/shopspring/decimal"

// FinanceiroRequest entrada para criar ou atualizar um lançamento.
// Tipo deve ser "Entrada" ou "Saída"; qualquer outro valor é rejeitado.
type FinanceiroRequest struct {
	Data           string          `json:"data" validate:"required"`
	Valor          decimal.Decimal `json:"valor" validate:"required"`
	Tipo           string          `json:"tipo" validate:"required"`
	Categoria      string          `json:"categoria"`
	Descricao      string          `json:"descricao"`
	CPFMembro      string          `json:"cpf_membro"`
	CNPJFornecedor string          `json:"cnpj_fornecedor"`
	Conciliado     *bool           `json:"conciliado"`
}

// FinanceiroResponse saída de um lançamento.
type FinanceiroResponse struct {
	ID             string          `json:"id"`
	Data           string          `json:"data"`
	Valor          decimal.Decimal `json:"valor"`
	ValorFormatado string          `json:"valor_formatado"`
	Tipo           string          `json:"tipo"`
	Categoria      string          `json:"categoria,omitempty"`
	Conta          string          `json:"conta,omitempty"`
	Descricao      string          `json:"descricao,omitempty"`
	CPFMembro      string          `json:"cpf_membro,omitempty"`
	CNPJFornecedor string          `json:"cnpj_fornecedor,omitempty"`
	Conciliado     bool            `json:"conciliado"`
	Comprovante    string          `json:"comprovante,omitempty"`
}

// FinanceiroListResponse listagem de lançamentos com os totais da direção.
type FinanceiroListResponse struct {
	Items          []FinanceiroResponse `json:"items"`
	Total          decimal.Decimal      `json:"total"`
	TotalFormatado string               `json:"total_formatado"`
}

// RelatorioFinanceiroResponse saída do relatório financeiro filtrado.
type RelatorioFinanceiroResponse struct {
	Items          []FinanceiroResponse       `json:"items"`
	TotalEntradas  decimal.Decimal            `json:"total_entradas"`
	TotalSaidas    decimal.Decimal            `json:"total_saidas"`
	Saldo          decimal.Decimal            `json:"saldo"`
	SaldoFormatado string                     `json:"saldo_formatado"`
	PorCategoria   map[string]decimal.Decimal `json:"por_categoria"`
}

// ComprovanteRequest metadados do upload de comprovante avulso
// (o arquivo vem no multipart).
type ComprovanteRequest struct {
	Data      string `form:"data" validate:"required"`
	Descricao string `form:"descricao"`
}

// ComprovantesResponse comprovantes avulsos agrupados por mês ("MM-AAAA"),
// dos mais recentes para os mais antigos dentro de cada grupo.
type ComprovantesResponse struct {
	PorMes map[string][]FinanceiroResponse `json:"por_mes"`
}

// FiltroFinanceiroRequest parâmetros de filtro de relatório e CSV.
type FiltroFinanceiroRequest struct {
	Inicio    string `query:"inicio"`
	Fim       string `query:"fim"`
	Tipo      string `query:"tipo"`
	Categoria string `query:"categoria"`
}
