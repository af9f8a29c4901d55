package dto

import "github.com/shopspring/decimal"

// PatrimonioRequest entrada para criar ou atualizar um bem.
type PatrimonioRequest struct {
	Nome        string          `json:"nome" validate:"required,min=1,max=200"`
	Descricao   string          `json:"descricao"`
	Categoria   string          `json:"categoria"`
	Numero      string          `json:"numero"`
	Valor       decimal.Decimal `json:"valor"`
	DataEntrada string          `json:"data_entrada"`
	Situacao    string          `json:"situacao"`
}

// PatrimonioResponse saída de um bem.
type PatrimonioResponse struct {
	ID             string          `json:"id"`
	Nome           string          `json:"nome"`
	Descricao      string          `json:"descricao,omitempty"`
	Categoria      string          `json:"categoria"`
	Numero         string          `json:"numero,omitempty"`
	Valor          decimal.Decimal `json:"valor"`
	ValorFormatado string          `json:"valor_formatado"`
	DataEntrada    string          `json:"data_entrada,omitempty"`
	Situacao       string          `json:"situacao"`
}

// PatrimonioListResponse listagem paginada de bens com o valor total.
type PatrimonioListResponse struct {
	Items          []PatrimonioResponse `json:"items"`
	Mensagem       string               `json:"mensagem,omitempty"`
	ValorTotal     decimal.Decimal      `json:"valor_total"`
	ValorFormatado string               `json:"valor_total_formatado"`
	Page           PageResponse         `json:"page"`
}
