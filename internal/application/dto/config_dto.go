package dto

import "time"

// ConfigEmailRequest entrada para salvar a configuração SMTP.
type ConfigEmailRequest struct {
	Servidor    string `json:"servidor" validate:"required"`
	Porta       int    `json:"porta" validate:"required,min=1,max=65535"`
	UseTLS      bool   `json:"use_tls"`
	Usuario     string `json:"usuario"`
	Senha       string `json:"senha"`
	NomePadrao  string `json:"nome_padrao"`
	EmailPadrao string `json:"email_padrao" validate:"omitempty,email"`
}

// ConfigEmailResponse saída da configuração SMTP (sem a senha).
type ConfigEmailResponse struct {
	Servidor    string `json:"servidor"`
	Porta       int    `json:"porta"`
	UseTLS      bool   `json:"use_tls"`
	Usuario     string `json:"usuario"`
	NomePadrao  string `json:"nome_padrao"`
	EmailPadrao string `json:"email_padrao"`
}

// LogResponse saída de uma entrada de auditoria.
type LogResponse struct {
	ID        string    `json:"id"`
	Usuario   string    `json:"usuario"`
	Acao      string    `json:"acao"`
	Resultado string    `json:"resultado"`
	Origem    string    `json:"origem"`
	Data      time.Time `json:"data"`
}

// LogListResponse listagem paginada da trilha de auditoria.
type LogListResponse struct {
	Items []LogResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}

// PurgaLogsResponse resultado de uma purga da trilha.
type PurgaLogsResponse struct {
	Removidos int64 `json:"removidos"`
}

// LinkPublicoResponse saída do link de cadastro público ativo.
type LinkPublicoResponse struct {
	Hash        string    `json:"hash"`
	URL         string    `json:"url"`
	Ativo       bool      `json:"ativo"`
	DataCriacao time.Time `json:"data_criacao"`
}
