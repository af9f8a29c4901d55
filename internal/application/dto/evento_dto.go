package dto

import "time"

// EventoRequest entrada para criar ou atualizar um evento.
type EventoRequest struct {
	Titulo      string    `json:"titulo" validate:"required,min=1,max=200"`
	Descricao   string    `json:"descricao"`
	Tipo        string    `json:"tipo" validate:"required,oneof=culto_especial retiro batismo reuniao evangelismo conferencia outro"`
	DataInicio  time.Time `json:"data_inicio" validate:"required"`
	DataFim     time.Time `json:"data_fim" validate:"required"`
	Local       string    `json:"local"`
	Organizador string    `json:"organizador"`
	Status      string    `json:"status" validate:"omitempty,oneof=confirmado planejado em_andamento concluido cancelado"`
}

// EventoResponse saída de um evento.
type EventoResponse struct {
	ID            string     `json:"id"`
	Titulo        string     `json:"titulo"`
	Descricao     string     `json:"descricao,omitempty"`
	Tipo          string     `json:"tipo"`
	DataInicio    time.Time  `json:"data_inicio"`
	DataFim       time.Time  `json:"data_fim"`
	Local         string     `json:"local,omitempty"`
	Organizador   string     `json:"organizador,omitempty"`
	Status        string     `json:"status"`
	PublicToken   string     `json:"public_token"`
	TokenExpiraEm *time.Time `json:"token_expira_em,omitempty"`
}

// EventoListResponse listagem paginada de eventos.
type EventoListResponse struct {
	Items    []EventoResponse `json:"items"`
	Mensagem string           `json:"mensagem,omitempty"`
	Page     PageResponse     `json:"page"`
}

// EventoPublicoResponse visão pública de um evento (sem campos administrativos).
type EventoPublicoResponse struct {
	Titulo      string    `json:"titulo"`
	Descricao   string    `json:"descricao,omitempty"`
	Tipo        string    `json:"tipo"`
	DataInicio  time.Time `json:"data_inicio"`
	DataFim     time.Time `json:"data_fim"`
	Local       string    `json:"local,omitempty"`
	Organizador string    `json:"organizador,omitempty"`
	Status      string    `json:"status"`
}

// LembretesResponse resultado do disparo de lembretes de eventos.
type LembretesResponse struct {
	Enviados int      `json:"enviados"`
	Eventos  []string `json:"eventos"`
}
