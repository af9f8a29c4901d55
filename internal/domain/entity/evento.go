package entity

import "time"

// Tipos de evento.
const (
	EventoCultoEspecial = "culto_especial"
	EventoRetiro        = "retiro"
	EventoBatismo       = "batismo"
	EventoReuniao       = "reuniao"
	EventoEvangelismo   = "evangelismo"
	EventoConferencia   = "conferencia"
	EventoOutro         = "outro"
)

// Status de evento.
const (
	EventoConfirmado  = "confirmado"
	EventoPlanejado   = "planejado"
	EventoEmAndamento = "em_andamento"
	EventoConcluido   = "concluido"
	EventoCancelado   = "cancelado"
)

// Evento representa um evento da agenda da igreja.
// PublicToken dá acesso não autenticado à página pública até TokenExpiraEm.
type Evento struct {
	ID            string
	Titulo        string
	Descricao     string
	Tipo          string
	DataInicio    time.Time
	DataFim       time.Time
	Local         string
	Organizador   string
	Status        string
	PublicToken   string // hex curto, único entre todos os eventos
	TokenExpiraEm *time.Time
	CriadoEm      time.Time
}

// AtualizarExpiracaoToken alinha a expiração do token público ao ciclo de vida:
// statuses terminais expiram imediatamente, os demais seguem a data de término.
func (e *Evento) AtualizarExpiracaoToken(agora time.Time) {
	if e.Status == EventoConcluido || e.Status == EventoCancelado {
		e.TokenExpiraEm = &agora
		return
	}
	fim := e.DataFim
	e.TokenExpiraEm = &fim
}

// TokenExpirado informa se o acesso público já expirou.
func (e *Evento) TokenExpirado(agora time.Time) bool {
	return e.TokenExpiraEm != nil && e.TokenExpiraEm.Before(agora)
}
