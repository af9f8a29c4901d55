package entity

import "time"

// Situações do ciclo de vida dos documentos.
const (
	DocRascunho = "Rascunho"
	DocEnviado  = "enviado"
	DocEntregue = "entregue"
	DocAprovada = "aprovada"
)

// Ata registra uma reunião: participantes, pauta e deliberações.
type Ata struct {
	ID            string
	Titulo        string
	DataEmissao   *time.Time
	Tipo          string // default "Reunião"
	Situacao      string // Rascunho -> aprovada
	Local         string
	Presidente    string
	Secretario    string
	Participantes string
	Pauta         string
	Deliberacoes  string
	Observacoes   string
	CriadoEm      time.Time
	AtualizadoEm  time.Time
}

// Certificado emitido para um participante de um evento.
type Certificado struct {
	ID           string
	Titulo       string
	DataEmissao  *time.Time
	CriadoPor    string // nome do participante
	Evento       string
	Corpo        string
	Situacao     string // enviado, entregue
	CriadoEm     time.Time
	AtualizadoEm time.Time
}

// Carta emitida em nome da igreja, opcionalmente vinculada a um membro.
type Carta struct {
	ID           string
	Titulo       string
	DataEmissao  *time.Time
	Remetente    string
	Destinatario string
	Cidade       string
	Corpo        string
	Situacao     string
	MembroID     *string
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
