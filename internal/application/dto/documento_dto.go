package dto

// AtaRequest entrada para criar ou atualizar uma ata.
type AtaRequest struct {
	Titulo        string `json:"titulo" validate:"required,min=1,max=200"`
	DataEmissao   string `json:"data_emissao"`
	Tipo          string `json:"tipo"`
	Situacao      string `json:"situacao"`
	Local         string `json:"local"`
	Presidente    string `json:"presidente"`
	Secretario    string `json:"secretario"`
	Participantes string `json:"participantes"`
	Pauta         string `json:"pauta"`
	Deliberacoes  string `json:"deliberacoes"`
	Observacoes   string `json:"observacoes"`
}

// AtaResponse saída de uma ata.
type AtaResponse struct {
	ID            string `json:"id"`
	Titulo        string `json:"titulo"`
	DataEmissao   string `json:"data_emissao,omitempty"`
	Tipo          string `json:"tipo"`
	Situacao      string `json:"situacao"`
	Local         string `json:"local,omitempty"`
	Presidente    string `json:"presidente,omitempty"`
	Secretario    string `json:"secretario,omitempty"`
	Participantes string `json:"participantes,omitempty"`
	Pauta         string `json:"pauta,omitempty"`
	Deliberacoes  string `json:"deliberacoes,omitempty"`
	Observacoes   string `json:"observacoes,omitempty"`
}

// AtaListResponse listagem paginada de atas.
type AtaListResponse struct {
	Items    []AtaResponse `json:"items"`
	Mensagem string        `json:"mensagem,omitempty"`
	Page     PageResponse  `json:"page"`
}

// CertificadoRequest entrada para criar ou atualizar um certificado.
type CertificadoRequest struct {
	Titulo      string `json:"titulo" validate:"required,min=1,max=200"`
	DataEmissao string `json:"data_emissao"`
	CriadoPor   string `json:"criado_por"`
	Evento      string `json:"evento"`
	Corpo       string `json:"corpo"`
	Situacao    string `json:"situacao"`
}

// CertificadoResponse saída de um certificado.
type CertificadoResponse struct {
	ID          string `json:"id"`
	Titulo      string `json:"titulo"`
	DataEmissao string `json:"data_emissao,omitempty"`
	CriadoPor   string `json:"criado_por,omitempty"`
	Evento      string `json:"evento,omitempty"`
	Corpo       string `json:"corpo,omitempty"`
	Situacao    string `json:"situacao"`
}

// CertificadoListResponse listagem paginada de certificados.
type CertificadoListResponse struct {
	Items    []CertificadoResponse `json:"items"`
	Mensagem string                `json:"mensagem,omitempty"`
	Page     PageResponse          `json:"page"`
}

// CartaRequest entrada para criar ou atualizar uma carta.
type CartaRequest struct {
	Titulo       string  `json:"titulo" validate:"required,min=1,max=200"`
	DataEmissao  string  `json:"data_emissao"`
	Remetente    string  `json:"remetente"`
	Destinatario string  `json:"destinatario"`
	Cidade       string  `json:"cidade"`
	Corpo        string  `json:"corpo"`
	Situacao     string  `json:"situacao"`
	MembroID     *string `json:"membro_id"`
}

// CartaResponse saída de uma carta.
type CartaResponse struct {
	ID           string  `json:"id"`
	Titulo       string  `json:"titulo"`
	DataEmissao  string  `json:"data_emissao,omitempty"`
	Remetente    string  `json:"remetente,omitempty"`
	Destinatario string  `json:"destinatario,omitempty"`
	Cidade       string  `json:"cidade,omitempty"`
	Corpo        string  `json:"corpo,omitempty"`
	Situacao     string  `json:"situacao"`
	MembroID     *string `json:"membro_id,omitempty"`
}

// CartaListResponse listagem paginada de cartas.
type CartaListResponse struct {
	Items    []CartaResponse `json:"items"`
	Mensagem string          `json:"mensagem,omitempty"`
	Page     PageResponse    `json:"page"`
}
