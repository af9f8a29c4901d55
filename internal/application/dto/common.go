package dto

import (
	"fmt"
	"time"
)

// PageRequest paginação de listagens.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica os valores padrão quando Limit/Offset vêm zerados.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadados de página nas respostas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MensagemResponse corpo genérico de confirmação.
type MensagemResponse struct {
	Mensagem string `json:"mensagem"`
}

// MensagemBusca monta o aviso de contagem exibido junto ao resultado
// de uma busca. zero e um são frases prontas; muitos é um formato
// com %d para o total.
func MensagemBusca(total int, zero, um, muitos string) string {
	switch total {
	case 0:
		return zero
	case 1:
		return um
	default:
		return fmt.Sprintf(muitos, total)
	}
}

const formatoData = "2006-01-02"

// ParseData converte "AAAA-MM-DD" em *time.Time; string vazia vira nil.
func ParseData(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(formatoData, s)
	if err != nil {
		return nil, fmt.Errorf("data inválida %q (esperado AAAA-MM-DD)", s)
	}
	return &t, nil
}

// FormatData converte *time.Time em "AAAA-MM-DD"; nil vira string vazia.
func FormatData(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(formatoData)
}
