package entity

import "time"

// Resultados possíveis de uma entrada de auditoria.
const (
	ResultadoSucesso = "sucesso"
	ResultadoErro    = "erro"
	ResultadoInfo    = "info"
)

// Log é uma entrada imutável de auditoria: gravada uma vez, nunca atualizada.
// Removida apenas pela purga por idade.
type Log struct {
	ID        string
	Usuario   string
	Acao      string
	Resultado string
	Origem    string    // endereço de rede de origem
	Data      time.Time // sempre UTC
}
