package entity

import "time"

// ConfigEmail guarda as configurações SMTP em banco (linha única).
// Substitui a reescrita do arquivo .env: alterações ficam transacionais.
type ConfigEmail struct {
	ID           string
	Servidor     string
	Porta        int
	UseTLS       bool
	Usuario      string
	Senha        string
	NomePadrao   string
	EmailPadrao  string
	AtualizadoEm time.Time
}
