package entity

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Finalidades de link público.
const LinkVisitante = "visitante"

// LinkPublico é um token compartilhável que libera um fluxo não autenticado
// (hoje, o cadastro público de visitantes). Vale até ser desativado.
type LinkPublico struct {
	ID          string
	Tipo        string
	Hash        string
	Ativo       bool
	DataCriacao time.Time
}

// GerarHash devolve um token hex aleatório de 32 caracteres.
func GerarHash() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// GerarTokenPublico devolve o token hex curto usado na página pública de eventos.
func GerarTokenPublico() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
