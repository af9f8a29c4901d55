package entity

import "time"

// Roles válidos para Usuario.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Usuario representa um operador do sistema (login/administração).
// O primeiro usuário é criado pelo setup inicial e recebe role admin.
type Usuario struct {
	ID           string
	Email        string // único
	PasswordHash string // bcrypt, nunca em claro depois de persistido
	Nome         string
	Role         string // admin, user
	Ativo        bool
	Foto         string
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
