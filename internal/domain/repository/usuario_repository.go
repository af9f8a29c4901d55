package repository

import (
	"context"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

// UsuarioRepository define a persistência de operadores do sistema.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByID(ctx context.Context, id string) (*entity.Usuario, error)
	// GetByEmail devolve nil, nil quando o e-mail não existe.
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	Update(ctx context.Context, u *entity.Usuario) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Usuario, error)
	// Count existe para o estado de setup: zero usuários habilita a criação
	// única do primeiro administrador.
	Count(ctx context.Context) (int, error)
	// FirstAdminEmail devolve o e-mail do primeiro admin (lembretes de evento).
	FirstAdminEmail(ctx context.Context) (string, error)
}
