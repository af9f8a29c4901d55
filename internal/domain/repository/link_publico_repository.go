package repository

import (
	"context"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

// LinkPublicoRepository persiste links de cadastro público.
type LinkPublicoRepository interface {
	Create(ctx context.Context, l *entity.LinkPublico) error
	// GetAtivoPorTipo devolve o link ativo do tipo, ou nil quando não há.
	GetAtivoPorTipo(ctx context.Context, tipo string) (*entity.LinkPublico, error)
	// GetByHash devolve nil quando o hash não existe.
	GetByHash(ctx context.Context, hash string) (*entity.LinkPublico, error)
	Desativar(ctx context.Context, id string) error
}
