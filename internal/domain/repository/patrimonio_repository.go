package repository

import (
	"context"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

// PatrimonioRepository define a persistência do inventário patrimonial.
type PatrimonioRepository interface {
	Create(ctx context.Context, p *entity.Patrimonio) error
	GetByID(ctx context.Context, id string) (*entity.Patrimonio, error)
	Update(ctx context.Context, p *entity.Patrimonio) error
	Delete(ctx context.Context, id string) error

	// List pagina ordenado por nome.
	List(ctx context.Context, limit, offset int) ([]*entity.Patrimonio, int, error)
	// Search faz substring case-insensitive sobre nome, categoria e número.
	Search(ctx context.Context, termo string, limit, offset int) ([]*entity.Patrimonio, int, error)
}
