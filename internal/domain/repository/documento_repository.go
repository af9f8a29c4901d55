package repository

import (
	"context"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

// AtaRepository persiste atas de reunião.
type AtaRepository interface {
	Create(ctx context.Context, a *entity.Ata) error
	GetByID(ctx context.Context, id string) (*entity.Ata, error)
	Update(ctx context.Context, a *entity.Ata) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Ata, int, error)
	Search(ctx context.Context, termo string, limit, offset int) ([]*entity.Ata, int, error)
}

// CertificadoRepository persiste certificados emitidos.
type CertificadoRepository interface {
	Create(ctx context.Context, c *entity.Certificado) error
	GetByID(ctx context.Context, id string) (*entity.Certificado, error)
	Update(ctx context.Context, c *entity.Certificado) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Certificado, int, error)
	Search(ctx context.Context, termo string, limit, offset int) ([]*entity.Certificado, int, error)
}

// CartaRepository persiste cartas de recomendação e mudança.
type CartaRepository interface {
	Create(ctx context.Context, c *entity.Carta) error
	GetByID(ctx context.Context, id string) (*entity.Carta, error)
	Update(ctx context.Context, c *entity.Carta) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]*entity.Carta, int, error)
	Search(ctx context.Context, termo string, limit, offset int) ([]*entity.Carta, int, error)
}
