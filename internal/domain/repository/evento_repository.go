package repository

import (
	"context"
	"time"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

// EventoRepository define a persistência de eventos.
type EventoRepository interface {
	Create(ctx context.Context, e *entity.Evento) error
	GetByID(ctx context.Context, id string) (*entity.Evento, error)
	// GetByPublicToken devolve nil, nil quando o token não existe.
	GetByPublicToken(ctx context.Context, token string) (*entity.Evento, error)
	Update(ctx context.Context, e *entity.Evento) error
	Delete(ctx context.Context, id string) error

	// List pagina ordenado por data de início crescente.
	List(ctx context.Context, limit, offset int) ([]*entity.Evento, int, error)
	// Search faz substring case-insensitive sobre título, tipo e organizador.
	Search(ctx context.Context, termo string, limit, offset int) ([]*entity.Evento, int, error)

	// Proximos devolve eventos com início dentro de [de, ate] (lembretes).
	Proximos(ctx context.Context, de, ate time.Time) ([]*entity.Evento, error)
	// ExisteProximoOuEmCurso informa se há evento começando até o limite dado
	// ou cujo intervalo [início, fim] cobre o instante atual (alerta do dashboard).
	ExisteProximoOuEmCurso(ctx context.Context, agora, ate time.Time) (bool, error)
}
