package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

var _ repository.LinkPublicoRepository = (*LinkPublicoRepo)(nil)

// LinkPublicoRepo implementação do porto LinkPublicoRepository sobre PostgreSQL.
type LinkPublicoRepo struct {
	q Querier
}

// NewLinkPublicoRepository constrói o adaptador de links públicos. Aceita pool ou tx.
func NewLinkPublicoRepository(q Querier) *LinkPublicoRepo {
	return &LinkPublicoRepo{q: q}
}

// Create persiste um link público. Hash duplicado vira domain.ErrDuplicado.
func (r *LinkPublicoRepo) Create(ctx context.Context, l *entity.LinkPublico) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO links_publicos (id, tipo, hash, ativo, data_criacao) VALUES ($1, $2, $3, $4, $5)`,
		l.ID, l.Tipo, l.Hash, l.Ativo, l.DataCriacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert link publico: %w", err)
	}
	return nil
}

// GetAtivoPorTipo devolve o link ativo mais recente do tipo, ou nil, nil.
func (r *LinkPublicoRepo) GetAtivoPorTipo(ctx context.Context, tipo string) (*entity.LinkPublico, error) {
	var l entity.LinkPublico
	err := r.q.QueryRow(ctx,
		`SELECT id, tipo, hash, ativo, data_criacao FROM links_publicos
		 WHERE tipo = $1 AND ativo ORDER BY data_criacao DESC LIMIT 1`, tipo,
	).Scan(&l.ID, &l.Tipo, &l.Hash, &l.Ativo, &l.DataCriacao)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get link ativo: %w", err)
	}
	return &l, nil
}

// GetByHash devolve o link com o hash dado, ou nil, nil quando não existe.
func (r *LinkPublicoRepo) GetByHash(ctx context.Context, hash string) (*entity.LinkPublico, error) {
	var l entity.LinkPublico
	err := r.q.QueryRow(ctx,
		`SELECT id, tipo, hash, ativo, data_criacao FROM links_publicos WHERE hash = $1`, hash,
	).Scan(&l.ID, &l.Tipo, &l.Hash, &l.Ativo, &l.DataCriacao)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get link por hash: %w", err)
	}
	return &l, nil
}

// Desativar marca um link como inativo.
func (r *LinkPublicoRepo) Desativar(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `UPDATE links_publicos SET ativo = FALSE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("desativar link: %w", err)
	}
	return nil
}
