package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

var _ repository.EventoRepository = (*EventoRepo)(nil)

const eventoCols = `id, titulo, descricao, tipo, data_inicio, data_fim, local, organizador, status, public_token, token_expira_em, criado_em`

// EventoRepo implementação do porto EventoRepository sobre PostgreSQL.
type EventoRepo struct {
	q Querier
}

// NewEventoRepository constrói o adaptador de persistência de eventos. Aceita pool ou tx.
func NewEventoRepository(q Querier) *EventoRepo {
	return &EventoRepo{q: q}
}

func scanEvento(row pgx.Row) (*entity.Evento, error) {
	var e entity.Evento
	err := row.Scan(
		&e.ID, &e.Titulo, &e.Descricao, &e.Tipo, &e.DataInicio, &e.DataFim,
		&e.Local, &e.Organizador, &e.Status, &e.PublicToken, &e.TokenExpiraEm, &e.CriadoEm,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste um novo evento. Token público duplicado vira domain.ErrDuplicado
// (o caso de uso gera outro token e tenta de novo).
func (r *EventoRepo) Create(ctx context.Context, e *entity.Evento) error {
	query := `
		INSERT INTO eventos (` + eventoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Titulo, e.Descricao, e.Tipo, e.DataInicio, e.DataFim,
		e.Local, e.Organizador, e.Status, e.PublicToken, e.TokenExpiraEm, e.CriadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert evento: %w", err)
	}
	return nil
}

// GetByID obtém um evento por ID. Devolve nil, nil quando não existe.
func (r *EventoRepo) GetByID(ctx context.Context, id string) (*entity.Evento, error) {
	e, err := scanEvento(r.q.QueryRow(ctx, `SELECT `+eventoCols+` FROM eventos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evento: %w", err)
	}
	return e, nil
}

// GetByPublicToken obtém um evento pelo token público. Devolve nil, nil quando não existe.
func (r *EventoRepo) GetByPublicToken(ctx context.Context, token string) (*entity.Evento, error) {
	e, err := scanEvento(r.q.QueryRow(ctx, `SELECT `+eventoCols+` FROM eventos WHERE public_token = $1`, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evento by token: %w", err)
	}
	return e, nil
}

// Update atualiza um evento existente.
func (r *EventoRepo) Update(ctx context.Context, e *entity.Evento) error {
	query := `
		UPDATE eventos SET titulo = $2, descricao = $3, tipo = $4, data_inicio = $5, data_fim = $6,
			local = $7, organizador = $8, status = $9, public_token = $10, token_expira_em = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.Titulo, e.Descricao, e.Tipo, e.DataInicio, e.DataFim,
		e.Local, e.Organizador, e.Status, e.PublicToken, e.TokenExpiraEm,
	)
	if err != nil {
		return fmt.Errorf("update evento: %w", err)
	}
	return nil
}

// Delete remove um evento por ID.
func (r *EventoRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM eventos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete evento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// List pagina eventos por data de início crescente.
func (r *EventoRepo) List(ctx context.Context, limit, offset int) ([]*entity.Evento, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM eventos`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count eventos: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+eventoCols+` FROM eventos ORDER BY data_inicio LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list eventos: %w", err)
	}
	defer rows.Close()
	list, err := collectEventos(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search busca eventos por substring em título, tipo e organizador.
func (r *EventoRepo) Search(ctx context.Context, termo string, limit, offset int) ([]*entity.Evento, int, error) {
	padrao := "%" + termo + "%"
	where := `WHERE titulo ILIKE $1 OR tipo ILIKE $1 OR organizador ILIKE $1`
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM eventos `+where, padrao).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count busca eventos: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+eventoCols+` FROM eventos `+where+` ORDER BY data_inicio LIMIT $2 OFFSET $3`,
		padrao, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("buscar eventos: %w", err)
	}
	defer rows.Close()
	list, err := collectEventos(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Proximos devolve eventos com início dentro de [de, ate], ignorando cancelados.
func (r *EventoRepo) Proximos(ctx context.Context, de, ate time.Time) ([]*entity.Evento, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+eventoCols+` FROM eventos
		 WHERE data_inicio BETWEEN $1 AND $2 AND status <> $3
		 ORDER BY data_inicio`,
		de, ate, entity.EventoCancelado)
	if err != nil {
		return nil, fmt.Errorf("list eventos proximos: %w", err)
	}
	defer rows.Close()
	return collectEventos(rows)
}

// ExisteProximoOuEmCurso informa se há evento começando até o limite dado
// ou em andamento neste instante. Cancelados não contam.
func (r *EventoRepo) ExisteProximoOuEmCurso(ctx context.Context, agora, ate time.Time) (bool, error) {
	var existe bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM eventos
			WHERE status <> $3
			  AND (data_inicio BETWEEN $1 AND $2 OR (data_inicio <= $1 AND data_fim >= $1))
		)`,
		agora, ate, entity.EventoCancelado,
	).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("evento proximo ou em curso: %w", err)
	}
	return existe, nil
}

func collectEventos(rows pgx.Rows) ([]*entity.Evento, error) {
	var list []*entity.Evento
	for rows.Next() {
		e, err := scanEvento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evento: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
