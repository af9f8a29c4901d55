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

var _ repository.CartaRepository = (*CartaRepo)(nil)

const cartaCols = `id, titulo, data_emissao, remetente, destinatario, cidade, corpo, situacao, membro_id, criado_em, atualizado_em`

// CartaRepo implementação do porto CartaRepository sobre PostgreSQL.
type CartaRepo struct {
	q Querier
}

// NewCartaRepository constrói o adaptador de persistência de cartas. Aceita pool ou tx.
func NewCartaRepository(q Querier) *CartaRepo {
	return &CartaRepo{q: q}
}

func scanCarta(row pgx.Row) (*entity.Carta, error) {
	var c entity.Carta
	err := row.Scan(
		&c.ID, &c.Titulo, &c.DataEmissao, &c.Remetente, &c.Destinatario, &c.Cidade,
		&c.Corpo, &c.Situacao, &c.MembroID, &c.CriadoEm, &c.AtualizadoEm,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste uma carta.
func (r *CartaRepo) Create(ctx context.Context, c *entity.Carta) error {
	query := `
		INSERT INTO cartas (` + cartaCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Titulo, c.DataEmissao, c.Remetente, c.Destinatario, c.Cidade,
		c.Corpo, c.Situacao, c.MembroID, c.CriadoEm, c.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert carta: %w", err)
	}
	return nil
}

// GetByID obtém uma carta por ID. Devolve nil, nil quando não existe.
func (r *CartaRepo) GetByID(ctx context.Context, id string) (*entity.Carta, error) {
	c, err := scanCarta(r.q.QueryRow(ctx, `SELECT `+cartaCols+` FROM cartas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get carta: %w", err)
	}
	return c, nil
}

// Update atualiza uma carta existente.
func (r *CartaRepo) Update(ctx context.Context, c *entity.Carta) error {
	query := `
		UPDATE cartas SET titulo = $2, data_emissao = $3, remetente = $4, destinatario = $5,
			cidade = $6, corpo = $7, situacao = $8, membro_id = $9, atualizado_em = $10
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Titulo, c.DataEmissao, c.Remetente, c.Destinatario,
		c.Cidade, c.Corpo, c.Situacao, c.MembroID, c.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update carta: %w", err)
	}
	return nil
}

// Delete remove uma carta por ID.
func (r *CartaRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM cartas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete carta: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// List pagina cartas por data de emissão decrescente.
func (r *CartaRepo) List(ctx context.Context, limit, offset int) ([]*entity.Carta, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM cartas`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count cartas: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+cartaCols+` FROM cartas ORDER BY data_emissao DESC NULLS LAST, criado_em DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list cartas: %w", err)
	}
	defer rows.Close()
	list, err := collectCartas(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search busca cartas por substring em título, remetente e destinatário.
func (r *CartaRepo) Search(ctx context.Context, termo string, limit, offset int) ([]*entity.Carta, int, error) {
	padrao := "%" + termo + "%"
	where := `WHERE titulo ILIKE $1 OR remetente ILIKE $1 OR destinatario ILIKE $1`
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM cartas `+where, padrao).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count busca cartas: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+cartaCols+` FROM cartas `+where+` ORDER BY data_emissao DESC NULLS LAST LIMIT $2 OFFSET $3`,
		padrao, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("buscar cartas: %w", err)
	}
	defer rows.Close()
	list, err := collectCartas(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func collectCartas(rows pgx.Rows) ([]*entity.Carta, error) {
	var list []*entity.Carta
	for rows.Next() {
		c, err := scanCarta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan carta: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
