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

var _ repository.AtaRepository = (*AtaRepo)(nil)

const ataCols = `id, titulo, data_emissao, tipo, situacao, local, presidente, secretario, participantes, pauta, deliberacoes, observacoes, criado_em, atualizado_em`

// AtaRepo implementação do porto AtaRepository sobre PostgreSQL.
type AtaRepo struct {
	q Querier
}

// NewAtaRepository constrói o adaptador de persistência de atas. Aceita pool ou tx.
func NewAtaRepository(q Querier) *AtaRepo {
	return &AtaRepo{q: q}
}

func scanAta(row pgx.Row) (*entity.Ata, error) {
	var a entity.Ata
	err := row.Scan(
		&a.ID, &a.Titulo, &a.DataEmissao, &a.Tipo, &a.Situacao, &a.Local,
		&a.Presidente, &a.Secretario, &a.Participantes, &a.Pauta, &a.Deliberacoes,
		&a.Observacoes, &a.CriadoEm, &a.AtualizadoEm,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create persiste uma ata.
func (r *AtaRepo) Create(ctx context.Context, a *entity.Ata) error {
	query := `
		INSERT INTO atas (` + ataCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Titulo, a.DataEmissao, a.Tipo, a.Situacao, a.Local,
		a.Presidente, a.Secretario, a.Participantes, a.Pauta, a.Deliberacoes,
		a.Observacoes, a.CriadoEm, a.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert ata: %w", err)
	}
	return nil
}

// GetByID obtém uma ata por ID. Devolve nil, nil quando não existe.
func (r *AtaRepo) GetByID(ctx context.Context, id string) (*entity.Ata, error) {
	a, err := scanAta(r.q.QueryRow(ctx, `SELECT `+ataCols+` FROM atas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ata: %w", err)
	}
	return a, nil
}

// Update atualiza uma ata existente.
func (r *AtaRepo) Update(ctx context.Context, a *entity.Ata) error {
	query := `
		UPDATE atas SET titulo = $2, data_emissao = $3, tipo = $4, situacao = $5, local = $6,
			presidente = $7, secretario = $8, participantes = $9, pauta = $10,
			deliberacoes = $11, observacoes = $12, atualizado_em = $13
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.Titulo, a.DataEmissao, a.Tipo, a.Situacao, a.Local,
		a.Presidente, a.Secretario, a.Participantes, a.Pauta,
		a.Deliberacoes, a.Observacoes, a.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update ata: %w", err)
	}
	return nil
}

// Delete remove uma ata por ID.
func (r *AtaRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM atas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ata: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// List pagina atas por data de emissão decrescente.
func (r *AtaRepo) List(ctx context.Context, limit, offset int) ([]*entity.Ata, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM atas`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count atas: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+ataCols+` FROM atas ORDER BY data_emissao DESC NULLS LAST, criado_em DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list atas: %w", err)
	}
	defer rows.Close()
	list, err := collectAtas(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search busca atas por substring em título, tipo e presidente.
func (r *AtaRepo) Search(ctx context.Context, termo string, limit, offset int) ([]*entity.Ata, int, error) {
	padrao := "%" + termo + "%"
	where := `WHERE titulo ILIKE $1 OR tipo ILIKE $1 OR presidente ILIKE $1`
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM atas `+where, padrao).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count busca atas: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+ataCols+` FROM atas `+where+` ORDER BY data_emissao DESC NULLS LAST LIMIT $2 OFFSET $3`,
		padrao, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("buscar atas: %w", err)
	}
	defer rows.Close()
	list, err := collectAtas(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func collectAtas(rows pgx.Rows) ([]*entity.Ata, error) {
	var list []*entity.Ata
	for rows.Next() {
		a, err := scanAta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ata: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
