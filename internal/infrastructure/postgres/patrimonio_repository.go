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

var _ repository.PatrimonioRepository = (*PatrimonioRepo)(nil)

const patrimonioCols = `id, nome, descricao, categoria, numero, valor, data_entrada, situacao, criado_em`

// PatrimonioRepo implementação do porto PatrimonioRepository sobre PostgreSQL.
type PatrimonioRepo struct {
	q Querier
}

// NewPatrimonioRepository constrói o adaptador de persistência do patrimônio. Aceita pool ou tx.
func NewPatrimonioRepository(q Querier) *PatrimonioRepo {
	return &PatrimonioRepo{q: q}
}

func scanPatrimonio(row pgx.Row) (*entity.Patrimonio, error) {
	var p entity.Patrimonio
	err := row.Scan(
		&p.ID, &p.Nome, &p.Descricao, &p.Categoria, &p.Numero, &p.Valor,
		&p.DataEntrada, &p.Situacao, &p.CriadoEm,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste um bem. Número de inventário duplicado vira domain.ErrDuplicado.
func (r *PatrimonioRepo) Create(ctx context.Context, p *entity.Patrimonio) error {
	query := `
		INSERT INTO patrimonios (` + patrimonioCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nome, p.Descricao, p.Categoria, p.Numero, p.Valor,
		p.DataEntrada, p.Situacao, p.CriadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert patrimonio: %w", err)
	}
	return nil
}

// GetByID obtém um bem por ID. Devolve nil, nil quando não existe.
func (r *PatrimonioRepo) GetByID(ctx context.Context, id string) (*entity.Patrimonio, error) {
	p, err := scanPatrimonio(r.q.QueryRow(ctx, `SELECT `+patrimonioCols+` FROM patrimonios WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get patrimonio: %w", err)
	}
	return p, nil
}

// Update atualiza um bem existente.
func (r *PatrimonioRepo) Update(ctx context.Context, p *entity.Patrimonio) error {
	query := `
		UPDATE patrimonios SET nome = $2, descricao = $3, categoria = $4, numero = $5,
			valor = $6, data_entrada = $7, situacao = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Nome, p.Descricao, p.Categoria, p.Numero, p.Valor, p.DataEntrada, p.Situacao,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update patrimonio: %w", err)
	}
	return nil
}

// Delete remove um bem por ID.
func (r *PatrimonioRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM patrimonios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete patrimonio: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// List pagina bens ordenados por nome.
func (r *PatrimonioRepo) List(ctx context.Context, limit, offset int) ([]*entity.Patrimonio, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM patrimonios`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count patrimonios: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+patrimonioCols+` FROM patrimonios ORDER BY nome LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list patrimonios: %w", err)
	}
	defer rows.Close()
	list, err := collectPatrimonios(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search busca bens por substring em nome, categoria e número de inventário.
func (r *PatrimonioRepo) Search(ctx context.Context, termo string, limit, offset int) ([]*entity.Patrimonio, int, error) {
	padrao := "%" + termo + "%"
	where := `WHERE nome ILIKE $1 OR categoria ILIKE $1 OR numero ILIKE $1`
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM patrimonios `+where, padrao).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count busca patrimonios: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+patrimonioCols+` FROM patrimonios `+where+` ORDER BY nome LIMIT $2 OFFSET $3`,
		padrao, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("buscar patrimonios: %w", err)
	}
	defer rows.Close()
	list, err := collectPatrimonios(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func collectPatrimonios(rows pgx.Rows) ([]*entity.Patrimonio, error) {
	var list []*entity.Patrimonio
	for rows.Next() {
		p, err := scanPatrimonio(rows)
		if err != nil {
			return nil, fmt.Errorf("scan patrimonio: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
