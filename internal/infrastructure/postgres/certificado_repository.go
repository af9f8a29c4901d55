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

var _ repository.CertificadoRepository = (*CertificadoRepo)(nil)

const certificadoCols = `id, titulo, data_emissao, criado_por, evento, corpo, situacao, criado_em, atualizado_em`

// CertificadoRepo implementação do porto CertificadoRepository sobre PostgreSQL.
type CertificadoRepo struct {
	q Querier
}

// NewCertificadoRepository constrói o adaptador de persistência de certificados. Aceita pool ou tx.
func NewCertificadoRepository(q Querier) *CertificadoRepo {
	return &CertificadoRepo{q: q}
}

func scanCertificado(row pgx.Row) (*entity.Certificado, error) {
	var c entity.Certificado
	err := row.Scan(
		&c.ID, &c.Titulo, &c.DataEmissao, &c.CriadoPor, &c.Evento, &c.Corpo,
		&c.Situacao, &c.CriadoEm, &c.AtualizadoEm,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste um certificado.
func (r *CertificadoRepo) Create(ctx context.Context, c *entity.Certificado) error {
	query := `
		INSERT INTO certificados (` + certificadoCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Titulo, c.DataEmissao, c.CriadoPor, c.Evento, c.Corpo,
		c.Situacao, c.CriadoEm, c.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert certificado: %w", err)
	}
	return nil
}

// GetByID obtém um certificado por ID. Devolve nil, nil quando não existe.
func (r *CertificadoRepo) GetByID(ctx context.Context, id string) (*entity.Certificado, error) {
	c, err := scanCertificado(r.q.QueryRow(ctx, `SELECT `+certificadoCols+` FROM certificados WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get certificado: %w", err)
	}
	return c, nil
}

// Update atualiza um certificado existente.
func (r *CertificadoRepo) Update(ctx context.Context, c *entity.Certificado) error {
	query := `
		UPDATE certificados SET titulo = $2, data_emissao = $3, criado_por = $4, evento = $5,
			corpo = $6, situacao = $7, atualizado_em = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Titulo, c.DataEmissao, c.CriadoPor, c.Evento, c.Corpo, c.Situacao, c.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update certificado: %w", err)
	}
	return nil
}

// Delete remove um certificado por ID.
func (r *CertificadoRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM certificados WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete certificado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// List pagina certificados por data de emissão decrescente.
func (r *CertificadoRepo) List(ctx context.Context, limit, offset int) ([]*entity.Certificado, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM certificados`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count certificados: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+certificadoCols+` FROM certificados ORDER BY data_emissao DESC NULLS LAST, criado_em DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list certificados: %w", err)
	}
	defer rows.Close()
	list, err := collectCertificados(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search busca certificados por substring em título, participante e evento.
func (r *CertificadoRepo) Search(ctx context.Context, termo string, limit, offset int) ([]*entity.Certificado, int, error) {
	padrao := "%" + termo + "%"
	where := `WHERE titulo ILIKE $1 OR criado_por ILIKE $1 OR evento ILIKE $1`
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM certificados `+where, padrao).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count busca certificados: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+certificadoCols+` FROM certificados `+where+` ORDER BY data_emissao DESC NULLS LAST LIMIT $2 OFFSET $3`,
		padrao, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("buscar certificados: %w", err)
	}
	defer rows.Close()
	list, err := collectCertificados(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func collectCertificados(rows pgx.Rows) ([]*entity.Certificado, error) {
	var list []*entity.Certificado
	for rows.Next() {
		c, err := scanCertificado(rows)
		if err != nil {
			return nil, fmt.Errorf("scan certificado: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
