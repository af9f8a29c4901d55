package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

var _ repository.LogRepository = (*LogRepo)(nil)

// LogRepo implementação do porto LogRepository sobre PostgreSQL.
type LogRepo struct {
	q Querier
}

// NewLogRepository constrói o adaptador da trilha de auditoria. Aceita pool ou tx.
func NewLogRepository(q Querier) *LogRepo {
	return &LogRepo{q: q}
}

// Create grava uma entrada de auditoria.
func (r *LogRepo) Create(ctx context.Context, l *entity.Log) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO logs (id, usuario, acao, resultado, origem, data) VALUES ($1, $2, $3, $4, $5, $6)`,
		l.ID, l.Usuario, l.Acao, l.Resultado, l.Origem, l.Data,
	)
	if err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

// List pagina entradas do mais recente para o mais antigo.
func (r *LogRepo) List(ctx context.Context, usuario string, limit, offset int) ([]*entity.Log, int, error) {
	filtro := "%" + usuario + "%"
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM logs WHERE usuario ILIKE $1`, filtro).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count logs: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT id, usuario, acao, resultado, origem, data FROM logs WHERE usuario ILIKE $1 ORDER BY data DESC LIMIT $2 OFFSET $3`,
		filtro, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Log
	for rows.Next() {
		var l entity.Log
		if err := rows.Scan(&l.ID, &l.Usuario, &l.Acao, &l.Resultado, &l.Origem, &l.Data); err != nil {
			return nil, 0, fmt.Errorf("scan log: %w", err)
		}
		list = append(list, &l)
	}
	return list, total, rows.Err()
}

// DeleteOlderThan apaga entradas anteriores ao corte e devolve quantas foram.
func (r *LogRepo) DeleteOlderThan(ctx context.Context, corte time.Time) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM logs WHERE data < $1`, corte)
	if err != nil {
		return 0, fmt.Errorf("purgar logs: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteAll apaga a trilha inteira e devolve quantas entradas foram.
func (r *LogRepo) DeleteAll(ctx context.Context) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM logs`)
	if err != nil {
		return 0, fmt.Errorf("limpar logs: %w", err)
	}
	return cmd.RowsAffected(), nil
}
