package repository

import (
	"context"
	"time"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

// LogRepository persiste a trilha de auditoria.
type LogRepository interface {
	Create(ctx context.Context, l *entity.Log) error
	// List pagina do mais recente para o mais antigo; usuario não
	// vazio filtra por ILIKE no nome.
	List(ctx context.Context, usuario string, limit, offset int) ([]*entity.Log, int, error)
	// DeleteOlderThan remove registros anteriores ao corte e
	// devolve quantos foram apagados.
	DeleteOlderThan(ctx context.Context, corte time.Time) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
