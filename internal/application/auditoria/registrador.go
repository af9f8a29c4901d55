// Package auditoria grava a trilha de ações administrativas.
// A gravação nunca propaga falha: auditoria indisponível não pode
// derrubar a operação que está sendo auditada.
package auditoria

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
	"github.com/soarespaullo/SiGI/pkg/logger"
)

// RetencaoPadrao idade máxima das entradas na purga periódica.
const RetencaoPadrao = 30 * 24 * time.Hour

// Registrador grava e administra a trilha de auditoria.
type Registrador struct {
	repo repository.LogRepository
	log  *logger.Logger
}

// NewRegistrador constrói o registrador.
func NewRegistrador(repo repository.LogRepository, log *logger.Logger) *Registrador {
	return &Registrador{repo: repo, log: log}
}

// Registrar grava uma entrada. Falhas são apenas logadas.
func (r *Registrador) Registrar(ctx context.Context, usuario, acao, resultado, origem string) {
	l := &entity.Log{
		ID:        uuid.New().String(),
		Usuario:   usuario,
		Acao:      acao,
		Resultado: resultado,
		Origem:    origem,
		Data:      time.Now().UTC(),
	}
	if err := r.repo.Create(ctx, l); err != nil {
		r.log.Error().Err(err).Str("acao", acao).Msg("falha ao gravar auditoria")
	}
}

// Listar pagina a trilha, mais recente primeiro, com filtro
// opcional por nome de usuário.
func (r *Registrador) Listar(ctx context.Context, usuario string, limit, offset int) ([]*entity.Log, int, error) {
	return r.repo.List(ctx, usuario, limit, offset)
}

// Purgar remove entradas mais antigas que a retenção e devolve quantas foram.
func (r *Registrador) Purgar(ctx context.Context) (int64, error) {
	corte := time.Now().UTC().Add(-RetencaoPadrao)
	n, err := r.repo.DeleteOlderThan(ctx, corte)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		r.log.Info().Int64("removidos", n).Msg("auditoria purgada")
	}
	return n, nil
}

// LimparTudo apaga a trilha inteira (ação administrativa explícita).
func (r *Registrador) LimparTudo(ctx context.Context) (int64, error) {
	return r.repo.DeleteAll(ctx)
}
