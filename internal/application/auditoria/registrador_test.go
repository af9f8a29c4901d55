package auditoria_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeLogRepo struct {
	entradas    []*entity.Log
	falha       error
	ultimoCorte time.Time
}

func (r *fakeLogRepo) Create(_ context.Context, l *entity.Log) error {
	if r.falha != nil {
		return r.falha
	}
	r.entradas = append(r.entradas, l)
	return nil
}

func (r *fakeLogRepo) List(_ context.Context, _ string, _, _ int) ([]*entity.Log, int, error) {
	return r.entradas, len(r.entradas), nil
}

func (r *fakeLogRepo) DeleteOlderThan(_ context.Context, corte time.Time) (int64, error) {
	r.ultimoCorte = corte
	var mantidas []*entity.Log
	var removidas int64
	for _, l := range r.entradas {
		if l.Data.Before(corte) {
			removidas++
			continue
		}
		mantidas = append(mantidas, l)
	}
	r.entradas = mantidas
	return removidas, nil
}

func (r *fakeLogRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.entradas))
	r.entradas = nil
	return n, nil
}

func novoRegistrador(repo *fakeLogRepo) *auditoria.Registrador {
	return auditoria.NewRegistrador(repo, logger.New(logger.Config{Env: "development", Level: "error"}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes
// ──────────────────────────────────────────────────────────────────────────────

func TestRegistrar(t *testing.T) {
	repo := &fakeLogRepo{}
	reg := novoRegistrador(repo)

	reg.Registrar(context.Background(), "admin", "Login realizado", entity.ResultadoSucesso, "10.0.0.1")

	require.Len(t, repo.entradas, 1)
	l := repo.entradas[0]
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "admin", l.Usuario)
	assert.Equal(t, entity.ResultadoSucesso, l.Resultado)
	assert.WithinDuration(t, time.Now().UTC(), l.Data, time.Minute)
}

func TestRegistrar_FalhaDePersistenciaNaoPropaga(t *testing.T) {
	repo := &fakeLogRepo{falha: errors.New("banco fora do ar")}
	reg := novoRegistrador(repo)

	// Não há retorno de erro: a operação auditada nunca falha por
	// causa da trilha.
	reg.Registrar(context.Background(), "admin", "Login realizado", entity.ResultadoSucesso, "10.0.0.1")

	assert.Empty(t, repo.entradas)
}

func TestPurgar_RemoveApenasEntradasVelhas(t *testing.T) {
	repo := &fakeLogRepo{entradas: []*entity.Log{
		{ID: "velha", Data: time.Now().UTC().Add(-31 * 24 * time.Hour)},
		{ID: "recente", Data: time.Now().UTC().Add(-24 * time.Hour)},
	}}
	reg := novoRegistrador(repo)

	n, err := reg.Purgar(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), n)
	require.Len(t, repo.entradas, 1)
	assert.Equal(t, "recente", repo.entradas[0].ID)
	assert.WithinDuration(t, time.Now().UTC().Add(-auditoria.RetencaoPadrao), repo.ultimoCorte, time.Minute,
		"o corte enviado ao banco deve ser a retenção de 30 dias")
}

func TestLimparTudo(t *testing.T) {
	repo := &fakeLogRepo{entradas: []*entity.Log{{ID: "a"}, {ID: "b"}}}
	reg := novoRegistrador(repo)

	n, err := reg.LimparTudo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), n)
	assert.Empty(t, repo.entradas)
}
