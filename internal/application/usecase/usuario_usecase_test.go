package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/application/usecase"
	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

func novoUsuarioUC(t *testing.T) (*usecase.UsuarioUseCase, *fakeUsuarioRepo, *fakeLogRepo) {
	t.Helper()
	repo := novoFakeUsuarioRepo()
	logs := &fakeLogRepo{}
	return usecase.NewUsuarioUseCase(repo, novoRegistrador(logs)), repo, logs
}

func TestUsuarioCreate(t *testing.T) {
	uc, repo, logs := novoUsuarioUC(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateUsuarioRequest{Email: "maria@example.com", Nome: "Maria", Password: "segredo123"}, "admin", "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, entity.RoleUser, out.Role, "role default deve ser user")
	assert.True(t, repo.usuarios[out.ID].Ativo)
	assert.True(t, logs.contemAcao("Usuário criado"))

	_, err = uc.Create(ctx, dto.CreateUsuarioRequest{Email: "MARIA@example.com", Nome: "Outra", Password: "segredo123"}, "admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrEmailJaCadastrado)
}

func TestUsuarioUpdate_NaoDesativaAPropriaConta(t *testing.T) {
	uc, repo, _ := novoUsuarioUC(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateUsuarioRequest{Email: "admin@example.com", Nome: "Admin", Password: "segredo123", Role: entity.RoleAdmin}, "admin", "10.0.0.1")
	require.NoError(t, err)

	inativo := false
	_, err = uc.Update(ctx, out.ID, dto.UpdateUsuarioRequest{Ativo: &inativo}, out.ID, "Admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrConflito)
	assert.True(t, repo.usuarios[out.ID].Ativo, "conta deve continuar ativa")

	// Outro operador pode desativar normalmente.
	_, err = uc.Update(ctx, out.ID, dto.UpdateUsuarioRequest{Ativo: &inativo}, "outro-id", "Outro", "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, repo.usuarios[out.ID].Ativo)
}

func TestUsuarioDelete_NaoRemoveASiProprio(t *testing.T) {
	uc, repo, _ := novoUsuarioUC(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateUsuarioRequest{Email: "admin@example.com", Nome: "Admin", Password: "segredo123"}, "admin", "10.0.0.1")
	require.NoError(t, err)

	err = uc.Delete(ctx, out.ID, out.ID, "Admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrConflito)
	require.Contains(t, repo.usuarios, out.ID)

	err = uc.Delete(ctx, out.ID, "outro-id", "Outro", "10.0.0.1")
	require.NoError(t, err)
	assert.NotContains(t, repo.usuarios, out.ID)
}
