package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/application/usecase"
	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

func novoMembroUC(t *testing.T) (*usecase.MembroUseCase, *fakeMembroRepo, *fakeLinkRepo, *fakeLogRepo) {
	t.Helper()
	repo := novoFakeMembroRepo()
	links := novoFakeLinkRepo()
	logs := &fakeLogRepo{}
	uc := usecase.NewMembroUseCase(repo, links, &fakePDF{}, novoRegistrador(logs))
	return uc, repo, links, logs
}

func TestMembroCreate_Sucesso(t *testing.T) {
	uc, repo, _, logs := novoMembroUC(t)

	out, err := uc.Create(context.Background(), dto.MembroRequest{
		Nome:           "João da Silva",
		DataNascimento: "1990-03-15",
		CPF:            "123.456.789-00",
		Funcao:         "Diácono",
	}, "admin", "10.0.0.1")
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "João da Silva", out.Nome)
	assert.Len(t, repo.membros, 1)
	assert.True(t, logs.contemAcao("Membro cadastrado"), "cadastro deve ir para a auditoria")
}

func TestMembroDelete_RemoveFotoDoDisco(t *testing.T) {
	uc, repo, _, logs := novoMembroUC(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.MembroRequest{Nome: "João da Silva"}, "admin", "10.0.0.1")
	require.NoError(t, err)

	foto := filepath.Join(t.TempDir(), "joao.jpg")
	require.NoError(t, os.WriteFile(foto, []byte("jpg"), 0o644))
	repo.membros[out.ID].Foto = foto

	require.NoError(t, uc.Delete(ctx, out.ID, "admin", "10.0.0.1"))

	assert.Empty(t, repo.membros)
	_, err = os.Stat(foto)
	assert.True(t, os.IsNotExist(err), "a foto deve sair do disco junto com o registro")
	assert.True(t, logs.contemAcao("Membro removido"))
}

func TestMembroAnexarFoto_SubstituiAAnterior(t *testing.T) {
	uc, repo, _, logs := novoMembroUC(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.MembroRequest{Nome: "João da Silva"}, "admin", "10.0.0.1")
	require.NoError(t, err)

	dir := t.TempDir()
	antiga := filepath.Join(dir, "antiga.jpg")
	require.NoError(t, os.WriteFile(antiga, []byte("jpg"), 0o644))
	repo.membros[out.ID].Foto = antiga

	nova := filepath.Join(dir, "nova.png")
	require.NoError(t, uc.AnexarFoto(ctx, out.ID, nova, "admin", "10.0.0.1"))

	assert.Equal(t, nova, repo.membros[out.ID].Foto)
	_, err = os.Stat(antiga)
	assert.True(t, os.IsNotExist(err), "a foto anterior não pode ficar órfã no disco")
	assert.True(t, logs.contemAcao("Foto atualizada"))

	err = uc.AnexarFoto(ctx, "nao-existe", nova, "admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestMembroDelete_Inexistente(t *testing.T) {
	uc, _, _, logs := novoMembroUC(t)

	err := uc.Delete(context.Background(), "nao-existe", "admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
	assert.False(t, logs.contemAcao("Membro removido"), "remoção que falhou não vira sucesso na auditoria")
}

func TestMembroCreate_CPFDuplicado(t *testing.T) {
	uc, _, _, _ := novoMembroUC(t)

	_, err := uc.Create(context.Background(), dto.MembroRequest{Nome: "João", CPF: "123.456.789-00"}, "admin", "10.0.0.1")
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.MembroRequest{Nome: "Outro Nome", CPF: "123.456.789-00"}, "admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrDuplicado, "mesmo CPF deve ser rejeitado")
}

func TestMembroCreate_NomeENascimentoDuplicados(t *testing.T) {
	uc, _, _, _ := novoMembroUC(t)

	_, err := uc.Create(context.Background(), dto.MembroRequest{Nome: "Maria", DataNascimento: "1985-07-01"}, "admin", "10.0.0.1")
	require.NoError(t, err)

	// Mesmo nome com a mesma data de nascimento: duplicado mesmo sem CPF.
	_, err = uc.Create(context.Background(), dto.MembroRequest{Nome: "Maria", DataNascimento: "1985-07-01"}, "admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrDuplicado)

	// Mesmo nome com outra data de nascimento: permitido.
	_, err = uc.Create(context.Background(), dto.MembroRequest{Nome: "Maria", DataNascimento: "1992-01-20"}, "admin", "10.0.0.1")
	assert.NoError(t, err)
}

func TestMembroCreate_DataInvalida(t *testing.T) {
	uc, _, _, _ := novoMembroUC(t)

	_, err := uc.Create(context.Background(), dto.MembroRequest{Nome: "João", DataNascimento: "15/03/1990"}, "admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "data fora de AAAA-MM-DD deve ser rejeitada")
}

func TestMembroList_ComBuscaUsaSearch(t *testing.T) {
	uc, _, _, _ := novoMembroUC(t)
	ctx := context.Background()

	for _, nome := range []string{"Ana Clara", "Bruno Souza", "Ana Paula"} {
		_, err := uc.Create(ctx, dto.MembroRequest{Nome: nome}, "admin", "10.0.0.1")
		require.NoError(t, err)
	}

	out, err := uc.List(ctx, "ana", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Total)
	assert.Equal(t, "2 membro(s) encontrado(s)", out.Mensagem)

	umSo, err := uc.List(ctx, "bruno", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "1 membro encontrado", umSo.Mensagem)

	nenhum, err := uc.List(ctx, "zacarias", dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Nenhum membro encontrado", nenhum.Mensagem)

	todos, err := uc.List(ctx, "", dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, todos.Items, 2)
	assert.Equal(t, 3, todos.Page.Total, "total deve refletir o conjunto todo, não a página")
	assert.Empty(t, todos.Mensagem, "listagem sem busca não leva mensagem de contagem")
}

// ──────────────────────────────────────────────────────────────────────────────
// Link público e cadastro de visitantes
// ──────────────────────────────────────────────────────────────────────────────

func TestGerarLink_DesativaOAnterior(t *testing.T) {
	uc, _, links, _ := novoMembroUC(t)
	ctx := context.Background()

	primeiro, err := uc.GerarLink(ctx, "admin", "10.0.0.1")
	require.NoError(t, err)
	require.True(t, primeiro.Ativo)

	segundo, err := uc.GerarLink(ctx, "admin", "10.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, primeiro.Hash, segundo.Hash)

	assert.False(t, links.links[primeiro.ID].Ativo, "link anterior deve ser desativado")
	assert.True(t, links.links[segundo.ID].Ativo)

	ativo, err := uc.LinkAtivo(ctx)
	require.NoError(t, err)
	assert.Equal(t, segundo.ID, ativo.ID)
}

func TestValidarLink(t *testing.T) {
	uc, _, _, _ := novoMembroUC(t)
	ctx := context.Background()

	link, err := uc.GerarLink(ctx, "admin", "10.0.0.1")
	require.NoError(t, err)

	assert.NoError(t, uc.ValidarLink(ctx, link.Hash))
	assert.ErrorIs(t, uc.ValidarLink(ctx, "hash-inexistente"), domain.ErrNaoEncontrado)

	require.NoError(t, uc.DesativarLink(ctx, "admin", "10.0.0.1"))
	assert.ErrorIs(t, uc.ValidarLink(ctx, link.Hash), domain.ErrNaoEncontrado,
		"link desativado deve ser tratado como inexistente")
}

func TestCadastrarVisitante_Sucesso(t *testing.T) {
	uc, repo, _, logs := novoMembroUC(t)
	ctx := context.Background()

	link, err := uc.GerarLink(ctx, "admin", "10.0.0.1")
	require.NoError(t, err)

	out, err := uc.CadastrarVisitante(ctx, link.Hash, dto.VisitanteRequest{
		Nome:     "Carlos Visitante",
		Telefone: "(11) 99999-0000",
	}, "200.10.20.30")
	require.NoError(t, err)

	assert.Equal(t, "Visitante", out.Funcao, "cadastro público sempre entra como visitante")
	assert.Equal(t, "Ativo", out.Status)
	assert.Len(t, repo.membros, 1)
	assert.True(t, logs.contemAcao("Visitante cadastrado"), "o cadastro público vai para a auditoria")
}

func TestCadastrarVisitante_Duplicado(t *testing.T) {
	uc, _, _, _ := novoMembroUC(t)
	ctx := context.Background()

	link, err := uc.GerarLink(ctx, "admin", "10.0.0.1")
	require.NoError(t, err)

	_, err = uc.CadastrarVisitante(ctx, link.Hash, dto.VisitanteRequest{
		Nome: "Carlos", Telefone: "(11) 99999-0000", Email: "carlos@example.com",
	}, "200.10.20.30")
	require.NoError(t, err)

	// Mesmo nome com o mesmo telefone.
	_, err = uc.CadastrarVisitante(ctx, link.Hash, dto.VisitanteRequest{
		Nome: "Carlos", Telefone: "(11) 99999-0000",
	}, "200.10.20.30")
	assert.ErrorIs(t, err, domain.ErrDuplicado)

	// Mesmo e-mail, ainda que nome e telefone mudem.
	_, err = uc.CadastrarVisitante(ctx, link.Hash, dto.VisitanteRequest{
		Nome: "Outro", Telefone: "(11) 98888-7777", Email: "carlos@example.com",
	}, "200.10.20.30")
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

func TestCadastrarVisitante_TelefoneObrigatorio(t *testing.T) {
	uc, repo, _, _ := novoMembroUC(t)
	ctx := context.Background()

	link, err := uc.GerarLink(ctx, "admin", "10.0.0.1")
	require.NoError(t, err)

	_, err = uc.CadastrarVisitante(ctx, link.Hash, dto.VisitanteRequest{Nome: "Carlos"}, "200.10.20.30")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Empty(t, repo.membros, "visitante sem telefone não pode ser gravado")
}

func TestCadastrarVisitante_LinkInvalido(t *testing.T) {
	uc, repo, _, _ := novoMembroUC(t)

	_, err := uc.CadastrarVisitante(context.Background(), "nao-existe", dto.VisitanteRequest{Nome: "Carlos"}, "200.10.20.30")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
	assert.Empty(t, repo.membros)
}

// ──────────────────────────────────────────────────────────────────────────────
// Relatório estatístico
// ──────────────────────────────────────────────────────────────────────────────

func TestMembroRelatorio_Distribuicoes(t *testing.T) {
	uc, _, _, _ := novoMembroUC(t)
	ctx := context.Background()

	entradas := []dto.MembroRequest{
		{Nome: "Ana", Sexo: "Feminino", Status: "Membro", Funcao: "Louvor"},
		{Nome: "Bruno", Sexo: "Masculino", Status: "Membro"},
		{Nome: "Clara", Sexo: "Feminino", Status: "Visitante"},
	}
	for _, in := range entradas {
		_, err := uc.Create(ctx, in, "admin", "10.0.0.1")
		require.NoError(t, err)
	}

	out, err := uc.Relatorio(ctx, repository.FiltroMembros{})
	require.NoError(t, err)

	assert.Equal(t, 3, out.Total)

	porSexo := make(map[string]int)
	for _, d := range out.PorSexo {
		porSexo[d.Rotulo] = d.Total
	}
	assert.Equal(t, 2, porSexo["Feminino"])
	assert.Equal(t, 1, porSexo["Masculino"])

	porStatus := make(map[string]int)
	for _, d := range out.PorStatus {
		porStatus[d.Rotulo] = d.Total
	}
	assert.Equal(t, 2, porStatus["Membro"])
	assert.Equal(t, 1, porStatus["Visitante"])
}

func TestMembroAniversariantes_FiltraPorMes(t *testing.T) {
	uc, _, _, _ := novoMembroUC(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.MembroRequest{Nome: "Ana", DataNascimento: "1990-03-10"}, "admin", "10.0.0.1")
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.MembroRequest{Nome: "Bruno", DataNascimento: "1988-07-22"}, "admin", "10.0.0.1")
	require.NoError(t, err)

	out, err := uc.Aniversariantes(ctx, repository.FiltroAniversariantes{Mes: 3}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Ana", out.Items[0].Nome)
}
