package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/application/usecase"
	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

func novoFinanceiroUC(t *testing.T) (*usecase.FinanceiroUseCase, *fakeFinanceiroRepo, *fakeLogRepo) {
	t.Helper()
	repo := novoFakeFinanceiroRepo()
	logs := &fakeLogRepo{}
	return usecase.NewFinanceiroUseCase(repo, novoRegistrador(logs)), repo, logs
}

func lancamento(data, tipo, categoria, valor string) dto.FinanceiroRequest {
	return dto.FinanceiroRequest{
		Data:      data,
		Tipo:      tipo,
		Categoria: categoria,
		Valor:     decimal.RequireFromString(valor),
	}
}

func TestFinanceiroCreate(t *testing.T) {
	uc, repo, logs := novoFinanceiroUC(t)

	out, err := uc.Create(context.Background(), lancamento("2026-01-10", entity.TipoEntrada, "Dízimo", "150.00"), "admin", "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, entity.TipoEntrada, out.Tipo)
	assert.Equal(t, "R$ 150,00", out.ValorFormatado)
	assert.Len(t, repo.lancamentos, 1)
	assert.True(t, logs.contemAcao("Lançamento registrado"))
}

func TestFinanceiroCreate_TipoInvalido(t *testing.T) {
	uc, repo, _ := novoFinanceiroUC(t)

	_, err := uc.Create(context.Background(), lancamento("2026-01-10", "Transferência", "", "10.00"), "admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrTipoFinanceiroInvalido)
	assert.Empty(t, repo.lancamentos)
}

func TestFinanceiroCreate_DataInvalida(t *testing.T) {
	uc, _, _ := novoFinanceiroUC(t)

	_, err := uc.Create(context.Background(), lancamento("10/01/2026", entity.TipoEntrada, "", "10.00"), "admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestFinanceiroListPorTipo(t *testing.T) {
	uc, _, _ := novoFinanceiroUC(t)
	ctx := context.Background()

	for _, in := range []dto.FinanceiroRequest{
		lancamento("2026-01-05", entity.TipoEntrada, "Dízimo", "100.00"),
		lancamento("2026-01-12", entity.TipoEntrada, "Oferta", "50.50"),
		lancamento("2026-01-20", entity.TipoSaida, "Energia", "80.00"),
	} {
		_, err := uc.Create(ctx, in, "admin", "10.0.0.1")
		require.NoError(t, err)
	}

	out, err := uc.ListPorTipo(ctx, entity.TipoEntrada)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("150.50")))
	assert.Equal(t, "R$ 150,50", out.TotalFormatado)

	_, err = uc.ListPorTipo(ctx, "qualquer")
	assert.ErrorIs(t, err, domain.ErrTipoFinanceiroInvalido)
}

func TestFinanceiroRelatorio(t *testing.T) {
	uc, _, _ := novoFinanceiroUC(t)
	ctx := context.Background()

	for _, in := range []dto.FinanceiroRequest{
		lancamento("2026-02-01", entity.TipoEntrada, "Dízimo", "300.00"),
		lancamento("2026-02-10", entity.TipoEntrada, "Oferta", "120.00"),
		lancamento("2026-02-15", entity.TipoSaida, "Aluguel", "250.00"),
		lancamento("2026-03-01", entity.TipoEntrada, "Dízimo", "500.00"),
	} {
		_, err := uc.Create(ctx, in, "admin", "10.0.0.1")
		require.NoError(t, err)
	}

	out, err := uc.Relatorio(ctx, dto.FiltroFinanceiroRequest{Inicio: "2026-02-01", Fim: "2026-02-28"})
	require.NoError(t, err)

	assert.Len(t, out.Items, 3, "lançamento de março fica fora do período")
	assert.True(t, out.TotalEntradas.Equal(decimal.RequireFromString("420.00")))
	assert.True(t, out.TotalSaidas.Equal(decimal.RequireFromString("250.00")))
	assert.True(t, out.Saldo.Equal(decimal.RequireFromString("170.00")))
	assert.Equal(t, "R$ 170,00", out.SaldoFormatado)
	assert.True(t, out.PorCategoria["Dízimo"].Equal(decimal.RequireFromString("300.00")))
}

func TestFinanceiroExportarCSV(t *testing.T) {
	uc, _, logs := novoFinanceiroUC(t)
	ctx := context.Background()

	conciliado := true
	in := lancamento("2026-02-01", entity.TipoEntrada, "Dízimo", "300.00")
	in.Descricao = "Dízimo de fevereiro"
	in.Conciliado = &conciliado
	_, err := uc.Create(ctx, in, "admin", "10.0.0.1")
	require.NoError(t, err)

	conteudo, nome, err := uc.ExportarCSV(ctx, dto.FiltroFinanceiroRequest{}, "admin", "10.0.0.1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(nome, "financeiro_"))
	assert.True(t, strings.HasSuffix(nome, ".csv"))

	linhas := strings.Split(strings.TrimSpace(string(conteudo)), "\n")
	require.Len(t, linhas, 2)
	assert.Equal(t, "Data;Tipo;Categoria;Conta;Descrição;Valor;CPF Membro;CNPJ Fornecedor;Conciliado", linhas[0])
	assert.Equal(t, "01-02-2026;Entrada;Dízimo;;Dízimo de fevereiro;300.00;;;Sim", linhas[1])
	assert.True(t, logs.contemAcao("Exportação CSV"))
}

func TestFinanceiroAnexarComprovante(t *testing.T) {
	uc, repo, _ := novoFinanceiroUC(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, lancamento("2026-02-01", entity.TipoSaida, "Energia", "80.00"), "admin", "10.0.0.1")
	require.NoError(t, err)

	err = uc.AnexarComprovante(ctx, out.ID, "uploads/comprovantes/abc.pdf", "admin", "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "uploads/comprovantes/abc.pdf", repo.lancamentos[out.ID].Comprovante)

	err = uc.AnexarComprovante(ctx, "nao-existe", "x.pdf", "admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestFinanceiroDelete_RemoveComprovanteDoDisco(t *testing.T) {
	uc, repo, _ := novoFinanceiroUC(t)
	ctx := context.Background()

	out, err := uc.Create(ctx, lancamento("2026-02-01", entity.TipoSaida, "Energia", "80.00"), "admin", "10.0.0.1")
	require.NoError(t, err)

	comprovante := filepath.Join(t.TempDir(), "conta.pdf")
	require.NoError(t, os.WriteFile(comprovante, []byte("pdf"), 0o644))
	repo.lancamentos[out.ID].Comprovante = comprovante

	require.NoError(t, uc.Delete(ctx, out.ID, "admin", "10.0.0.1"))

	assert.Empty(t, repo.lancamentos)
	_, err = os.Stat(comprovante)
	assert.True(t, os.IsNotExist(err), "o comprovante deve sair do disco junto com o lançamento")

	err = uc.Delete(ctx, "nao-existe", "admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestFinanceiroComprovanteAvulso(t *testing.T) {
	uc, repo, logs := novoFinanceiroUC(t)
	ctx := context.Background()

	out, err := uc.CadastrarComprovante(ctx, dto.ComprovanteRequest{Data: "2026-03-15", Descricao: "Nota da construção"}, "uploads/comprovantes/n1.pdf", "admin", "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, entity.TipoComprovante, out.Tipo)
	assert.Equal(t, "Upload", out.Categoria)
	assert.True(t, decimal.Zero.Equal(repo.lancamentos[out.ID].Valor), "comprovante avulso não deve afetar o saldo")
	assert.True(t, logs.contemAcao("Enviou comprovante"))

	_, err = uc.CadastrarComprovante(ctx, dto.ComprovanteRequest{Data: "15/03/2026"}, "x.pdf", "admin", "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestFinanceiroListComprovantes_AgrupaPorMes(t *testing.T) {
	uc, _, _ := novoFinanceiroUC(t)
	ctx := context.Background()

	for _, c := range []struct{ data, caminho string }{
		{"2026-03-15", "uploads/comprovantes/a.pdf"},
		{"2026-03-02", "uploads/comprovantes/b.png"},
		{"2026-02-20", "uploads/comprovantes/c.jpg"},
	} {
		_, err := uc.CadastrarComprovante(ctx, dto.ComprovanteRequest{Data: c.data}, c.caminho, "admin", "10.0.0.1")
		require.NoError(t, err)
	}
	// Lançamento comum não entra na listagem de comprovantes.
	_, err := uc.Create(ctx, lancamento("2026-03-10", entity.TipoEntrada, "Dízimo", "50.00"), "admin", "10.0.0.1")
	require.NoError(t, err)

	out, err := uc.ListComprovantes(ctx)
	require.NoError(t, err)

	require.Len(t, out.PorMes, 2)
	require.Len(t, out.PorMes["03-2026"], 2)
	assert.Equal(t, "uploads/comprovantes/a.pdf", out.PorMes["03-2026"][0].Comprovante, "mês deve vir do mais recente para o mais antigo")
	require.Len(t, out.PorMes["02-2026"], 1)
	assert.Equal(t, "uploads/comprovantes/c.jpg", out.PorMes["02-2026"][0].Comprovante)
}
