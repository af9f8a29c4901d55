package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/relatorio"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

// FinanceiroUseCase casos de uso do livro caixa: lançamentos, relatórios
// filtrados, anexos de comprovante e exportação CSV.
type FinanceiroUseCase struct {
	repo      repository.FinanceiroRepository
	auditoria *auditoria.Registrador
}

// NewFinanceiroUseCase constrói o caso de uso.
func NewFinanceiroUseCase(repo repository.FinanceiroRepository, reg *auditoria.Registrador) *FinanceiroUseCase {
	return &FinanceiroUseCase{repo: repo, auditoria: reg}
}

// Create registra um lançamento. A direção é validada na construção da
// entidade: qualquer valor fora de Entrada/Saída é rejeitado.
func (uc *FinanceiroUseCase) Create(ctx context.Context, in dto.FinanceiroRequest, usuario, origem string) (*dto.FinanceiroResponse, error) {
	data, err := dto.ParseData(in.Data)
	if err != nil || data == nil {
		return nil, domain.ErrEntradaInvalida
	}
	f, err := entity.NovoFinanceiro(in.Tipo, in.Categoria, in.Valor, *data)
	if err != nil {
		return nil, err
	}
	f.ID = uuid.New().String()
	f.Descricao = in.Descricao
	f.CPFMembro = in.CPFMembro
	f.CNPJFornecedor = in.CNPJFornecedor
	if in.Conciliado != nil {
		f.Conciliado = *in.Conciliado
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Lançamento registrado: "+f.Tipo+" "+relatorio.FormatarMoeda(&f.Valor), entity.ResultadoSucesso, origem)
	return toFinanceiroResponse(f), nil
}

// GetByID devolve um lançamento, ou nil quando não existe.
func (uc *FinanceiroUseCase) GetByID(ctx context.Context, id string) (*dto.FinanceiroResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return toFinanceiroResponse(f), nil
}

// Update atualiza um lançamento existente, revalidando a direção.
func (uc *FinanceiroUseCase) Update(ctx context.Context, id string, in dto.FinanceiroRequest, usuario, origem string) (*dto.FinanceiroResponse, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	if in.Tipo != entity.TipoEntrada && in.Tipo != entity.TipoSaida {
		return nil, domain.ErrTipoFinanceiroInvalido
	}
	data, err := dto.ParseData(in.Data)
	if err != nil || data == nil {
		return nil, domain.ErrEntradaInvalida
	}
	f.Data = *data
	f.Valor = in.Valor
	f.Tipo = in.Tipo
	f.Categoria = in.Categoria
	f.Descricao = in.Descricao
	f.CPFMembro = in.CPFMembro
	f.CNPJFornecedor = in.CNPJFornecedor
	if in.Conciliado != nil {
		f.Conciliado = *in.Conciliado
	}
	if err := uc.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Lançamento atualizado: "+f.ID, entity.ResultadoSucesso, origem)
	return toFinanceiroResponse(f), nil
}

// Delete remove um lançamento.
func (uc *FinanceiroUseCase) Delete(ctx context.Context, id, usuario, origem string) error {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNaoEncontrado
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	removerArquivo(f.Comprovante)
	uc.auditoria.Registrar(ctx, usuario, "Lançamento removido: "+id, entity.ResultadoSucesso, origem)
	return nil
}

// AnexarComprovante grava o caminho do comprovante no lançamento.
func (uc *FinanceiroUseCase) AnexarComprovante(ctx context.Context, id, caminho, usuario, origem string) error {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNaoEncontrado
	}
	f.Comprovante = caminho
	if err := uc.repo.Update(ctx, f); err != nil {
		return err
	}
	uc.auditoria.Registrar(ctx, usuario, "Comprovante anexado ao lançamento "+id, entity.ResultadoSucesso, origem)
	return nil
}

// CadastrarComprovante registra um comprovante avulso, sem lançamento
// associado. Entra no livro com valor zero para não afetar o saldo.
func (uc *FinanceiroUseCase) CadastrarComprovante(ctx context.Context, in dto.ComprovanteRequest, caminho, usuario, origem string) (*dto.FinanceiroResponse, error) {
	data, err := dto.ParseData(in.Data)
	if err != nil || data == nil {
		return nil, domain.ErrEntradaInvalida
	}
	f := &entity.Financeiro{
		ID:          uuid.New().String(),
		Tipo:        entity.TipoComprovante,
		Categoria:   "Upload",
		Valor:       decimal.Zero,
		Data:        *data,
		Descricao:   in.Descricao,
		Comprovante: caminho,
		CriadoEm:    time.Now(),
	}
	if err := uc.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Enviou comprovante: "+caminho, entity.ResultadoSucesso, origem)
	return toFinanceiroResponse(f), nil
}

// ListComprovantes devolve os comprovantes avulsos agrupados por mês.
func (uc *FinanceiroUseCase) ListComprovantes(ctx context.Context) (*dto.ComprovantesResponse, error) {
	list, err := uc.repo.ListByTipo(ctx, entity.TipoComprovante)
	if err != nil {
		return nil, err
	}
	porMes := make(map[string][]dto.FinanceiroResponse)
	for _, f := range list {
		mes := f.Data.Format("01-2006")
		porMes[mes] = append(porMes[mes], *toFinanceiroResponse(f))
	}
	return &dto.ComprovantesResponse{PorMes: porMes}, nil
}

// ListPorTipo lista os lançamentos de uma direção com o total somado.
func (uc *FinanceiroUseCase) ListPorTipo(ctx context.Context, tipo string) (*dto.FinanceiroListResponse, error) {
	if tipo != entity.TipoEntrada && tipo != entity.TipoSaida {
		return nil, domain.ErrTipoFinanceiroInvalido
	}
	list, err := uc.repo.ListByTipo(ctx, tipo)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.TotalPorTipo(ctx, tipo)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FinanceiroResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFinanceiroResponse(f))
	}
	return &dto.FinanceiroListResponse{
		Items:          items,
		Total:          total,
		TotalFormatado: relatorio.FormatarMoeda(&total),
	}, nil
}

// Relatorio monta o relatório filtrado com totais por direção e categoria.
func (uc *FinanceiroUseCase) Relatorio(ctx context.Context, in dto.FiltroFinanceiroRequest) (*dto.RelatorioFinanceiroResponse, error) {
	filtro, err := filtroFromRequest(in)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListFiltered(ctx, filtro)
	if err != nil {
		return nil, err
	}
	porCategoria, err := uc.repo.PorCategoria(ctx, filtro)
	if err != nil {
		return nil, err
	}

	entradas, saidas := decimal.Zero, decimal.Zero
	items := make([]dto.FinanceiroResponse, 0, len(list))
	for _, f := range list {
		switch f.Tipo {
		case entity.TipoEntrada:
			entradas = entradas.Add(f.Valor)
		case entity.TipoSaida:
			saidas = saidas.Add(f.Valor)
		}
		items = append(items, *toFinanceiroResponse(f))
	}
	saldo := entradas.Sub(saidas)
	return &dto.RelatorioFinanceiroResponse{
		Items:          items,
		TotalEntradas:  entradas,
		TotalSaidas:    saidas,
		Saldo:          saldo,
		SaldoFormatado: relatorio.FormatarMoeda(&saldo),
		PorCategoria:   porCategoria,
	}, nil
}

// ExportarCSV gera o CSV dos lançamentos filtrados: separador ponto e
// vírgula, datas dd-mm-aaaa, valores com duas casas, conciliado Sim/Não.
func (uc *FinanceiroUseCase) ExportarCSV(ctx context.Context, in dto.FiltroFinanceiroRequest, usuario, origem string) ([]byte, string, error) {
	filtro, err := filtroFromRequest(in)
	if err != nil {
		return nil, "", err
	}
	list, err := uc.repo.ListFiltered(ctx, filtro)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	header := []string{"Data", "Tipo", "Categoria", "Conta", "Descrição", "Valor", "CPF Membro", "CNPJ Fornecedor", "Conciliado"}
	if err := w.Write(header); err != nil {
		return nil, "", err
	}
	for _, f := range list {
		conciliado := "Não"
		if f.Conciliado {
			conciliado = "Sim"
		}
		rec := []string{
			f.Data.Format("02-01-2006"),
			f.Tipo,
			f.Categoria,
			f.Conta,
			f.Descricao,
			f.Valor.StringFixed(2),
			f.CPFMembro,
			f.CNPJFornecedor,
			conciliado,
		}
		if err := w.Write(rec); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	uc.auditoria.Registrar(ctx, usuario, "Exportação CSV do financeiro", entity.ResultadoSucesso, origem)
	nome := "financeiro_" + time.Now().Format("02-01-2006") + ".csv"
	return buf.Bytes(), nome, nil
}

func filtroFromRequest(in dto.FiltroFinanceiroRequest) (repository.FiltroFinanceiro, error) {
	inicio, err := dto.ParseData(in.Inicio)
	if err != nil {
		return repository.FiltroFinanceiro{}, domain.ErrEntradaInvalida
	}
	fim, err := dto.ParseData(in.Fim)
	if err != nil {
		return repository.FiltroFinanceiro{}, domain.ErrEntradaInvalida
	}
	if in.Tipo != "" && in.Tipo != entity.TipoEntrada && in.Tipo != entity.TipoSaida {
		return repository.FiltroFinanceiro{}, domain.ErrTipoFinanceiroInvalido
	}
	return repository.FiltroFinanceiro{
		Inicio:    inicio,
		Fim:       fim,
		Tipo:      in.Tipo,
		Categoria: in.Categoria,
	}, nil
}

func toFinanceiroResponse(f *entity.Financeiro) *dto.FinanceiroResponse {
	if f == nil {
		return nil
	}
	return &dto.FinanceiroResponse{
		ID:             f.ID,
		Data:           f.Data.Format("2006-01-02"),
		Valor:          f.Valor,
		ValorFormatado: relatorio.FormatarMoeda(&f.Valor),
		Tipo:           f.Tipo,
		Categoria:      f.Categoria,
		Conta:          f.Conta,
		Descricao:      f.Descricao,
		CPFMembro:      f.CPFMembro,
		CNPJFornecedor: f.CNPJFornecedor,
		Conciliado:     f.Conciliado,
		Comprovante:    f.Comprovante,
	}
}
