package usecase

import (
	"context"
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

// PatrimonioUseCase casos de uso do inventário patrimonial.
type PatrimonioUseCase struct {
	repo      repository.PatrimonioRepository
	auditoria *auditoria.Registrador
}

// NewPatrimonioUseCase constrói o caso de uso.
func NewPatrimonioUseCase(repo repository.PatrimonioRepository, reg *auditoria.Registrador) *PatrimonioUseCase {
	return &PatrimonioUseCase{repo: repo, auditoria: reg}
}

// Create cadastra um bem com os defaults de categoria e situação.
func (uc *PatrimonioUseCase) Create(ctx context.Context, in dto.PatrimonioRequest, usuario, origem string) (*dto.PatrimonioResponse, error) {
	p, err := patrimonioFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = uuid.New().String()
	p.CriadoEm = time.Now()
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Patrimônio cadastrado: "+p.Nome, entity.ResultadoSucesso, origem)
	return toPatrimonioResponse(p), nil
}

// GetByID devolve um bem, ou nil quando não existe.
func (uc *PatrimonioUseCase) GetByID(ctx context.Context, id string) (*dto.PatrimonioResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return toPatrimonioResponse(p), nil
}

// Update atualiza um bem existente.
func (uc *PatrimonioUseCase) Update(ctx context.Context, id string, in dto.PatrimonioRequest, usuario, origem string) (*dto.PatrimonioResponse, error) {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, nil
	}
	p, err := patrimonioFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = atual.ID
	p.CriadoEm = atual.CriadoEm
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Patrimônio atualizado: "+p.Nome, entity.ResultadoSucesso, origem)
	return toPatrimonioResponse(p), nil
}

// Delete remove um bem.
func (uc *PatrimonioUseCase) Delete(ctx context.Context, id, usuario, origem string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.auditoria.Registrar(ctx, usuario, "Patrimônio removido: "+id, entity.ResultadoSucesso, origem)
	return nil
}

// List pagina bens com o valor total da página somado; com termo vira busca.
func (uc *PatrimonioUseCase) List(ctx context.Context, termo string, page dto.PageRequest) (*dto.PatrimonioListResponse, error) {
	page.DefaultPage()
	var (
		list  []*entity.Patrimonio
		total int
		err   error
	)
	if termo != "" {
		list, total, err = uc.repo.Search(ctx, termo, page.Limit, page.Offset)
	} else {
		list, total, err = uc.repo.List(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	valorTotal := decimal.Zero
	items := make([]dto.PatrimonioResponse, 0, len(list))
	for _, p := range list {
		valorTotal = valorTotal.Add(p.Valor)
		items = append(items, *toPatrimonioResponse(p))
	}
	resp := &dto.PatrimonioListResponse{
		Items:          items,
		ValorTotal:     valorTotal,
		ValorFormatado: relatorio.FormatarMoeda(&valorTotal),
		Page:           dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	if termo != "" {
		resp.Mensagem = dto.MensagemBusca(total, "Nenhum patrimônio encontrado", "1 patrimônio encontrado", "%d patrimônio(s) encontrados")
	}
	return resp, nil
}

func patrimonioFromRequest(in dto.PatrimonioRequest) (*entity.Patrimonio, error) {
	dataEntrada, err := dto.ParseData(in.DataEntrada)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	categoria := in.Categoria
	if categoria == "" {
		categoria = entity.PatrimonioSemCategoria
	}
	situacao := in.Situacao
	if situacao == "" {
		situacao = entity.PatrimonioAtivo
	}
	return &entity.Patrimonio{
		Nome:        in.Nome,
		Descricao:   in.Descricao,
		Categoria:   categoria,
		Numero:      in.Numero,
		Valor:       in.Valor,
		DataEntrada: dataEntrada,
		Situacao:    situacao,
	}, nil
}

func toPatrimonioResponse(p *entity.Patrimonio) *dto.PatrimonioResponse {
	if p == nil {
		return nil
	}
	return &dto.PatrimonioResponse{
		ID:             p.ID,
		Nome:           p.Nome,
		Descricao:      p.Descricao,
		Categoria:      p.Categoria,
		Numero:         p.Numero,
		Valor:          p.Valor,
		ValorFormatado: relatorio.FormatarMoeda(&p.Valor),
		DataEntrada:    dto.FormatData(p.DataEntrada),
		Situacao:       p.Situacao,
	}
}
