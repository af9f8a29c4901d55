package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

// CartaPDF porto de geração do PDF de cartas.
type CartaPDF interface {
	Carta(ctx context.Context, c *entity.Carta) ([]byte, error)
}

// CartaUseCase casos de uso de cartas (recomendação, mudança).
type CartaUseCase struct {
	repo       repository.CartaRepository
	membroRepo repository.MembroRepository
	pdf        CartaPDF
	auditoria  *auditoria.Registrador
}

// NewCartaUseCase constrói o caso de uso.
func NewCartaUseCase(
	repo repository.CartaRepository,
	membroRepo repository.MembroRepository,
	pdf CartaPDF,
	reg *auditoria.Registrador,
) *CartaUseCase {
	return &CartaUseCase{repo: repo, membroRepo: membroRepo, pdf: pdf, auditoria: reg}
}

// Create emite uma carta. Se vier vinculada a um membro, o vínculo é validado.
func (uc *CartaUseCase) Create(ctx context.Context, in dto.CartaRequest, usuario, origem string) (*dto.CartaResponse, error) {
	c, err := uc.cartaFromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	c.ID = uuid.New().String()
	c.CriadoEm = now
	c.AtualizadoEm = now
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Carta emitida: "+c.Titulo, entity.ResultadoSucesso, origem)
	return toCartaResponse(c), nil
}

// GetByID devolve uma carta, ou nil quando não existe.
func (uc *CartaUseCase) GetByID(ctx context.Context, id string) (*dto.CartaResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCartaResponse(c), nil
}

// Update atualiza uma carta existente.
func (uc *CartaUseCase) Update(ctx context.Context, id string, in dto.CartaRequest, usuario, origem string) (*dto.CartaResponse, error) {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, nil
	}
	c, err := uc.cartaFromRequest(ctx, in)
	if err != nil {
		return nil, err
	}
	c.ID = atual.ID
	c.CriadoEm = atual.CriadoEm
	c.AtualizadoEm = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Carta atualizada: "+c.Titulo, entity.ResultadoSucesso, origem)
	return toCartaResponse(c), nil
}

// Delete remove uma carta.
func (uc *CartaUseCase) Delete(ctx context.Context, id, usuario, origem string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.auditoria.Registrar(ctx, usuario, "Carta removida: "+id, entity.ResultadoSucesso, origem)
	return nil
}

// List pagina cartas; com termo não vazio vira busca.
func (uc *CartaUseCase) List(ctx context.Context, termo string, page dto.PageRequest) (*dto.CartaListResponse, error) {
	page.DefaultPage()
	var (
		list  []*entity.Carta
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
	items := make([]dto.CartaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCartaResponse(c))
	}
	resp := &dto.CartaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	if termo != "" {
		resp.Mensagem = dto.MensagemBusca(total, "Nenhuma carta encontrada", "1 carta encontrada", "%d cartas encontradas")
	}
	return resp, nil
}

// PDF gera o PDF de uma carta.
func (uc *CartaUseCase) PDF(ctx context.Context, id string) ([]byte, string, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if c == nil {
		return nil, "", domain.ErrNaoEncontrado
	}
	b, err := uc.pdf.Carta(ctx, c)
	if err != nil {
		return nil, "", err
	}
	return b, "carta_" + nomeArquivo(c.Titulo) + ".pdf", nil
}

func (uc *CartaUseCase) cartaFromRequest(ctx context.Context, in dto.CartaRequest) (*entity.Carta, error) {
	emissao, err := dto.ParseData(in.DataEmissao)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	if in.MembroID != nil && *in.MembroID != "" {
		m, err := uc.membroRepo.GetByID(ctx, *in.MembroID)
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, domain.ErrNaoEncontrado
		}
	} else {
		in.MembroID = nil
	}
	situacao := in.Situacao
	if situacao == "" {
		situacao = entity.DocRascunho
	}
	return &entity.Carta{
		Titulo:       in.Titulo,
		DataEmissao:  emissao,
		Remetente:    in.Remetente,
		Destinatario: in.Destinatario,
		Cidade:       in.Cidade,
		Corpo:        in.Corpo,
		Situacao:     situacao,
		MembroID:     in.MembroID,
	}, nil
}

func toCartaResponse(c *entity.Carta) *dto.CartaResponse {
	if c == nil {
		return nil
	}
	return &dto.CartaResponse{
		ID:           c.ID,
		Titulo:       c.Titulo,
		DataEmissao:  dto.FormatData(c.DataEmissao),
		Remetente:    c.Remetente,
		Destinatario: c.Destinatario,
		Cidade:       c.Cidade,
		Corpo:        c.Corpo,
		Situacao:     c.Situacao,
		MembroID:     c.MembroID,
	}
}
