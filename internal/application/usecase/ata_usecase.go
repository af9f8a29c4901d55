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

// AtaUseCase casos de uso de atas de reunião.
type AtaUseCase struct {
	repo      repository.AtaRepository
	auditoria *auditoria.Registrador
}

// NewAtaUseCase constrói o caso de uso.
func NewAtaUseCase(repo repository.AtaRepository, reg *auditoria.Registrador) *AtaUseCase {
	return &AtaUseCase{repo: repo, auditoria: reg}
}

// Create registra uma ata. Tipo default "Reunião"; situação inicia em rascunho.
func (uc *AtaUseCase) Create(ctx context.Context, in dto.AtaRequest, usuario, origem string) (*dto.AtaResponse, error) {
	a, err := ataFromRequest(in)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	a.ID = uuid.New().String()
	a.CriadoEm = now
	a.AtualizadoEm = now
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Ata criada: "+a.Titulo, entity.ResultadoSucesso, origem)
	return toAtaResponse(a), nil
}

// GetByID devolve uma ata, ou nil quando não existe.
func (uc *AtaUseCase) GetByID(ctx context.Context, id string) (*dto.AtaResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, nil
	}
	return toAtaResponse(a), nil
}

// Update atualiza uma ata existente.
func (uc *AtaUseCase) Update(ctx context.Context, id string, in dto.AtaRequest, usuario, origem string) (*dto.AtaResponse, error) {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, nil
	}
	a, err := ataFromRequest(in)
	if err != nil {
		return nil, err
	}
	a.ID = atual.ID
	a.CriadoEm = atual.CriadoEm
	a.AtualizadoEm = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Ata atualizada: "+a.Titulo, entity.ResultadoSucesso, origem)
	return toAtaResponse(a), nil
}

// Delete remove uma ata.
func (uc *AtaUseCase) Delete(ctx context.Context, id, usuario, origem string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.auditoria.Registrar(ctx, usuario, "Ata removida: "+id, entity.ResultadoSucesso, origem)
	return nil
}

// List pagina atas; com termo não vazio vira busca.
func (uc *AtaUseCase) List(ctx context.Context, termo string, page dto.PageRequest) (*dto.AtaListResponse, error) {
	page.DefaultPage()
	var (
		list  []*entity.Ata
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
	items := make([]dto.AtaResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toAtaResponse(a))
	}
	resp := &dto.AtaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	if termo != "" {
		resp.Mensagem = dto.MensagemBusca(total, "Nenhuma ata encontrada", "1 ata encontrada", "%d atas encontradas")
	}
	return resp, nil
}

func ataFromRequest(in dto.AtaRequest) (*entity.Ata, error) {
	emissao, err := dto.ParseData(in.DataEmissao)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = "Reunião"
	}
	situacao := in.Situacao
	if situacao == "" {
		situacao = entity.DocRascunho
	}
	return &entity.Ata{
		Titulo:        in.Titulo,
		DataEmissao:   emissao,
		Tipo:          tipo,
		Situacao:      situacao,
		Local:         in.Local,
		Presidente:    in.Presidente,
		Secretario:    in.Secretario,
		Participantes: in.Participantes,
		Pauta:         in.Pauta,
		Deliberacoes:  in.Deliberacoes,
		Observacoes:   in.Observacoes,
	}, nil
}

func toAtaResponse(a *entity.Ata) *dto.AtaResponse {
	if a == nil {
		return nil
	}
	return &dto.AtaResponse{
		ID:            a.ID,
		Titulo:        a.Titulo,
		DataEmissao:   dto.FormatData(a.DataEmissao),
		Tipo:          a.Tipo,
		Situacao:      a.Situacao,
		Local:         a.Local,
		Presidente:    a.Presidente,
		Secretario:    a.Secretario,
		Participantes: a.Participantes,
		Pauta:         a.Pauta,
		Deliberacoes:  a.Deliberacoes,
		Observacoes:   a.Observacoes,
	}
}
