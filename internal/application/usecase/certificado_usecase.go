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

// CertificadoUseCase casos de uso de certificados de participação.
type CertificadoUseCase struct {
	repo      repository.CertificadoRepository
	auditoria *auditoria.Registrador
}

// NewCertificadoUseCase constrói o caso de uso.
func NewCertificadoUseCase(repo repository.CertificadoRepository, reg *auditoria.Registrador) *CertificadoUseCase {
	return &CertificadoUseCase{repo: repo, auditoria: reg}
}

// Create emite um certificado. Situação inicia em "enviado".
func (uc *CertificadoUseCase) Create(ctx context.Context, in dto.CertificadoRequest, usuario, origem string) (*dto.CertificadoResponse, error) {
	c, err := certificadoFromRequest(in)
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
	uc.auditoria.Registrar(ctx, usuario, "Certificado emitido: "+c.Titulo, entity.ResultadoSucesso, origem)
	return toCertificadoResponse(c), nil
}

// GetByID devolve um certificado, ou nil quando não existe.
func (uc *CertificadoUseCase) GetByID(ctx context.Context, id string) (*dto.CertificadoResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCertificadoResponse(c), nil
}

// Update atualiza um certificado existente.
func (uc *CertificadoUseCase) Update(ctx context.Context, id string, in dto.CertificadoRequest, usuario, origem string) (*dto.CertificadoResponse, error) {
	atual, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, nil
	}
	c, err := certificadoFromRequest(in)
	if err != nil {
		return nil, err
	}
	c.ID = atual.ID
	c.CriadoEm = atual.CriadoEm
	c.AtualizadoEm = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Certificado atualizado: "+c.Titulo, entity.ResultadoSucesso, origem)
	return toCertificadoResponse(c), nil
}

// Delete remove um certificado.
func (uc *CertificadoUseCase) Delete(ctx context.Context, id, usuario, origem string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.auditoria.Registrar(ctx, usuario, "Certificado removido: "+id, entity.ResultadoSucesso, origem)
	return nil
}

// List pagina certificados; com termo não vazio vira busca.
func (uc *CertificadoUseCase) List(ctx context.Context, termo string, page dto.PageRequest) (*dto.CertificadoListResponse, error) {
	page.DefaultPage()
	var (
		list  []*entity.Certificado
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
	items := make([]dto.CertificadoResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCertificadoResponse(c))
	}
	resp := &dto.CertificadoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	if termo != "" {
		resp.Mensagem = dto.MensagemBusca(total, "Nenhum certificado encontrado", "1 certificado encontrado", "%d certificados encontrados")
	}
	return resp, nil
}

func certificadoFromRequest(in dto.CertificadoRequest) (*entity.Certificado, error) {
	emissao, err := dto.ParseData(in.DataEmissao)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	situacao := in.Situacao
	if situacao == "" {
		situacao = entity.DocEnviado
	}
	return &entity.Certificado{
		Titulo:      in.Titulo,
		DataEmissao: emissao,
		CriadoPor:   in.CriadoPor,
		Evento:      in.Evento,
		Corpo:       in.Corpo,
		Situacao:    situacao,
	}, nil
}

func toCertificadoResponse(c *entity.Certificado) *dto.CertificadoResponse {
	if c == nil {
		return nil
	}
	return &dto.CertificadoResponse{
		ID:          c.ID,
		Titulo:      c.Titulo,
		DataEmissao: dto.FormatData(c.DataEmissao),
		CriadoPor:   c.CriadoPor,
		Evento:      c.Evento,
		Corpo:       c.Corpo,
		Situacao:    c.Situacao,
	}
}
