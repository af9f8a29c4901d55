package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

// EventoMailer porto de envio de e-mail usado pelos lembretes.
type EventoMailer interface {
	Enviar(ctx context.Context, para, assunto, corpoHTML string) error
}

// janelaLembretes alcance dos lembretes de eventos próximos.
const janelaLembretes = 3 * 24 * time.Hour

// EventoUseCase casos de uso de eventos: agenda, página pública por token
// e lembretes por e-mail.
type EventoUseCase struct {
	repo        repository.EventoRepository
	usuarioRepo repository.UsuarioRepository
	membroRepo  repository.MembroRepository
	mailer      EventoMailer
	auditoria   *auditoria.Registrador
}

// NewEventoUseCase constrói o caso de uso.
func NewEventoUseCase(
	repo repository.EventoRepository,
	usuarioRepo repository.UsuarioRepository,
	membroRepo repository.MembroRepository,
	mailer EventoMailer,
	reg *auditoria.Registrador,
) *EventoUseCase {
	return &EventoUseCase{repo: repo, usuarioRepo: usuarioRepo, membroRepo: membroRepo, mailer: mailer, auditoria: reg}
}

// Create agenda um evento e gera seu token público. Em caso de colisão de
// token (única entre todos os eventos), gera outro e tenta de novo.
func (uc *EventoUseCase) Create(ctx context.Context, in dto.EventoRequest, usuario, origem string) (*dto.EventoResponse, error) {
	if in.DataFim.Before(in.DataInicio) {
		return nil, domain.ErrEntradaInvalida
	}
	status := in.Status
	if status == "" {
		status = entity.EventoPlanejado
	}
	e := &entity.Evento{
		ID:          uuid.New().String(),
		Titulo:      in.Titulo,
		Descricao:   in.Descricao,
		Tipo:        in.Tipo,
		DataInicio:  in.DataInicio,
		DataFim:     in.DataFim,
		Local:       in.Local,
		Organizador: in.Organizador,
		Status:      status,
		CriadoEm:    time.Now(),
	}
	e.AtualizarExpiracaoToken(time.Now())

	for tentativa := 0; tentativa < 3; tentativa++ {
		e.PublicToken = entity.GerarTokenPublico()
		err := uc.repo.Create(ctx, e)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicado) && tentativa < 2 {
			continue
		}
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Evento criado: "+e.Titulo, entity.ResultadoSucesso, origem)
	return toEventoResponse(e), nil
}

// GetByID devolve um evento, ou nil quando não existe.
func (uc *EventoUseCase) GetByID(ctx context.Context, id string) (*dto.EventoResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEventoResponse(e), nil
}

// Update atualiza um evento e realinha a expiração do token ao novo ciclo
// de vida: concluído ou cancelado expiram na hora.
func (uc *EventoUseCase) Update(ctx context.Context, id string, in dto.EventoRequest, usuario, origem string) (*dto.EventoResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if in.DataFim.Before(in.DataInicio) {
		return nil, domain.ErrEntradaInvalida
	}
	e.Titulo = in.Titulo
	e.Descricao = in.Descricao
	e.Tipo = in.Tipo
	e.DataInicio = in.DataInicio
	e.DataFim = in.DataFim
	e.Local = in.Local
	e.Organizador = in.Organizador
	if in.Status != "" {
		e.Status = in.Status
	}
	e.AtualizarExpiracaoToken(time.Now())
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, usuario, "Evento atualizado: "+e.Titulo, entity.ResultadoSucesso, origem)
	return toEventoResponse(e), nil
}

// Delete remove um evento.
func (uc *EventoUseCase) Delete(ctx context.Context, id, usuario, origem string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.auditoria.Registrar(ctx, usuario, "Evento removido: "+id, entity.ResultadoSucesso, origem)
	return nil
}

// List pagina eventos; com termo não vazio vira busca.
func (uc *EventoUseCase) List(ctx context.Context, termo string, page dto.PageRequest) (*dto.EventoListResponse, error) {
	page.DefaultPage()
	var (
		list  []*entity.Evento
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
	items := make([]dto.EventoResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEventoResponse(e))
	}
	resp := &dto.EventoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	if termo != "" {
		resp.Mensagem = dto.MensagemBusca(total, "Nenhum evento encontrado", "1 evento encontrado", "%d evento(s) encontrado(s)")
	}
	return resp, nil
}

// VisualizacaoPublica resolve a página pública de um evento.
// Token inexistente: ErrNaoEncontrado. Token expirado: ErrTokenExpirado
// (o handler mapeia para um 410 com corpo próprio).
func (uc *EventoUseCase) VisualizacaoPublica(ctx context.Context, token string) (*dto.EventoPublicoResponse, error) {
	e, err := uc.repo.GetByPublicToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if e.TokenExpirado(time.Now()) {
		return nil, domain.ErrTokenExpirado
	}
	return &dto.EventoPublicoResponse{
		Titulo:      e.Titulo,
		Descricao:   e.Descricao,
		Tipo:        e.Tipo,
		DataInicio:  e.DataInicio,
		DataFim:     e.DataFim,
		Local:       e.Local,
		Organizador: e.Organizador,
		Status:      e.Status,
	}, nil
}

// EnviarLembretes envia um lembrete por evento que começa nos próximos
// três dias. Destinatários: e-mails cadastrados dos membros mais o
// primeiro administrador. O envio é síncrono, dentro da requisição.
func (uc *EventoUseCase) EnviarLembretes(ctx context.Context, usuario, origem string) (*dto.LembretesResponse, error) {
	agora := time.Now()
	eventos, err := uc.repo.Proximos(ctx, agora, agora.Add(janelaLembretes))
	if err != nil {
		return nil, err
	}
	if len(eventos) == 0 {
		return &dto.LembretesResponse{Enviados: 0}, nil
	}

	destinos, err := uc.membroRepo.Emails(ctx)
	if err != nil {
		return nil, err
	}
	admin, err := uc.usuarioRepo.FirstAdminEmail(ctx)
	if err != nil {
		return nil, err
	}
	if admin != "" {
		destinos = append(destinos, admin)
	}
	if len(destinos) == 0 {
		return nil, domain.ErrUsuarioNaoEncontrado
	}

	titulos := make([]string, 0, len(eventos))
	for _, e := range eventos {
		assunto := fmt.Sprintf("Lembrete: %s está chegando!", e.Titulo)
		corpo := fmt.Sprintf(
			"<p><strong>%s</strong></p><p>Início: %s<br>Local: %s</p>",
			e.Titulo, e.DataInicio.Format("02/01/2006 15:04"), e.Local)
		for _, destino := range destinos {
			if err := uc.mailer.Enviar(ctx, destino, assunto, corpo); err != nil {
				return nil, err
			}
		}
		uc.auditoria.Registrar(ctx, usuario, "Enviou lembrete do evento: "+e.Titulo, entity.ResultadoSucesso, origem)
		titulos = append(titulos, e.Titulo)
	}
	return &dto.LembretesResponse{Enviados: len(eventos), Eventos: titulos}, nil
}

func toEventoResponse(e *entity.Evento) *dto.EventoResponse {
	if e == nil {
		return nil
	}
	return &dto.EventoResponse{
		ID:            e.ID,
		Titulo:        e.Titulo,
		Descricao:     e.Descricao,
		Tipo:          e.Tipo,
		DataInicio:    e.DataInicio,
		DataFim:       e.DataFim,
		Local:         e.Local,
		Organizador:   e.Organizador,
		Status:        e.Status,
		PublicToken:   e.PublicToken,
		TokenExpiraEm: e.TokenExpiraEm,
	}
}
