package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/application/usecase"
)

// EventoHandler agenda de eventos, visualização pública por token e lembretes.
type EventoHandler struct {
	uc *usecase.EventoUseCase
}

// NewEventoHandler constrói o handler.
func NewEventoHandler(uc *usecase.EventoUseCase) *EventoHandler {
	return &EventoHandler{uc: uc}
}

// Create godoc
// @Summary      Criar evento
// @Tags         eventos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EventoRequest  true  "Dados do evento"
// @Success      201   {object}  dto.EventoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/eventos [post]
func (h *EventoHandler) Create(c *fiber.Ctx) error {
	var in dto.EventoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if in.Titulo == "" {
		return validacao(c, "titulo é obrigatório")
	}
	out, err := h.uc.Create(c.Context(), in, GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar eventos (paginado, busca opcional)
// @Tags         eventos
// @Security     Bearer
// @Produce      json
// @Param        busca   query  string  false  "Título, local ou organizador"
// @Param        limit   query  int     false  "Tamanho da página"
// @Param        offset  query  int     false  "Deslocamento"
// @Success      200  {object}  dto.EventoListResponse
// @Router       /api/eventos [get]
func (h *EventoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return validacao(c, "parâmetros de paginação inválidos")
	}
	out, err := h.uc.List(c.Context(), c.Query("busca"), page)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter evento por ID
// @Tags         eventos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do evento"
// @Success      200  {object}  dto.EventoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/eventos/{id} [get]
func (h *EventoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "evento não encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar evento
// @Tags         eventos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID do evento"
// @Param        body  body  dto.EventoRequest  true  "Dados do evento"
// @Success      200   {object}  dto.EventoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/eventos/{id} [put]
func (h *EventoHandler) Update(c *fiber.Ctx) error {
	var in dto.EventoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "evento não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir evento
// @Tags         eventos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do evento"
// @Success      200  {object}  dto.MensagemResponse
// @Router       /api/eventos/{id} [delete]
func (h *EventoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserNome(c), Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "evento excluído"})
}

// VisualizacaoPublica godoc
// @Summary      Visualizar evento pelo token público (sem autenticação)
// @Tags         publico
// @Produce      json
// @Param        token  path  string  true  "Token público do evento"
// @Success      200  {object}  dto.EventoPublicoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      410  {object}  dto.ErrorResponse
// @Router       /api/eventos/publico/{token} [get]
func (h *EventoHandler) VisualizacaoPublica(c *fiber.Ctx) error {
	out, err := h.uc.VisualizacaoPublica(c.Context(), c.Params("token"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// EnviarLembretes godoc
// @Summary      Enviar por e-mail lembretes dos eventos dos próximos três dias
// @Tags         eventos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LembretesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/eventos/enviar-lembretes [post]
func (h *EventoHandler) EnviarLembretes(c *fiber.Ctx) error {
	out, err := h.uc.EnviarLembretes(c.Context(), GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}
