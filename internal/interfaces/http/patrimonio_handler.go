package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/application/usecase"
)

// PatrimonioHandler inventário de bens da igreja.
type PatrimonioHandler struct {
	uc *usecase.PatrimonioUseCase
}

// NewPatrimonioHandler constrói o handler.
func NewPatrimonioHandler(uc *usecase.PatrimonioUseCase) *PatrimonioHandler {
	return &PatrimonioHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar bem patrimonial
// @Tags         patrimonios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PatrimonioRequest  true  "Dados do bem"
// @Success      201   {object}  dto.PatrimonioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/patrimonios [post]
func (h *PatrimonioHandler) Create(c *fiber.Ctx) error {
	var in dto.PatrimonioRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if in.Nome == "" {
		return validacao(c, "nome é obrigatório")
	}
	out, err := h.uc.Create(c.Context(), in, GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar bens (paginado, busca opcional, valor total da página)
// @Tags         patrimonios
// @Security     Bearer
// @Produce      json
// @Param        busca   query  string  false  "Nome, categoria ou localização"
// @Param        limit   query  int     false  "Tamanho da página"
// @Param        offset  query  int     false  "Deslocamento"
// @Success      200  {object}  dto.PatrimonioListResponse
// @Router       /api/patrimonios [get]
func (h *PatrimonioHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obter bem por ID
// @Tags         patrimonios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do bem"
// @Success      200  {object}  dto.PatrimonioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/patrimonios/{id} [get]
func (h *PatrimonioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "bem não encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar bem patrimonial
// @Tags         patrimonios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID do bem"
// @Param        body  body  dto.PatrimonioRequest  true  "Dados do bem"
// @Success      200   {object}  dto.PatrimonioResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/patrimonios/{id} [put]
func (h *PatrimonioHandler) Update(c *fiber.Ctx) error {
	var in dto.PatrimonioRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "bem não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir bem patrimonial
// @Tags         patrimonios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do bem"
// @Success      200  {object}  dto.MensagemResponse
// @Router       /api/patrimonios/{id} [delete]
func (h *PatrimonioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserNome(c), Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "bem excluído"})
}
