package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/application/usecase"
)

// AtaHandler atas de reuniões e assembleias.
type AtaHandler struct {
	uc *usecase.AtaUseCase
}

// NewAtaHandler constrói o handler.
func NewAtaHandler(uc *usecase.AtaUseCase) *AtaHandler {
	return &AtaHandler{uc: uc}
}

// Create registra uma nova ata.
func (h *AtaHandler) Create(c *fiber.Ctx) error {
	var in dto.AtaRequest
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

// List lista atas com busca opcional.
func (h *AtaHandler) List(c *fiber.Ctx) error {
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

// GetByID devolve uma ata.
func (h *AtaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "ata não encontrada")
	}
	return c.JSON(out)
}

// Update atualiza uma ata.
func (h *AtaHandler) Update(c *fiber.Ctx) error {
	var in dto.AtaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "ata não encontrada")
	}
	return c.JSON(out)
}

// Delete remove uma ata.
func (h *AtaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserNome(c), Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "ata excluída"})
}

// CertificadoHandler certificados emitidos (batismo, apresentação, cursos).
type CertificadoHandler struct {
	uc *usecase.CertificadoUseCase
}

// NewCertificadoHandler constrói o handler.
func NewCertificadoHandler(uc *usecase.CertificadoUseCase) *CertificadoHandler {
	return &CertificadoHandler{uc: uc}
}

// Create registra um certificado.
func (h *CertificadoHandler) Create(c *fiber.Ctx) error {
	var in dto.CertificadoRequest
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

// List lista certificados com busca opcional.
func (h *CertificadoHandler) List(c *fiber.Ctx) error {
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

// GetByID devolve um certificado.
func (h *CertificadoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "certificado não encontrado")
	}
	return c.JSON(out)
}

// Update atualiza um certificado.
func (h *CertificadoHandler) Update(c *fiber.Ctx) error {
	var in dto.CertificadoRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "certificado não encontrado")
	}
	return c.JSON(out)
}

// Delete remove um certificado.
func (h *CertificadoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserNome(c), Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "certificado excluído"})
}

// CartaHandler cartas de recomendação e mudança, com geração em PDF.
type CartaHandler struct {
	uc *usecase.CartaUseCase
}

// NewCartaHandler constrói o handler.
func NewCartaHandler(uc *usecase.CartaUseCase) *CartaHandler {
	return &CartaHandler{uc: uc}
}

// Create registra uma carta.
func (h *CartaHandler) Create(c *fiber.Ctx) error {
	var in dto.CartaRequest
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

// List lista cartas com busca opcional.
func (h *CartaHandler) List(c *fiber.Ctx) error {
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

// GetByID devolve uma carta.
func (h *CartaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "carta não encontrada")
	}
	return c.JSON(out)
}

// Update atualiza uma carta.
func (h *CartaHandler) Update(c *fiber.Ctx) error {
	var in dto.CartaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "carta não encontrada")
	}
	return c.JSON(out)
}

// Delete remove uma carta.
func (h *CartaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserNome(c), Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "carta excluída"})
}

// PDF gera a carta formatada para impressão.
func (h *CartaHandler) PDF(c *fiber.Ctx) error {
	pdf, nome, err := h.uc.PDF(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return enviarArquivo(c, pdf, nome, "application/pdf")
}
