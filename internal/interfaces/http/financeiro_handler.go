package http

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/application/usecase"
)

// Extensões aceitas para comprovantes anexados.
var extensoesComprovante = map[string]bool{
	".pdf": true, ".png": true, ".jpg": true, ".jpeg": true,
}

// FinanceiroHandler lançamentos financeiros, relatórios, exportação CSV
// e anexos de comprovante.
type FinanceiroHandler struct {
	uc        *usecase.FinanceiroUseCase
	uploadDir string
}

// NewFinanceiroHandler constrói o handler.
func NewFinanceiroHandler(uc *usecase.FinanceiroUseCase, uploadDir string) *FinanceiroHandler {
	return &FinanceiroHandler{uc: uc, uploadDir: uploadDir}
}

// Create godoc
// @Summary      Registrar lançamento financeiro
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FinanceiroRequest  true  "Dados do lançamento"
// @Success      201   {object}  dto.FinanceiroResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/financeiro [post]
func (h *FinanceiroHandler) Create(c *fiber.Ctx) error {
	var in dto.FinanceiroRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Create(c.Context(), in, GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPorTipo godoc
// @Summary      Listar lançamentos de uma direção com o total somado
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        tipo  query  string  true  "Entrada ou Saída"
// @Success      200  {object}  dto.FinanceiroListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/financeiro [get]
func (h *FinanceiroHandler) ListPorTipo(c *fiber.Ctx) error {
	out, err := h.uc.ListPorTipo(c.Context(), c.Query("tipo"))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter lançamento por ID
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do lançamento"
// @Success      200  {object}  dto.FinanceiroResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financeiro/{id} [get]
func (h *FinanceiroHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "lançamento não encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar lançamento
// @Tags         financeiro
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID do lançamento"
// @Param        body  body  dto.FinanceiroRequest  true  "Dados do lançamento"
// @Success      200   {object}  dto.FinanceiroResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/financeiro/{id} [put]
func (h *FinanceiroHandler) Update(c *fiber.Ctx) error {
	var in dto.FinanceiroRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "lançamento não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir lançamento
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do lançamento"
// @Success      200  {object}  dto.MensagemResponse
// @Router       /api/financeiro/{id} [delete]
func (h *FinanceiroHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserNome(c), Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "lançamento excluído"})
}

// Relatorio godoc
// @Summary      Relatório financeiro por período, direção e categoria
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Param        inicio     query  string  false  "Data inicial (AAAA-MM-DD)"
// @Param        fim        query  string  false  "Data final (AAAA-MM-DD)"
// @Param        tipo       query  string  false  "Entrada ou Saída"
// @Param        categoria  query  string  false  "Categoria"
// @Success      200  {object}  dto.RelatorioFinanceiroResponse
// @Router       /api/financeiro/relatorio [get]
func (h *FinanceiroHandler) Relatorio(c *fiber.Ctx) error {
	var in dto.FiltroFinanceiroRequest
	if err := c.QueryParser(&in); err != nil {
		return validacao(c, "filtros inválidos")
	}
	out, err := h.uc.Relatorio(c.Context(), in)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// ExportarCSV godoc
// @Summary      Exportar lançamentos filtrados em CSV
// @Tags         financeiro
// @Security     Bearer
// @Produce      text/csv
// @Param        inicio     query  string  false  "Data inicial (AAAA-MM-DD)"
// @Param        fim        query  string  false  "Data final (AAAA-MM-DD)"
// @Param        tipo       query  string  false  "Entrada ou Saída"
// @Param        categoria  query  string  false  "Categoria"
// @Success      200  {file}  binary
// @Router       /api/financeiro/export.csv [get]
func (h *FinanceiroHandler) ExportarCSV(c *fiber.Ctx) error {
	var in dto.FiltroFinanceiroRequest
	if err := c.QueryParser(&in); err != nil {
		return validacao(c, "filtros inválidos")
	}
	csv, nome, err := h.uc.ExportarCSV(c.Context(), in, GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return enviarArquivo(c, csv, nome, "text/csv; charset=utf-8")
}

// AnexarComprovante godoc
// @Summary      Anexar comprovante (PDF ou imagem) a um lançamento
// @Tags         financeiro
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id       path      string  true  "ID do lançamento"
// @Param        arquivo  formData  file    true  "Comprovante"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financeiro/{id}/comprovante [post]
func (h *FinanceiroHandler) AnexarComprovante(c *fiber.Ctx) error {
	arquivo, err := c.FormFile("arquivo")
	if err != nil {
		return validacao(c, "arquivo é obrigatório")
	}
	ext := strings.ToLower(filepath.Ext(arquivo.Filename))
	if !extensoesComprovante[ext] {
		return validacao(c, "formato não suportado: use PDF, PNG ou JPG")
	}
	// Nome aleatório no disco: nunca o nome enviado pelo cliente.
	caminho := filepath.Join(h.uploadDir, "comprovantes", fmt.Sprintf("%s%s", uuid.New().String(), ext))
	if err := c.SaveFile(arquivo, caminho); err != nil {
		return respostaErro(c, err)
	}
	if err := h.uc.AnexarComprovante(c.Context(), c.Params("id"), caminho, GetUserNome(c), Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "comprovante anexado"})
}

// Comprovante godoc
// @Summary      Baixar o comprovante de um lançamento
// @Tags         financeiro
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        id   path  string  true  "ID do lançamento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/financeiro/{id}/comprovante [get]
func (h *FinanceiroHandler) Comprovante(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "lançamento não encontrado")
	}
	if out.Comprovante == "" {
		return naoEncontrado(c, "lançamento sem comprovante")
	}
	return c.SendFile(out.Comprovante)
}

// EnviarComprovante godoc
// @Summary      Enviar comprovante avulso, sem lançamento associado
// @Tags         financeiro
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        data       formData  string  true   "Data do comprovante (AAAA-MM-DD)"
// @Param        descricao  formData  string  false  "Descrição"
// @Param        arquivo    formData  file    true   "Comprovante"
// @Success      201  {object}  dto.FinanceiroResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/financeiro/comprovantes [post]
func (h *FinanceiroHandler) EnviarComprovante(c *fiber.Ctx) error {
	var in dto.ComprovanteRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if in.Data == "" {
		return validacao(c, "data é obrigatória")
	}
	arquivo, err := c.FormFile("arquivo")
	if err != nil {
		return validacao(c, "arquivo é obrigatório")
	}
	ext := strings.ToLower(filepath.Ext(arquivo.Filename))
	if !extensoesComprovante[ext] {
		return validacao(c, "formato não suportado: use PDF, PNG ou JPG")
	}
	caminho := filepath.Join(h.uploadDir, "comprovantes", fmt.Sprintf("%s%s", uuid.New().String(), ext))
	if err := c.SaveFile(arquivo, caminho); err != nil {
		return respostaErro(c, err)
	}
	out, err := h.uc.CadastrarComprovante(c.Context(), in, caminho, GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListarComprovantes godoc
// @Summary      Listar comprovantes avulsos agrupados por mês
// @Tags         financeiro
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ComprovantesResponse
// @Router       /api/financeiro/comprovantes [get]
func (h *FinanceiroHandler) ListarComprovantes(c *fiber.Ctx) error {
	out, err := h.uc.ListComprovantes(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}
