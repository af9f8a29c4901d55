package http

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/application/usecase"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

// Extensões aceitas para a foto do membro.
var extensoesFoto = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true,
}

// MembroHandler registro de membros, relatórios, fichas em PDF e o fluxo
// público de cadastro de visitantes.
type MembroHandler struct {
	uc        *usecase.MembroUseCase
	uploadDir string
}

// NewMembroHandler constrói o handler.
func NewMembroHandler(uc *usecase.MembroUseCase, uploadDir string) *MembroHandler {
	return &MembroHandler{uc: uc, uploadDir: uploadDir}
}

// Create godoc
// @Summary      Cadastrar membro
// @Tags         membros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MembroRequest  true  "Dados do membro"
// @Success      201   {object}  dto.MembroResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/membros [post]
func (h *MembroHandler) Create(c *fiber.Ctx) error {
	var in dto.MembroRequest
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
// @Summary      Listar membros (paginado, busca opcional)
// @Tags         membros
// @Security     Bearer
// @Produce      json
// @Param        busca   query  string  false  "Nome, e-mail ou função"
// @Param        limit   query  int     false  "Tamanho da página"
// @Param        offset  query  int     false  "Deslocamento"
// @Success      200  {object}  dto.MembroListResponse
// @Router       /api/membros [get]
func (h *MembroHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obter membro por ID
// @Tags         membros
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do membro"
// @Success      200  {object}  dto.MembroResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/membros/{id} [get]
func (h *MembroHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "membro não encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar membro
// @Tags         membros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID do membro"
// @Param        body  body  dto.MembroRequest  true  "Dados do membro"
// @Success      200   {object}  dto.MembroResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/membros/{id} [put]
func (h *MembroHandler) Update(c *fiber.Ctx) error {
	var in dto.MembroRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in, GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	if out == nil {
		return naoEncontrado(c, "membro não encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir membro
// @Tags         membros
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do membro"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/membros/{id} [delete]
func (h *MembroHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserNome(c), Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "membro excluído"})
}

// AnexarFoto godoc
// @Summary      Enviar a foto de um membro
// @Tags         membros
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID do membro"
// @Param        foto  formData  file    true  "Foto (PNG ou JPG)"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/membros/{id}/foto [post]
func (h *MembroHandler) AnexarFoto(c *fiber.Ctx) error {
	arquivo, err := c.FormFile("foto")
	if err != nil {
		return validacao(c, "foto é obrigatória")
	}
	ext := strings.ToLower(filepath.Ext(arquivo.Filename))
	if !extensoesFoto[ext] {
		return validacao(c, "formato não suportado: use PNG ou JPG")
	}
	// Nome aleatório no disco: nunca o nome enviado pelo cliente.
	caminho := filepath.Join(h.uploadDir, "fotos", fmt.Sprintf("%s%s", uuid.New().String(), ext))
	if err := c.SaveFile(arquivo, caminho); err != nil {
		return respostaErro(c, err)
	}
	if err := h.uc.AnexarFoto(c.Context(), c.Params("id"), caminho, GetUserNome(c), Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "foto atualizada"})
}

// FichaPDF godoc
// @Summary      Ficha cadastral do membro em PDF
// @Tags         membros
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID do membro"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/membros/{id}/ficha.pdf [get]
func (h *MembroHandler) FichaPDF(c *fiber.Ctx) error {
	pdf, nome, err := h.uc.FichaPDF(c.Context(), c.Params("id"))
	if err != nil {
		return respostaErro(c, err)
	}
	return enviarArquivo(c, pdf, nome, "application/pdf")
}

// Aniversariantes godoc
// @Summary      Aniversariantes do mês (filtros por função e faixa de dias)
// @Tags         membros
// @Security     Bearer
// @Produce      json
// @Param        mes         query  int     false  "1 a 12; padrão mês corrente"
// @Param        funcao      query  string  false  "Função eclesiástica"
// @Param        dia_inicio  query  int     false  "Dia inicial"
// @Param        dia_fim     query  int     false  "Dia final"
// @Success      200  {object}  dto.MembroListResponse
// @Router       /api/membros/aniversariantes [get]
func (h *MembroHandler) Aniversariantes(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return validacao(c, "parâmetros de paginação inválidos")
	}
	out, err := h.uc.Aniversariantes(c.Context(), filtroAniversariantes(c), page)
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// AniversariantesPDF godoc
// @Summary      Aniversariantes do mês em PDF
// @Tags         membros
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/membros/aniversariantes.pdf [get]
func (h *MembroHandler) AniversariantesPDF(c *fiber.Ctx) error {
	pdf, nome, err := h.uc.AniversariantesPDF(c.Context(), filtroAniversariantes(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return enviarArquivo(c, pdf, nome, "application/pdf")
}

// Relatorio godoc
// @Summary      Relatório estatístico de membros (distribuições)
// @Tags         membros
// @Security     Bearer
// @Produce      json
// @Param        sexo          query  string  false  "Filtro por sexo"
// @Param        status        query  string  false  "Filtro por status"
// @Param        estado_civil  query  string  false  "Filtro por estado civil"
// @Param        funcao        query  string  false  "Filtro por função"
// @Success      200  {object}  dto.RelatorioMembrosResponse
// @Router       /api/membros/relatorio [get]
func (h *MembroHandler) Relatorio(c *fiber.Ctx) error {
	out, err := h.uc.Relatorio(c.Context(), filtroMembros(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// RelatorioPDF godoc
// @Summary      Relatório estatístico de membros em PDF
// @Tags         membros
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/membros/relatorio.pdf [get]
func (h *MembroHandler) RelatorioPDF(c *fiber.Ctx) error {
	pdf, nome, err := h.uc.RelatorioPDF(c.Context(), filtroMembros(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return enviarArquivo(c, pdf, nome, "application/pdf")
}

// Funcoes godoc
// @Summary      Funções eclesiásticas distintas em uso
// @Tags         membros
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/membros/funcoes [get]
func (h *MembroHandler) Funcoes(c *fiber.Ctx) error {
	out, err := h.uc.Funcoes(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// LinkAtivo godoc
// @Summary      Link público ativo de cadastro de visitantes
// @Tags         membros
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LinkPublicoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/membros/link-publico [get]
func (h *MembroHandler) LinkAtivo(c *fiber.Ctx) error {
	link, err := h.uc.LinkAtivo(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	if link == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "não há link ativo"})
	}
	return c.JSON(toLinkResponse(c, link.Hash, link.Ativo, link.DataCriacao))
}

// GerarLink godoc
// @Summary      Gerar novo link público de cadastro (desativa o anterior)
// @Tags         membros
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.LinkPublicoResponse
// @Router       /api/membros/link-publico [post]
func (h *MembroHandler) GerarLink(c *fiber.Ctx) error {
	link, err := h.uc.GerarLink(c.Context(), GetUserNome(c), Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toLinkResponse(c, link.Hash, link.Ativo, link.DataCriacao))
}

// DesativarLink godoc
// @Summary      Desativar o link público de cadastro
// @Tags         membros
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MensagemResponse
// @Router       /api/membros/link-publico [delete]
func (h *MembroHandler) DesativarLink(c *fiber.Ctx) error {
	if err := h.uc.DesativarLink(c.Context(), GetUserNome(c), Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "link desativado"})
}

// ValidarLinkPublico godoc
// @Summary      Validar o hash de um link público (sem autenticação)
// @Tags         publico
// @Produce      json
// @Param        hash  path  string  true  "Hash do link"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/membros/cadastro-visitante/{hash} [get]
func (h *MembroHandler) ValidarLinkPublico(c *fiber.Ctx) error {
	if err := h.uc.ValidarLink(c.Context(), c.Params("hash")); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "link válido"})
}

// CadastrarVisitante godoc
// @Summary      Cadastro público de visitante via link compartilhado
// @Tags         publico
// @Accept       json
// @Produce      json
// @Param        hash  path  string                true  "Hash do link"
// @Param        body  body  dto.VisitanteRequest  true  "Dados do visitante"
// @Success      201   {object}  dto.MembroResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/membros/cadastro-visitante/{hash} [post]
func (h *MembroHandler) CadastrarVisitante(c *fiber.Ctx) error {
	var in dto.VisitanteRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if in.Nome == "" || in.Telefone == "" {
		return validacao(c, "nome e telefone são obrigatórios")
	}
	out, err := h.uc.CadastrarVisitante(c.Context(), c.Params("hash"), in, Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func filtroMembros(c *fiber.Ctx) repository.FiltroMembros {
	return repository.FiltroMembros{
		Sexo:        c.Query("sexo"),
		Status:      c.Query("status"),
		EstadoCivil: c.Query("estado_civil"),
		Funcao:      c.Query("funcao"),
	}
}

func filtroAniversariantes(c *fiber.Ctx) repository.FiltroAniversariantes {
	return repository.FiltroAniversariantes{
		Mes:       c.QueryInt("mes"),
		Funcao:    c.Query("funcao"),
		DiaInicio: c.QueryInt("dia_inicio"),
		DiaFim:    c.QueryInt("dia_fim"),
	}
}

func toLinkResponse(c *fiber.Ctx, hash string, ativo bool, criado time.Time) dto.LinkPublicoResponse {
	return dto.LinkPublicoResponse{
		Hash:        hash,
		URL:         fmt.Sprintf("%s/api/membros/cadastro-visitante/%s", c.BaseURL(), hash),
		Ativo:       ativo,
		DataCriacao: criado,
	}
}
