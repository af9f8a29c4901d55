package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/application/usecase"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/infrastructure/backup"
)

// ConfigHandler administração do sistema: SMTP, backup do banco e trilha
// de auditoria. Todas as rotas exigem role admin.
type ConfigHandler struct {
	uc        *usecase.ConfigUseCase
	backup    *backup.Service
	auditoria *auditoria.Registrador
}

// NewConfigHandler constrói o handler.
func NewConfigHandler(uc *usecase.ConfigUseCase, svc *backup.Service, reg *auditoria.Registrador) *ConfigHandler {
	return &ConfigHandler{uc: uc, backup: svc, auditoria: reg}
}

// GetEmail godoc
// @Summary      Configuração SMTP vigente (sem a senha)
// @Tags         configuracoes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ConfigEmailResponse
// @Router       /api/configuracoes/email [get]
func (h *ConfigHandler) GetEmail(c *fiber.Ctx) error {
	out, err := h.uc.GetEmail(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// SalvarEmail godoc
// @Summary      Gravar configuração SMTP (senha vazia preserva a atual)
// @Tags         configuracoes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfigEmailRequest  true  "Dados SMTP"
// @Success      200   {object}  dto.MensagemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/configuracoes/email [put]
func (h *ConfigHandler) SalvarEmail(c *fiber.Ctx) error {
	var in dto.ConfigEmailRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if in.Servidor == "" || in.Porta <= 0 || in.Porta > 65535 {
		return validacao(c, "servidor e porta válida são obrigatórios")
	}
	if err := h.uc.SalvarEmail(c.Context(), in, GetUserNome(c), Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "configuração salva"})
}

// GerarBackup godoc
// @Summary      Gerar e baixar um backup completo do banco (ZIP)
// @Tags         configuracoes
// @Security     Bearer
// @Produce      application/zip
// @Success      200  {file}  binary
// @Router       /api/configuracoes/backup [get]
func (h *ConfigHandler) GerarBackup(c *fiber.Ctx) error {
	conteudo, nome, err := h.backup.Gerar(c.Context())
	if err != nil {
		h.auditoria.Registrar(c.Context(), GetUserNome(c), "Falha ao gerar backup: "+err.Error(), entity.ResultadoErro, Origem(c))
		return respostaErro(c, err)
	}
	h.auditoria.Registrar(c.Context(), GetUserNome(c), "Backup gerado: "+nome, entity.ResultadoSucesso, Origem(c))
	return enviarArquivo(c, conteudo, nome, "application/zip")
}

// RestaurarBackup godoc
// @Summary      Restaurar o banco a partir de um ZIP de backup
// @Tags         configuracoes
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        arquivo  formData  file  true  "ZIP gerado pelo backup"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/configuracoes/backup/restaurar [post]
func (h *ConfigHandler) RestaurarBackup(c *fiber.Ctx) error {
	arquivo, err := c.FormFile("arquivo")
	if err != nil {
		return validacao(c, "arquivo é obrigatório")
	}
	f, err := arquivo.Open()
	if err != nil {
		return respostaErro(c, err)
	}
	defer f.Close()

	conteudo, err := io.ReadAll(f)
	if err != nil {
		return respostaErro(c, err)
	}
	if err := h.backup.Restaurar(c.Context(), conteudo); err != nil {
		h.auditoria.Registrar(c.Context(), GetUserNome(c), "Falha ao restaurar backup: "+err.Error(), entity.ResultadoErro, Origem(c))
		return respostaErro(c, err)
	}
	h.auditoria.Registrar(c.Context(), GetUserNome(c), "Backup restaurado: "+arquivo.Filename, entity.ResultadoSucesso, Origem(c))
	return c.JSON(dto.MensagemResponse{Mensagem: "banco restaurado"})
}

// ListarLogs godoc
// @Summary      Trilha de auditoria (paginada, mais recentes primeiro)
// @Tags         configuracoes
// @Security     Bearer
// @Produce      json
// @Param        usuario  query  string  false  "Filtro por nome de usuário"
// @Param        limit   query  int  false  "Tamanho da página"
// @Param        offset  query  int  false  "Deslocamento"
// @Success      200  {object}  dto.LogListResponse
// @Router       /api/configuracoes/logs [get]
func (h *ConfigHandler) ListarLogs(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return validacao(c, "parâmetros de paginação inválidos")
	}
	page.DefaultPage()
	logs, total, err := h.auditoria.Listar(c.Context(), c.Query("usuario"), page.Limit, page.Offset)
	if err != nil {
		return respostaErro(c, err)
	}
	items := make([]dto.LogResponse, len(logs))
	for i, l := range logs {
		items[i] = dto.LogResponse{
			ID:        l.ID,
			Usuario:   l.Usuario,
			Acao:      l.Acao,
			Resultado: l.Resultado,
			Origem:    l.Origem,
			Data:      l.Data,
		}
	}
	return c.JSON(dto.LogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// PurgarLogs godoc
// @Summary      Purgar entradas de auditoria com mais de trinta dias
// @Tags         configuracoes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PurgaLogsResponse
// @Router       /api/configuracoes/logs/purgar [post]
func (h *ConfigHandler) PurgarLogs(c *fiber.Ctx) error {
	removidos, err := h.auditoria.Purgar(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.PurgaLogsResponse{Removidos: removidos})
}

// LimparLogs godoc
// @Summary      Apagar toda a trilha de auditoria
// @Tags         configuracoes
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PurgaLogsResponse
// @Router       /api/configuracoes/logs [delete]
func (h *ConfigHandler) LimparLogs(c *fiber.Ctx) error {
	removidos, err := h.auditoria.LimparTudo(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	h.auditoria.Registrar(c.Context(), GetUserNome(c), "Trilha de auditoria limpa", entity.ResultadoInfo, Origem(c))
	return c.JSON(dto.PurgaLogsResponse{Removidos: removidos})
}
