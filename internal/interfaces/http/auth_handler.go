package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/auth"
	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

// AuthHandler setup inicial, login, redefinição de senha e perfil.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	auditoria *auditoria.Registrador
	alertas   *AlertaStore
}

// NewAuthHandler constrói o handler de autenticação.
func NewAuthHandler(uc *auth.AuthUseCase, reg *auditoria.Registrador, alertas *AlertaStore) *AuthHandler {
	return &AuthHandler{uc: uc, auditoria: reg, alertas: alertas}
}

// SetupStatus godoc
// @Summary      Informar se o setup inicial ainda é necessário
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/auth/setup [get]
func (h *AuthHandler) SetupStatus(c *fiber.Ctx) error {
	necessario, err := h.uc.SetupNecessario(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(fiber.Map{"setup_necessario": necessario})
}

// Setup godoc
// @Summary      Criar o primeiro administrador (uma única vez)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetupRequest  true  "nome, email, password"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/setup [post]
func (h *AuthHandler) Setup(c *fiber.Ctx) error {
	var in dto.SetupRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if in.Nome == "" || in.Email == "" || in.Password == "" {
		return validacao(c, "nome, email e password são obrigatórios")
	}
	if len(in.Password) < 8 {
		return validacao(c, "password deve ter ao menos 8 caracteres")
	}
	out, err := h.uc.Setup(c.Context(), in, Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if in.Email == "" || in.Password == "" {
		return validacao(c, "email e password são obrigatórios")
	}
	out, err := h.uc.Login(c.Context(), in, Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// Logout godoc
// @Summary      Encerrar a sessão corrente
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MensagemResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.alertas.Esquecer(GetSessao(c))
	h.auditoria.Registrar(c.Context(), GetUserNome(c), "Logout", entity.ResultadoInfo, Origem(c))
	return c.JSON(dto.MensagemResponse{Mensagem: "sessão encerrada"})
}

// ForgotPassword godoc
// @Summary      Solicitar redefinição de senha por e-mail
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.MensagemResponse
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if in.Email == "" {
		return validacao(c, "email é obrigatório")
	}
	if err := h.uc.ForgotPassword(c.Context(), in, Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	// Resposta idêntica exista a conta ou não.
	return c.JSON(dto.MensagemResponse{Mensagem: "se o e-mail estiver cadastrado, as instruções foram enviadas"})
}

// ResetPassword godoc
// @Summary      Redefinir a senha com o token recebido por e-mail
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "token, password"
// @Success      200   {object}  dto.MensagemResponse
// @Failure      410   {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if in.Token == "" || in.Password == "" {
		return validacao(c, "token e password são obrigatórios")
	}
	if len(in.Password) < 8 {
		return validacao(c, "password deve ter ao menos 8 caracteres")
	}
	if err := h.uc.ResetPassword(c.Context(), in, Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "senha redefinida com sucesso"})
}

// Perfil godoc
// @Summary      Dados do usuário autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UsuarioResponse
// @Router       /api/perfil [get]
func (h *AuthHandler) Perfil(c *fiber.Ctx) error {
	out, err := h.uc.Perfil(c.Context(), GetUserID(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// AtualizarPerfil godoc
// @Summary      Atualizar nome, e-mail ou foto do próprio usuário
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePerfilRequest  true  "campos a alterar"
// @Success      200   {object}  dto.UsuarioResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/perfil [put]
func (h *AuthHandler) AtualizarPerfil(c *fiber.Ctx) error {
	var in dto.UpdatePerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	out, err := h.uc.AtualizarPerfil(c.Context(), GetUserID(c), in, Origem(c))
	if err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(out)
}

// AlterarSenha godoc
// @Summary      Trocar a própria senha
// @Description  Exige a senha atual; a recusa é registrada na auditoria.
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AlterarSenhaRequest  true  "senha atual e nova"
// @Success      200   {object}  dto.MensagemResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/perfil/senha [put]
func (h *AuthHandler) AlterarSenha(c *fiber.Ctx) error {
	var in dto.AlterarSenhaRequest
	if err := c.BodyParser(&in); err != nil {
		return corpoInvalido(c)
	}
	if in.SenhaAtual == "" || in.SenhaNova == "" {
		return validacao(c, "senha atual e senha nova são obrigatórias")
	}
	if len(in.SenhaNova) < 8 {
		return validacao(c, "a nova senha deve ter ao menos 8 caracteres")
	}
	if err := h.uc.AlterarSenha(c.Context(), GetUserID(c), in, Origem(c)); err != nil {
		return respostaErro(c, err)
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "senha alterada com sucesso"})
}
