package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/pkg/jwt"
)

// Locals keys preenchidos pelo middleware de autenticação.
const (
	LocalUserID    = "user_id"
	LocalUserEmail = "user_email"
	LocalUserNome  = "user_nome"
	LocalUserRole  = "user_role"
	LocalSessao    = "sessao"
)

// AuthMiddleware valida o Bearer Token JWT e coloca os dados do usuário em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "cabeçalho Authorization é obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserEmail, claims.Email)
		c.Locals(LocalUserNome, claims.Nome)
		c.Locals(LocalUserRole, claims.Role)
		c.Locals(LocalSessao, chaveSessao(tokenString))
		return c.Next()
	}
}

// RequireAdmin barra usuários sem o role admin. Usar após AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserRole(c) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso restrito a administradores"})
		}
		return c.Next()
	}
}

// chaveSessao identifica a sessão pelo segmento de assinatura do JWT.
// Cada login gera um token novo, portanto uma chave nova.
func chaveSessao(token string) string {
	if i := strings.LastIndexByte(token, '.'); i >= 0 {
		return token[i+1:]
	}
	return token
}

// GetUserID devolve o ID do usuário autenticado (após AuthMiddleware).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetUserEmail devolve o e-mail do usuário autenticado.
func GetUserEmail(c *fiber.Ctx) string {
	return localString(c, LocalUserEmail)
}

// GetUserNome devolve o nome do usuário autenticado, usado na auditoria.
func GetUserNome(c *fiber.Ctx) string {
	return localString(c, LocalUserNome)
}

// GetUserRole devolve o role do usuário autenticado.
func GetUserRole(c *fiber.Ctx) string {
	return localString(c, LocalUserRole)
}

// GetSessao devolve a chave da sessão corrente.
func GetSessao(c *fiber.Ctx) string {
	return localString(c, LocalSessao)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Origem devolve o endereço de rede do cliente, registrado na auditoria.
func Origem(c *fiber.Ctx) string {
	return c.IP()
}
