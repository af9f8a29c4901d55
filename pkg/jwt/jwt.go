package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Audiences distinguem o token de sessão do token de redefinição de senha.
// Um token de reset nunca é aceito como sessão e vice-versa.
const (
	audSessao = "sessao"
	audReset  = "reset-password"
)

// MaxIdadeReset validade máxima do token de redefinição de senha.
const MaxIdadeReset = time.Hour

// Claims inclui os claims padrão JWT mais os campos próprios da aplicação.
// Role permite que o middleware de autorização decida sem consultar o banco.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Nome   string `json:"nome"`
	Role   string `json:"role"` // "admin" | "user"
}

// Generate gera um token de sessão assinado incluindo userID, email, nome e role.
func Generate(secret, userID, email, nome, role, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			Audience:  jwt.ClaimStrings{audSessao},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID: userID,
		Email:  email,
		Nome:   nome,
		Role:   role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida um token de sessão e devolve seus claims.
// Retorna erro se o token for inválido, expirado, de reset ou com assinatura incorreta.
func Parse(secret, tokenString string) (*Claims, error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return nil, err
	}
	if !temAudience(claims, audSessao) {
		return nil, fmt.Errorf("jwt: token não é de sessão")
	}
	return claims, nil
}

// GenerateReset gera o token de redefinição de senha embutindo o e-mail da conta.
// Validade fixa de uma hora, no espírito do serializer assinado com max_age=3600.
func GenerateReset(secret, email, issuer string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   email,
			Audience:  jwt.ClaimStrings{audReset},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(MaxIdadeReset)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseReset valida o token de redefinição e devolve o e-mail embutido.
func ParseReset(secret, tokenString string) (string, error) {
	claims, err := parse(secret, tokenString)
	if err != nil {
		return "", err
	}
	if !temAudience(claims, audReset) {
		return "", fmt.Errorf("jwt: token não é de redefinição de senha")
	}
	return claims.Email, nil
}

func parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}

func temAudience(c *Claims, aud string) bool {
	for _, a := range c.Audience {
		if a == aud {
			return true
		}
	}
	return false
}
