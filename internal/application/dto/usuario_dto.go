package dto

import "time"

// SetupRequest entrada do setup inicial: cria o primeiro administrador.
// Só é aceita enquanto não existe nenhum usuário.
type SetupRequest struct {
	Nome     string `json:"nome" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest entrada do login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída do login com o token de sessão.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// ForgotPasswordRequest pedido de redefinição de senha.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest conclusão da redefinição com o token recebido por e-mail.
type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreateUsuarioRequest entrada para criar um usuário (admin).
type CreateUsuarioRequest struct {
	Nome     string `json:"nome" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

// UpdateUsuarioRequest entrada para atualizar um usuário (admin).
// Campos nil não são alterados.
type UpdateUsuarioRequest struct {
	Nome     *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=8"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin user"`
	Ativo    *bool   `json:"ativo"`
}

// UpdatePerfilRequest entrada da edição do próprio perfil. Troca de senha
// não passa por aqui: tem rota própria que exige a senha atual.
type UpdatePerfilRequest struct {
	Nome  *string `json:"nome" validate:"omitempty,min=1,max=200"`
	Email *string `json:"email" validate:"omitempty,email"`
	Foto  *string `json:"foto"`
}

// AlterarSenhaRequest troca de senha do próprio usuário.
type AlterarSenhaRequest struct {
	SenhaAtual string `json:"senha_atual" validate:"required"`
	SenhaNova  string `json:"senha_nova" validate:"required,min=8"`
}

// UsuarioResponse saída de um usuário (sem hash de senha).
type UsuarioResponse struct {
	ID       string    `json:"id"`
	Nome     string    `json:"nome"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Ativo    bool      `json:"ativo"`
	Foto     string    `json:"foto,omitempty"`
	CriadoEm time.Time `json:"criado_em"`
}
