package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
	"github.com/soarespaullo/SiGI/pkg/jwt"
)

// Mailer porto de envio de e-mail usado na redefinição de senha.
type Mailer interface {
	Enviar(ctx context.Context, para, assunto, corpoHTML string) error
}

// JWTConfig configuração de geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: setup inicial, login e
// redefinição de senha. O login devolve o mesmo erro genérico para
// e-mail inexistente e senha incorreta; a distinção fica na auditoria.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	auditoria   *auditoria.Registrador
	mailer      Mailer
	jwtCfg      JWTConfig
	resetURL    string // base do link enviado no e-mail de redefinição
}

// NewAuthUseCase constrói o caso de uso de autenticação.
func NewAuthUseCase(
	usuarioRepo repository.UsuarioRepository,
	reg *auditoria.Registrador,
	mailer Mailer,
	jwtCfg JWTConfig,
	resetURL string,
) *AuthUseCase {
	return &AuthUseCase{
		usuarioRepo: usuarioRepo,
		auditoria:   reg,
		mailer:      mailer,
		jwtCfg:      jwtCfg,
		resetURL:    resetURL,
	}
}

// Setup cria o primeiro administrador. Só é permitido enquanto não há usuários.
func (uc *AuthUseCase) Setup(ctx context.Context, in dto.SetupRequest, origem string) (*dto.UsuarioResponse, error) {
	n, err := uc.usuarioRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, domain.ErrSetupJaRealizado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nome:         in.Nome,
		Role:         entity.RoleAdmin,
		Ativo:        true,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.usuarioRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, u.Email, "Setup inicial: primeiro administrador criado", entity.ResultadoSucesso, origem)
	return ToUsuarioResponse(u), nil
}

// SetupNecessario informa se o setup inicial ainda está pendente.
func (uc *AuthUseCase) SetupNecessario(ctx context.Context) (bool, error) {
	n, err := uc.usuarioRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// Login verifica credenciais e gera o token de sessão.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest, origem string) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		uc.auditoria.Registrar(ctx, in.Email, "Tentativa de login: usuário não encontrado", entity.ResultadoErro, origem)
		return nil, domain.ErrNaoAutorizado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		uc.auditoria.Registrar(ctx, in.Email, "Tentativa de login: senha incorreta", entity.ResultadoErro, origem)
		return nil, domain.ErrNaoAutorizado
	}
	// Conta desativada responde igual a credencial inválida; só a
	// auditoria distingue os casos.
	if !u.Ativo {
		uc.auditoria.Registrar(ctx, in.Email, "Tentativa de login: conta desativada", entity.ResultadoErro, origem)
		return nil, domain.ErrNaoAutorizado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Email, u.Nome, u.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, u.Email, "Login realizado", entity.ResultadoSucesso, origem)
	return &dto.LoginResponse{Token: token, Usuario: *ToUsuarioResponse(u)}, nil
}

// ForgotPassword dispara o e-mail de redefinição quando o usuário existe.
// A resposta ao cliente é idêntica nos dois casos; não revela cadastro.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, in dto.ForgotPasswordRequest, origem string) error {
	u, err := uc.usuarioRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if u == nil {
		uc.auditoria.Registrar(ctx, in.Email, "Redefinição de senha solicitada para e-mail não cadastrado", entity.ResultadoInfo, origem)
		return nil
	}
	token, err := jwt.GenerateReset(uc.jwtCfg.Secret, u.Email, uc.jwtCfg.Issuer)
	if err != nil {
		return err
	}
	corpo := fmt.Sprintf(
		`<p>Olá, %s.</p>
<p>Recebemos um pedido de redefinição de senha. O link abaixo vale por 1 hora:</p>
<p><a href="%s?token=%s">Redefinir senha</a></p>
<p>Se você não fez este pedido, ignore este e-mail.</p>`,
		u.Nome, uc.resetURL, token,
	)
	// Falha de envio não chega ao cliente: a resposta precisa ser a
	// mesma com ou sem cadastro.
	if err := uc.mailer.Enviar(ctx, u.Email, "Redefinição de senha", corpo); err != nil {
		uc.auditoria.Registrar(ctx, u.Email, "Falha ao enviar e-mail de redefinição de senha: "+err.Error(), entity.ResultadoErro, origem)
		return nil
	}
	uc.auditoria.Registrar(ctx, u.Email, "E-mail de redefinição de senha enviado", entity.ResultadoSucesso, origem)
	return nil
}

// ResetPassword conclui a redefinição com o token recebido por e-mail.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest, origem string) error {
	email, err := jwt.ParseReset(uc.jwtCfg.Secret, in.Token)
	if err != nil {
		return domain.ErrTokenExpirado
	}
	u, err := uc.usuarioRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUsuarioNaoEncontrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.AtualizadoEm = time.Now()
	if err := uc.usuarioRepo.Update(ctx, u); err != nil {
		return err
	}
	uc.auditoria.Registrar(ctx, u.Email, "Senha redefinida", entity.ResultadoSucesso, origem)
	return nil
}

// Perfil devolve os dados do usuário autenticado.
func (uc *AuthUseCase) Perfil(ctx context.Context, userID string) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarioRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	return ToUsuarioResponse(u), nil
}

// AtualizarPerfil edita os dados do próprio usuário. Campos nil não mudam.
func (uc *AuthUseCase) AtualizarPerfil(ctx context.Context, userID string, in dto.UpdatePerfilRequest, origem string) (*dto.UsuarioResponse, error) {
	u, err := uc.usuarioRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	if in.Nome != nil {
		u.Nome = *in.Nome
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Foto != nil {
		u.Foto = *in.Foto
	}
	u.AtualizadoEm = time.Now()
	if err := uc.usuarioRepo.Update(ctx, u); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, u.Email, "Perfil atualizado", entity.ResultadoSucesso, origem)
	return ToUsuarioResponse(u), nil
}

// AlterarSenha troca a senha do próprio usuário, exigindo a senha atual.
func (uc *AuthUseCase) AlterarSenha(ctx context.Context, userID string, in dto.AlterarSenhaRequest, origem string) error {
	u, err := uc.usuarioRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUsuarioNaoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.SenhaAtual)); err != nil {
		uc.auditoria.Registrar(ctx, u.Email, "Troca de senha recusada: senha atual incorreta", entity.ResultadoErro, origem)
		return domain.ErrNaoAutorizado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.SenhaNova), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.AtualizadoEm = time.Now()
	if err := uc.usuarioRepo.Update(ctx, u); err != nil {
		return err
	}
	uc.auditoria.Registrar(ctx, u.Email, "Senha alterada pelo próprio usuário", entity.ResultadoSucesso, origem)
	return nil
}

// ToUsuarioResponse converte a entidade na resposta pública (sem hash).
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:       u.ID,
		Nome:     u.Nome,
		Email:    u.Email,
		Role:     u.Role,
		Ativo:    u.Ativo,
		Foto:     u.Foto,
		CriadoEm: u.CriadoEm,
	}
}
