package auth_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/auth"
	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/pkg/jwt"
	"github.com/soarespaullo/SiGI/pkg/logger"
)

const (
	testSecret = "segredo-de-teste-nao-usar-em-producao"
	testIssuer = "sigi-test"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func novoFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
}

func (r *fakeUsuarioRepo) Create(_ context.Context, u *entity.Usuario) error {
	for _, e := range r.usuarios {
		if e.Email == u.Email {
			return domain.ErrEmailJaCadastrado
		}
	}
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) GetByID(_ context.Context, id string) (*entity.Usuario, error) {
	return r.usuarios[id], nil
}

func (r *fakeUsuarioRepo) GetByEmail(_ context.Context, email string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Update(_ context.Context, u *entity.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) Delete(_ context.Context, id string) error {
	delete(r.usuarios, id)
	return nil
}

func (r *fakeUsuarioRepo) List(_ context.Context) ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Count(_ context.Context) (int, error) {
	return len(r.usuarios), nil
}

func (r *fakeUsuarioRepo) FirstAdminEmail(_ context.Context) (string, error) {
	var email string
	var mais time.Time
	for _, u := range r.usuarios {
		if u.Role != entity.RoleAdmin {
			continue
		}
		if email == "" || u.CriadoEm.Before(mais) {
			email, mais = u.Email, u.CriadoEm
		}
	}
	return email, nil
}

type fakeLogRepo struct {
	entradas []*entity.Log
}

func (r *fakeLogRepo) Create(_ context.Context, l *entity.Log) error {
	r.entradas = append(r.entradas, l)
	return nil
}

func (r *fakeLogRepo) List(_ context.Context, _ string, limit, offset int) ([]*entity.Log, int, error) {
	return r.entradas, len(r.entradas), nil
}

func (r *fakeLogRepo) DeleteOlderThan(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func (r *fakeLogRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(r.entradas))
	r.entradas = nil
	return n, nil
}

func (r *fakeLogRepo) contemAcao(trecho string) bool {
	for _, l := range r.entradas {
		if strings.Contains(l.Acao, trecho) {
			return true
		}
	}
	return false
}

type fakeMailer struct {
	enviados []string // destinatários
	corpos   []string
	falha    error
}

func (m *fakeMailer) Enviar(_ context.Context, para, _ string, corpoHTML string) error {
	if m.falha != nil {
		return m.falha
	}
	m.enviados = append(m.enviados, para)
	m.corpos = append(m.corpos, corpoHTML)
	return nil
}

func novoAuthUC(t *testing.T) (*auth.AuthUseCase, *fakeUsuarioRepo, *fakeMailer, *fakeLogRepo) {
	t.Helper()
	repo := novoFakeUsuarioRepo()
	logs := &fakeLogRepo{}
	mailer := &fakeMailer{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := auth.NewAuthUseCase(repo, auditoria.NewRegistrador(logs, log), mailer,
		auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer},
		"http://localhost:8080/reset-password")
	return uc, repo, mailer, logs
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup inicial
// ──────────────────────────────────────────────────────────────────────────────

func TestSetup_CriaPrimeiroAdmin(t *testing.T) {
	uc, repo, _, logs := novoAuthUC(t)
	ctx := context.Background()

	necessario, err := uc.SetupNecessario(ctx)
	require.NoError(t, err)
	assert.True(t, necessario)

	out, err := uc.Setup(ctx, dto.SetupRequest{Nome: "Admin", Email: "admin@igreja.org", Password: "senha-forte-123"}, "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, out.Role, "o primeiro usuário sempre é administrador")
	assert.True(t, out.Ativo)
	assert.Len(t, repo.usuarios, 1)
	assert.True(t, logs.contemAcao("Setup inicial"))

	necessario, err = uc.SetupNecessario(ctx)
	require.NoError(t, err)
	assert.False(t, necessario)
}

func TestSetup_RejeitadoQuandoJaExisteUsuario(t *testing.T) {
	uc, _, _, _ := novoAuthUC(t)
	ctx := context.Background()

	_, err := uc.Setup(ctx, dto.SetupRequest{Nome: "Admin", Email: "admin@igreja.org", Password: "senha-forte-123"}, "10.0.0.1")
	require.NoError(t, err)

	_, err = uc.Setup(ctx, dto.SetupRequest{Nome: "Outro", Email: "outro@igreja.org", Password: "senha-forte-123"}, "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrSetupJaRealizado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	uc, _, _, logs := novoAuthUC(t)
	ctx := context.Background()

	_, err := uc.Setup(ctx, dto.SetupRequest{Nome: "Admin", Email: "admin@igreja.org", Password: "senha-forte-123"}, "10.0.0.1")
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@igreja.org", Password: "senha-forte-123"}, "10.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@igreja.org", claims.Email)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.True(t, logs.contemAcao("Login realizado"))
}

func TestLogin_ErroGenericoParaCredenciaisInvalidas(t *testing.T) {
	uc, _, _, logs := novoAuthUC(t)
	ctx := context.Background()

	_, err := uc.Setup(ctx, dto.SetupRequest{Nome: "Admin", Email: "admin@igreja.org", Password: "senha-forte-123"}, "10.0.0.1")
	require.NoError(t, err)

	// E-mail inexistente e senha incorreta produzem o mesmo erro; a
	// distinção fica só na trilha de auditoria.
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "nao-existe@igreja.org", Password: "qualquer"}, "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "admin@igreja.org", Password: "senha-errada"}, "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)

	assert.True(t, logs.contemAcao("usuário não encontrado"))
	assert.True(t, logs.contemAcao("senha incorreta"))
}

func TestLogin_ContaDesativadaRespondeComoCredencialInvalida(t *testing.T) {
	uc, repo, _, logs := novoAuthUC(t)
	ctx := context.Background()

	_, err := uc.Setup(ctx, dto.SetupRequest{Nome: "Admin", Email: "admin@igreja.org", Password: "senha-forte-123"}, "10.0.0.1")
	require.NoError(t, err)
	for _, u := range repo.usuarios {
		u.Ativo = false
	}

	_, errDesativada := uc.Login(ctx, dto.LoginRequest{Email: "admin@igreja.org", Password: "senha-forte-123"}, "10.0.0.1")
	_, errSenha := uc.Login(ctx, dto.LoginRequest{Email: "admin@igreja.org", Password: "senha-errada"}, "10.0.0.1")

	// Mesma resposta nos dois casos: o cliente não descobre que a
	// conta existe e está desativada.
	assert.ErrorIs(t, errDesativada, domain.ErrNaoAutorizado)
	assert.Equal(t, errSenha, errDesativada)
	assert.True(t, logs.contemAcao("conta desativada"), "auditoria distingue o motivo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Redefinição de senha
// ──────────────────────────────────────────────────────────────────────────────

func TestForgotPassword_RespostaUniforme(t *testing.T) {
	uc, _, mailer, logs := novoAuthUC(t)
	ctx := context.Background()

	_, err := uc.Setup(ctx, dto.SetupRequest{Nome: "Admin", Email: "admin@igreja.org", Password: "senha-forte-123"}, "10.0.0.1")
	require.NoError(t, err)

	// E-mail cadastrado: envia.
	require.NoError(t, uc.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "admin@igreja.org"}, "10.0.0.1"))
	require.Len(t, mailer.enviados, 1)
	assert.Equal(t, "admin@igreja.org", mailer.enviados[0])
	assert.Contains(t, mailer.corpos[0], "reset-password?token=")

	// E-mail não cadastrado: mesmo nil, nenhum envio, registro na auditoria.
	require.NoError(t, uc.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "desconhecido@igreja.org"}, "10.0.0.1"))
	assert.Len(t, mailer.enviados, 1)
	assert.True(t, logs.contemAcao("não cadastrado"))
}

func TestForgotPassword_FalhaDeEnvioNaoVazaParaOCliente(t *testing.T) {
	uc, _, mailer, logs := novoAuthUC(t)
	ctx := context.Background()

	_, err := uc.Setup(ctx, dto.SetupRequest{Nome: "Admin", Email: "admin@igreja.org", Password: "senha-forte-123"}, "10.0.0.1")
	require.NoError(t, err)

	mailer.falha = errors.New("smtp indisponível")

	// Resposta idêntica à de e-mail não cadastrado; só a auditoria
	// registra a falha.
	require.NoError(t, uc.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "admin@igreja.org"}, "10.0.0.1"))
	assert.Empty(t, mailer.enviados)
	assert.True(t, logs.contemAcao("Falha ao enviar e-mail de redefinição"))
}

func TestResetPassword(t *testing.T) {
	uc, _, _, _ := novoAuthUC(t)
	ctx := context.Background()

	_, err := uc.Setup(ctx, dto.SetupRequest{Nome: "Admin", Email: "admin@igreja.org", Password: "senha-antiga-123"}, "10.0.0.1")
	require.NoError(t, err)

	token, err := jwt.GenerateReset(testSecret, "admin@igreja.org", testIssuer)
	require.NoError(t, err)

	err = uc.ResetPassword(ctx, dto.ResetPasswordRequest{Token: token, Password: "senha-nova-456"}, "10.0.0.1")
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "admin@igreja.org", Password: "senha-antiga-123"}, "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado, "a senha antiga deixa de valer")

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "admin@igreja.org", Password: "senha-nova-456"}, "10.0.0.1")
	assert.NoError(t, err)
}

func TestResetPassword_TokenInvalido(t *testing.T) {
	uc, _, _, _ := novoAuthUC(t)

	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Token: "token-invalido", Password: "senha-nova-456"}, "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrTokenExpirado)
}

func TestResetPassword_AssinadoComOutroSegredo(t *testing.T) {
	uc, _, _, _ := novoAuthUC(t)

	token, err := jwt.GenerateReset("outro-segredo", "admin@igreja.org", testIssuer)
	require.NoError(t, err)

	err = uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{Token: token, Password: "senha-nova-456"}, "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrTokenExpirado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Perfil
// ──────────────────────────────────────────────────────────────────────────────

func TestAtualizarPerfil_CamposNilNaoMudam(t *testing.T) {
	uc, repo, _, _ := novoAuthUC(t)
	ctx := context.Background()

	criado, err := uc.Setup(ctx, dto.SetupRequest{Nome: "Admin", Email: "admin@igreja.org", Password: "senha-forte-123"}, "10.0.0.1")
	require.NoError(t, err)

	nome := "Administrador Geral"
	out, err := uc.AtualizarPerfil(ctx, criado.ID, dto.UpdatePerfilRequest{Nome: &nome}, "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "Administrador Geral", out.Nome)
	assert.Equal(t, "admin@igreja.org", out.Email, "e-mail não informado permanece")

	u := repo.usuarios[criado.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("senha-forte-123")),
		"senha não informada permanece")
}

func TestAlterarSenha_ExigeSenhaAtual(t *testing.T) {
	uc, _, _, logs := novoAuthUC(t)
	ctx := context.Background()

	criado, err := uc.Setup(ctx, dto.SetupRequest{Nome: "Admin", Email: "admin@igreja.org", Password: "senha-forte-123"}, "10.0.0.1")
	require.NoError(t, err)

	err = uc.AlterarSenha(ctx, criado.ID, dto.AlterarSenhaRequest{SenhaAtual: "senha-errada", SenhaNova: "senha-nova-456"}, "10.0.0.1")
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)
	assert.True(t, logs.contemAcao("senha atual incorreta"))

	err = uc.AlterarSenha(ctx, criado.ID, dto.AlterarSenhaRequest{SenhaAtual: "senha-forte-123", SenhaNova: "senha-nova-456"}, "10.0.0.1")
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "admin@igreja.org", Password: "senha-nova-456"}, "10.0.0.1")
	assert.NoError(t, err)
}

func TestPerfil_UsuarioInexistente(t *testing.T) {
	uc, _, _, _ := novoAuthUC(t)

	_, err := uc.Perfil(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrUsuarioNaoEncontrado)
}
