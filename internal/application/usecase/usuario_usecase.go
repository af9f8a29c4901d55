package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/auth"
	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

// UsuarioUseCase administração de usuários (restrita a admins).
type UsuarioUseCase struct {
	repo      repository.UsuarioRepository
	auditoria *auditoria.Registrador
}

// NewUsuarioUseCase constrói o caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository, reg *auditoria.Registrador) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo, auditoria: reg}
}

// Create cadastra um usuário. Role default é user.
func (uc *UsuarioUseCase) Create(ctx context.Context, in dto.CreateUsuarioRequest, operador, origem string) (*dto.UsuarioResponse, error) {
	existente, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailJaCadastrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nome:         in.Nome,
		Role:         role,
		Ativo:        true,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, operador, "Usuário criado: "+u.Email, entity.ResultadoSucesso, origem)
	return auth.ToUsuarioResponse(u), nil
}

// GetByID devolve um usuário, ou nil quando não existe.
func (uc *UsuarioUseCase) GetByID(ctx context.Context, id string) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	return auth.ToUsuarioResponse(u), nil
}

// Update atualiza um usuário. Campos nil não mudam. O operador não
// pode desativar a própria conta.
func (uc *UsuarioUseCase) Update(ctx context.Context, id string, in dto.UpdateUsuarioRequest, operadorID, operador, origem string) (*dto.UsuarioResponse, error) {
	if id == operadorID && in.Ativo != nil && !*in.Ativo {
		return nil, domain.ErrConflito
	}
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, nil
	}
	if in.Nome != nil {
		u.Nome = *in.Nome
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Ativo != nil {
		u.Ativo = *in.Ativo
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	u.AtualizadoEm = time.Now()
	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	uc.auditoria.Registrar(ctx, operador, "Usuário atualizado: "+u.Email, entity.ResultadoSucesso, origem)
	return auth.ToUsuarioResponse(u), nil
}

// Delete remove um usuário. O operador não pode remover a si próprio.
func (uc *UsuarioUseCase) Delete(ctx context.Context, id, operadorID, operador, origem string) error {
	if id == operadorID {
		return domain.ErrConflito
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.auditoria.Registrar(ctx, operador, "Usuário removido: "+id, entity.ResultadoSucesso, origem)
	return nil
}

// List devolve todos os usuários.
func (uc *UsuarioUseCase) List(ctx context.Context) ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUsuarioResponse(u))
	}
	return items, nil
}
