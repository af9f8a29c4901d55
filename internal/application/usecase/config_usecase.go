package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/dto"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
	"github.com/soarespaullo/SiGI/pkg/config"
)

// ConfigUseCase configurações do sistema: SMTP persistido em banco.
type ConfigUseCase struct {
	repo      repository.ConfigEmailRepository
	fallback  config.MailConfig
	auditoria *auditoria.Registrador
}

// NewConfigUseCase constrói o caso de uso.
func NewConfigUseCase(repo repository.ConfigEmailRepository, fallback config.MailConfig, reg *auditoria.Registrador) *ConfigUseCase {
	return &ConfigUseCase{repo: repo, fallback: fallback, auditoria: reg}
}

// GetEmail devolve a configuração SMTP vigente, sem a senha. Antes da
// primeira gravação devolve os valores de bootstrap do ambiente.
func (uc *ConfigUseCase) GetEmail(ctx context.Context) (*dto.ConfigEmailResponse, error) {
	c, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return &dto.ConfigEmailResponse{
			Servidor:    uc.fallback.Server,
			Porta:       uc.fallback.Port,
			UseTLS:      uc.fallback.UseTLS,
			Usuario:     uc.fallback.Username,
			NomePadrao:  uc.fallback.DefaultName,
			EmailPadrao: uc.fallback.DefaultEmail,
		}, nil
	}
	return &dto.ConfigEmailResponse{
		Servidor:    c.Servidor,
		Porta:       c.Porta,
		UseTLS:      c.UseTLS,
		Usuario:     c.Usuario,
		NomePadrao:  c.NomePadrao,
		EmailPadrao: c.EmailPadrao,
	}, nil
}

// SalvarEmail grava a configuração SMTP. Senha vazia preserva a atual.
func (uc *ConfigUseCase) SalvarEmail(ctx context.Context, in dto.ConfigEmailRequest, usuario, origem string) error {
	atual, err := uc.repo.Get(ctx)
	if err != nil {
		return err
	}
	c := &entity.ConfigEmail{
		Servidor:     in.Servidor,
		Porta:        in.Porta,
		UseTLS:       in.UseTLS,
		Usuario:      in.Usuario,
		Senha:        in.Senha,
		NomePadrao:   in.NomePadrao,
		EmailPadrao:  in.EmailPadrao,
		AtualizadoEm: time.Now(),
	}
	if atual != nil {
		c.ID = atual.ID
		if c.Senha == "" {
			c.Senha = atual.Senha
		}
	} else {
		c.ID = uuid.New().String()
	}
	if err := uc.repo.Save(ctx, c); err != nil {
		return err
	}
	uc.auditoria.Registrar(ctx, usuario, "Configuração de e-mail atualizada", entity.ResultadoSucesso, origem)
	return nil
}
