// Package mail envia e-mails transacionais (recuperação de senha e
// lembretes de evento) via SMTP. As credenciais vêm da configuração
// salva em banco; o .env serve apenas de valor inicial.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
	"github.com/soarespaullo/SiGI/pkg/config"
)

// Mailer resolve a configuração SMTP vigente e envia mensagens.
type Mailer struct {
	repo     repository.ConfigEmailRepository
	fallback config.MailConfig
}

// NewMailer constrói o mailer. fallback cobre a primeira execução,
// antes de qualquer configuração ser salva em banco.
func NewMailer(repo repository.ConfigEmailRepository, fallback config.MailConfig) *Mailer {
	return &Mailer{repo: repo, fallback: fallback}
}

// Enviar monta e envia um e-mail HTML para um destinatário.
func (m *Mailer) Enviar(ctx context.Context, para, assunto, corpoHTML string) error {
	cfg, err := m.configVigente(ctx)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", cfg.EmailPadrao, cfg.NomePadrao)
	msg.SetHeader("To", para)
	msg.SetHeader("Subject", assunto)
	msg.SetBody("text/html", corpoHTML)

	d := gomail.NewDialer(cfg.Servidor, cfg.Porta, cfg.Usuario, cfg.Senha)
	if cfg.UseTLS {
		d.TLSConfig = &tls.Config{ServerName: cfg.Servidor}
	}
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar e-mail: %w", err)
	}
	return nil
}

// configVigente devolve a configuração do banco ou, na ausência dela, o fallback do ambiente.
func (m *Mailer) configVigente(ctx context.Context) (*entity.ConfigEmail, error) {
	cfg, err := m.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("config de e-mail: %w", err)
	}
	if cfg != nil {
		return cfg, nil
	}
	return &entity.ConfigEmail{
		Servidor:    m.fallback.Server,
		Porta:       m.fallback.Port,
		UseTLS:      m.fallback.UseTLS,
		Usuario:     m.fallback.Username,
		Senha:       m.fallback.Password,
		NomePadrao:  m.fallback.DefaultName,
		EmailPadrao: m.fallback.DefaultEmail,
	}, nil
}
