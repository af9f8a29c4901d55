package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

var _ repository.ConfigEmailRepository = (*ConfigEmailRepo)(nil)

// ConfigEmailRepo implementação do porto ConfigEmailRepository sobre PostgreSQL.
// A tabela guarda no máximo uma linha; Save faz upsert sobre ela.
type ConfigEmailRepo struct {
	q Querier
}

// NewConfigEmailRepository constrói o adaptador da configuração SMTP. Aceita pool ou tx.
func NewConfigEmailRepository(q Querier) *ConfigEmailRepo {
	return &ConfigEmailRepo{q: q}
}

// Get devolve a configuração vigente, ou nil, nil quando nada foi salvo.
func (r *ConfigEmailRepo) Get(ctx context.Context) (*entity.ConfigEmail, error) {
	var c entity.ConfigEmail
	err := r.q.QueryRow(ctx,
		`SELECT id, servidor, porta, use_tls, usuario, senha, nome_padrao, email_padrao, atualizado_em
		 FROM config_email LIMIT 1`,
	).Scan(&c.ID, &c.Servidor, &c.Porta, &c.UseTLS, &c.Usuario, &c.Senha, &c.NomePadrao, &c.EmailPadrao, &c.AtualizadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get config email: %w", err)
	}
	return &c, nil
}

// Save cria ou substitui a configuração vigente.
func (r *ConfigEmailRepo) Save(ctx context.Context, c *entity.ConfigEmail) error {
	query := `
		INSERT INTO config_email (id, servidor, porta, use_tls, usuario, senha, nome_padrao, email_padrao, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			servidor = EXCLUDED.servidor, porta = EXCLUDED.porta, use_tls = EXCLUDED.use_tls,
			usuario = EXCLUDED.usuario, senha = EXCLUDED.senha, nome_padrao = EXCLUDED.nome_padrao,
			email_padrao = EXCLUDED.email_padrao, atualizado_em = EXCLUDED.atualizado_em`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Servidor, c.Porta, c.UseTLS, c.Usuario, c.Senha, c.NomePadrao, c.EmailPadrao, c.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("save config email: %w", err)
	}
	return nil
}
