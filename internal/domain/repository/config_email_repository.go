package repository

import (
	"context"

	"github.com/soarespaullo/SiGI/internal/domain/entity"
)

// ConfigEmailRepository guarda a configuração SMTP (linha única).
type ConfigEmailRepository interface {
	// Get devolve nil quando nenhuma configuração foi salva ainda.
	Get(ctx context.Context) (*entity.ConfigEmail, error)
	// Save cria ou substitui a configuração vigente.
	Save(ctx context.Context, c *entity.ConfigEmail) error
}
