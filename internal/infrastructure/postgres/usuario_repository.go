package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

const usuarioCols = `id, email, password_hash, nome, role, ativo, foto, criado_em, atualizado_em`

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de persistência de usuários. Aceita pool ou tx.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um novo usuário. E-mail duplicado vira domain.ErrEmailJaCadastrado.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, email, password_hash, nome, role, ativo, foto, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.Nome, u.Role, u.Ativo, u.Foto, u.CriadoEm, u.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID. Devolve nil, nil quando não existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx, `SELECT `+usuarioCols+` FROM usuarios WHERE id = $1`, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Nome, &u.Role, &u.Ativo, &u.Foto, &u.CriadoEm, &u.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// GetByEmail obtém um usuário pelo e-mail (case-insensitive). Devolve nil, nil quando não existe.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx, `SELECT `+usuarioCols+` FROM usuarios WHERE LOWER(email) = LOWER($1)`, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Nome, &u.Role, &u.Ativo, &u.Foto, &u.CriadoEm, &u.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by email: %w", err)
	}
	return &u, nil
}

// Update atualiza um usuário existente.
func (r *UsuarioRepo) Update(ctx context.Context, u *entity.Usuario) error {
	query := `
		UPDATE usuarios SET email = $2, password_hash = $3, nome = $4, role = $5, ativo = $6, foto = $7, atualizado_em = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.Nome, u.Role, u.Ativo, u.Foto, u.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// Delete remove um usuário por ID.
func (r *UsuarioRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// List devolve todos os usuários ordenados por data de criação.
func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	rows, err := r.q.Query(ctx, `SELECT `+usuarioCols+` FROM usuarios ORDER BY criado_em`)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Nome, &u.Role, &u.Ativo, &u.Foto, &u.CriadoEm, &u.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Count conta os usuários cadastrados.
func (r *UsuarioRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM usuarios`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count usuarios: %w", err)
	}
	return n, nil
}

// FirstAdminEmail devolve o e-mail do administrador mais antigo, ou vazio se não houver.
func (r *UsuarioRepo) FirstAdminEmail(ctx context.Context) (string, error) {
	var email string
	err := r.q.QueryRow(ctx,
		`SELECT email FROM usuarios WHERE role = $1 ORDER BY criado_em LIMIT 1`,
		entity.RoleAdmin,
	).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("first admin email: %w", err)
	}
	return email, nil
}
