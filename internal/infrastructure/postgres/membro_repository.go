package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

var _ repository.MembroRepository = (*MembroRepo)(nil)

const membroCols = `id, foto, nome, data_nascimento, sexo, estado_civil, conjuge, telefone, email,
	endereco, bairro, cep,
	batizado, dizimista, data_batismo, funcao, status, data_cadastro, numero_carteira,
	igreja_local, validade, data_conversao, data_saida,
	nacionalidade, naturalidade, rg, cpf, pai, mae, filiacao,
	observacoes, criado_em`

// MembroRepo implementação do porto MembroRepository sobre PostgreSQL.
type MembroRepo struct {
	q Querier
}

// NewMembroRepository constrói o adaptador de persistência de membros. Aceita pool ou tx.
func NewMembroRepository(q Querier) *MembroRepo {
	return &MembroRepo{q: q}
}

func scanMembro(row pgx.Row) (*entity.Membro, error) {
	var m entity.Membro
	err := row.Scan(
		&m.ID, &m.Foto, &m.Nome, &m.DataNascimento, &m.Sexo, &m.EstadoCivil, &m.Conjuge, &m.Telefone, &m.Email,
		&m.Endereco, &m.Bairro, &m.CEP,
		&m.Batizado, &m.Dizimista, &m.DataBatismo, &m.Funcao, &m.Status, &m.DataCadastro, &m.NumeroCarteira,
		&m.IgrejaLocal, &m.Validade, &m.DataConversao, &m.DataSaida,
		&m.Nacionalidade, &m.Naturalidade, &m.RG, &m.CPF, &m.Pai, &m.Mae, &m.Filiacao,
		&m.Observacoes, &m.CriadoEm,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create persiste um novo membro.
func (r *MembroRepo) Create(ctx context.Context, m *entity.Membro) error {
	query := `
		INSERT INTO membros (` + membroCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Foto, m.Nome, m.DataNascimento, m.Sexo, m.EstadoCivil, m.Conjuge, m.Telefone, m.Email,
		m.Endereco, m.Bairro, m.CEP,
		m.Batizado, m.Dizimista, m.DataBatismo, m.Funcao, m.Status, m.DataCadastro, m.NumeroCarteira,
		m.IgrejaLocal, m.Validade, m.DataConversao, m.DataSaida,
		m.Nacionalidade, m.Naturalidade, m.RG, m.CPF, m.Pai, m.Mae, m.Filiacao,
		m.Observacoes, m.CriadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert membro: %w", err)
	}
	return nil
}

// GetByID obtém um membro por ID. Devolve nil, nil quando não existe.
func (r *MembroRepo) GetByID(ctx context.Context, id string) (*entity.Membro, error) {
	m, err := scanMembro(r.q.QueryRow(ctx, `SELECT `+membroCols+` FROM membros WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get membro: %w", err)
	}
	return m, nil
}

// Update atualiza um membro existente.
func (r *MembroRepo) Update(ctx context.Context, m *entity.Membro) error {
	query := `
		UPDATE membros SET
			foto = $2, nome = $3, data_nascimento = $4, sexo = $5, estado_civil = $6, conjuge = $7,
			telefone = $8, email = $9, endereco = $10, bairro = $11, cep = $12,
			batizado = $13, dizimista = $14, data_batismo = $15, funcao = $16, status = $17,
			data_cadastro = $18, numero_carteira = $19, igreja_local = $20, validade = $21,
			data_conversao = $22, data_saida = $23,
			nacionalidade = $24, naturalidade = $25, rg = $26, cpf = $27, pai = $28, mae = $29,
			filiacao = $30, observacoes = $31
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Foto, m.Nome, m.DataNascimento, m.Sexo, m.EstadoCivil, m.Conjuge,
		m.Telefone, m.Email, m.Endereco, m.Bairro, m.CEP,
		m.Batizado, m.Dizimista, m.DataBatismo, m.Funcao, m.Status,
		m.DataCadastro, m.NumeroCarteira, m.IgrejaLocal, m.Validade,
		m.DataConversao, m.DataSaida,
		m.Nacionalidade, m.Naturalidade, m.RG, m.CPF, m.Pai, m.Mae,
		m.Filiacao, m.Observacoes,
	)
	if err != nil {
		return fmt.Errorf("update membro: %w", err)
	}
	return nil
}

// Delete remove um membro por ID.
func (r *MembroRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM membros WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete membro: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// List pagina membros ordenados por nome.
func (r *MembroRepo) List(ctx context.Context, limit, offset int) ([]*entity.Membro, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM membros`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count membros: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+membroCols+` FROM membros ORDER BY nome LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list membros: %w", err)
	}
	defer rows.Close()
	list, err := collectMembros(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Search busca membros por substring em nome, e-mail e função.
func (r *MembroRepo) Search(ctx context.Context, termo string, limit, offset int) ([]*entity.Membro, int, error) {
	padrao := "%" + termo + "%"
	where := `WHERE nome ILIKE $1 OR email ILIKE $1 OR funcao ILIKE $1`
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM membros `+where, padrao).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count busca membros: %w", err)
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+membroCols+` FROM membros `+where+` ORDER BY nome LIMIT $2 OFFSET $3`,
		padrao, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("buscar membros: %w", err)
	}
	defer rows.Close()
	list, err := collectMembros(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// FindByCPF localiza o membro pelo CPF exato. Devolve nil, nil quando não existe.
func (r *MembroRepo) FindByCPF(ctx context.Context, cpf string) (*entity.Membro, error) {
	m, err := scanMembro(r.q.QueryRow(ctx,
		`SELECT `+membroCols+` FROM membros WHERE cpf = $1 AND cpf <> '' LIMIT 1`, cpf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find membro por cpf: %w", err)
	}
	return m, nil
}

// FindByNomeENascimento localiza o membro por nome e data de nascimento exatos.
func (r *MembroRepo) FindByNomeENascimento(ctx context.Context, nome string, nascimento time.Time) (*entity.Membro, error) {
	m, err := scanMembro(r.q.QueryRow(ctx,
		`SELECT `+membroCols+` FROM membros WHERE LOWER(nome) = LOWER($1) AND data_nascimento = $2 LIMIT 1`,
		nome, nascimento))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find membro por nome e nascimento: %w", err)
	}
	return m, nil
}

// FindVisitanteDuplicado casa (nome E telefone) OU e-mail, quando informados.
func (r *MembroRepo) FindVisitanteDuplicado(ctx context.Context, nome, telefone, email string) (*entity.Membro, error) {
	var conds []string
	var args []any
	if nome != "" && telefone != "" {
		args = append(args, nome)
		n := len(args)
		args = append(args, telefone)
		conds = append(conds, fmt.Sprintf("(LOWER(nome) = LOWER($%d) AND telefone = $%d)", n, n+1))
	}
	if email != "" {
		args = append(args, email)
		conds = append(conds, fmt.Sprintf("LOWER(email) = LOWER($%d)", len(args)))
	}
	if len(conds) == 0 {
		return nil, nil
	}
	query := `SELECT ` + membroCols + ` FROM membros WHERE ` + strings.Join(conds, " OR ") + ` LIMIT 1`
	m, err := scanMembro(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find visitante duplicado: %w", err)
	}
	return m, nil
}

// Aniversariantes lista membros que aniversariam no mês, ordenados pelo dia.
func (r *MembroRepo) Aniversariantes(ctx context.Context, f repository.FiltroAniversariantes, limit, offset int) ([]*entity.Membro, int, error) {
	conds := []string{`data_nascimento IS NOT NULL`, `EXTRACT(MONTH FROM data_nascimento) = $1`}
	args := []any{f.Mes}
	if f.Funcao != "" {
		args = append(args, f.Funcao)
		conds = append(conds, fmt.Sprintf("funcao = $%d", len(args)))
	}
	if f.DiaInicio > 0 {
		args = append(args, f.DiaInicio)
		conds = append(conds, fmt.Sprintf("EXTRACT(DAY FROM data_nascimento) >= $%d", len(args)))
	}
	if f.DiaFim > 0 {
		args = append(args, f.DiaFim)
		conds = append(conds, fmt.Sprintf("EXTRACT(DAY FROM data_nascimento) <= $%d", len(args)))
	}
	where := `WHERE ` + strings.Join(conds, " AND ")

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM membros `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count aniversariantes: %w", err)
	}

	args = append(args, limit, offset)
	query := `SELECT ` + membroCols + ` FROM membros ` + where +
		fmt.Sprintf(` ORDER BY EXTRACT(DAY FROM data_nascimento), nome LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list aniversariantes: %w", err)
	}
	defer rows.Close()
	list, err := collectMembros(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListFiltered devolve membros do relatório estatístico (sem paginação).
func (r *MembroRepo) ListFiltered(ctx context.Context, f repository.FiltroMembros) ([]*entity.Membro, error) {
	where, args := filtroMembrosWhere(f)
	rows, err := r.q.Query(ctx, `SELECT `+membroCols+` FROM membros `+where+` ORDER BY nome`, args...)
	if err != nil {
		return nil, fmt.Errorf("list membros filtrados: %w", err)
	}
	defer rows.Close()
	return collectMembros(rows)
}

// DistribuicaoPor agrupa membros por uma coluna categórica do relatório.
// A coluna vem de uma lista fechada no caso de uso, nunca de entrada do cliente.
func (r *MembroRepo) DistribuicaoPor(ctx context.Context, coluna string, f repository.FiltroMembros) ([]repository.Distribuicao, error) {
	where, args := filtroMembrosWhere(f)
	query := fmt.Sprintf(
		`SELECT COALESCE(NULLIF(%s, ''), 'Não informado') AS rotulo, COUNT(*) AS total
		 FROM membros %s GROUP BY rotulo ORDER BY total DESC`, coluna, where)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("distribuicao por %s: %w", coluna, err)
	}
	defer rows.Close()
	var out []repository.Distribuicao
	for rows.Next() {
		var d repository.Distribuicao
		if err := rows.Scan(&d.Rotulo, &d.Total); err != nil {
			return nil, fmt.Errorf("scan distribuicao: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Funcoes lista as funções distintas cadastradas (filtros de formulário).
func (r *MembroRepo) Funcoes(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DISTINCT funcao FROM membros WHERE funcao <> '' ORDER BY funcao`)
	if err != nil {
		return nil, fmt.Errorf("list funcoes: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, fmt.Errorf("scan funcao: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Emails lista os e-mails não vazios dos membros (lembretes de evento).
func (r *MembroRepo) Emails(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT email FROM membros WHERE email <> '' ORDER BY email`)
	if err != nil {
		return nil, fmt.Errorf("list emails: %w", err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var e string
		if err := rows.Scan(&e); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func filtroMembrosWhere(f repository.FiltroMembros) (string, []any) {
	var conds []string
	var args []any
	add := func(coluna, valor string) {
		if valor == "" {
			return
		}
		args = append(args, valor)
		conds = append(conds, fmt.Sprintf("%s = $%d", coluna, len(args)))
	}
	add("sexo", f.Sexo)
	add("status", f.Status)
	add("estado_civil", f.EstadoCivil)
	add("funcao", f.Funcao)
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func collectMembros(rows pgx.Rows) ([]*entity.Membro, error) {
	var list []*entity.Membro
	for rows.Next() {
		m, err := scanMembro(rows)
		if err != nil {
			return nil, fmt.Errorf("scan membro: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
