package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/soarespaullo/SiGI/internal/domain"
	"github.com/soarespaullo/SiGI/internal/domain/entity"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

var _ repository.FinanceiroRepository = (*FinanceiroRepo)(nil)

const financeiroCols = `id, data, valor, tipo, categoria, conta, descricao, cpf_membro, cnpj_fornecedor, conciliado, comprovante, criado_em`

// FinanceiroRepo implementação do porto FinanceiroRepository sobre PostgreSQL.
type FinanceiroRepo struct {
	q Querier
}

// NewFinanceiroRepository constrói o adaptador de persistência do livro caixa. Aceita pool ou tx.
func NewFinanceiroRepository(q Querier) *FinanceiroRepo {
	return &FinanceiroRepo{q: q}
}

func scanFinanceiro(row pgx.Row) (*entity.Financeiro, error) {
	var f entity.Financeiro
	err := row.Scan(
		&f.ID, &f.Data, &f.Valor, &f.Tipo, &f.Categoria, &f.Conta, &f.Descricao,
		&f.CPFMembro, &f.CNPJFornecedor, &f.Conciliado, &f.Comprovante, &f.CriadoEm,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create persiste um lançamento.
func (r *FinanceiroRepo) Create(ctx context.Context, f *entity.Financeiro) error {
	query := `
		INSERT INTO financeiro (` + financeiroCols + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.Data, f.Valor, f.Tipo, f.Categoria, f.Conta, f.Descricao,
		f.CPFMembro, f.CNPJFornecedor, f.Conciliado, f.Comprovante, f.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert lancamento: %w", err)
	}
	return nil
}

// GetByID obtém um lançamento por ID. Devolve nil, nil quando não existe.
func (r *FinanceiroRepo) GetByID(ctx context.Context, id string) (*entity.Financeiro, error) {
	f, err := scanFinanceiro(r.q.QueryRow(ctx, `SELECT `+financeiroCols+` FROM financeiro WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lancamento: %w", err)
	}
	return f, nil
}

// Update atualiza um lançamento existente.
func (r *FinanceiroRepo) Update(ctx context.Context, f *entity.Financeiro) error {
	query := `
		UPDATE financeiro SET data = $2, valor = $3, tipo = $4, categoria = $5, conta = $6,
			descricao = $7, cpf_membro = $8, cnpj_fornecedor = $9, conciliado = $10, comprovante = $11
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		f.ID, f.Data, f.Valor, f.Tipo, f.Categoria, f.Conta,
		f.Descricao, f.CPFMembro, f.CNPJFornecedor, f.Conciliado, f.Comprovante,
	)
	if err != nil {
		return fmt.Errorf("update lancamento: %w", err)
	}
	return nil
}

// Delete remove um lançamento por ID.
func (r *FinanceiroRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM financeiro WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lancamento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// ListByTipo lista lançamentos de uma direção, mais recentes primeiro.
func (r *FinanceiroRepo) ListByTipo(ctx context.Context, tipo string) ([]*entity.Financeiro, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+financeiroCols+` FROM financeiro WHERE tipo = $1 ORDER BY data DESC, criado_em DESC`, tipo)
	if err != nil {
		return nil, fmt.Errorf("list lancamentos por tipo: %w", err)
	}
	defer rows.Close()
	return collectFinanceiro(rows)
}

// ListFiltered lista lançamentos dentro do filtro, data crescente.
func (r *FinanceiroRepo) ListFiltered(ctx context.Context, f repository.FiltroFinanceiro) ([]*entity.Financeiro, error) {
	where, args := filtroFinanceiroWhere(f)
	rows, err := r.q.Query(ctx,
		`SELECT `+financeiroCols+` FROM financeiro `+where+` ORDER BY data, criado_em`, args...)
	if err != nil {
		return nil, fmt.Errorf("list lancamentos filtrados: %w", err)
	}
	defer rows.Close()
	return collectFinanceiro(rows)
}

// TotalPorTipo soma todos os lançamentos de uma direção; zero quando não há linhas.
func (r *FinanceiroRepo) TotalPorTipo(ctx context.Context, tipo string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(valor), 0) FROM financeiro WHERE tipo = $1`, tipo).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total por tipo: %w", err)
	}
	return total, nil
}

// PorCategoria agrega valores por categoria dentro do filtro.
func (r *FinanceiroRepo) PorCategoria(ctx context.Context, f repository.FiltroFinanceiro) (map[string]decimal.Decimal, error) {
	where, args := filtroFinanceiroWhere(f)
	query := `
		SELECT COALESCE(NULLIF(categoria, ''), 'Sem categoria') AS cat, SUM(valor)
		FROM financeiro ` + where + ` GROUP BY cat`
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("totais por categoria: %w", err)
	}
	defer rows.Close()
	out := make(map[string]decimal.Decimal)
	for rows.Next() {
		var cat string
		var total decimal.Decimal
		if err := rows.Scan(&cat, &total); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		out[cat] = total
	}
	return out, rows.Err()
}

func filtroFinanceiroWhere(f repository.FiltroFinanceiro) (string, []any) {
	var conds []string
	var args []any
	if f.Inicio != nil {
		args = append(args, *f.Inicio)
		conds = append(conds, fmt.Sprintf("data >= $%d", len(args)))
	}
	if f.Fim != nil {
		args = append(args, *f.Fim)
		conds = append(conds, fmt.Sprintf("data <= $%d", len(args)))
	}
	if f.Tipo != "" {
		args = append(args, f.Tipo)
		conds = append(conds, fmt.Sprintf("tipo = $%d", len(args)))
	}
	if f.Categoria != "" {
		args = append(args, "%"+f.Categoria+"%")
		conds = append(conds, fmt.Sprintf("categoria ILIKE $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func collectFinanceiro(rows pgx.Rows) ([]*entity.Financeiro, error) {
	var list []*entity.Financeiro
	for rows.Next() {
		f, err := scanFinanceiro(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lancamento: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
