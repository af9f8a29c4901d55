package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/soarespaullo/SiGI/internal/domain/relatorio"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas de leitura do painel e dos relatórios estatísticos.
type RelatorioRepo struct {
	pool *pgxpool.Pool
}

// NewRelatorioRepository constrói o adaptador de agregações.
func NewRelatorioRepository(pool *pgxpool.Pool) *RelatorioRepo {
	return &RelatorioRepo{pool: pool}
}

// Contadores devolve os totais de topo do painel em uma consulta.
func (r *RelatorioRepo) Contadores(ctx context.Context) (repository.Contadores, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM membros)                              AS membros,
	    (SELECT COUNT(*) FROM membros WHERE batizado IS TRUE)       AS batizados,
	    (SELECT COUNT(*) FROM membros WHERE dizimista IS TRUE)      AS dizimistas,
	    (SELECT COUNT(*) FROM eventos)                              AS eventos`
	var c repository.Contadores
	err := r.pool.QueryRow(ctx, query).Scan(&c.Membros, &c.Batizados, &c.Dizimistas, &c.Eventos)
	if err != nil {
		return repository.Contadores{}, fmt.Errorf("relatorio.Contadores: %w", err)
	}
	return c, nil
}

// TotaisMensaisPorTipo agrupa lançamentos do tipo por ano e mês, ordem cronológica.
// Meses sem lançamento não aparecem no resultado.
func (r *RelatorioRepo) TotaisMensaisPorTipo(ctx context.Context, tipo string) ([]relatorio.TotalMensal, error) {
	const query = `
	SELECT
	    EXTRACT(YEAR  FROM data)::INT AS ano,
	    EXTRACT(MONTH FROM data)::INT AS mes,
	    SUM(valor)                    AS total
	FROM financeiro
	WHERE tipo = $1
	GROUP BY ano, mes
	ORDER BY ano, mes`

	rows, err := r.pool.Query(ctx, query, tipo)
	if err != nil {
		return nil, fmt.Errorf("relatorio.TotaisMensaisPorTipo: %w", err)
	}
	defer rows.Close()

	var serie []relatorio.TotalMensal
	for rows.Next() {
		var t relatorio.TotalMensal
		if err := rows.Scan(&t.Ano, &t.Mes, &t.Total); err != nil {
			return nil, fmt.Errorf("relatorio.TotaisMensaisPorTipo scan: %w", err)
		}
		serie = append(serie, t)
	}
	return serie, rows.Err()
}

// ContagemCadastroPorMes agrupa membros pelo mês da data de cadastro.
func (r *RelatorioRepo) ContagemCadastroPorMes(ctx context.Context) ([]relatorio.ContagemMensal, error) {
	return r.contagemPorMes(ctx, "data_cadastro")
}

// ContagemSaidaPorMes agrupa membros pelo mês da data de saída.
func (r *RelatorioRepo) ContagemSaidaPorMes(ctx context.Context) ([]relatorio.ContagemMensal, error) {
	return r.contagemPorMes(ctx, "data_saida")
}

func (r *RelatorioRepo) contagemPorMes(ctx context.Context, coluna string) ([]relatorio.ContagemMensal, error) {
	query := fmt.Sprintf(`
	SELECT
	    EXTRACT(YEAR  FROM %s)::INT AS ano,
	    EXTRACT(MONTH FROM %s)::INT AS mes,
	    COUNT(*)                    AS quantidade
	FROM membros
	WHERE %s IS NOT NULL
	GROUP BY ano, mes
	ORDER BY ano, mes`, coluna, coluna, coluna)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("relatorio.contagemPorMes(%s): %w", coluna, err)
	}
	defer rows.Close()

	var serie []relatorio.ContagemMensal
	for rows.Next() {
		var c relatorio.ContagemMensal
		if err := rows.Scan(&c.Ano, &c.Mes, &c.Quantidade); err != nil {
			return nil, fmt.Errorf("relatorio.contagemPorMes scan: %w", err)
		}
		serie = append(serie, c)
	}
	return serie, rows.Err()
}

// TotalAtivos conta membros sem data de saída.
func (r *RelatorioRepo) TotalAtivos(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM membros WHERE data_saida IS NULL`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("relatorio.TotalAtivos: %w", err)
	}
	return n, nil
}

// AniversariantesDoDia lista nomes de membros que aniversariam na data dada.
func (r *RelatorioRepo) AniversariantesDoDia(ctx context.Context, dia time.Time) ([]string, error) {
	const query = `
	SELECT nome FROM membros
	WHERE data_nascimento IS NOT NULL
	  AND EXTRACT(MONTH FROM data_nascimento) = $1
	  AND EXTRACT(DAY   FROM data_nascimento) = $2
	ORDER BY nome`

	rows, err := r.pool.Query(ctx, query, int(dia.Month()), dia.Day())
	if err != nil {
		return nil, fmt.Errorf("relatorio.AniversariantesDoDia: %w", err)
	}
	defer rows.Close()

	var nomes []string
	for rows.Next() {
		var nome string
		if err := rows.Scan(&nome); err != nil {
			return nil, fmt.Errorf("relatorio.AniversariantesDoDia scan: %w", err)
		}
		nomes = append(nomes, nome)
	}
	return nomes, rows.Err()
}
