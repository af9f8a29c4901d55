package dto

// DashboardResponse resposta de GET /api/dashboard: contadores de topo,
// séries dos gráficos, indicadores de crescimento e alertas da sessão.
type DashboardResponse struct {
	TotalMembros    int `json:"total_membros"`
	TotalBatizados  int `json:"total_batizados"`
	TotalDizimistas int `json:"total_dizimistas"`
	TotalEventos    int `json:"total_eventos"`

	// Séries dos últimos meses com lançamentos (rótulos "MM-AAAA")
	FinanceiroLabels   []string `json:"financeiro_labels"`
	FinanceiroEntradas []string `json:"financeiro_entradas"`
	FinanceiroSaidas   []string `json:"financeiro_saidas"`
	SaldoMesFormatado  string   `json:"saldo_mes_formatado"`

	// Crescimento de membros
	Indicadores []IndicadorAnoDTO `json:"indicadores"`
	Variacao    *float64          `json:"variacao,omitempty"`
	Tendencia   string            `json:"tendencia"`

	// Aniversariantes do dia e alerta de evento (uma vez por sessão)
	AniversariantesHoje []string `json:"aniversariantes_hoje"`
	AlertaEvento        bool     `json:"alerta_evento"`
}

// IndicadorAnoDTO indicadores de crescimento de um ano.
type IndicadorAnoDTO struct {
	Ano      int      `json:"ano"`
	Entradas int      `json:"entradas"`
	Saidas   int      `json:"saidas"`
	Saldo    int      `json:"saldo"`
	Taxa     *float64 `json:"taxa,omitempty"`
	TotalAno int      `json:"total_ano"`
}
