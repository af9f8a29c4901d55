package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soarespaullo/SiGI/internal/application/dto"
	apprelatorio "github.com/soarespaullo/SiGI/internal/application/relatorio"
)

// DashboardHandler painel inicial do sistema.
type DashboardHandler struct {
	uc      *apprelatorio.DashboardUseCase
	alertas *AlertaStore
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *apprelatorio.DashboardUseCase, alertas *AlertaStore) *DashboardHandler {
	return &DashboardHandler{uc: uc, alertas: alertas}
}

// Painel godoc
// @Summary      Painel com contadores, gráficos e alertas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Painel(c *fiber.Ctx) error {
	out, err := h.uc.Painel(c.Context())
	if err != nil {
		return respostaErro(c, err)
	}
	// Alerta de evento iminente persiste no painel até ser dispensado.
	if out.AlertaEvento && h.alertas.Dispensado(GetSessao(c)) {
		out.AlertaEvento = false
	}
	return c.JSON(out)
}

// DispensarAlerta godoc
// @Summary      Dispensar o alerta de evento pelo resto da sessão
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MensagemResponse
// @Router       /api/dashboard/dispensar-alerta [post]
func (h *DashboardHandler) DispensarAlerta(c *fiber.Ctx) error {
	h.alertas.Dispensar(GetSessao(c))
	return c.JSON(dto.MensagemResponse{Mensagem: "alerta dispensado"})
}
