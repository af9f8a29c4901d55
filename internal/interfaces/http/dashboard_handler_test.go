package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apprelatorio "github.com/soarespaullo/SiGI/internal/application/relatorio"
	"github.com/soarespaullo/SiGI/internal/domain/relatorio"
	"github.com/soarespaullo/SiGI/internal/domain/repository"
	apphttp "github.com/soarespaullo/SiGI/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakePainelRepo struct{}

func (fakePainelRepo) Contadores(_ context.Context) (repository.Contadores, error) {
	return repository.Contadores{Membros: 3}, nil
}

func (fakePainelRepo) TotaisMensaisPorTipo(_ context.Context, _ string) ([]relatorio.TotalMensal, error) {
	return nil, nil
}

func (fakePainelRepo) ContagemCadastroPorMes(_ context.Context) ([]relatorio.ContagemMensal, error) {
	return nil, nil
}

func (fakePainelRepo) ContagemSaidaPorMes(_ context.Context) ([]relatorio.ContagemMensal, error) {
	return nil, nil
}

func (fakePainelRepo) TotalAtivos(_ context.Context) (int, error) { return 3, nil }

func (fakePainelRepo) AniversariantesDoDia(_ context.Context, _ time.Time) ([]string, error) {
	return nil, nil
}

// fakeEventoIminente responde que sempre há evento começando em breve.
type fakeEventoIminente struct {
	repository.EventoRepository
}

func (fakeEventoIminente) ExisteProximoOuEmCurso(_ context.Context, _, _ time.Time) (bool, error) {
	return true, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Harness
// ──────────────────────────────────────────────────────────────────────────────

func buildDashboardApp() *fiber.App {
	uc := apprelatorio.NewDashboardUseCase(fakePainelRepo{}, fakeEventoIminente{})
	handler := apphttp.NewDashboardHandler(uc, apphttp.NewAlertaStore())

	app := fiber.New()
	app.Use(apphttp.AuthMiddleware(testJWTSecret))
	app.Get("/dashboard", handler.Painel)
	app.Post("/dashboard/dispensar-alerta", handler.DispensarAlerta)
	return app
}

func alertaDoPainel(t *testing.T, app *fiber.App, authHeader string) bool {
	t.Helper()
	resp := doRequest(t, app, "/dashboard", authHeader)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var corpo struct {
		AlertaEvento bool `json:"alerta_evento"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&corpo))
	return corpo.AlertaEvento
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes
// ──────────────────────────────────────────────────────────────────────────────

func TestPainel_AlertaPersisteAteSerDispensado(t *testing.T) {
	app := buildDashboardApp()
	auth := tokenComRole(t, "user")

	assert.True(t, alertaDoPainel(t, app, auth), "primeira visita mostra o alerta")
	assert.True(t, alertaDoPainel(t, app, auth), "recarregar o painel não esconde o alerta")

	req := httptest.NewRequest(http.MethodPost, "/dashboard/dispensar-alerta", nil)
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.False(t, alertaDoPainel(t, app, auth), "após dispensar, o alerta some pelo resto da sessão")
}

func TestPainel_DispensaNaoVazaParaOutraSessao(t *testing.T) {
	app := buildDashboardApp()
	auth := tokenComRole(t, "user")

	req := httptest.NewRequest(http.MethodPost, "/dashboard/dispensar-alerta", nil)
	req.Header.Set("Authorization", auth)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	outraSessao := tokenComRole(t, "admin")
	assert.True(t, alertaDoPainel(t, app, outraSessao), "outra sessão continua vendo o alerta")
}
