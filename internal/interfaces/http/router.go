// Package http expõe a API REST do sistema via Fiber: middleware de
// autenticação JWT, handlers por módulo e o registro de rotas.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/auth"
	apprelatorio "github.com/soarespaullo/SiGI/internal/application/relatorio"
	"github.com/soarespaullo/SiGI/internal/application/usecase"
	"github.com/soarespaullo/SiGI/internal/infrastructure/backup"
)

// RouterDeps dependências para o registro de rotas.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	MembroUC      *usecase.MembroUseCase
	EventoUC      *usecase.EventoUseCase
	FinanceiroUC  *usecase.FinanceiroUseCase
	PatrimonioUC  *usecase.PatrimonioUseCase
	AtaUC         *usecase.AtaUseCase
	CertificadoUC *usecase.CertificadoUseCase
	CartaUC       *usecase.CartaUseCase
	UsuarioUC     *usecase.UsuarioUseCase
	ConfigUC      *usecase.ConfigUseCase
	DashboardUC   *apprelatorio.DashboardUseCase
	Backup        *backup.Service
	Auditoria     *auditoria.Registrador
	JWTSecret     string
	UploadDir     string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	alertas := NewAlertaStore()
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Auditoria, alertas)
	authGroup := api.Group("/auth")
	authGroup.Get("/setup", authHandler.SetupStatus)
	authGroup.Post("/setup", authHandler.Setup)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Fluxos públicos via link ou token compartilhado. Registrados antes
	// do grupo protegido para não caírem nas rotas /:id autenticadas.
	membroHandler := NewMembroHandler(deps.MembroUC, deps.UploadDir)
	eventoHandler := NewEventoHandler(deps.EventoUC)
	api.Get("/membros/cadastro-visitante/:hash", membroHandler.ValidarLinkPublico)
	api.Post("/membros/cadastro-visitante/:hash", membroHandler.CadastrarVisitante)
	api.Get("/eventos/publico/:token", eventoHandler.VisualizacaoPublica)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/perfil", authHandler.Perfil)
	protected.Put("/perfil", authHandler.AtualizarPerfil)
	protected.Put("/perfil/senha", authHandler.AlterarSenha)

	// Membros. Rotas fixas antes de /:id.
	membros := protected.Group("/membros")
	membros.Post("/", membroHandler.Create)
	membros.Get("/", membroHandler.List)
	membros.Get("/funcoes", membroHandler.Funcoes)
	membros.Get("/aniversariantes", membroHandler.Aniversariantes)
	membros.Get("/aniversariantes.pdf", membroHandler.AniversariantesPDF)
	membros.Get("/relatorio", membroHandler.Relatorio)
	membros.Get("/relatorio.pdf", membroHandler.RelatorioPDF)
	membros.Get("/link-publico", membroHandler.LinkAtivo)
	membros.Post("/link-publico", membroHandler.GerarLink)
	membros.Delete("/link-publico", membroHandler.DesativarLink)
	membros.Get("/:id", membroHandler.GetByID)
	membros.Put("/:id", membroHandler.Update)
	membros.Delete("/:id", membroHandler.Delete)
	membros.Get("/:id/ficha.pdf", membroHandler.FichaPDF)
	membros.Post("/:id/foto", membroHandler.AnexarFoto)

	// Eventos
	eventos := protected.Group("/eventos")
	eventos.Post("/", eventoHandler.Create)
	eventos.Get("/", eventoHandler.List)
	eventos.Post("/enviar-lembretes", eventoHandler.EnviarLembretes)
	eventos.Get("/:id", eventoHandler.GetByID)
	eventos.Put("/:id", eventoHandler.Update)
	eventos.Delete("/:id", eventoHandler.Delete)

	// Financeiro
	financeiroHandler := NewFinanceiroHandler(deps.FinanceiroUC, deps.UploadDir)
	financeiro := protected.Group("/financeiro")
	financeiro.Post("/", financeiroHandler.Create)
	financeiro.Get("/", financeiroHandler.ListPorTipo)
	financeiro.Get("/relatorio", financeiroHandler.Relatorio)
	financeiro.Get("/export.csv", financeiroHandler.ExportarCSV)
	financeiro.Get("/comprovantes", financeiroHandler.ListarComprovantes)
	financeiro.Post("/comprovantes", financeiroHandler.EnviarComprovante)
	financeiro.Get("/:id", financeiroHandler.GetByID)
	financeiro.Put("/:id", financeiroHandler.Update)
	financeiro.Delete("/:id", financeiroHandler.Delete)
	financeiro.Post("/:id/comprovante", financeiroHandler.AnexarComprovante)
	financeiro.Get("/:id/comprovante", financeiroHandler.Comprovante)

	// Patrimônio
	patrimonioHandler := NewPatrimonioHandler(deps.PatrimonioUC)
	patrimonios := protected.Group("/patrimonios")
	patrimonios.Post("/", patrimonioHandler.Create)
	patrimonios.Get("/", patrimonioHandler.List)
	patrimonios.Get("/:id", patrimonioHandler.GetByID)
	patrimonios.Put("/:id", patrimonioHandler.Update)
	patrimonios.Delete("/:id", patrimonioHandler.Delete)

	// Documentos: atas, certificados e cartas
	documentos := protected.Group("/documentos")

	ataHandler := NewAtaHandler(deps.AtaUC)
	atas := documentos.Group("/atas")
	atas.Post("/", ataHandler.Create)
	atas.Get("/", ataHandler.List)
	atas.Get("/:id", ataHandler.GetByID)
	atas.Put("/:id", ataHandler.Update)
	atas.Delete("/:id", ataHandler.Delete)

	certificadoHandler := NewCertificadoHandler(deps.CertificadoUC)
	certificados := documentos.Group("/certificados")
	certificados.Post("/", certificadoHandler.Create)
	certificados.Get("/", certificadoHandler.List)
	certificados.Get("/:id", certificadoHandler.GetByID)
	certificados.Put("/:id", certificadoHandler.Update)
	certificados.Delete("/:id", certificadoHandler.Delete)

	cartaHandler := NewCartaHandler(deps.CartaUC)
	cartas := documentos.Group("/cartas")
	cartas.Post("/", cartaHandler.Create)
	cartas.Get("/", cartaHandler.List)
	cartas.Get("/:id", cartaHandler.GetByID)
	cartas.Put("/:id", cartaHandler.Update)
	cartas.Delete("/:id", cartaHandler.Delete)
	cartas.Get("/:id/pdf", cartaHandler.PDF)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, alertas)
	protected.Get("/dashboard", dashboardHandler.Painel)
	protected.Post("/dashboard/dispensar-alerta", dashboardHandler.DispensarAlerta)

	// Configurações (somente admin)
	configHandler := NewConfigHandler(deps.ConfigUC, deps.Backup, deps.Auditoria)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	admin := protected.Group("/configuracoes", RequireAdmin())
	admin.Get("/email", configHandler.GetEmail)
	admin.Put("/email", configHandler.SalvarEmail)
	admin.Get("/backup", configHandler.GerarBackup)
	admin.Post("/backup/restaurar", configHandler.RestaurarBackup)
	admin.Get("/logs", configHandler.ListarLogs)
	admin.Post("/logs/purgar", configHandler.PurgarLogs)
	admin.Delete("/logs", configHandler.LimparLogs)
	admin.Post("/usuarios", usuarioHandler.Create)
	admin.Get("/usuarios", usuarioHandler.List)
	admin.Get("/usuarios/:id", usuarioHandler.GetByID)
	admin.Put("/usuarios/:id", usuarioHandler.Update)
	admin.Delete("/usuarios/:id", usuarioHandler.Delete)
}
