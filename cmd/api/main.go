package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/soarespaullo/SiGI/internal/application/auditoria"
	"github.com/soarespaullo/SiGI/internal/application/auth"
	apprelatorio "github.com/soarespaullo/SiGI/internal/application/relatorio"
	"github.com/soarespaullo/SiGI/internal/application/usecase"
	"github.com/soarespaullo/SiGI/internal/infrastructure/backup"
	"github.com/soarespaullo/SiGI/internal/infrastructure/mail"
	infrapdf "github.com/soarespaullo/SiGI/internal/infrastructure/pdf"
	"github.com/soarespaullo/SiGI/internal/infrastructure/postgres"
	httpRouter "github.com/soarespaullo/SiGI/internal/interfaces/http"
	"github.com/soarespaullo/SiGI/pkg/config"
	"github.com/soarespaullo/SiGI/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	membroRepo := postgres.NewMembroRepository(pool)
	eventoRepo := postgres.NewEventoRepository(pool)
	financeiroRepo := postgres.NewFinanceiroRepository(pool)
	patrimonioRepo := postgres.NewPatrimonioRepository(pool)
	ataRepo := postgres.NewAtaRepository(pool)
	certificadoRepo := postgres.NewCertificadoRepository(pool)
	cartaRepo := postgres.NewCartaRepository(pool)
	logRepo := postgres.NewLogRepository(pool)
	linkRepo := postgres.NewLinkPublicoRepository(pool)
	configEmailRepo := postgres.NewConfigEmailRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)

	registrador := auditoria.NewRegistrador(logRepo, log)
	mailer := mail.NewMailer(configEmailRepo, cfg.Mail)
	gerador := infrapdf.NewGerador(cfg.App.NomeIgreja)
	backupSvc := backup.NewService(cfg.DB)

	authUC := auth.NewAuthUseCase(usuarioRepo, registrador, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.BaseURL+"/reset-password")

	membroUC := usecase.NewMembroUseCase(membroRepo, linkRepo, gerador, registrador)
	eventoUC := usecase.NewEventoUseCase(eventoRepo, usuarioRepo, membroRepo, mailer, registrador)
	financeiroUC := usecase.NewFinanceiroUseCase(financeiroRepo, registrador)
	patrimonioUC := usecase.NewPatrimonioUseCase(patrimonioRepo, registrador)
	ataUC := usecase.NewAtaUseCase(ataRepo, registrador)
	certificadoUC := usecase.NewCertificadoUseCase(certificadoRepo, registrador)
	cartaUC := usecase.NewCartaUseCase(cartaRepo, membroRepo, gerador, registrador)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, registrador)
	configUC := usecase.NewConfigUseCase(configEmailRepo, cfg.Mail, registrador)
	dashboardUC := apprelatorio.NewDashboardUseCase(relatorioRepo, eventoRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // restauração de backup envia o ZIP inteiro
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<porta>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SiGI API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		MembroUC:      membroUC,
		EventoUC:      eventoUC,
		FinanceiroUC:  financeiroUC,
		PatrimonioUC:  patrimonioUC,
		AtaUC:         ataUC,
		CertificadoUC: certificadoUC,
		CartaUC:       cartaUC,
		UsuarioUC:     usuarioUC,
		ConfigUC:      configUC,
		DashboardUC:   dashboardUC,
		Backup:        backupSvc,
		Auditoria:     registrador,
		JWTSecret:     cfg.JWT.Secret,
		UploadDir:     cfg.Upload.Dir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
