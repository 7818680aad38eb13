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

	"github.com/techtitans/estoque-front/internal/application/resolver"
	"github.com/techtitans/estoque-front/internal/application/usecase"
	"github.com/techtitans/estoque-front/internal/domain/repository"
	"github.com/techtitans/estoque-front/internal/infrastructure/backend"
	"github.com/techtitans/estoque-front/internal/infrastructure/memory"
	"github.com/techtitans/estoque-front/internal/infrastructure/postgres"
	httpRouter "github.com/techtitans/estoque-front/internal/interfaces/http"
	"github.com/techtitans/estoque-front/pkg/config"
	"github.com/techtitans/estoque-front/pkg/logger"
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
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicação")

	ctx := context.Background()

	// Sessões: PostgreSQL quando há banco configurado, memória caso contrário.
	var sessions repository.SessionRepository
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
		}
		defer pool.Close()
		sessions = postgres.NewSessionRepository(pool)
		log.Info().Msg("sessões persistidas no PostgreSQL")
	} else {
		sessions = memory.NewSessionRepository()
		log.Warn().Msg("sem banco configurado; sessões em memória")
	}

	backendClient := backend.New(cfg.Backend.BaseURL)

	authUC := usecase.NewAuthUseCase(backendClient, sessions)
	companyUC := usecase.NewCompanyUseCase(sessions)
	employeeUC := usecase.NewEmployeeUseCase(backendClient)
	productUC := usecase.NewProductUseCase(backendClient)
	ctxResolver := resolver.New(backendClient, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque Front",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		EmployeeUC: employeeUC,
		ProductUC:  productUC,
		Resolver:   ctxResolver,
		Sessions:   sessions,
		Session: httpRouter.SessionConfig{
			Secret:     cfg.Session.Secret,
			CookieName: cfg.Session.CookieName,
			ExpMinutes: cfg.Session.ExpMinutes,
		},
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

	log.Info().Msg("aplicação encerrada")
}
