package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	_ "github.com/jhoicas/memberflow-console/docs"
	"github.com/jhoicas/memberflow-console/internal/application/analytics"
	"github.com/jhoicas/memberflow-console/internal/application/auth"
	"github.com/jhoicas/memberflow-console/internal/application/billing"
	"github.com/jhoicas/memberflow-console/internal/application/classes"
	"github.com/jhoicas/memberflow-console/internal/application/people"
	"github.com/jhoicas/memberflow-console/internal/domain/access"
	"github.com/jhoicas/memberflow-console/internal/domain/repository"
	"github.com/jhoicas/memberflow-console/internal/infrastructure/memberflow"
	"github.com/jhoicas/memberflow-console/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/memberflow-console/internal/infrastructure/pdf"
	"github.com/jhoicas/memberflow-console/internal/infrastructure/postgres"
	"github.com/jhoicas/memberflow-console/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/memberflow-console/internal/interfaces/http"
	"github.com/jhoicas/memberflow-console/pkg/config"
	"github.com/jhoicas/memberflow-console/pkg/logger"
	"github.com/jhoicas/memberflow-console/pkg/money"
)

// @title        MemberFlow Console API
// @version      1.0
// @description  Consola de administración de MemberFlow: sesión por cookie y proxy autenticado al backend REST.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("backend", cfg.Backend.BaseURL).
		Str("session_driver", cfg.Session.Driver).
		Msg("iniciando consola")

	// El backend espera importes como números JSON, no como cadenas.
	decimal.MarshalJSONWithoutQuotes = true

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions, closeStore, err := openSessionStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de sesiones")
	}
	defer closeStore()

	reg := metrics.NewRegistry()
	backend := memberflow.NewClient(
		cfg.Backend.BaseURL,
		cfg.Backend.Timeout,
		metrics.NewBackendMetrics(reg, cfg.App.Name, cfg.App.Env),
		log,
	)

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: el rol se lee del token sin verificar la firma")
	}
	resolver := access.NewResolver(cfg.JWT.Secret)
	authUC := auth.NewAuthUseCase(backend, sessions, resolver, auth.SessionConfig{TTL: cfg.Session.TTL}, log)

	moneyFmt := money.NewFormatter(cfg.App.CurrencyLocale, "€")
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name, moneyFmt)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.Backend.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MemberFlow Console API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		DashboardUC:  analytics.NewDashboardUseCase(backend),
		InvoiceUC:    billing.NewInvoiceUseCase(backend, pdfGenerator, moneyFmt),
		PaymentUC:    billing.NewPaymentUseCase(backend),
		CatalogUC:    billing.NewCatalogUseCase(backend),
		UserUC:       people.NewUserUseCase(backend),
		NotifUC:      people.NewNotificationUseCase(backend),
		HistoryUC:    people.NewHistoryUseCase(backend),
		GroupUC:      classes.NewGroupUseCase(backend),
		SessionUC:    classes.NewSessionUseCase(backend),
		AssistanceUC: classes.NewAssistanceUseCase(backend),
		MembershipUC: classes.NewMembershipUseCase(backend),
		Resolver:     resolver,
		Cookie: httpRouter.CookieConfig{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		},
	})

	go authUC.RunJanitor(ctx, cfg.Session.JanitorEvery)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openSessionStore abre el almacén configurado y devuelve la función que lo cierra.
func openSessionStore(ctx context.Context, cfg *config.Config) (repository.SessionRepository, func(), error) {
	if cfg.Session.Driver == "postgres" {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewSessionRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	}

	db, err := sqlite.Open(cfg.Session.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	return sqlite.NewSessionRepository(db), func() { _ = db.Close() }, nil
}
