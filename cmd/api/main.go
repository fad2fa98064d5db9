package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/gsjs-tp/volunteer-service/internal/api/http"
	"github.com/gsjs-tp/volunteer-service/internal/api/http/handlers"
	"github.com/gsjs-tp/volunteer-service/internal/auth"
	"github.com/gsjs-tp/volunteer-service/internal/config"
	"github.com/gsjs-tp/volunteer-service/internal/events"
	"github.com/gsjs-tp/volunteer-service/internal/mail"
	"github.com/gsjs-tp/volunteer-service/internal/observability"
	"github.com/gsjs-tp/volunteer-service/internal/persistence"
	"github.com/gsjs-tp/volunteer-service/internal/repository"
	"github.com/gsjs-tp/volunteer-service/internal/service"
	"github.com/gsjs-tp/volunteer-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.Handle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	db := pg.Handle()
	memberRepo := repository.NewMemberRepository(db)
	accountRepo := repository.NewUserAccountRepository(db)
	divisionRepo := repository.NewDivisionRepository(db)

	mailer := mail.NewDispatcher(mail.NewResendTransport(cfg.Mail.ResendAPIKey), cfg.Mail, logger)
	if !mailer.VerifyConnection(ctx) {
		logger.Warn("mail transport unreachable at startup")
	}

	memberService := service.NewMemberService(memberRepo, dispatcher, logger)
	registrationService := service.NewRegistrationService(service.RegistrationDependencies{
		MemberRepo:   memberRepo,
		AccountRepo:  accountRepo,
		DivisionRepo: divisionRepo,
		Mailer:       mailer,
		Dispatcher:   dispatcher,
		Metrics:      metrics,
		Logger:       logger,
		BcryptCost:   cfg.Auth.BcryptCost,
	})
	authService := service.NewAuthService(cfg.Auth, accountRepo)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), accountRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, mailer),
		Auth:           handlers.NewAuthHandler(authService),
		Members:        handlers.NewMembersHandler(memberService, registrationService),
		Divisions:      handlers.NewDivisionsHandler(divisionRepo),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
