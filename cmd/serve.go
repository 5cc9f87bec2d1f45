package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"industry-flow/config"
	"industry-flow/internal/analytics"
	"industry-flow/internal/auth"
	"industry-flow/internal/msgraph"
	"industry-flow/internal/notify"
	api "industry-flow/internal/oapi"
	"industry-flow/internal/repository"
	"industry-flow/internal/transport/http/middleware"
	"industry-flow/internal/transport/http/server/handlers-fiber"
	"industry-flow/internal/usecase"
	"industry-flow/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the REST API server.

Configuration is read from the environment (and config/.env when present).
Database migrations are applied on start.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	rateTable, err := cfg.Currency.ParseRates()
	if err != nil {
		return err
	}
	rates, err := analytics.NewRates(cfg.Currency.Base, rateTable)
	if err != nil {
		return fmt.Errorf("currency rates: %w", err)
	}
	if !rates.Has(cfg.Currency.Default) {
		return fmt.Errorf("currency.default %s has no exchange rate", cfg.Currency.Default)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return err
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	graph := msgraph.New(cfg.Graph, log)
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.Issuer)

	dispatcher := notify.NewDispatcher(ctx, log, true, cfg.Graph.Timeout)
	if cfg.Notifications.Email {
		dispatcher.Register(notify.NewMailSender(repo, graph))
	}
	if !dispatcher.HasSenders() {
		log.Infow("notifications are delivered in-app only")
	}

	uc := usecase.New(log, ctx, repo, usecase.Deps{
		Rates:           rates,
		DefaultCurrency: cfg.Currency.Default,
		Tokens:          issuer,
		Links:           graph,
		Notifier:        dispatcher,
	}, cfg.HTTP.RequestTimeout)

	serv := newServer(cfg, log, issuer, uc, handlers_fiber.NewHandler(log, uc))

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}

	if err := dispatcher.Wait(shutdownCtx); err != nil {
		log.Warnw("pending notifications dropped", "error", err)
	}
	return nil
}

func newServer(cfg *config.Config, log *zap.SugaredLogger, tokens middleware.TokenParser, accounts middleware.PrincipalResolver, h *handlers_fiber.Handler) *fiber.App {
	serv := fiber.New(fiber.Config{
		ErrorHandler: handlers_fiber.ErrorHandler,
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(cors.New(cors.Config{AllowOrigins: cfg.HTTP.CORSOrigins}))
	serv.Use(middleware.RequestLogger(log, "/healthz"))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	group := serv.Group("/api", middleware.Authenticate(tokens, accounts, "/api/auth/login", "/api/auth/register"))
	api.RegisterHandlers(group, h)
	return serv
}

func newLogger(cmd *cobra.Command, level string) (*zap.SugaredLogger, error) {
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		level = override
	}
	return logger.New(level)
}
