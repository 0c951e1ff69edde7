package main

import (
	"context"
	"os/signal"
	"syscall"

	"workio/internal/notify"
	api "workio/internal/oapi"
	"workio/internal/transport/http/middleware"
	handlers_fiber "workio/internal/transport/http/server/handlers-fiber"
	"workio/internal/usecase"
	"workio/pkg/tracing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	tp, err := tracing.New(ctx, tracing.Options{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
		Insecure:    cfg.Tracing.Insecure,
	})
	if err != nil {
		log.Errorw("tracing initialization error", "error", err)
		return err
	}

	repo, err := openRepository(ctx, cfg, log)
	if err != nil {
		log.Errorw("repository error", "error", err)
		return err
	}

	center := notify.New(log, cfg.Notifications.TTL, cfg.Notifications.JanitorInterval)
	if err := center.OnStart(ctx); err != nil {
		return err
	}

	uc := usecase.New(log, ctx, repo, center, cfg.HTTP.RequestTimeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
		ErrorHandler: handlers_fiber.ErrorHandler,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.Actor())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	api.RegisterHandlers(serv, h)

	go func() {
		log.Infow("http server listening", "addr", cfg.ServerAddr(), "backend", cfg.Storage.Backend, "tracing", tp.Enabled())
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

	g, gctx := errgroup.WithContext(shutdownCtx)
	g.Go(func() error { return center.OnStop(gctx) })
	g.Go(func() error { return repo.OnStop(gctx) })
	g.Go(func() error { return tp.Shutdown(gctx) })
	if err := g.Wait(); err != nil {
		log.Warnw("shutdown incomplete", "error", err)
	}
	log.Infow("server stopped")
	return nil
}
