package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/terraincognita07/wellnest/internal/api"
	"github.com/terraincognita07/wellnest/internal/cli"
	"github.com/terraincognita07/wellnest/internal/config"
	"github.com/terraincognita07/wellnest/internal/db"
	"github.com/terraincognita07/wellnest/internal/logger"
	"github.com/terraincognita07/wellnest/internal/metrics"
)

const (
	authRateLimitMax    = 30
	authRateLimitWindow = time.Minute
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(args) > 0 && args[0] == "reset-password" {
		return runResetPassword(cfg, args[1:])
	}
	if len(args) > 0 {
		return fmt.Errorf("unknown command %q", args[0])
	}
	return serve(cfg)
}

func runResetPassword(cfg *config.Config, args []string) error {
	flags := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	prompt := flags.Bool("prompt", false, "read the new password from the terminal instead of generating one")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "usage: wellnest reset-password [--prompt] <email>")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errors.New("reset-password expects exactly one email argument")
	}

	return cli.RunResetPasswordCommand(cfg.Database.Path, flags.Arg(0), cli.ResetOptions{Prompt: *prompt})
}

func serve(cfg *config.Config) error {
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() {
		_ = log.Sync()
	}()

	if cfg.Auth.SecretGenerated {
		log.Warn("SECRET_KEY is not set; using a random key, sessions will not survive a restart")
	}
	time.Local = cfg.Server.Location

	database, err := db.OpenSQLite(cfg.Database.Path, log)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	collector := metrics.NewCollector(cfg.App.Name)
	handler, err := api.NewHandler(database, api.Options{
		Secret:       cfg.Auth.Secret,
		TemplatesDir: cfg.Server.TemplatesDir,
		Location:     cfg.Server.Location,
		CookieSecure: cfg.Server.CookieSecure,
		TokenTTL:     cfg.Auth.TokenTTL,
		Logger:       log,
		Events:       collector,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(cfg, handler, collector, log)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("server shutdown failed", zap.Error(err))
		}
	}()

	log.Info("server listening",
		zap.String("addr", cfg.Server.Address()),
		zap.String("env", cfg.App.Environment),
		zap.String("db", cfg.Database.Path),
		zap.String("tz", cfg.Server.Location.String()),
	)
	if err := app.Listen(cfg.Server.Address()); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func newApp(cfg *config.Config, handler *api.Handler, collector *metrics.Collector, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(logger.RequestLogger(log))
	app.Use(compress.New())
	if cfg.Metrics.Enabled {
		app.Use(collector.Middleware())
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(collector.Handler()))
	}
	app.Use("/api/auth", limiter.New(authLimiterConfig()))

	app.Static("/static", cfg.Server.StaticDir)
	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func authLimiterConfig() limiter.Config {
	return limiter.Config{
		Max:        authRateLimitMax,
		Expiration: authRateLimitWindow,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many requests"})
		},
	}
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(code).JSON(fiber.Map{"error": message})
		}
		return c.Status(code).SendString(message)
	}
}
