package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk/cmd"
	httpadapter "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/adapters/out/postgres/activityrepo"
	"orderdesk/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	loadDotEnv()

	configs, err := cmd.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := openJournal(ctx, configs, logger)
	defer func() {
		if closeErr := postgres.Close(gormDB); closeErr != nil {
			logger.Error("Failed to close activity journal", "error", closeErr)
		}
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	refresh := app.CreateRefreshBoardCommandHandler()
	if err = refresh.Handle(ctx, commands.NewRefreshBoardCommand()); err != nil {
		logger.WarnContext(ctx, "Initial board refresh failed", "error", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

// loadDotEnv applies .env when present; the process environment wins.
func loadDotEnv() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}
}

// openJournal returns nil when no database is configured, which disables the
// activity journal.
func openJournal(ctx context.Context, configs cmd.Config, logger *slog.Logger) *gorm.DB {
	dsn, err := configs.DSN()
	if err != nil {
		log.Fatalf("Invalid database configuration: %v", err)
	}
	if dsn == "" {
		logger.InfoContext(ctx, "No database configured, activity journal disabled")
		return nil
	}

	gormDB, err := postgres.Open(ctx, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = activityrepo.NewGormActivityRepository(gormDB).Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate activity journal: %v", err)
	}
	return gormDB
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	if err := httpadapter.Register(e, app.CreateServer()); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}
