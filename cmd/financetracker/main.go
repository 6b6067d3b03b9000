package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/config"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/persistence"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/repositories"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/services"
	"github.com/danilprakh0v/dprakhov-sd-hw2/internal/ui"
)

func main() {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     cfg.Logging.SlogLevel(),
		AddSource: cfg.Logging.AddSource,
	}))
	slog.SetDefault(logger)

	accountRepo := repositories.NewInMemoryBankAccountRepository()
	categoryRepo := repositories.NewInMemoryCategoryRepository()
	operationRepo := repositories.NewInMemoryOperationRepository()

	accountService, err := services.NewAccountService(accountRepo)
	if err != nil {
		fatal("failed to create account service", err)
	}

	categoryService, err := services.NewCategoryService(categoryRepo)
	if err != nil {
		fatal("failed to create category service", err)
	}

	operationService, err := services.NewOperationService(operationRepo)
	if err != nil {
		fatal("failed to create operation service", err)
	}

	analyticsService, err := services.NewAnalyticsService(accountRepo, categoryRepo, operationRepo)
	if err != nil {
		fatal("failed to create analytics service", err)
	}

	jsonHandler, err := persistence.NewJSONHandler(accountRepo, categoryRepo, operationRepo)
	if err != nil {
		fatal("failed to create persistence handler", err)
	}

	slog.Info("finance tracker starting",
		"environment", cfg.App.Environment,
		"data_file", cfg.App.DataFile)

	app := ui.NewApp(
		accountService,
		categoryService,
		operationService,
		analyticsService,
		jsonHandler,
		cfg,
	)
	app.Run(os.Stdin, os.Stdout)

	slog.Info("finance tracker stopped")
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
