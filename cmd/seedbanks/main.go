package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/edulend/loanassist/internal/banks"
	"github.com/edulend/loanassist/internal/common"
	repo "github.com/edulend/loanassist/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	csvPath := cfg.Banks.CSVPath
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	entc, cleanup, err := repo.Open(ctx, repo.Config{
		Driver: cfg.Database.Driver,
		DSN:    cfg.Database.DSN,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := repo.Migrate(ctx, entc, logger); err != nil {
		os.Exit(1)
	}

	rules, err := banks.LoadCSV(csvPath, logger)
	if err != nil {
		logger.Error("failed to load lender csv", "path", csvPath, "error", err)
		os.Exit(1)
	}
	if len(rules) == 0 {
		logger.Warn("no lender rows found", "path", csvPath)
		return
	}

	if err := repo.NewBankRepository(entc, logger).Seed(ctx, rules); err != nil {
		logger.Error("failed to seed lenders", "error", err)
		os.Exit(1)
	}
	logger.Info("lenders seeded", "count", len(rules), "path", csvPath)
}
