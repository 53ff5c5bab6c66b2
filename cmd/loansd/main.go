package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	loansv1 "github.com/edulend/loanassist/gen/proto/loans/v1"
	"github.com/edulend/loanassist/internal/auth"
	"github.com/edulend/loanassist/internal/banks"
	"github.com/edulend/loanassist/internal/common"
	"github.com/edulend/loanassist/internal/export"
	"github.com/edulend/loanassist/internal/ocr"
	"github.com/edulend/loanassist/internal/pipeline"
	repo "github.com/edulend/loanassist/internal/repository"
	svc "github.com/edulend/loanassist/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// optional; real deployments set env directly
	_ = godotenv.Load()

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, cleanup, err := repo.Open(ctx, repo.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := repo.Migrate(ctx, entc, logger); err != nil {
		os.Exit(1)
	}

	usersRepo := repo.NewUserRepository(entc, logger)
	docsRepo := repo.NewDocumentRepository(entc, logger)
	appsRepo := repo.NewApplicationRepository(entc, logger)
	apptsRepo := repo.NewAppointmentRepository(entc, logger)
	banksRepo := repo.NewBankRepository(entc, logger)

	// Seed lenders from the reference CSV when present.
	if rules, err := banks.LoadCSV(cfg.Banks.CSVPath, logger); err != nil {
		logger.Error("failed to load lender csv", "path", cfg.Banks.CSVPath, "error", err)
		os.Exit(1)
	} else if len(rules) > 0 {
		if err := banksRepo.Seed(ctx, rules); err != nil {
			logger.Error("failed to seed lenders", "error", err)
			os.Exit(1)
		}
	}

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		Pdftoppm:      cfg.OCR.Pdftoppm,
		TesseractLang: cfg.OCR.TesseractLang,
		DPI:           cfg.OCR.DPI,
		MaxPages:      cfg.OCR.MaxPages,
		TessdataDir:   cfg.OCR.TessdataDir,
	}, logger)
	processor := pipeline.NewProcessor(logger, extractor, docsRepo)

	authService := auth.NewService(usersRepo, cfg.Auth.PBKDF2Iterations, logger)
	exporter := export.NewService(appsRepo, banksRepo, logger)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	loansv1.RegisterAuthServiceServer(grpcServer, svc.NewAuthServer(authService, logger))
	loansv1.RegisterDocumentsServiceServer(grpcServer, svc.NewDocumentsServer(processor, docsRepo, logger))
	loansv1.RegisterRecommendationsServiceServer(grpcServer, svc.NewRecommendationsServer(banksRepo, docsRepo, logger))
	loansv1.RegisterLoansServiceServer(grpcServer, svc.NewLoansServer(appsRepo, apptsRepo, banksRepo, docsRepo, exporter, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("loansd listening", "addr", cfg.Server.GRPCAddr, "driver", cfg.Database.Driver)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
