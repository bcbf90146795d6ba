package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/rmoreira/contas/internal/config"
	"github.com/rmoreira/contas/internal/database"
	"github.com/rmoreira/contas/internal/export"
	contasHttp "github.com/rmoreira/contas/internal/http"
	categoryHandler "github.com/rmoreira/contas/internal/http/category"
	exportHandler "github.com/rmoreira/contas/internal/http/export"
	importHandler "github.com/rmoreira/contas/internal/http/importcsv"
	reportHandler "github.com/rmoreira/contas/internal/http/report"
	txHandler "github.com/rmoreira/contas/internal/http/transaction"
	"github.com/rmoreira/contas/internal/importer"
	"github.com/rmoreira/contas/internal/matching"
	matchingStore "github.com/rmoreira/contas/internal/matching/store"
	"github.com/rmoreira/contas/internal/transaction"
	txStore "github.com/rmoreira/contas/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.Storage.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ledgerStore := txStore.New(db)

	var (
		transactionService = transaction.NewService(ledgerStore)
		matchingService    = matching.NewService(matchingStore.New(db))
		importService      = importer.NewService(matchingService)
		exportService      = export.NewService(transactionService)
	)

	if len(os.Args) > 1 && os.Args[1] == "--reset" {
		if err := ledgerStore.Save(context.Background(), nil); err != nil {
			slog.Error("failed to reset ledger", "error", err)
			os.Exit(1)
		}

		slog.Info("ledger reset to empty", "path", cfg.Storage.Path)
	}

	// Fail fast on a corrupt ledger instead of serving an empty one.
	if _, err := transactionService.List(context.Background(), transaction.Filter{}); err != nil {
		slog.Error("failed to load ledger, rerun with --reset to start over",
			"error", err, "path", cfg.Storage.Path)
		os.Exit(1)
	}

	if cfg.Demo.Seed {
		if err := transactionService.SeedDemo(context.Background(), time.Now()); err != nil {
			slog.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	var (
		transactionH = txHandler.NewHandler(transactionService)
		reportH      = reportHandler.NewHandler(transactionService)
		exportH      = exportHandler.NewHandler(exportService)
		importH      = importHandler.NewHandler(importService, transactionService, matchingService)
		categoryH    = categoryHandler.NewHandler()
	)

	router := contasHttp.New(transactionH, reportH, exportH, importH, categoryH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port, "db", cfg.Storage.Path)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
