package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/agrilync/farmtrack/internal/config"
	"github.com/agrilync/farmtrack/internal/repository/farmstore"
	"github.com/agrilync/farmtrack/internal/repository/mongodb"
	"github.com/agrilync/farmtrack/internal/repository/sheets"
	"github.com/agrilync/farmtrack/internal/scheduler"
	"github.com/agrilync/farmtrack/internal/server/handlers"
	"github.com/agrilync/farmtrack/internal/server/router"
	exportsvc "github.com/agrilync/farmtrack/internal/service/export"
	journeysvc "github.com/agrilync/farmtrack/internal/service/journey"
	"github.com/agrilync/farmtrack/internal/service/notify"
	"github.com/agrilync/farmtrack/pkg/clients/agrilync"
	whatsappclient "github.com/agrilync/farmtrack/pkg/clients/whatsapp"
	"github.com/agrilync/farmtrack/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var store farmstore.FarmStore
	switch cfg.Store.Backend {
	case config.BackendMongo:
		mongoRepo, err := mongodb.NewFarmRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb farm store", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		store = mongoRepo
	default:
		store = farmstore.NewAPIStore(agrilync.NewClient(cfg.FarmAPI))
	}

	var notifier notify.Notifier
	if cfg.WhatsApp.AccessToken != "" {
		notifier = notify.NewWhatsAppNotifier(whatsappclient.NewClient(cfg.WhatsApp), baseLogger.Named("notify.whatsapp"))
		baseLogger.Info("whatsapp notifications enabled")
	} else {
		notifier = notify.NewLogNotifier(baseLogger.Named("notify.log"))
		baseLogger.Warn("whatsapp token missing, notices are log-only")
	}

	journeySvc := journeysvc.NewService(store, notifier, baseLogger.Named("svc.journey"))

	var exporter *exportsvc.Service
	if cfg.Sheets.SpreadsheetID != "" {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		exporter = exportsvc.NewService(store, sheetsRepo, baseLogger.Named("svc.export"))
	} else {
		baseLogger.Info("journey report export disabled, no spreadsheet configured")
	}

	journeyHandler := handlers.NewJourneyHandler(journeySvc, baseLogger.Named("handlers.journey"))
	engine := router.New(journeyHandler, baseLogger.Named("router"))

	sched := scheduler.NewScheduler(cfg.Reminder, store, notifier, exporter, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
