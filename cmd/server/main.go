package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"mixmodas-api/internal/config"
	"mixmodas-api/internal/db"
	"mixmodas-api/internal/httpserver"
	"mixmodas-api/internal/logging"
	loggingmw "mixmodas-api/internal/middleware/logging"
	"mixmodas-api/internal/repo"
	"mixmodas-api/internal/service"
	"mixmodas-api/internal/upload"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", "mixmodas-api")
	slog.SetDefault(logger)

	// A dead store must not keep the server down: data routes answer 500
	// and the status routes report "disconnected".
	gdb, err := db.Open(cfg.DatabasePath)
	if err != nil {
		logger.Error("store unavailable, serving degraded", "path", cfg.DatabasePath, "error", err)
		gdb = nil
	} else {
		logger.Info("store ready", "path", cfg.DatabasePath)
	}

	store := &repo.GormRepo{DB: gdb}
	uploads := &upload.Store{Dir: cfg.UploadDir}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		StatusHandler:   &httpserver.StatusHTTP{Repo: store},
		ProductHandler:  &httpserver.ProductHTTP{Svc: &service.CatalogService{Repo: store}, Uploads: uploads},
		AuthHandler:     &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: store}},
		WishlistHandler: &httpserver.WishlistHTTP{Svc: &service.WishlistService{Repo: store}},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("mixmodas-api listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)

	if gdb != nil {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	log.Println("mixmodas-api stopped")
}
