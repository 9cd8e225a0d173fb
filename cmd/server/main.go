package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizza-api/internal/config"
	"pizza-api/internal/handlers"
	"pizza-api/internal/logger"
	"pizza-api/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	log.Info("starting pizza api", "port", cfg.Port, "database", cfg.DatabaseName)

	// A failed connection is not fatal: the server still answers, the
	// /test endpoint reports the broken store, and data endpoints return
	// a service-unavailable error.
	st, err := store.Connect(context.Background(), cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		log.Warn("database unavailable at startup", "error", err)
	} else {
		log.Info("connected to database", "database", cfg.DatabaseName)
	}

	router := handlers.NewRouter(cfg, st, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
	if err := st.Close(ctx); err != nil {
		log.Error("closing database connection", "error", err)
	}

	log.Info("server stopped")
}
