package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookstore/internal/catalog"
	"bookstore/internal/config"
	"bookstore/internal/logger"
	"bookstore/internal/metrics"

	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnvFiles()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	cat, err := catalog.New(cfg.StoreName)
	if err != nil {
		log.WithError(err).Fatal("cannot build catalog")
	}
	metrics.CatalogEntries.Set(float64(cat.Len()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(ctx, cfg, cat, log),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown")
		}
	}()

	log.WithFields(logrus.Fields{
		"addr":    cfg.Addr,
		"catalog": cat.Name(),
		"novels":  cat.Len(),
	}).Info("starting server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server error")
	}
	log.Info("server stopped")
}
