package main

import (
	"context"
	"os"

	"bookstore/internal/catalog"
	"bookstore/internal/config"
	"bookstore/internal/logger"
	"bookstore/internal/report"
)

func main() {
	config.LoadEnvFiles()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	cat, err := catalog.New(cfg.StoreName)
	if err != nil {
		log.WithError(err).Fatal("cannot build catalog")
	}

	opts := report.DefaultOptions()
	opts.ShopExclude = cfg.ShopExclude

	done := logger.Track(context.Background(), log, "report")
	if err := report.Write(os.Stdout, cat, opts); err != nil {
		log.WithError(err).Fatal("cannot write report")
	}
	done()
}
