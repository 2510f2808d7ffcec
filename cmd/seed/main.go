package main

import (
	"fmt"
	"os"

	"bookstore/internal/catalog"
	"bookstore/internal/config"
	"bookstore/internal/logger"
	"bookstore/internal/shop"

	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnvFiles()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if err := checkSeed(cfg, log); err != nil {
		log.WithError(err).Fatal("seed check failed")
	}
}

// checkSeed builds a catalog from the configured seed document and reports
// what it contains.
func checkSeed(cfg config.Config, log logrus.FieldLogger) error {
	records, source, err := loadRecords(cfg.SeedFile)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"source": source, "records": len(records)}).Info("seed decoded")

	cat, err := catalog.NewFromSeed(cfg.StoreName, records)
	if err != nil {
		return fmt.Errorf("build catalog from %s: %w", source, err)
	}

	fields := logrus.Fields{"catalog": cat.Name(), "novels": cat.Len()}
	if oldest, ok := cat.Oldest(); ok {
		fields["oldest"] = oldest.String()
	}
	log.WithFields(fields).Info("catalog valid")

	view := shop.New(cat.Entries())
	for _, title := range view.Collisions() {
		log.WithField("title", title).Warn("duplicate title, earlier entry is dropped by the shop view")
	}
	return nil
}

func loadRecords(path string) ([]catalog.SeedRecord, string, error) {
	if path == "" {
		records, err := catalog.DefaultSeed()
		return records, "embedded", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read seed: %w", err)
	}
	records, err := catalog.ParseSeed(data)
	return records, path, err
}
