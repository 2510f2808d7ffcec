package main

import (
	"context"
	"net/http"

	"bookstore/internal/catalog"
	"bookstore/internal/config"
	"bookstore/internal/httpx"
	"bookstore/internal/shop"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func newRouter(ctx context.Context, cfg config.Config, cat *catalog.Catalog, log logrus.FieldLogger) http.Handler {
	catalogHandler := catalog.NewHTTPHandler(cat)
	shopHandler := shop.NewHTTPHandler(shop.New(cat.Entries(), shop.WithExclude(cfg.ShopExclude)))

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if cat.Len() == 0 {
			http.Error(w, "catalog not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.Handler())

	router.HandleFunc("GET /novels", catalogHandler.ListNovels)
	router.HandleFunc("GET /novels/oldest", catalogHandler.Oldest)
	router.HandleFunc("GET /titles", catalogHandler.ListTitles)
	router.HandleFunc("GET /titles/longest", catalogHandler.LongestTitle)
	router.HandleFunc("GET /titles/count", catalogHandler.CountTitles)
	router.HandleFunc("GET /titles/decade/{start}", catalogHandler.TitlesInDecade)
	router.HandleFunc("GET /years/{year}", catalogHandler.PublishedIn)
	router.HandleFunc("GET /stats/published-between", catalogHandler.PercentPublishedBetween)

	router.HandleFunc("GET /shop/titles", shopHandler.Titles)
	router.HandleFunc("GET /shop/sorted", shopHandler.Sorted)
	router.HandleFunc("GET /shop/collisions", shopHandler.Collisions)

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxy)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(log),
		httpx.AccessLogMiddleware(log),
		httpx.MetricsMiddleware,
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.CORSOrigins),
		rateLimiter.Middleware,
	)
}
