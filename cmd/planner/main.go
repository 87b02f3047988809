package main

import (
	"flag"
	"lintang/pathplanner/pkg/engine/routingalgorithm"
	"lintang/pathplanner/pkg/kv"
	"lintang/pathplanner/pkg/server/rest"
	"lintang/pathplanner/pkg/server/rest/service"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	listenAddr    = flag.String("listenaddr", ":5000", "server listen address")
	dbPath        = flag.String("db", "pathplannerDB", "pebble directory buat cache hasil plan")
	useCache      = flag.Bool("cache", true, "cache hasil plan di pebble")
	maxExpansions = flag.Int("max-expansions", 0, "batas jumlah cell yang di-expand per plan (0 = tanpa batas)")
	jsonLog       = flag.Bool("json-log", false, "log dalam format json")
)

func main() {
	flag.Parse()

	logger := httplog.NewLogger("pathplanner", httplog.Options{
		LogLevel:         slog.LevelInfo,
		JSON:             *jsonLog,
		Concise:          true,
		MessageFieldName: "message",
		TimeFieldFormat:  time.RFC3339,
		Tags: map[string]string{
			"version": "v1.0",
		},
		QuietDownRoutes: []string{
			"/metrics",
		},
		QuietDownPeriod: 10 * time.Second,
	})

	var kvDB service.KVDB
	if *useCache {
		db, err := pebble.Open(*dbPath, &pebble.Options{})
		if err != nil {
			logger.Error("open pebble", "path", *dbPath, "err", err)
			os.Exit(1)
		}
		store := kv.NewKVDB(db)
		defer store.Close()
		kvDB = store
	}

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger, []string{"/metrics"}))
	r.Use(middleware.Recoverer)
	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	opts := []routingalgorithm.Option{}
	if *maxExpansions > 0 {
		opts = append(opts, routingalgorithm.WithMaxExpansions(*maxExpansions))
	}
	routingAlgorithm := routingalgorithm.NewGridRouteAlgorithm(opts...)

	plannerSvc := service.NewPlannerService(routingAlgorithm, kvDB)
	rest.PlannerRouter(r, plannerSvc, m)

	logger.Info("server started", "addr", *listenAddr, "cache", *useCache, "max_expansions", *maxExpansions)
	if err := http.ListenAndServe(*listenAddr, r); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
