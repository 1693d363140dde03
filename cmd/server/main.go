package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "lintang/georoute/docs"
	"lintang/georoute/pkg/kv"
	"lintang/georoute/pkg/server/rest"
	"lintang/georoute/pkg/server/rest/service"

	"github.com/cockroachdb/pebble"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/paulmach/orb/geojson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	listenAddr = flag.String("listenaddr", ":5000", "server listen address")
	dbPath     = flag.String("db", "georouteDB", "pebble db hasil cmd/preprocessing")
	roadFile   = flag.String("f", "", "file geojson road network, kalau diisi dipakai sebagai dataset menggantikan pebble db")
	logLevel   = flag.String("loglevel", "info", "log level: debug, info, warn, error")
	logJSON    = flag.Bool("logjson", false, "log dalam format json")
)

//	@title			georoute API
//	@version		1.0
//	@description	A* shortest path over geojson road network, mode bikeFoot atau car.

//	@contact.name	lintang birda saputra

//	@license.name	GNU Affero General Public License v3.0
//	@license.url	https://www.gnu.org/licenses/gpl-3.0.en.html

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("invalid -loglevel %q: %v", *logLevel, err)
	}
	logger := httplog.NewLogger("georoute", httplog.Options{
		Writer:           os.Stdout,
		LogLevel:         level,
		JSON:             *logJSON,
		Concise:          true,
		MessageFieldName: "message",
		LevelFieldName:   "severity",
		TimeFieldFormat:  time.RFC3339,
		Tags: map[string]string{
			"version": "v1.0",
		},
		QuietDownRoutes: []string{
			"/metrics",
		},
		QuietDownPeriod: 10 * time.Second,
	})

	networks, closeDB, err := loadNetworks(logger.Logger)
	if err != nil {
		logger.Error("load road network dataset", "err", err)
		os.Exit(1)
	}
	defer closeDB()

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
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

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:5000/swagger/doc.json"), //The url pointing to API definition
	))

	// typed nil *kv.NetworkProvider tidak boleh masuk ke interface
	var provider service.NetworkProvider
	if networks != nil {
		provider = networks
	}
	navigatorSvc := service.NewNavigationService(provider)
	rest.NavigatorRouter(r, navigatorSvc, m)

	srv := &http.Server{
		Addr:              *listenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server started", "addr", *listenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("listen", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
	logger.Info("server stopped")
}

// loadNetworks dataset di-load sekali waktu startup. -f (geojson) diprioritaskan, kalau kosong pakai pebble db.
// server tetap jalan tanpa dataset, endpoint dataset jadi 404.
func loadNetworks(logger *slog.Logger) (*kv.NetworkProvider, func(), error) {
	noop := func() {}
	if *roadFile != "" {
		bb, err := os.ReadFile(*roadFile)
		if err != nil {
			return nil, noop, err
		}
		fc, err := geojson.UnmarshalFeatureCollection(bb)
		if err != nil {
			return nil, noop, err
		}
		networks := kv.NewNetworkProvider(fc, *roadFile)
		logger.Info("road network loaded from geojson", "file", *roadFile, "features", networks.Meta().FeatureCount)
		return networks, noop, nil
	}

	db, err := pebble.Open(*dbPath, &pebble.Options{})
	if err != nil {
		return nil, noop, err
	}
	kvDB := kv.NewKVDB(db)
	closeDB := func() {
		if err := kvDB.Close(); err != nil {
			logger.Error("close pebble db", "err", err)
		}
	}

	networks, err := kv.LoadNetworkProvider(kvDB)
	if errors.Is(err, kv.ErrDatasetNotFound) {
		logger.Warn("no road network dataset in db, run cmd/preprocessing first", "db", *dbPath)
		return nil, closeDB, nil
	}
	if err != nil {
		closeDB()
		return nil, noop, err
	}
	meta := networks.Meta()
	logger.Info("road network loaded from pebble", "db", *dbPath, "id", meta.ID, "features", meta.FeatureCount)
	return networks, closeDB, nil
}
