package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"maragu.dev/goqite"
	"maragu.dev/goqite/jobs"

	"github.com/saleorbridge/saleorbridge/internal/appconfig"
	"github.com/saleorbridge/saleorbridge/internal/auth"
	"github.com/saleorbridge/saleorbridge/internal/httptools"
	"github.com/saleorbridge/saleorbridge/internal/infra/config"
	"github.com/saleorbridge/saleorbridge/internal/infra/db"
	"github.com/saleorbridge/saleorbridge/internal/infra/errtrack"
	"github.com/saleorbridge/saleorbridge/internal/infra/logger"
	"github.com/saleorbridge/saleorbridge/internal/infra/metrics"
	"github.com/saleorbridge/saleorbridge/internal/infra/server"
	"github.com/saleorbridge/saleorbridge/internal/infra/tracing"
	_ "github.com/saleorbridge/saleorbridge/internal/infra/validation"
	"github.com/saleorbridge/saleorbridge/internal/notify"
	"github.com/saleorbridge/saleorbridge/internal/openapi"
	"github.com/saleorbridge/saleorbridge/internal/saleor"
	"github.com/saleorbridge/saleorbridge/internal/search"
	"github.com/saleorbridge/saleorbridge/internal/taxes"
	"github.com/saleorbridge/saleorbridge/pkg/gracefulshutdown"
)

const (
	version              = "1.0.0"
	healthcheckProbePath = "/healthz"
)

func main() {
	//
	// Infra
	//

	gracefulshutdown.SubscribeForShutdown()

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg.Log.Level, cfg.Log.Format, cfg.Env)
	slog.Debug("starting saleorbridge", "env", cfg.Env)

	flushErrors, err := errtrack.Init(cfg.Sentry.DSN, cfg.Env, version)
	if err != nil {
		slog.Error("failed to init error tracking", "error", err)
		os.Exit(1)
	}
	defer flushErrors()
	reporter := errtrack.NewSentryReporter()

	shutdownTracing, err := tracing.Init(
		gracefulshutdown.GetServerBaseContext(),
		cfg.Tracing.Endpoint,
		"saleorbridge",
		cfg.Env,
	)
	if err != nil {
		slog.Error("failed to init tracing", "error", err)
		os.Exit(1)
	}
	defer shutdownTracing(context.Background())

	if err := db.Migrate(cfg.Database.Driver, cfg.Database.DSN); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	database, err := db.New(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	//
	// Services
	//

	var flavor goqite.SQLFlavor
	switch cfg.Database.Driver {
	case "postgres":
		flavor = goqite.SQLFlavorPostgreSQL
	case "sqlite":
		flavor = goqite.SQLFlavorSQLite
	default:
		slog.Error("unsupported database driver", "driver", cfg.Database.Driver)
		os.Exit(1)
	}

	jobQueue := goqite.New(goqite.NewOpts{
		DB:         database.DB,
		Name:       "jobs",
		SQLFlavor:  flavor,
		MaxReceive: 5,
		Timeout:    time.Second * 15,
	})

	tenants := saleor.NewTenantRegistry(&cfg.Saleor)
	platformClient := saleor.NewClient()

	verifier, err := saleor.NewVerifier(cfg.Saleor.WebhookSecret)
	if err != nil {
		slog.Error("failed to create webhook verifier", "error", err)
		os.Exit(1)
	}

	notifier := notify.New(cfg.Notify)

	// Taxes
	extractor := appconfig.NewExtractor(reporter)
	taxProvider := taxes.NewAvataxProvider(cfg.Avatax)
	taxUseCase := taxes.NewUseCase(extractor, taxProvider, reporter)

	// Search
	index := search.NewTypesenseIndex(cfg.Typesense)
	if err := index.EnsureCollection(gracefulshutdown.GetServerBaseContext()); err != nil {
		slog.Warn("failed to ensure search collection, continuing", "error", err)
	}
	searchService := search.NewService(index, platformClient, notifier)
	importRepo := search.NewRepo(database)
	importer := search.NewImporter(jobQueue, importRepo)
	importWorker := search.NewWorker(
		importRepo,
		tenants,
		platformClient,
		index,
		notifier,
		cfg.Typesense.ImportPageSize,
	)

	runner := jobs.NewRunner(jobs.NewRunnerOpts{
		Limit:        10,
		PollInterval: time.Second,
		Queue:        jobQueue,
		Log:          slog.Default(),
	})
	importWorker.Register(runner)
	go runner.Start(gracefulshutdown.GetServerBaseContext())

	//
	// Routes
	//

	reflector := openapi.NewReflector()

	routes := []httptools.Route{
		taxes.NewRouteWebhook(verifier, tenants, extractor, taxUseCase),
		search.NewRouteStatus(tenants, searchService),
		search.NewRouteImport(tenants, importer, importRepo),
		search.NewRouteWebhook(verifier, index),
	}
	mux := http.NewServeMux()
	hideRouteMiddleware := httptools.Hidden(
		httptools.IsLocalNetworkReq,
		http.StatusNotFound,
	)
	if cfg.Metrics.Enable {
		metricsHandler := metrics.Init(cfg.Metrics.GoMetrics)
		mux.Handle(
			"GET "+cfg.Metrics.Path,
			httptools.Wrap(metricsHandler, hideRouteMiddleware),
		)
	}
	mux.Handle(
		"GET "+healthcheckProbePath,
		httptools.Wrap(
			nil,
			hideRouteMiddleware,
			gracefulshutdown.HealthCheckMiddleware,
			db.HealthCheckMiddleware(database),
		),
	)
	for _, route := range routes {
		route.Register(mux, reflector)
	}
	openapi.NewRoute(reflector).Register(mux, reflector)

	//
	// Middlewares
	//

	// skip tracing, logging and metrics for unnecessary endpoints
	// skip auth for healthz, metrics, and webhooks (webhooks carry their own signatures)
	middlewares := []httptools.Middleware{
		httptools.Skip(tracing.Middleware, healthcheckProbePath, cfg.Metrics.Path),
		httptools.Skip(logger.Middleware, healthcheckProbePath, cfg.Metrics.Path),
		logger.RecoveryMiddleware(reporter),
		httptools.Skip(
			auth.Middleware(cfg.Auth.APIKey),
			healthcheckProbePath,
			cfg.Metrics.Path,
			"/v1/webhook/*",
		),
	}
	if cfg.Metrics.Enable {
		middlewares = append(
			middlewares,
			httptools.Skip(
				metrics.Middleware,
				healthcheckProbePath,
				cfg.Metrics.Path,
			),
		)
	}

	//
	// Start server
	//

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := server.New(addr, httptools.Wrap(mux, middlewares...))
	go func() {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()
	gracefulshutdown.WaitForShutdown(srv)
}
