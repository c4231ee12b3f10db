package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/marcelsud/booklend/config"
	"github.com/marcelsud/booklend/internal/http/chi"
	"github.com/marcelsud/booklend/internal/logger"
	"github.com/marcelsud/booklend/internal/storage"
	"github.com/marcelsud/booklend/library"
	"github.com/marcelsud/booklend/metrics"
	"github.com/marcelsud/booklend/seed"
	"github.com/rs/zerolog"
)

const TIMEOUT = 30 * time.Second

/* main wires config, store, catalog, metrics and the router, then serves until a signal arrives.
 * Imports only go one way, downwards: api imports the catalog, the catalog imports nothing of the api.
 */

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Config{
		Service: "booklend-api",
		Level:   cfg.LogLevel,
		JSON:    cfg.LogJSON,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	books, err := seed.Books(cfg.SeedFile)
	if err != nil {
		return err
	}
	repo, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer repo.Close(context.Background())

	collector := metrics.NewCatalogCollector(nil)
	exporter, err := metrics.NewOTelExporter(collector)
	if err != nil {
		return err
	}
	defer exporter.Shutdown(context.Background())

	catalog, err := library.NewService(ctx, repo, books,
		library.WithLogger(log),
		library.WithRecorder(exporter),
	)
	if err != nil {
		return err
	}
	collector.Attach(catalog)

	r := chi.Handlers(ctx, catalog, exporter.Handler())
	http.Handle("/", r)
	srv := &http.Server{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Addr:         ":" + cfg.Port,
		Handler:      http.DefaultServeMux,
	}

	errShutdown := make(chan error, 1)
	go shutdown(srv, ctx, errShutdown, log)
	log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("listening")
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return <-errShutdown
}

func shutdown(server *http.Server, ctxShutdown context.Context, errShutdown chan error, log zerolog.Logger) {
	<-ctxShutdown.Done()

	ctxTimeout, stop := context.WithTimeout(context.Background(), TIMEOUT)
	defer stop()

	err := server.Shutdown(ctxTimeout)
	switch err {
	case nil:
		log.Info().Msg("shutting down server")
		errShutdown <- nil
	case context.DeadlineExceeded:
		errShutdown <- fmt.Errorf("forcing closing the server")
	default:
		errShutdown <- fmt.Errorf("forcing closing the server: %w", err)
	}
}
