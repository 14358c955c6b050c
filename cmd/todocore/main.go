// Command todocore serves the todo CRUD HTTP API.
//
// Configuration comes from the environment:
//
//	TODOCORE_ADDR: listen address (default :8000)
//	TODOCORE_STORAGE_DRIVER: memory|sqlite|postgres (default sqlite)
//	TODOCORE_SQLITE_PATH: path to sqlite file (default ./todocore.db)
//	TODOCORE_POSTGRES_DSN: postgres DSN when driver=postgres
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"todocore/internal/adapters/middleware"
	"todocore/internal/adapters/todos"
	"todocore/internal/core"
)

const shutdownGrace = 10 * time.Second

func main() {
	logger := log.New(os.Stderr, "todocore ", log.LstdFlags|log.LUTC)
	if err := run(context.Background(), logger); err != nil {
		logger.Fatal(err)
	}
}

func run(ctx context.Context, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Startup hook: opening the store creates the backing table when absent.
	store, err := core.OpenStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Printf("close store: %v", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	svc := core.NewService(store,
		core.WithMetrics(core.NewPrometheusMetricsRecorder(registry)),
		core.WithTracer(core.NewJSONTracer(os.Stderr)))

	addr := os.Getenv("TODOCORE_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           middleware.RequestID(middleware.Logging(logger, newMux(svc, registry))),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newMux(svc *core.Service, registry *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", todos.NewHandler(svc))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return mux
}
