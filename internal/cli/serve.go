package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpadapter "github.com/aretw0/turing/pkg/adapters/http"
	"github.com/aretw0/turing/pkg/adapters/mcp"
	"github.com/aretw0/turing/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewAPIHandler builds the HTTP API with its own metrics registry.
func NewAPIHandler(ctx context.Context, env *Env) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(reg)

	store, err := env.OpenStore(ctx)
	if err != nil {
		return nil, err
	}
	calc := env.NewCalculator(store, metrics.Hooks())

	return httpadapter.NewHandler(calc,
		httpadapter.WithLogger(env.Logger),
		httpadapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
	), nil
}

// Serve runs the HTTP API until ctx is cancelled.
func Serve(ctx context.Context, env *Env, port int) error {
	handler, err := NewAPIHandler(ctx, env)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		env.Logger.Info("Starting Turing Server", "addr", srv.Addr, "store", env.Config.Store.Backend)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			env.Logger.Warn("Graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		env.Logger.Info("Turing Server stopped gracefully")
		return nil
	}
}

// ServeMCP runs the MCP server over stdio or SSE.
func ServeMCP(ctx context.Context, env *Env, transport string, port int) error {
	store, err := env.OpenStore(ctx)
	if err != nil {
		return err
	}
	srv := mcp.NewServer(env.NewCalculator(store), mcp.WithLogger(env.Logger))

	switch transport {
	case "stdio":
		env.Logger.Info("Starting Turing MCP Server (Stdio)")
		return srv.ServeStdio()
	case "sse":
		env.Logger.Info("Starting Turing MCP Server (SSE)", "port", port)
		if err := srv.ServeSSE(ctx, port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		env.Logger.Info("MCP Server stopped gracefully")
		return nil
	default:
		return fmt.Errorf("unknown transport %q (supported: stdio, sse)", transport)
	}
}
