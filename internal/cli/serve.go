package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/derelict/internal/logging"
	httpAdapter "github.com/aretw0/derelict/pkg/adapters/http"
	"github.com/aretw0/derelict/pkg/adapters/mcp"
	"github.com/aretw0/derelict/pkg/domain"
	"github.com/aretw0/derelict/pkg/observability"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configures the network hosts.
type ServeOptions struct {
	Story        string
	Debug        bool
	Addr         string
	MaxInputSize int
	Logger       *slog.Logger
}

func (o ServeOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return logging.NewNop()
	}
	return o.Logger
}

// NewHTTPHandler builds the HTTP host with metrics wired into the engine.
func NewHTTPHandler(opts ServeOptions) (http.Handler, error) {
	metrics := observability.NewMetrics()
	engine, err := NewEngine(EngineOptions{
		Story:  opts.Story,
		Debug:  opts.Debug,
		Logger: opts.logger(),
		Hooks:  []domain.LifecycleHooks{metrics.Hooks()},
	})
	if err != nil {
		return nil, err
	}
	return httpAdapter.NewHandler(engine,
		httpAdapter.WithLogger(opts.logger()),
		httpAdapter.WithMetricsHandler(metrics.Handler()),
		httpAdapter.WithMaxInputSize(opts.MaxInputSize),
	), nil
}

// Serve runs the HTTP host until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, opts ServeOptions) error {
	logger := opts.logger()
	handler, err := NewHTTPHandler(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// Event streams stay open until the deadline; Close drops them.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		logger.Info("HTTP server stopped")
		return nil
	}
}

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// ServeMCP runs the MCP host on the given transport.
func ServeMCP(ctx context.Context, transport string, opts ServeOptions) error {
	logger := opts.logger()
	engine, err := NewEngine(EngineOptions{Story: opts.Story, Debug: opts.Debug, Logger: logger})
	if err != nil {
		return err
	}
	srv := mcp.NewServer(engine, mcp.WithLogger(logger), mcp.WithMaxInputSize(opts.MaxInputSize))

	switch transport {
	case TransportStdio:
		logger.Info("starting MCP server (stdio)")
		return srv.ServeStdio()
	case TransportSSE:
		if err := srv.ServeSSE(ctx, opts.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		logger.Info("MCP server stopped")
		return nil
	}
	return fmt.Errorf("unknown transport %q (supported: %s, %s)", transport, TransportStdio, TransportSSE)
}
