package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/aretw0/algoviz/internal/config"
	httpAdapter "github.com/aretw0/algoviz/pkg/adapters/http"
	"golang.org/x/sync/errgroup"
)

// Handler builds the API handler for the runtime. Metrics are mounted on the
// API router unless a separate metrics address is configured.
func Handler(cfg *config.Config, rt *Runtime) http.Handler {
	opts := []httpAdapter.Option{
		httpAdapter.WithLogger(rt.Logger),
		httpAdapter.WithCORSOrigins(cfg.Server.CORSOrigins...),
		httpAdapter.WithRateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst),
	}
	if cfg.Server.MetricsAddr == "" {
		opts = append(opts, httpAdapter.WithMetricsHandler(rt.Metrics.Handler()))
	}
	return httpAdapter.NewHandler(rt.Engine, opts...)
}

// Serve runs the API (and the metrics listener, when configured) until ctx
// is cancelled, then shuts both down gracefully.
func Serve(ctx context.Context, cfg *config.Config, rt *Runtime) error {
	api, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr, err)
	}
	var metrics net.Listener
	if cfg.Server.MetricsAddr != "" {
		metrics, err = net.Listen("tcp", cfg.Server.MetricsAddr)
		if err != nil {
			api.Close()
			return fmt.Errorf("listen %s: %w", cfg.Server.MetricsAddr, err)
		}
	}
	return serveListeners(ctx, cfg, rt, api, metrics)
}

func serveListeners(ctx context.Context, cfg *config.Config, rt *Runtime, api, metrics net.Listener) error {
	servers := []*http.Server{{
		Handler:           Handler(cfg, rt),
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
	}}
	listeners := []net.Listener{api}
	if metrics != nil {
		mux := http.NewServeMux()
		mux.Handle("/metrics", rt.Metrics.Handler())
		servers = append(servers, &http.Server{Handler: mux, ReadHeaderTimeout: cfg.Server.ReadTimeout})
		listeners = append(listeners, metrics)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, srv := range servers {
		ln := listeners[i]
		g.Go(func() error {
			rt.Logger.Info("listening", "address", ln.Addr().String())
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, err)
				srv.Close()
			}
		}
		rt.Logger.Info("server stopped")
		return errors.Join(errs...)
	})
	return g.Wait()
}
