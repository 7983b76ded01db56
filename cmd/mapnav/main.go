// Command mapnav serves multi-map navigation over HTTP.
//
// Usage:
//
//	mapnav [-config mapnav.yaml] [-check]
//
// Maps are loaded once at startup from the configured directory. With
// -check the maps are loaded and summarised, and the command exits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/mapnav/bfs"
	"github.com/katalvlaran/mapnav/config"
	"github.com/katalvlaran/mapnav/metrics"
	"github.com/katalvlaran/mapnav/navigation"
	"github.com/katalvlaran/mapnav/server"
	"github.com/katalvlaran/mapnav/store"
)

const shutdownTimeout = 15 * time.Second

var (
	configPath = flag.String("config", "", "YAML configuration file (optional)")
	checkOnly  = flag.Bool("check", false, "load and validate maps, then exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	if err := run(cfg, logger); err != nil {
		logger.Error("mapnav stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	var reg *metrics.Registry
	if cfg.MetricsEnabled {
		reg = metrics.NewRegistry()
	}

	st, err := loadStore(cfg.MapsDir, reg)
	if err != nil {
		return err
	}
	for _, s := range st.List() {
		logger.Info("map loaded", "map", s.ID, "name", s.Name, "nodes", s.Nodes, "gateways", s.Gateways, "revision", s.Revision)
	}
	if *checkOnly {
		logger.Info("maps ok", "dir", cfg.MapsDir, "count", st.Len())
		return nil
	}

	nav := newNavigator(cfg, st, reg, logger)
	opts := []server.Option{server.WithLogger(logger.With("component", "http"))}
	if reg != nil {
		opts = append(opts, server.WithMetrics(reg))
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.New(nav, st, opts...),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("mapnav listening", "addr", cfg.Addr, "maps", st.Len(), "prefetch", cfg.Prefetch,
			"metrics", reg != nil, "max_chain_hops", cfg.MaxChainHops, "closed_maps", cfg.ClosedMaps)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server exited")
	return nil
}

// newNavigator applies the routing settings of cfg.
func newNavigator(cfg config.Config, src navigation.MapSource, reg *metrics.Registry, logger *slog.Logger) *navigation.Navigator {
	return navigation.New(src,
		navigation.WithLogger(logger.With("component", "navigation")),
		navigation.WithMetrics(reg),
		navigation.WithPrefetch(cfg.Prefetch),
		navigation.WithChainOptions(
			bfs.WithMaxHops(cfg.MaxChainHops),
			bfs.WithClosedMaps(cfg.ClosedMaps...),
		),
	)
}

// loadStore reads every map document in dir into a fresh store.
func loadStore(dir string, reg *metrics.Registry) (*store.MemoryStore, error) {
	maps, err := store.LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load maps: %w", err)
	}
	st := store.NewMemoryStore(store.WithMetrics(reg))
	for _, m := range maps {
		if _, err := st.Put(m); err != nil {
			return nil, fmt.Errorf("store map %q: %w", m.ID(), err)
		}
	}
	return st, nil
}
