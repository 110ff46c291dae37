package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/algoviz"
	"github.com/aretw0/algoviz/internal/config"
	"github.com/aretw0/algoviz/pkg/adapters/bolt"
	"github.com/aretw0/algoviz/pkg/adapters/file"
	"github.com/aretw0/algoviz/pkg/adapters/memory"
	"github.com/aretw0/algoviz/pkg/adapters/redis"
	"github.com/aretw0/algoviz/pkg/observability"
	"github.com/aretw0/algoviz/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Runtime bundles an engine with the resources it was built from.
type Runtime struct {
	Engine  *algoviz.Engine
	Store   ports.ListStore
	Metrics *observability.Metrics
	Logger  *slog.Logger

	closers []func() error
}

// Close releases the store connections.
func (r *Runtime) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewRuntime initializes an engine with standard CLI conventions:
// the configured store, redis locking, metrics and logging hooks.
func NewRuntime(cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	rt := &Runtime{Logger: logger}

	store, locker, closeStore, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	rt.Store = store
	if closeStore != nil {
		rt.closers = append(rt.closers, closeStore)
	}

	metrics, err := observability.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("error initializing metrics: %w", err)
	}
	rt.Metrics = metrics

	opts := []algoviz.Option{
		algoviz.WithLogger(logger),
		algoviz.WithStore(store),
		algoviz.WithMaxArrayLength(cfg.Limits.MaxArrayLength),
		algoviz.WithLifecycleHooks(observability.Combine(
			observability.LoggingHooks(logger),
			metrics.Hooks(),
		)),
	}
	if locker != nil {
		opts = append(opts, algoviz.WithLocker(locker))
	}
	rt.Engine = algoviz.New(opts...)

	logger.Debug("engine initialized", "store", cfg.Store.Backend, "locking", locker != nil)
	return rt, nil
}

// openStore builds the configured ListStore, plus a locker for redis.
func openStore(cfg *config.Config) (ports.ListStore, ports.DistributedLocker, func() error, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory, "":
		return memory.NewStore(), nil, nil, nil
	case config.BackendFile:
		return file.New(cfg.StorePath()), nil, nil, nil
	case config.BackendBolt:
		store, err := bolt.Open(cfg.StorePath())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("error opening bolt store: %w", err)
		}
		return store, nil, store.Close, nil
	case config.BackendRedis:
		rc := cfg.Store.Redis
		store := redis.New(rc.Addr, rc.Password, rc.DB, redis.WithPrefix(rc.Prefix), redis.WithTTL(rc.TTL))
		var locker ports.DistributedLocker
		if rc.Lock {
			locker = redis.NewLocker(store.Client(), rc.Prefix+"lock:")
		}
		return store, locker, store.Close, nil
	}
	return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
