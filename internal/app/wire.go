package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"signus/internal/crypto"
	"signus/internal/domain"
	"signus/internal/logging"
	"signus/internal/metrics"
	"signus/internal/services/signus"
)

// Wire bundles the logger, registry and services for the CLI.
type Wire struct {
	Log      *zap.Logger
	Registry domain.BackendRegistry
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
	Signus   *signus.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	registry, err := crypto.RegistryFor(cfg.Crypto.Enabled)
	if err != nil {
		return nil, err
	}

	// Per-wire registry so repeated wiring never collides on registration.
	promReg := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(promReg)
	if err != nil {
		return nil, err
	}

	svc := signus.New(registry,
		signus.WithLogger(log.Named("signus")),
		signus.WithMetrics(collector),
	)

	return &Wire{
		Log:      log,
		Registry: registry,
		Metrics:  collector,
		Gatherer: promReg,
		Signus:   svc,
	}, nil
}

// Close flushes buffered log entries.
func (w *Wire) Close() {
	_ = w.Log.Sync()
}
