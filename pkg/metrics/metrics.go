// Package metrics exports change-tracking counters to Prometheus.
//
// A Collector implements model.Recorder:
//
//	collector := metrics.New(metrics.WithRegistry(reg))
//	product := model.New("product", model.WithRecorder(collector))
//
// Metrics collected:
//   - magento_commits_total: Counter of commits by resource
//   - magento_fields_committed_total: Counter of committed fields by resource
//   - magento_resets_total: Counter of resets by resource
//   - magento_fields_reset_total: Counter of reset fields by resource
//   - magento_pending_fields: Gauge of changed fields in the last change set
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the Prometheus collector.
type Config struct {
	// Namespace is the metrics namespace (default: "magento").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the Prometheus collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// defaultConfig returns the default metrics configuration.
func defaultConfig() Config {
	return Config{
		Namespace: "magento",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector holds the Prometheus metrics for tracked models.
type Collector struct {
	commitsTotal    *prometheus.CounterVec
	fieldsCommitted *prometheus.CounterVec
	resetsTotal     *prometheus.CounterVec
	fieldsReset     *prometheus.CounterVec
	pendingFields   *prometheus.GaugeVec
}

// New creates a Collector and registers its metrics.
// It panics if the metrics are already registered on the registry.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		commitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "commits_total",
			Help:        "Total number of model commits",
			ConstLabels: config.ConstLabels,
		}, []string{"resource"}),

		fieldsCommitted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fields_committed_total",
			Help:        "Total number of fields re-baselined by commits",
			ConstLabels: config.ConstLabels,
		}, []string{"resource"}),

		resetsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resets_total",
			Help:        "Total number of model resets",
			ConstLabels: config.ConstLabels,
		}, []string{"resource"}),

		fieldsReset: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "fields_reset_total",
			Help:        "Total number of fields restored by resets",
			ConstLabels: config.ConstLabels,
		}, []string{"resource"}),

		pendingFields: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pending_fields",
			Help:        "Number of changed fields in the last change set",
			ConstLabels: config.ConstLabels,
		}, []string{"resource"}),
	}
}

// RecordCommit records a commit of the given number of fields.
func (c *Collector) RecordCommit(resource string, fields int) {
	c.commitsTotal.WithLabelValues(resource).Inc()
	c.fieldsCommitted.WithLabelValues(resource).Add(float64(fields))
}

// RecordReset records a reset of the given number of fields.
func (c *Collector) RecordReset(resource string, fields int) {
	c.resetsTotal.WithLabelValues(resource).Inc()
	c.fieldsReset.WithLabelValues(resource).Add(float64(fields))
}

// RecordPending sets the number of changed fields awaiting commit.
func (c *Collector) RecordPending(resource string, fields int) {
	c.pendingFields.WithLabelValues(resource).Set(float64(fields))
}
