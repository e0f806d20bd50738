package model

import "log/slog"

// Config configures a Model.
type Config struct {
	// Logger is the structured logger for commit and reset events.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// Recorder receives change counts. Default: a no-op recorder.
	Recorder Recorder
}

// Option configures a Model.
type Option func(*Config)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(recorder Recorder) Option {
	return func(c *Config) {
		c.Recorder = recorder
	}
}

// defaultConfig returns the default model configuration.
func defaultConfig() Config {
	return Config{
		Logger:   slog.Default(),
		Recorder: nopRecorder{},
	}
}

// Recorder receives change counts from a Model.
// metrics.Collector implements it with Prometheus.
type Recorder interface {
	// RecordCommit is called after fields were committed.
	RecordCommit(resource string, fields int)

	// RecordReset is called after fields were reset.
	RecordReset(resource string, fields int)

	// RecordPending is called with the number of changed fields whenever a
	// change set is built, and with zero after a commit or reset.
	RecordPending(resource string, fields int)
}

type nopRecorder struct{}

func (nopRecorder) RecordCommit(string, int)  {}
func (nopRecorder) RecordReset(string, int)   {}
func (nopRecorder) RecordPending(string, int) {}
