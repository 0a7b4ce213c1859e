package config

import (
	"log/slog"
	"os"
	"sync"
)

// resolveOnce caches the first resolution outcome, success or failure, for
// the lifetime of the process. Concurrent first callers block until the
// single pipeline run finishes and then all observe the same result.
type resolveOnce struct {
	once sync.Once
	cfg  *Config
	err  error
}

func (r *resolveOnce) get(load func() (*Config, error)) (*Config, error) {
	r.once.Do(func() {
		r.cfg, r.err = load()
	})
	return r.cfg, r.err
}

var process resolveOnce

// Get returns the process-wide configuration, resolving it from the command
// line, the optional config file and the environment on first call. Every
// caller receives the same record; the pipeline runs at most once even under
// concurrent first access. The error, too, is resolved once and sticks.
func Get() (*Config, error) {
	return process.get(func() (*Config, error) {
		return Resolve(os.Args[1:])
	})
}

// MustGet is Get for call sites that cannot proceed without configuration.
// It exits the process on a resolution failure.
func MustGet() *Config {
	cfg, err := Get()
	if err != nil {
		slog.Error("configuration error", "err", err)
		os.Exit(1)
	}
	return cfg
}
