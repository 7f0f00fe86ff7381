package portscan

import "time"

// ─── config ───────────────────────────────────────────────────────────────────

const (
	DefaultHost        = "localhost"
	DefaultTimeout     = time.Second
	DefaultConcurrency = 100
)

// Config controls how a Scanner probes. Zero values fall back to the defaults.
type Config struct {
	Timeout     time.Duration
	Concurrency int
	Rate        int // probes per second, 0 = unlimited
}

func DefaultConfig() Config {
	return Config{
		Timeout:     DefaultTimeout,
		Concurrency: DefaultConcurrency,
		Rate:        0,
	}
}

// DefaultPorts returns the well-known range 1–1024.
func DefaultPorts() []int {
	return Range(1, 1024)
}
