package portscan

import (
	"context"
	"errors"
	"net"
	"strconv"
	"syscall"
	"time"
)

// ─── prober ───────────────────────────────────────────────────────────────────

// Prober performs single TCP connect attempts.
type Prober struct {
	dialer *net.Dialer
}

// NewProber returns a Prober whose connect attempts give up after timeout.
func NewProber(timeout time.Duration) *Prober {
	return &Prober{
		dialer: &net.Dialer{
			Timeout:   timeout,
			KeepAlive: -1,
		},
	}
}

// Probe connects to ip:port once. Any failure is reported as closed or
// filtered, never as an error.
func (p *Prober) Probe(ctx context.Context, ip net.IP, port int) Result {
	addr := net.JoinHostPort(ip.String(), strconv.Itoa(port))

	start := time.Now()
	conn, err := p.dialer.DialContext(ctx, "tcp", addr)
	latency := time.Since(start)
	if err != nil {
		return Result{Port: port, State: classify(err), Latency: latency}
	}
	conn.Close()
	return Result{Port: port, State: StateOpen, Latency: latency}
}

// ─── helper ───────────────────────────────────────────────────────────────────

// classify maps a connect error to a port state. A refusal means the host
// answered with RST; everything else (timeouts, unreachable networks,
// descriptor exhaustion) is indistinguishable from a dropped SYN.
func classify(err error) PortState {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return StateClosed
	}
	return StateFiltered
}
