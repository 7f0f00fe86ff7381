package portscan

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/logivex/portscout/internal/errors"
)

// Scanner runs bounded-concurrency TCP connect scans. A Scanner holds no
// per-scan state and may be reused.
type Scanner struct {
	cfg      Config
	resolver *net.Resolver
	probe    probeFunc // nil uses a Prober
}

type probeFunc func(ctx context.Context, ip net.IP, port int) Result

func New(cfg Config) *Scanner {
	return &Scanner{cfg: cfg, resolver: net.DefaultResolver}
}

// Scan is a convenience wrapper that runs a single scan with a fresh Scanner.
func Scan(ctx context.Context, host string, ports []int, timeout time.Duration, concurrency int) (*Report, error) {
	return New(DefaultConfig()).Scan(ctx, Request{
		Host:        host,
		Ports:       ports,
		Timeout:     timeout,
		Concurrency: concurrency,
	})
}

// Scan probes every requested port on req.Host and blocks until all probes
// finish. Request-level problems (bad input, unresolvable host) are returned
// before any probe is sent; per-port failures only affect that port's state.
// If ctx ends mid-scan no report is returned.
func (s *Scanner) Scan(ctx context.Context, req Request) (*Report, error) {
	timeout, concurrency, err := s.settings(req)
	if err != nil {
		return nil, err
	}
	if req.Host == "" {
		return nil, errors.Input("host", "empty host")
	}
	if err := Validate(req.Ports); err != nil {
		return nil, err
	}

	ports := dedupe(req.Ports)
	report := &Report{
		ID:      uuid.New(),
		Host:    req.Host,
		Open:    []Result{},
		Results: []Result{},
		Started: time.Now(),
	}
	if len(ports) == 0 {
		return report, nil
	}

	ip, err := s.resolve(ctx, req.Host)
	if err != nil {
		return nil, err
	}
	report.IP = ip.String()

	tracker := NewTracker(len(ports))
	if err := s.run(ctx, ip, ports, timeout, concurrency, tracker); err != nil {
		return nil, fmt.Errorf("scan of %s cancelled after %d/%d probes: %w",
			req.Host, tracker.Len(), len(ports), err)
	}

	report.Results, report.Open = tracker.Close()
	report.Scanned = len(report.Results)
	report.Duration = time.Since(report.Started)
	return report, nil
}

// run dispatches one probe per port, never more than concurrency at a time.
func (s *Scanner) run(ctx context.Context, ip net.IP, ports []int, timeout time.Duration, concurrency int, tracker *Tracker) error {
	probe := s.probe
	if probe == nil {
		probe = NewProber(timeout).Probe
	}
	sem := semaphore.NewWeighted(int64(concurrency))

	var pace <-chan time.Time
	if interval := s.interval(); interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		pace = ticker.C
	}

	var wg sync.WaitGroup
	var dispatchErr error

dispatch:
	for _, port := range ports {
		if pace != nil {
			select {
			case <-ctx.Done():
				dispatchErr = ctx.Err()
				break dispatch
			case <-pace:
			}
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			dispatchErr = err
			break
		}

		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			defer sem.Release(1)
			tracker.Add(probe(ctx, ip, p))
		}(port)
	}
	wg.Wait()

	if dispatchErr != nil {
		return dispatchErr
	}
	// probes racing a late cancellation report filtered, not their real state
	return ctx.Err()
}

// ─── helpers ──────────────────────────────────────────────────────────────────

// settings merges request overrides onto the scanner config.
func (s *Scanner) settings(req Request) (time.Duration, int, error) {
	timeout := s.cfg.Timeout
	if req.Timeout != 0 {
		timeout = req.Timeout
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if timeout < 0 {
		return 0, 0, errors.Inputf("timeout", "%s must be positive", timeout)
	}

	concurrency := s.cfg.Concurrency
	if req.Concurrency != 0 {
		concurrency = req.Concurrency
	}
	if concurrency == 0 {
		concurrency = DefaultConcurrency
	}
	if concurrency < 0 {
		return 0, 0, errors.Inputf("concurrency", "%d must be positive", concurrency)
	}
	return timeout, concurrency, nil
}

// interval returns the pause between dispatches, or 0 when unlimited.
func (s *Scanner) interval() time.Duration {
	if s.cfg.Rate <= 0 {
		return 0
	}
	return time.Second / time.Duration(s.cfg.Rate)
}

// resolve returns the IP for a hostname or IP literal, preferring IPv4.
func (s *Scanner) resolve(ctx context.Context, host string) (net.IP, error) {
	// return early if already an IP
	if ip := net.ParseIP(host); ip != nil {
		return ip, nil
	}

	addrs, err := s.resolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, errors.Network(host, "cannot resolve host", err)
	}
	if len(addrs) == 0 {
		return nil, errors.Network(host, "no addresses found", nil)
	}

	for _, a := range addrs {
		if v4 := a.IP.To4(); v4 != nil {
			return v4, nil
		}
	}
	return addrs[0].IP, nil
}
