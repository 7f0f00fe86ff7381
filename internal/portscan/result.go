package portscan

import (
	"time"

	"github.com/google/uuid"
)

type PortState string

const (
	StateOpen     PortState = "open"
	StateClosed   PortState = "closed"
	StateFiltered PortState = "filtered"
)

// Result is the outcome of a single probe.
type Result struct {
	Port    int
	State   PortState
	Latency time.Duration
}

// Open reports whether the port accepted a connection.
func (r Result) Open() bool {
	return r.State == StateOpen
}

// Request describes one scan. Zero Timeout and Concurrency take the defaults.
type Request struct {
	Host        string
	Ports       []int
	Timeout     time.Duration
	Concurrency int
}

// Record is one exportable row: an open port on a host.
type Record struct {
	Port int
	Host string
}

// ─── report ───────────────────────────────────────────────────────────────────

// Report is produced once per scan. Open holds only open ports; Results holds
// every probe. Both are sorted by port.
type Report struct {
	ID       uuid.UUID
	Host     string
	IP       string
	Open     []Result
	Results  []Result
	Scanned  int
	Started  time.Time
	Duration time.Duration
}

// OpenPorts returns the open port numbers in ascending order.
func (r *Report) OpenPorts() []int {
	ports := make([]int, 0, len(r.Open))
	for _, res := range r.Open {
		ports = append(ports, res.Port)
	}
	return ports
}

// Records returns one (port, host) row per open port.
func (r *Report) Records() []Record {
	rows := make([]Record, 0, len(r.Open))
	for _, res := range r.Open {
		rows = append(rows, Record{Port: res.Port, Host: r.Host})
	}
	return rows
}

// Count returns how many probes ended in the given state.
func (r *Report) Count(state PortState) int {
	n := 0
	for _, res := range r.Results {
		if res.State == state {
			n++
		}
	}
	return n
}
