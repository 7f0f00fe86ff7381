package portscan

import (
	"sort"
	"sync"
)

// Tracker collects probe results from concurrent workers.
type Tracker struct {
	mu      sync.Mutex
	seen    map[int]bool
	results []Result
}

// NewTracker returns a Tracker sized for n probes.
func NewTracker(n int) *Tracker {
	return &Tracker{
		seen:    make(map[int]bool, n),
		results: make([]Result, 0, n),
	}
}

// Add records a result. It is safe for concurrent use; a second result for
// the same port is dropped.
func (t *Tracker) Add(r Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.seen[r.Port] {
		return
	}
	t.seen[r.Port] = true
	t.results = append(t.results, r)
}

// Len returns the number of recorded results.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.results)
}

// Close returns every result and the open subset, both sorted by port.
func (t *Tracker) Close() (all, open []Result) {
	t.mu.Lock()
	defer t.mu.Unlock()

	all = make([]Result, len(t.results))
	copy(all, t.results)
	sort.Slice(all, func(i, j int) bool { return all[i].Port < all[j].Port })

	open = make([]Result, 0)
	for _, r := range all {
		if r.Open() {
			open = append(open, r)
		}
	}
	return all, open
}
