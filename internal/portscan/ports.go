package portscan

import (
	"strconv"
	"strings"

	"github.com/logivex/portscout/internal/errors"
)

const (
	MinPort = 1
	MaxPort = 65535
)

// ─── parse ────────────────────────────────────────────────────────────────────

// ParsePorts parses a comma-separated list of ports and ranges
// (e.g. "22,80-81,8080"). Duplicates are dropped, first occurrence wins.
// Reversed ranges such as "10-5" are accepted.
func ParsePorts(s string) ([]int, error) {
	seen := make(map[int]bool)
	var ports []int
	add := func(p int) {
		if !seen[p] {
			seen[p] = true
			ports = append(ports, p)
		}
	}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		if !isRange {
			p, err := parsePort(part)
			if err != nil {
				return nil, err
			}
			add(p)
			continue
		}

		start, err := parsePort(lo)
		if err != nil {
			return nil, err
		}
		end, err := parsePort(hi)
		if err != nil {
			return nil, err
		}
		if start > end {
			start, end = end, start
		}
		for p := start; p <= end; p++ {
			add(p)
		}
	}

	if len(ports) == 0 {
		return nil, errors.Input("ports", "empty port list")
	}
	return ports, nil
}

// Validate checks that every port is within 1–65535.
func Validate(ports []int) error {
	for _, p := range ports {
		if p < MinPort || p > MaxPort {
			return errors.Inputf("port", "%d out of range %d-%d", p, MinPort, MaxPort)
		}
	}
	return nil
}

// Range returns the ports lo..hi inclusive. lo and hi are clamped to 1–65535.
func Range(lo, hi int) []int {
	lo = max(lo, MinPort)
	hi = min(hi, MaxPort)
	if lo > hi {
		return []int{}
	}
	ports := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		ports = append(ports, p)
	}
	return ports
}

// TopPorts returns the n most common ports, extending with sequential ports if needed.
func TopPorts(n int) []int {
	top := []int{
		80, 443, 22, 21, 25, 53, 110, 143, 445, 3306,
		3389, 8080, 8443, 8888, 27017, 6379, 5432, 1433,
		23, 111, 135, 139, 161, 389, 636, 993, 995,
		1080, 1723, 2049, 2181, 3000, 4444, 5000, 5001,
		5601, 6000, 6443, 7001, 7777, 8000, 8001, 8008,
		8081, 8082, 8083, 8086, 8088, 8089, 8161,
		9000, 9090, 9200, 9300, 9443, 9600, 9999, 10000,
	}
	if n <= 0 {
		return []int{}
	}
	if n <= len(top) {
		return top[:n]
	}

	// n exceeds the preset list, fill sequentially
	existing := make(map[int]bool, len(top))
	for _, p := range top {
		existing[p] = true
	}
	for p := MinPort; len(top) < n && p <= MaxPort; p++ {
		if !existing[p] {
			top = append(top, p)
		}
	}
	return top
}

// ─── helper ───────────────────────────────────────────────────────────────────

func parsePort(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Inputf("port", "%q is not a number", s)
	}
	if n < MinPort || n > MaxPort {
		return 0, errors.Inputf("port", "%d out of range %d-%d", n, MinPort, MaxPort)
	}
	return n, nil
}

// dedupe returns ports without duplicates, preserving first-seen order.
func dedupe(ports []int) []int {
	seen := make(map[int]bool, len(ports))
	out := make([]int, 0, len(ports))
	for _, p := range ports {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
