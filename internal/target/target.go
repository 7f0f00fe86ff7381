// Package target turns user input into a flat list of hosts to scan.
package target

import (
	"bufio"
	"io"
	"net"
	"os"
	"strings"

	"github.com/logivex/portscout/internal/errors"
)

// Source says where the targets came from.
type Source int

const (
	SourceFlag Source = iota
	SourcePipe
	SourceFile
)

// Input is the raw, unexpanded target list.
type Input struct {
	Source  Source
	Targets []string
}

// ─── detect ───────────────────────────────────────────────────────────────────

// Detect reads targets from piped stdin when present, otherwise from value:
// a file of targets, a CIDR, or a single host. An empty value with no pipe
// falls back to def.
func Detect(value, def string, stdin *os.File) (*Input, error) {
	if stdin != nil && isPipe(stdin) {
		targets, err := ReadLines(stdin)
		if err != nil {
			return nil, err
		}
		if len(targets) == 0 {
			return nil, errors.Input("target", "no targets received from stdin")
		}
		return &Input{Source: SourcePipe, Targets: targets}, nil
	}

	if value == "" {
		value = def
	}
	if value == "" {
		return nil, errors.Input("target", "no target given")
	}

	// a CIDR contains "/" but is not a file path
	if strings.Contains(value, "/") && !isFile(value) {
		return &Input{Source: SourceFlag, Targets: []string{value}}, nil
	}

	if isFile(value) {
		f, err := os.Open(value)
		if err != nil {
			return nil, errors.Inputf("target", "cannot open file %s", value)
		}
		defer f.Close()

		targets, err := ReadLines(f)
		if err != nil {
			return nil, err
		}
		if len(targets) == 0 {
			return nil, errors.Inputf("target", "no targets in %s", value)
		}
		return &Input{Source: SourceFile, Targets: targets}, nil
	}

	return &Input{Source: SourceFlag, Targets: []string{value}}, nil
}

// ReadLines returns the non-empty, non-comment lines of r.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

// ─── expand ───────────────────────────────────────────────────────────────────

// Expand replaces every CIDR in targets with its host addresses.
func Expand(targets []string) ([]string, error) {
	var expanded []string
	for _, t := range targets {
		if !strings.Contains(t, "/") {
			expanded = append(expanded, t)
			continue
		}
		ips, err := expandCIDR(t)
		if err != nil {
			return nil, errors.Inputf("target", "invalid CIDR %s: %s", t, err)
		}
		expanded = append(expanded, ips...)
	}
	return expanded, nil
}

// expandCIDR lists the addresses of an IPv4 or IPv6 block. For IPv4 blocks
// wider than /31 the network and broadcast addresses are skipped.
func expandCIDR(cidr string) ([]string, error) {
	ip, ipnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return nil, err
	}
	ones, bits := ipnet.Mask.Size()
	if bits-ones > 16 {
		return nil, errors.Inputf("target", "%s is larger than a /%d", cidr, bits-16)
	}

	if v4 := ip.To4(); v4 != nil {
		ip = v4
	}
	skipEdges := bits == 32 && ones < 31

	var ips []string
	for cur := ip.Mask(ipnet.Mask); ipnet.Contains(cur); cur = next(cur) {
		ips = append(ips, cur.String())
		if isLast(cur) {
			break
		}
	}
	if skipEdges && len(ips) > 2 {
		ips = ips[1 : len(ips)-1]
	}
	return ips, nil
}

// ─── helpers ──────────────────────────────────────────────────────────────────

// next returns ip + 1 as a new slice.
func next(ip net.IP) net.IP {
	out := make(net.IP, len(ip))
	copy(out, ip)
	for j := len(out) - 1; j >= 0; j-- {
		out[j]++
		if out[j] > 0 {
			break
		}
	}
	return out
}

// isLast reports whether ip is all ones, where incrementing would wrap.
func isLast(ip net.IP) bool {
	for _, b := range ip {
		if b != 0xff {
			return false
		}
	}
	return true
}

func isPipe(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	mode := stat.Mode()
	if mode&os.ModeCharDevice != 0 {
		return false
	}
	// redirected files count, empty ones (e.g. CI stdin) do not
	return mode&os.ModeNamedPipe != 0 || (mode.IsRegular() && stat.Size() > 0)
}

// isFile reports whether path points to an existing regular file.
func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
