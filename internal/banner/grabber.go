package banner

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

const (
	readLimit      = 1024
	maxBannerRunes = 60
)

// Banner is what an open port announced about itself.
type Banner struct {
	Port    int
	Raw     string
	Service string
	Version string
}

// String returns a short one-line description for display and export.
func (b *Banner) String() string {
	switch {
	case b.Service != "" && b.Version != "":
		return b.Service + "/" + b.Version
	case b.Version != "":
		return b.Version
	}
	line, _, _ := strings.Cut(strings.TrimSpace(b.Raw), "\n")
	line = strings.ToValidUTF8(strings.TrimSpace(line), "")
	if r := []rune(line); len(r) > maxBannerRunes {
		line = string(r[:maxBannerRunes])
	}
	return line
}

// ─── grabber ──────────────────────────────────────────────────────────────────

// Grabber connects to open ports and reads whatever the service sends first.
type Grabber struct {
	Timeout time.Duration
}

func New(timeout time.Duration) *Grabber {
	return &Grabber{Timeout: timeout}
}

// Grab reads the greeting of host:port. Services that wait for the client
// (HTTP) are nudged with a HEAD request.
func (g *Grabber) Grab(ctx context.Context, host string, port int) (*Banner, error) {
	d := net.Dialer{Timeout: g.Timeout}
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	buf := make([]byte, readLimit)
	conn.SetReadDeadline(time.Now().Add(g.Timeout))
	n, err := conn.Read(buf)
	if n == 0 && err != nil && err != io.EOF {
		conn.SetDeadline(time.Now().Add(g.Timeout))
		if _, werr := fmt.Fprintf(conn, "HEAD / HTTP/1.0\r\nHost: %s\r\n\r\n", host); werr != nil {
			return nil, werr
		}
		n, err = conn.Read(buf)
		if n == 0 && err != nil && err != io.EOF {
			return nil, err
		}
	}

	raw := string(buf[:n])
	service, version := Identify(raw)
	return &Banner{
		Port:    port,
		Raw:     raw,
		Service: service,
		Version: version,
	}, nil
}
