package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ─── colors ───────────────────────────────────────────────────────────────────

var (
	colorOpen     = color.New(color.FgGreen, color.Bold)
	colorClosed   = color.New(color.FgRed)
	colorFiltered = color.New(color.FgYellow)
	colorBanner   = color.New(color.FgYellow)
	colorRDNS     = color.New(color.FgCyan)
	colorMuted    = color.New(color.FgHiBlack)
	colorBold     = color.New(color.Bold)
)

// IsTTY reports whether f is a terminal rather than a pipe.
// fatih/color disables itself automatically when output is not a TTY.
func IsTTY(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// ─── printer ──────────────────────────────────────────────────────────────────

// Printer renders human-readable results. Decorations (header, summary) are
// only drawn when Decorate is set; port lines are always written.
type Printer struct {
	w        io.Writer
	Decorate bool
}

// NewPrinter returns a Printer on stdout that decorates only on a terminal.
func NewPrinter() *Printer {
	return &Printer{w: os.Stdout, Decorate: IsTTY(os.Stdout)}
}

// NewPrinterTo returns a Printer writing to w.
func NewPrinterTo(w io.Writer, decorate bool) *Printer {
	return &Printer{w: w, Decorate: decorate}
}

// Header prints the target line and column labels.
func (p *Printer) Header(target, ip, version string) {
	if !p.Decorate {
		return
	}
	fmt.Fprintf(p.w, "\n")
	colorBold.Fprintf(p.w, "portscout v%s", version)
	colorMuted.Fprintf(p.w, " — target: ")
	colorBold.Fprintf(p.w, "%s", target)
	if ip != "" && ip != target {
		colorMuted.Fprintf(p.w, " (%s)", ip)
	}
	fmt.Fprintf(p.w, "\n\n")
	colorMuted.Fprintf(p.w, "%-10s %-9s %-10s %s\n", "PORT", "STATE", "SERVICE", "BANNER")
	colorMuted.Fprintf(p.w, "%-10s %-9s %-10s %s\n", "────", "─────", "───────", "──────")
}

// Port prints a single port line colored by state.
func (p *Printer) Port(port Port) {
	portStr := fmt.Sprintf("%d/tcp", port.Port)
	switch port.State {
	case "open":
		colorOpen.Fprintf(p.w, "%-10s %-9s %-10s", portStr, port.State, port.Service)
		if port.Banner != "" {
			colorBanner.Fprintf(p.w, " %s", port.Banner)
		}
		fmt.Fprintln(p.w)
	case "filtered":
		colorFiltered.Fprintf(p.w, "%-10s %-9s\n", portStr, port.State)
	default:
		colorClosed.Fprintf(p.w, "%-10s %-9s\n", portStr, port.State)
	}
}

// RDNS prints the reverse DNS name of the scanned IP.
func (p *Printer) RDNS(ip, hostname string) {
	fmt.Fprintf(p.w, "\n")
	colorMuted.Fprintf(p.w, "rdns: ")
	colorRDNS.Fprintf(p.w, "%s → %s\n", ip, hostname)
}

// Result prints every part of a result in order.
func (p *Printer) Result(r Result, version string) {
	p.Header(r.Target, r.IP, version)
	for _, port := range r.Ports {
		p.Port(port)
	}
	if r.RDNS != "" {
		p.RDNS(r.IP, r.RDNS)
	}
	p.Summary(r.Target, r.Meta)
}
