package output

import "fmt"

// ─── summary ──────────────────────────────────────────────────────────────────

// Summary prints the per-target totals.
func (p *Printer) Summary(target string, m Meta) {
	if !p.Decorate {
		return
	}
	fmt.Fprintf(p.w, "\n")
	colorMuted.Fprintln(p.w, "─────────────────────────────")
	colorMuted.Fprintf(p.w, "  target  : ")
	colorBold.Fprintf(p.w, "%s\n", target)
	colorMuted.Fprintf(p.w, "  scanned : ")
	colorBold.Fprintf(p.w, "%d ports\n", m.Scanned)
	colorMuted.Fprintf(p.w, "  open    : ")
	colorOpen.Fprintf(p.w, "%d\n", m.Open)
	colorMuted.Fprintf(p.w, "  closed  : ")
	fmt.Fprintf(p.w, "%d (filtered %d)\n", m.Closed, m.Filtered)
	colorMuted.Fprintf(p.w, "  time    : ")
	fmt.Fprintf(p.w, "%s\n", m.Duration)
	colorMuted.Fprintln(p.w, "─────────────────────────────")
	fmt.Fprintln(p.w)
}
