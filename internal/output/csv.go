package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/logivex/portscout/internal/portscan"
)

// ─── csv ──────────────────────────────────────────────────────────────────────

var tableHeader = []string{"port", "host", "ip", "state", "service", "banner", "rdns"}

// rows flattens results into table rows, one per open port.
func rows(results []Result) [][]string {
	var out [][]string
	for _, r := range results {
		detail := make(map[int]Port, len(r.Ports))
		for _, p := range r.Ports {
			detail[p.Port] = p
		}
		for _, rec := range r.records {
			p := detail[rec.Port]
			out = append(out, []string{
				strconv.Itoa(rec.Port),
				rec.Host,
				r.IP,
				string(portscan.StateOpen),
				p.Service,
				p.Banner,
				r.RDNS,
			})
		}
	}
	return out
}

// PrintCSV writes results as CSV with a header row.
func PrintCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeader); err != nil {
		return err
	}
	if err := cw.WriteAll(rows(results)); err != nil {
		return err
	}
	return cw.Error()
}

// WriteCSV saves results to path as CSV.
func WriteCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create file %s: %w", path, err)
	}
	if err := PrintCSV(f, results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
