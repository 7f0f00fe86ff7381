package output

import (
	"time"

	"github.com/logivex/portscout/internal/banner"
	"github.com/logivex/portscout/internal/portscan"
)

// ─── result ───────────────────────────────────────────────────────────────────

// Port is one row of output.
type Port struct {
	Port    int    `json:"port"`
	State   string `json:"state"`
	Service string `json:"service,omitempty"`
	Banner  string `json:"banner,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Result is everything reported for one target.
type Result struct {
	ScanID string `json:"scan_id"`
	Target string `json:"target"`
	IP     string `json:"ip,omitempty"`
	RDNS   string `json:"rdns,omitempty"`
	Ports  []Port `json:"ports"`
	Meta   Meta   `json:"meta"`

	records []portscan.Record // open (port, host) rows for tabular export
}

type Meta struct {
	Scanned  int    `json:"scanned"`
	Open     int    `json:"open"`
	Closed   int    `json:"closed"`
	Filtered int    `json:"filtered"`
	Duration string `json:"duration"`
}

// FromReport converts a scan report into output rows. Ports lists only open
// ports unless all is set; tabular exports always carry open ports only.
// banners may be nil.
func FromReport(r *portscan.Report, banners map[int]*banner.Banner, rdns string, all bool) Result {
	source := r.Open
	if all {
		source = r.Results
	}

	ports := make([]Port, 0, len(source))
	for _, res := range source {
		p := Port{
			Port:    res.Port,
			State:   string(res.State),
			Latency: res.Latency.Round(10 * time.Microsecond).String(),
		}
		if b, ok := banners[res.Port]; ok && b != nil {
			p.Service = b.Service
			p.Banner = b.String()
		}
		ports = append(ports, p)
	}

	return Result{
		ScanID:  r.ID.String(),
		Target:  r.Host,
		IP:      r.IP,
		RDNS:    rdns,
		Ports:   ports,
		records: r.Records(),
		Meta: Meta{
			Scanned:  r.Scanned,
			Open:     len(r.Open),
			Closed:   r.Count(portscan.StateClosed),
			Filtered: r.Count(portscan.StateFiltered),
			Duration: r.Duration.Round(time.Millisecond).String(),
		},
	}
}
