package main

import (
	"flag"
	"fmt"
)

const version = "0.2.0"

// ─── flags ────────────────────────────────────────────────────────────────────

var (
	flagTarget      = flag.String("t", "", "target: IP, domain, CIDR, or file path")
	flagPorts       = flag.String("p", "", "ports and ranges: 22,80-90,8080")
	flagTop         = flag.Int("top", 0, "scan top N ports")
	flagFull        = flag.Bool("full", false, "scan all 65535 ports")
	flagTimeout     = flag.String("timeout", "1s", "per port timeout")
	flagConcurrency = flag.Int("concurrency", 100, "concurrent probes")
	flagRate        = flag.Int("rate", 0, "probes per second, 0 = unlimited")
	flagBanner      = flag.Bool("banner", false, "enable banner grabbing")
	flagRDNS        = flag.Bool("rdns", false, "enable reverse DNS lookup")
	flagOutput      = flag.String("o", "human", "output format: human, json, csv, xlsx")
	flagFile        = flag.String("f", "", "save output to file")
	flagSilent      = flag.Bool("s", false, "silent mode — results only")
	flagVerbose     = flag.Bool("v", false, "verbose: list closed and filtered ports (human, json)")
	flagDebug       = flag.Bool("debug", false, "debug mode")
	flagConfig      = flag.String("config", "", "config file (default: ~/.portscout.yaml)")
	flagVersion     = flag.Bool("version", false, "print version")
)

// ─── help ─────────────────────────────────────────────────────────────────────

// printHelp prints the full usage message to stdout.
func printHelp() {
	fmt.Printf(`portscout v%s — TCP connect port scanner

USAGE:
  portscout [-t <target>] [flags]
  echo "10.0.0.1" | portscout [flags]

TARGET:
  -t            IP, domain, CIDR, or file path (default: localhost)

PORTS:
  -p            ports and ranges: 22,80-90 (default: 1-1024)
  --top         top N common ports
  --full        all 65535 ports

SCAN:
  --timeout     per port timeout (default: 1s)
  --concurrency concurrent probes (default: 100)
  --rate        probes per second (default: unlimited)

FEATURES:
  --banner      grab service banners
  --rdns        reverse DNS lookup

OUTPUT:
  -o            format: human, json, csv, xlsx (default: human)
  -f            save to file (xlsx default: port_scan_results.xlsx)
  -s            silent mode
  -v            verbose: list closed and filtered ports too
                (human and json only; csv/xlsx always hold open ports)
  --debug       debug mode

EXIT STATUS:
  0 open ports found, 1 none found, 2 bad input, 3 network error, 130 interrupted

EXAMPLES:
  portscout
  portscout -t 127.0.0.1 -p 7999-8001 --timeout 200ms
  portscout -t 192.168.1.0/28 --top 100 --banner -o xlsx
  portscout -t hosts.txt -p 22,443 -o json -f out.json
`, version)
}
