package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/logivex/portscout/config"
	"github.com/logivex/portscout/internal/banner"
	"github.com/logivex/portscout/internal/errors"
	"github.com/logivex/portscout/internal/output"
	"github.com/logivex/portscout/internal/portscan"
	"github.com/logivex/portscout/internal/rdns"
	"github.com/logivex/portscout/internal/target"
)

// ─── exit codes ───────────────────────────────────────────────────────────────

const (
	exitOpen        = 0
	exitNoneOpen    = 1
	exitInput       = 2
	exitNetwork     = 3
	exitInterrupted = 130
)

// bannerWorkers caps concurrent banner grabs per target.
const bannerWorkers = 20

// ─── run ──────────────────────────────────────────────────────────────────────

// run is the main entry point. It returns the process exit code.
func run() int {
	flag.Usage = printHelp
	flag.Parse()

	if *flagVersion {
		fmt.Printf("portscout v%s\n", version)
		return exitOpen
	}

	log := output.NewLogger(*flagDebug, *flagSilent)

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		log.Errorf("cannot load config: %s", err)
		return exitInput
	}
	cfg, err = mergeConfig(cfg)
	if err != nil {
		log.Errorf("%s", err)
		return exitInput
	}

	ports, err := resolvePorts(cfg, *flagFull, *flagTop)
	if err != nil {
		log.Errorf("%s", err)
		return exitInput
	}

	in, err := target.Detect(cfg.Target, config.Default().Target, os.Stdin)
	if err != nil {
		log.Errorf("%s", err)
		return exitInput
	}
	targets, err := target.Expand(in.Targets)
	if err != nil {
		log.Errorf("%s", err)
		return exitInput
	}

	log.Debugf("targets: %d %v", len(targets), preview(targets, 5))
	log.Debugf("ports: %d | banner: %v | rdns: %v", len(ports), cfg.Banner, cfg.RDNS)
	log.Debugf("timeout: %s | concurrency: %d | rate: %d", cfg.Timeout, cfg.Concurrency, cfg.Rate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &app{
		cfg:     cfg,
		log:     log,
		printer: output.NewPrinter(),
		scanner: portscan.New(portscan.Config{
			Timeout:     cfg.Timeout,
			Concurrency: cfg.Concurrency,
			Rate:        cfg.Rate,
		}),
		verbose: *flagVerbose,
	}
	return app.scanAll(ctx, targets, ports)
}

// ─── app ──────────────────────────────────────────────────────────────────────

// app carries everything a scan run needs so it can be driven from tests.
type app struct {
	cfg     config.Config
	log     *output.Logger
	printer *output.Printer
	scanner *portscan.Scanner
	stdout  io.Writer // nil means os.Stdout
	verbose bool
}

// scanAll scans each target in turn, prints or exports the results, and
// returns the exit code.
func (a *app) scanAll(ctx context.Context, targets []string, ports []int) int {
	var (
		results  []output.Result
		anyOpen  bool
		exitCode = exitNoneOpen
	)

	for _, t := range targets {
		res, err := a.scanTarget(ctx, t, ports)
		if err != nil {
			var inErr *errors.InputError
			var netErr *errors.NetworkError
			switch {
			case ctx.Err() != nil:
				a.log.Errorf("interrupted while scanning %s", t)
				if err := a.export(results); err != nil {
					a.log.Errorf("%s", err)
				}
				return exitInterrupted
			case stderrors.As(err, &inErr):
				a.log.Errorf("%s", err)
				return exitInput
			case stderrors.As(err, &netErr):
				a.log.Errorf("%s", err)
				exitCode = exitNetwork
				continue
			default:
				a.log.Errorf("[%s] %s", t, err)
				exitCode = exitNetwork
				continue
			}
		}

		if res.Meta.Open > 0 {
			anyOpen = true
		}
		if a.cfg.Output == "human" {
			a.printer.Result(res, version)
			continue
		}
		results = append(results, res)
	}

	if err := a.export(results); err != nil {
		a.log.Errorf("%s", err)
		return exitInput
	}
	if anyOpen {
		return exitOpen
	}
	return exitCode
}

// scanTarget scans one host and enriches the report with banners and rdns.
func (a *app) scanTarget(ctx context.Context, host string, ports []int) (output.Result, error) {
	report, err := a.scanner.Scan(ctx, portscan.Request{Host: host, Ports: ports})
	if err != nil {
		return output.Result{}, err
	}
	a.log.Debugf("scan %s: %s (%s) %d probed, %d open in %s",
		report.ID, host, report.IP, report.Scanned, len(report.Open), report.Duration)
	for _, r := range report.Results {
		if r.Open() || a.verbose {
			a.log.Debugf("scan result: port=%d state=%s latency=%s", r.Port, r.State, r.Latency)
		}
	}

	var banners map[int]*banner.Banner
	if a.cfg.Banner && len(report.Open) > 0 {
		banners = a.grabBanners(ctx, report)
	}

	var name string
	if a.cfg.RDNS && report.IP != "" {
		name, err = rdns.Lookup(ctx, nil, report.IP)
		if err != nil {
			a.log.Warnf("rdns %s: %s", report.IP, err)
		}
	}

	return output.FromReport(report, banners, name, a.verbose), nil
}

// grabBanners reads a banner from every open port. Ports that say nothing
// are left out.
func (a *app) grabBanners(ctx context.Context, report *portscan.Report) map[int]*banner.Banner {
	grabber := banner.New(a.cfg.Timeout)

	var mu sync.Mutex
	banners := make(map[int]*banner.Banner, len(report.Open))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bannerWorkers)
	for _, r := range report.Open {
		port := r.Port
		g.Go(func() error {
			b, err := grabber.Grab(ctx, report.IP, port)
			if err != nil {
				a.log.Debugf("banner %s:%d: %s", report.IP, port, err)
				return nil
			}
			mu.Lock()
			banners[port] = b
			mu.Unlock()
			return nil
		})
	}
	g.Wait()
	return banners
}

// export writes collected results in the configured non-human format.
func (a *app) export(results []output.Result) error {
	stdout := a.stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	switch a.cfg.Output {
	case "json":
		if a.cfg.File != "" {
			return output.WriteJSON(a.cfg.File, results)
		}
		for _, r := range results {
			if err := output.PrintJSON(stdout, r); err != nil {
				return err
			}
		}
	case "csv":
		if a.cfg.File != "" {
			return output.WriteCSV(a.cfg.File, results)
		}
		return output.PrintCSV(stdout, results)
	case "xlsx":
		path := a.cfg.File
		if path == "" {
			path = output.DefaultXLSXPath
		}
		if err := output.WriteXLSX(path, results); err != nil {
			return err
		}
		a.log.Infof("results saved to %s", path)
	}
	return nil
}

// ─── helpers ──────────────────────────────────────────────────────────────────

// resolvePorts returns the port list based on --full, --top, or cfg.Ports.
func resolvePorts(cfg config.Config, full bool, top int) ([]int, error) {
	switch {
	case full:
		return portscan.Range(portscan.MinPort, portscan.MaxPort), nil
	case isFlagSet("p"):
		return portscan.ParsePorts(cfg.Ports)
	case top > 0:
		return portscan.TopPorts(top), nil
	case cfg.Ports != "":
		return portscan.ParsePorts(cfg.Ports)
	}
	return portscan.DefaultPorts(), nil
}

// preview returns at most n leading items for log lines.
func preview(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
