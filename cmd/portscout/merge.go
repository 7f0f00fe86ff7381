package main

import (
	"flag"
	"time"

	"github.com/logivex/portscout/config"
	"github.com/logivex/portscout/internal/errors"
)

// mergeConfig builds the final config by merging flag values into cfg.
// Priority: flag > config file > default.
func mergeConfig(cfg config.Config) (config.Config, error) {
	if isFlagSet("t") {
		cfg.Target = *flagTarget
	}
	if isFlagSet("p") {
		cfg.Ports = *flagPorts
	}
	if isFlagSet("timeout") {
		d, err := time.ParseDuration(*flagTimeout)
		if err != nil {
			return cfg, errors.Inputf("timeout", "%q: %s", *flagTimeout, err)
		}
		cfg.Timeout = d
	}
	if isFlagSet("concurrency") {
		cfg.Concurrency = *flagConcurrency
	}
	if isFlagSet("rate") {
		cfg.Rate = *flagRate
	}
	if isFlagSet("banner") {
		cfg.Banner = *flagBanner
	}
	if isFlagSet("rdns") {
		cfg.RDNS = *flagRDNS
	}
	if isFlagSet("o") {
		cfg.Output = *flagOutput
	}
	if isFlagSet("f") {
		cfg.File = *flagFile
	}
	return cfg, cfg.Validate()
}

// isFlagSet reports whether the named flag was explicitly set by the user.
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
