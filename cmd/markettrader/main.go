package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ashumeet/markettrader/pkg/config"
	"github.com/ashumeet/markettrader/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("markettrader", flag.ContinueOnError)
	flags.SetOutput(stderr)
	checkConfig := flags.Bool("check-config", false, "check configuration and exit")
	envFile := flags.String("env-file", "", "custom environment file to use")
	debug := flags.Bool("debug", false, "enable debug mode")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// The flag rides the process-environment overlay so it wins over any
	// DEBUG value in the file, like every other operator override.
	if *debug {
		os.Setenv("DEBUG", "true")
	}

	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	cfg, warnings, err := config.Load(*envFile, dir)
	if err != nil {
		reportFailure(stderr, err)
		return 1
	}

	log := logger.New(
		logger.WithOutput(stderr),
		logger.WithDebug(cfg.Debug.Bool()),
		logger.WithAttr(slog.String("service", "markettrader")),
	)
	for _, w := range warnings {
		log.Warn(w.Message, slog.String("kind", string(w.Kind)))
	}

	if *checkConfig {
		fmt.Fprintln(stdout, "Configuration is valid.")
		fmt.Fprintln(stdout, "=== Market Trader Configuration ===")
		for _, e := range cfg.Summary() {
			fmt.Fprintf(stdout, "%-20s %s\n", e.Key+":", e.Value)
		}
		fmt.Fprintln(stdout, "===================================")
		return 0
	}

	log.Info("configuration loaded",
		slog.String("source", cfg.Source.Path),
		slog.String("origin", string(cfg.Source.Origin)),
		slog.String("environment", string(cfg.Environment)),
	)
	log.Info("no trading engine in this build; run with -check-config to inspect settings")
	return 0
}

// reportFailure prints every collected problem, not just the first one.
func reportFailure(stderr io.Writer, err error) {
	var verr *config.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(stderr, "configuration error: validation failed")
		for _, field := range verr.Fields {
			fmt.Fprintf(stderr, "  - %v\n", field)
		}
		return
	}
	fmt.Fprintf(stderr, "configuration error: %v\n", err)
}
