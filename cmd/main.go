// NanoID is a lightweight CLI utility for generating secure, URL-friendly
// unique identifiers backed by the operating system's CSPRNG.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"github.com/jadedmc/nanoid"
	"github.com/jadedmc/nanoid/internal/config"
	"github.com/jadedmc/nanoid/internal/generator"
	"github.com/jadedmc/nanoid/internal/version"
)

// Exit codes
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// ASCII art banner for the CLI
const banner = `
 _   _     _     _   _   ___   ___  ____
| \ | |   / \   | \ | | / _ \ |_ _||  _ \
|  \| |  / _ \  |  \| || | | | | | | | | |
| |\  | / ___ \ | |\  || |_| | | | | |_| |
|_| \_|/_/   \_\|_| \_| \___/ |___||____/
`

func main() {
	os.Exit(run())
}

func run() int {
	// Define CLI flags
	count := flag.Int("count", 1, "Number of identifiers to generate")
	size := flag.Int("size", nanoid.DefaultSize, "Length of each identifier in symbols")
	alphabet := flag.String("alphabet", nanoid.DefaultAlphabet, "Set of symbols to draw from")
	profile := flag.String("profile", "", "Named profile from the configuration file")
	configPath := flag.String("config", "", "Path to the configuration file")
	showVersion := flag.Bool("version", false, "Show version information and exit")
	debug := flag.Bool("debug", false, "Enable debug logging (most verbose)")
	quiet := flag.Bool("quiet", false, "Show only warnings and errors (for scripts/pipelines)")
	silent := flag.Bool("silent", false, "Show only errors (most quiet)")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, banner)
		fmt.Fprintf(os.Stderr, "\nSecure URL-Friendly Unique ID Generator\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  nanoid [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nLog Levels:\n")
		fmt.Fprintf(os.Stderr, "  (default)   Show info, warnings, and errors\n")
		fmt.Fprintf(os.Stderr, "  --debug     Show all messages including debug details\n")
		fmt.Fprintf(os.Stderr, "  --quiet     Show only warnings and errors (recommended for scripts)\n")
		fmt.Fprintf(os.Stderr, "  --silent    Show only errors\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  nanoid                                 # One 21-symbol identifier\n")
		fmt.Fprintf(os.Stderr, "  nanoid --count 10                      # Ten identifiers\n")
		fmt.Fprintf(os.Stderr, "  nanoid --size 6 --alphabet 0123456789  # A numeric PIN\n")
		fmt.Fprintf(os.Stderr, "  nanoid --profile hex                   # Use a configured profile\n")
		fmt.Fprintf(os.Stderr, "  nanoid --quiet --count 100             # Quiet output for pipelines\n")
		fmt.Fprintf(os.Stderr, "\nExit Codes:\n")
		fmt.Fprintf(os.Stderr, "  0  Success (all identifiers generated)\n")
		fmt.Fprintf(os.Stderr, "  1  Failure (invalid arguments, bad configuration, or generation error)\n")
		fmt.Fprintf(os.Stderr, "\nMore info: https://github.com/jadedmc/nanoid\n")
	}

	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Print(banner)
		fmt.Println(version.String())
		fmt.Println()
		return ExitSuccess
	}

	// Track explicitly set flags so they take precedence over profiles
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	// Setup logger with hierarchy: debug > default > quiet > silent
	var logLevel slog.Level
	switch {
	case *debug:
		logLevel = slog.LevelDebug // Shows everything (-4)
	case *silent:
		logLevel = slog.LevelError // Only errors (8)
	case *quiet:
		logLevel = slog.LevelWarn // Warnings and errors (4)
	default:
		logLevel = slog.LevelInfo // Normal operation (0)
	}

	// Logs go to stderr so stdout carries nothing but identifiers
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	logger.Info("NanoID starting",
		"version", version.Version)

	if *count < 1 {
		logger.Error("count must be at least 1",
			"count", *count)
		return ExitFailure
	}

	genSize := *size
	genAlphabet := *alphabet

	// Load configuration only when a config file or profile is requested
	if *configPath != "" || *profile != "" {
		path := *configPath
		if path == "" {
			path = config.DefaultConfigPath
		}

		cfg, err := config.Load(path)
		if err != nil {
			logger.Error("failed to load configuration",
				"path", path,
				"error", err)
			return ExitFailure
		}

		logger.Info("configuration loaded",
			"path", path,
			"profiles", len(cfg.Profiles))

		resolvedSize, resolvedAlphabet, err := cfg.Resolve(*profile)
		if err != nil {
			logger.Error("failed to resolve profile",
				"profile", *profile,
				"error", err)
			return ExitFailure
		}

		// Explicit flags win over configured values
		if !setFlags["size"] {
			genSize = resolvedSize
		}
		if !setFlags["alphabet"] {
			genAlphabet = resolvedAlphabet
		}
	}

	// Setup context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Warn("received signal, shutting down",
			"signal", sig.String())
		cancel()
	}()

	logger.Debug("generation parameters resolved",
		"size", genSize,
		"alphabet", genAlphabet)

	logger.Info("generating identifiers",
		"count", *count,
		"size", genSize,
		"alphabet_size", utf8.RuneCountInString(genAlphabet))

	out := bufio.NewWriter(os.Stdout)

	gen := generator.NewWithLogger(out, logger, *count, genSize, genAlphabet)
	result, err := gen.Run(ctx)
	if err != nil {
		out.Flush()
		logger.Error("generation failed",
			"generated", result.Generated,
			"error", err)
		return ExitFailure
	}

	if err := out.Flush(); err != nil {
		logger.Error("failed to write output",
			"error", err)
		return ExitFailure
	}

	logger.Info("generation complete",
		"count", result.Generated)
	return ExitSuccess
}
