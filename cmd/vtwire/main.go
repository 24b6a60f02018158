// Package main is the entry point for the vtwire diagnostic console.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dshills/vtwire/internal/config"
	"github.com/dshills/vtwire/internal/logging"
	"github.com/dshills/vtwire/internal/terminal"
	"github.com/dshills/vtwire/internal/transport"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	log, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Path:    cfg.Log.File,
		Session: uuid.NewString(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer log.Close()

	tr, err := openTransport(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open transport: %v\n", err)
		return 1
	}

	// New probes the terminal and resets it to a known state.
	term, err := terminal.New(tr, log.Logger)
	if err != nil {
		tr.Close()
		fmt.Fprintf(os.Stderr, "Error: terminal did not come up: %v\n", err)
		return 1
	}
	defer term.Close()

	if opts.probe {
		return probe(term)
	}

	// Live reload adjusts the log level between poll iterations.
	// Transport changes need a restart.
	var reloads <-chan *config.Config
	var watchErrs <-chan error
	if w, err := config.Watch(opts.configPath); err != nil {
		log.Warn("config watcher unavailable", "error", err)
	} else {
		defer w.Close()
		reloads = w.Events()
		watchErrs = w.Errors()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	log.Info("session started",
		"transport", cfg.Transport.Kind,
		"device", cfg.Transport.Device,
		"version", version)

	if err := runDemo(term, log, quit, reloads, watchErrs); err != nil {
		log.Error("session failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Leave the terminal usable for whatever runs next.
	if err := term.Reset(); err != nil {
		log.Warn("final reset failed", "error", err)
	}
	return 0
}

// probe reports one status and cursor round trip, then exits.
func probe(term *terminal.Terminal) int {
	if err := term.CheckOk(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: status probe: %v\n", err)
		return 1
	}
	row, col, err := term.FetchCursor()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cursor probe: %v\n", err)
		return 1
	}
	fmt.Printf("terminal ready: %d columns, cursor at row %d col %d\r\n",
		term.Columns(), row, col)
	return 0
}

func openTransport(cfg *config.Config) (terminal.Transport, error) {
	switch cfg.Transport.Kind {
	case config.KindSerial:
		return transport.OpenSerial(cfg.Transport.Device, transport.SerialOptions{
			Baud:        cfg.Transport.Baud,
			FlowControl: cfg.Transport.FlowControl,
		})
	case config.KindStdio:
		return transport.OpenStdio()
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Transport.Kind, config.ErrUnknownKind)
	}
}

// options holds parsed command line flags. Zero values mean "keep
// the configured setting".
type options struct {
	configPath string
	device     string
	baud       int
	flow       bool
	stdio      bool
	logLevel   string
	logFile    string
	probe      bool
}

// apply overlays explicit flags onto the loaded configuration.
// A device path implies the serial transport.
func (o options) apply(cfg *config.Config) {
	if o.stdio {
		cfg.Transport.Kind = config.KindStdio
	}
	if o.device != "" {
		cfg.Transport.Kind = config.KindSerial
		cfg.Transport.Device = o.device
	}
	if o.baud != 0 {
		cfg.Transport.Baud = transport.Baud(o.baud)
	}
	if o.flow {
		cfg.Transport.FlowControl = true
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.device, "device", "", "Serial device path (implies serial transport)")
	flag.IntVar(&opts.baud, "baud", 0, "Serial line rate")
	flag.BoolVar(&opts.flow, "flow", false, "Enable XON/XOFF flow control on the serial line")
	flag.BoolVar(&opts.stdio, "stdio", false, "Use the controlling terminal instead of a serial line")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Log file path (default stderr)")
	flag.BoolVar(&opts.probe, "probe", false, "Probe the terminal and exit")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "vtwire - VT100 wire protocol console\n\n")
		fmt.Fprintf(os.Stderr, "Usage: vtwire [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  vtwire -device /dev/ttyUSB0 -baud 9600   Drive a terminal on a serial line\n")
		fmt.Fprintf(os.Stderr, "  vtwire -stdio                            Drive the controlling terminal\n")
		fmt.Fprintf(os.Stderr, "  vtwire -device /dev/ttyS0 -probe         One status round trip, then exit\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("vtwire %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
