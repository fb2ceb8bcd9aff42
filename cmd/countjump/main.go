// Package main is the entry point for the countjump demo pager.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/dshills/countjump/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, logFile := parseFlags()

	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}
	opts.LogOutput = logOut

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() (app.Options, string) {
	var opts app.Options
	var logLevel, logFile string
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to a TOML jump definition file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to a TOML jump definition file (shorthand)")
	flag.Func("script", "Lua predicate script (repeatable)", func(path string) error {
		opts.Scripts = append(opts.Scripts, path)
		return nil
	})
	flag.BoolVar(&opts.AudioBell, "audio-bell", false, "Play a tone instead of the terminal bell")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&logFile, "log-file", "", "Append logs to this file")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "countjump - counted jump motions over a file\n\n")
		fmt.Fprintf(os.Stderr, "Usage: countjump [options] file\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  [count]]p [count][p ...   jump motions (see config)\n")
		fmt.Fprintf(os.Stderr, "  v                         toggle visual selection\n")
		fmt.Fprintf(os.Stderr, "  ip / ap                   inner / around text object\n")
		fmt.Fprintf(os.Stderr, "  Ctrl-O                    back to previous jump origin\n")
		fmt.Fprintf(os.Stderr, "  q / Ctrl-C                quit\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("countjump %s (%s)\n", version, commit)
		os.Exit(0)
	}

	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", logLevel)
		os.Exit(1)
	}
	opts.LogLevel = app.ParseLogLevel(logLevel)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	opts.Path = flag.Arg(0)

	return opts, logFile
}
