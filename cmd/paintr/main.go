// Package main is the entry point for the paintr drawing server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/dshills/paintr/internal/app"
	"github.com/dshills/paintr/internal/config"
	"github.com/dshills/paintr/internal/server"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	port       int
	staticDir  string
	logLevel   string
	watch      bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.New(configOptions(opts)...)
	if err := cfg.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}
	defer cfg.Close()

	log := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Logging().Level),
		Output: os.Stderr,
		Prefix: "paintr",
	})

	appOpts := app.OptionsFromConfig(cfg)
	appOpts.Logger = log
	application, err := app.New(ctx, appOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	for _, err := range cfg.Errors() {
		log.Warn("config: %v", err)
	}

	serverCfg := cfg.Server()
	handler, err := server.New(application, server.Options{StaticDir: serverCfg.StaticDir})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create server: %v\n", err)
		return 1
	}

	loopDone := make(chan error, 1)
	go func() { loopDone <- application.Run(ctx) }()

	if opts.watch {
		application.WatchConfig(ctx, cfg)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(serverCfg.Port)),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("listening at port: %d", serverCfg.Port)
		serveErr <- srv.ListenAndServe()
	}()

	status := 0
	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = 1
		}
		stop()
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown: %v", err)
	}
	if err := <-loopDone; err != nil {
		log.Error("event loop: %v", err)
	}
	log.Info("server stopped")
	return status
}

func configOptions(opts options) []config.Option {
	cfgOpts := []config.Option{config.WithWatcher(opts.watch)}
	if opts.configPath != "" {
		cfgOpts = append(cfgOpts, config.WithFile(opts.configPath))
	}
	if opts.port != 0 {
		cfgOpts = append(cfgOpts, config.WithOverride("server.port", opts.port))
	}
	if opts.staticDir != "" {
		cfgOpts = append(cfgOpts, config.WithOverride("server.static_dir", opts.staticDir))
	}
	if opts.logLevel != "" {
		cfgOpts = append(cfgOpts, config.WithOverride("logging.level", opts.logLevel))
	}
	return cfgOpts
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&opts.port, "port", 0, "HTTP port (default from config, PORT, or 8180)")
	flag.IntVar(&opts.port, "p", 0, "HTTP port (shorthand)")
	flag.StringVar(&opts.staticDir, "static", "", "Serve page assets from this directory")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&opts.watch, "watch", true, "Reload the configuration file when it changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "paintr - a small browser drawing program\n\n")
		fmt.Fprintf(os.Stderr, "Usage: paintr [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  paintr                      Serve on port 8180\n")
		fmt.Fprintf(os.Stderr, "  paintr -p 9000              Serve on port 9000\n")
		fmt.Fprintf(os.Stderr, "  paintr -c paintr.toml       Use a configuration file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("paintr %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch opts.logLevel {
	case "", "debug", "info", "warn", "error":
		// Valid
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	if opts.port < 0 || opts.port > 65535 {
		fmt.Fprintf(os.Stderr, "Error: invalid port %d\n", opts.port)
		os.Exit(1)
	}

	return opts
}
