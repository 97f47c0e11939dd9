// Package main provides the lost and found items manager application.
// The manager runs entirely in the terminal as a full-screen, menu
// driven interface for recording lost and found items, matching
// counterpart reports and tracking claims, with the collection kept in
// a single binary file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	appconfig "github.com/haleta-e/lost-and-found-manager/pkg/config"
	"github.com/haleta-e/lost-and-found-manager/pkg/logging"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
	"github.com/haleta-e/lost-and-found-manager/pkg/tui"
)

const version = "0.1.0" // Version of the lost and found manager

// Config holds the command line configuration
type Config struct {
	ConfigPath  string
	StateDir    string
	DataFile    string
	LogDir      string
	ShowVersion bool
}

func main() {
	// Parse command line flags
	config := parseFlags()

	// Show version if requested
	if config.ShowVersion {
		fmt.Printf("lostfound v%s\n", version)
		return
	}

	// Resolve and validate configuration
	cfg, err := config.resolve()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nShutting down gracefully...")
		cancel()
	}()

	// Run the application
	if runErr := run(ctx, cfg); runErr != nil {
		cancel()
		log.Fatalf("Application error: %v", runErr)
	}
}

// parseFlags parses command line flags
func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.ConfigPath, "config", "", "Path to a YAML configuration file (optional)")
	flag.StringVar(&config.StateDir, "state-dir", "", "Base directory for application state (default: ~/.lostfound)")
	flag.StringVar(&config.DataFile, "data-file", "", "Path of the binary item store (default: <state-dir>/items.bin)")
	flag.StringVar(&config.LogDir, "log-dir", "", "Directory for session logs (default: <state-dir>/logs)")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lostfound - A terminal lost & found items manager\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lostfound [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lostfound                              # Store under ~/.lostfound\n")
		fmt.Fprintf(os.Stderr, "  lostfound -state-dir /srv/lostfound\n")
		fmt.Fprintf(os.Stderr, "  lostfound -data-file ./items.bin\n")
		fmt.Fprintf(os.Stderr, "  lostfound -config lostfound.yaml\n")
	}

	flag.Parse()
	return config
}

// resolve loads the optional configuration file, applies flag
// overrides and fills in the defaults.
func (c *Config) resolve() (*appconfig.Config, error) {
	cfg := appconfig.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := appconfig.Load(c.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// Flags win over the configuration file
	if c.StateDir != "" {
		cfg.StateDir = c.StateDir
	}
	if c.DataFile != "" {
		cfg.DataFile = c.DataFile
	}
	if c.LogDir != "" {
		cfg.LogDir = c.LogDir
	}

	if err := cfg.Resolve(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run executes the main application logic
func run(ctx context.Context, cfg *appconfig.Config) error {
	// Set up session logging; a failure degrades to stderr instead of
	// aborting the application
	logging.SetDirectory(cfg.LogDir)
	logger, err := logging.NewLogger("tui")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: session logging degraded: %v\n", err)
	}
	defer logger.Close()

	// Open the item store and load the collection
	store, err := registry.NewFileStore(cfg.DataFile)
	if err != nil {
		return err
	}
	reg := registry.New(store)
	if err := reg.Load(); err != nil {
		return fmt.Errorf("failed to load item store: %w", err)
	}
	logger.Infof("loaded %d items from %s", reg.Count(), cfg.DataFile)

	// Create the TUI executor over the registry
	executor := tui.NewExecutor(reg, logger, cfg.DataFile)

	// Display welcome message
	fmt.Printf("Lost & Found Items Manager v%s\n", version)
	fmt.Printf("Data file: %s\n", cfg.DataFile)
	fmt.Println("\nStarting TUI...")
	fmt.Println()

	// Run the executor
	if err := executor.Run(ctx); err != nil {
		return fmt.Errorf("executor error: %w", err)
	}

	return nil
}
