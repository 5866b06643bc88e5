package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/permpro/pkg/bench"
	"github.com/matzehuels/permpro/pkg/buildinfo"
	"github.com/matzehuels/permpro/pkg/cache"
	"github.com/matzehuels/permpro/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "permpro"

	// configFileName is the config file looked up in the config directory.
	configFileName = "permpro.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is set by the global --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level, benchmark and
// cache events are logged as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := &logHooks{logger: c.Logger}
		observability.SetBenchHooks(hooks)
		observability.SetCacheHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Permpro enumerates permutations with a factorial-counter engine",
		Long:         `Permpro enumerates every permutation of [0, n) with a factorial-counter engine that emits each permutation with a single sentinel swap, and benchmarks it against Heap's algorithm.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/permpro/permpro.toml)")

	// Register all subcommands
	root.AddCommand(c.genCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.stepCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a benchmark runner for CLI use. The caller closes the
// runner's cache.
func (c *CLI) newRunner(ctx context.Context, opts bench.Options) (*bench.Runner, error) {
	store, err := newCache(ctx, opts)
	if err != nil {
		return nil, err
	}

	var keyer cache.Keyer
	if opts.CacheURL != "" {
		// Timings from other machines are not comparable.
		keyer = cache.NewScopedKeyer(nil, cache.MachineScope())
	}
	return bench.NewRunner(store, keyer, c.Logger), nil
}

func newCache(ctx context.Context, opts bench.Options) (cache.Cache, error) {
	if opts.NoCache {
		return cache.NewNullCache(), nil
	}
	if opts.CacheURL != "" {
		rc, err := cache.NewRedisCache(ctx, opts.CacheURL, appName+":")
		if err != nil {
			return nil, fmt.Errorf("connect cache: %w", err)
		}
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/permpro/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory using XDG standard (~/.config/permpro/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
